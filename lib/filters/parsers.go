package filters

import (
	"regexp"
	"strings"

	"github.com/gobwas/glob"
	"github.com/pkg/errors"
)

// ParseStringFilter understands three kinds of rules: regular
// expressions prefixed with "re:", globs containing * or ?, and plain
// strings, which must match the whole value. All of them ignore case.
func ParseStringFilter(rule string) (func(string) bool, error) {
	rule = strings.TrimSpace(rule)

	if rule == "" {
		return func(s string) bool {
			return true
		}, nil

	} else if strings.HasPrefix(rule, "re:") {
		re, err := regexp.Compile("(?i)" + strings.TrimPrefix(rule, "re:"))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid filter RE: %v", rule)
		}

		return re.MatchString, nil

	} else if strings.ContainsAny(rule, "*?") {
		g, err := glob.Compile(strings.ToLower(rule))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid filter glob: %v", rule)
		}

		return func(s string) bool {
			return g.Match(strings.ToLower(s))
		}, nil

	} else {
		return func(s string) bool {
			return strings.EqualFold(s, rule)
		}, nil
	}
}
