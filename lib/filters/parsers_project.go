package filters

import (
	"strings"

	"github.com/90mp11/ProjectReportCreator/lib/model"
)

type ProjectFilter = func(proj *model.Project) bool

// ParseProjectFilter builds a project filter from a rule. Rules can be
// combined with | and & (& binds tighter), negated with !, and can
// select a field with the status:, staging:, priority:, owner: and
// team: prefixes. Everything else matches the project name.
func ParseProjectFilter(rule string) (ProjectFilter, error) {
	rule = strings.TrimSpace(rule)

	switch {
	case rule == "":
		return func(proj *model.Project) bool {
			return true
		}, nil

	case strings.Index(rule, "|") >= 0:
		clauses, err := ParseProjectFilterList(strings.Split(rule, "|"))
		if err != nil {
			return nil, err
		}

		return func(proj *model.Project) bool {
			result := false
			for _, f := range clauses {
				result = result || f(proj)
			}
			return result
		}, nil

	case strings.Index(rule, "&") >= 0:
		clauses, err := ParseProjectFilterList(strings.Split(rule, "&"))
		if err != nil {
			return nil, err
		}

		return func(proj *model.Project) bool {
			result := true
			for _, f := range clauses {
				result = result && f(proj)
			}
			return result
		}, nil

	case strings.HasPrefix(rule, "!"):
		f, err := ParseProjectFilter(rule[1:])
		if err != nil {
			return nil, err
		}

		return func(proj *model.Project) bool {
			return !f(proj)
		}, nil

	case strings.HasPrefix(rule, "id:"):
		id := model.UUID(strings.TrimPrefix(rule, "id:"))

		return func(proj *model.Project) bool {
			return proj.ID == id
		}, nil

	case strings.HasPrefix(rule, "status:"):
		return parseProjectFieldFilter(rule, "status:", func(proj *model.Project) string { return proj.Status })

	case strings.HasPrefix(rule, "staging:"):
		return parseProjectFieldFilter(rule, "staging:", func(proj *model.Project) string { return proj.Staging })

	case strings.HasPrefix(rule, "priority:"):
		return parseProjectFieldFilter(rule, "priority:", func(proj *model.Project) string { return proj.Priority })

	case strings.HasPrefix(rule, "owner:"):
		return parseProjectFieldFilter(rule, "owner:", func(proj *model.Project) string { return proj.Owner })

	case strings.HasPrefix(rule, "team:"):
		return parseProjectFieldFilter(rule, "team:", func(proj *model.Project) string { return proj.Team })

	default:
		f, err := ParseStringFilter(rule)
		if err != nil {
			return nil, err
		}

		return func(proj *model.Project) bool {
			return f(proj.Name)
		}, nil
	}
}

func parseProjectFieldFilter(rule, prefix string, field func(proj *model.Project) string) (ProjectFilter, error) {
	f, err := ParseStringFilter(strings.TrimPrefix(rule, prefix))
	if err != nil {
		return nil, err
	}

	return func(proj *model.Project) bool {
		return f(field(proj))
	}, nil
}

func ParseProjectFilterList(rules []string) ([]ProjectFilter, error) {
	result := make([]ProjectFilter, 0, len(rules))

	for _, rule := range rules {
		f, err := ParseProjectFilter(rule)
		if err != nil {
			return nil, err
		}

		result = append(result, f)
	}

	return result, nil
}
