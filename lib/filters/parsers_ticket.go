package filters

import (
	"strings"

	"github.com/samber/lo"

	"github.com/90mp11/ProjectReportCreator/lib/model"
)

type TicketFilter = func(ticket *model.Ticket) bool

// ParseTicketFilter builds a ticket filter from a rule. On top of the
// combinators from ParseProjectFilter it knows the open and closed
// keywords and the status:, assigned:, closedby: and label: prefixes.
// Everything else matches the ticket reference or title.
func ParseTicketFilter(rule string) (TicketFilter, error) {
	rule = strings.TrimSpace(rule)

	switch {
	case rule == "":
		return func(ticket *model.Ticket) bool {
			return true
		}, nil

	case strings.Index(rule, "|") >= 0:
		clauses, err := ParseTicketFilterList(strings.Split(rule, "|"))
		if err != nil {
			return nil, err
		}

		return func(ticket *model.Ticket) bool {
			result := false
			for _, f := range clauses {
				result = result || f(ticket)
			}
			return result
		}, nil

	case strings.Index(rule, "&") >= 0:
		clauses, err := ParseTicketFilterList(strings.Split(rule, "&"))
		if err != nil {
			return nil, err
		}

		return func(ticket *model.Ticket) bool {
			result := true
			for _, f := range clauses {
				result = result && f(ticket)
			}
			return result
		}, nil

	case strings.HasPrefix(rule, "!"):
		f, err := ParseTicketFilter(rule[1:])
		if err != nil {
			return nil, err
		}

		return func(ticket *model.Ticket) bool {
			return !f(ticket)
		}, nil

	case strings.EqualFold(rule, "open"):
		return func(ticket *model.Ticket) bool {
			return ticket.IsOpen()
		}, nil

	case strings.EqualFold(rule, "closed"):
		return func(ticket *model.Ticket) bool {
			return !ticket.IsOpen()
		}, nil

	case strings.HasPrefix(rule, "id:"):
		id := model.UUID(strings.TrimPrefix(rule, "id:"))

		return func(ticket *model.Ticket) bool {
			return ticket.ID == id
		}, nil

	case strings.HasPrefix(rule, "status:"):
		return parseTicketFieldFilter(rule, "status:", func(ticket *model.Ticket) string { return ticket.Status })

	case strings.HasPrefix(rule, "assigned:"):
		return parseTicketFieldFilter(rule, "assigned:", func(ticket *model.Ticket) string { return ticket.AssignedTo })

	case strings.HasPrefix(rule, "closedby:"):
		return parseTicketFieldFilter(rule, "closedby:", func(ticket *model.Ticket) string { return ticket.ClosedBy })

	case strings.HasPrefix(rule, "label:"):
		f, err := ParseStringFilter(strings.TrimPrefix(rule, "label:"))
		if err != nil {
			return nil, err
		}

		return func(ticket *model.Ticket) bool {
			return lo.SomeBy(ticket.ListLabels(), f)
		}, nil

	default:
		f, err := ParseStringFilter(rule)
		if err != nil {
			return nil, err
		}

		return func(ticket *model.Ticket) bool {
			return f(ticket.Reference) || f(ticket.Title)
		}, nil
	}
}

func parseTicketFieldFilter(rule, prefix string, field func(ticket *model.Ticket) string) (TicketFilter, error) {
	f, err := ParseStringFilter(strings.TrimPrefix(rule, prefix))
	if err != nil {
		return nil, err
	}

	return func(ticket *model.Ticket) bool {
		return f(field(ticket))
	}, nil
}

func ParseTicketFilterList(rules []string) ([]TicketFilter, error) {
	result := make([]TicketFilter, 0, len(rules))

	for _, rule := range rules {
		f, err := ParseTicketFilter(rule)
		if err != nil {
			return nil, err
		}

		result = append(result, f)
	}

	return result, nil
}
