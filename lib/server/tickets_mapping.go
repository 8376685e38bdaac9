package server

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/90mp11/ProjectReportCreator/lib/filters"
	"github.com/90mp11/ProjectReportCreator/lib/model"
)

func (s *server) listTickets(params *Filters) ([]*model.Ticket, error) {
	filter, err := filters.ParseTicketFilter(params.FilterTicket)
	if err != nil {
		return nil, err
	}

	return lo.Filter(s.tickets.List(), func(t *model.Ticket, _ int) bool {
		return filter(t)
	}), nil
}

func (s *server) sortTickets(col []*model.Ticket, field string, asc *bool) error {
	if field == "" {
		field = "created"
	}
	if asc == nil {
		asc = new(bool)
		*asc = !lo.Contains([]string{"created", "closed"}, field)
	}

	switch field {
	case "reference":
		return sortBy(col, func(r *model.Ticket) string { return r.Reference }, *asc)
	case "title":
		return sortBy(col, func(r *model.Ticket) string { return r.Title }, *asc)
	case "status":
		return sortBy(col, func(r *model.Ticket) string { return r.Status }, *asc)
	case "assignedTo":
		return sortBy(col, func(r *model.Ticket) string { return r.AssignedTo }, *asc)
	case "closedBy":
		return sortBy(col, func(r *model.Ticket) string { return r.ClosedBy }, *asc)
	case "created":
		return sortBy(col, func(r *model.Ticket) int64 { return r.CreatedAt.UnixMilli() }, *asc)
	case "closed":
		return sortBy(col, func(r *model.Ticket) int64 {
			if r.ClosedAt == nil {
				return 0
			}
			return r.ClosedAt.UnixMilli()
		}, *asc)
	default:
		return fmt.Errorf("unknown sort field: %s", field)
	}
}

func (s *server) toTicket(t *model.Ticket) gin.H {
	return gin.H{
		"id":         t.ID,
		"reference":  t.Reference,
		"title":      t.Title,
		"status":     t.Status,
		"assignedTo": t.AssignedTo,
		"closedBy":   t.ClosedBy,
		"labels":     t.ListLabels(),
		"created":    encodeDate(t.CreatedAt),
		"closed":     t.ClosedAt,
		"open":       t.IsOpen(),
	}
}
