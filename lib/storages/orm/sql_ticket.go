package orm

import (
	"time"

	"github.com/90mp11/ProjectReportCreator/lib/model"
)

type sqlTicket struct {
	ID        model.UUID
	Reference string `gorm:"uniqueIndex"`

	Title      string
	Status     string
	AssignedTo string `gorm:"index"`
	ClosedBy   string `gorm:"index"`
	Created    time.Time
	Closed     *time.Time

	Labels []string          `gorm:"serializer:json"`
	Data   map[string]string `gorm:"serializer:json"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func newSqlTicket(t *model.Ticket) *sqlTicket {
	return &sqlTicket{
		ID:         t.ID,
		Reference:  t.Reference,
		Title:      t.Title,
		Status:     t.Status,
		AssignedTo: t.AssignedTo,
		ClosedBy:   t.ClosedBy,
		Created:    t.CreatedAt,
		Closed:     t.ClosedAt,
		Labels:     encodeList(t.ListLabels()),
		Data:       encodeMap(t.Data),
	}
}

func (s *sqlTicket) CacheKey() string {
	return string(s.ID)
}
