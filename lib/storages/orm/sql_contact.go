package orm

import (
	"time"

	"github.com/90mp11/ProjectReportCreator/lib/model"
)

type sqlContact struct {
	ID   model.UUID
	Name string `gorm:"uniqueIndex"`

	Role  string
	Team  string `gorm:"index"`
	Email string

	Data      map[string]string `gorm:"serializer:json"`
	FirstSeen time.Time
	LastSeen  time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func newSqlContact(c *model.Contact) *sqlContact {
	return &sqlContact{
		ID:        c.ID,
		Name:      c.Name,
		Role:      c.Role,
		Team:      c.Team,
		Email:     c.Email,
		Data:      encodeMap(c.Data),
		FirstSeen: c.FirstSeen,
		LastSeen:  c.LastSeen,
	}
}

func (s *sqlContact) CacheKey() string {
	return string(s.ID)
}
