package orm

import (
	"time"

	"github.com/90mp11/ProjectReportCreator/lib/model"
)

type sqlProject struct {
	ID   model.UUID
	Name string `gorm:"uniqueIndex"`

	Status   string
	Staging  string
	Priority string `gorm:"index"`
	Effort   string
	Impact   string
	Owner    string
	Team     string
	Summary  string

	Data      map[string]string `gorm:"serializer:json"`
	FirstSeen time.Time
	LastSeen  time.Time
	Ignore    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

func newSqlProject(p *model.Project) *sqlProject {
	return &sqlProject{
		ID:        p.ID,
		Name:      p.Name,
		Status:    p.Status,
		Staging:   p.Staging,
		Priority:  p.Priority,
		Effort:    p.Effort,
		Impact:    p.Impact,
		Owner:     p.Owner,
		Team:      p.Team,
		Summary:   p.Summary,
		Data:      encodeMap(p.Data),
		FirstSeen: p.FirstSeen,
		LastSeen:  p.LastSeen,
		Ignore:    p.Ignore,
	}
}

func (s *sqlProject) CacheKey() string {
	return string(s.ID)
}
