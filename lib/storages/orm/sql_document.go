package orm

import (
	"time"

	"github.com/90mp11/ProjectReportCreator/lib/model"
)

type sqlDocument struct {
	ID    model.UUID
	Title string `gorm:"uniqueIndex"`

	Category string `gorm:"index"`
	Owner    string
	Link     string

	Data      map[string]string `gorm:"serializer:json"`
	FirstSeen time.Time
	LastSeen  time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func newSqlDocument(d *model.Document) *sqlDocument {
	return &sqlDocument{
		ID:        d.ID,
		Title:     d.Title,
		Category:  d.Category,
		Owner:     d.Owner,
		Link:      d.Link,
		Data:      encodeMap(d.Data),
		FirstSeen: d.FirstSeen,
		LastSeen:  d.LastSeen,
	}
}

func (s *sqlDocument) CacheKey() string {
	return string(s.ID)
}
