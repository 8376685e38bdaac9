package model

import (
	"time"
)

type Document struct {
	Title string
	ID    UUID

	Category string
	Owner    string
	Link     string

	Data      map[string]string
	FirstSeen time.Time
	LastSeen  time.Time
}

func NewDocument(title string, id *UUID) *Document {
	var uuid UUID
	if id == nil {
		uuid = NewUUID("d")
	} else {
		uuid = *id
	}

	return &Document{
		Title: title,
		ID:    uuid,
		Data:  map[string]string{},
	}
}

func (d *Document) SeenAt(ts ...time.Time) {
	empty := time.Time{}

	for _, t := range ts {
		t = t.UTC().Round(time.Second)

		if d.FirstSeen == empty || t.Before(d.FirstSeen) {
			d.FirstSeen = t
		}
		if d.LastSeen == empty || t.After(d.LastSeen) {
			d.LastSeen = t
		}
	}
}
