package model

import (
	"time"
)

type Contact struct {
	Name string
	ID   UUID

	Role  string
	Team  string
	Email string

	Data      map[string]string
	FirstSeen time.Time
	LastSeen  time.Time
}

func NewContact(name string, id *UUID) *Contact {
	var uuid UUID
	if id == nil {
		uuid = NewUUID("c")
	} else {
		uuid = *id
	}

	return &Contact{
		Name: name,
		ID:   uuid,
		Data: map[string]string{},
	}
}

func (c *Contact) SeenAt(ts ...time.Time) {
	empty := time.Time{}

	for _, t := range ts {
		t = t.UTC().Round(time.Second)

		if c.FirstSeen == empty || t.Before(c.FirstSeen) {
			c.FirstSeen = t
		}
		if c.LastSeen == empty || t.After(c.LastSeen) {
			c.LastSeen = t
		}
	}
}
