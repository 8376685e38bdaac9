package model

import (
	"fmt"
	"time"
)

type Project struct {
	Name string
	ID   UUID

	Status   string
	Staging  string
	Priority string
	Effort   string
	Impact   string
	Owner    string
	Team     string
	Summary  string

	Data      map[string]string
	FirstSeen time.Time
	LastSeen  time.Time

	Ignore bool
}

func NewProject(name string, id *UUID) *Project {
	var uuid UUID
	if id == nil {
		uuid = NewUUID("p")
	} else {
		uuid = *id
	}

	return &Project{
		Name: name,
		ID:   uuid,
		Data: map[string]string{},
	}
}

func (p *Project) String() string {
	return fmt.Sprintf("%v[%v]", p.Name, p.Priority)
}

func (p *Project) SetData(name string, value string) bool {
	if p.GetData(name) == value {
		return false
	}

	if value == "" {
		delete(p.Data, name)
	} else {
		p.Data[name] = value
	}

	return true
}

func (p *Project) GetData(name string) string {
	v, _ := p.Data[name]
	return v
}

func (p *Project) SeenAt(ts ...time.Time) {
	empty := time.Time{}

	for _, t := range ts {
		t = t.UTC().Round(time.Second)

		if p.FirstSeen == empty || t.Before(p.FirstSeen) {
			p.FirstSeen = t
		}
		if p.LastSeen == empty || t.After(p.LastSeen) {
			p.LastSeen = t
		}
	}
}
