package model

import (
	"sort"
)

type Projects struct {
	byName map[string]*Project
	byID   map[UUID]*Project
}

func NewProjects() *Projects {
	return &Projects{
		byName: map[string]*Project{},
		byID:   map[UUID]*Project{},
	}
}

func (ps *Projects) GetOrCreate(name string) *Project {
	return ps.GetOrCreateEx(name, nil)
}

func (ps *Projects) GetOrCreateEx(name string, id *UUID) *Project {
	if len(name) == 0 {
		panic("empty name not supported")
	}

	result, ok := ps.byName[name]

	if !ok {
		result = NewProject(name, id)
		ps.byName[name] = result
		ps.byID[result.ID] = result
	}

	return result
}

func (ps *Projects) Get(name string) *Project {
	return ps.byName[name]
}

func (ps *Projects) GetByID(id UUID) *Project {
	return ps.byID[id]
}

func (ps *Projects) List() []*Project {
	result := make([]*Project, 0, len(ps.byName))

	for _, v := range ps.byName {
		result = append(result, v)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}
