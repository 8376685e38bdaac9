package model

import (
	"sort"
)

type Contacts struct {
	byName map[string]*Contact
	byID   map[UUID]*Contact
}

func NewContacts() *Contacts {
	return &Contacts{
		byName: map[string]*Contact{},
		byID:   map[UUID]*Contact{},
	}
}

func (cs *Contacts) GetOrCreate(name string) *Contact {
	return cs.GetOrCreateEx(name, nil)
}

func (cs *Contacts) GetOrCreateEx(name string, id *UUID) *Contact {
	if len(name) == 0 {
		panic("empty name not supported")
	}

	result, ok := cs.byName[name]

	if !ok {
		result = NewContact(name, id)
		cs.byName[name] = result
		cs.byID[result.ID] = result
	}

	return result
}

func (cs *Contacts) GetByID(id UUID) *Contact {
	return cs.byID[id]
}

func (cs *Contacts) List() []*Contact {
	result := make([]*Contact, 0, len(cs.byName))

	for _, v := range cs.byName {
		result = append(result, v)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}
