package model

import (
	"sort"
)

type Tickets struct {
	byReference map[string]*Ticket
	byID        map[UUID]*Ticket
}

func NewTickets() *Tickets {
	return &Tickets{
		byReference: map[string]*Ticket{},
		byID:        map[UUID]*Ticket{},
	}
}

func (ts *Tickets) GetOrCreate(reference string) *Ticket {
	return ts.GetOrCreateEx(reference, nil)
}

func (ts *Tickets) GetOrCreateEx(reference string, id *UUID) *Ticket {
	if len(reference) == 0 {
		panic("empty reference not supported")
	}

	result, ok := ts.byReference[reference]

	if !ok {
		result = NewTicket(reference, id)
		ts.byReference[reference] = result
		ts.byID[result.ID] = result
	}

	return result
}

func (ts *Tickets) Get(reference string) *Ticket {
	return ts.byReference[reference]
}

func (ts *Tickets) GetByID(id UUID) *Ticket {
	return ts.byID[id]
}

func (ts *Tickets) List() []*Ticket {
	result := make([]*Ticket, 0, len(ts.byReference))

	for _, v := range ts.byReference {
		result = append(result, v)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Reference < result[j].Reference
	})

	return result
}
