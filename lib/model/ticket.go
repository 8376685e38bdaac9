package model

import (
	"fmt"
	"sort"
	"time"

	"github.com/samber/lo"
)

type Ticket struct {
	Reference string
	ID        UUID

	Title      string
	Status     string
	AssignedTo string
	ClosedBy   string
	CreatedAt  time.Time
	ClosedAt   *time.Time

	labels map[string]bool
	Data   map[string]string
}

func NewTicket(reference string, id *UUID) *Ticket {
	var uuid UUID
	if id == nil {
		uuid = NewUUID("t")
	} else {
		uuid = *id
	}

	return &Ticket{
		Reference: reference,
		ID:        uuid,
		labels:    map[string]bool{},
		Data:      map[string]string{},
	}
}

func (t *Ticket) String() string {
	return fmt.Sprintf("%v[%v]", t.Reference, t.Status)
}

func (t *Ticket) AddLabel(label string) {
	t.labels[label] = true
}

func (t *Ticket) ListLabels() []string {
	result := lo.Keys(t.labels)
	sort.Slice(result, func(i, j int) bool {
		return result[i] < result[j]
	})
	return result
}

func (t *Ticket) IsOpen() bool {
	return t.ClosedAt == nil
}

// IsResolved means the ticket was closed and we know who closed it, so
// it can be credited on the resolved items charts.
func (t *Ticket) IsResolved() bool {
	return t.ClosedAt != nil && t.ClosedBy != ""
}

// ResolvedMonth returns the month the ticket was closed in, as "2006-01".
func (t *Ticket) ResolvedMonth() string {
	if t.ClosedAt == nil {
		return ""
	}

	return t.ClosedAt.Format("2006-01")
}

// AgeBusinessDays is the age of the ticket in business days, counted
// from creation to close, or to now for open tickets.
func (t *Ticket) AgeBusinessDays(now time.Time) int {
	end := now
	if t.ClosedAt != nil {
		end = *t.ClosedAt
	}

	return BusinessDaysBetween(t.CreatedAt, end)
}

// BusinessDaysBetween counts the weekdays in [from, to), by calendar
// date in UTC. Holidays are not taken into account.
func BusinessDaysBetween(from, to time.Time) int {
	from = toDate(from)
	to = toDate(to)

	result := 0
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		wd := d.Weekday()
		if wd != time.Saturday && wd != time.Sunday {
			result++
		}
	}
	return result
}

func toDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
