package model

import (
	"testing"
	"time"

	"github.com/bloomberg/go-testgroup"
)

func TestTicket(t *testing.T) {
	testgroup.RunInParallel(t, &TicketTests{})
}

type TicketTests struct {
}

func (g *TicketTests) date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (g *TicketTests) BusinessDaysOverOneWeek(t *testgroup.T) {
	// 2024-01-01 is a Monday
	from := g.date(2024, time.January, 1)
	to := g.date(2024, time.January, 8)

	t.Equal(5, BusinessDaysBetween(from, to))
}

func (g *TicketTests) BusinessDaysOverWeekendOnly(t *testgroup.T) {
	from := g.date(2024, time.January, 6)
	to := g.date(2024, time.January, 8)

	t.Equal(0, BusinessDaysBetween(from, to))
}

func (g *TicketTests) BusinessDaysSameDay(t *testgroup.T) {
	from := g.date(2024, time.January, 3)

	t.Equal(0, BusinessDaysBetween(from, from))
}

func (g *TicketTests) BusinessDaysFridayToTuesday(t *testgroup.T) {
	from := g.date(2024, time.January, 5)
	to := g.date(2024, time.January, 9)

	t.Equal(2, BusinessDaysBetween(from, to))
}

func (g *TicketTests) AgeOfOpenTicketRunsUntilNow(t *testgroup.T) {
	ticket := NewTicket("CR-1", nil)
	ticket.CreatedAt = g.date(2024, time.January, 1)

	t.Equal(5, ticket.AgeBusinessDays(g.date(2024, time.January, 8)))
}

func (g *TicketTests) AgeOfClosedTicketStopsAtClose(t *testgroup.T) {
	closed := g.date(2024, time.January, 3)

	ticket := NewTicket("CR-1", nil)
	ticket.CreatedAt = g.date(2024, time.January, 1)
	ticket.ClosedAt = &closed

	t.Equal(2, ticket.AgeBusinessDays(g.date(2024, time.December, 31)))
}

func (g *TicketTests) ResolvedNeedsCloseDateAndCloser(t *testgroup.T) {
	closed := g.date(2024, time.March, 14)

	ticket := NewTicket("CR-1", nil)
	t.False(ticket.IsResolved())

	ticket.ClosedAt = &closed
	t.False(ticket.IsResolved())

	ticket.ClosedBy = "Andy Oxford"
	t.True(ticket.IsResolved())
	t.False(ticket.IsOpen())
}

func (g *TicketTests) ResolvedMonthFormat(t *testgroup.T) {
	closed := g.date(2024, time.March, 14)

	ticket := NewTicket("CR-1", nil)
	t.Equal("", ticket.ResolvedMonth())

	ticket.ClosedAt = &closed
	t.Equal("2024-03", ticket.ResolvedMonth())
}

func (g *TicketTests) LabelsAreSortedAndUnique(t *testgroup.T) {
	ticket := NewTicket("CR-1", nil)
	ticket.AddLabel("network")
	ticket.AddLabel("billing")
	ticket.AddLabel("network")

	t.Equal([]string{"billing", "network"}, ticket.ListLabels())
}
