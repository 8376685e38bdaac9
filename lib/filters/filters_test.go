package filters

import (
	"testing"
	"time"

	"github.com/bloomberg/go-testgroup"

	"github.com/90mp11/ProjectReportCreator/lib/model"
)

func TestStringFilters(t *testing.T) {
	testgroup.RunInParallel(t, &StringFilterTests{})
}

type StringFilterTests struct{}

func (g *StringFilterTests) EmptyRuleMatchesEverything(t *testgroup.T) {
	f, err := ParseStringFilter("")
	t.NoError(err)

	t.True(f("anything"))
	t.True(f(""))
}

func (g *StringFilterTests) PlainRuleIgnoresCase(t *testgroup.T) {
	f, err := ParseStringFilter("network upgrade")
	t.NoError(err)

	t.True(f("Network Upgrade"))
	t.False(f("Network"))
}

func (g *StringFilterTests) GlobMatchesTheWholeValue(t *testgroup.T) {
	f, err := ParseStringFilter("Net*")
	t.NoError(err)

	t.True(f("network upgrade"))
	t.False(f("Core Network"))
}

func (g *StringFilterTests) QuestionMarkMatchesOneChar(t *testgroup.T) {
	f, err := ParseStringFilter("P?")
	t.NoError(err)

	t.True(f("P1"))
	t.False(f("P10"))
}

func (g *StringFilterTests) RegexpRule(t *testgroup.T) {
	f, err := ParseStringFilter("re:^p[12]$")
	t.NoError(err)

	t.True(f("P1"))
	t.True(f("p2"))
	t.False(f("P3"))
}

func (g *StringFilterTests) InvalidRegexpFails(t *testgroup.T) {
	_, err := ParseStringFilter("re:[")
	t.Error(err)
}

func TestProjectFilters(t *testing.T) {
	testgroup.RunInParallel(t, &ProjectFilterTests{})
}

type ProjectFilterTests struct{}

func newFilterProject(name, status, priority string) *model.Project {
	p := model.NewProject(name, nil)
	p.Status = status
	p.Priority = priority
	return p
}

func (g *ProjectFilterTests) DefaultRuleMatchesTheName(t *testgroup.T) {
	f, err := ParseProjectFilter("cctv*")
	t.NoError(err)

	t.True(f(newFilterProject("CCTV Upgrade", "Open", "P1")))
	t.False(f(newFilterProject("Network Refresh", "Open", "P1")))
}

func (g *ProjectFilterTests) StatusPrefix(t *testgroup.T) {
	f, err := ParseProjectFilter("status:on hold")
	t.NoError(err)

	t.True(f(newFilterProject("a", "On Hold", "P1")))
	t.False(f(newFilterProject("b", "Open", "P1")))
}

func (g *ProjectFilterTests) PriorityPrefix(t *testgroup.T) {
	f, err := ParseProjectFilter("priority:re:^P[12]$")
	t.NoError(err)

	t.True(f(newFilterProject("a", "Open", "P1")))
	t.False(f(newFilterProject("b", "Open", "P3")))
}

func (g *ProjectFilterTests) NegationInvertsTheRule(t *testgroup.T) {
	f, err := ParseProjectFilter("!status:open")
	t.NoError(err)

	t.False(f(newFilterProject("a", "Open", "P1")))
	t.True(f(newFilterProject("b", "Blocked", "P1")))
}

func (g *ProjectFilterTests) AndBindsTighterThanOr(t *testgroup.T) {
	f, err := ParseProjectFilter("status:open&priority:P1|status:blocked")
	t.NoError(err)

	t.True(f(newFilterProject("a", "Open", "P1")))
	t.True(f(newFilterProject("b", "Blocked", "P4")))
	t.False(f(newFilterProject("c", "Open", "P4")))
}

func (g *ProjectFilterTests) IdPrefix(t *testgroup.T) {
	p := newFilterProject("a", "Open", "P1")

	f, err := ParseProjectFilter("id:" + string(p.ID))
	t.NoError(err)

	t.True(f(p))
	t.False(f(newFilterProject("a2", "Open", "P1")))
}

func (g *ProjectFilterTests) InvalidClauseFails(t *testgroup.T) {
	_, err := ParseProjectFilter("status:re:[")
	t.Error(err)
}

func TestTicketFilters(t *testing.T) {
	testgroup.RunInParallel(t, &TicketFilterTests{})
}

type TicketFilterTests struct{}

func newFilterTicket(reference, title, assignedTo string, closed bool) *model.Ticket {
	ticket := model.NewTicket(reference, nil)
	ticket.Title = title
	ticket.AssignedTo = assignedTo
	ticket.CreatedAt = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	if closed {
		closedAt := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
		ticket.ClosedAt = &closedAt
	}
	return ticket
}

func (g *TicketFilterTests) DefaultRuleMatchesReferenceOrTitle(t *testgroup.T) {
	f, err := ParseTicketFilter("*printer*")
	t.NoError(err)

	t.True(f(newFilterTicket("INC-1", "Printer out of toner", "Andy Oxford", false)))
	t.False(f(newFilterTicket("INC-2", "VPN down", "Andy Oxford", false)))
}

func (g *TicketFilterTests) OpenAndClosedKeywords(t *testgroup.T) {
	open, err := ParseTicketFilter("open")
	t.NoError(err)
	closed, err := ParseTicketFilter("closed")
	t.NoError(err)

	ticket := newFilterTicket("INC-1", "a", "", true)
	t.False(open(ticket))
	t.True(closed(ticket))
}

func (g *TicketFilterTests) AssignedPrefix(t *testgroup.T) {
	f, err := ParseTicketFilter("assigned:andy*")
	t.NoError(err)

	t.True(f(newFilterTicket("INC-1", "a", "Andy Oxford", false)))
	t.False(f(newFilterTicket("INC-2", "b", "Chris Kelly", false)))
}

func (g *TicketFilterTests) LabelPrefix(t *testgroup.T) {
	ticket := newFilterTicket("INC-1", "a", "", false)
	ticket.AddLabel("network")
	ticket.AddLabel("vip")

	f, err := ParseTicketFilter("label:network")
	t.NoError(err)

	t.True(f(ticket))
	t.False(f(newFilterTicket("INC-2", "b", "", false)))
}

func (g *TicketFilterTests) CombinedRule(t *testgroup.T) {
	f, err := ParseTicketFilter("open&assigned:andy*")
	t.NoError(err)

	t.True(f(newFilterTicket("INC-1", "a", "Andy Oxford", false)))
	t.False(f(newFilterTicket("INC-2", "b", "Andy Oxford", true)))
	t.False(f(newFilterTicket("INC-3", "c", "Chris Kelly", false)))
}
