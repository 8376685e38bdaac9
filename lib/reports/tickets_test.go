package reports

import (
	"testing"
	"time"

	"github.com/bloomberg/go-testgroup"
	"github.com/samber/lo"

	"github.com/90mp11/ProjectReportCreator/lib/model"
)

func TestResolvedItems(t *testing.T) {
	testgroup.RunInParallel(t, &ResolvedItemsTests{})
}

type ResolvedItemsTests struct {
}

func (g *ResolvedItemsTests) closedTicket(reference string, by string, closedAt time.Time) *model.Ticket {
	t := model.NewTicket(reference, nil)
	t.CreatedAt = closedAt.AddDate(0, 0, -10)
	t.ClosedAt = &closedAt
	t.ClosedBy = by
	return t
}

func (g *ResolvedItemsTests) newTickets() []*model.Ticket {
	open := model.NewTicket("CR-9", nil)
	open.CreatedAt = time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)

	closedByNobody := g.closedTicket("CR-8", "", time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC))

	return []*model.Ticket{
		g.closedTicket("CR-1", "Andy Oxford", time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)),
		g.closedTicket("CR-2", "Andy Oxford", time.Date(2024, time.January, 25, 0, 0, 0, 0, time.UTC)),
		g.closedTicket("CR-3", "Chris Kelly", time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)),
		open,
		closedByNobody,
	}
}

func (g *ResolvedItemsTests) CountsOnlyResolvedTickets(t *testgroup.T) {
	cells := ComputeResolvedCells(g.newTickets(), nil)

	grid := NewPivotGrid(cells, OrderSorted, OrderSorted)

	t.Equal([]string{"2024-01", "2024-02"}, grid.Rows())
	t.Equal([]string{"Andy Oxford", "Chris Kelly"}, grid.Cols())
	t.Equal(2.0, grid.Value("2024-01", "Andy Oxford"))
	t.Equal(0.0, grid.Value("2024-02", "Andy Oxford"))
	t.Equal(1.0, grid.Value("2024-02", "Chris Kelly"))
}

func (g *ResolvedItemsTests) ByEngineerSwapsAxes(t *testgroup.T) {
	cells := ComputeResolvedCells(g.newTickets(), &ResolvedOptions{By: ResolvedByEngineer})

	grid := NewPivotGrid(cells, OrderSorted, OrderSorted)

	t.Equal([]string{"Andy Oxford", "Chris Kelly"}, grid.Rows())
	t.Equal([]string{"2024-01", "2024-02"}, grid.Cols())
}

func (g *ResolvedItemsTests) YearFilter(t *testgroup.T) {
	tickets := append(g.newTickets(),
		g.closedTicket("CR-7", "Andy Oxford", time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC)))

	cells := ComputeResolvedCells(tickets, &ResolvedOptions{Year: 2024})

	t.Len(cells, 3)
	for _, c := range cells {
		t.True(c.Row >= "2024-01")
	}
}

func (g *ResolvedItemsTests) EngineerFilter(t *testgroup.T) {
	cells := ComputeResolvedCells(g.newTickets(), &ResolvedOptions{Engineers: []string{"Chris Kelly"}})

	t.Len(cells, 1)
	t.Equal("Chris Kelly", cells[0].Col)
}

func (g *ResolvedItemsTests) StackedPlot(t *testgroup.T) {
	plot := NewResolvedPlot(g.newTickets(), nil)

	t.Equal("Resolved Items Per Month by Engineer", plot.Title)
	t.Equal("Month", plot.XLabel)
	t.Equal("Number of Resolved Items", plot.YLabel)
	t.Equal("Engineer", plot.LegendTitle)
	t.Equal(BarsStacked, plot.Mode)

	t.Equal([]string{"2024-01", "2024-02"}, plot.Rows)

	names := lo.Map(plot.Series, func(s BarSeries, _ int) string { return s.Name })
	t.Equal([]string{"Andy Oxford", "Chris Kelly"}, names)
	t.Equal([]float64{2, 0}, plot.Series[0].Values)
	t.Equal([]float64{0, 1}, plot.Series[1].Values)
}

func (g *ResolvedItemsTests) StackedPlotTitleCarriesTheYearFilter(t *testgroup.T) {
	plot := NewResolvedPlot(g.newTickets(), &ResolvedOptions{Year: 2024})

	t.Equal("Resolved Items Per Month by Engineer (2024)", plot.Title)
}

func (g *ResolvedItemsTests) GroupedPlot(t *testgroup.T) {
	plot := NewResolvedPlot(g.newTickets(), &ResolvedOptions{Mode: BarsGrouped})

	t.Equal("Resolved Items Per Month by Engineer (Grouped)", plot.Title)
	t.Equal(BarsGrouped, plot.Mode)
}

func (g *ResolvedItemsTests) EngineerGroupedPlot(t *testgroup.T) {
	plot := NewResolvedPlot(g.newTickets(), &ResolvedOptions{By: ResolvedByEngineer, Mode: BarsGrouped})

	t.Equal("Resolved Items Per Engineer by Month (Grouped)", plot.Title)
	t.Equal("Engineer", plot.XLabel)
	t.Equal("Month", plot.LegendTitle)
	t.Equal([]string{"Andy Oxford", "Chris Kelly"}, plot.Rows)
}

func TestOpenTicketAges(t *testing.T) {
	testgroup.RunInParallel(t, &OpenTicketAgesTests{})
}

type OpenTicketAgesTests struct {
}

func (g *OpenTicketAgesTests) openTicket(reference, assignedTo string, createdAt time.Time) *model.Ticket {
	t := model.NewTicket(reference, nil)
	t.AssignedTo = assignedTo
	t.CreatedAt = createdAt
	return t
}

func (g *OpenTicketAgesTests) now() time.Time {
	// a Monday
	return time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC)
}

func (g *OpenTicketAgesTests) GroupsAndSumsPerAssignee(t *testgroup.T) {
	tickets := []*model.Ticket{
		g.openTicket("CR-1", "Andy Oxford", time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)),
		g.openTicket("CR-2", "Andy Oxford", time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC)),
		g.openTicket("CR-3", "Chris Kelly", time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)),
	}

	rows := ComputeOpenTicketAges(tickets, g.now())

	t.Equal([]AgeRow{
		{AssignedTo: "Andy Oxford", AgeBusinessDays: 8, TicketCount: 2},
		{AssignedTo: "Chris Kelly", AgeBusinessDays: 1, TicketCount: 1},
	}, rows)
}

func (g *OpenTicketAgesTests) ClosedTicketsDoNotCount(t *testgroup.T) {
	closed := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)

	ticket := g.openTicket("CR-1", "Andy Oxford", time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))
	ticket.ClosedAt = &closed

	rows := ComputeOpenTicketAges([]*model.Ticket{ticket}, g.now())

	t.Empty(rows)
}

func (g *OpenTicketAgesTests) MissingAssigneeLandsInSharedBucket(t *testgroup.T) {
	tickets := []*model.Ticket{
		g.openTicket("CR-1", "", time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)),
		g.openTicket("CR-2", "", time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC)),
	}

	rows := ComputeOpenTicketAges(tickets, g.now())

	t.Len(rows, 1)
	t.Equal("(unassigned)", rows[0].AssignedTo)
	t.Equal(2, rows[0].TicketCount)
}

func (g *OpenTicketAgesTests) TiesBreakByName(t *testgroup.T) {
	tickets := []*model.Ticket{
		g.openTicket("CR-1", "Neil Griffin", time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)),
		g.openTicket("CR-2", "Luke Phillips", time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)),
	}

	rows := ComputeOpenTicketAges(tickets, g.now())

	t.Equal("Luke Phillips", rows[0].AssignedTo)
	t.Equal("Neil Griffin", rows[1].AssignedTo)
}

func (g *OpenTicketAgesTests) PlotIsHorizontalWithTicketCountAnnotations(t *testgroup.T) {
	rows := []AgeRow{
		{AssignedTo: "Andy Oxford", AgeBusinessDays: 8, TicketCount: 2},
		{AssignedTo: "Chris Kelly", AgeBusinessDays: 1, TicketCount: 1},
	}

	plot := NewAgePlot(rows)

	t.Equal("Total Age of Open Tickets by Assigned Person", plot.Title)
	t.Equal(BarsHorizontal, plot.Orientation)
	t.Equal([]string{"Andy Oxford", "Chris Kelly"}, plot.Rows)
	t.Equal([]string{"2 tickets", "1 ticket"}, plot.Annotations)
	t.Len(plot.Series, 1)
	t.Equal([]float64{8, 1}, plot.Series[0].Values)
	t.Equal("skyblue", plot.Series[0].Color)
}
