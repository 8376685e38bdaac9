package main

import (
	"fmt"

	"github.com/90mp11/ProjectReportCreator/lib/reports"
	"github.com/90mp11/ProjectReportCreator/lib/workspace"
)

type ReportScatterCmd struct {
	cmdWithProjectFilter

	Output string  `short:"o" default:"effort_impact_scatter.png" help:"Output file to write." type:"path"`
	Jitter float64 `default:"0.1" help:"How much the points are nudged apart to avoid overlaps."`
}

func (c *ReportScatterCmd) Run(ctx *context) error {
	if c.Jitter <= 0 {
		return fmt.Errorf("jitter must be positive: %v", c.Jitter)
	}

	filter, err := c.createProjectFilter()
	if err != nil {
		return err
	}

	return ctx.ws.ReportScatter(c.Output, filter, &reports.ScatterOptions{
		JitterAmount: c.Jitter,
	})
}

type ReportAgeCmd struct {
	cmdWithTicketFilter

	Output string `short:"o" default:"age_bar_chart.png" help:"Output file to write." type:"path"`
}

func (c *ReportAgeCmd) Run(ctx *context) error {
	filter, err := c.createTicketFilter()
	if err != nil {
		return err
	}

	return ctx.ws.ReportAge(c.Output, filter)
}

type ReportResolvedCmd struct {
	cmdWithTicketFilter

	Output    string   `short:"o" help:"Output file to write. Default depends on the other options." type:"path"`
	By        string   `default:"month" enum:"month,engineer" help:"What each bar represents."`
	Mode      string   `default:"stacked" enum:"stacked,grouped" help:"How the engineers are drawn inside each month."`
	Year      int      `help:"Only count tickets resolved in this year."`
	Engineers []string `help:"Only count tickets resolved by these engineers."`
}

func (c *ReportResolvedCmd) Run(ctx *context) error {
	filter, err := c.createTicketFilter()
	if err != nil {
		return err
	}

	opts := &reports.ResolvedOptions{
		Year:      c.Year,
		Engineers: c.Engineers,
	}

	if c.By == "engineer" {
		opts.By = reports.ResolvedByEngineer
	}
	if c.Mode == "grouped" {
		opts.Mode = reports.BarsGrouped
	}

	return ctx.ws.ReportResolved(c.output(), filter, opts)
}

func (c *ReportResolvedCmd) output() string {
	switch {
	case c.Output != "":
		return c.Output
	case c.By == "engineer":
		return workspace.EngineerGroupedResolvedChartFile
	case c.Mode == "grouped":
		return workspace.GroupedResolvedMonthChartFile
	default:
		return workspace.ResolvedMonthChartFile
	}
}

type ReportAllCmd struct {
	cmdWithProjectFilter
	cmdWithTicketFilter

	Output string `short:"o" default:"." help:"Directory to write the charts to." type:"path"`
}

func (c *ReportAllCmd) Run(ctx *context) error {
	projFilter, err := c.createProjectFilter()
	if err != nil {
		return err
	}

	ticketFilter, err := c.createTicketFilter()
	if err != nil {
		return err
	}

	return ctx.ws.ReportAll(c.Output, projFilter, ticketFilter)
}
