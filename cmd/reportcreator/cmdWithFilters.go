package main

import (
	"github.com/samber/lo"

	"github.com/90mp11/ProjectReportCreator/lib/filters"
	"github.com/90mp11/ProjectReportCreator/lib/model"
)

type cmdWithProjectFilter struct {
	Project []string `short:"p" help:"Filter which projects are used. Can be repeated and all rules must match."`
}

func (c *cmdWithProjectFilter) createProjectFilter() (filters.ProjectFilter, error) {
	fs, err := filters.ParseProjectFilterList(c.Project)
	if err != nil {
		return nil, err
	}

	return func(proj *model.Project) bool {
		return lo.EveryBy(fs, func(f filters.ProjectFilter) bool { return f(proj) })
	}, nil
}

type cmdWithTicketFilter struct {
	Ticket []string `short:"t" help:"Filter which tickets are used. Can be repeated and all rules must match."`
}

func (c *cmdWithTicketFilter) createTicketFilter() (filters.TicketFilter, error) {
	fs, err := filters.ParseTicketFilterList(c.Ticket)
	if err != nil {
		return nil, err
	}

	return func(ticket *model.Ticket) bool {
		return lo.EveryBy(fs, func(f filters.TicketFilter) bool { return f(ticket) })
	}, nil
}
