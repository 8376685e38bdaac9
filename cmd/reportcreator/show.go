package main

import (
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/gertd/go-pluralize"
	"github.com/samber/lo"

	"github.com/90mp11/ProjectReportCreator/lib/categories"
	"github.com/90mp11/ProjectReportCreator/lib/model"
	"github.com/90mp11/ProjectReportCreator/lib/utils"
)

type ShowCmd struct {
	cmdWithProjectFilter

	Simple bool `short:"s" help:"Only show the totals."`
}

func (c *ShowCmd) Run(ctx *context) error {
	projects, err := ctx.ws.LoadProjects()
	if err != nil {
		return err
	}

	tickets, err := ctx.ws.LoadTickets()
	if err != nil {
		return err
	}

	documents, err := ctx.ws.LoadDocuments()
	if err != nil {
		return err
	}

	contacts, err := ctx.ws.LoadContacts()
	if err != nil {
		return err
	}

	filter, err := c.createProjectFilter()
	if err != nil {
		return err
	}

	ps := lo.Filter(projects.List(), func(p *model.Project, _ int) bool {
		return !p.Ignore && filter(p)
	})

	plural := pluralize.NewClient()

	fmt.Printf("%v, %v, %v and %v\n",
		plural.Pluralize("project", len(ps), true),
		plural.Pluralize("ticket", len(tickets.List()), true),
		plural.Pluralize("document", len(documents.List()), true),
		plural.Pluralize("contact", len(contacts.List()), true))

	if c.Simple {
		return nil
	}

	if len(ps) > 0 {
		fmt.Println()
		c.printProjects(ps)
	}

	if len(tickets.List()) > 0 {
		fmt.Println()
		c.printTickets(tickets.List())
	}

	return nil
}

func (c *ShowCmd) printProjects(ps []*model.Project) {
	byStatus := lo.CountValuesBy(ps, func(p *model.Project) string {
		return utils.IIf(p.Status == "", "(none)", p.Status)
	})
	byStaging := lo.CountValuesBy(ps, func(p *model.Project) string {
		return utils.IIf(p.Staging == "", "(none)", p.Staging)
	})

	glyphs := categories.StagingGlyphs()

	printCounts("Projects by status:", byStatus, categories.StatusColors().Labels(),
		func(label string) string { return label })

	fmt.Println()

	printCounts("Projects by staging:", byStaging, glyphs.Labels(),
		func(label string) string { return glyphs.ValueOr(label) + " " + label })
}

func (c *ShowCmd) printTickets(ts []*model.Ticket) {
	open := lo.CountBy(ts, func(t *model.Ticket) bool { return t.IsOpen() })
	resolved := len(ts) - open

	fmt.Printf("Tickets: %v open and %v resolved\n",
		humanize.Comma(int64(open)), humanize.Comma(int64(resolved)))
}

func printCounts(title string, counts map[string]int, order []string, decorate func(string) string) {
	fmt.Println(title)

	rest := lo.Without(lo.Keys(counts), order...)
	sort.Strings(rest)

	for _, label := range append(order, rest...) {
		count, ok := counts[label]
		if !ok {
			continue
		}

		fmt.Printf("   %-25v %v\n", decorate(label), count)
	}
}
