package main

import (
	"time"

	"github.com/90mp11/ProjectReportCreator/lib/importers/trackercsv"
)

type ImportAllCmd struct {
	Dirs   []string  `arg:"" optional:"" help:"Directories with the tracker CSV exports. Default is ./raw." type:"existingdir"`
	SeenAt time.Time `help:"Timestamp to record as when the data was seen. Default is now."`
}

func (c *ImportAllCmd) Run(ctx *context) error {
	dirs := c.Dirs
	if len(dirs) == 0 {
		dirs = []string{"./raw"}
	}

	return ctx.ws.ImportTrackerFiles(dirs, &trackercsv.Options{
		SeenAt: c.SeenAt,
	})
}

type ImportProjectsCmd struct {
	Files  []string  `arg:"" help:"CSV files to import. Can use ** globs."`
	SeenAt time.Time `help:"Timestamp to record as when the data was seen. Default is now."`
}

func (c *ImportProjectsCmd) Run(ctx *context) error {
	return ctx.ws.ImportProjects(c.Files, &trackercsv.Options{
		SeenAt: c.SeenAt,
	})
}

type ImportTicketsCmd struct {
	Files  []string  `arg:"" help:"CSV files to import. Can use ** globs."`
	SeenAt time.Time `help:"Timestamp to record as when the data was seen. Default is now."`
}

func (c *ImportTicketsCmd) Run(ctx *context) error {
	return ctx.ws.ImportTickets(c.Files, &trackercsv.Options{
		SeenAt: c.SeenAt,
	})
}

type ImportDocumentsCmd struct {
	Files  []string  `arg:"" help:"CSV files to import. Can use ** globs."`
	SeenAt time.Time `help:"Timestamp to record as when the data was seen. Default is now."`
}

func (c *ImportDocumentsCmd) Run(ctx *context) error {
	return ctx.ws.ImportDocuments(c.Files, &trackercsv.Options{
		SeenAt: c.SeenAt,
	})
}

type ImportContactsCmd struct {
	Files  []string  `arg:"" help:"CSV files to import. Can use ** globs."`
	SeenAt time.Time `help:"Timestamp to record as when the data was seen. Default is now."`
}

func (c *ImportContactsCmd) Run(ctx *context) error {
	return ctx.ws.ImportContacts(c.Files, &trackercsv.Options{
		SeenAt: c.SeenAt,
	})
}

type ImportMySqlCmd struct {
	ConnectionString string `arg:"" help:"MySQL connection string."`
}

func (c *ImportMySqlCmd) Run(ctx *context) error {
	return ctx.ws.ImportMySql(c.ConnectionString)
}
