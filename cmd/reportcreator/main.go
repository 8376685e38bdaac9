package main

import (
	"github.com/alecthomas/kong"

	"github.com/90mp11/ProjectReportCreator/lib/workspace"
)

var cli struct {
	Workspace string `short:"w" help:"Workspace to store data. Default is ./.reportcreator or ~/.reportcreator if that does not exist." type:"path"`

	Show ShowCmd `cmd:"" help:"Show a summary of the imported registers."`

	Config struct {
		Set ConfigSetCmd `cmd:"" help:"Set configuration parameters."`
	} `cmd:""`

	Ignore   IgnoreCmd   `cmd:"" help:"Mark projects as ignored so reports and decks leave them out."`
	Unignore UnignoreCmd `cmd:"" help:"Clear the ignored mark from projects."`

	Import struct {
		All       ImportAllCmd       `cmd:"" help:"Import projects, tickets, documents and contacts from tracker CSV exports."`
		Projects  ImportProjectsCmd  `cmd:"" help:"Import projects from tracker CSV exports."`
		Tickets   ImportTicketsCmd   `cmd:"" help:"Import tickets from tracker CSV exports."`
		Documents ImportDocumentsCmd `cmd:"" help:"Import documents from tracker CSV exports."`
		Contacts  ImportContactsCmd  `cmd:"" help:"Import contacts from tracker CSV exports."`
		Mysql     ImportMySqlCmd     `cmd:"" help:"Import tickets from a tracker MySQL database."`
	} `cmd:""`

	Report struct {
		Scatter  ReportScatterCmd  `cmd:"" help:"Render the effort vs impact scatter chart."`
		Age      ReportAgeCmd      `cmd:"" help:"Render the open ticket age chart."`
		Resolved ReportResolvedCmd `cmd:"" help:"Render the resolved tickets charts."`
		All      ReportAllCmd      `cmd:"" help:"Render every chart into a directory."`
	} `cmd:""`

	Deck DeckCmd `cmd:"" help:"Write the status deck directives file."`

	Server ServerCmd `cmd:"" help:"Start the web interface."`
}

type context struct {
	ws *workspace.Workspace
}

func main() {
	ctx := kong.Parse(&cli, kong.ShortUsageOnError())

	ws, err := workspace.NewWorkspace(cli.Workspace)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(&context{
		ws: ws,
	})
	ctx.FatalIfErrorf(err)
}
