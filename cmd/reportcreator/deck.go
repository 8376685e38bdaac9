package main

import (
	"github.com/90mp11/ProjectReportCreator/lib/decks"
)

type DeckCmd struct {
	cmdWithProjectFilter

	Output   string   `short:"o" default:"status_deck.json" help:"Directives file to write." type:"path"`
	Template string   `help:"Template file the deck writer should start from."`
	Title    string   `help:"Title of the project button slides."`
	Writer   []string `help:"Command to hand the directives file to. The file is appended as the last argument."`
}

func (c *DeckCmd) Run(ctx *context) error {
	filter, err := c.createProjectFilter()
	if err != nil {
		return err
	}

	err = ctx.ws.WriteDeck(c.Output, filter, &decks.Options{
		Template:   c.Template,
		SlideTitle: c.Title,
	})
	if err != nil {
		return err
	}

	if len(c.Writer) == 0 {
		return nil
	}

	return ctx.ws.RunDeckWriter(c.Writer, c.Output)
}
