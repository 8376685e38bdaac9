package main

import (
	"fmt"

	"github.com/gertd/go-pluralize"
)

type IgnoreCmd struct {
	Rule string `arg:"" help:"Project filter rule to mark as ignored."`
}

func (c *IgnoreCmd) Run(ctx *context) error {
	return runIgnore(ctx, c.Rule, true)
}

type UnignoreCmd struct {
	Rule string `arg:"" help:"Project filter rule to stop ignoring."`
}

func (c *UnignoreCmd) Run(ctx *context) error {
	return runIgnore(ctx, c.Rule, false)
}

func runIgnore(ctx *context, rule string, ignore bool) error {
	changed, err := ctx.ws.IgnoreProjects(rule, ignore)
	if err != nil {
		return err
	}

	plural := pluralize.NewClient()
	fmt.Printf("Changed %v\n", plural.Pluralize("project", changed, true))

	if changed == 0 {
		return nil
	}

	return ctx.ws.Write()
}
