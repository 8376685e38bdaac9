package main

import (
	"fmt"

	"github.com/90mp11/ProjectReportCreator/lib/filters"
)

type ConfigSetCmd struct {
	Config  string `arg:"" help:"Configuration name to change."`
	Value   string `arg:"" help:"Configuration value to set."`
	Project string `help:"When set, store the configuration on the matching projects instead of the workspace."`
}

func (c *ConfigSetCmd) Run(ctx *context) error {
	changed, err := c.set(ctx)
	if err != nil {
		return err
	}

	if !changed {
		return nil
	}

	return ctx.ws.Write()
}

func (c *ConfigSetCmd) set(ctx *context) (bool, error) {
	if c.Project == "" {
		return ctx.ws.SetGlobalConfig(c.Config, c.Value)
	}

	projects, err := ctx.ws.LoadProjects()
	if err != nil {
		return false, err
	}

	filter, err := filters.ParseProjectFilter(c.Project)
	if err != nil {
		return false, err
	}

	changed := false

	for _, p := range projects.List() {
		if !filter(p) {
			continue
		}

		fmt.Printf("Setting '%v' '%v' = '%v'\n", p.Name, c.Config, c.Value)

		ch, err := ctx.ws.SetProjectConfig(p, c.Config, c.Value)
		if err != nil {
			return false, err
		}

		changed = changed || ch
	}

	return changed, nil
}
