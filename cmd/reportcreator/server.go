package main

import (
	"github.com/90mp11/ProjectReportCreator/lib/consoles"
	"github.com/90mp11/ProjectReportCreator/lib/server"
	"github.com/90mp11/ProjectReportCreator/lib/storages"
)

type ServerCmd struct {
	Port uint `default:"2478" help:"Port to listen to."`
}

func (c *ServerCmd) Run(ctx *context) error {
	return ctx.ws.Execute(func(console consoles.Console, storage storages.Storage) error {
		return server.Run(console, storage, &server.Options{
			Port: c.Port,
		})
	})
}
