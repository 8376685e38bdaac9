package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/90mp11/ProjectReportCreator/frontend"
	"github.com/90mp11/ProjectReportCreator/lib/consoles"
	"github.com/90mp11/ProjectReportCreator/lib/model"
	"github.com/90mp11/ProjectReportCreator/lib/storages"
)

type Options struct {
	Port uint
}

func Run(console consoles.Console, storage storages.Storage, opts *Options) error {
	s := newServer(opts)

	console.Printf("Loading existing data...\n")

	err := s.load(storage)
	if err != nil {
		return err
	}

	console.Printf("Starting server on port %v...\n", s.opts.Port)

	return s.run()
}

type server struct {
	opts *Options

	storage   storages.Storage
	projects  *model.Projects
	tickets   *model.Tickets
	documents *model.Documents
	contacts  *model.Contacts
}

func newServer(opts *Options) *server {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Port == 0 {
		opts.Port = 2478
	}

	return &server{
		opts: opts,
	}
}

func (s *server) load(storage storages.Storage) error {
	var err error

	s.storage = storage

	s.projects, err = storage.LoadProjects()
	if err != nil {
		return err
	}

	s.tickets, err = storage.LoadTickets()
	if err != nil {
		return err
	}

	s.documents, err = storage.LoadDocuments()
	if err != nil {
		return err
	}

	s.contacts, err = storage.LoadContacts()
	if err != nil {
		return err
	}

	return nil
}

func (s *server) run() error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	s.initFrontend(r)
	s.initProjects(r)
	s.initTickets(r)
	s.initStats(r)

	return r.Run(fmt.Sprintf(":%v", s.opts.Port))
}

func (s *server) initFrontend(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		index, err := frontend.Index.ReadFile("dist/index.html")
		if err != nil {
			sendError(c, err)
			return
		}

		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
	})
}
