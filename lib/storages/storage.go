package storages

import (
	"github.com/90mp11/ProjectReportCreator/lib/model"
)

type Storage interface {
	LoadProjects() (*model.Projects, error)
	WriteProjects() error
	WriteProject(proj *model.Project) error

	LoadTickets() (*model.Tickets, error)
	WriteTickets() error
	WriteTicket(ticket *model.Ticket) error

	LoadDocuments() (*model.Documents, error)
	WriteDocuments() error

	LoadContacts() (*model.Contacts, error)
	WriteContacts() error

	LoadConfig() (*map[string]string, error)
	WriteConfig() error

	Close() error
}

type Factory = func(path string) (Storage, error)
