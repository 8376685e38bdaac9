package trackerdb

import (
	"database/sql"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	_ "github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"

	"github.com/90mp11/ProjectReportCreator/lib/consoles"
	"github.com/90mp11/ProjectReportCreator/lib/model"
	"github.com/90mp11/ProjectReportCreator/lib/storages"
	"github.com/90mp11/ProjectReportCreator/lib/utils"
)

type Importer struct {
	console consoles.Console
	storage storages.Storage
}

func NewImporter(console consoles.Console, storage storages.Storage) *Importer {
	return &Importer{
		console: console,
		storage: storage,
	}
}

// Import loads tickets straight from a tracker MySQL database. The
// connection string follows the go-sql-driver format, for example
// user:pass@tcp(tracker:3306)/tracker
func (i *Importer) Import(connectionString string) error {
	tickets, err := i.storage.LoadTickets()
	if err != nil {
		return err
	}

	db, err := sql.Open("mysql", withParseTime(connectionString))
	if err != nil {
		return errors.Wrapf(err, "error connecting to MySQL using %v", connectionString)
	}

	defer db.Close()

	db.SetConnMaxLifetime(time.Minute)
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	err = i.importTickets(db, tickets)
	if err != nil {
		return err
	}

	err = i.importLabels(db, tickets)
	if err != nil {
		return err
	}

	i.console.Printf("Writing results...\n")

	return i.storage.WriteTickets()
}

// withParseTime makes the driver hand us time.Time values for the
// datetime columns.
func withParseTime(connectionString string) string {
	if strings.Contains(connectionString, "parseTime") {
		return connectionString
	}

	if strings.Contains(connectionString, "?") {
		return connectionString + "&parseTime=true"
	}

	return connectionString + "?parseTime=true"
}

func (i *Importer) importTickets(db *sql.DB, tickets *model.Tickets) error {
	results, err := db.Query(`
		select reference,
			   title,
			   status,
			   assigned_to,
			   closed_by,
			   created_at,
			   closed_at
		from tickets
		`)
	if err != nil {
		return errors.Wrap(err, "error querying tracker tickets")
	}

	type ticketInfo struct {
		reference  string
		title      sql.NullString
		status     sql.NullString
		assignedTo sql.NullString
		closedBy   sql.NullString
		createdAt  sql.NullTime
		closedAt   sql.NullTime
	}

	spinner := utils.NewSpinner("Importing tickets")

	count := 0
	for results.Next() {
		var row ticketInfo

		err = results.Scan(&row.reference, &row.title, &row.status, &row.assignedTo,
			&row.closedBy, &row.createdAt, &row.closedAt)
		if err != nil {
			return errors.Wrap(err, "error querying tracker tickets")
		}

		if row.reference == "" {
			continue
		}

		ticket := tickets.GetOrCreate(row.reference)
		ticket.Title = row.title.String
		ticket.Status = row.status.String
		ticket.AssignedTo = row.assignedTo.String
		ticket.ClosedBy = row.closedBy.String
		ticket.CreatedAt = row.createdAt.Time

		if row.closedAt.Valid {
			closed := row.closedAt.Time
			ticket.ClosedAt = &closed
		} else {
			ticket.ClosedAt = nil
		}

		count++
		_ = spinner.Add(1)
	}

	_ = spinner.Finish()

	i.console.Printf("Imported %v tickets\n", humanize.Comma(int64(count)))

	return nil
}

func (i *Importer) importLabels(db *sql.DB, tickets *model.Tickets) error {
	results, err := db.Query(`
		select ticket_reference,
			   label
		from ticket_labels
		`)
	if err != nil {
		return errors.Wrap(err, "error querying tracker labels")
	}

	count := 0
	for results.Next() {
		var reference, label string

		err = results.Scan(&reference, &label)
		if err != nil {
			return errors.Wrap(err, "error querying tracker labels")
		}

		ticket := tickets.Get(reference)
		if ticket == nil || label == "" {
			continue
		}

		ticket.AddLabel(label)
		count++
	}

	i.console.Printf("Imported %v labels\n", humanize.Comma(int64(count)))

	return nil
}
