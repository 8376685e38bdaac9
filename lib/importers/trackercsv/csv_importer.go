package trackercsv

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-set/v2"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/90mp11/ProjectReportCreator/lib/categories"
	"github.com/90mp11/ProjectReportCreator/lib/consoles"
	"github.com/90mp11/ProjectReportCreator/lib/importers/common"
	"github.com/90mp11/ProjectReportCreator/lib/model"
	"github.com/90mp11/ProjectReportCreator/lib/storages"
	"github.com/90mp11/ProjectReportCreator/lib/utils"
)

// Well known names of the tracker export files.
const (
	ProjectsFile  = "PROJECT.csv"
	TicketsFile   = "CONCESSION.csv"
	DocumentsFile = "DOC.csv"
	ContactsFile  = "CONTACT.csv"
)

var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02/01/2006 15:04",
	"02/01/2006",
	"Jan 2, 2006",
}

// Importer loads the CSV exports of the ticket tracker into the
// workspace. Each file kind has a fixed set of known columns; extra
// columns are kept in the record's Data map.
type Importer struct {
	console consoles.Console
	storage storages.Storage

	statuses   *categories.Map[string]
	stagings   *categories.Map[string]
	priorities *categories.Map[string]
	efforts    *categories.Map[int]
	impacts    *categories.Map[int]

	unknown *set.Set[string]
}

type Options struct {
	// SeenAt is stamped on the imported records. Zero means now.
	SeenAt time.Time
}

func (o *Options) seenAt() time.Time {
	if o == nil || o.SeenAt.IsZero() {
		return time.Now()
	}
	return o.SeenAt
}

func NewImporter(console consoles.Console, storage storages.Storage) *Importer {
	return &Importer{
		console:    console,
		storage:    storage,
		statuses:   categories.StatusColors(),
		stagings:   categories.StagingGlyphs(),
		priorities: categories.PriorityTexts(),
		efforts:    categories.EffortRanks(),
		impacts:    categories.ImpactRanks(),
		unknown:    set.New[string](10),
	}
}

// ImportAll imports the well known export files from dir, skipping the
// ones that are not there.
func (i *Importer) ImportAll(dir string, options *Options) error {
	imports := []struct {
		file string
		run  func(patterns []string, options *Options) error
	}{
		{ProjectsFile, i.ImportProjects},
		{TicketsFile, i.ImportTickets},
		{DocumentsFile, i.ImportDocuments},
		{ContactsFile, i.ImportContacts},
	}

	for _, imp := range imports {
		path := filepath.Join(dir, imp.file)

		exists, err := utils.FileExists(path)
		if err != nil {
			return err
		}
		if !exists {
			i.console.Printf("Skipping %v: not found in %v\n", imp.file, dir)
			continue
		}

		err = imp.run([]string{path}, options)
		if err != nil {
			return err
		}
	}

	return nil
}

func (i *Importer) ImportProjects(patterns []string, options *Options) error {
	projects, err := i.storage.LoadProjects()
	if err != nil {
		return err
	}

	seen := options.seenAt()

	err = common.FindAndImportFiles(i.console, "project exports", patterns, func(file string) error {
		return i.processProjects(projects, file, seen)
	})
	if err != nil {
		return err
	}

	i.console.Printf("Writing results...\n")

	return i.storage.WriteProjects()
}

func (i *Importer) processProjects(projects *model.Projects, file string, seen time.Time) error {
	rows, header, err := readRecords(file, "Project")
	if err != nil {
		return err
	}

	known := set.From([]string{
		"Project", "Status", "Staging", "Priority",
		"Estimated Effort", "Estimated Impact",
		"Owner", "Team", "Summary",
	})

	for _, row := range rows {
		name := row.get("Project")
		if name == "" {
			continue
		}

		p := projects.GetOrCreate(name)
		p.Status = i.canonical("status", i.statuses.Canonical, row.get("Status"))
		p.Staging = i.canonical("staging", i.stagings.Canonical, row.get("Staging"))
		p.Priority = i.canonical("priority", i.priorities.Canonical, row.get("Priority"))
		p.Effort = i.canonical("effort", i.efforts.Canonical, row.get("Estimated Effort"))
		p.Impact = i.canonical("impact", i.impacts.Canonical, row.get("Estimated Impact"))
		p.Owner = row.get("Owner")
		p.Team = row.get("Team")
		p.Summary = row.get("Summary")
		p.SeenAt(seen)

		for _, col := range header {
			if !known.Contains(col) {
				p.SetData(col, row.get(col))
			}
		}
	}

	return nil
}

func (i *Importer) ImportTickets(patterns []string, options *Options) error {
	tickets, err := i.storage.LoadTickets()
	if err != nil {
		return err
	}

	err = common.FindAndImportFiles(i.console, "ticket exports", patterns, func(file string) error {
		return i.processTickets(tickets, file)
	})
	if err != nil {
		return err
	}

	i.console.Printf("Writing results...\n")

	return i.storage.WriteTickets()
}

func (i *Importer) processTickets(tickets *model.Tickets, file string) error {
	rows, header, err := readRecords(file, "Reference")
	if err != nil {
		return err
	}

	known := set.From([]string{
		"Reference", "Title", "Status", "AssignedTo",
		"Closed by", "Created", "Closed", "Labels",
	})

	for _, row := range rows {
		reference := row.get("Reference")
		if reference == "" {
			continue
		}

		created, err := parseDate(row.get("Created"))
		if err != nil {
			i.console.Printf("Skipping %v: %v\n", reference, err)
			continue
		}

		closed, err := parseDate(row.get("Closed"))
		if err != nil {
			i.console.Printf("Skipping %v: %v\n", reference, err)
			continue
		}

		t := tickets.GetOrCreate(reference)
		t.Title = row.get("Title")
		t.Status = i.canonical("ticket status", i.statuses.Canonical, row.get("Status"))
		t.AssignedTo = row.get("AssignedTo")
		t.ClosedBy = row.get("Closed by")
		if !created.IsZero() {
			t.CreatedAt = created
		}

		// an empty Closed means the ticket is open now, even if an older
		// export had it closed
		if closed.IsZero() {
			t.ClosedAt = nil
		} else {
			t.ClosedAt = &closed
		}

		for _, label := range strings.Split(row.get("Labels"), ",") {
			label = strings.TrimSpace(label)
			if label != "" {
				t.AddLabel(label)
			}
		}

		for _, col := range header {
			if !known.Contains(col) && row.get(col) != "" {
				t.Data[col] = row.get(col)
			}
		}
	}

	return nil
}

func (i *Importer) ImportDocuments(patterns []string, options *Options) error {
	documents, err := i.storage.LoadDocuments()
	if err != nil {
		return err
	}

	seen := options.seenAt()

	err = common.FindAndImportFiles(i.console, "document exports", patterns, func(file string) error {
		return i.processDocuments(documents, file, seen)
	})
	if err != nil {
		return err
	}

	i.console.Printf("Writing results...\n")

	return i.storage.WriteDocuments()
}

func (i *Importer) processDocuments(documents *model.Documents, file string, seen time.Time) error {
	rows, header, err := readRecords(file, "Title")
	if err != nil {
		return err
	}

	known := set.From([]string{"Title", "Category", "Owner", "Link"})

	for _, row := range rows {
		title := row.get("Title")
		if title == "" {
			continue
		}

		d := documents.GetOrCreate(title)
		d.Category = row.get("Category")
		d.Owner = row.get("Owner")
		d.Link = row.get("Link")
		d.SeenAt(seen)

		for _, col := range header {
			if !known.Contains(col) && row.get(col) != "" {
				d.Data[col] = row.get(col)
			}
		}
	}

	return nil
}

func (i *Importer) ImportContacts(patterns []string, options *Options) error {
	contacts, err := i.storage.LoadContacts()
	if err != nil {
		return err
	}

	seen := options.seenAt()

	err = common.FindAndImportFiles(i.console, "contact exports", patterns, func(file string) error {
		return i.processContacts(contacts, file, seen)
	})
	if err != nil {
		return err
	}

	i.console.Printf("Writing results...\n")

	return i.storage.WriteContacts()
}

func (i *Importer) processContacts(contacts *model.Contacts, file string, seen time.Time) error {
	rows, header, err := readRecords(file, "Name")
	if err != nil {
		return err
	}

	known := set.From([]string{"Name", "Role", "Team", "Email"})

	for _, row := range rows {
		name := row.get("Name")
		if name == "" {
			continue
		}

		c := contacts.GetOrCreate(name)
		c.Role = row.get("Role")
		c.Team = row.get("Team")
		c.Email = row.get("Email")
		c.SeenAt(seen)

		for _, col := range header {
			if !known.Contains(col) && row.get(col) != "" {
				c.Data[col] = row.get(col)
			}
		}
	}

	return nil
}

// canonical fixes the casing of a label against its category map. A
// label outside the map is kept as typed, so that the fallbacks decide
// what to do with it later, but is reported once.
func (i *Importer) canonical(kind string, canon func(string) (string, bool), value string) string {
	if value == "" {
		return ""
	}

	c, ok := canon(value)
	if ok {
		return c
	}

	if i.unknown.Insert(kind + "\n" + value) {
		i.console.Printf("Unknown %v in tracker data: '%v'\n", kind, value)
	}

	return value
}

type record map[string]string

func (r record) get(col string) string {
	return strings.TrimSpace(r[col])
}

func readRecords(file string, requiredColumns ...string) ([]record, []string, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "error opening %v", file)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	all, err := reader.ReadAll()
	if err != nil {
		return nil, nil, errors.Wrapf(err, "error reading %v", file)
	}

	if len(all) == 0 {
		return nil, nil, errors.Errorf("missing header row in %v", file)
	}

	header := lo.Map(all[0], func(col string, _ int) string {
		return strings.TrimSpace(col)
	})

	for _, req := range requiredColumns {
		if lo.IndexOf(header, req) < 0 {
			return nil, nil, errors.Errorf("missing column '%v' in %v", req, file)
		}
	}

	var result []record
	for _, cols := range all[1:] {
		row := record{}
		for j, v := range cols {
			if j < len(header) {
				row[header[j]] = v
			}
		}
		result = append(result, row)
	}

	return result, header, nil
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
	}

	return time.Time{}, errors.Errorf("unparseable date: '%v'", value)
}
