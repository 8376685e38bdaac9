package workspace

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/abiosoft/lineprefix"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/90mp11/ProjectReportCreator/lib/consoles"
	"github.com/90mp11/ProjectReportCreator/lib/decks"
	"github.com/90mp11/ProjectReportCreator/lib/filters"
	"github.com/90mp11/ProjectReportCreator/lib/importers/trackercsv"
	"github.com/90mp11/ProjectReportCreator/lib/importers/trackerdb"
	"github.com/90mp11/ProjectReportCreator/lib/model"
	"github.com/90mp11/ProjectReportCreator/lib/renderers"
	"github.com/90mp11/ProjectReportCreator/lib/renderers/chartpng"
	"github.com/90mp11/ProjectReportCreator/lib/reports"
	"github.com/90mp11/ProjectReportCreator/lib/storages"
	"github.com/90mp11/ProjectReportCreator/lib/storages/orm"
	"github.com/90mp11/ProjectReportCreator/lib/utils"
)

// Default artifact names. The age and resolved names are the ones the
// report consumers already expect, so they are not up for grabs.
const (
	ScatterChartFile                 = "effort_impact_scatter.png"
	AgeChartFile                     = "age_bar_chart.png"
	ResolvedMonthChartFile           = "resolved_month_chart.png"
	GroupedResolvedMonthChartFile    = "grouped_resolved_month_chart.png"
	EngineerGroupedResolvedChartFile = "engineer_grouped_resolved_chart.png"
)

type Workspace struct {
	console  consoles.Console
	storage  storages.Storage
	renderer renderers.Renderer
}

func NewWorkspace(file string) (*Workspace, error) {
	if file == "" {
		if _, err := os.Stat("./.reportcreator"); err == nil {
			file = "./.reportcreator/reportcreator.sqlite"
		} else {
			file = "~/.reportcreator/reportcreator.sqlite"
		}
	}

	console := consoles.NewStdOutConsole()

	var storage storages.Storage
	var err error
	switch {
	case file == ":memory:":
		storage, err = orm.NewGormStorage(orm.WithSqliteInMemory(), console)

	case strings.HasSuffix(file, ".sqlite"):
		file, err = utils.PathAbs(file)
		if err != nil {
			return nil, err
		}

		err = createWorkspaceDir(file)
		if err != nil {
			return nil, err
		}

		storage, err = orm.NewGormStorage(orm.WithSqlite(file), console)

	default:
		return nil, fmt.Errorf("unknown storage type for file %v", file)
	}
	if err != nil {
		return nil, err
	}

	return &Workspace{
		console:  console,
		storage:  storage,
		renderer: chartpng.NewRenderer(),
	}, nil
}

func createWorkspaceDir(file string) error {
	path := filepath.Dir(file)

	if _, err := os.Stat(path); err != nil {
		fmt.Printf("Creating workspace at %v\n", path)
		err = os.MkdirAll(path, 0o700)
		if err != nil {
			return err
		}
	}

	return nil
}

func (w *Workspace) Close() error {
	return w.storage.Close()
}

func (w *Workspace) Console() consoles.Console {
	return w.console
}

func (w *Workspace) LoadProjects() (*model.Projects, error) {
	return w.storage.LoadProjects()
}

func (w *Workspace) LoadTickets() (*model.Tickets, error) {
	return w.storage.LoadTickets()
}

func (w *Workspace) LoadDocuments() (*model.Documents, error) {
	return w.storage.LoadDocuments()
}

func (w *Workspace) LoadContacts() (*model.Contacts, error) {
	return w.storage.LoadContacts()
}

func (w *Workspace) Execute(f func(consoles.Console, storages.Storage) error) error {
	return f(w.console, w.storage)
}

func (w *Workspace) SetGlobalConfig(config string, value string) (bool, error) {
	cfg, err := w.storage.LoadConfig()
	if err != nil {
		return false, err
	}

	v, ok := (*cfg)[config]
	if ok && v == value {
		return false, nil
	}

	(*cfg)[config] = value

	return true, nil
}

func (w *Workspace) SetProjectConfig(proj *model.Project, config string, value string) (bool, error) {
	changed := proj.SetData(config, value)

	return changed, nil
}

// IgnoreProjects marks the projects matching rule as ignored, or clears the
// mark when ignore is false. It returns how many projects changed.
func (w *Workspace) IgnoreProjects(rule string, ignore bool) (int, error) {
	projects, err := w.storage.LoadProjects()
	if err != nil {
		return 0, err
	}

	filter, err := filters.ParseProjectFilter(rule)
	if err != nil {
		return 0, err
	}

	changed := 0
	for _, p := range projects.List() {
		if !filter(p) || p.Ignore == ignore {
			continue
		}

		p.Ignore = ignore
		changed++
	}

	return changed, nil
}

func (w *Workspace) ImportTrackerFiles(dirs []string, opts *trackercsv.Options) error {
	importer := trackercsv.NewImporter(w.console, w.storage)

	for _, dir := range dirs {
		err := importer.ImportAll(dir, opts)
		if err != nil {
			return err
		}
	}

	return nil
}

func (w *Workspace) ImportProjects(patterns []string, opts *trackercsv.Options) error {
	importer := trackercsv.NewImporter(w.console, w.storage)
	return importer.ImportProjects(patterns, opts)
}

func (w *Workspace) ImportTickets(patterns []string, opts *trackercsv.Options) error {
	importer := trackercsv.NewImporter(w.console, w.storage)
	return importer.ImportTickets(patterns, opts)
}

func (w *Workspace) ImportDocuments(patterns []string, opts *trackercsv.Options) error {
	importer := trackercsv.NewImporter(w.console, w.storage)
	return importer.ImportDocuments(patterns, opts)
}

func (w *Workspace) ImportContacts(patterns []string, opts *trackercsv.Options) error {
	importer := trackercsv.NewImporter(w.console, w.storage)
	return importer.ImportContacts(patterns, opts)
}

func (w *Workspace) ImportMySql(connectionString string) error {
	importer := trackerdb.NewImporter(w.console, w.storage)
	return importer.Import(connectionString)
}

func (w *Workspace) ReportScatter(file string, filter filters.ProjectFilter, opts *reports.ScatterOptions) error {
	projects, err := w.storage.LoadProjects()
	if err != nil {
		return err
	}

	included := filterProjects(projects.List(), filter)

	plot, stats := reports.ComputeProjectScatter(included, opts)

	if stats.UnmappedPriority > 0 {
		w.console.Printf("Leaving %v projects out of the scatter: priority has no color\n", stats.UnmappedPriority)
	}
	if stats.MissingDimension > 0 {
		w.console.Printf("Leaving %v projects out of the scatter: no effort or impact rank\n", stats.MissingDimension)
	}

	return w.renderChart(file, func(out io.Writer) error {
		return w.renderer.Scatter(plot, out)
	})
}

func (w *Workspace) ReportAge(file string, filter filters.TicketFilter) error {
	tickets, err := w.storage.LoadTickets()
	if err != nil {
		return err
	}

	included := filterTickets(tickets.List(), filter)

	rows := reports.ComputeOpenTicketAges(included, time.Now())
	plot := reports.NewAgePlot(rows)

	return w.renderChart(file, func(out io.Writer) error {
		return w.renderer.Bars(plot, out)
	})
}

func (w *Workspace) ReportResolved(file string, filter filters.TicketFilter, opts *reports.ResolvedOptions) error {
	tickets, err := w.storage.LoadTickets()
	if err != nil {
		return err
	}

	included := filterTickets(tickets.List(), filter)

	plot := reports.NewResolvedPlot(included, opts)

	return w.renderChart(file, func(out io.Writer) error {
		return w.renderer.Bars(plot, out)
	})
}

// ReportAll renders every chart into dir. The artifacts are
// independent: one failing does not stop the others, but the failures
// show up in the returned error.
func (w *Workspace) ReportAll(dir string, projFilter filters.ProjectFilter, ticketFilter filters.TicketFilter) error {
	artifacts := []struct {
		file   string
		render func(file string) error
	}{
		{ScatterChartFile, func(file string) error {
			return w.ReportScatter(file, projFilter, nil)
		}},
		{AgeChartFile, func(file string) error {
			return w.ReportAge(file, ticketFilter)
		}},
		{ResolvedMonthChartFile, func(file string) error {
			return w.ReportResolved(file, ticketFilter, &reports.ResolvedOptions{})
		}},
		{GroupedResolvedMonthChartFile, func(file string) error {
			return w.ReportResolved(file, ticketFilter, &reports.ResolvedOptions{
				Mode: reports.BarsGrouped,
			})
		}},
		{EngineerGroupedResolvedChartFile, func(file string) error {
			return w.ReportResolved(file, ticketFilter, &reports.ResolvedOptions{
				By:   reports.ResolvedByEngineer,
				Mode: reports.BarsGrouped,
			})
		}},
	}

	var failed []string

	for _, artifact := range artifacts {
		err := artifact.render(filepath.Join(dir, artifact.file))
		if err != nil {
			w.console.Printf("Error writing %v: %v\n", artifact.file, err)
			failed = append(failed, artifact.file)
		}
	}

	if len(failed) > 0 {
		return fmt.Errorf("%v reports failed: %v", len(failed), strings.Join(failed, ", "))
	}

	return nil
}

func (w *Workspace) renderChart(file string, render func(io.Writer) error) error {
	file, err := utils.PathAbs(file)
	if err != nil {
		return err
	}

	w.console.Printf("Writing %v...\n", file)

	f, err := os.Create(file)
	if err != nil {
		return errors.Wrapf(err, "error creating %v", file)
	}
	defer f.Close()

	err = render(f)
	if err != nil {
		return errors.Wrapf(err, "error writing %v", file)
	}

	return nil
}

// WriteDeck builds the project status deck and writes its directives
// as JSON. The closing summary counts the whole register, not just the
// filtered projects.
func (w *Workspace) WriteDeck(file string, filter filters.ProjectFilter, opts *decks.Options) error {
	projects, err := w.storage.LoadProjects()
	if err != nil {
		return err
	}

	tickets, err := w.storage.LoadTickets()
	if err != nil {
		return err
	}

	documents, err := w.storage.LoadDocuments()
	if err != nil {
		return err
	}

	contacts, err := w.storage.LoadContacts()
	if err != nil {
		return err
	}

	if opts == nil {
		opts = &decks.Options{}
	}
	if opts.Summary == nil {
		opts.Summary = &decks.Summary{
			Projects:  len(projects.List()),
			Tickets:   len(tickets.List()),
			Documents: len(documents.List()),
			Contacts:  len(contacts.List()),
		}
	}

	deck := decks.NewProjectDeck(filterProjects(projects.List(), filter), opts)

	file, err = utils.PathAbs(file)
	if err != nil {
		return err
	}

	w.console.Printf("Writing %v...\n", file)

	f, err := os.Create(file)
	if err != nil {
		return errors.Wrapf(err, "error creating %v", file)
	}
	defer f.Close()

	err = deck.Write(f)
	if err != nil {
		return errors.Wrapf(err, "error writing %v", file)
	}

	return nil
}

// RunDeckWriter hands the deck file over to an external slide writing
// command, echoing its output through the console.
func (w *Workspace) RunDeckWriter(command []string, file string) error {
	if len(command) == 0 {
		return nil
	}

	file, err := utils.PathAbs(file)
	if err != nil {
		return err
	}

	args := append(command[1:], file)
	cmd := exec.Command(command[0], args...)

	w.console.Printf("Executing '%v'\n", strings.Join(cmd.Args, "' '"))
	w.console.PushPrefix("%v: ", filepath.Base(command[0]))

	prefix := lineprefix.PrefixFunc(func() string {
		return w.console.Prepare("")
	})

	cmd.Stdin = os.Stdin
	cmd.Stdout = lineprefix.New(lineprefix.Writer(os.Stdout), prefix)
	cmd.Stderr = lineprefix.New(lineprefix.Writer(os.Stderr), prefix)

	err = cmd.Run()

	w.console.PopPrefix()

	return errors.Wrapf(err, "error running %v", command[0])
}

func (w *Workspace) Write() error {
	w.console.Printf("Writing results...\n")

	err := w.storage.WriteConfig()
	if err != nil {
		return err
	}

	err = w.storage.WriteProjects()
	if err != nil {
		return err
	}

	err = w.storage.WriteTickets()
	if err != nil {
		return err
	}

	err = w.storage.WriteDocuments()
	if err != nil {
		return err
	}

	return w.storage.WriteContacts()
}

func filterProjects(projects []*model.Project, filter filters.ProjectFilter) []*model.Project {
	return lo.Filter(projects, func(p *model.Project, _ int) bool {
		return !p.Ignore && (filter == nil || filter(p))
	})
}

func filterTickets(tickets []*model.Ticket, filter filters.TicketFilter) []*model.Ticket {
	if filter == nil {
		return tickets
	}

	return lo.Filter(tickets, func(t *model.Ticket, _ int) bool { return filter(t) })
}
