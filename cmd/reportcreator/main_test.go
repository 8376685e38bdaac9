package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/90mp11/ProjectReportCreator/lib/importers/trackercsv"
	"github.com/90mp11/ProjectReportCreator/lib/workspace"
)

func TestImportAndReportAll(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	projects := "Project,Status,Staging,Priority,Estimated Effort,Estimated Impact,Owner\n" +
		"Wifi upgrade,open,triage,p1,Weeks,High,Ana\n" +
		"Office move,on hold,roll-OUT,p2,Months,Very High,Ben\n"

	tickets := "Reference,Title,Status,AssignedTo,Closed by,Created,Closed,Labels\n" +
		"INC-1,Reset router,Open,Ana,,2024-01-02,,network\n" +
		"INC-2,Move VLAN,Closed,Ben,Ben,2024-01-03,2024-02-09,\n"

	writeExport(t, dir, trackercsv.ProjectsFile, projects)
	writeExport(t, dir, trackercsv.TicketsFile, tickets)

	ws, err := workspace.NewWorkspace(":memory:")
	assert.Nil(t, err)

	err = ws.ImportTrackerFiles([]string{dir}, nil)
	assert.Nil(t, err)

	out := t.TempDir()

	err = ws.ReportAll(out, nil, nil)
	assert.Nil(t, err)

	charts := []string{
		workspace.ScatterChartFile,
		workspace.AgeChartFile,
		workspace.ResolvedMonthChartFile,
		workspace.GroupedResolvedMonthChartFile,
		workspace.EngineerGroupedResolvedChartFile,
	}

	for _, name := range charts {
		stat, err := os.Stat(filepath.Join(out, name))
		assert.Nil(t, err, name)
		assert.NotZero(t, stat.Size(), name)
	}
}

func TestDeckLeavesOutIgnoredProjects(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	writeExport(t, dir, trackercsv.ProjectsFile, "Project,Status\nWifi upgrade,Open\n")

	ws, err := workspace.NewWorkspace(":memory:")
	assert.Nil(t, err)

	err = ws.ImportTrackerFiles([]string{dir}, nil)
	assert.Nil(t, err)

	out := filepath.Join(dir, "status_deck.json")

	err = ws.WriteDeck(out, nil, nil)
	assert.Nil(t, err)

	deck := readDeck(t, out)
	assert.Len(t, deck.Slides, 2)
	assert.Len(t, deck.Slides[0].Shapes, 1)
	assert.Equal(t, "Wifi upgrade", deck.Slides[0].Shapes[0].Title)

	changed, err := ws.IgnoreProjects("wifi*", true)
	assert.Nil(t, err)
	assert.Equal(t, 1, changed)

	err = ws.WriteDeck(out, nil, nil)
	assert.Nil(t, err)

	deck = readDeck(t, out)
	assert.Len(t, deck.Slides, 1)
	assert.Equal(t, "Summary", deck.Slides[0].Title)
}

type deckFile struct {
	Slides []struct {
		Title  string `json:"title"`
		Shapes []struct {
			Title string `json:"title"`
		} `json:"shapes"`
	} `json:"slides"`
}

func readDeck(t *testing.T, file string) deckFile {
	contents, err := os.ReadFile(file)
	assert.Nil(t, err)

	var result deckFile
	err = json.Unmarshal(contents, &result)
	assert.Nil(t, err)

	return result
}

func writeExport(t *testing.T, dir, name, contents string) {
	err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o600)
	assert.Nil(t, err)
}
