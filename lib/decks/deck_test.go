package decks

import (
	"fmt"
	"testing"

	"github.com/bloomberg/go-testgroup"

	"github.com/90mp11/ProjectReportCreator/lib/model"
)

func TestProjectDeck(t *testing.T) {
	testgroup.RunInParallel(t, &ProjectDeckTests{})
}

type ProjectDeckTests struct {
}

func (g *ProjectDeckTests) newProject(name, priority, status, staging string) *model.Project {
	p := model.NewProject(name, nil)
	p.Priority = priority
	p.Status = status
	p.Staging = staging
	return p
}

func (g *ProjectDeckTests) GridPositions(t *testgroup.T) {
	left, top := GridPosition(0)
	t.Equal(0.65, left)
	t.Equal(2.0, top)

	left, top = GridPosition(3)
	t.InDelta(24.65, left, 0.0001)
	t.Equal(2.0, top)

	left, top = GridPosition(4)
	t.Equal(0.65, left)
	t.InDelta(5.0, top, 0.0001)
}

func (g *ProjectDeckTests) LastColumnStaysOnTheSlide(t *testgroup.T) {
	left, _ := GridPosition(GridColumns - 1)

	t.Less(left+ButtonWidthCm, SlideWidthCm)
}

func (g *ProjectDeckTests) LastRowStaysOnTheSlide(t *testgroup.T) {
	_, top := GridPosition(ButtonsPerSlide - 1)

	t.Less(top+ButtonHeightCm, SlideHeightCm)
}

func (g *ProjectDeckTests) TwentyFirstButtonOpensANewSlide(t *testgroup.T) {
	var projects []*model.Project
	for i := 0; i < 21; i++ {
		projects = append(projects, g.newProject(fmt.Sprintf("proj %02d", i), "P3", "Open", "Triage"))
	}

	deck := NewProjectDeck(projects, nil)

	t.Len(deck.Slides, 2)
	t.Len(deck.Slides[0].Shapes, 20)
	t.Len(deck.Slides[1].Shapes, 1)

	overflow := deck.Slides[1].Shapes[0]
	t.Equal(0.65, overflow.LeftCm)
	t.Equal(2.0, overflow.TopCm)
}

func (g *ProjectDeckTests) HighestPriorityComesFirst(t *testgroup.T) {
	projects := []*model.Project{
		g.newProject("b", "P3", "Open", "Triage"),
		g.newProject("a", "P9", "Open", "Triage"),
		g.newProject("c", "P1", "Open", "Triage"),
		g.newProject("d", "P3", "Open", "Triage"),
	}

	deck := NewProjectDeck(projects, nil)

	shapes := deck.Slides[0].Shapes
	t.Equal("c", shapes[0].Title)
	t.Equal("b", shapes[1].Title)
	t.Equal("d", shapes[2].Title)
	t.Equal("a", shapes[3].Title)
}

func (g *ProjectDeckTests) ButtonCarriesStatusPriorityAndStaging(t *testgroup.T) {
	deck := NewProjectDeck([]*model.Project{
		g.newProject("proj", "P1", "Open", "Beta Test"),
	}, nil)

	button := deck.Slides[0].Shapes[0]

	t.Equal("button", button.Kind)
	t.Equal("accent5", button.Fill)
	t.Equal("P1 🔥", button.Subtitle)
	t.Equal("▰▰▰▰▱", button.Footer)
	t.Equal(7.8, button.WidthCm)
	t.Equal(2.8, button.HeightCm)
}

func (g *ProjectDeckTests) UnknownStatusFillsWithTealSlot(t *testgroup.T) {
	deck := NewProjectDeck([]*model.Project{
		g.newProject("proj", "P1", "Archived", "Triage"),
	}, nil)

	t.Equal("accent1", deck.Slides[0].Shapes[0].Fill)
}

func (g *ProjectDeckTests) IgnoredProjectsAreLeftOut(t *testgroup.T) {
	ignored := g.newProject("hidden", "P1", "Open", "Triage")
	ignored.Ignore = true

	deck := NewProjectDeck([]*model.Project{
		ignored,
		g.newProject("visible", "P2", "Open", "Triage"),
	}, nil)

	t.Len(deck.Slides, 1)
	t.Len(deck.Slides[0].Shapes, 1)
	t.Equal("visible", deck.Slides[0].Shapes[0].Title)
}

func (g *ProjectDeckTests) LongTitlesAreTruncated(t *testgroup.T) {
	deck := NewProjectDeck([]*model.Project{
		g.newProject("a very long project name that would never fit on a deck button", "P1", "Open", "Triage"),
	}, nil)

	title := deck.Slides[0].Shapes[0].Title
	t.LessOrEqual(len(title), 40)
	t.Contains(title, "...")
}

func (g *ProjectDeckTests) SummarySlideClosesTheDeck(t *testgroup.T) {
	deck := NewProjectDeck([]*model.Project{
		g.newProject("proj", "P1", "Open", "Triage"),
	}, &Options{
		Summary: &Summary{Projects: 1, Tickets: 12, Documents: 0, Contacts: 3},
	})

	t.Len(deck.Slides, 2)

	slide := deck.Slides[1]
	t.Equal("Summary", slide.Title)
	t.Len(slide.Shapes, 4)
	t.Equal("1 project", slide.Shapes[0].Title)
	t.Equal("12 tickets", slide.Shapes[1].Title)
	t.Equal("0 documents", slide.Shapes[2].Title)
	t.Equal("3 contacts", slide.Shapes[3].Title)
}

func (g *ProjectDeckTests) ThemeSlots(t *testgroup.T) {
	t.Equal("accent5", ThemeSlot("pink"))
	t.Equal("accent2", ThemeSlot("orange"))
	t.Equal("accent6", ThemeSlot("purple"))
	t.Equal("text1", ThemeSlot("black"))
	t.Equal("background1", ThemeSlot("white"))
	t.Equal("accent1", ThemeSlot("no-such-color"))
}

func (g *ProjectDeckTests) JsonOutput(t *testgroup.T) {
	deck := NewProjectDeck([]*model.Project{
		g.newProject("proj", "P1", "Open", "Triage"),
	}, &Options{Template: "./template/_template.pptx"})

	content, err := deck.ToJson()

	t.NoError(err)
	t.Contains(content, `"template": "./template/_template.pptx"`)
	t.Contains(content, `"kind": "button"`)
	t.Contains(content, `"left_cm": 0.65`)
	t.Contains(content, `"fill": "accent5"`)
}
