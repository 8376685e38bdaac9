package decks

import (
	"sort"

	"github.com/aquilax/truncate"
	"github.com/gertd/go-pluralize"
	"github.com/samber/lo"

	"github.com/90mp11/ProjectReportCreator/lib/categories"
	"github.com/90mp11/ProjectReportCreator/lib/model"
)

// Slide geometry in centimeters, for a 16:9 deck.
const (
	SlideWidthCm  = 33.867
	SlideHeightCm = 19.05

	ButtonWidthCm  = 7.8
	ButtonHeightCm = 2.8

	GridLeftCm    = 0.65
	GridTopCm     = 2.0
	GridSpacingCm = 0.2

	GridColumns = 4
	// bounded by the slide height: row 5 would end at 19.8cm
	GridRows = 5

	ButtonsPerSlide = GridColumns * GridRows
)

const maxButtonTitle = 40

type Deck struct {
	Template string
	Slides   []*Slide
}

type Slide struct {
	Title  string
	Shapes []*Shape
}

type Shape struct {
	Kind string

	LeftCm   float64
	TopCm    float64
	WidthCm  float64
	HeightCm float64

	Fill     string
	Title    string
	Subtitle string
	Footer   string
}

type Options struct {
	Template   string
	SlideTitle string

	// Summary, when set, closes the deck with a register counts slide.
	Summary *Summary

	StatusColors  *categories.Map[string]
	PriorityTexts *categories.Map[string]
	StagingGlyphs *categories.Map[string]
}

type Summary struct {
	Projects  int
	Tickets   int
	Documents int
	Contacts  int
}

// NewProjectDeck lays projects out as a grid of status colored buttons,
// 4 by 5 per slide, highest priority first.
func NewProjectDeck(projects []*model.Project, opts *Options) *Deck {
	if opts == nil {
		opts = &Options{}
	}

	statuses := opts.StatusColors
	if statuses == nil {
		statuses = categories.StatusColors()
	}
	priorities := opts.PriorityTexts
	if priorities == nil {
		priorities = categories.PriorityTexts()
	}
	stagings := opts.StagingGlyphs
	if stagings == nil {
		stagings = categories.StagingGlyphs()
	}

	title := opts.SlideTitle
	if title == "" {
		title = "Projects"
	}

	included := lo.Filter(projects, func(p *model.Project, _ int) bool { return !p.Ignore })
	sortByPriority(included, priorities.Labels())

	deck := &Deck{Template: opts.Template}

	for _, chunk := range lo.Chunk(included, ButtonsPerSlide) {
		slide := &Slide{Title: title}

		for i, p := range chunk {
			left, top := GridPosition(i)

			slide.Shapes = append(slide.Shapes, &Shape{
				Kind:     "button",
				LeftCm:   left,
				TopCm:    top,
				WidthCm:  ButtonWidthCm,
				HeightCm: ButtonHeightCm,
				Fill:     ThemeSlot(statuses.ValueOr(p.Status)),
				Title:    truncate.Truncate(p.Name, maxButtonTitle, "...", truncate.PositionEnd),
				Subtitle: priorities.ValueOr(p.Priority),
				Footer:   stagings.ValueOr(p.Staging),
			})
		}

		deck.Slides = append(deck.Slides, slide)
	}

	if opts.Summary != nil {
		deck.Slides = append(deck.Slides, newSummarySlide(opts.Summary))
	}

	return deck
}

func newSummarySlide(s *Summary) *Slide {
	plural := pluralize.NewClient()

	stats := []string{
		plural.Pluralize("project", s.Projects, true),
		plural.Pluralize("ticket", s.Tickets, true),
		plural.Pluralize("document", s.Documents, true),
		plural.Pluralize("contact", s.Contacts, true),
	}

	slide := &Slide{Title: "Summary"}

	for i, stat := range stats {
		left, top := GridPosition(i)

		slide.Shapes = append(slide.Shapes, &Shape{
			Kind:     "button",
			LeftCm:   left,
			TopCm:    top,
			WidthCm:  ButtonWidthCm,
			HeightCm: ButtonHeightCm,
			Fill:     ThemeSlot("teal"),
			Title:    stat,
		})
	}

	return slide
}

// GridPosition returns the top left corner of the i-th button on a
// slide, in centimeters.
func GridPosition(i int) (leftCm, topCm float64) {
	col := i % GridColumns
	row := i / GridColumns

	leftCm = GridLeftCm + float64(col)*(ButtonWidthCm+GridSpacingCm)
	topCm = GridTopCm + float64(row)*(ButtonHeightCm+GridSpacingCm)
	return
}

func sortByPriority(projects []*model.Project, priorityOrder []string) {
	rank := func(p *model.Project) int {
		r := lo.IndexOf(priorityOrder, p.Priority)
		if r < 0 {
			return len(priorityOrder)
		}
		return r
	}

	sort.SliceStable(projects, func(i, j int) bool {
		ri, rj := rank(projects[i]), rank(projects[j])
		if ri != rj {
			return ri < rj
		}
		return projects[i].Name < projects[j].Name
	})
}

// themeSlots maps color tokens to the slots of the deck template's
// theme, so button fills survive template color scheme changes.
var themeSlots = map[string]string{
	"pink":   "accent5",
	"green":  "accent4",
	"blue":   "accent3",
	"purple": "accent6",
	"orange": "accent2",
	"teal":   "accent1",
	"black":  "text1",
	"white":  "background1",
}

func ThemeSlot(token string) string {
	if slot, ok := themeSlots[token]; ok {
		return slot
	}

	return themeSlots["teal"]
}
