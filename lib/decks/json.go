package decks

import (
	"encoding/json"
	"io"

	"github.com/samber/lo"
)

// The deck is handed to the slide writing tool as JSON. Geometry stays
// in centimeters; the writer owns the conversion to its own units.

func (d *Deck) ToJson() (string, error) {
	marshaled, err := json.MarshalIndent(toJsonDeck(d), "", "  ")
	if err != nil {
		return "", err
	}

	return string(marshaled), nil
}

func (d *Deck) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJsonDeck(d))
}

func toJsonDeck(d *Deck) jsonDeck {
	return jsonDeck{
		Template: d.Template,
		Slides: lo.Map(d.Slides, func(s *Slide, _ int) jsonSlide {
			return jsonSlide{
				Title: s.Title,
				Shapes: lo.Map(s.Shapes, func(sh *Shape, _ int) jsonShape {
					return jsonShape{
						Kind:     sh.Kind,
						LeftCm:   sh.LeftCm,
						TopCm:    sh.TopCm,
						WidthCm:  sh.WidthCm,
						HeightCm: sh.HeightCm,
						Fill:     sh.Fill,
						Title:    sh.Title,
						Subtitle: sh.Subtitle,
						Footer:   sh.Footer,
					}
				}),
			}
		}),
	}
}

type jsonDeck struct {
	Template string      `json:"template,omitempty"`
	Slides   []jsonSlide `json:"slides"`
}

type jsonSlide struct {
	Title  string      `json:"title,omitempty"`
	Shapes []jsonShape `json:"shapes"`
}

type jsonShape struct {
	Kind     string  `json:"kind"`
	LeftCm   float64 `json:"left_cm"`
	TopCm    float64 `json:"top_cm"`
	WidthCm  float64 `json:"width_cm"`
	HeightCm float64 `json:"height_cm"`
	Fill     string  `json:"fill,omitempty"`
	Title    string  `json:"title,omitempty"`
	Subtitle string  `json:"subtitle,omitempty"`
	Footer   string  `json:"footer,omitempty"`
}
