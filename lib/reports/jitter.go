package reports

import (
	"golang.org/x/exp/rand"
)

const DefaultJitterAmount = 0.1

// Jitter offsets values by a uniform random draw in [-amount/2, +amount/2]
// to avoid overlapping points in a scatter plot. It is cosmetic: results
// are not meant to be reproducible unless a seeded source is injected.
type Jitter struct {
	rand   *rand.Rand
	amount float64
}

func NewJitter(amount float64) *Jitter {
	return NewJitterWithSource(amount, rand.NewSource(rand.Uint64()))
}

// NewJitterWithSource exists so tests can pass a seeded source.
func NewJitterWithSource(amount float64, source rand.Source) *Jitter {
	return &Jitter{
		rand:   rand.New(source),
		amount: amount,
	}
}

// Apply returns a new slice, leaving values untouched. Each value gets
// an independent draw, so applying it to both axes of a plot does not
// create diagonal artifacts.
func (j *Jitter) Apply(values []float64) []float64 {
	result := make([]float64, len(values))

	for i, v := range values {
		result[i] = v + (j.rand.Float64()-0.5)*j.amount
	}

	return result
}
