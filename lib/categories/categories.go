package categories

import (
	"strings"

	"github.com/samber/lo"
)

// Map is an immutable mapping from a finite set of labels to values of
// some type, keeping the order in which the labels were declared.
//
// Lookups outside the known label set resolve to the configured default
// for ValueOr, and report absence for Value, so that bad input data
// degrades output instead of aborting a run.
type Map[V any] struct {
	entries []lo.Tuple2[string, V]
	index   map[string]int
	folded  map[string]int
	def     V
	hasDef  bool
}

func NewMap[V any](entries ...lo.Tuple2[string, V]) *Map[V] {
	result := &Map[V]{
		entries: entries,
		index:   make(map[string]int, len(entries)),
		folded:  make(map[string]int, len(entries)),
	}

	for i, e := range entries {
		if _, ok := result.index[e.A]; ok {
			continue
		}

		result.index[e.A] = i
		result.folded[strings.ToLower(e.A)] = i
	}

	return result
}

// WithDefault returns a copy of the map that resolves unknown labels to
// def instead of the zero value.
func (m *Map[V]) WithDefault(def V) *Map[V] {
	result := *m
	result.def = def
	result.hasDef = true
	return &result
}

func (m *Map[V]) Value(label string) (V, bool) {
	i, ok := m.index[label]
	if !ok {
		var zero V
		return zero, false
	}

	return m.entries[i].B, true
}

func (m *Map[V]) ValueOr(label string) V {
	if v, ok := m.Value(label); ok {
		return v
	}

	return m.def
}

func (m *Map[V]) Contains(label string) bool {
	_, ok := m.index[label]
	return ok
}

// Canonical matches a label ignoring case and returns the label in its
// declared spelling. It does not fall back to the default.
func (m *Map[V]) Canonical(label string) (string, bool) {
	i, ok := m.folded[strings.ToLower(label)]
	if !ok {
		return "", false
	}

	return m.entries[i].A, true
}

func (m *Map[V]) Labels() []string {
	return lo.Map(m.entries, func(e lo.Tuple2[string, V], _ int) string { return e.A })
}

func (m *Map[V]) Default() (V, bool) {
	return m.def, m.hasDef
}

func (m *Map[V]) Len() int {
	return len(m.entries)
}
