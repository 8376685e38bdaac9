package reports

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Cell is one sparse observation: a value at a (row, column) key pair.
type Cell struct {
	Row   string
	Col   string
	Value float64
}

type KeyOrder int

const (
	OrderSorted KeyOrder = iota
	OrderFirstSeen
)

// PivotGrid is a dense two dimensional grid built from sparse cells.
//
// The row and column key sets are the unique keys observed on each
// axis. Every (row, column) pair in their cross product has a value,
// zero when no cell contributed to it. Cells sharing the same key pair
// are summed, never overwritten.
type PivotGrid struct {
	rows   []string
	cols   []string
	values map[string]float64
}

func NewPivotGrid(cells []Cell, rowOrder, colOrder KeyOrder) *PivotGrid {
	rows := uniqueKeys(cells, func(c Cell) string { return c.Row }, rowOrder)
	cols := uniqueKeys(cells, func(c Cell) string { return c.Col }, colOrder)

	values := make(map[string]float64, len(rows)*len(cols))
	for _, r := range rows {
		for _, c := range cols {
			values[gridKey(r, c)] = 0
		}
	}

	for _, cell := range cells {
		values[gridKey(cell.Row, cell.Col)] += cell.Value
	}

	return &PivotGrid{
		rows:   rows,
		cols:   cols,
		values: values,
	}
}

func uniqueKeys(cells []Cell, key func(Cell) string, order KeyOrder) []string {
	result := lo.Uniq(lo.Map(cells, func(c Cell, _ int) string { return key(c) }))

	if order == OrderSorted {
		sort.Strings(result)
	}

	return result
}

func gridKey(row, col string) string {
	return strings.Join([]string{row, col}, "\n")
}

func (g *PivotGrid) Rows() []string {
	return g.rows
}

func (g *PivotGrid) Cols() []string {
	return g.cols
}

func (g *PivotGrid) Value(row, col string) float64 {
	return g.values[gridKey(row, col)]
}

func (g *PivotGrid) RowTotal(row string) float64 {
	result := 0.0
	for _, c := range g.cols {
		result += g.Value(row, c)
	}
	return result
}

func (g *PivotGrid) ColTotal(col string) float64 {
	result := 0.0
	for _, r := range g.rows {
		result += g.Value(r, col)
	}
	return result
}

func (g *PivotGrid) Total() float64 {
	result := 0.0
	for _, v := range g.values {
		result += v
	}
	return result
}

// Matrix returns the grid as rows of column values, in axis order.
func (g *PivotGrid) Matrix() [][]float64 {
	result := make([][]float64, 0, len(g.rows))

	for _, r := range g.rows {
		line := make([]float64, 0, len(g.cols))
		for _, c := range g.cols {
			line = append(line, g.Value(r, c))
		}
		result = append(result, line)
	}

	return result
}
