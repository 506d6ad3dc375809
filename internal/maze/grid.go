package maze

import (
	"fmt"
	"iter"
)

const (
	MinSize     = 4
	MaxSize     = 64
	DefaultSize = 16
)

func validateSize(n int) error {
	if n < MinSize || n > MaxSize || n%2 != 0 {
		return fmt.Errorf("%w: %d (want an even side between %d and %d)",
			ErrInvalidSize, n, MinSize, MaxSize)
	}
	return nil
}

// Cell is the knowledge accumulated about one grid square. It outlives
// individual runs; only the cost layer is double buffered.
type Cell struct {
	Walls   Walls `json:"walls"`
	Visited bool  `json:"visited"`
	OnPath  bool  `json:"on_path"`
}

// Grid holds the cells of an N×N maze in row-major order, row 0 south.
type Grid struct {
	size  int
	cells []Cell
}

// NewGrid returns a grid with the outer boundary walls already known.
func NewGrid(n int) *Grid {
	g := &Grid{size: n, cells: make([]Cell, n*n)}
	for p, c := range g.All() {
		c.Walls[West] = p.Col == 0
		c.Walls[South] = p.Row == 0
		c.Walls[East] = p.Col == n-1
		c.Walls[North] = p.Row == n-1
	}
	return g
}

func (g *Grid) Size() int { return g.size }

func (g *Grid) Contains(p Pos) bool {
	return p.Row >= 0 && p.Row < g.size && p.Col >= 0 && p.Col < g.size
}

func (g *Grid) At(p Pos) *Cell {
	return &g.cells[p.Row*g.size+p.Col]
}

// All yields every cell with its position, row by row from the south.
func (g *Grid) All() iter.Seq2[Pos, *Cell] {
	return func(yield func(Pos, *Cell) bool) {
		for i := range g.cells {
			if !yield(Pos{Row: i / g.size, Col: i % g.size}, &g.cells[i]) {
				return
			}
		}
	}
}

func (g *Grid) clearPath() {
	for _, c := range g.All() {
		c.OnPath = false
	}
}

// CostField is one buffer of flood-fill costs.
type CostField struct {
	size  int
	costs []Cost
}

func NewCostField(n int) *CostField {
	return &CostField{size: n, costs: make([]Cost, n*n)}
}

func (f *CostField) Size() int { return f.size }

func (f *CostField) At(p Pos) Cost {
	return f.costs[p.Row*f.size+p.Col]
}

func (f *CostField) Set(p Pos, c Cost) {
	f.costs[p.Row*f.size+p.Col] = c
}

func (f *CostField) All() iter.Seq2[Pos, Cost] {
	return func(yield func(Pos, Cost) bool) {
		for i, c := range f.costs {
			if !yield(Pos{Row: i / f.size, Col: i % f.size}, c) {
				return
			}
		}
	}
}

// Map replaces every cost with fn(position, cost).
func (f *CostField) Map(fn func(Pos, Cost) Cost) {
	for i, c := range f.costs {
		f.costs[i] = fn(Pos{Row: i / f.size, Col: i % f.size}, c)
	}
}

func (f *CostField) Clone() *CostField {
	return &CostField{size: f.size, costs: append([]Cost(nil), f.costs...)}
}
