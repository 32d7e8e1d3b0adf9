package model

import (
	"crypto/md5"
	"fmt"

	"github.com/sheikhrachel/go-life/rules"
)

// neighborOffsets are the eight unit offsets of the Moore neighbourhood, in
// the order Neighbors reports them
var neighborOffsets = [8]Position{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Grid is a fixed-size, non-wrapping Game of Life board
type Grid struct {
	dims  Dimensions
	cells []CellState // current generation, row-major
	next  []CellState // scratch buffer for Advance

	activeBounds struct {
		minRow, maxRow, minCol, maxCol int
		valid                          bool
	}
}

// Empty creates a DefaultDimensions grid with every cell dead
func Empty() *Grid {
	return EmptyWithDimensions(DefaultDimensions)
}

// EmptyWithDimensions creates an all-dead grid of the given size. Non-positive
// dimensions are a programming error and panic.
func EmptyWithDimensions(dims Dimensions) *Grid {
	if dims.Rows <= 0 || dims.Cols <= 0 {
		panic(fmt.Sprintf("model: invalid grid dimensions %dx%d", dims.Rows, dims.Cols))
	}
	return &Grid{
		dims:  dims,
		cells: make([]CellState, dims.Area()),
		next:  make([]CellState, dims.Area()),
	}
}

// FromAliveCells creates a DefaultDimensions grid with the listed positions alive
func FromAliveCells(positions []Position) *Grid {
	return FromAliveCellsWithDimensions(DefaultDimensions, positions)
}

// FromAliveCellsWithDimensions creates a grid of the given size with the listed
// positions alive. Duplicates are harmless and out-of-range positions are dropped.
func FromAliveCellsWithDimensions(dims Dimensions, positions []Position) *Grid {
	g := EmptyWithDimensions(dims)
	for _, p := range positions {
		g.set(p, Alive)
	}
	return g
}

// Dimensions returns the grid size
func (g *Grid) Dimensions() Dimensions {
	return g.dims
}

// index returns the row-major offset of an in-range position
func (g *Grid) index(p Position) int {
	return p.Row*g.dims.Cols + p.Col
}

// set is a no-op for out-of-range positions
func (g *Grid) set(p Position, state CellState) {
	if !g.dims.Contains(p) {
		return
	}
	g.cells[g.index(p)] = state
	g.activeBounds.valid = false
}

// CellAt returns the state of the cell at p. The boolean is false when p is
// outside the grid, in which case the state is Dead.
func (g *Grid) CellAt(p Position) (CellState, bool) {
	if !g.dims.Contains(p) {
		return Dead, false
	}
	return g.cells[g.index(p)], true
}

// Neighbors returns the clipped Moore neighbourhood of p: 3 positions for a
// corner, 5 for an edge, 8 for an interior cell, nil when p is out of range
func (g *Grid) Neighbors(p Position) []Position {
	if !g.dims.Contains(p) {
		return nil
	}
	out := make([]Position, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		n := Position{Row: p.Row + off.Row, Col: p.Col + off.Col}
		if g.dims.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

// CountAliveNeighbors counts living cells in the clipped neighbourhood of p
func (g *Grid) CountAliveNeighbors(p Position) int {
	if !g.dims.Contains(p) {
		return 0
	}
	return countAlive(g.cells, g.dims, p)
}

// countAlive counts living neighbours of an in-range p within snapshot.
// Bounds are clamped once so no index outside the grid is ever read.
func countAlive(snapshot []CellState, dims Dimensions, p Position) int {
	count := 0

	minRow := max(0, p.Row-1)
	maxRow := min(dims.Rows-1, p.Row+1)
	minCol := max(0, p.Col-1)
	maxCol := min(dims.Cols-1, p.Col+1)

	for r := minRow; r <= maxRow; r++ {
		row := snapshot[r*dims.Cols : (r+1)*dims.Cols]
		for c := minCol; c <= maxCol; c++ {
			if r == p.Row && c == p.Col {
				continue
			}
			if row[c] == Alive {
				count++
			}
		}
	}

	return count
}

// Advance replaces the grid with its next generation. Every new state is
// computed from the untouched current buffer, then the buffers are swapped.
func (g *Grid) Advance() {
	snapshot := g.cells
	for r := 0; r < g.dims.Rows; r++ {
		for c := 0; c < g.dims.Cols; c++ {
			p := Position{Row: r, Col: c}
			i := g.index(p)
			alive := rules.ApplyConwayRules(countAlive(snapshot, g.dims, p), snapshot[i] == Alive)
			g.next[i] = stateOf(alive)
		}
	}
	g.cells, g.next = g.next, g.cells
	g.activeBounds.valid = false
}

// Each calls fn for every cell in row-major order
func (g *Grid) Each(fn func(p Position, state CellState)) {
	for r := 0; r < g.dims.Rows; r++ {
		for c := 0; c < g.dims.Cols; c++ {
			p := Position{Row: r, Col: c}
			fn(p, g.cells[g.index(p)])
		}
	}
}

// AliveCells returns the positions of all living cells in row-major order
func (g *Grid) AliveCells() []Position {
	var alive []Position
	g.Each(func(p Position, state CellState) {
		if state == Alive {
			alive = append(alive, p)
		}
	})
	return alive
}

// Equal reports whether two grids have the same size and cell states
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.dims != other.dims {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	c := EmptyWithDimensions(g.dims)
	copy(c.cells, g.cells)
	return c
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, s := range g.cells {
		if s == Alive {
			count++
		}
	}
	return
}

// calculateActiveBounds calculates the bounding box of living cells
func (g *Grid) calculateActiveBounds() {
	g.activeBounds.valid = false

	g.Each(func(p Position, state CellState) {
		if state != Alive {
			return
		}
		if !g.activeBounds.valid {
			g.activeBounds.minRow, g.activeBounds.maxRow = p.Row, p.Row
			g.activeBounds.minCol, g.activeBounds.maxCol = p.Col, p.Col
			g.activeBounds.valid = true
			return
		}
		g.activeBounds.minRow = min(g.activeBounds.minRow, p.Row)
		g.activeBounds.maxRow = max(g.activeBounds.maxRow, p.Row)
		g.activeBounds.minCol = min(g.activeBounds.minCol, p.Col)
		g.activeBounds.maxCol = max(g.activeBounds.maxCol, p.Col)
	})
}

// GetBoundingBoxSize returns the area of the smallest box holding every living cell
func (g *Grid) GetBoundingBoxSize() int {
	if !g.activeBounds.valid {
		g.calculateActiveBounds()
	}
	if !g.activeBounds.valid {
		return 0
	}
	return (g.activeBounds.maxRow - g.activeBounds.minRow + 1) *
		(g.activeBounds.maxCol - g.activeBounds.minCol + 1)
}

// GetGridHash returns an MD5 hash of the current generation
func (g *Grid) GetGridHash() string {
	h := md5.New()
	buf := make([]byte, len(g.cells))
	for i, s := range g.cells {
		buf[i] = byte(s)
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}
