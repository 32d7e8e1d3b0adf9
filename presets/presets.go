// Package presets holds the fixed library of starting patterns the shells can
// load. Every pattern fits inside model.DefaultDimensions.
package presets

import "github.com/sheikhrachel/go-life/model"

// Preset is a named list of initially alive positions
type Preset struct {
	Name  string
	Cells []model.Position
}

// Grid builds a fresh default-size grid seeded with the preset
func (p Preset) Grid() *model.Grid {
	return model.FromAliveCells(p.Cells)
}

var library = []Preset{
	{Name: "Glider", Cells: translate(glider, 1, 1)},
	{Name: "Blinker", Cells: translate(blinker, 15, 14)},
	{Name: "Pulsar", Cells: translate(pulsar(), 9, 9)},
	{Name: "Lightweight Spaceship", Cells: translate(lwss, 14, 2)},
	{Name: "R-pentomino", Cells: translate(rPentomino, 15, 15)},
}

// All returns the presets in selection order
func All() []Preset {
	out := make([]Preset, len(library))
	copy(out, library)
	return out
}

// Len returns the number of presets
func Len() int { return len(library) }

// Get returns the preset at the 0-based index
func Get(index int) (Preset, bool) {
	if index < 0 || index >= len(library) {
		return Preset{}, false
	}
	p := library[index]
	p.Cells = append([]model.Position(nil), p.Cells...)
	return p, true
}

var (
	glider = []model.Position{
		{Row: 0, Col: 1},
		{Row: 1, Col: 2},
		{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2},
	}
	blinker = []model.Position{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
	}
	lwss = []model.Position{
		{Row: 0, Col: 1}, {Row: 0, Col: 4},
		{Row: 1, Col: 0},
		{Row: 2, Col: 0}, {Row: 2, Col: 4},
		{Row: 3, Col: 0}, {Row: 3, Col: 1}, {Row: 3, Col: 2}, {Row: 3, Col: 3},
	}
	rPentomino = []model.Position{
		{Row: 0, Col: 1}, {Row: 0, Col: 2},
		{Row: 1, Col: 0}, {Row: 1, Col: 1},
		{Row: 2, Col: 1},
	}
)

// pulsar is the period-3 oscillator in a 13x13 box, built from its four-fold symmetry
func pulsar() []model.Position {
	var cells []model.Position
	for _, line := range []int{0, 5, 7, 12} {
		for _, span := range []int{2, 3, 4, 8, 9, 10} {
			cells = append(cells,
				model.Position{Row: line, Col: span},
				model.Position{Row: span, Col: line},
			)
		}
	}
	return cells
}

func translate(cells []model.Position, row, col int) []model.Position {
	out := make([]model.Position, len(cells))
	for i, c := range cells {
		out[i] = model.Position{Row: c.Row + row, Col: c.Col + col}
	}
	return out
}
