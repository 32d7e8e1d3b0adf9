package model

// CellState is the state of a single grid cell
type CellState uint8

const (
	Dead CellState = iota
	Alive
)

// IsAlive reports whether the cell is alive
func (s CellState) IsAlive() bool { return s == Alive }

func (s CellState) String() string {
	if s == Alive {
		return "Alive"
	}
	return "Dead"
}

// stateOf converts a rule outcome into a CellState
func stateOf(alive bool) CellState {
	if alive {
		return Alive
	}
	return Dead
}

// Position identifies one cell by row and column
type Position struct {
	Row int
	Col int
}

// Pos is shorthand for Position{Row: row, Col: col}
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Dimensions is the fixed size of a grid
type Dimensions struct {
	Rows int
	Cols int
}

// DefaultDimensions is the 32x32 board used by the presets and the shells
var DefaultDimensions = Dimensions{Rows: 32, Cols: 32}

// Contains reports whether p falls inside [0, Rows) x [0, Cols)
func (d Dimensions) Contains(p Position) bool {
	return p.Row >= 0 && p.Row < d.Rows && p.Col >= 0 && p.Col < d.Cols
}

// Area returns the number of cells
func (d Dimensions) Area() int {
	return d.Rows * d.Cols
}
