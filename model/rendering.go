package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	macosClearCmd = "clear"
)

// TerminalRenderer draws a grid as text, two characters per cell
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer returns a renderer writing to stdout
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout}
}

// Render returns the grid as text, one line per row
func (r *TerminalRenderer) Render(g *Grid) string {
	var sb strings.Builder
	cols := g.Dimensions().Cols
	g.Each(func(p Position, state CellState) {
		if state == Alive {
			sb.WriteString(gridPosBlock)
		} else {
			sb.WriteString(gridPosEmpty)
		}
		if p.Col == cols-1 {
			sb.WriteByte('\n')
		}
	})
	return sb.String()
}

// Display renders the grid to the output
func (r *TerminalRenderer) Display(g *Grid) {
	fmt.Fprint(r.Out, r.Render(g))
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = r.Out
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.Out, "Error clearing terminal:", err)
	}
}
