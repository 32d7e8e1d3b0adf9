package model

import (
	"bytes"
	"strings"
	"testing"
)

func TestTerminalRendererDisplay(t *testing.T) {
	var buf bytes.Buffer
	r := &TerminalRenderer{Out: &buf}
	g := FromAliveCellsWithDimensions(Dimensions{Rows: 2, Cols: 3}, []Position{{0, 0}, {1, 2}})

	r.Display(g)

	want := strings.Join([]string{
		gridPosBlock + gridPosEmpty + gridPosEmpty,
		gridPosEmpty + gridPosEmpty + gridPosBlock,
	}, "\n") + "\n"
	if buf.String() != want {
		t.Fatalf("rendered %q, want %q", buf.String(), want)
	}
}
