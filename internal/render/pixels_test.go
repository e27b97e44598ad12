package render

import (
	"image/color"
	"testing"

	"github.com/bebrws/gol-nvg/pkg/universe"
)

func TestFillCellRGBA(t *testing.T) {
	alive := color.RGBA{R: 227, G: 183, B: 61, A: 255}
	dead := color.RGBA{A: 255}
	border := color.RGBA{R: 140, G: 55, B: 96, A: 255}

	const cellSize = 4
	cells := []universe.Cell{universe.Alive, universe.Dead}
	buf := make([]byte, 4*2*1*cellSize*cellSize)
	fillCellRGBA(buf, cells, 2, 1, cellSize, alive, dead, border)

	stride := 2 * cellSize
	at := func(x, y int) color.RGBA {
		base := (y*stride + x) * 4
		return color.RGBA{R: buf[base], G: buf[base+1], B: buf[base+2], A: buf[base+3]}
	}

	// Block interiors carry the fill colors.
	if got := at(1, 1); got != alive {
		t.Fatalf("alive cell interior: got %v, want %v", got, alive)
	}
	if got := at(cellSize+1, 2); got != dead {
		t.Fatalf("dead cell interior: got %v, want %v", got, dead)
	}

	// The outer ring of each block is the border color.
	if got := at(0, 0); got != border {
		t.Fatalf("alive cell border: got %v, want %v", got, border)
	}
	if got := at(cellSize, 0); got != border {
		t.Fatalf("dead cell border: got %v, want %v", got, border)
	}
	if got := at(cellSize-1, cellSize-1); got != border {
		t.Fatalf("block corner: got %v, want %v", got, border)
	}
}
