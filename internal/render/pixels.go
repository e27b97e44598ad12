package render

import (
	"image/color"

	"github.com/bebrws/gol-nvg/pkg/universe"
)

// fillCellRGBA rasterizes cells into buf at pixel resolution. Each cell
// becomes a cellSize*cellSize block filled with the alive or dead color and
// outlined with a one-pixel border. buf must hold 4*cols*rows*cellSize^2
// bytes.
func fillCellRGBA(buf []byte, cells []universe.Cell, cols, rows, cellSize int, alive, dead, border color.Color) {
	aliveB := rgbaBytes(alive)
	deadB := rgbaBytes(dead)
	borderB := rgbaBytes(border)

	stride := cols * cellSize
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			fill := deadB
			if cells[row*cols+col] == universe.Alive {
				fill = aliveB
			}
			for py := 0; py < cellSize; py++ {
				y := row*cellSize + py
				for px := 0; px < cellSize; px++ {
					x := col*cellSize + px
					src := fill
					if px == 0 || py == 0 || px == cellSize-1 || py == cellSize-1 {
						src = borderB
					}
					base := (y*stride + x) * 4
					buf[base+0] = src[0]
					buf[base+1] = src[1]
					buf[base+2] = src[2]
					buf[base+3] = src[3]
				}
			}
		}
	}
}

func rgbaBytes(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
