//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/bebrws/gol-nvg/pkg/universe"
)

// GridPainter rasterizes a cell grid into a cached RGBA image. The image is
// only re-uploaded when the caller reports the grid changed, so a stable
// universe costs one DrawImage per frame.
type GridPainter struct {
	cols, rows int
	cellSize   int
	img        *ebiten.Image
	buf        []byte
	primed     bool
}

// NewGridPainter allocates a painter for a cols*rows grid at the given cell
// size in pixels.
func NewGridPainter(cols, rows, cellSize int) *GridPainter {
	gp := &GridPainter{
		cols:     cols,
		rows:     rows,
		cellSize: cellSize,
		buf:      make([]byte, 4*cols*rows*cellSize*cellSize),
	}
	gp.img = ebiten.NewImage(cols*cellSize, rows*cellSize)
	return gp
}

// Blit draws the grid onto dst. The pixel buffer is refreshed from cells only
// when changed is true or nothing has been uploaded yet.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []universe.Cell, changed bool, alive, dead, border color.Color) {
	if len(cells) != gp.cols*gp.rows {
		return
	}
	if changed || !gp.primed {
		fillCellRGBA(gp.buf, cells, gp.cols, gp.rows, gp.cellSize, alive, dead, border)
		gp.img.ReplacePixels(gp.buf)
		gp.primed = true
	}
	dst.DrawImage(gp.img, nil)
}

// Size returns the painter's pixel dimensions.
func (gp *GridPainter) Size() (int, int) {
	return gp.cols * gp.cellSize, gp.rows * gp.cellSize
}
