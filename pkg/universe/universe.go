package universe

import "math/rand/v2"

// Cell is the binary state of a single grid position.
type Cell uint8

const (
	// Dead marks an unoccupied cell.
	Dead Cell = 0
	// Alive marks an occupied cell.
	Alive Cell = 1
)

// Universe is a finite, non-wrapping Game of Life grid. Cells are stored in
// row-major order (index = row*width + col) and double-buffered so a tick
// replaces the whole generation at once.
type Universe struct {
	w, h    int
	cur     []Cell
	nxt     []Cell
	changed bool
}

// New allocates a w*h universe and sets every cell to Alive or Dead by an
// independent coin flip drawn from rng. The changed flag starts true.
// Dimensions must be positive; that contract is the caller's.
func New(w, h int, rng *rand.Rand) *Universe {
	cells := make([]Cell, w*h)
	for i := range cells {
		if rng.IntN(2) == 1 {
			cells[i] = Alive
		}
	}
	return &Universe{w: w, h: h, cur: cells, nxt: make([]Cell, len(cells)), changed: true}
}

// Width returns the number of columns.
func (u *Universe) Width() int { return u.w }

// Height returns the number of rows.
func (u *Universe) Height() int { return u.h }

// Cells exposes the current generation's backing slice.
func (u *Universe) Cells() []Cell { return u.cur }

// Changed reports whether the last Tick altered any cell. It is true for a
// freshly constructed universe.
func (u *Universe) Changed() bool { return u.changed }

// Cell returns the state at (row, col). Coordinates must be in range.
func (u *Universe) Cell(row, col int) Cell {
	return u.cur[row*u.w+col]
}

// LiveNeighbors counts the alive cells among the up-to-8 neighbors of
// (row, col). Offsets that fall outside the grid are skipped entirely: the
// grid does not wrap, and out-of-range positions do not count as dead. A
// corner therefore sees at most 3 neighbors and a non-corner edge cell at
// most 5.
func (u *Universe) LiveNeighbors(row, col int) int {
	count := 0
	for drow := -1; drow <= 1; drow++ {
		for dcol := -1; dcol <= 1; dcol++ {
			if drow == 0 && dcol == 0 {
				continue
			}
			r := row + drow
			c := col + dcol
			if r < 0 || r >= u.h || c < 0 || c >= u.w {
				continue
			}
			count += int(u.cur[r*u.w+c])
		}
	}
	return count
}

// Tick advances the universe by one generation. The successor is computed in
// full before the buffers swap, so readers never observe a partial update.
// Changed is set iff at least one cell differs from its prior value.
func (u *Universe) Tick() {
	changed := false
	for row := 0; row < u.h; row++ {
		for col := 0; col < u.w; col++ {
			idx := row*u.w + col
			cell := u.cur[idx]
			neighbors := u.LiveNeighbors(row, col)

			next := cell
			switch {
			case cell == Alive && neighbors < 2:
				next = Dead
			case cell == Alive && neighbors > 3:
				next = Dead
			case cell == Dead && neighbors == 3:
				next = Alive
			}

			if next != cell {
				changed = true
			}
			u.nxt[idx] = next
		}
	}
	u.cur, u.nxt = u.nxt, u.cur
	u.changed = changed
}
