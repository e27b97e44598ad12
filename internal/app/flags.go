package app

import (
	"flag"
	"time"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width      int
	Height     int
	CellSize   int
	Interval   time.Duration
	Seed       int64
	Fullscreen bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:    1024,
		Height:   768,
		CellSize: 50,
		Interval: 100 * time.Millisecond,
		Seed:     42,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "time between generations")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial grid")
	fs.BoolVar(&c.Fullscreen, "fullscreen", c.Fullscreen, "start in fullscreen")
}

// GridSize derives grid dimensions from pixel dimensions, clamped to at
// least one cell each way.
func (c *Config) GridSize(pxWidth, pxHeight int) (cols, rows int) {
	cs := c.CellSize
	if cs < 1 {
		cs = 1
	}
	cols = pxWidth / cs
	rows = pxHeight / cs
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}
