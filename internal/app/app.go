//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/bebrws/gol-nvg/internal/core"
	"github.com/bebrws/gol-nvg/internal/render"
	"github.com/bebrws/gol-nvg/internal/ui"
	pkgcore "github.com/bebrws/gol-nvg/pkg/core"
	"github.com/bebrws/gol-nvg/pkg/universe"
)

var (
	aliveColor  = color.RGBA{R: 227, G: 183, B: 61, A: 255}
	deadColor   = color.RGBA{A: 255}
	borderColor = color.RGBA{R: 140, G: 55, B: 96, A: 255}
)

// Game adapts a universe to the ebiten.Game interface. It owns the tick
// cadence and rebuilds the universe from scratch whenever the window size
// yields different grid dimensions.
type Game struct {
	cfg     *Config
	uni     *universe.Universe
	painter *render.GridPainter
	overlay *ui.Overlay
	pacer   *core.FixedStep

	cols, rows int
	paused     bool
	tickOnce   bool
	redraw     bool
}

// New constructs a Game around an already seeded universe.
func New(uni *universe.Universe, cfg *Config) *Game {
	return &Game{
		cfg:     cfg,
		uni:     uni,
		painter: render.NewGridPainter(uni.Width(), uni.Height(), cfg.CellSize),
		overlay: ui.NewOverlay(),
		pacer:   core.NewFixedStep(cfg.Interval),
		cols:    uni.Width(),
		rows:    uni.Height(),
		redraw:  true,
	}
}

// Reset discards the universe and builds a fresh random one with the current
// dimensions. Old cell state does not survive.
func (g *Game) Reset(seed int64) {
	g.uni = universe.New(g.cols, g.rows, pkgcore.NewRNG(seed).Source())
	g.painter = render.NewGridPainter(g.cols, g.rows, g.cfg.CellSize)
	g.pacer.Reset()
	g.redraw = true
	g.tickOnce = false
}

// Update handles input and advances the universe when a tick interval has
// elapsed. Generations are gated by wall-clock time, not frame count.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		if !g.paused {
			g.pacer.Reset()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()

	if g.tickOnce || (!g.paused && g.pacer.ShouldStep()) {
		g.uni.Tick()
		g.tickOnce = false
		if g.uni.Changed() {
			g.redraw = true
		}
	}
	return nil
}

// Draw renders the current generation and the FPS overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(deadColor)
	g.painter.Blit(screen, g.uni.Cells(), g.redraw, aliveColor, deadColor, borderColor)
	g.redraw = false
	g.overlay.Draw(screen)
}

// Layout maps the window size 1:1 to screen pixels. A resize that changes the
// derived grid dimensions reconstructs the universe with a fresh seed.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cols, rows := g.cfg.GridSize(outsideWidth, outsideHeight)
	if cols != g.cols || rows != g.rows {
		g.cols, g.rows = cols, rows
		g.Reset(time.Now().UnixNano())
	}
	return outsideWidth, outsideHeight
}
