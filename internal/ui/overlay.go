//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws a running FPS counter on top of the simulation view.
type Overlay struct {
	start  time.Time
	frames int
	hidden bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	return &Overlay{start: time.Now()}
}

// Update handles overlay key bindings.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.hidden = !o.hidden
	}
}

// Draw renders the FPS counter averaged over the program lifetime.
func (o *Overlay) Draw(screen *ebiten.Image) {
	o.frames++
	if o.hidden {
		return
	}
	elapsed := time.Since(o.start).Seconds()
	if elapsed <= 0 {
		return
	}
	fps := float64(o.frames) / elapsed
	msg := fmt.Sprintf("FPS: %.2f", fps)
	text.Draw(screen, msg, basicfont.Face7x13, 20, 24, color.RGBA{R: 255, A: 255})
}
