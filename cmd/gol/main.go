//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/bebrws/gol-nvg/internal/app"
	"github.com/bebrws/gol-nvg/pkg/core"
	"github.com/bebrws/gol-nvg/pkg/universe"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	cols, rows := cfg.GridSize(cfg.Width, cfg.Height)
	uni := universe.New(cols, rows, core.NewRNG(cfg.Seed).Source())
	game := app.New(uni, cfg)

	ebiten.SetWindowTitle("gol-nvg")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
