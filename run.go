package tween

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
}

// game adapts a Stage to ebiten.Game.
type game struct {
	stage   *Stage
	cfg     RunConfig
	overlay statsOverlay
}

func (g *game) Update() error {
	if err := g.stage.Update(); err != nil {
		return err
	}
	if g.cfg.ShowFPS {
		g.overlay.update(1/float64(ebiten.TPS()), g.stage)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.stage.Draw(screen)
	if g.cfg.ShowFPS {
		g.overlay.draw(screen)
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and drives stage until the window is closed or Update
// returns an error. A zero Width or Height takes the stage size.
func Run(stage *Stage, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = int(stage.Width)
	}
	if cfg.Height <= 0 {
		cfg.Height = int(stage.Height)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(&game{stage: stage, cfg: cfg})
}
