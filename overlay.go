package tween

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// statsOverlay displays FPS, TPS and the number of running tweens in the
// top-left corner. The text is redrawn every ~0.5 seconds into its own image.
type statsOverlay struct {
	img        *ebiten.Image
	lastUpdate float64
	primed     bool
}

// update accumulates dt seconds and refreshes the text when due.
func (o *statsOverlay) update(dt float64, stage *Stage) {
	o.lastUpdate += dt
	if o.primed && o.lastUpdate < 0.5 {
		return
	}
	o.lastUpdate = 0
	o.primed = true

	if o.img == nil {
		// 120x48 is enough for "FPS: 60.0\nTPS: 60.0\nTweens: 10/10"
		o.img = ebiten.NewImage(120, 48)
	}
	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, overlayText(ebiten.ActualFPS(), ebiten.ActualTPS(), stage.Running(), len(stage.Tweens())))
}

func (o *statsOverlay) draw(screen *ebiten.Image) {
	if o.img == nil {
		return
	}
	screen.DrawImage(o.img, nil)
}

func overlayText(fps, tps float64, running, total int) string {
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nTweens: %d/%d", fps, tps, running, total)
}
