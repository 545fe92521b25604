package silk

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const hudHelp = "LMB grab  RMB look  WASD fly  G gust  P pause wind\n" +
	"M mode  1/2/3 material  R reset  F focus  H hud  ESC quit"

var hudBackground = color.RGBA{0, 0, 0, 128}

// hudText formats the status lines shown in the corner of the window.
func (a *App) hudText(fps, tps float64) string {
	grab := "none"
	if a.grabber.Active() {
		grab = fmt.Sprintf("#%d", a.grabber.Index())
	}
	wind := fmt.Sprintf("%.2f", a.wind.Power())
	if a.wind.Paused() {
		wind = "paused"
	}
	return fmt.Sprintf("FPS: %.1f  TPS: %.1f\nMaterial: %s  Mode: %s\nWind: %s  Grab: %s\nParticles: %d  Constraints: %d",
		fps, tps, a.material.Name, a.mode, wind, grab,
		a.cloth.Len(), len(a.cloth.Constraints()))
}

// drawHUD prints the status and help text over a translucent panel.
func (a *App) drawHUD(screen *ebiten.Image) {
	vector.FillRect(screen, 4, 4, 360, 100, hudBackground, false)
	ebitenutil.DebugPrintAt(screen, a.hudText(ebiten.ActualFPS(), ebiten.ActualTPS()), 8, 8)
	ebitenutil.DebugPrintAt(screen, hudHelp, 8, 72)
}
