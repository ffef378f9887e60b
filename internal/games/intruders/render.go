package intruders

import (
	"fmt"
	"math"

	"github.com/vovakirdan/intruders/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar    = '▀'
	BaseChar      = '█'
	MissileChar   = '■'
	ExplosionChar = '░'
)

// hudRows is the number of rows reserved above the playfield.
const hudRows = 1

// viewport projects world units onto screen cells.
type viewport struct {
	top    int
	sx, sy float64
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	rows := dst.Height() - hudRows
	if rows < 1 {
		rows = 1
	}
	return viewport{
		top: hudRows,
		sx:  float64(dst.Width()) / worldW,
		sy:  float64(rows) / worldH,
	}
}

// cells converts a world rectangle to a cell rectangle at least one cell big.
func (v viewport) cells(b Box) (x, y, w, h int) {
	x = int(math.Floor(b.X * v.sx))
	y = v.top + int(math.Floor(b.Y*v.sy))
	w = core.Max(1, int(math.Ceil((b.X+b.W)*v.sx))-x)
	h = core.Max(1, v.top+int(math.Ceil((b.Y+b.H)*v.sy))-y)
	return x, y, w, h
}

// world returns the world coordinates of a cell's center.
func (v viewport) world(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) / v.sx, (float64(cy-v.top) + 0.5) / v.sy
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	snap := g.Snapshot()
	vp := newViewport(dst, snap.WorldW, snap.WorldH)

	// Base
	x, y, w, h := vp.cells(snap.Base)
	dst.FillRect(x, y, w, h, BaseChar, snap.Base.Color)

	// Explosions, beneath the player and missiles
	for _, c := range snap.Explosions {
		drawCircle(dst, vp, c)
	}

	// Player
	x, y, w, h = vp.cells(snap.Player)
	dst.FillRect(x, y, w, h, PlayerChar, snap.Player.Color)

	// Missiles
	for _, m := range snap.Missiles {
		x, y, _, _ = vp.cells(m)
		dst.SetColored(x, y, MissileChar, m.Color)
	}

	drawHUD(dst, snap)

	if snap.Paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if snap.Phase == PhaseGameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Points: %d  |  Press R to restart", snap.Score))
	}
}

// drawCircle shades every cell whose center lies inside the explosion.
func drawCircle(dst *core.Screen, vp viewport, c Circle) {
	if c.R <= 0 {
		return
	}
	x0, y0, w, h := vp.cells(Box{X: c.X - c.R, Y: c.Y - c.R, W: 2 * c.R, H: 2 * c.R})
	for cy := y0; cy <= y0+h; cy++ {
		for cx := x0; cx <= x0+w; cx++ {
			wx, wy := vp.world(cx, cy)
			if core.Distance(wx, wy, c.X, c.Y) <= c.R {
				dst.SetColored(cx, cy, ExplosionChar, c.Color)
			}
		}
	}
}

// drawHUD writes life, wave and score on the top row.
func drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawText(1, 0, fmt.Sprintf("Life: %d", snap.Life))

	wave := fmt.Sprintf("Wave %d", snap.Wave)
	dst.DrawTextCentered(0, wave)

	points := fmt.Sprintf("Points: %d", snap.Score)
	dst.DrawText(dst.Width()-len(points)-1, 0, points)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
