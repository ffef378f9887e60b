// Package window runs Galactic Intruders in a desktop window with Ebitengine.
package window

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/intruders/internal/core"
	"github.com/vovakirdan/intruders/internal/games/intruders"
)

// Options configures a window session.
type Options struct {
	Config core.RuntimeConfig
	Scale  float64
	Logger *log.Logger
}

// App adapts a game to ebiten.Game.
type App struct {
	game   *intruders.Game
	face   text.Face
	width  int
	height int
	logger *log.Logger
}

// NewApp creates the window adapter and starts a session.
func NewApp(game *intruders.Game, cfg core.RuntimeConfig, logger *log.Logger) *App {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	game.Reset(cfg)

	world := game.Rules().World
	return &App{
		game:   game,
		face:   text.NewGoXFace(basicfont.Face7x13),
		width:  int(world.Width),
		height: int(world.Height),
		logger: logger,
	}
}

// Update advances the game one tick.
func (a *App) Update() error {
	result := a.game.Step(readInput())
	if result.State.Quit {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current snapshot.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	snap := a.game.Snapshot()

	drawBox(screen, snap.Base)
	drawBox(screen, snap.Player)
	for _, e := range snap.Explosions {
		if e.R > 0 {
			vector.DrawFilledCircle(screen, float32(e.X), float32(e.Y), float32(e.R), rgba(e.Color), true)
		}
	}
	for _, m := range snap.Missiles {
		drawBox(screen, m)
	}

	a.drawHUD(screen, snap)

	switch {
	case snap.Phase == intruders.PhaseGameOver:
		a.drawMessage(screen, "GAME OVER", fmt.Sprintf("Points: %d  |  Press R to restart", snap.Score))
	case snap.Paused:
		a.drawMessage(screen, "PAUSED", "Press P to resume")
	}
}

// Layout keeps the logical screen at world size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func drawBox(screen *ebiten.Image, b intruders.Box) {
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), rgba(b.Color), false)
}

func (a *App) drawText(screen *ebiten.Image, s string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, s, a.face, op)
}

func (a *App) drawHUD(screen *ebiten.Image, snap intruders.Snapshot) {
	a.drawText(screen, fmt.Sprintf("Life: %d", snap.Life), 10, 10)

	wave := fmt.Sprintf("Wave %d", snap.Wave)
	a.drawText(screen, wave, (float64(a.width)-text.Advance(wave, a.face))/2, 10)

	points := fmt.Sprintf("Points: %d", snap.Score)
	a.drawText(screen, points, float64(a.width)-text.Advance(points, a.face)-10, 10)
}

func (a *App) drawMessage(screen *ebiten.Image, title, subtitle string) {
	const boxH = 70
	boxW := max(text.Advance(title, a.face), text.Advance(subtitle, a.face)) + 40
	x := (float64(a.width) - boxW) / 2
	y := (float64(a.height) - boxH) / 2

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(boxW), boxH, overlayColor, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(boxW), boxH, 2, textColor, false)

	a.drawText(screen, title, (float64(a.width)-text.Advance(title, a.face))/2, y+15)
	a.drawText(screen, subtitle, (float64(a.width)-text.Advance(subtitle, a.face))/2, y+42)
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(game *intruders.Game, opts Options) error {
	cfg := opts.Config
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	app := NewApp(game, cfg, opts.Logger)

	ebiten.SetTPS(cfg.TickRate)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(int(float64(app.width)*scale), int(float64(app.height)*scale))

	app.logger.Info("window opened", "width", app.width, "height", app.height, "tps", cfg.TickRate)
	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	app.logger.Info("window closed", "score", game.State().Score, "wave", game.Wave())
	return nil
}
