package intruders

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/intruders/internal/core"
)

func newTestGame() *Game {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func stepN(g *Game, n int, in core.InputFrame) {
	for i := 0; i < n; i++ {
		g.Step(in)
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame()

	if g.Life() != 100 {
		t.Errorf("Life() = %d, expected 100", g.Life())
	}
	if g.Wave() != 1 {
		t.Errorf("Wave() = %d, expected 1", g.Wave())
	}
	if g.Phase() != PhasePlaying {
		t.Errorf("Phase() = %s, expected playing", g.Phase())
	}
	state := g.State()
	if state.Score != 0 || state.GameOver || state.Paused || state.Quit {
		t.Errorf("State() = %+v, expected a fresh session", state)
	}
	if len(g.missiles) != 0 || len(g.player.Explosions) != 0 {
		t.Error("a fresh session should have no missiles and no explosions")
	}
}

func TestMissileHitsBase(t *testing.T) {
	g := newTestGame()
	g.missiles = []Missile{{X: 200, Y: 515, Width: 10, Height: 10, Color: core.ColorRed, Speed: 1.5}}

	g.Step(frame())

	if g.Life() != 95 {
		t.Errorf("Life() = %d, expected 95 after a red hit", g.Life())
	}
	if len(g.missiles) != 0 {
		t.Errorf("missile should be removed after hitting the base, got %d", len(g.missiles))
	}
	if g.State().Score != 0 {
		t.Errorf("Score = %d, expected 0 for a base hit", g.State().Score)
	}
}

func TestSeveralMissilesHitBaseInOneTick(t *testing.T) {
	g := newTestGame()
	g.missiles = []Missile{
		{X: 150, Y: 515, Width: 10, Height: 10, Color: core.ColorRed, Speed: 1.5},
		{X: 300, Y: 100, Width: 10, Height: 10, Color: core.ColorGreen, Speed: 1},
		{X: 400, Y: 515, Width: 10, Height: 10, Color: core.ColorOrange, Speed: 1.3},
	}

	g.Step(frame())

	if g.Life() != 100-5-3 {
		t.Errorf("Life() = %d, expected 92", g.Life())
	}
	if len(g.missiles) != 1 || g.missiles[0].Color != core.ColorGreen {
		t.Errorf("only the green missile should remain, got %+v", g.missiles)
	}
}

func TestExplosionDestroysMissile(t *testing.T) {
	g := newTestGame()
	g.player.Explosions = []Explosion{NewExplosion(200, 200, 8, 30, 120)}
	g.missiles = []Missile{{X: 200, Y: 195, Width: 10, Height: 10, Color: core.ColorGreen, Speed: 1}}

	g.Step(frame())

	if g.State().Score != 3 {
		t.Errorf("Score = %d, expected 3 for a green kill", g.State().Score)
	}
	if len(g.missiles) != 0 {
		t.Errorf("destroyed missile should be removed, got %d", len(g.missiles))
	}
}

func TestExplosionDestroysOneMissilePerTick(t *testing.T) {
	g := newTestGame()
	g.player.Explosions = []Explosion{NewExplosion(200, 200, 8, 30, 120)}
	g.missiles = []Missile{
		{X: 200, Y: 195, Width: 10, Height: 10, Color: core.ColorGreen, Speed: 1},
		{X: 201, Y: 195, Width: 10, Height: 10, Color: core.ColorYellow, Speed: 1},
	}

	g.Step(frame())
	if g.State().Score != 3 || len(g.missiles) != 1 {
		t.Fatalf("after one tick score = %d with %d missiles, expected 3 with 1", g.State().Score, len(g.missiles))
	}

	g.Step(frame())
	if g.State().Score != 4 || len(g.missiles) != 0 {
		t.Errorf("after two ticks score = %d with %d missiles, expected 4 with 0", g.State().Score, len(g.missiles))
	}
}

func TestMissileRemovedOnlyOnce(t *testing.T) {
	g := newTestGame()
	// Caught by an explosion in the same tick it reaches the base
	g.missiles = []Missile{{X: 300, Y: 540, Width: 10, Height: 10, Color: core.ColorRed, Speed: 1.5}}
	g.player.Explosions = []Explosion{NewExplosion(300, 541.5, 8, 30, 120)}

	g.Step(frame())

	if g.State().Score != 7 {
		t.Errorf("Score = %d, expected 7", g.State().Score)
	}
	if g.Life() != 100 {
		t.Errorf("Life() = %d, expected 100: a destroyed missile must not also damage the base", g.Life())
	}
	if len(g.missiles) != 0 {
		t.Errorf("len(missiles) = %d, expected 0", len(g.missiles))
	}
}

func TestMissileLeavingWorldIsCulled(t *testing.T) {
	g := newTestGame()
	g.missiles = []Missile{{X: 10, Y: 599.5, Width: 10, Height: 10, Color: core.ColorGreen, Speed: 1}}

	g.Step(frame())

	if len(g.missiles) != 0 {
		t.Errorf("missile below the world should be culled, got %d", len(g.missiles))
	}
	if g.Life() != 100 || g.State().Score != 0 {
		t.Errorf("culling should not change life or score, got life %d score %d", g.Life(), g.State().Score)
	}
}

func TestWaveAdvancesOnEmptyField(t *testing.T) {
	g := newTestGame()

	stepN(g, 59, frame())
	if g.Wave() != 1 || len(g.missiles) != 0 {
		t.Fatalf("before the first spawn: wave %d with %d missiles, expected wave 1 with 0", g.Wave(), len(g.missiles))
	}

	g.Step(frame())
	if g.Wave() != 2 {
		t.Errorf("Wave() = %d, expected 2 after the first spawn", g.Wave())
	}
	if len(g.missiles) != 1 {
		t.Fatalf("len(missiles) = %d, expected 1", len(g.missiles))
	}
	m := g.missiles[0]
	if m.Y != 0 {
		t.Errorf("new missile y = %v, expected 0", m.Y)
	}
	if m.Color != core.ColorGreen && m.Color != core.ColorYellow {
		t.Errorf("wave 2 missile color = %s, expected green or yellow", m.Color)
	}
}

func TestWaveDoesNotAdvanceWithMissilesAlive(t *testing.T) {
	g := newTestGame()

	stepN(g, 120, frame())

	if g.Wave() != 2 {
		t.Errorf("Wave() = %d, expected 2", g.Wave())
	}
	if len(g.missiles) != 2 {
		t.Errorf("len(missiles) = %d, expected 2", len(g.missiles))
	}
}

func TestWaveCap(t *testing.T) {
	g := newTestGame()
	g.wave = 20

	stepN(g, 60, frame())

	if g.Wave() != 20 {
		t.Errorf("Wave() = %d, expected it to stay at 20", g.Wave())
	}
	if len(g.missiles) != 1 {
		t.Errorf("len(missiles) = %d, expected a spawn at the max wave", len(g.missiles))
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := newTestGame()
	g.life = 3
	g.score = 12
	g.player.Move(1)
	g.missiles = []Missile{
		{X: 200, Y: 515, Width: 10, Height: 10, Color: core.ColorRed, Speed: 1.5},
		{X: 50, Y: 50, Width: 10, Height: 10, Color: core.ColorGreen, Speed: 1},
	}

	g.Step(frame())
	if g.Phase() != PhaseGameOver || !g.State().GameOver {
		t.Fatalf("Phase() = %s, expected game_over", g.Phase())
	}
	if g.Life() != -2 {
		t.Errorf("Life() = %d, expected -2", g.Life())
	}

	// Game over frames are frozen
	tick := g.tick
	y := g.missiles[0].Y
	stepN(g, 30, frame(core.ActionLeft, core.ActionFire))
	if g.tick != tick || g.missiles[0].Y != y || len(g.player.Explosions) != 0 {
		t.Error("game over frames should not advance the world")
	}

	g.Step(frame(core.ActionRestart))
	if g.Phase() != PhasePlaying {
		t.Errorf("Phase() = %s, expected playing after restart", g.Phase())
	}
	if g.Life() != 100 || g.Wave() != 1 || g.State().Score != 0 {
		t.Errorf("after restart: life %d wave %d score %d, expected 100, 1, 0", g.Life(), g.Wave(), g.State().Score)
	}
	if len(g.missiles) != 0 {
		t.Errorf("len(missiles) = %d, expected 0 after restart", len(g.missiles))
	}
	if g.player.X != 300 || g.player.Y != 475 {
		t.Errorf("player at (%v, %v), expected start position after restart", g.player.X, g.player.Y)
	}
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	g := newTestGame()
	g.score = 10

	g.Step(frame(core.ActionRestart))

	if g.State().Score != 10 {
		t.Errorf("Score = %d, expected restart to be ignored while playing", g.State().Score)
	}
	if g.tick != 1 {
		t.Errorf("tick = %d, expected 1", g.tick)
	}
}

func TestQuit(t *testing.T) {
	g := newTestGame()

	res := g.Step(frame(core.ActionQuit))
	if !res.State.Quit {
		t.Fatal("State.Quit should be set after a quit action")
	}

	stepN(g, 10, frame())
	if g.tick != 0 {
		t.Errorf("tick = %d, expected no progress after quit", g.tick)
	}
}

func TestPauseFreezesWorld(t *testing.T) {
	g := newTestGame()

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	stepN(g, 120, frame(core.ActionLeft))
	if g.tick != 0 || g.player.X != 300 || len(g.missiles) != 0 {
		t.Errorf("paused game advanced: tick %d, x %v, missiles %d", g.tick, g.player.X, len(g.missiles))
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
	if g.tick != 1 {
		t.Errorf("tick = %d, expected the resume frame to run", g.tick)
	}
}

func TestOpposingKeysCancel(t *testing.T) {
	g := newTestGame()

	g.Step(frame(core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown))
	if g.player.X != 300 || g.player.Y != 475 {
		t.Errorf("player moved to (%v, %v) with opposing keys held", g.player.X, g.player.Y)
	}

	g.Step(frame(core.ActionLeft, core.ActionUp))
	if g.player.X != 295 || g.player.Y != 470 {
		t.Errorf("player at (%v, %v), expected (295, 470)", g.player.X, g.player.Y)
	}
}

func TestFireCooldown(t *testing.T) {
	g := newTestGame()

	stepN(g, 48, frame(core.ActionFire))
	if n := len(g.player.Explosions); n != 1 {
		t.Fatalf("after 48 frames of fire: %d explosions, expected 1", n)
	}

	g.Step(frame(core.ActionFire))
	if n := len(g.player.Explosions); n != 2 {
		t.Errorf("after 49 frames of fire: %d explosions, expected 2", n)
	}

	stepN(g, 11, frame(core.ActionFire))
	if n := len(g.player.Explosions); n != 2 {
		t.Errorf("after 60 frames of fire: %d explosions, expected 2", n)
	}
}

func TestExplosionExpires(t *testing.T) {
	g := newTestGame()

	g.Step(frame(core.ActionFire))
	stepN(g, 119, frame())
	if n := len(g.player.Explosions); n != 1 {
		t.Fatalf("len(Explosions) = %d, expected 1 before expiry", n)
	}

	g.Step(frame())
	if n := len(g.player.Explosions); n != 0 {
		t.Errorf("len(Explosions) = %d, expected 0 after 120 updates", n)
	}
}

func TestDeterministicReplay(t *testing.T) {
	script := func(i int) core.InputFrame {
		switch {
		case i%90 < 30:
			return frame(core.ActionLeft, core.ActionFire)
		case i%90 < 60:
			return frame(core.ActionRight, core.ActionUp)
		default:
			return frame(core.ActionDown, core.ActionFire)
		}
	}

	a := New()
	b := New()
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
	a.Reset(cfg)
	b.Reset(cfg)

	for i := 0; i < 600; i++ {
		a.Step(script(i))
		b.Step(script(i))
		if !reflect.DeepEqual(a.Snapshot(), b.Snapshot()) {
			t.Fatalf("snapshots diverged at frame %d", i)
		}
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	g := newTestGame()
	g.missiles = []Missile{{X: 10, Y: 10, Width: 10, Height: 10, Color: core.ColorYellow, Speed: 0.7}}

	snap := g.Snapshot()
	snap.Missiles[0].X = 999

	if g.missiles[0].X != 10 {
		t.Error("changing a snapshot should not change the game")
	}
	if snap.Player.Color != PlayerColor || snap.Base.Color != BaseColor {
		t.Errorf("snapshot colors = %s/%s, expected %s/%s", snap.Player.Color, snap.Base.Color, PlayerColor, BaseColor)
	}
}

type manualClock struct {
	now, step time.Duration
}

func (c *manualClock) Advance()           { c.now += c.step }
func (c *manualClock) Now() time.Duration { return c.now }

func TestWithClock(t *testing.T) {
	clock := &manualClock{step: 500 * time.Millisecond}
	g := New(WithClock(clock))
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

	g.Step(frame())
	if len(g.missiles) != 0 {
		t.Fatal("no spawn expected after 500ms")
	}

	g.Step(frame())
	if g.Wave() != 2 || len(g.missiles) != 1 {
		t.Errorf("after 1s: wave %d with %d missiles, expected wave 2 with 1", g.Wave(), len(g.missiles))
	}

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	if g.clock != clock {
		t.Error("Reset() should keep an injected clock")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame()
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	if got := screen.Get(40, 23); got != BaseChar {
		t.Errorf("cell (40, 23) = %q, expected base %q", got, BaseChar)
	}
	if !strings.Contains(screen.Row(0), "Life: 100") {
		t.Errorf("HUD = %q, expected it to show life", screen.Row(0))
	}
	if !strings.Contains(screen.Row(0), "Wave 1") {
		t.Errorf("HUD = %q, expected it to show the wave", screen.Row(0))
	}
	if !strings.Contains(screen.Row(0), "Points: 0") {
		t.Errorf("HUD = %q, expected it to show points", screen.Row(0))
	}

	g.phase = PhaseGameOver
	g.score = 42
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "Points: 42") {
		t.Errorf("game over screen missing message:\n%s", out)
	}
}

func TestRenderMissileColor(t *testing.T) {
	g := newTestGame()
	g.missiles = []Missile{{X: 303, Y: 303, Width: 10, Height: 10, Color: core.ColorOrange, Speed: 1.3}}
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	// 303 * 80/600 = 40.4, 1 + 303 * 23/600 = 12.6
	cell := screen.GetCell(40, 12)
	if cell.Rune != MissileChar || cell.Color != core.ColorOrange {
		t.Errorf("cell (40, 12) = %+v, expected orange missile", cell)
	}
}
