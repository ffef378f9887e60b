// Package intruders implements Galactic Intruders, a single-screen shooter.
// The player fires expanding shockwaves to destroy colored missiles before
// they reach the base. Waves unlock faster and more damaging colors.
package intruders

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/intruders/internal/config"
	"github.com/vovakirdan/intruders/internal/core"
)

// Phase is the top-level state of a session.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns the phase name used in snapshots and logs.
func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game_over"
	}
	return "playing"
}

// Game owns all mutable session state and advances it one tick per Step.
type Game struct {
	rules  config.Rules
	gen    *Generator
	clock  core.Clock
	logger *log.Logger
	config core.RuntimeConfig

	fixedClock bool // Clock injected with WithClock, kept across resets

	phase  Phase
	paused bool
	quit   bool
	tick   uint64

	player    Player
	base      Base
	missiles  []Missile
	wave      int
	life      int
	score     int
	lastSpawn time.Duration
}

// Option configures a Game.
type Option func(*Game)

// WithRules replaces the built-in rules. The rules must pass config.ValidateRules.
func WithRules(r config.Rules) Option {
	return func(g *Game) {
		g.rules = r
	}
}

// WithLogger sets the logger used for session events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithClock sets the clock used for the spawn timer and explosion cooldown.
// By default a frame clock at the runtime tick rate is used.
func WithClock(c core.Clock) Option {
	return func(g *Game) {
		g.clock = c
		g.fixedClock = c != nil
	}
}

// New creates a new game instance. Call Reset before the first Step.
func New(opts ...Option) *Game {
	g := &Game{
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rules.Waves == nil {
		g.rules = config.MustLoadRules()
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "intruders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Galactic Intruders"
}

// Rules returns the rules the game runs with.
func (g *Game) Rules() config.Rules {
	return g.rules
}

// Reset initializes the game with a new runtime config and starts a fresh session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.quit = false
	g.tick = 0

	if !g.fixedClock {
		g.clock = core.NewFrameClock(cfg.TickRate)
	}

	if g.gen == nil {
		g.gen = NewGenerator(g.rules, cfg.Seed)
	} else {
		g.gen.Reset(cfg.Seed)
	}

	g.startSession()
	g.logger.Info("session started", "seed", cfg.Seed, "tick_rate", cfg.TickRate)
}

// startSession builds a fresh session: full life, no score, first wave.
func (g *Game) startSession() {
	g.phase = PhasePlaying
	g.paused = false
	g.player = newPlayer(g.rules)
	g.base = newBase(g.rules)
	g.missiles = nil
	g.wave = 1
	g.life = g.rules.Session.StartLife
	g.score = 0
	g.lastSpawn = g.clock.Now()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.quit {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionQuit) {
		g.quit = true
		g.logger.Info("quit", "score", g.score, "wave", g.wave)
		return core.StepResult{State: g.State()}
	}

	if g.phase == PhaseGameOver {
		if in.Has(core.ActionRestart) {
			g.startSession()
			g.logger.Info("session restarted")
		}
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.clock.Advance()
	now := g.clock.Now()
	g.tick++

	g.moveMissiles()
	g.resolveExplosionHit()
	g.updateSpawner(now)
	g.updateExplosions()
	g.resolveBaseHits()
	g.applyControls(in, now)

	if g.life <= 0 {
		g.phase = PhaseGameOver
		g.logger.Info("game over", "score", g.score, "wave", g.wave, "ticks", g.tick)
	}

	return core.StepResult{State: g.State()}
}

// moveMissiles moves every missile and drops the ones that fell out of the world.
func (g *Game) moveMissiles() {
	kept := g.missiles[:0]
	for _, m := range g.missiles {
		m.Move()
		if m.Y > g.rules.World.Height {
			continue
		}
		kept = append(kept, m)
	}
	g.missiles = kept
}

// resolveExplosionHit destroys at most one missile caught in an explosion.
func (g *Game) resolveExplosionHit() {
	i, ok := MissileExplosionHit(g.missiles, g.player.Explosions)
	if !ok {
		return
	}
	g.score += g.gen.Points(g.missiles[i].Color)
	g.missiles = removeIndices(g.missiles, []int{i})
}

// updateSpawner spawns a batch once per spawn interval. An empty field when
// the timer fires advances the wave first.
func (g *Game) updateSpawner(now time.Duration) {
	if now-g.lastSpawn < g.rules.Session.SpawnInterval() {
		return
	}

	if len(g.missiles) == 0 && g.wave < g.rules.Session.MaxWave {
		g.wave++
		g.logger.Info("wave advanced", "wave", g.wave)
	}

	g.missiles = append(g.missiles, g.gen.Horde(g.wave, g.rules.Session.BatchSize)...)
	g.lastSpawn = now
}

// updateExplosions advances every explosion and drops completed ones.
func (g *Game) updateExplosions() {
	kept := g.player.Explosions[:0]
	for _, e := range g.player.Explosions {
		e.Update()
		if e.IsComplete() {
			continue
		}
		kept = append(kept, e)
	}
	g.player.Explosions = kept
}

// resolveBaseHits applies damage for every missile touching the base and removes them.
func (g *Game) resolveBaseHits() {
	hits := MissileBaseHits(g.missiles, g.base)
	for _, i := range hits {
		g.life -= g.gen.Damage(g.missiles[i].Color)
	}
	g.missiles = removeIndices(g.missiles, hits)
}

// applyControls moves the player from held keys and triggers explosions.
func (g *Game) applyControls(in core.InputFrame, now time.Duration) {
	if dx := in.Axis(core.ActionLeft, core.ActionRight); dx != 0 {
		g.player.Move(dx)
	}
	if dy := in.Axis(core.ActionUp, core.ActionDown); dy != 0 {
		g.player.MoveVertical(dy)
	}
	if in.Has(core.ActionFire) {
		g.player.Explode(now)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
		Quit:     g.quit,
	}
}

// Phase returns the current session phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Wave returns the current wave number.
func (g *Game) Wave() int {
	return g.wave
}

// Life returns the base's remaining life.
func (g *Game) Life() int {
	return g.life
}
