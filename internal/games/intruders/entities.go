package intruders

import (
	"time"

	"github.com/vovakirdan/intruders/internal/config"
	"github.com/vovakirdan/intruders/internal/core"
)

// Player is the unit the user steers. It owns every explosion it triggers.
type Player struct {
	X, Y          float64
	Width, Height float64
	Explosions    []Explosion

	speed         float64
	maxX, maxY    float64
	explosion     config.ExplosionRules
	lastExplosion time.Duration
	hasExploded   bool
}

// newPlayer places a player at the start position for the given rules.
func newPlayer(r config.Rules) Player {
	p := Player{
		Width:     r.Player.Width,
		Height:    r.Player.Height,
		speed:     r.Player.Speed,
		maxX:      r.World.Width - r.Player.Width,
		maxY:      r.World.Height - r.Base.Height - r.Player.Height,
		explosion: r.Explosion,
	}
	p.X = core.ClampF(r.World.Width/2, 0, p.maxX)
	p.Y = core.ClampF(r.World.Height-r.Player.StartYOffset, 0, p.maxY)
	return p
}

// Move shifts the player horizontally: negative dir moves left, positive
// moves right. X stays within [0, world width - width].
func (p *Player) Move(dir int) {
	p.X = core.ClampF(p.X+float64(sign(dir))*p.speed, 0, p.maxX)
}

// MoveVertical shifts the player vertically: negative dir moves up,
// positive moves down. Y never enters the base strip.
func (p *Player) MoveVertical(dir int) {
	p.Y = core.ClampF(p.Y+float64(sign(dir))*p.speed, 0, p.maxY)
}

// Explode starts a new explosion centered on the player unless the
// previous one was triggered less than the cooldown ago.
// Returns true if an explosion was created.
func (p *Player) Explode(now time.Duration) bool {
	if p.hasExploded && now-p.lastExplosion < p.explosion.Cooldown() {
		return false
	}
	cx, cy := p.Rect().Center()
	p.Explosions = append(p.Explosions, NewExplosion(
		cx, cy,
		p.explosion.InitialRadius,
		p.explosion.MaxRadius,
		p.explosion.DurationTicks,
	))
	p.lastExplosion = now
	p.hasExploded = true
	return true
}

// Rect returns the player's bounding box.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// Base is the static defended target.
type Base struct {
	X, Y          float64
	Width, Height float64
}

// newBase centers the base on the bottom edge of the world.
func newBase(r config.Rules) Base {
	return Base{
		X:      (r.World.Width - r.Base.Width) / 2,
		Y:      r.World.Height - r.Base.Height,
		Width:  r.Base.Width,
		Height: r.Base.Height,
	}
}

// Rect returns the base's bounding box.
func (b Base) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.Width, b.Height)
}

// Missile falls straight down at a speed given by its color.
type Missile struct {
	X, Y          float64
	Width, Height float64
	Color         core.Color
	Speed         float64
}

// Move advances the missile one tick.
func (m *Missile) Move() {
	m.Y += m.Speed
}

// Rect returns the missile's bounding box.
func (m Missile) Rect() core.Rect {
	return core.NewRect(m.X, m.Y, m.Width, m.Height)
}

// Explosion is a shockwave that grows to its maximum radius and then
// shrinks back. It lives for exactly its initial duration in ticks.
type Explosion struct {
	X, Y          float64
	InitialRadius float64
	MaxRadius     float64
	Radius        float64
	Duration      int // Remaining ticks

	peaked bool
}

// NewExplosion creates an explosion centered on (x, y).
func NewExplosion(x, y, initialRadius, maxRadius float64, duration int) Explosion {
	return Explosion{
		X:             x,
		Y:             y,
		InitialRadius: initialRadius,
		MaxRadius:     maxRadius,
		Radius:        initialRadius,
		Duration:      duration,
	}
}

// Update advances the pulse one tick. Growth and shrink steps are divided
// by the remaining duration. The radius never drops below zero.
func (e *Explosion) Update() {
	if e.Duration <= 0 {
		return
	}

	if !e.peaked && e.Radius < e.MaxRadius {
		e.Radius += (e.MaxRadius - e.InitialRadius) / float64(e.Duration)
		if e.Radius >= e.MaxRadius {
			e.peaked = true
		}
	} else {
		e.peaked = true
		e.Radius -= e.MaxRadius / float64(e.Duration)
		if e.Radius < 0 {
			e.Radius = 0
		}
	}

	e.Duration--
}

// IsComplete reports whether the explosion has run out of ticks.
func (e Explosion) IsComplete() bool {
	return e.Duration <= 0
}

// Peaked reports whether the explosion has reached its maximum radius.
func (e Explosion) Peaked() bool {
	return e.peaked
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
