// Package config provides YAML-based rule and settings loading for the game.
package config

import (
	"time"

	"github.com/vovakirdan/intruders/internal/core"
)

// Rules contains the fixed game rules: world geometry, timings and the
// color and wave tables. Rules are built once at startup and never mutated.
type Rules struct {
	World     WorldRules     `yaml:"world"`
	Player    PlayerRules    `yaml:"player"`
	Base      BaseRules      `yaml:"base"`
	Missile   MissileRules   `yaml:"missile"`
	Explosion ExplosionRules `yaml:"explosion"`
	Session   SessionRules   `yaml:"session"`
	Colors    []ColorRule    `yaml:"colors"`
	Waves     []WaveRule     `yaml:"waves"`
}

// WorldRules defines the logical playfield size in world units.
type WorldRules struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerRules defines the player unit.
type PlayerRules struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`          // World units per tick
	StartYOffset float64 `yaml:"start_y_offset"` // Distance of the start position from the bottom edge
}

// BaseRules defines the defended base. It is centered horizontally and
// sits on the bottom edge of the world.
type BaseRules struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// MissileRules defines the missile hitbox.
type MissileRules struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ExplosionRules defines the shockwave pulse.
type ExplosionRules struct {
	InitialRadius float64 `yaml:"initial_radius"`
	MaxRadius     float64 `yaml:"max_radius"`
	DurationTicks int     `yaml:"duration_ticks"`
	CooldownMS    int     `yaml:"cooldown_ms"` // Minimum time between two explosions
}

// Cooldown returns the explosion cooldown as a duration.
func (e ExplosionRules) Cooldown() time.Duration {
	return time.Duration(e.CooldownMS) * time.Millisecond
}

// SessionRules defines the session bookkeeping values.
type SessionRules struct {
	StartLife       int `yaml:"start_life"`
	SpawnIntervalMS int `yaml:"spawn_interval_ms"`
	MaxWave         int `yaml:"max_wave"`
	BatchSize       int `yaml:"batch_size"` // Missiles per spawn tick
}

// SpawnInterval returns the spawn interval as a duration.
func (s SessionRules) SpawnInterval() time.Duration {
	return time.Duration(s.SpawnIntervalMS) * time.Millisecond
}

// ColorRule maps one missile color to its attributes.
type ColorRule struct {
	Color  core.Color `yaml:"color"`
	Speed  float64    `yaml:"speed"`  // Fall speed in world units per tick
	Points int        `yaml:"points"` // Score awarded when destroyed by an explosion
	Damage int        `yaml:"damage"` // Life lost when it reaches the base
}

// WaveRule is one row of the wave table. It applies to every wave number
// from From up to the next row's From.
type WaveRule struct {
	From    int          `yaml:"from"`
	Colors  []core.Color `yaml:"colors"`
	Weights []float64    `yaml:"weights"`
}

// ColorRule returns the attributes for a color.
func (r Rules) ColorRule(c core.Color) (ColorRule, bool) {
	for _, cr := range r.Colors {
		if cr.Color == c {
			return cr, true
		}
	}
	return ColorRule{}, false
}

// Settings contains user-adjustable runtime settings. None of them change
// the game rules.
type Settings struct {
	FPS       int    `yaml:"fps"`
	Seed      int64  `yaml:"seed"`
	LogFile   string `yaml:"log_file"`
	LogLevel  string `yaml:"log_level"`
	KeyHoldMS int    `yaml:"key_hold_ms"` // How long a terminal key press counts as held
}

// KeyHold returns the key hold window as a duration.
func (s Settings) KeyHold() time.Duration {
	return time.Duration(s.KeyHoldMS) * time.Millisecond
}
