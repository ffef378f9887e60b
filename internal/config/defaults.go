package config

import (
	_ "embed"

	"github.com/vovakirdan/intruders/internal/core"
)

//go:embed defaults/rules.yaml
var defaultRulesYAML []byte

//go:embed defaults/settings.yaml
var defaultSettingsYAML []byte

// DefaultRules returns the built-in rules.
func DefaultRules() Rules {
	return Rules{
		World: WorldRules{
			Width:  600,
			Height: 600,
		},
		Player: PlayerRules{
			Width:        40,
			Height:       10,
			Speed:        5,
			StartYOffset: 125,
		},
		Base: BaseRules{
			Width:  400,
			Height: 80,
		},
		Missile: MissileRules{
			Width:  10,
			Height: 10,
		},
		Explosion: ExplosionRules{
			InitialRadius: 8,
			MaxRadius:     30,
			DurationTicks: 120,
			CooldownMS:    800,
		},
		Session: SessionRules{
			StartLife:       100,
			SpawnIntervalMS: 1000,
			MaxWave:         20,
			BatchSize:       1,
		},
		Colors: []ColorRule{
			{Color: core.ColorYellow, Speed: 0.7, Points: 1, Damage: 1},
			{Color: core.ColorGreen, Speed: 1.0, Points: 3, Damage: 2},
			{Color: core.ColorOrange, Speed: 1.3, Points: 5, Damage: 3},
			{Color: core.ColorRed, Speed: 1.5, Points: 7, Damage: 5},
		},
		Waves: []WaveRule{
			{From: 1, Colors: colors(core.ColorGreen, core.ColorYellow), Weights: []float64{0.5, 0.5}},
			{From: 3, Colors: colors(core.ColorGreen, core.ColorYellow, core.ColorOrange), Weights: []float64{0.5, 0.3, 0.2}},
			{From: 5, Colors: colors(core.ColorGreen, core.ColorYellow, core.ColorOrange), Weights: []float64{0.4, 0.2, 0.4}},
			{From: 7, Colors: colors(core.ColorGreen, core.ColorYellow, core.ColorOrange, core.ColorRed), Weights: []float64{0.3, 0.2, 0.3, 0.2}},
			{From: 9, Colors: colors(core.ColorGreen, core.ColorOrange, core.ColorRed), Weights: []float64{0.3, 0.3, 0.4}},
			{From: 11, Colors: colors(core.ColorGreen, core.ColorOrange, core.ColorRed), Weights: []float64{0.2, 0.5, 0.3}},
			{From: 13, Colors: colors(core.ColorGreen, core.ColorOrange, core.ColorRed), Weights: []float64{0.2, 0.4, 0.4}},
			{From: 15, Colors: colors(core.ColorGreen, core.ColorOrange, core.ColorRed), Weights: []float64{0.3, 0.3, 0.4}},
			{From: 17, Colors: colors(core.ColorGreen, core.ColorOrange, core.ColorRed), Weights: []float64{0.1, 0.4, 0.5}},
			{From: 19, Colors: colors(core.ColorGreen, core.ColorOrange, core.ColorRed), Weights: []float64{0.1, 0.3, 0.6}},
		},
	}
}

// DefaultSettings returns the built-in user settings.
func DefaultSettings() Settings {
	return Settings{
		FPS:       60,
		Seed:      0, // 0 means use current time in platform layer
		LogFile:   "~/.intruders/intruders.log",
		LogLevel:  "info",
		KeyHoldMS: 150,
	}
}

func colors(cs ...core.Color) []core.Color {
	return cs
}
