package intruders

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/vovakirdan/intruders/internal/config"
	"github.com/vovakirdan/intruders/internal/core"
)

// WaveTable resolves a wave number to the row of the wave table that
// governs it: the row with the largest starting wave not above it.
type WaveTable struct {
	rows []config.WaveRule
}

// NewWaveTable builds a wave table from rows sorted by From.
func NewWaveTable(rows []config.WaveRule) WaveTable {
	return WaveTable{rows: append([]config.WaveRule(nil), rows...)}
}

// Lookup returns the row governing the given wave.
// Panics if the wave is below the first row, which the session never allows.
func (t WaveTable) Lookup(wave int) config.WaveRule {
	i := sort.Search(len(t.rows), func(i int) bool {
		return t.rows[i].From > wave
	}) - 1
	if i < 0 {
		panic(fmt.Sprintf("intruders: wave %d is below the first wave table entry", wave))
	}
	return t.rows[i]
}

// Rows returns a copy of the table rows.
func (t WaveTable) Rows() []config.WaveRule {
	return append([]config.WaveRule(nil), t.rows...)
}

// Generator produces missiles for a wave using weighted color sampling.
type Generator struct {
	waves   WaveTable
	palette map[core.Color]config.ColorRule
	worldW  float64
	missile config.MissileRules
	rng     *rand.Rand
}

// NewGenerator creates a generator for the given rules and RNG seed.
func NewGenerator(r config.Rules, seed int64) *Generator {
	palette := make(map[core.Color]config.ColorRule, len(r.Colors))
	for _, c := range r.Colors {
		palette[c.Color] = c
	}
	return &Generator{
		waves:   NewWaveTable(r.Waves),
		palette: palette,
		worldW:  r.World.Width,
		missile: r.Missile,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Reset reseeds the RNG.
func (g *Generator) Reset(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// Waves returns the wave table the generator samples from.
func (g *Generator) Waves() WaveTable {
	return g.waves
}

// PickColor samples one color from the wave's row, weighted by its weights.
func (g *Generator) PickColor(wave int) core.Color {
	row := g.waves.Lookup(wave)

	total := 0.0
	for _, w := range row.Weights {
		total += w
	}

	r := g.rng.Float64() * total
	acc := 0.0
	for i, w := range row.Weights {
		acc += w
		if r < acc {
			return row.Colors[i]
		}
	}
	// Floating point rounding can leave r == total
	return row.Colors[len(row.Colors)-1]
}

// Horde creates size missiles for the given wave. Each spawns on the top
// edge at a uniformly random x in [0, world width].
func (g *Generator) Horde(wave, size int) []Missile {
	missiles := make([]Missile, 0, size)
	for i := 0; i < size; i++ {
		color := g.PickColor(wave)
		x := float64(g.rng.Intn(int(g.worldW) + 1))
		missiles = append(missiles, g.newMissile(x, color))
	}
	return missiles
}

// Missile creates a single missile of the given color, bypassing the wave
// table. Its x is chosen so the missile fits inside the world.
func (g *Generator) Missile(color core.Color) Missile {
	maxX := int(g.worldW - g.missile.Width)
	if maxX < 0 {
		maxX = 0
	}
	x := float64(g.rng.Intn(maxX + 1))
	return g.newMissile(x, color)
}

func (g *Generator) newMissile(x float64, color core.Color) Missile {
	attrs, ok := g.palette[color]
	if !ok {
		panic(fmt.Sprintf("intruders: color %s has no entry in the color table", color))
	}
	return Missile{
		X:      x,
		Y:      0,
		Width:  g.missile.Width,
		Height: g.missile.Height,
		Color:  color,
		Speed:  attrs.Speed,
	}
}

// Points returns the score for destroying a missile of the given color.
func (g *Generator) Points(color core.Color) int {
	return g.palette[color].Points
}

// Damage returns the life lost when a missile of the given color hits the base.
func (g *Generator) Damage(color core.Color) int {
	return g.palette[color].Damage
}
