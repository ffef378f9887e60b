package intruders

import "github.com/vovakirdan/intruders/internal/core"

// Box is a read-only view of a rectangular entity.
type Box struct {
	X, Y, W, H float64
	Color      core.Color
}

// Circle is a read-only view of an explosion.
type Circle struct {
	X, Y, R float64
	Color   core.Color
}

// Snapshot is everything a renderer needs to draw one frame.
// It shares no memory with the game.
type Snapshot struct {
	Tick   uint64
	Phase  Phase
	Paused bool
	Wave   int
	Life   int
	Score  int

	WorldW, WorldH float64

	Player     Box
	Base       Box
	Missiles   []Box
	Explosions []Circle
}

// Entity colors.
const (
	PlayerColor    = core.ColorWhite
	BaseColor      = core.ColorBlue
	ExplosionColor = core.ColorRed
)

// Snapshot returns the current frame for renderers and determinism tests.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:   g.tick,
		Phase:  g.phase,
		Paused: g.paused,
		Wave:   g.wave,
		Life:   g.life,
		Score:  g.score,
		WorldW: g.rules.World.Width,
		WorldH: g.rules.World.Height,
		Player: Box{
			X: g.player.X, Y: g.player.Y,
			W: g.player.Width, H: g.player.Height,
			Color: PlayerColor,
		},
		Base: Box{
			X: g.base.X, Y: g.base.Y,
			W: g.base.Width, H: g.base.Height,
			Color: BaseColor,
		},
		Missiles:   make([]Box, 0, len(g.missiles)),
		Explosions: make([]Circle, 0, len(g.player.Explosions)),
	}

	for _, m := range g.missiles {
		s.Missiles = append(s.Missiles, Box{X: m.X, Y: m.Y, W: m.Width, H: m.Height, Color: m.Color})
	}
	for _, e := range g.player.Explosions {
		s.Explosions = append(s.Explosions, Circle{X: e.X, Y: e.Y, R: e.Radius, Color: ExplosionColor})
	}
	return s
}
