package intruders

import "github.com/vovakirdan/intruders/internal/core"

// MissileExplosionHit returns the index of the first missile lying within
// an explosion's current radius. Missiles are scanned in order, and for each
// missile every explosion is tried before moving on. The missile's position
// is its top-left corner.
func MissileExplosionHit(missiles []Missile, explosions []Explosion) (int, bool) {
	for i, m := range missiles {
		for _, e := range explosions {
			if core.Distance(m.X, m.Y, e.X, e.Y) <= e.Radius {
				return i, true
			}
		}
	}
	return -1, false
}

// MissileBaseHits returns the indices of every missile overlapping the base,
// in list order.
func MissileBaseHits(missiles []Missile, base Base) []int {
	var hits []int
	baseRect := base.Rect()
	for i, m := range missiles {
		if m.Rect().Intersects(baseRect) {
			hits = append(hits, i)
		}
	}
	return hits
}

// MissileBaseHit returns the index of the first missile overlapping the base.
func MissileBaseHit(missiles []Missile, base Base) (int, bool) {
	baseRect := base.Rect()
	for i, m := range missiles {
		if m.Rect().Intersects(baseRect) {
			return i, true
		}
	}
	return -1, false
}

// removeIndices returns missiles without the entries at the given sorted
// indices. The slice is filtered in place.
func removeIndices(missiles []Missile, indices []int) []Missile {
	if len(indices) == 0 {
		return missiles
	}
	kept := missiles[:0]
	next := 0
	for i, m := range missiles {
		if next < len(indices) && indices[next] == i {
			next++
			continue
		}
		kept = append(kept, m)
	}
	return kept
}
