package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/intruders/internal/core"
)

// binding ties a game action to the keys that trigger it.
type binding struct {
	action core.Action
	keys   []ebiten.Key
}

var bindings = []binding{
	{core.ActionLeft, []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}},
	{core.ActionRight, []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}},
	{core.ActionUp, []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}},
	{core.ActionDown, []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}},
	{core.ActionFire, []ebiten.Key{ebiten.KeySpace}},
	{core.ActionPause, []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}},
	{core.ActionRestart, []ebiten.Key{ebiten.KeyR}},
	{core.ActionQuit, []ebiten.Key{ebiten.KeyQ}},
}

// readInput builds the frame for the current tick. Movement and fire are
// sampled while held; pause, restart and quit fire once per press.
func readInput() core.InputFrame {
	frame := core.NewInputFrame()
	for _, b := range bindings {
		for _, k := range b.keys {
			if (b.action.IsHeld() && ebiten.IsKeyPressed(k)) ||
				(!b.action.IsHeld() && inpututil.IsKeyJustPressed(k)) {
				frame.Set(b.action)
				break
			}
		}
	}
	return frame
}
