// Package iface defines the boundary contract between the simulation
// core and the external rendering/input layer: what the core consumes
// each tick (UpdateInput) and what it produces (Draw commands,
// RunningState). These are pure data types, grounded on spec.md §6 —
// no I/O, no rendering, nothing that talks to a window or a socket
// lives here.
package iface

import (
	"time"

	"github.com/tryjumping/doseresponse/internal/engine"
	"github.com/tryjumping/doseresponse/internal/geom"
)

// KeyCode identifies a recognized keyboard key, covering the numpad,
// arrow keys, Vi movement letters, inventory digits, and the handful of
// named commands spec.md §6 lists.
type KeyCode int

const (
	KeyUnknown KeyCode = iota

	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Vi movement letters: h j k l (cardinal), y u b n (diagonal).
	KeyH
	KeyJ
	KeyK
	KeyL
	KeyY
	KeyU
	KeyB
	KeyN

	// Inventory slot digits.
	KeyInventory1
	KeyInventory2
	KeyInventory3
	KeyInventory4
	KeyInventory5

	KeyEatFood
	KeyEsc
	KeyEnter
	KeySpace
	KeyRestart // F5
	KeyToggleCheating // F6
	KeyQuit
)

// Key is one keyboard event, with the modifiers that were held alongside
// it. Commands does not read the modifiers, so arrow keys never produce a
// diagonal move.
type Key struct {
	Code  KeyCode
	Alt   bool
	Ctrl  bool
	Shift bool
}

// Mouse is the pointer's state this tick, in both screen and tile space.
type Mouse struct {
	ScreenPos    geom.Point
	TilePos      geom.Point
	LeftClicked  bool
	RightClicked bool
}

// DisplaySettings carries the subset of rendering configuration the core
// is handed each tick, per spec.md §6 ("settings: { fullscreen,
// tile_size, ... }").
type DisplaySettings struct {
	Fullscreen bool
	TileSize   int
}

// UpdateInput is everything the core consumes on one tick: elapsed time,
// the current display geometry, drained keyboard/mouse events, and the
// active display settings.
type UpdateInput struct {
	Dt          time.Duration
	DisplaySize geom.Point // in tiles
	FPS         int
	Keys        []Key
	Mouse       Mouse
	Settings    DisplaySettings
}

// Commands translates a drained key sequence into the engine Commands it
// maps to: numpad keys and Vi letters for the eight directions, arrow
// keys for the four cardinal directions only (modifiers are not read),
// digits 1-4 for Dose, StrongDose, CardinalDose and DiagonalDose, and E
// as the eat-food shortcut. KeyInventory5 maps to no command.
func (in UpdateInput) Commands() []engine.Command {
	var cmds []engine.Command
	for _, k := range in.Keys {
		if cmd, ok := keyCommand(k); ok {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

func keyCommand(k Key) (engine.Command, bool) {
	switch k.Code {
	case KeyNumpad8, KeyUp, KeyK:
		return engine.CommandN, true
	case KeyNumpad2, KeyDown, KeyJ:
		return engine.CommandS, true
	case KeyNumpad4, KeyLeft, KeyH:
		return engine.CommandW, true
	case KeyNumpad6, KeyRight, KeyL:
		return engine.CommandE, true
	case KeyNumpad9, KeyU:
		return engine.CommandNE, true
	case KeyNumpad7, KeyY:
		return engine.CommandNW, true
	case KeyNumpad3, KeyN:
		return engine.CommandSE, true
	case KeyNumpad1, KeyB:
		return engine.CommandSW, true
	case KeyEatFood:
		return engine.CommandUseFood, true
	case KeyInventory1:
		return engine.CommandUseDose, true
	case KeyInventory2:
		return engine.CommandUseStrongDose, true
	case KeyInventory3:
		return engine.CommandUseCardinalDose, true
	case KeyInventory4:
		return engine.CommandUseDiagonalDose, true
	default:
		return 0, false
	}
}

// DrawKind discriminates one abstract draw command's shape.
type DrawKind int

const (
	DrawChar DrawKind = iota
	DrawBackground
	DrawRectangle
	DrawFade
)

// Draw is one abstract, renderer-agnostic draw instruction: what to
// show, never how. The rendering layer interprets Kind to pick which
// fields matter.
type Draw struct {
	Kind DrawKind

	Pos  geom.Point // tile position, for DrawChar/DrawBackground
	Char rune       // for DrawChar
	Fg   string     // foreground color, for DrawChar
	Bg   string     // background color, for DrawChar/DrawBackground/DrawRectangle

	Rect geom.Rectangle // for DrawRectangle

	FadeAlpha float64 // 0..1, for DrawFade (full-screen fade overlay)
}

// RunningStateKind discriminates a tick's resolution for the external
// loop: keep running, swap in a fresh game, stop entirely, or skip
// rendering this tick (e.g. while paused behind a menu).
type RunningStateKind int

const (
	Running RunningStateKind = iota
	NewGame
	Stopped
	Skip
)

// RunningState is the core's verdict on what the external loop should
// do after this tick. NewGame carries the engine.State to swap in.
type RunningState struct {
	Kind     RunningStateKind
	NewState *engine.State
}
