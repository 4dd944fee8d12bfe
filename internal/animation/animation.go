// Package animation holds purely data-driven animation state: the turn
// engine advances it and applies its effects, rendering only reads it.
// It is ported from the original source's src/animation.rs
// (SquareExplosion's wave-expansion timer, ScreenFade's phase machine)
// as plain structs per spec.md §9's "never hang callbacks off
// animations" guidance.
package animation

import (
	"time"

	"github.com/tryjumping/doseresponse/internal/geom"
)

// Effect is what a SquareExplosion's current wave does to whatever it
// covers.
type Effect int

const (
	EffectNone Effect = iota
	EffectKill
	EffectShatter
)

// waveDuration is how long a single radius step takes to expand,
// matching the original's 100ms-per-wave timer.
const waveDuration = 100 * time.Millisecond

// SquareExplosion expands outward from Center, one tile of radius every
// waveDuration, until it reaches MaxRadius.
type SquareExplosion struct {
	Center        geom.Point
	InitialRadius int
	MaxRadius     int
	CurrentRadius int
	Effect        Effect

	elapsed time.Duration
}

// NewSquareExplosion starts an explosion centered on center, growing
// from radius 1 up to maxRadius, carrying effect.
func NewSquareExplosion(center geom.Point, maxRadius int, effect Effect) *SquareExplosion {
	if maxRadius < 1 {
		maxRadius = 1
	}
	return &SquareExplosion{
		Center:        center,
		InitialRadius: 1,
		MaxRadius:     maxRadius,
		CurrentRadius: 1,
		Effect:        effect,
	}
}

// waveCount is how many discrete radius steps the explosion passes
// through before it's done.
func (e *SquareExplosion) waveCount() int {
	return e.MaxRadius - e.InitialRadius + 1
}

func (e *SquareExplosion) totalDuration() time.Duration {
	return waveDuration * time.Duration(e.waveCount())
}

// Advance integrates dt into the explosion's timer, growing
// CurrentRadius toward MaxRadius.
func (e *SquareExplosion) Advance(dt time.Duration) {
	if e.Done() {
		return
	}
	e.elapsed += dt
	progress := float64(e.elapsed) / float64(waveDuration)
	radius := e.InitialRadius + int(progress)
	if radius > e.MaxRadius {
		radius = e.MaxRadius
	}
	e.CurrentRadius = radius
}

// Done reports whether the explosion has finished expanding and its
// final wave has had time to be observed.
func (e *SquareExplosion) Done() bool {
	return e.elapsed >= e.totalDuration()
}

// Wave is the set of tiles the explosion's current radius covers, and
// what it does to them.
type Wave struct {
	Points []geom.Point
	Effect Effect
}

// CurrentWave returns the tiles covered by the explosion's current
// radius. It returns false if the explosion carries no effect (a pure
// visual flourish with nothing for the engine to resolve).
func (e *SquareExplosion) CurrentWave() (Wave, bool) {
	if e.Effect == EffectNone {
		return Wave{}, false
	}
	area := geom.NewSquareArea(e.Center, e.CurrentRadius)
	return Wave{Points: area.Points(), Effect: e.Effect}, true
}

// ScreenFadePhase is where a ScreenFade is in its FadeOut -> Wait ->
// FadeIn -> Done cycle.
type ScreenFadePhase int

const (
	PhaseFadeOut ScreenFadePhase = iota
	PhaseWait
	PhaseFadeIn
	PhaseDone
)

// ScreenFade is the three-phase endgame transition: darken the screen,
// hold, then lighten back up. Done unlocks the endgame screen.
type ScreenFade struct {
	Phase ScreenFadePhase

	fadeOutTime time.Duration
	waitTime    time.Duration
	fadeInTime  time.Duration

	elapsed time.Duration
}

// NewScreenFade starts a fade in its FadeOut phase with the standard
// phase durations.
func NewScreenFade() *ScreenFade {
	return &ScreenFade{
		Phase:       PhaseFadeOut,
		fadeOutTime: 500 * time.Millisecond,
		waitTime:    1 * time.Second,
		fadeInTime:  500 * time.Millisecond,
	}
}

// Advance integrates dt into the current phase's timer, moving to the
// next phase each time the current one's duration elapses. A phase can
// only ever advance by one step per call, matching the original's
// per-tick timer update.
func (f *ScreenFade) Advance(dt time.Duration) {
	if f.Phase == PhaseDone {
		return
	}
	f.elapsed += dt
	if f.elapsed < f.phaseDuration() {
		return
	}
	f.elapsed -= f.phaseDuration()
	switch f.Phase {
	case PhaseFadeOut:
		f.Phase = PhaseWait
	case PhaseWait:
		f.Phase = PhaseFadeIn
	case PhaseFadeIn:
		f.Phase = PhaseDone
	}
}

func (f *ScreenFade) phaseDuration() time.Duration {
	switch f.Phase {
	case PhaseFadeOut:
		return f.fadeOutTime
	case PhaseWait:
		return f.waitTime
	case PhaseFadeIn:
		return f.fadeInTime
	}
	return 0
}

// Done reports whether the fade has completed all three phases.
func (f *ScreenFade) Done() bool {
	return f.Phase == PhaseDone
}
