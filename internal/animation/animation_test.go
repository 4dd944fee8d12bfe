package animation

import (
	"testing"
	"time"

	"github.com/tryjumping/doseresponse/internal/geom"
)

func TestSquareExplosion_GrowsOneRadiusPerWave(t *testing.T) {
	e := NewSquareExplosion(geom.Point{X: 0, Y: 0}, 3, EffectKill)
	if e.CurrentRadius != 1 {
		t.Fatalf("expected initial radius 1, got %d", e.CurrentRadius)
	}

	e.Advance(100 * time.Millisecond)
	if e.CurrentRadius != 2 {
		t.Fatalf("expected radius 2 after one wave, got %d", e.CurrentRadius)
	}

	e.Advance(100 * time.Millisecond)
	if e.CurrentRadius != 3 {
		t.Fatalf("expected radius 3 after two waves, got %d", e.CurrentRadius)
	}

	e.Advance(1 * time.Second)
	if e.CurrentRadius != 3 {
		t.Fatalf("expected radius to stay capped at max 3, got %d", e.CurrentRadius)
	}
	if !e.Done() {
		t.Fatal("expected explosion to be done once its total duration has elapsed")
	}
}

func TestSquareExplosion_EffectNoneHasNoWave(t *testing.T) {
	e := NewSquareExplosion(geom.Point{X: 0, Y: 0}, 2, EffectNone)
	if _, ok := e.CurrentWave(); ok {
		t.Fatal("expected no wave for an explosion with EffectNone")
	}
}

func TestScreenFade_AdvancesThroughAllPhases(t *testing.T) {
	f := NewScreenFade()
	if f.Phase != PhaseFadeOut {
		t.Fatalf("expected to start in FadeOut, got %v", f.Phase)
	}

	f.Advance(500 * time.Millisecond)
	if f.Phase != PhaseWait {
		t.Fatalf("expected FadeOut -> Wait, got %v", f.Phase)
	}

	f.Advance(1 * time.Second)
	if f.Phase != PhaseFadeIn {
		t.Fatalf("expected Wait -> FadeIn, got %v", f.Phase)
	}

	f.Advance(500 * time.Millisecond)
	if f.Phase != PhaseDone || !f.Done() {
		t.Fatalf("expected FadeIn -> Done, got %v", f.Phase)
	}
}

func TestScreenFade_DoneIsStickyOnFurtherAdvance(t *testing.T) {
	f := NewScreenFade()
	f.Advance(500 * time.Millisecond)
	f.Advance(1 * time.Second)
	f.Advance(500 * time.Millisecond)
	f.Advance(10 * time.Second)
	if f.Phase != PhaseDone {
		t.Fatalf("expected Done to stay Done, got %v", f.Phase)
	}
}
