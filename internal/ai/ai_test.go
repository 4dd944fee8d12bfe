package ai

import (
	"math/rand"
	"testing"

	"github.com/tryjumping/doseresponse/internal/geom"
	"github.com/tryjumping/doseresponse/internal/world"
)

func emptyGenerator() world.ChunkGenerator {
	return func(seed uint32, coord geom.Point) *world.Chunk {
		chunk := &world.Chunk{Coord: coord}
		for x := 0; x < world.ChunkSide; x++ {
			for y := 0; y < world.ChunkSide; y++ {
				chunk.Cells[x][y] = world.Cell{Tile: world.Tile{Kind: world.TileEmpty}}
			}
		}
		return chunk
	}
}

func TestDecide_BecomesChasingWithinChaseDistance(t *testing.T) {
	w := world.NewWorld(1, emptyGenerator())
	rng := rand.New(rand.NewSource(1))
	m := &world.Monster{Kind: world.Anxiety, Position: geom.Point{X: 3, Y: 0}, AIState: world.Idle}
	player := geom.Point{X: 0, Y: 0}

	Decide(w, rng, m, player)

	if m.AIState != world.Chasing {
		t.Fatalf("expected monster within %d tiles to become Chasing, got %v", ChaseDistance, m.AIState)
	}
}

func TestDecide_ReturnsToIdleBeyondLoseInterestDistance(t *testing.T) {
	w := world.NewWorld(1, emptyGenerator())
	rng := rand.New(rand.NewSource(1))
	m := &world.Monster{Kind: world.Anxiety, Position: geom.Point{X: 20, Y: 0}, AIState: world.Chasing}
	player := geom.Point{X: 0, Y: 0}

	Decide(w, rng, m, player)

	if m.AIState != world.Idle {
		t.Fatalf("expected monster beyond %d tiles to return to Idle, got %v", LoseInterestDistance, m.AIState)
	}
}

func TestDecide_StaysInCurrentStateBetweenThresholds(t *testing.T) {
	w := world.NewWorld(1, emptyGenerator())
	rng := rand.New(rand.NewSource(1))
	m := &world.Monster{Kind: world.Anxiety, Position: geom.Point{X: 7, Y: 0}, AIState: world.Chasing}
	player := geom.Point{X: 0, Y: 0}

	Decide(w, rng, m, player)

	if m.AIState != world.Chasing {
		t.Fatalf("expected monster between thresholds to keep its existing state, got %v", m.AIState)
	}
}

func TestDecide_AttacksWhenAdjacent(t *testing.T) {
	w := world.NewWorld(1, emptyGenerator())
	rng := rand.New(rand.NewSource(1))
	m := &world.Monster{Kind: world.Depression, Position: geom.Point{X: 1, Y: 0}, AIState: world.Chasing}
	player := geom.Point{X: 0, Y: 0}

	d := Decide(w, rng, m, player)

	if d.Action != ActionAttack || d.Target != player {
		t.Fatalf("expected an attack on the player's tile, got %+v", d)
	}
}

func TestDecide_MovesTowardPlayerWhenChasingAndNotAdjacent(t *testing.T) {
	w := world.NewWorld(1, emptyGenerator())
	rng := rand.New(rand.NewSource(1))
	m := &world.Monster{Kind: world.Anxiety, Position: geom.Point{X: 3, Y: 0}, AIState: world.Chasing}
	player := geom.Point{X: 0, Y: 0}

	d := Decide(w, rng, m, player)

	if d.Action != ActionMove {
		t.Fatalf("expected ActionMove, got %+v", d)
	}
	if geom.TileDistance(d.Target, player) >= geom.TileDistance(m.Position, player) {
		t.Fatalf("expected the move target to be closer to the player than %v, got %v", m.Position, d.Target)
	}
}

// TestDecide_DepressionHasDoubleActionBudget exercises spec.md's worked
// scenario: a Depression monster's MaxAP of 2 lets the engine call
// Decide/act twice in the same turn, each call independently closing
// the distance by one tile.
func TestDecide_DepressionHasDoubleActionBudget(t *testing.T) {
	w := world.NewWorld(1, emptyGenerator())
	rng := rand.New(rand.NewSource(1))
	m := &world.Monster{Kind: world.Depression, Position: geom.Point{X: 4, Y: 0}, AIState: world.Chasing, MaxAP: world.MaxAPForKind(world.Depression)}
	player := geom.Point{X: 0, Y: 0}

	if m.MaxAP != 2 {
		t.Fatalf("expected Depression MaxAP of 2, got %d", m.MaxAP)
	}

	first := Decide(w, rng, m, player)
	if first.Action != ActionMove {
		t.Fatalf("expected first step to move, got %+v", first)
	}
	w.EnsureChunk(world.ChunkCoordOf(m.Position))
	m.Position = first.Target

	second := Decide(w, rng, m, player)
	if second.Action != ActionMove {
		t.Fatalf("expected second step to move, got %+v", second)
	}
	if geom.TileDistance(second.Target, player) >= geom.TileDistance(m.Position, player) {
		t.Fatal("expected the second action point to close the distance further")
	}
}

func TestDecide_HungerWakesNearbyPackMembers(t *testing.T) {
	w := world.NewWorld(1, emptyGenerator())
	rng := rand.New(rand.NewSource(1))

	leader := &world.Monster{Kind: world.Hunger, Position: geom.Point{X: 3, Y: 0}, AIState: world.Idle}
	sleeper := &world.Monster{Kind: world.Hunger, Position: geom.Point{X: 4, Y: 3}, AIState: world.Idle}
	chunk := w.EnsureChunk(world.ChunkCoordOf(leader.Position))
	chunk.Monsters = append(chunk.Monsters, leader, sleeper)

	player := geom.Point{X: 0, Y: 0}
	Decide(w, rng, leader, player)

	if sleeper.AIState != world.Chasing {
		t.Fatal("expected a nearby sleeping Hunger monster to wake to Chasing")
	}
}
