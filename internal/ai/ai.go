// Package ai decides what a monster wants to do on its turn: chase the
// player, attack, or wander. It is grounded on the original source's
// systems/ai.rs (individual_behaviour / hunting_pack_behaviour, the
// distance-based Idle/Aggressive thresholds, and the pack wake loop),
// renamed here to match this repo's Idle/Chasing terminology.
package ai

import (
	"math/rand"

	"github.com/tryjumping/doseresponse/internal/geom"
	"github.com/tryjumping/doseresponse/internal/pathfind"
	"github.com/tryjumping/doseresponse/internal/world"
)

// ChaseDistance is the tile distance at or below which an Idle monster
// becomes Chasing.
const ChaseDistance = 5

// LoseInterestDistance is the tile distance beyond which a Chasing
// monster gives up and returns to Idle.
const LoseInterestDistance = 8

// PackWakeRadius is how far a Hunger monster's aggression spreads to
// other pack members when it first spots the player.
const PackWakeRadius = 8

// wanderSampleAttempts bounds how many random candidate points Idle
// wandering tries before giving up and falling back to a single random
// walkable neighbour.
const wanderSampleAttempts = 10

// Action is what a monster's turn resolves to.
type Action int

const (
	// ActionWait means the monster has nowhere useful to go this turn.
	ActionWait Action = iota
	// ActionMove means the monster should step toward Target (the
	// caller uses world.Walkable/world.MoveMonster with the first step
	// of the returned path).
	ActionMove
	// ActionAttack means the monster should strike the player, who is
	// standing at Target.
	ActionAttack
)

// Decision is the outcome of one call to Decide.
type Decision struct {
	Action Action
	Target geom.Point
	Path   []geom.Point
}

// Decide updates m's AIState based on its distance to the player, wakes
// nearby pack members if m is a Hunger monster newly going aggressive,
// and returns what m should do this turn. It never mutates the world's
// tiles or monster positions; callers are responsible for acting on the
// returned Decision.
func Decide(w *world.World, rng *rand.Rand, m *world.Monster, playerPos geom.Point) Decision {
	dist := geom.TileDistance(m.Position, playerPos)

	wasIdle := m.AIState == world.Idle
	switch {
	case dist <= ChaseDistance:
		m.AIState = world.Chasing
	case dist > LoseInterestDistance:
		m.AIState = world.Idle
	}

	if m.Kind == world.Hunger && wasIdle && m.AIState == world.Chasing {
		wakePack(w, m)
	}

	if m.AIState == world.Idle {
		return wander(w, rng, m)
	}

	if dist <= 1 {
		return Decision{Action: ActionAttack, Target: playerPos}
	}

	path := pathfind.Find(m.Position, playerPos, func(from, to geom.Point) bool {
		return w.Walkable(to, world.BlockingMonsters)
	})
	if len(path) == 0 {
		return Decision{Action: ActionWait}
	}
	return Decision{Action: ActionMove, Target: path[0], Path: path}
}

// wakePack promotes every other living Hunger monster within a SquareArea
// of radius PackWakeRadius to Chasing, matching hunting_pack_behaviour's
// radius-8 wake loop. Only Hunger monsters trigger this or are woken by
// it; the rest of the roster hunts alone.
func wakePack(w *world.World, source *world.Monster) {
	area := geom.NewSquareArea(source.Position, PackWakeRadius)
	for _, p := range area.Points() {
		other := w.MonsterOnPos(p)
		if other == nil || other == source || other.Kind != world.Hunger {
			continue
		}
		other.AIState = world.Chasing
	}
}

// wander continues a cached path if one exists and is still walkable,
// otherwise samples random points 2-8 tiles away and paths to the first
// reachable one, falling back to a single random walkable neighbour
// step if sampling fails entirely.
func wander(w *world.World, rng *rand.Rand, m *world.Monster) Decision {
	if len(m.Path) > 0 {
		next := m.Path[0]
		if w.Walkable(next, world.BlockingMonsters) {
			return Decision{Action: ActionMove, Target: next, Path: m.Path[1:]}
		}
		m.Path = nil
	}

	for i := 0; i < wanderSampleAttempts; i++ {
		dist := 2 + rng.Intn(7) // 2..8 inclusive
		angle := rng.Intn(8)
		offsets := m.Position.Neighbours8()
		dir := offsets[angle].Sub(m.Position)
		target := m.Position.Add(geom.Point{X: dir.X * dist, Y: dir.Y * dist})

		if !w.Walkable(target, world.BlockingMonsters) {
			continue
		}
		path := pathfind.Find(m.Position, target, func(from, to geom.Point) bool {
			return w.Walkable(to, world.BlockingMonsters)
		})
		if len(path) == 0 {
			continue
		}
		return Decision{Action: ActionMove, Target: path[0], Path: path[1:]}
	}

	if pos, ok := w.RandomNeighbourPosition(rng, m.Position, world.BlockingMonsters); ok {
		return Decision{Action: ActionMove, Target: pos}
	}
	return Decision{Action: ActionWait}
}
