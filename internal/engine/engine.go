// Package engine drives the turn-based simulation one tick at a time.
// It is adapted from the teacher's game/ticker.go: the same "snapshot
// actors, update each, then broadcast/report" tick shape, but run
// synchronously from a single Update call instead of a goroutine-driven
// ticker, per spec.md §5's single-threaded mandate.
package engine

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tryjumping/doseresponse/internal/ai"
	"github.com/tryjumping/doseresponse/internal/animation"
	"github.com/tryjumping/doseresponse/internal/geom"
	"github.com/tryjumping/doseresponse/internal/pathfind"
	"github.com/tryjumping/doseresponse/internal/player"
	"github.com/tryjumping/doseresponse/internal/world"
)

// Command is one player action drawn from the input queue.
type Command int

const (
	CommandN Command = iota
	CommandE
	CommandS
	CommandW
	CommandNE
	CommandNW
	CommandSE
	CommandSW
	CommandUseFood
	CommandUseDose
	CommandUseCardinalDose
	CommandUseDiagonalDose
	CommandUseStrongDose

	// CommandStay is not player-selectable; it is the forced no-op
	// Move(self.pos) the stun override resolves to.
	CommandStay
)

var commandDelta = map[Command]geom.Point{
	CommandN:  {X: 0, Y: -1},
	CommandS:  {X: 0, Y: 1},
	CommandW:  {X: -1, Y: 0},
	CommandE:  {X: 1, Y: 0},
	CommandNW: {X: -1, Y: -1},
	CommandNE: {X: 1, Y: -1},
	CommandSW: {X: -1, Y: 1},
	CommandSE: {X: 1, Y: 1},
}

// Side is which way the game has resolved, mirroring the original
// source's победа/defeat split (`Side` in its resources).
type Side int

const (
	SideInProgress Side = iota
	SideVictory
	SideDefeat
)

// State is everything the engine owns across ticks: the world, the
// player, and the side's resolution.
type State struct {
	World  *world.World
	Player *player.Player
	RNG    *rand.Rand

	Side Side

	Turn int

	Paused bool

	ExplosionAnimation *animation.SquareExplosion
	Fade               *animation.ScreenFade

	pendingCommands []Command

	wasAlive bool
}

// NewState creates the engine state for a fresh game on a freshly
// generated world.
func NewState(w *world.World, p *player.Player, rng *rand.Rand) *State {
	return &State{
		World:    w,
		Player:   p,
		RNG:      rng,
		Side:     SideInProgress,
		wasAlive: true,
	}
}

// EnqueueCommand appends a command to the pending queue, as if drained
// from keyboard input this tick.
func (s *State) EnqueueCommand(cmd Command) {
	s.pendingCommands = append(s.pendingCommands, cmd)
}

// SpentAP is emitted once per player turn that actually consumed an
// action point, giving the caller (replay/logging layer) the turn number
// and the command that was actually executed.
type SpentAP struct {
	Turn    int
	Command Command
}

// Update runs one tick: drains one command if the gate conditions hold,
// processes the player, then monsters once the player is out of AP,
// resolves explosions, explores, and checks for the endgame fade.
// It returns the command actually spent this tick, if any, for the
// caller to log.
func (s *State) Update(dt time.Duration, log *logrus.Logger) *SpentAP {
	if s.ExplosionAnimation != nil {
		s.ExplosionAnimation.Advance(dt)
	}
	if s.Fade != nil {
		s.Fade.Advance(dt)
	}

	if s.Paused || s.animationRunning() || s.Side == SideVictory {
		return nil
	}

	var spent *SpentAP
	if s.Player.HasAP(1) {
		s.autoConsumeIrresistibleInventory()
		if cmd, ok := s.popCommand(); ok {
			action := s.resolveForcedAction(cmd)
			if s.executeCommand(action) {
				spent = &SpentAP{Turn: s.Turn, Command: action}
				if log != nil {
					log.WithFields(logrus.Fields{"turn": s.Turn, "command": action}).Debug("player spent AP")
				}
			}
		}
	}

	if !s.Player.HasAP(1) {
		s.processMonsters(log)
		s.Player.NewTurn()
		s.Turn++
	}

	s.resolveExplosions()
	s.World.Explore(s.Player.Pos(), s.Player.ExplorationRadius())
	s.checkEndgame(log)

	return spent
}

func (s *State) animationRunning() bool {
	if s.ExplosionAnimation != nil && !s.ExplosionAnimation.Done() {
		return true
	}
	if s.Fade != nil && !s.Fade.Done() {
		return true
	}
	return false
}

func (s *State) popCommand() (Command, bool) {
	if len(s.pendingCommands) == 0 {
		return 0, false
	}
	cmd := s.pendingCommands[0]
	s.pendingCommands = s.pendingCommands[1:]
	return cmd, true
}

// resolveForcedAction applies spec.md §4.G's override precedence: stun
// beats panic beats dose irresistibility beats the player's chosen
// command.
func (s *State) resolveForcedAction(chosen Command) Command {
	if !s.Player.Stun.IsMin() {
		return CommandStay
	}
	if !s.Player.Panic.IsMin() {
		if n, ok := s.World.RandomNeighbourPosition(s.RNG, s.Player.Pos(), world.BlockingMonsters); ok {
			return directionTo(s.Player.Pos(), n)
		}
		return chosen
	}
	if cmd, ok := s.forcedDoseMove(); ok {
		return cmd
	}
	return chosen
}

// forcedDoseMove implements dose-irresistibility: if a dose lies within
// the player's resist radius and a path exists, the next action is
// forced to the first step of that path.
func (s *State) forcedDoseMove() (Command, bool) {
	will := s.Player.Will.Value()
	maxRadius := player.ResistRadius(5, will) // StrongDose has the largest irresistible pull (5)
	if maxRadius <= 0 {
		return 0, false
	}
	dosePos, found := s.World.NearestDose(s.Player.Pos(), maxRadius)
	if !found {
		return 0, false
	}

	item := peekDose(s.World, dosePos)
	radius := player.ResistRadius(item.Irresistible, will)
	if radius <= 0 || geom.TileDistance(s.Player.Pos(), dosePos) > radius {
		return 0, false
	}

	path := pathfind.Find(s.Player.Pos(), dosePos, func(from, to geom.Point) bool {
		return s.World.Walkable(to, world.BlockingMonsters)
	})
	if len(path) == 0 || len(path) > radius {
		return 0, false
	}
	return directionTo(s.Player.Pos(), path[0]), true
}

func peekDose(w *world.World, pos geom.Point) world.Item {
	cell := w.Cell(pos)
	for _, item := range cell.Items {
		if item.Kind.IsDose() {
			return item
		}
	}
	return world.Item{}
}

func directionTo(from, to geom.Point) Command {
	delta := to.Sub(from)
	for cmd, d := range commandDelta {
		if d == delta {
			return cmd
		}
	}
	return CommandN // unreachable for any adjacent delta
}

// executeCommand runs one player action and returns whether it spent an
// action point.
func (s *State) executeCommand(cmd Command) bool {
	if cmd == CommandStay {
		s.Player.SpendAP(1)
		return true
	}
	if delta, ok := commandDelta[cmd]; ok {
		return s.movePlayer(s.Player.Pos().Add(delta))
	}
	switch cmd {
	case CommandUseFood:
		return s.useItem(world.ItemFood)
	case CommandUseDose:
		return s.useItem(world.ItemDose)
	case CommandUseStrongDose:
		return s.useItem(world.ItemStrongDose)
	case CommandUseCardinalDose:
		return s.useItem(world.ItemCardinalDose)
	case CommandUseDiagonalDose:
		return s.useItem(world.ItemDiagonalDose)
	}
	return false
}

// movePlayer resolves a Move(dest) action per spec.md §4.H: attack if a
// monster occupies dest, step onto it if walkable (auto-picking up
// items), or no-op against a wall.
func (s *State) movePlayer(dest geom.Point) bool {
	if m := s.World.MonsterOnPos(dest); m != nil {
		s.Player.SpendAP(1)
		s.attackMonster(m)
		return true
	}
	if !s.World.Walkable(dest, world.BlockingMonsters) {
		return false // bumped a wall
	}

	s.Player.SpendAP(1)
	s.Player.SetPos(dest)

	for {
		item, ok := s.World.PickupItem(dest)
		if !ok {
			break
		}
		s.handlePickup(item)
	}
	return true
}

func (s *State) attackMonster(m *world.Monster) {
	s.Player.TakeEffect(world.AttackModifier(m.Kind))
	if m.Kind == world.Anxiety {
		s.Player.KillAnxiety()
	}
	if !s.Player.Invincible {
		s.World.RemoveMonster(m.Position)
	}
}

func (s *State) handlePickup(item world.Item) {
	if !item.Kind.IsDose() {
		s.Player.AddToInventory(item)
		return
	}
	if player.ResistRadius(item.Irresistible, s.Player.Will.Value()) == 0 {
		s.Player.AddToInventory(item)
		return
	}
	s.consumeDose(item)
}

// autoConsumeIrresistibleInventory forces an immediate Use on any
// carried dose whose pull still overcomes the player's Will, per
// spec.md §4.G: "any dose in inventory whose player_resist_radius is
// still > 0 is auto-consumed that turn."
func (s *State) autoConsumeIrresistibleInventory() {
	will := s.Player.Will.Value()
	kept := s.Player.Inventory[:0]
	for _, item := range s.Player.Inventory {
		if item.Kind.IsDose() && player.ResistRadius(item.Irresistible, will) > 0 {
			s.consumeDose(item)
			continue
		}
		kept = append(kept, item)
	}
	s.Player.Inventory = kept
}

// useItem finds and consumes one inventory item of kind, if present.
func (s *State) useItem(kind world.ItemKind) bool {
	for i, item := range s.Player.Inventory {
		if item.Kind != kind {
			continue
		}
		s.Player.Inventory = append(s.Player.Inventory[:i], s.Player.Inventory[i+1:]...)
		s.Player.SpendAP(1)
		if kind == world.ItemFood {
			s.Player.TakeEffect(item.Modifier)
			s.startExplosion(animation.NewSquareExplosion(s.Player.Pos(), 2, animation.EffectKill))
		} else {
			s.consumeDose(item)
		}
		return true
	}
	return false
}

// consumeDose applies a dose's intoxication effect and schedules the
// explosion animation: a square explosion of radius 6 for StrongDose and
// of radius 4 for every other dose kind. CardinalDose and DiagonalDose
// get the same square explosion as Dose; there are no cardinal or
// diagonal explosion shapes. (Food's radius-2 explosion is scheduled by
// useItem.)
func (s *State) consumeDose(item world.Item) {
	s.Player.TakeEffect(item.Modifier)
	radius := 4
	if item.Kind == world.ItemStrongDose {
		radius = 6
	}
	s.startExplosion(animation.NewSquareExplosion(s.Player.Pos(), radius, animation.EffectShatter))
}

func (s *State) startExplosion(exp *animation.SquareExplosion) {
	s.ExplosionAnimation = exp
}

// processMonsters runs ai.Decide/act for every monster in the
// simulation area centered on the player, snapshotting monster IDs before
// acting so monsters that die mid-pass don't perturb iteration, per
// spec.md §4.H step 3b.
func (s *State) processMonsters(log *logrus.Logger) {
	area := geom.RectFromCenter(s.Player.Pos(), geom.Point{X: 40, Y: 40})
	chunks := s.World.Chunks(area)

	var ids []world.MonsterID
	for _, chunk := range chunks {
		for _, m := range chunk.Monsters {
			if !m.Dead {
				ids = append(ids, m.ID)
			}
		}
	}

	for _, id := range ids {
		s.actMonster(id, log)
	}
}

func (s *State) actMonster(id world.MonsterID, log *logrus.Logger) {
	m := s.World.MonsterByID(id)
	if m == nil || m.Dead {
		return
	}
	m.AP = m.MaxAP

	for m.AP > 0 {
		decision := ai.Decide(s.World, s.RNG, m, s.Player.Pos())
		m.AP--

		switch decision.Action {
		case ai.ActionAttack:
			s.Player.TakeEffect(world.AttackModifier(m.Kind))
			if world.DiesAfterAttack(m.Kind) {
				s.World.RemoveMonster(m.Position)
				return
			}
		case ai.ActionMove:
			if m.Position == decision.Target {
				continue
			}
			if s.World.Walkable(decision.Target, world.BlockingMonsters) {
				trail := m.Position
				s.World.MoveMonster(m.Position, decision.Target)
				m = s.World.MonsterByID(id)
				if m == nil {
					return
				}
				m.Trail = &trail
				m.Path = decision.Path
			}
		case ai.ActionWait:
			// Nothing to do this action point.
		}
	}
}

// resolveExplosions applies the pending explosion animation's current
// wave effects to the world: KILL removes monsters under the wave,
// SHATTER clears terrain and items.
func (s *State) resolveExplosions() {
	if s.ExplosionAnimation == nil {
		return
	}
	wave, ok := s.ExplosionAnimation.CurrentWave()
	if ok {
		for _, p := range wave.Points {
			switch wave.Effect {
			case animation.EffectKill:
				s.World.RemoveMonster(p)
			case animation.EffectShatter:
				cell := s.World.Cell(p)
				cell.Tile = world.Tile{Kind: world.TileEmpty}
				cell.Items = nil
			}
		}
	}
	if s.ExplosionAnimation.Done() {
		s.ExplosionAnimation = nil
	}
}

// checkEndgame triggers the three-phase screen fade the first turn the
// player transitions from alive to dead, and checks the victory
// condition.
func (s *State) checkEndgame(log *logrus.Logger) {
	alive := s.Player.Alive()
	if s.wasAlive && !alive && s.Fade == nil {
		s.Fade = animation.NewScreenFade()
		s.Side = SideDefeat
		if log != nil {
			log.WithField("turn", s.Turn).Info("player died, starting endgame fade")
		}
	}
	s.wasAlive = alive

	if s.Player.Won() && s.Side == SideInProgress {
		s.Side = SideVictory
		if log != nil {
			log.WithField("turn", s.Turn).Info("player won")
		}
	}
}
