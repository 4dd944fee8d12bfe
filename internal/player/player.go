// Package player implements the Mind addiction state machine, Will,
// tolerance, dose irresistibility, and the panic/stun/forced-action
// override logic. It is grounded on the original source's player.rs
// (the Mind/Modifier/Bonus enums, Player.take_effect, Player.new_turn,
// Player.alive) and formula.rs (exploration_radius,
// player_resist_radius).
package player

import (
	"github.com/tryjumping/doseresponse/internal/geom"
	"github.com/tryjumping/doseresponse/internal/ranged"
	"github.com/tryjumping/doseresponse/internal/world"
)

// Bounds for the Mind sub-states and the various turn counters. Exact
// magnitudes are this repo's own balancing pass: spec.md pins the shape
// of the formulas and the worked examples in its scenario list, not
// every constant.
const (
	WithdrawalMax = 20
	SoberMax      = 20
	HighMax       = 20

	WillMin = 0
	WillMax = 5

	PanicTurnsMax   = 10
	StunTurnsMax    = 10
	AnxietiesPerWill = 3

	SobrietyCounterMax = 100
)

// MindKind identifies which Mind sub-state is active.
type MindKind int

const (
	Withdrawal MindKind = iota
	Sober
	High
)

// Mind is the player's intoxication state: exactly one sub-state is
// active at a time, each independently bounded.
type Mind struct {
	Kind  MindKind
	Value ranged.Ranged
}

// NewMind returns the starting Mind: Withdrawal at its max, mirroring a
// player who has just run out of a dose's effects and has yet to find
// another.
func NewMind() Mind {
	return Mind{Kind: Withdrawal, Value: ranged.NewMax(0, WithdrawalMax)}
}

// Bonus is a rendering hint granted by sustained sobriety. It never
// feeds back into core simulation logic.
type Bonus int

const (
	BonusNone Bonus = iota
	BonusSeeMonstersAndItems
	BonusUncoverMap
)

// Player is the single player-controlled avatar.
type Player struct {
	pos geom.Point

	Mind Mind
	Will ranged.Ranged

	Tolerance int
	Panic     ranged.Ranged
	Stun      ranged.Ranged

	Inventory []world.Item

	AnxietyCounter   ranged.Ranged
	SobrietyCounter  ranged.Ranged
	Bonus            Bonus
	CurrentHighStreak int
	LongestHighStreak int

	Dead       bool
	Invincible bool

	MaxAP int
	AP    int
}

// New returns a fresh Player at pos: Withdrawal at max, Will at 2
// (matching the original's starting value), no inventory, 1 AP per
// turn.
func New(pos geom.Point, invincible bool) *Player {
	return &Player{
		pos:             pos,
		Mind:            NewMind(),
		Will:            ranged.New(2, WillMin, WillMax),
		Panic:           ranged.NewMin(0, PanicTurnsMax),
		Stun:            ranged.NewMin(0, StunTurnsMax),
		AnxietyCounter:  ranged.NewMin(0, AnxietiesPerWill),
		SobrietyCounter: ranged.NewMin(0, SobrietyCounterMax),
		Bonus:           BonusNone,
		Invincible:      invincible,
		MaxAP:           1,
		AP:              1,
	}
}

// Alive reports whether the player is still in play: not explicitly
// dead, Will above its minimum, and not in a lethal Mind state
// (Withdrawal exhaustion or High overdose). Invincible players are
// always alive regardless of the rest of their state.
func (p *Player) Alive() bool {
	if p.Invincible {
		return true
	}
	if p.Dead {
		return false
	}
	if p.Will.IsMin() {
		return false
	}
	if p.Mind.Kind == Withdrawal && p.Mind.Value.IsMin() {
		return false
	}
	if p.Mind.Kind == High && p.Mind.Value.IsMax() {
		return false
	}
	return true
}

// Pos returns the player's current position.
func (p *Player) Pos() geom.Point {
	return p.pos
}

// SetPos moves the player to pos.
func (p *Player) SetPos(pos geom.Point) {
	p.pos = pos
}

// HasAP reports whether the player can still afford to spend count
// action points this turn.
func (p *Player) HasAP(count int) bool {
	return p.AP >= count
}

// SpendAP deducts count action points. It panics if the player doesn't
// have that many, since callers must check HasAP first.
func (p *Player) SpendAP(count int) {
	if count > p.AP {
		panic("player: SpendAP: insufficient AP")
	}
	p.AP -= count
}

// NewTurn resets AP and lets the turn's time-based effects (stun/panic
// countdown, Mind decay) apply. It is a no-op if the player is not
// alive, matching the original's new_turn guard.
func (p *Player) NewTurn() {
	if !p.Alive() {
		return
	}
	p.Stun = p.Stun.Sub(1)
	p.Panic = p.Panic.Sub(1)
	p.decayMind()
	p.AP = p.MaxAP
}

// decayMind advances the Mind state machine by one turn of elapsed
// time, per spec.md §4.G: the active sub-state's value decrements, and
// hitting certain bounds transitions to a different sub-state.
// Withdrawal-min and High-max are terminal (Alive catches those); Sober
// reaching its minimum, or High reaching its minimum, both fall back to
// a fresh Withdrawal(max).
func (p *Player) decayMind() {
	p.Mind.Value = p.Mind.Value.Sub(1)

	switch p.Mind.Kind {
	case Sober:
		if p.Mind.Value.IsMin() {
			p.Mind = Mind{Kind: Withdrawal, Value: ranged.NewMax(0, WithdrawalMax)}
		}
	case High:
		if p.Mind.Value.IsMin() {
			p.Mind = Mind{Kind: Withdrawal, Value: ranged.NewMax(0, WithdrawalMax)}
		}
	}
}

// TakeEffect applies a Modifier to the player, the way consuming an item
// or being attacked by a monster does.
func (p *Player) TakeEffect(effect world.Modifier) {
	switch effect.Kind {
	case world.ModifierDeath:
		p.Dead = true

	case world.ModifierAttribute:
		p.Will = p.Will.Add(effect.Will)
		if !p.Will.IsMax() {
			p.SobrietyCounter = p.SobrietyCounter.SetToMin()
		}
		p.processHunger(effect.StateOfMind)

	case world.ModifierIntoxication:
		p.intoxicate(effect.StateOfMind)
		p.Tolerance += effect.Tolerance
		p.SobrietyCounter = p.SobrietyCounter.SetToMin()

	case world.ModifierPanic:
		p.Panic = p.Panic.Add(effect.PanicTurns)

	case world.ModifierStun:
		p.Stun = p.Stun.Add(effect.StunTurns)
	}

	p.refreshBonus()
}

// processHunger applies a state-of-mind delta that can never push Sober
// into High: food tops the player up but doesn't get them high.
func (p *Player) processHunger(delta int) {
	if delta == 0 {
		return
	}
	switch p.Mind.Kind {
	case Withdrawal:
		next := p.Mind.Value.Add(delta)
		if next.IsMax() {
			p.Mind = Mind{Kind: Sober, Value: ranged.New(0, 0, SoberMax)}
			return
		}
		p.Mind.Value = next
	case Sober:
		p.Mind.Value = p.Mind.Value.Add(delta)
	case High:
		p.Mind.Value = p.Mind.Value.Add(delta)
	}
}

// intoxicate applies a dose's Intoxication effect: the player always
// ends up High, at a value of boost minus accumulated tolerance, on top
// of whatever High value they already carried (0 if they weren't High).
// Overdose is detected lazily, the next time NewTurn/Alive checks the
// resulting value against HighMax, matching spec.md §4.G's "on the next
// turn check" timing.
func (p *Player) intoxicate(boost int) {
	base := 0
	if p.Mind.Kind == High {
		base = p.Mind.Value.Value()
	}
	effective := base + boost - p.Tolerance
	p.Mind = Mind{Kind: High, Value: ranged.New(effective, 0, HighMax)}
}

// refreshBonus grants a rendering-hint Bonus once the sobriety streak
// has progressed far enough. SeeMonstersAndItems unlocks at the halfway
// point of the streak; UncoverMap unlocks once the streak is maxed out
// (i.e. the player has won).
func (p *Player) refreshBonus() {
	switch {
	case p.SobrietyCounter.IsMax():
		p.Bonus = BonusUncoverMap
	case p.SobrietyCounter.Percent() >= 0.5:
		p.Bonus = BonusSeeMonstersAndItems
	}
}

// Won reports the victory condition: the sobriety counter has saturated.
func (p *Player) Won() bool {
	return p.SobrietyCounter.IsMax()
}

// KillAnxiety registers defeating an Anxiety monster: the anxiety
// counter advances, and saturating it promotes Will by one and resets
// the counter, per spec.md §8 scenario 2.
func (p *Player) KillAnxiety() {
	next := p.AnxietyCounter.Add(1)
	if next.IsMax() {
		p.Will = p.Will.Add(1)
		p.AnxietyCounter = p.AnxietyCounter.SetToMin()
		return
	}
	p.AnxietyCounter = next
}

// ExplorationRadius returns how far the player's vision extends this
// turn, per spec.md §5 step 5: it depends on the Mind sub-state, and
// within Withdrawal/High further depends on whether the value is at or
// above the sub-state's middle.
func (p *Player) ExplorationRadius() int {
	switch p.Mind.Kind {
	case Withdrawal:
		if p.Mind.Value.Value() >= p.Mind.Value.Middle() {
			return 5
		}
		return 4
	case Sober:
		return 6
	case High:
		if p.Mind.Value.Value() >= p.Mind.Value.Middle() {
			return 8
		}
		return 7
	}
	return 6
}

// ResistRadius returns the tile distance within which a dose of the
// given irresistible pull overcomes the player's Will, per spec.md
// §4.G/§8: max(irresistible+1-will, 0).
func ResistRadius(irresistible, will int) int {
	r := irresistible + 1 - will
	if r < 0 {
		return 0
	}
	return r
}

// AddToInventory appends an item the player chose, or was able, to
// carry rather than use immediately.
func (p *Player) AddToInventory(item world.Item) {
	p.Inventory = append(p.Inventory, item)
}
