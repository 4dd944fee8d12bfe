// Package world owns the chunked, lazily-materialized map: chunk storage,
// cell/tile/item data, monster identity, and the read/write operations the
// turn engine and pathfinder need. It is adapted from the teacher's
// generation.ChunkManager (get-or-generate caching) and game.GameState
// (map-keyed entity store with snapshot iteration), simplified to the
// single-threaded, tick-owned access pattern spec.md §5 requires.
package world

import "github.com/tryjumping/doseresponse/internal/geom"

// ChunkSide is the width and height of a chunk, in tiles.
const ChunkSide = 32

// TileKind identifies what occupies a cell's terrain slot.
type TileKind int

const (
	// TileEmpty is walkable ground.
	TileEmpty TileKind = iota
	// TileTree is solid: it blocks movement and pathfinding.
	TileTree
)

// Tile is a cell's static terrain.
type Tile struct {
	Kind    TileKind
	Graphic rune
	Color   string
}

// Walkable reports whether a bare tile (ignoring monster occupancy) can be
// entered.
func (t Tile) Walkable() bool {
	return t.Kind == TileEmpty
}

// ItemKind identifies what an Item does when consumed.
type ItemKind int

const (
	ItemFood ItemKind = iota
	ItemDose
	ItemStrongDose
	ItemCardinalDose
	ItemDiagonalDose
)

// IsDose reports whether the item kind is one of the dose variants.
func (k ItemKind) IsDose() bool {
	return k == ItemDose || k == ItemStrongDose || k == ItemCardinalDose || k == ItemDiagonalDose
}

// ModifierKind identifies the effect an Item or monster attack applies to
// the player.
type ModifierKind int

const (
	ModifierDeath ModifierKind = iota
	ModifierAttribute
	ModifierIntoxication
	ModifierPanic
	ModifierStun
)

// Modifier is the effect payload carried by an Item or a monster Attack
// action. Only the fields relevant to Kind are meaningful; the rest are
// zero.
type Modifier struct {
	Kind ModifierKind

	// Attribute: will and state-of-mind deltas applied immediately.
	Will         int
	StateOfMind  int
	Tolerance    int // Intoxication: tolerance_increase
	PanicTurns   int // Panic
	StunTurns    int // Stun
}

// Item is a pickup: food or one of the dose variants.
type Item struct {
	Kind         ItemKind
	Modifier     Modifier
	Irresistible int
}

// Cell is one tile of a chunk: its terrain, the items stacked on it (in
// pickup order, last-in/first-out), and whether the player has explored
// it. Monsters are not stored on the Cell: each lives in its chunk's
// monster list, and World.MoveMonster refuses (panics on) a move onto a
// position another living monster already occupies.
type Cell struct {
	Tile     Tile
	Items    []Item
	Explored bool
}

// PushItem appends an item to the cell, making it the next one picked up.
func (c *Cell) PushItem(item Item) {
	c.Items = append(c.Items, item)
}

// PopItem removes and returns the most recently pushed item, if any.
func (c *Cell) PopItem() (Item, bool) {
	if len(c.Items) == 0 {
		return Item{}, false
	}
	last := len(c.Items) - 1
	item := c.Items[last]
	c.Items = c.Items[:last]
	return item, true
}

// MonsterKind identifies a monster's behavior table entry.
type MonsterKind int

const (
	Anxiety MonsterKind = iota
	Depression
	Hunger
	Shadows
	Voices
	NPC
)

// AIState is a monster's coarse behavior mode.
type AIState int

const (
	Idle AIState = iota
	Chasing
)

// MonsterID is a stable identity for a monster: the World's
// monsters-by-id index resolves it to a (chunk coordinate, slot) pair, so
// lookups don't require embedding pointers that would dangle across
// chunk re-parenting. IDs are never reused.
type MonsterID uint64

// Monster is a single hostile or friendly actor, rooted in whichever
// chunk currently contains its Position.
type Monster struct {
	ID       MonsterID
	Kind     MonsterKind
	Position geom.Point
	Dead     bool
	AIState  AIState
	MaxAP    int
	AP       int
	Path     []geom.Point
	Trail    *geom.Point
	Invincible bool
}

// MaxAPForKind returns the per-kind action-point budget from the behavior
// table in spec.md §4.F.
func MaxAPForKind(kind MonsterKind) int {
	if kind == Depression {
		return 2
	}
	return 1
}

// DiesAfterAttack reports whether a monster of this kind is destroyed the
// instant it lands an attack (Shadows, Voices).
func DiesAfterAttack(kind MonsterKind) bool {
	return kind == Shadows || kind == Voices
}

// AttackModifier returns the effect a successful attack by this kind
// applies to the player, per the behavior table in spec.md §4.F. NPC
// kinds never attack and return the zero Modifier.
func AttackModifier(kind MonsterKind) Modifier {
	switch kind {
	case Anxiety:
		return Modifier{Kind: ModifierAttribute, Will: -1}
	case Depression:
		return Modifier{Kind: ModifierDeath}
	case Hunger:
		return Modifier{Kind: ModifierAttribute, StateOfMind: -20}
	case Shadows:
		return Modifier{Kind: ModifierPanic, PanicTurns: 4}
	case Voices:
		return Modifier{Kind: ModifierStun, StunTurns: 4}
	default:
		return Modifier{}
	}
}

// Chunk is a ChunkSide x ChunkSide grid of cells plus the monsters
// currently rooted in it. Its Cells array is fixed at generation time;
// only cell contents and the monster list mutate afterward.
type Chunk struct {
	Coord    geom.Point
	Cells    [ChunkSide][ChunkSide]Cell
	Monsters []*Monster
}

// ChunkOrigin returns the world-space position of a chunk's top-left
// tile.
func ChunkOrigin(coord geom.Point) geom.Point {
	return geom.Point{X: coord.X * ChunkSide, Y: coord.Y * ChunkSide}
}

// ChunkCoordOf returns the chunk coordinate containing a world position,
// using floor semantics so negative coordinates divide consistently.
func ChunkCoordOf(pos geom.Point) geom.Point {
	return geom.Point{
		X: geom.FloorDiv(pos.X, ChunkSide),
		Y: geom.FloorDiv(pos.Y, ChunkSide),
	}
}

// localOffset returns pos's cell offset within its chunk, in [0,
// ChunkSide).
func localOffset(pos geom.Point) (int, int) {
	return geom.FloorMod(pos.X, ChunkSide), geom.FloorMod(pos.Y, ChunkSide)
}
