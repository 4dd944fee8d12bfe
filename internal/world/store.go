package world

import (
	"math/rand"
	"sort"

	"github.com/google/uuid"

	"github.com/tryjumping/doseresponse/internal/geom"
)

// ChunkGenerator produces a chunk's contents for a coordinate it has never
// seen before. internal/generation.Generate satisfies this; the
// indirection exists so World doesn't import generation directly (that
// import would run the other way, generation -> world, and a direct
// dependency back would cycle).
type ChunkGenerator func(seed uint32, coord geom.Point) *Chunk

// MonsterPolicy controls whether Walkable treats monster-occupied tiles
// as passable, matching the two pathfinding modes spec.md §4.D names:
// the player's own movement (monsters block) versus exploration-radius
// and other queries that only care about terrain.
type MonsterPolicy int

const (
	// BlockingMonsters treats a tile with a living monster as not
	// walkable.
	BlockingMonsters MonsterPolicy = iota
	// WalkthroughMonsters ignores monster occupancy entirely.
	WalkthroughMonsters
)

// monsterRef locates a monster within its owning chunk, so MonsterID
// lookups don't require scanning every chunk.
type monsterRef struct {
	chunk geom.Point
	slot  int
}

// World is the chunked, lazily-materialized game map: generated chunks,
// cell contents, and monster identity. It is not safe for concurrent
// use — spec.md §5 runs the whole simulation on a single tick-owned
// goroutine, so World carries no locking, unlike the teacher's
// ChunkManager.
type World struct {
	seed      uint32
	sessionID uuid.UUID
	generate  ChunkGenerator
	chunks    map[geom.Point]*Chunk
	byID      map[MonsterID]monsterRef
	nextID    MonsterID
}

// NewWorld creates an empty World that generates chunks on demand using
// generate, seeded by seed. No chunks exist yet; the first call that
// touches a position materializes its chunk. Each World mints its own
// random SessionID, used only to tag log output — it
// plays no part in chunk generation or any other deterministic
// computation, so it never needs to be recorded for replay fidelity.
func NewWorld(seed uint32, generate ChunkGenerator) *World {
	return &World{
		seed:      seed,
		sessionID: uuid.New(),
		generate:  generate,
		chunks:    make(map[geom.Point]*Chunk),
		byID:      make(map[MonsterID]monsterRef),
		nextID:    1,
	}
}

// SessionID is this World instance's unique run identifier, minted fresh
// by NewWorld and carried only for logging/diagnostics.
func (w *World) SessionID() uuid.UUID {
	return w.sessionID
}

// Seed returns the world's master seed.
func (w *World) Seed() uint32 {
	return w.seed
}

// EnsureChunk returns the chunk at coord, generating and registering it
// on first access. Calling it twice for the same coordinate is a no-op
// the second time: it returns the same *Chunk, never regenerating.
func (w *World) EnsureChunk(coord geom.Point) *Chunk {
	if chunk, ok := w.chunks[coord]; ok {
		return chunk
	}
	chunk := w.generate(w.seed, coord)
	chunk.Coord = coord
	w.chunks[coord] = chunk
	for i, m := range chunk.Monsters {
		m.ID = w.nextID
		w.nextID++
		w.byID[m.ID] = monsterRef{chunk: coord, slot: i}
	}
	return chunk
}

// Chunk returns the chunk at coord if it has already been materialized,
// without generating it.
func (w *World) Chunk(coord geom.Point) (*Chunk, bool) {
	chunk, ok := w.chunks[coord]
	return chunk, ok
}

// Cell returns a pointer to the cell at pos, materializing its chunk if
// necessary. The pointer is only valid until the owning chunk is
// mutated in a way that reallocates its Cells array, which World never
// does after generation.
func (w *World) Cell(pos geom.Point) *Cell {
	chunk := w.EnsureChunk(ChunkCoordOf(pos))
	lx, ly := localOffset(pos)
	return &chunk.Cells[lx][ly]
}

// Walkable reports whether pos can be entered under the given monster
// policy. Like any other read, it materializes pos's chunk if that chunk
// has not been generated yet, so repeated Walkable checks along a
// pathfinding frontier are cheap after the first visit.
func (w *World) Walkable(pos geom.Point, policy MonsterPolicy) bool {
	if !w.Cell(pos).Tile.Walkable() {
		return false
	}
	if policy == BlockingMonsters {
		if m := w.MonsterOnPos(pos); m != nil {
			return false
		}
	}
	return true
}

// MonsterOnPos returns the living monster at pos, or nil if none is
// there. It only searches the owning chunk's monster list, which stays
// short (chunk-local population), rather than maintaining a second
// position index that MoveMonster would need to keep in lockstep.
func (w *World) MonsterOnPos(pos geom.Point) *Monster {
	chunk, ok := w.Chunk(ChunkCoordOf(pos))
	if !ok {
		return nil
	}
	for _, m := range chunk.Monsters {
		if !m.Dead && m.Position == pos {
			return m
		}
	}
	return nil
}

// MonsterByID resolves a stable MonsterID to its current Monster, or nil
// if the ID is unknown or the monster has been removed.
func (w *World) MonsterByID(id MonsterID) *Monster {
	ref, ok := w.byID[id]
	if !ok {
		return nil
	}
	chunk, ok := w.Chunk(ref.chunk)
	if !ok || ref.slot >= len(chunk.Monsters) {
		return nil
	}
	return chunk.Monsters[ref.slot]
}

// MoveMonster relocates the monster at from to to, re-parenting it into
// to's chunk if the move crosses a chunk boundary. It panics if no
// living monster occupies from or if to is already occupied, since
// spec.md §8 requires at most one living monster per position at all
// times — callers must check Walkable first.
func (w *World) MoveMonster(from, to geom.Point) {
	m := w.MonsterOnPos(from)
	if m == nil {
		panic("world: MoveMonster: no living monster at " + from.String())
	}
	if existing := w.MonsterOnPos(to); existing != nil {
		panic("world: MoveMonster: destination " + to.String() + " already occupied")
	}

	fromCoord := ChunkCoordOf(from)
	toCoord := ChunkCoordOf(to)
	m.Position = to

	if fromCoord == toCoord {
		return
	}

	fromChunk := w.chunks[fromCoord]
	toChunk := w.EnsureChunk(toCoord)

	for i, cand := range fromChunk.Monsters {
		if cand == m {
			fromChunk.Monsters = append(fromChunk.Monsters[:i], fromChunk.Monsters[i+1:]...)
			break
		}
	}
	toChunk.Monsters = append(toChunk.Monsters, m)
	w.reindexChunk(fromCoord)
	w.reindexChunk(toCoord)
}

// RemoveMonster marks the monster at pos dead and drops it from its
// chunk's monster list. It is a no-op if no living monster occupies pos.
func (w *World) RemoveMonster(pos geom.Point) {
	coord := ChunkCoordOf(pos)
	chunk, ok := w.Chunk(coord)
	if !ok {
		return
	}
	for i, m := range chunk.Monsters {
		if !m.Dead && m.Position == pos {
			m.Dead = true
			delete(w.byID, m.ID)
			chunk.Monsters = append(chunk.Monsters[:i], chunk.Monsters[i+1:]...)
			w.reindexChunk(coord)
			return
		}
	}
}

// reindexChunk rebuilds the byID slot references for every monster in
// coord's chunk, after an insertion or removal has shifted slot indices.
func (w *World) reindexChunk(coord geom.Point) {
	chunk, ok := w.chunks[coord]
	if !ok {
		return
	}
	for i, m := range chunk.Monsters {
		w.byID[m.ID] = monsterRef{chunk: coord, slot: i}
	}
}

// PickupItem removes and returns the topmost item at pos, if any.
func (w *World) PickupItem(pos geom.Point) (Item, bool) {
	return w.Cell(pos).PopItem()
}

// NearestDose returns the position of the dose-kind item closest to
// origin (by tile distance) among the cells of a CircularArea of the given
// radius centered on origin, and whether one was found. Ties are broken
// by the area's row-major scan order: the first tied cell scanned wins.
func (w *World) NearestDose(origin geom.Point, radius int) (geom.Point, bool) {
	area := geom.NewCircularArea(origin, radius)
	best := geom.Point{}
	found := false
	bestDist := radius + 1
	for _, p := range area.Points() {
		cell := w.Cell(p)
		if !hasDose(cell) {
			continue
		}
		d := geom.TileDistance(p, origin)
		if d < bestDist {
			bestDist = d
			best = p
			found = true
		}
	}
	return best, found
}

func hasDose(c *Cell) bool {
	for _, item := range c.Items {
		if item.Kind.IsDose() {
			return true
		}
	}
	return false
}

// RandomNeighbourPosition returns a uniformly-chosen walkable neighbour
// of origin under policy, and false if none of the 8 neighbours qualify.
func (w *World) RandomNeighbourPosition(rng *rand.Rand, origin geom.Point, policy MonsterPolicy) (geom.Point, bool) {
	neighbours := origin.Neighbours8()
	candidates := make([]geom.Point, 0, len(neighbours))
	for _, n := range neighbours {
		if w.Walkable(n, policy) {
			candidates = append(candidates, n)
		}
	}
	if len(candidates) == 0 {
		return geom.Point{}, false
	}
	return candidates[rng.Intn(len(candidates))], true
}

// Explore marks every cell within radius of center (Chebyshev distance)
// as explored. It is idempotent: exploring the same area twice leaves
// the same cells marked.
func (w *World) Explore(center geom.Point, radius int) {
	area := geom.NewSquareArea(center, radius)
	for _, p := range area.Points() {
		w.Cell(p).Explored = true
	}
}

// Chunks returns every materialized chunk whose bounds intersect rect
// (given in world tile coordinates), generating any chunk whose bounds
// intersect rect but hasn't been touched yet.
func (w *World) Chunks(rect geom.Rectangle) []*Chunk {
	topLeft := ChunkCoordOf(rect.TopLeft)
	bottomRight := ChunkCoordOf(rect.BottomRight)

	var result []*Chunk
	for cy := topLeft.Y; cy <= bottomRight.Y; cy++ {
		for cx := topLeft.X; cx <= bottomRight.X; cx++ {
			coord := geom.Point{X: cx, Y: cy}
			chunkRect := geom.RectFromPointAndSize(ChunkOrigin(coord), geom.Point{X: ChunkSide, Y: ChunkSide})
			if !rect.Intersects(chunkRect) {
				continue
			}
			result = append(result, w.EnsureChunk(coord))
		}
	}
	return result
}

// PositionsOfAllChunks returns the coordinates of every chunk that has
// been materialized so far, sorted for deterministic iteration (used by
// replay verification to compare world state across a run).
func (w *World) PositionsOfAllChunks() []geom.Point {
	positions := make([]geom.Point, 0, len(w.chunks))
	for coord := range w.chunks {
		positions = append(positions, coord)
	}
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].X != positions[j].X {
			return positions[i].X < positions[j].X
		}
		return positions[i].Y < positions[j].Y
	})
	return positions
}
