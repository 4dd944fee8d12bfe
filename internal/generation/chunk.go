// Package generation turns a (world seed, chunk coordinate) pair into a
// deterministic tile/monster/item layout. It is adapted from the teacher's
// generation.GenerateChunk: the same hash-the-seed-and-id-then-seed-a-PRNG
// scheme, generalized from a 1D obstacle run to a 2D tile/monster/item
// grid, and from a flat obstacle list to the weighted tables spec.md §4.C
// names.
package generation

import (
	"math/rand"

	"github.com/tryjumping/doseresponse/internal/geom"
	"github.com/tryjumping/doseresponse/internal/world"
	"github.com/tryjumping/doseresponse/internal/xrand"
)

// TreeWeight and EmptyWeight give the ~39%/61% tree/empty tile split
// named in spec.md §4.C.
const (
	TreeWeight  = 39
	EmptyWeight = 61

	// MonsterSpawnPercent is the probability, per empty cell, that a
	// monster spawns there (spec.md §4.C: "~3% per empty cell").
	MonsterSpawnPercent = 3

	// NoSpawnRadius is the tile-distance around (0,0) that stays clear
	// of monsters and items when chunk (0,0) is generated, so the
	// player never starts the game surrounded.
	NoSpawnRadius = 6
)

var monsterKinds = []world.MonsterKind{
	world.Anxiety,
	world.Depression,
	world.Hunger,
	world.Shadows,
	world.Voices,
}

// itemWeight pairs an item kind with its relative spawn weight, per
// spec.md §4.C ("Food:5, Dose:7, StrongDose:3, CardinalDose/DiagonalDose:
// small").
type itemWeight struct {
	kind   world.ItemKind
	weight int
}

var itemWeights = []itemWeight{
	{world.ItemFood, 5},
	{world.ItemDose, 7},
	{world.ItemStrongDose, 3},
	{world.ItemCardinalDose, 1},
	{world.ItemDiagonalDose, 1},
}

// itemSpawnPercent is the probability, per empty non-monster cell, that
// any item spawns at all. Cells that fail this roll get no item; the
// weighted table above only picks which item a successful roll places.
const itemSpawnPercent = 8

// Generate produces the chunk at coord for the given world seed. Calling
// Generate twice with the same arguments always returns structurally
// identical output, satisfying the determinism requirement in spec.md
// §4.C and §8.
func Generate(seed uint32, coord geom.Point) *world.Chunk {
	rng := xrand.ChunkSeed(seed, coord.X, coord.Y)
	roughness := biomeRoughness(seed, coord)

	chunk := &world.Chunk{Coord: coord}
	origin := world.ChunkOrigin(coord)
	isOriginChunk := coord == (geom.Point{X: 0, Y: 0})

	treeWeight := adjustedTreeWeight(roughness)

	for ly := 0; ly < world.ChunkSide; ly++ {
		for lx := 0; lx < world.ChunkSide; lx++ {
			pos := geom.Point{X: origin.X + lx, Y: origin.Y + ly}

			nearSpawn := isOriginChunk && geom.TileDistance(pos, geom.Point{0, 0}) < NoSpawnRadius
			kind := world.TileEmpty
			if !nearSpawn && rng.Intn(100) < treeWeight {
				kind = world.TileTree
			}
			chunk.Cells[lx][ly] = world.Cell{Tile: NewTile(kind, rng)}
		}
	}

	// Player always starts on empty ground.
	if isOriginChunk {
		ox, oy := localOffset(geom.Point{0, 0})
		chunk.Cells[ox][oy].Tile = NewTile(world.TileEmpty, rng)
	}

	for ly := 0; ly < world.ChunkSide; ly++ {
		for lx := 0; lx < world.ChunkSide; lx++ {
			pos := geom.Point{X: origin.X + lx, Y: origin.Y + ly}
			cell := &chunk.Cells[lx][ly]
			if cell.Tile.Kind != world.TileEmpty {
				continue
			}
			if isOriginChunk && geom.TileDistance(pos, geom.Point{0, 0}) < NoSpawnRadius {
				continue
			}

			if spawnedMonster := rollMonster(rng, pos); spawnedMonster != nil {
				chunk.Monsters = append(chunk.Monsters, spawnedMonster)
				continue
			}

			if item, ok := rollItem(rng); ok {
				cell.PushItem(item)
			}
		}
	}

	return chunk
}

func localOffset(pos geom.Point) (int, int) {
	return geom.FloorMod(pos.X, world.ChunkSide), geom.FloorMod(pos.Y, world.ChunkSide)
}

func rollMonster(rng *rand.Rand, pos geom.Point) *world.Monster {
	if rng.Intn(10000) >= MonsterSpawnPercent*100 {
		return nil
	}
	kind := monsterKinds[rng.Intn(len(monsterKinds))]
	return &world.Monster{
		Kind:     kind,
		Position: pos,
		AIState:  world.Idle,
		MaxAP:    world.MaxAPForKind(kind),
		AP:       0,
	}
}

func rollItem(rng *rand.Rand) (world.Item, bool) {
	if rng.Intn(100) >= itemSpawnPercent {
		return world.Item{}, false
	}
	total := 0
	for _, iw := range itemWeights {
		total += iw.weight
	}
	roll := rng.Intn(total)
	for _, iw := range itemWeights {
		if roll < iw.weight {
			return world.NewItem(iw.kind), true
		}
		roll -= iw.weight
	}
	// Unreachable given the loop invariant above, but keeps the
	// function total.
	return world.NewItem(itemWeights[len(itemWeights)-1].kind), true
}

// adjustedTreeWeight nudges the tree spawn percentage by the chunk's
// biome roughness, keeping it within a band around TreeWeight so
// adjoining chunks read as a coherent forest instead of independently
// noisy tiles.
func adjustedTreeWeight(roughness float64) int {
	delta := int(roughness * 8) // +/- up to 8 percentage points
	w := TreeWeight + delta
	if w < TreeWeight-8 {
		w = TreeWeight - 8
	}
	if w > TreeWeight+8 {
		w = TreeWeight + 8
	}
	return w
}
