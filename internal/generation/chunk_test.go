package generation

import (
	"testing"

	"github.com/tryjumping/doseresponse/internal/geom"
	"github.com/tryjumping/doseresponse/internal/world"
)

// TestGenerate_DeterministicForSameSeedAndCoord mirrors spec.md §8's
// regeneration scenario: the same (seed, coord) must always produce a
// structurally identical chunk.
func TestGenerate_DeterministicForSameSeedAndCoord(t *testing.T) {
	a := Generate(1234, geom.Point{X: 3, Y: -2})
	b := Generate(1234, geom.Point{X: 3, Y: -2})

	for x := 0; x < world.ChunkSide; x++ {
		for y := 0; y < world.ChunkSide; y++ {
			ca, cb := a.Cells[x][y], b.Cells[x][y]
			if ca.Tile.Kind != cb.Tile.Kind || ca.Tile.Graphic != cb.Tile.Graphic {
				t.Fatalf("cell (%d,%d) diverged between regenerations: %+v != %+v", x, y, ca.Tile, cb.Tile)
			}
			if len(ca.Items) != len(cb.Items) {
				t.Fatalf("cell (%d,%d) item count diverged: %d != %d", x, y, len(ca.Items), len(cb.Items))
			}
		}
	}

	if len(a.Monsters) != len(b.Monsters) {
		t.Fatalf("monster count diverged: %d != %d", len(a.Monsters), len(b.Monsters))
	}
	for i := range a.Monsters {
		if a.Monsters[i].Kind != b.Monsters[i].Kind || a.Monsters[i].Position != b.Monsters[i].Position {
			t.Fatalf("monster %d diverged: %+v != %+v", i, a.Monsters[i], b.Monsters[i])
		}
	}
}

// TestGenerate_DifferentSeedsDiffer guards against a degenerate generator
// that ignores the seed.
func TestGenerate_DifferentSeedsDiffer(t *testing.T) {
	a := Generate(1, geom.Point{X: 0, Y: 0})
	b := Generate(2, geom.Point{X: 0, Y: 0})

	same := true
outer:
	for x := 0; x < world.ChunkSide; x++ {
		for y := 0; y < world.ChunkSide; y++ {
			if a.Cells[x][y].Tile.Kind != b.Cells[x][y].Tile.Kind {
				same = false
				break outer
			}
		}
	}
	if same {
		t.Error("chunks generated from different seeds are tile-for-tile identical")
	}
}

// TestGenerate_OriginChunkKeepsSpawnClear checks the exclusion rule: no
// monster or item spawns within NoSpawnRadius of (0,0) in chunk (0,0),
// and the spawn tile itself is always walkable.
func TestGenerate_OriginChunkKeepsSpawnClear(t *testing.T) {
	for _, seed := range []uint32{1, 2, 42, 99999} {
		chunk := Generate(seed, geom.Point{X: 0, Y: 0})

		origin := geom.Point{X: 0, Y: 0}
		ox, oy := localOffset(origin)
		if !chunk.Cells[ox][oy].Tile.Walkable() {
			t.Fatalf("seed %d: spawn tile is not walkable", seed)
		}

		for _, m := range chunk.Monsters {
			if geom.TileDistance(m.Position, origin) < NoSpawnRadius {
				t.Fatalf("seed %d: monster %+v spawned within NoSpawnRadius of origin", seed, m)
			}
		}

		for x := 0; x < world.ChunkSide; x++ {
			for y := 0; y < world.ChunkSide; y++ {
				pos := geom.Point{X: x, Y: y}
				if geom.TileDistance(pos, origin) >= NoSpawnRadius {
					continue
				}
				if len(chunk.Cells[x][y].Items) != 0 {
					t.Fatalf("seed %d: item spawned at %v, within NoSpawnRadius of origin", seed, pos)
				}
			}
		}
	}
}

// TestGenerate_NonOriginChunkHasNoExclusion checks that the no-spawn rule
// is specific to the origin chunk and doesn't blank out spawns elsewhere.
func TestGenerate_NonOriginChunkHasNoExclusion(t *testing.T) {
	found := false
	for seed := uint32(0); seed < 20; seed++ {
		chunk := Generate(seed, geom.Point{X: 5, Y: 5})
		if len(chunk.Monsters) > 0 {
			found = true
			break
		}
	}
	if !found {
		t.Error("no monsters spawned across 20 seeds in a non-origin chunk; exclusion rule may be too broad")
	}
}
