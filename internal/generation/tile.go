package generation

import (
	"math/rand"

	"github.com/aquilax/go-perlin"

	"github.com/tryjumping/doseresponse/internal/geom"
	"github.com/tryjumping/doseresponse/internal/world"
)

// treeGraphics and groundGraphics give cosmetic variety to otherwise
// identical tiles, mirroring the teacher's obstacle generator picking a
// random glyph per obstacle rather than a single fixed one.
var (
	treeGraphics   = []rune{'T', 't', '^'}
	groundGraphics = []rune{'.', ','}
)

// NewTile builds a Tile of the given kind, drawing its cosmetic glyph and
// color from rng so that regenerating the same chunk reproduces the same
// tile appearance.
func NewTile(kind world.TileKind, rng *rand.Rand) world.Tile {
	switch kind {
	case world.TileTree:
		return world.Tile{
			Kind:    world.TileTree,
			Graphic: treeGraphics[rng.Intn(len(treeGraphics))],
			Color:   "green",
		}
	default:
		return world.Tile{
			Kind:    world.TileEmpty,
			Graphic: groundGraphics[rng.Intn(len(groundGraphics))],
			Color:   "brown",
		}
	}
}

// perlinAlpha, perlinBeta and perlinOctaves are the noise-shape
// parameters for the biome-roughness field. They're tuned once and held
// fixed so that biome character is stable across the whole generated
// world rather than per-chunk noisy.
const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = int32(3)
)

// biomeRoughness samples a 2D Perlin field at the chunk's coordinate,
// seeded from the world seed, and returns a value in roughly [-1, 1].
// Neighbouring chunks sample nearby points on the same field, so the
// tree-density nudge it drives varies smoothly across chunk boundaries
// instead of each chunk rolling an independent, disjoint density.
func biomeRoughness(seed uint32, coord geom.Point) float64 {
	p := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, int64(seed))
	// Perlin noise is smoothest sampled at fractional coordinates;
	// chunk coordinates are scaled down so adjacent chunks land close
	// together on the underlying field.
	x := float64(coord.X) * 0.15
	y := float64(coord.Y) * 0.15
	return p.Noise2D(x, y)
}
