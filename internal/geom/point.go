// Package geom provides the spatial primitives shared by the world store,
// pathfinder, and monster AI: points, rectangles, Bresenham lines, and the
// circular/square area iterators used for dose irresistibility, exploration,
// and explosion radii.
package geom

import "fmt"

// Point is an integer world or chunk coordinate. There is no total order:
// the partial order used by Rectangle.Contains requires both components to
// compare the same way.
type Point struct {
	X int
	Y int
}

// New returns the point (x, y).
func New(x, y int) Point {
	return Point{X: x, Y: y}
}

// Zero is the origin.
var Zero = Point{0, 0}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul returns p scaled by n.
func (p Point) Mul(n int) Point {
	return Point{p.X * n, p.Y * n}
}

// LessOrEqual reports whether p <= q on both axes.
func (p Point) LessOrEqual(q Point) bool {
	return p.X <= q.X && p.Y <= q.Y
}

// GreaterOrEqual reports whether p >= q on both axes.
func (p Point) GreaterOrEqual(q Point) bool {
	return p.X >= q.X && p.Y >= q.Y
}

// TileDistance is the Chebyshev distance: the number of king-moves needed
// to get from p to q on a grid that allows diagonal movement.
func TileDistance(p, q Point) int {
	dx := abs(p.X - q.X)
	dy := abs(p.Y - q.Y)
	if dx > dy {
		return dx
	}
	return dy
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// FloorDiv divides a by b using floor semantics, so negative coordinates
// map to chunk coordinates that decrease monotonically instead of
// truncating toward zero.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FloorMod is the modulus matching FloorDiv: always in [0, b).
func FloorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// Neighbours8 returns the 8 grid neighbours of p, in a fixed iteration
// order (N, S, W, E, NW, NE, SW, SE) so callers that need determinism
// (monster AI, random_neighbour_position) see a stable order before any
// shuffling.
func (p Point) Neighbours8() [8]Point {
	return [8]Point{
		{p.X, p.Y - 1},
		{p.X, p.Y + 1},
		{p.X - 1, p.Y},
		{p.X + 1, p.Y},
		{p.X - 1, p.Y - 1},
		{p.X + 1, p.Y - 1},
		{p.X - 1, p.Y + 1},
		{p.X + 1, p.Y + 1},
	}
}
