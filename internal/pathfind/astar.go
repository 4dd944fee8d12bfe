// Package pathfind finds a route between two points on a world whose
// only contract is "is this tile passable". It is authored fresh:
// neither the teacher nor the original Rust source (path_finding.rs,
// which binds to TCOD's pathfinder) has a portable algorithm to adapt,
// so this implements a standard A* over container/heap in the teacher's
// plain-struct-and-methods style.
package pathfind

import (
	"container/heap"

	"github.com/tryjumping/doseresponse/internal/geom"
)

// Passable reports whether to can be entered, given that the searcher is
// currently at from. The destination tile is always treated as passable
// by the search regardless of what Passable reports for it, per spec.md
// §4.E ("the destination is always a valid target even if something is
// standing on it").
type Passable func(from, to geom.Point) bool

// MaxSearchWindow bounds how far the search explores from its source
// before giving up, so a monster chasing across open ground can't walk
// the whole generated world looking for an unreachable player.
const MaxSearchWindow = 40

// Find returns the path from source to destination, not including
// source itself, ordered so that Path[0] is the first step to take. It
// returns an empty path if source equals destination, or if no path
// exists within MaxSearchWindow tiles of source in any direction.
func Find(source, destination geom.Point, passable Passable) []geom.Point {
	if source == destination {
		return nil
	}

	bounds := geom.Rectangle{
		TopLeft:     geom.Point{X: source.X - MaxSearchWindow, Y: source.Y - MaxSearchWindow},
		BottomRight: geom.Point{X: source.X + MaxSearchWindow, Y: source.Y + MaxSearchWindow},
	}
	if !bounds.Contains(destination) {
		return nil
	}

	open := &nodeHeap{}
	heap.Init(open)
	heap.Push(open, &node{pos: source, g: 0, f: heuristic(source, destination)})

	cameFrom := map[geom.Point]geom.Point{}
	gScore := map[geom.Point]int{source: 0}
	visited := map[geom.Point]bool{}

	for open.Len() > 0 {
		current := heap.Pop(open).(*node)
		if visited[current.pos] {
			continue
		}
		visited[current.pos] = true

		if current.pos == destination {
			return reconstruct(cameFrom, source, destination)
		}

		for _, next := range current.pos.Neighbours8() {
			if visited[next] {
				continue
			}
			if !bounds.Contains(next) {
				continue
			}
			if next != destination && !passable(current.pos, next) {
				continue
			}

			tentativeG := gScore[current.pos] + 1
			if existing, ok := gScore[next]; ok && tentativeG >= existing {
				continue
			}
			cameFrom[next] = current.pos
			gScore[next] = tentativeG
			heap.Push(open, &node{pos: next, g: tentativeG, f: tentativeG + heuristic(next, destination)})
		}
	}

	return nil
}

func heuristic(a, b geom.Point) int {
	return geom.TileDistance(a, b)
}

func reconstruct(cameFrom map[geom.Point]geom.Point, source, destination geom.Point) []geom.Point {
	var path []geom.Point
	for cur := destination; cur != source; cur = cameFrom[cur] {
		path = append(path, cur)
	}
	// path was built destination-to-source; reverse it in place.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

type node struct {
	pos  geom.Point
	g, f int
}

// nodeHeap is a container/heap min-heap ordered by f-score, the standard
// A* open set.
type nodeHeap []*node

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].f < h[j].f }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(*node)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
