package geom

import "testing"

// TestCircularArea_RadiusZeroIsEmpty verifies the boundary behavior
// required by the spec: a radius-0 circle contains nothing.
func TestCircularArea_RadiusZeroIsEmpty(t *testing.T) {
	area := NewCircularArea(Point{5, 5}, 0)
	if pts := area.Points(); len(pts) != 0 {
		t.Errorf("radius 0 CircularArea.Points() = %v, want empty", pts)
	}
}

// TestCircularArea_RadiusOneIsCenterOnly verifies that a radius of 1
// yields exactly the center tile.
func TestCircularArea_RadiusOneIsCenterOnly(t *testing.T) {
	center := Point{5, 5}
	area := NewCircularArea(center, 1)
	pts := area.Points()
	if len(pts) != 1 || pts[0] != center {
		t.Errorf("radius 1 CircularArea.Points() = %v, want [%v]", pts, center)
	}
}

// TestCircularArea_Contains tests membership consistency with Points.
func TestCircularArea_Contains(t *testing.T) {
	area := NewCircularArea(Point{0, 0}, 4)
	for _, p := range area.Points() {
		if !area.Contains(p) {
			t.Errorf("Contains(%v) = false, want true (in Points())", p)
		}
	}
	if area.Contains(Point{100, 100}) {
		t.Error("Contains((100, 100)) = true, want false")
	}
}

// TestSquareArea_RadiusZeroIsEmpty matches the documented half_side == -1
// edge case from the original source.
func TestSquareArea_RadiusZeroIsEmpty(t *testing.T) {
	area := NewSquareArea(Point{5, 5}, 0)
	if pts := area.Points(); len(pts) != 0 {
		t.Errorf("radius 0 SquareArea.Points() = %v, want empty", pts)
	}
}

// TestSquareArea_RadiusTwoIsNineTiles tests the documented "radius 2
// means a square of 9 points" example.
func TestSquareArea_RadiusTwoIsNineTiles(t *testing.T) {
	area := NewSquareArea(Point{0, 0}, 2)
	pts := area.Points()
	if len(pts) != 9 {
		t.Errorf("radius 2 SquareArea.Points() has %d points, want 9", len(pts))
	}
}

// TestRectangle_SmallestRectHasOnePoint mirrors the original source's
// smallest_rect test.
func TestRectangle_SmallestRectHasOnePoint(t *testing.T) {
	rect := RectFromPointAndSize(Point{0, 0}, Point{1, 1})
	if dim := rect.Dimensions(); dim != (Point{1, 1}) {
		t.Errorf("Dimensions() = %v, want (1, 1)", dim)
	}
	if pts := rect.Points(); len(pts) != 1 {
		t.Errorf("Points() has %d points, want 1", len(pts))
	}
}

// TestRectangle_Intersects tests overlap detection against the brute
// force point-membership check the original source used to validate it.
func TestRectangle_Intersects(t *testing.T) {
	a := RectFromPointAndSize(Point{0, 0}, Point{4, 4})
	b := RectFromPointAndSize(Point{3, 3}, Point{4, 4})
	c := RectFromPointAndSize(Point{10, 10}, Point{2, 2})

	if !a.Intersects(b) {
		t.Error("overlapping rectangles should intersect")
	}
	if a.Intersects(c) {
		t.Error("disjoint rectangles should not intersect")
	}
}

// TestLine_EndpointsIncluded checks that both the start and end point
// appear in the Bresenham output.
func TestLine_EndpointsIncluded(t *testing.T) {
	from := Point{0, 0}
	to := Point{5, 2}
	pts := Line(from, to)
	if pts[0] != from {
		t.Errorf("Line()[0] = %v, want %v", pts[0], from)
	}
	if pts[len(pts)-1] != to {
		t.Errorf("Line() last point = %v, want %v", pts[len(pts)-1], to)
	}
}

// TestLine_SamePoint tests the degenerate single-point line.
func TestLine_SamePoint(t *testing.T) {
	p := Point{3, 3}
	pts := Line(p, p)
	if len(pts) != 1 || pts[0] != p {
		t.Errorf("Line(p, p) = %v, want [%v]", pts, p)
	}
}
