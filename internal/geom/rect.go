package geom

// Rectangle is an axis-aligned, inclusive region: both TopLeft and
// BottomRight are part of the rectangle.
type Rectangle struct {
	TopLeft     Point
	BottomRight Point
}

// RectFromPointAndSize builds a rectangle spanning size tiles from
// topLeft. size must be positive on both axes.
func RectFromPointAndSize(topLeft, size Point) Rectangle {
	if size.X <= 0 || size.Y <= 0 {
		panic("geom: rectangle size must be positive")
	}
	return Rectangle{
		TopLeft:     topLeft,
		BottomRight: topLeft.Add(size).Sub(Point{1, 1}),
	}
}

// RectFromCenter builds a rectangle centered on center, extending
// halfSize in every direction.
func RectFromCenter(center, halfSize Point) Rectangle {
	if halfSize.X <= 0 || halfSize.Y <= 0 {
		panic("geom: rectangle half-size must be positive")
	}
	return Rectangle{
		TopLeft:     center.Sub(halfSize),
		BottomRight: center.Add(halfSize),
	}
}

// Dimensions returns the rectangle's width and height as a Point.
func (r Rectangle) Dimensions() Point {
	return r.BottomRight.Sub(r.TopLeft).Add(Point{1, 1})
}

// Width is the rectangle's horizontal extent in tiles.
func (r Rectangle) Width() int { return r.Dimensions().X }

// Height is the rectangle's vertical extent in tiles.
func (r Rectangle) Height() int { return r.Dimensions().Y }

// Contains reports whether p lies within the rectangle, inclusive of both
// corners.
func (r Rectangle) Contains(p Point) bool {
	return p.GreaterOrEqual(r.TopLeft) && p.LessOrEqual(r.BottomRight)
}

// Intersects reports whether r and other share at least one point.
func (r Rectangle) Intersects(other Rectangle) bool {
	left := r.BottomRight.X < other.TopLeft.X
	right := r.TopLeft.X > other.BottomRight.X
	above := r.BottomRight.Y < other.TopLeft.Y
	below := r.TopLeft.Y > other.BottomRight.Y
	return !(left || right || above || below)
}

// Points returns every point inside the rectangle, row-major from
// TopLeft to BottomRight.
func (r Rectangle) Points() []Point {
	dim := r.Dimensions()
	pts := make([]Point, 0, dim.X*dim.Y)
	for y := r.TopLeft.Y; y <= r.BottomRight.Y; y++ {
		for x := r.TopLeft.X; x <= r.BottomRight.X; x++ {
			pts = append(pts, Point{x, y})
		}
	}
	return pts
}
