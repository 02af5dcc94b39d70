package rendertask

import "github.com/chewxy/math32"

// Point represents a 2D position in device pixels.
// Task metadata is stored as raw float32 channels, so Point is float32
// rather than float64.
type Point struct {
	X, Y float32
}

// P is a convenience function to create a Point.
func P(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// IsZero reports whether the point is the origin.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Rect is an axis-aligned rectangle given by origin and size.
// This is the shape every task record carries: the device-pixel area the
// task renders into.
type Rect struct {
	Origin Point
	Size   Point
}

// R is a convenience function to create a Rect from origin (x, y) and
// size (w, h).
func R(x, y, w, h float32) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Point{X: w, Y: h}}
}

// IsEmpty reports whether the rectangle covers no area.
func (r Rect) IsEmpty() bool {
	return r.Size.X <= 0 || r.Size.Y <= 0
}

// Max returns the corner opposite the origin.
func (r Rect) Max() Point {
	return Point{X: r.Origin.X + r.Size.X, Y: r.Origin.Y + r.Size.Y}
}

// Contains reports whether p lies inside the rectangle.
// Points on the max edge are outside, matching texel addressing.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Origin.X && p.X < r.Origin.X+r.Size.X &&
		p.Y >= r.Origin.Y && p.Y < r.Origin.Y+r.Size.Y
}

// Intersect returns the overlap of two rectangles.
// Returns the zero Rect if they do not overlap.
func (r Rect) Intersect(s Rect) Rect {
	x0 := math32.Max(r.Origin.X, s.Origin.X)
	y0 := math32.Max(r.Origin.Y, s.Origin.Y)
	x1 := math32.Min(r.Origin.X+r.Size.X, s.Origin.X+s.Size.X)
	y1 := math32.Min(r.Origin.Y+r.Size.Y, s.Origin.Y+s.Size.Y)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return R(x0, y0, x1-x0, y1-y0)
}

// Union returns the smallest rectangle covering both r and s.
// An empty rectangle does not contribute.
func (r Rect) Union(s Rect) Rect {
	if r.IsEmpty() {
		return s
	}
	if s.IsEmpty() {
		return r
	}
	x0 := math32.Min(r.Origin.X, s.Origin.X)
	y0 := math32.Min(r.Origin.Y, s.Origin.Y)
	x1 := math32.Max(r.Origin.X+r.Size.X, s.Origin.X+s.Size.X)
	y1 := math32.Max(r.Origin.Y+r.Size.Y, s.Origin.Y+s.Size.Y)
	return R(x0, y0, x1-x0, y1-y0)
}

// Offset returns the rectangle translated by d.
func (r Rect) Offset(d Point) Rect {
	return Rect{Origin: r.Origin.Add(d), Size: r.Size}
}

// SnapOut returns the smallest integer-aligned rectangle containing r.
// Task areas are allocated in whole device pixels, so producers snap
// fractional rects outward before packing them.
func (r Rect) SnapOut() Rect {
	x0 := math32.Floor(r.Origin.X)
	y0 := math32.Floor(r.Origin.Y)
	x1 := math32.Ceil(r.Origin.X + r.Size.X)
	y1 := math32.Ceil(r.Origin.Y + r.Size.Y)
	return R(x0, y0, x1-x0, y1-y0)
}
