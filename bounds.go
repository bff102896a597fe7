package proxystuff

import "math"

// Rect represents an axis-aligned rectangle.
// Min is the top-left corner (minimum coordinates).
// Max is the bottom-right corner (maximum coordinates).
type Rect struct {
	Min, Max Point
}

// emptyRect returns an inverted rectangle suitable for union operations.
func emptyRect() Rect {
	return Rect{
		Min: Point{X: math.Inf(1), Y: math.Inf(1)},
		Max: Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// IsEmpty returns true if the rectangle contains no points.
func (r Rect) IsEmpty() bool {
	return r.Min.X > r.Max.X || r.Min.Y > r.Max.Y
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.Max.Y - r.Min.Y
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, other.Min.X), Y: math.Min(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, other.Max.X), Y: math.Max(r.Max.Y, other.Max.Y)},
	}
}

// UnionPoint expands the rectangle to include the point.
func (r Rect) UnionPoint(p Point) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, p.X), Y: math.Min(r.Min.Y, p.Y)},
		Max: Point{X: math.Max(r.Max.X, p.X), Y: math.Max(r.Max.Y, p.Y)},
	}
}

// AnchorBounds returns the bounding box over the subpath's anchors only,
// the box the host reports for a shape's path points. Tangent handles may
// pull the rendered curve outside it; use ControlBounds for a box that is
// guaranteed to contain the curve.
func (s *Subpath) AnchorBounds() Rect {
	r := emptyRect()
	for _, p := range s.points {
		r = r.UnionPoint(p.Anchor)
	}
	return r
}

// ControlBounds returns the bounding box over anchors and resolved tangent
// handles. The curve always lies inside the convex hull of its control
// points, so this box contains it, conservatively.
func (s *Subpath) ControlBounds() Rect {
	r := emptyRect()
	for _, p := range s.points {
		r = r.UnionPoint(p.Anchor)
		r = r.UnionPoint(p.LeftTangent())
		r = r.UnionPoint(p.RightTangent())
	}
	return r
}
