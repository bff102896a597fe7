package proxystuff

// Outline constructors for the axis-aligned boxes card templates are
// mostly built from. They produce plain PointSpec lists, so callers can
// append or replace points before compiling.

// RectOutline returns the four corner points of an axis-aligned
// rectangle in clockwise winding order, starting at the top-left.
func RectOutline(left, top, right, bottom float64) []PointSpec {
	return []PointSpec{
		{Anchor: Pt(left, top)},
		{Anchor: Pt(right, top)},
		{Anchor: Pt(right, bottom)},
		{Anchor: Pt(left, bottom)},
	}
}

// circleK is the tangent length factor approximating a quarter circle
// with one cubic Bezier: 4/3 * (sqrt(2) - 1).
const circleK = 0.5522847498307936

// RoundedRectOutline returns a rectangle outline with circular corners of
// the given radius, clockwise from the top-left corner's outgoing edge.
// Corner arcs are smooth points whose handles approximate quarter
// circles. The radius is clamped to half the smaller dimension.
func RoundedRectOutline(left, top, right, bottom, radius float64) []PointSpec {
	maxR := min(right-left, bottom-top) / 2
	if radius > maxR {
		radius = maxR
	}
	if radius <= 0 {
		return RectOutline(left, top, right, bottom)
	}
	k := circleK * radius

	corner := func(anchor, l, r Point) PointSpec {
		return PointSpec{Anchor: anchor, Left: &l, Right: &r}
	}
	return []PointSpec{
		// Top edge, then clockwise. Each corner contributes two smooth
		// points: arc entry and arc exit.
		corner(Pt(left+radius, top), Pt(left+radius-k, top), Pt(left+radius, top)),
		corner(Pt(right-radius, top), Pt(right-radius, top), Pt(right-radius+k, top)),
		corner(Pt(right, top+radius), Pt(right, top+radius-k), Pt(right, top+radius)),
		corner(Pt(right, bottom-radius), Pt(right, bottom-radius), Pt(right, bottom-radius+k)),
		corner(Pt(right-radius, bottom), Pt(right-radius+k, bottom), Pt(right-radius, bottom)),
		corner(Pt(left+radius, bottom), Pt(left+radius, bottom), Pt(left+radius-k, bottom)),
		corner(Pt(left, bottom-radius), Pt(left, bottom-radius+k), Pt(left, bottom-radius)),
		corner(Pt(left, top+radius), Pt(left, top+radius), Pt(left, top+radius-k)),
	}
}
