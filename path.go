package proxystuff

// PathElement represents a single element in the bezier form of a subpath.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing, starting the subpath.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a straight line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the subpath by drawing a line back to the start point.
type Close struct{}

func (Close) isPathElement() {}

// Elements lowers the subpath to bezier path elements. A segment whose
// outgoing and incoming tangents are both degenerate becomes a LineTo;
// any other segment becomes a CubicTo from the outgoing right handle to
// the incoming left handle. The final element is always Close; when the
// wrap-around segment back to the first point is straight, Close itself
// draws it.
func (s *Subpath) Elements() []PathElement {
	n := len(s.points)
	if n == 0 {
		return nil
	}

	elems := make([]PathElement, 0, n+1)
	elems = append(elems, MoveTo{Point: s.points[0].Anchor})

	for i := 0; i < n; i++ {
		from := s.points[i]
		to := s.points[(i+1)%n]
		c1 := from.RightTangent()
		c2 := to.LeftTangent()
		straight := c1 == from.Anchor && c2 == to.Anchor

		if i == n-1 {
			// Wrap-around segment.
			if !straight {
				elems = append(elems, CubicTo{Control1: c1, Control2: c2, Point: to.Anchor})
			}
			break
		}
		if straight {
			elems = append(elems, LineTo{Point: to.Anchor})
		} else {
			elems = append(elems, CubicTo{Control1: c1, Control2: c2, Point: to.Anchor})
		}
	}

	elems = append(elems, Close{})
	return elems
}
