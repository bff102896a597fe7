package proxystuff

// CombineOp selects how a subpath merges with the other shape components
// of the same path item.
type CombineOp uint8

// Combine operation constants matching the host's shape operations.
const (
	// CombineAdd unites the subpath with the existing shape area.
	CombineAdd CombineOp = iota
	// CombineSubtract removes the subpath area from the shape.
	CombineSubtract
	// CombineIntersect keeps only the overlapping area.
	CombineIntersect
	// CombineExclude keeps only the non-overlapping area.
	CombineExclude
)

// String returns a human-readable name for the operation.
func (op CombineOp) String() string {
	switch op {
	case CombineAdd:
		return "Add"
	case CombineSubtract:
		return "Subtract"
	case CombineIntersect:
		return "Intersect"
	case CombineExclude:
		return "Exclude"
	default:
		return "Unknown"
	}
}

// HostToken returns the identifier the host's shape-operation descriptor
// expects. The intersect token is an internal host quirk, not a typo.
func (op CombineOp) HostToken() string {
	switch op {
	case CombineAdd:
		return "add"
	case CombineSubtract:
		return "subtract"
	case CombineIntersect:
		return "interfaceIconFrameDimmed"
	case CombineExclude:
		return "xor"
	default:
		return ""
	}
}

// Subpath is one compiled, closed shape outline ready for submission to a
// host document. Subpaths are immutable after compilation; methods that
// change geometry return a new Subpath.
type Subpath struct {
	points []PathPoint
	op     CombineOp
}

// Points returns the resolved path points in input order.
func (s *Subpath) Points() []PathPoint {
	return s.points
}

// Len returns the number of path points.
func (s *Subpath) Len() int {
	return len(s.points)
}

// Closed reports whether the subpath is closed. Compiled subpaths are
// always closed; open outlines are not part of the input model.
func (s *Subpath) Closed() bool {
	return true
}

// Op returns the combine operation the subpath is tagged with. The
// compiler always tags CombineAdd so that subpaths submitted in the same
// batch merge additively.
func (s *Subpath) Op() CombineOp {
	return s.op
}

// Translate returns a copy of the subpath shifted by (dx, dy). Anchors and
// tangents move together, so corner/smooth classification is preserved.
func (s *Subpath) Translate(dx, dy float64) *Subpath {
	d := Pt(dx, dy)
	points := make([]PathPoint, len(s.points))
	for i, p := range s.points {
		moved := PathPoint{Anchor: p.Anchor.Add(d)}
		if sm, ok := p.Kind.(Smooth); ok {
			moved.Kind = Smooth{Left: sm.Left.Add(d), Right: sm.Right.Add(d)}
		} else {
			moved.Kind = Corner{}
		}
		points[i] = moved
	}
	return &Subpath{points: points, op: s.op}
}
