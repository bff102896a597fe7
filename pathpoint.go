package proxystuff

// PointSpec is the atomic input unit of a shape outline: the anchor the
// curve passes through plus optional tangent handles. A nil handle means
// "absent" and resolves to the anchor during compilation, giving that side
// a zero-length tangent. The absent side of a smooth point is never
// mirrored from the present side.
type PointSpec struct {
	// Anchor is the coordinate the curve passes through.
	Anchor Point
	// Left is the incoming tangent control point, or nil.
	Left *Point
	// Right is the outgoing tangent control point, or nil.
	Right *Point
}

// PointKind classifies a resolved path point as a corner or smooth point.
type PointKind interface {
	isPointKind()
}

// Corner marks a point with degenerate (zero-length) tangents on both
// sides. The host draws straight segments into and out of it.
type Corner struct{}

func (Corner) isPointKind() {}

// String returns a human-readable name for the kind.
func (Corner) String() string { return "Corner" }

// Smooth carries the resolved tangents of a point with at least one
// handle. A side whose handle was absent holds the anchor itself.
type Smooth struct {
	Left, Right Point
}

func (Smooth) isPointKind() {}

// String returns a human-readable name for the kind.
func (Smooth) String() string { return "Smooth" }

// PathPoint is one resolved point of a compiled subpath.
type PathPoint struct {
	Anchor Point
	Kind   PointKind
}

// LeftTangent returns the incoming tangent control point.
// For corner points this is the anchor itself.
func (p PathPoint) LeftTangent() Point {
	if s, ok := p.Kind.(Smooth); ok {
		return s.Left
	}
	return p.Anchor
}

// RightTangent returns the outgoing tangent control point.
// For corner points this is the anchor itself.
func (p PathPoint) RightTangent() Point {
	if s, ok := p.Kind.(Smooth); ok {
		return s.Right
	}
	return p.Anchor
}

// resolve classifies a spec and fills in absent handles with the anchor.
// Either handle present makes the point smooth; the other side defaults to
// the anchor rather than mirroring.
func resolve(spec PointSpec) PathPoint {
	if spec.Left == nil && spec.Right == nil {
		return PathPoint{Anchor: spec.Anchor, Kind: Corner{}}
	}
	left, right := spec.Anchor, spec.Anchor
	if spec.Left != nil {
		left = *spec.Left
	}
	if spec.Right != nil {
		right = *spec.Right
	}
	return PathPoint{Anchor: spec.Anchor, Kind: Smooth{Left: left, Right: right}}
}
