package proxystuff

import (
	"errors"
	"fmt"
)

// ErrNoPoints is returned when an outline has no points at all.
var ErrNoPoints = errors.New("proxystuff: no points to compile")

// ErrTooFewPoints is returned when an outline has fewer points than the
// minimum configured with WithMinPoints. The host decides what the real
// minimum for a closed path is; the compiler enforces one only on request.
var ErrTooFewPoints = errors.New("proxystuff: too few points for a closed path")

// Compile resolves an ordered shape outline into a closed subpath.
//
// Each spec is classified as a corner (no handles) or a smooth point
// (either handle present); absent handles resolve to the anchor. Input
// order is preserved exactly: it is the curve's winding order, and
// duplicate consecutive anchors pass through unmodified. The result is
// always closed and tagged CombineAdd.
//
// Compile is pure: it never mutates or retains specs, holds no state
// between calls, and returns structurally identical output for identical
// input. The only errors are ErrNoPoints for an empty outline and
// ErrTooFewPoints when a minimum was configured.
func Compile(specs []PointSpec, opts ...CompileOption) (*Subpath, error) {
	o := defaultCompileOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if len(specs) == 0 {
		return nil, ErrNoPoints
	}
	if len(specs) < o.minPoints {
		return nil, fmt.Errorf("%w: got %d, need at least %d", ErrTooFewPoints, len(specs), o.minPoints)
	}

	points := make([]PathPoint, len(specs))
	for i, spec := range specs {
		points[i] = resolve(spec)
	}

	Logger().Debug("compiled subpath", "points", len(points))
	return &Subpath{points: points, op: CombineAdd}, nil
}

// CompileAll compiles several outlines into one batch of subpaths. All of
// them carry CombineAdd, so submitting the batch as one path item merges
// the outlines additively. The same options apply to every outline.
func CompileAll(outlines [][]PointSpec, opts ...CompileOption) ([]*Subpath, error) {
	subs := make([]*Subpath, 0, len(outlines))
	for i, specs := range outlines {
		sub, err := Compile(specs, opts...)
		if err != nil {
			return nil, fmt.Errorf("outline %d: %w", i, err)
		}
		subs = append(subs, sub)
	}
	return subs, nil
}
