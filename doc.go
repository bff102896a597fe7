// Package proxystuff compiles declarative shape outlines into closed
// bezier subpaths for an image-editing host.
//
// # Overview
//
// A shape outline is an ordered list of [PointSpec] values: each names an
// anchor the curve passes through and may carry asymmetric tangent handles
// for the incoming (left) and outgoing (right) curve direction. [Compile]
// resolves that list into a [Subpath]: every point is classified as a
// corner or a smooth point, missing handles default to the anchor, and the
// result is always closed and tagged for additive combination with any
// other subpaths submitted in the same batch.
//
// # Quick Start
//
//	sub, err := proxystuff.Compile([]proxystuff.PointSpec{
//		{Anchor: proxystuff.Pt(0, 0)},
//		{Anchor: proxystuff.Pt(10, 0), Right: &proxystuff.Point{X: 15, Y: 5}},
//		{Anchor: proxystuff.Pt(10, 10), Left: &proxystuff.Point{X: 5, Y: 15}},
//	})
//	if err != nil {
//		// only possible for empty or (optionally) too-short input
//	}
//	elems := sub.Elements() // bezier form: MoveTo, LineTo/CubicTo..., Close
//
// # Handle resolution
//
// A point with neither handle is a corner; a point with either handle is
// smooth. An absent handle on a smooth point resolves to the anchor itself,
// a zero-length tangent. It is never mirrored from the present side. The
// point kind is a sealed two-variant type ([Corner], [Smooth]) instead of a
// boolean flag so the non-mirroring default is visible in the types.
//
// # Host boundary
//
// The compiler is pure and never talks to the host. Submission of compiled
// subpaths to a host document lives in the host sub-package, behind narrow
// interfaces the host adapter implements.
//
// # Coordinate System
//
// Uses the host document's coordinate space:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package proxystuff

// Version is the current version of the library.
const Version = "0.2.0"
