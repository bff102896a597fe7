package host

import (
	"encoding/json"

	proxystuff "github.com/pappnu/proxy-stuff"
)

// CoordDescriptor is a bare coordinate in the host's point notation.
type CoordDescriptor struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PointDescriptor is one path point in the host's wire notation: the
// anchor coordinates inline, tangent handles as optional nested objects.
// Corner points omit both handles; smooth points carry both resolved
// sides, including a defaulted side that equals the anchor.
type PointDescriptor struct {
	X     float64          `json:"x"`
	Y     float64          `json:"y"`
	Left  *CoordDescriptor `json:"left,omitempty"`
	Right *CoordDescriptor `json:"right,omitempty"`
}

// SubpathDescriptor is one closed subpath in the host's wire notation.
type SubpathDescriptor struct {
	Operation string            `json:"operation"`
	Closed    bool              `json:"closed"`
	Points    []PointDescriptor `json:"points"`
}

// ShapeDescriptor is the full payload for one path-item creation call.
type ShapeDescriptor struct {
	Name     string              `json:"name"`
	Subpaths []SubpathDescriptor `json:"subpaths"`
}

// NewShapeDescriptor converts compiled subpaths into the host's wire
// notation under the given path item name.
func NewShapeDescriptor(name string, subs []*proxystuff.Subpath) ShapeDescriptor {
	desc := ShapeDescriptor{
		Name:     name,
		Subpaths: make([]SubpathDescriptor, 0, len(subs)),
	}
	for _, sub := range subs {
		sd := SubpathDescriptor{
			Operation: sub.Op().HostToken(),
			Closed:    sub.Closed(),
			Points:    make([]PointDescriptor, 0, sub.Len()),
		}
		for _, p := range sub.Points() {
			pd := PointDescriptor{X: p.Anchor.X, Y: p.Anchor.Y}
			if sm, ok := p.Kind.(proxystuff.Smooth); ok {
				pd.Left = &CoordDescriptor{X: sm.Left.X, Y: sm.Left.Y}
				pd.Right = &CoordDescriptor{X: sm.Right.X, Y: sm.Right.Y}
			}
			sd.Points = append(sd.Points, pd)
		}
		desc.Subpaths = append(desc.Subpaths, sd)
	}
	return desc
}

// EncodeSubpaths renders compiled subpaths as the JSON document a
// script-driven host adapter feeds to its path-creation script.
func EncodeSubpaths(name string, subs []*proxystuff.Subpath) ([]byte, error) {
	return json.Marshal(NewShapeDescriptor(name, subs))
}
