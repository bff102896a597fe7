// Package specfile loads declarative shape documents.
//
// A shape document names one or more shape outlines, each an ordered list
// of points with optional tangent handles, ready for compilation:
//
//	[shapes.textbox]
//	points = [
//		{ x = 0, y = 0 },
//		{ x = 10, y = 0, right = { x = 15, y = 5 } },
//		{ x = 10, y = 10, left = { x = 5, y = 15 } },
//	]
//
// TOML is the primary format; YAML documents with the same structure are
// accepted based on file extension. This package only describes compiler
// input. The external renderer's own option schema is not read here.
package specfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	proxystuff "github.com/pappnu/proxy-stuff"
)

// Format identifies a shape document encoding.
type Format int

// Supported document encodings.
const (
	FormatTOML Format = iota
	FormatYAML
)

// ErrUnknownFormat is returned for file extensions that map to no
// supported encoding.
var ErrUnknownFormat = errors.New("specfile: unknown document format")

// ErrEmptyShape is returned when a named shape declares no points.
var ErrEmptyShape = errors.New("specfile: shape has no points")

// Coord is a bare coordinate.
type Coord struct {
	X float64 `toml:"x" yaml:"x"`
	Y float64 `toml:"y" yaml:"y"`
}

// Point is one declarative outline point: the anchor coordinates inline,
// tangent handles as optional nested tables. Absent handles stay nil and
// default to the anchor at compile time.
type Point struct {
	X     float64 `toml:"x" yaml:"x"`
	Y     float64 `toml:"y" yaml:"y"`
	Left  *Coord  `toml:"left,omitempty" yaml:"left,omitempty"`
	Right *Coord  `toml:"right,omitempty" yaml:"right,omitempty"`
}

// Shape is one named outline.
type Shape struct {
	Points []Point `toml:"points" yaml:"points"`
}

// PointSpecs converts the outline into compiler input, preserving order.
func (s Shape) PointSpecs() []proxystuff.PointSpec {
	specs := make([]proxystuff.PointSpec, len(s.Points))
	for i, p := range s.Points {
		spec := proxystuff.PointSpec{Anchor: proxystuff.Pt(p.X, p.Y)}
		if p.Left != nil {
			left := proxystuff.Pt(p.Left.X, p.Left.Y)
			spec.Left = &left
		}
		if p.Right != nil {
			right := proxystuff.Pt(p.Right.X, p.Right.Y)
			spec.Right = &right
		}
		specs[i] = spec
	}
	return specs
}

// File is a parsed shape document.
type File struct {
	Shapes map[string]Shape `toml:"shapes" yaml:"shapes"`
}

// Names returns the shape names in sorted order.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Shapes))
	for name := range f.Shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks that every declared shape has at least one point.
func (f *File) Validate() error {
	for _, name := range f.Names() {
		if len(f.Shapes[name].Points) == 0 {
			return fmt.Errorf("%w: %q", ErrEmptyShape, name)
		}
	}
	return nil
}

// FormatForPath derives the document format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Parse decodes and validates a shape document.
func Parse(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("specfile: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("specfile: %w", err)
		}
	default:
		return nil, ErrUnknownFormat
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	proxystuff.Logger().Debug("parsed shape document", "shapes", len(f.Shapes))
	return &f, nil
}

// Load reads and parses a shape document, deriving the format from the
// file extension.
func Load(path string) (*File, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, format)
}
