package specfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	proxystuff "github.com/pappnu/proxy-stuff"
)

const tomlDoc = `
[shapes.textbox]
points = [
	{ x = 0, y = 0 },
	{ x = 10, y = 0, right = { x = 15, y = 5 } },
	{ x = 10, y = 10, left = { x = 5, y = 15 } },
]

[shapes.frame]
points = [
	{ x = 0, y = 0 },
	{ x = 100, y = 0 },
	{ x = 100, y = 140 },
	{ x = 0, y = 140 },
]
`

const yamlDoc = `
shapes:
  textbox:
    points:
      - { x: 0, y: 0 }
      - { x: 10, y: 0, right: { x: 15, y: 5 } }
      - { x: 10, y: 10, left: { x: 5, y: 15 } }
`

func TestParse_TOML(t *testing.T) {
	f, err := Parse([]byte(tomlDoc), FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, []string{"frame", "textbox"}, f.Names())

	textbox := f.Shapes["textbox"]
	require.Len(t, textbox.Points, 3)
	assert.Nil(t, textbox.Points[0].Left)
	assert.Nil(t, textbox.Points[0].Right)
	require.NotNil(t, textbox.Points[1].Right)
	assert.Equal(t, Coord{X: 15, Y: 5}, *textbox.Points[1].Right)
	require.NotNil(t, textbox.Points[2].Left)
	assert.Equal(t, Coord{X: 5, Y: 15}, *textbox.Points[2].Left)
}

func TestParse_YAML(t *testing.T) {
	f, err := Parse([]byte(yamlDoc), FormatYAML)
	require.NoError(t, err)

	textbox := f.Shapes["textbox"]
	require.Len(t, textbox.Points, 3)
	require.NotNil(t, textbox.Points[1].Right)
	assert.Equal(t, Coord{X: 15, Y: 5}, *textbox.Points[1].Right)
}

func TestParse_EmptyShape(t *testing.T) {
	_, err := Parse([]byte("[shapes.empty]\npoints = []\n"), FormatTOML)
	require.ErrorIs(t, err, ErrEmptyShape)
	assert.Contains(t, err.Error(), `"empty"`)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("[shapes.broken\n"), FormatTOML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "specfile:")
}

func TestShape_PointSpecs(t *testing.T) {
	f, err := Parse([]byte(tomlDoc), FormatTOML)
	require.NoError(t, err)

	specs := f.Shapes["textbox"].PointSpecs()
	require.Len(t, specs, 3)

	// Feeding the converted specs to the compiler must reproduce the
	// documented classification.
	sub, err := proxystuff.Compile(specs)
	require.NoError(t, err)

	points := sub.Points()
	assert.IsType(t, proxystuff.Corner{}, points[0].Kind)
	assert.Equal(t, proxystuff.Smooth{
		Left:  proxystuff.Pt(10, 0),
		Right: proxystuff.Pt(15, 5),
	}, points[1].Kind)
	assert.Equal(t, proxystuff.Smooth{
		Left:  proxystuff.Pt(5, 15),
		Right: proxystuff.Pt(10, 10),
	}, points[2].Kind)
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"shapes.toml", FormatTOML, false},
		{"shapes.TOML", FormatTOML, false},
		{"shapes.yaml", FormatYAML, false},
		{"shapes.yml", FormatYAML, false},
		{"shapes.json", 0, true},
		{"shapes", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatForPath(tt.path)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shapes.toml")
	require.NoError(t, os.WriteFile(path, []byte(tomlDoc), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, f.Shapes, 2)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	require.Error(t, err)

	_, err = Load(filepath.Join(dir, "shapes.ini"))
	require.ErrorIs(t, err, ErrUnknownFormat)
}
