package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	proxystuff "github.com/pappnu/proxy-stuff"
)

func TestNewShapeDescriptor(t *testing.T) {
	right := proxystuff.Pt(15, 5)
	left := proxystuff.Pt(5, 15)
	sub, err := proxystuff.Compile([]proxystuff.PointSpec{
		{Anchor: proxystuff.Pt(0, 0)},
		{Anchor: proxystuff.Pt(10, 0), Right: &right},
		{Anchor: proxystuff.Pt(10, 10), Left: &left},
	})
	require.NoError(t, err)

	desc := NewShapeDescriptor("Textbox", []*proxystuff.Subpath{sub})
	assert.Equal(t, "Textbox", desc.Name)
	require.Len(t, desc.Subpaths, 1)

	sd := desc.Subpaths[0]
	assert.Equal(t, "add", sd.Operation)
	assert.True(t, sd.Closed)
	require.Len(t, sd.Points, 3)

	// Corner points omit both handles.
	assert.Nil(t, sd.Points[0].Left)
	assert.Nil(t, sd.Points[0].Right)

	// Smooth points carry both resolved sides, defaulted ones included.
	require.NotNil(t, sd.Points[1].Left)
	assert.Equal(t, CoordDescriptor{X: 10, Y: 0}, *sd.Points[1].Left)
	require.NotNil(t, sd.Points[1].Right)
	assert.Equal(t, CoordDescriptor{X: 15, Y: 5}, *sd.Points[1].Right)

	require.NotNil(t, sd.Points[2].Left)
	assert.Equal(t, CoordDescriptor{X: 5, Y: 15}, *sd.Points[2].Left)
	require.NotNil(t, sd.Points[2].Right)
	assert.Equal(t, CoordDescriptor{X: 10, Y: 10}, *sd.Points[2].Right)
}

func TestEncodeSubpaths(t *testing.T) {
	right := proxystuff.Pt(15, 5)
	sub, err := proxystuff.Compile([]proxystuff.PointSpec{
		{Anchor: proxystuff.Pt(0, 0)},
		{Anchor: proxystuff.Pt(10, 0), Right: &right},
	})
	require.NoError(t, err)

	data, err := EncodeSubpaths("Frame", []*proxystuff.Subpath{sub})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"name": "Frame",
		"subpaths": [{
			"operation": "add",
			"closed": true,
			"points": [
				{"x": 0, "y": 0},
				{"x": 10, "y": 0, "left": {"x": 10, "y": 0}, "right": {"x": 15, "y": 5}}
			]
		}]
	}`, string(data))
}
