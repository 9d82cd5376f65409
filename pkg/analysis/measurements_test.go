package analysis

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/boxedit/pkg/geometry"
	"github.com/philipparndt/boxedit/pkg/stl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeBoxModel(t *testing.T) {
	box := geometry.FromCenterSize(mgl64.Vec3{5, 0, 0}, mgl64.Vec3{2, 3, 4})
	result := AnalyzeModel(stl.BoxModel("box", box))

	assert.Equal(t, 12, result.TriangleCount)
	assert.Equal(t, 36, result.EdgeCount)
	assert.InDelta(t, 24.0, result.Volume, 1e-9)
	assert.InDelta(t, 24.0, result.BoundsVolume, 1e-9)
	assert.InDelta(t, 52.0, result.SurfaceArea, 1e-9)
	assert.True(t, result.Dimensions.ApproxEqual(mgl64.Vec3{2, 3, 4}))
	assert.True(t, result.Min.ApproxEqual(mgl64.Vec3{4, -1.5, -2}))

	assert.InDelta(t, 2.0, result.MinEdgeLength, 1e-9)
	assert.InDelta(t, 5.0, result.MaxEdgeLength, 1e-9) // diagonal of the 3x4 face
}

func TestLongestAndShortestEdges(t *testing.T) {
	box := geometry.FromCenterSize(mgl64.Vec3{}, mgl64.Vec3{2, 3, 4})
	result := AnalyzeModel(stl.BoxModel("box", box))

	longest := FindLongestEdges(result, 2)
	require.Len(t, longest, 2)
	assert.InDelta(t, 5.0, longest[0].Length, 1e-9)
	assert.GreaterOrEqual(t, longest[0].Length, longest[1].Length)

	assert.Empty(t, FindLongestEdges(result, -1))

	shortest := FindShortestEdges(result, 100)
	assert.Len(t, shortest, result.EdgeCount)
	assert.InDelta(t, 2.0, shortest[0].Length, 1e-9)
}

func TestAnalyzeEmptyModel(t *testing.T) {
	result := AnalyzeModel(stl.NewModel("empty"))
	assert.Zero(t, result.TriangleCount)
	assert.Zero(t, result.MinEdgeLength)
	assert.Zero(t, result.Volume)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "1.500000 mm", FormatMeasurement(1.5, "mm"))
	assert.Equal(t, "2.000000 units", FormatMeasurement(2, ""))
	assert.Equal(t, "(1.000000, 2.000000, 3.000000)", FormatVector(mgl64.Vec3{1, 2, 3}))
}
