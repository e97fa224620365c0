package optics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceEmptyChain(t *testing.T) {
	rays := []Ray{{Height: 10, Angle: 0.5}, {Height: -2, Angle: 0}}
	result := Trace(nil, rays)

	assert.Empty(t, result.Matrices)
	assert.Empty(t, result.Offsets)
	assert.Equal(t, Identity(), result.TotalMatrix)
	assert.Equal(t, Vec2{}, result.TotalOffset)
	assert.Equal(t, rays, result.PropagatedRays)
}

func TestTraceGapThenLens(t *testing.T) {
	// 100mm gap then a 50mm lens: the ray climbs nowhere (angle 0), then the
	// lens bends it toward the axis by h/f.
	components := []ComponentSpec{
		{Kind: "free_space", Params: map[string]float64{"length": 100}},
		{Kind: "positive_lens", Params: map[string]float64{"focal_length": 50}},
	}
	rays := []Ray{{Height: 10, Angle: 0}}

	result := Trace(components, rays)

	require.Len(t, result.PropagatedRays, 1)
	assert.InDelta(t, 10, result.PropagatedRays[0].Height, 1e-9)
	assert.InDelta(t, -0.2, result.PropagatedRays[0].Angle, 1e-9)

	expectedTotal := Mat2{{1, 100}, {-0.02, -1}}
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			assert.InDelta(t, expectedTotal[r][c], result.TotalMatrix[r][c], 1e-9)
		}
	}
	assert.Equal(t, Vec2{}, result.TotalOffset)
}

func TestTraceParallelSequences(t *testing.T) {
	components := []ComponentSpec{
		{Kind: "free_space", Params: map[string]float64{"length": 10}},
		{Kind: "no_such_kind"},
		{Kind: "prism", Params: map[string]float64{"angle_offset": 1}},
	}
	rays := []Ray{{}, {Height: 1}, {Angle: 1}, {Height: 1, Angle: 1}}

	result := Trace(components, rays)

	require.Len(t, result.Matrices, len(components))
	require.Len(t, result.Offsets, len(components))
	require.Len(t, result.PropagatedRays, len(rays))

	// The unknown kind occupies its slot as an identity stage, preserving
	// positional correspondence with the input chain.
	assert.Equal(t, Identity(), result.Matrices[1])
	assert.Equal(t, Vec2{}, result.Offsets[1])
}

func TestTraceReportedStagesMatchApplied(t *testing.T) {
	components := []ComponentSpec{
		{Kind: "free_space", Params: map[string]float64{"length": 35}},
		{Kind: "mirror", Params: map[string]float64{"flip_orientation": -2}},
		{Kind: "grating", Params: map[string]float64{"spatial_frequency": 1200}},
	}
	ray := Ray{Height: 4, Angle: -0.1}

	result := Trace(components, []Ray{ray})

	// Re-propagating through the reported matrices/offsets must reproduce the
	// reported output ray exactly.
	stages := make([]Stage, len(components))
	for i := range components {
		stages[i] = Stage{M: result.Matrices[i], O: result.Offsets[i]}
	}
	assert.Equal(t, result.PropagatedRays[0], Propagate(ray, stages))
}

func TestTraceRaysDoNotInteract(t *testing.T) {
	components := []ComponentSpec{
		{Kind: "positive_lens", Params: map[string]float64{"focal_length": 100}},
	}
	alone := Trace(components, []Ray{{Height: 5}})
	crowd := Trace(components, []Ray{{Height: -5}, {Height: 5}, {Height: 50}})

	assert.Equal(t, alone.PropagatedRays[0], crowd.PropagatedRays[1])
}
