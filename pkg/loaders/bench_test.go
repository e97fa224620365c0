package loaders

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opticslab/paraxial/pkg/optics"
)

func writeBench(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadBench(t *testing.T) {
	path := writeBench(t, `
components:
  - type: free_space
    params: {length: 100}
  - type: positive_lens
    params: {focal_length: 50}
rays:
  - {height: 10, angle: 0}
  - {height: -5, angle: 0.1}
`)

	bench, err := LoadBench(path)
	require.NoError(t, err)

	require.Len(t, bench.Components, 2)
	assert.Equal(t, optics.ComponentSpec{
		Kind:   "free_space",
		Params: map[string]float64{"length": 100},
	}, bench.Components[0])
	assert.Equal(t, "positive_lens", bench.Components[1].Kind)

	require.Len(t, bench.Rays, 2)
	assert.Equal(t, optics.Ray{Height: 10, Angle: 0}, bench.Rays[0])
	assert.Equal(t, optics.Ray{Height: -5, Angle: 0.1}, bench.Rays[1])
}

func TestLoadBenchPreservesChainOrder(t *testing.T) {
	path := writeBench(t, `
components:
  - type: mirror
  - type: free_space
  - type: mirror
  - type: prism
`)

	bench, err := LoadBench(path)
	require.NoError(t, err)

	kinds := make([]string, len(bench.Components))
	for i, c := range bench.Components {
		kinds[i] = c.Kind
	}
	assert.Equal(t, []string{"mirror", "free_space", "mirror", "prism"}, kinds)
}

func TestLoadBenchMissingSections(t *testing.T) {
	path := writeBench(t, `components: []`)

	bench, err := LoadBench(path)
	require.NoError(t, err)

	assert.Empty(t, bench.Components)
	assert.Empty(t, bench.Rays)
}

func TestLoadBenchMissingFile(t *testing.T) {
	_, err := LoadBench(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadBenchBadYAML(t *testing.T) {
	path := writeBench(t, "components: [unclosed")

	_, err := LoadBench(path)
	assert.Error(t, err)
}

func TestLoadBenchFeedsTrace(t *testing.T) {
	path := writeBench(t, `
components:
  - type: free_space
    params: {length: 100}
  - type: positive_lens
    params: {focal_length: 50}
rays:
  - {height: 10}
`)

	bench, err := LoadBench(path)
	require.NoError(t, err)

	result := optics.Trace(bench.Components, bench.Rays)
	require.Len(t, result.PropagatedRays, 1)
	assert.InDelta(t, 10, result.PropagatedRays[0].Height, 1e-9)
	assert.InDelta(t, -0.2, result.PropagatedRays[0].Angle, 1e-9)
}
