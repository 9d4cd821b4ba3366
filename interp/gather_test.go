package interp_test

import (
	"testing"

	"github.com/katalvlaran/gridfield/interp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGather_LowAndHighMatch verifies both strategies return the same
// bytes for the same inputs.
func TestGather_LowAndHighMatch(t *testing.T) {
	// 4 nodes, 2 values per node.
	src := []float64{
		10, 11,
		20, 21,
		30, 31,
		40, 41,
	}
	idx := [][]int{{1, 3}, {0, 2}}

	low, err := interp.NewGathererForTest(interp.LowMemory)
	require.NoError(t, err)
	high, err := interp.NewGathererForTest(interp.HighMemory)
	require.NoError(t, err)

	want := []float64{
		20, 21, 40, 41,
		10, 11, 30, 31,
	}
	assert.Equal(t, want, interp.GatherForTest(low, src, 2, idx))
	assert.Equal(t, want, interp.GatherForTest(high, src, 2, idx))
}

// TestGather_RepeatedIndices verifies a node may appear in several
// windows (and several slots of one window).
func TestGather_RepeatedIndices(t *testing.T) {
	src := []float64{5, 6, 7}
	idx := [][]int{{2, 2}, {0, 2}}

	low, err := interp.NewGathererForTest(interp.LowMemory)
	require.NoError(t, err)

	assert.Equal(t, []float64{7, 7, 5, 7}, interp.GatherForTest(low, src, 1, idx))
}

// TestNewGatherer_InvalidMode verifies the selector is validated.
func TestNewGatherer_InvalidMode(t *testing.T) {
	_, err := interp.NewGathererForTest(interp.MemoryMode(9))
	assert.ErrorIs(t, err, interp.ErrInvalidMemoryMode)
}
