package interp_test

import (
	"testing"

	"github.com/katalvlaran/gridfield/interp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// weightsFor builds a weighter and evaluates it on one distance vector.
func weightsFor(t *testing.T, kernel interp.KernelType, spec interp.GridSpec, dist []float64) []float64 {
	t.Helper()

	window := 1
	for range spec {
		window *= kernel.Stride()
	}
	w, err := interp.NewWeighterForTest(kernel, spec, window)
	require.NoError(t, err)
	require.Equal(t, window, w.WindowForTest())

	dst := make([]float64, window)
	w.WeightsForTest(dist, dst)

	return dst
}

// TestWeighter_InvalidKernel verifies the selector is rejected before
// any computation.
func TestWeighter_InvalidKernel(t *testing.T) {
	spec := interp.GridSpec{{Min: 0, Max: 1, Resolution: 3}}
	_, err := interp.NewWeighterForTest(interp.KernelType(42), spec, 1)
	assert.ErrorIs(t, err, interp.ErrInvalidKernel)
}

// TestWeighter_Linear1D verifies the clipped linear basis pair.
func TestWeighter_Linear1D(t *testing.T) {
	spec := interp.GridSpec{{Min: 0, Max: 1, Resolution: 3}} // dx = 0.5

	// Query a quarter of the way into a cell: dist to the lower node is
	// 0.125, to the upper node -0.375.
	w := weightsFor(t, interp.Linear, spec, []float64{0.125, -0.375})
	assert.InDeltaSlice(t, []float64{0.75, 0.25}, w, 1e-12)
	assert.InDelta(t, 1, floats.Sum(w), 1e-12)
}

// TestWeighter_SmoothStepMidpointAndNodes verifies the ease curves at
// the midpoint (0.5 each side) and at a node (all weight on the node).
func TestWeighter_SmoothStepMidpointAndNodes(t *testing.T) {
	spec := interp.GridSpec{{Min: 0, Max: 1, Resolution: 3}}

	for _, kernel := range []interp.KernelType{interp.SmoothStep1, interp.SmoothStep2} {
		mid := weightsFor(t, kernel, spec, []float64{0.25, -0.25})
		assert.InDeltaSlice(t, []float64{0.5, 0.5}, mid, 1e-12, kernel.String())

		node := weightsFor(t, kernel, spec, []float64{0, -0.5})
		assert.InDeltaSlice(t, []float64{1, 0}, node, 1e-12, kernel.String())
	}
}

// TestWeighter_HypercubeCorners2D verifies the outer-product corner
// weights and their slot order against hand-computed values.
func TestWeighter_HypercubeCorners2D(t *testing.T) {
	spec := interp.GridSpec{
		{Min: 0, Max: 1, Resolution: 2}, // dx = 1
		{Min: 0, Max: 1, Resolution: 2},
	}

	// t = 0.3 along axis 0, t = 0.4 along axis 1. Slots enumerate
	// row-major: (lo,lo), (lo,hi), (hi,lo), (hi,hi).
	dist := []float64{
		0.3, 0.4, // first window node
		0, 0, // interior slots unused by the linear family
		0, 0,
		-0.7, -0.6, // last window node
	}
	w := weightsFor(t, interp.Linear, spec, dist)
	assert.InDeltaSlice(t, []float64{0.7 * 0.6, 0.7 * 0.4, 0.3 * 0.6, 0.3 * 0.4}, w, 1e-12)
	assert.InDelta(t, 1, floats.Sum(w), 1e-12)
}

// TestWeighter_GaussianNormalized verifies the 5-node gaussian window
// renormalizes to 1 and is symmetric around the center node.
func TestWeighter_GaussianNormalized(t *testing.T) {
	spec := interp.GridSpec{{Min: 0, Max: 1, Resolution: 3}} // dx = 0.5

	// Query exactly on the center node.
	dist := []float64{1.0, 0.5, 0, -0.5, -1.0}
	w := weightsFor(t, interp.Gaussian, spec, dist)

	assert.InDelta(t, 1, floats.Sum(w), 1e-12)
	assert.InDelta(t, w[0], w[4], 1e-12)
	assert.InDelta(t, w[1], w[3], 1e-12)
	assert.Greater(t, w[2], w[1], "center node dominates")
	assert.Greater(t, w[1], w[0])
}

// TestWeighter_SumToOneInsideCell sweeps the linear-family kernels
// across a cell and checks the sum-to-one invariant.
func TestWeighter_SumToOneInsideCell(t *testing.T) {
	spec := interp.GridSpec{{Min: 0, Max: 1, Resolution: 3}} // dx = 0.5

	for _, kernel := range []interp.KernelType{interp.Linear, interp.SmoothStep1, interp.SmoothStep2} {
		for _, frac := range []float64{0, 0.1, 0.25, 0.5, 0.9, 1} {
			dist := []float64{frac * 0.5, (frac - 1) * 0.5}
			w := weightsFor(t, kernel, spec, dist)
			assert.InDelta(t, 1, floats.Sum(w), 1e-5,
				"%s at cell fraction %v", kernel, frac)
		}
	}
}
