package interp

import "gonum.org/v1/gonum/mat"

// Test-only exports of internal pieces so external _test files can
// check window arithmetic and kernel weights directly.

// NewWeighterForTest exposes newWeighter.
func NewWeighterForTest(kernel KernelType, spec GridSpec, window int) (*weighter, error) {
	return newWeighter(kernel, spec, window)
}

// WeightsForTest exposes weighter.weights.
func (w *weighter) WeightsForTest(dist, dst []float64) { w.weights(dist, dst) }

// WindowForTest exposes the weighter's window size.
func (w *weighter) WindowForTest() int { return w.window }

// WindowIndicesForTest exposes the locator pipeline: it returns the
// flat padded-lattice window indices of q for spec and stride.
func WindowIndicesForTest(spec GridSpec, stride int, q []float64) []int {
	lat := buildLattice(spec, stride/2)
	loc := newLocator(spec, stride, lat.shape)
	dst := make([]int, loc.window)
	loc.windowIndices(q, dst)

	return dst
}

// BuildLatticeForTest exposes the padded lattice: shape and row-major
// node coordinates.
func BuildLatticeForTest(spec GridSpec, k int) (shape []int, coords []float64) {
	lat := buildLattice(spec, k)

	return lat.shape, lat.coords
}

// PadContextGridForTest exposes padContextGrid's node-major output.
func PadContextGridForTest(ctx *mat.Dense, spec GridSpec, k int) []float64 {
	lat := buildLattice(spec, k)

	return padContextGrid(ctx, spec, k, lat.shape)
}

// NewGathererForTest exposes newGatherer.
func NewGathererForTest(mode MemoryMode) (Gatherer, error) {
	return newGatherer(mode)
}

// Gatherer re-exports the internal strategy interface for tests.
type Gatherer = gatherer

// GatherForTest runs g over src/idx exactly as Interpolate does.
func GatherForTest(g Gatherer, src []float64, width int, idx [][]int) []float64 {
	return g.gather(src, width, idx)
}
