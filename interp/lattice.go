package interp

import "gonum.org/v1/gonum/mat"

// lattice is the padded coordinate lattice derived from a GridSpec for
// one interpolation call. Nodes are enumerated row-major: the first
// axis varies slowest, matching the context-grid flattening.
type lattice struct {
	dims   int
	shape  []int     // padded node count per axis: resolution + 2k
	nodes  int       // product of shape
	coords []float64 // node coordinates, row-major, len = nodes*dims
}

// buildLattice derives the padded coordinate lattice for spec with k
// extra border nodes per axis side. Axis a covers
// [min_a - k·dx_a, max_a + k·dx_a] at the original spacing.
func buildLattice(spec GridSpec, k int) *lattice {
	dims := spec.Dims()
	dx := spec.Spacing()

	lat := &lattice{
		dims:  dims,
		shape: make([]int, dims),
		nodes: 1,
	}
	axes := make([][]float64, dims)
	for a, ax := range spec {
		n := ax.Resolution + 2*k
		lat.shape[a] = n
		lat.nodes *= n

		axes[a] = make([]float64, n)
		start := ax.Min - float64(k)*dx[a]
		for j := 0; j < n; j++ {
			axes[a][j] = start + float64(j)*dx[a]
		}
	}

	// Outer product of the padded axes, row-major.
	lat.coords = make([]float64, lat.nodes*dims)
	for flat := 0; flat < lat.nodes; flat++ {
		rem := flat
		for a := dims - 1; a >= 0; a-- {
			lat.coords[flat*dims+a] = axes[a][rem%lat.shape[a]]
			rem /= lat.shape[a]
		}
	}

	return lat
}

// padContextGrid scatters the channels × nodes context grid into a
// padded node-major buffer of shape [paddedNodes][channels]. The k
// border nodes per axis side are zero-filled: boundary queries blend
// toward zero, an accepted approximation at the domain edge.
func padContextGrid(ctx *mat.Dense, spec GridSpec, k int, paddedShape []int) []float64 {
	dims := spec.Dims()
	channels, nodes := ctx.Dims()

	paddedNodes := 1
	for _, n := range paddedShape {
		paddedNodes *= n
	}
	out := make([]float64, paddedNodes*channels)

	// Row-major strides over the padded shape.
	stride := make([]int, dims)
	stride[dims-1] = 1
	for a := dims - 2; a >= 0; a-- {
		stride[a] = stride[a+1] * paddedShape[a+1]
	}

	idx := make([]int, dims)
	for flat := 0; flat < nodes; flat++ {
		rem := flat
		for a := dims - 1; a >= 0; a-- {
			idx[a] = rem % spec[a].Resolution
			rem /= spec[a].Resolution
		}
		pflat := 0
		for a := 0; a < dims; a++ {
			pflat += (idx[a] + k) * stride[a]
		}
		for c := 0; c < channels; c++ {
			out[pflat*channels+c] = ctx.At(c, flat)
		}
	}

	return out
}
