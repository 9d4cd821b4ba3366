package interp

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Interpolate evaluates a gridded field at arbitrary query points.
//
// Inputs:
//   - queries     — coordinate vectors, each of length spec.Dims().
//     Output row order matches query order.
//   - contextGrid — channels × spec.NodeCount() matrix, one value per
//     channel per lattice node, nodes flattened row-major in axis
//     order (first axis slowest). Read-only for the call.
//   - spec        — ordered 1–3 axis grid specification.
//   - opts        — kernel and gather strategy; nil means
//     DefaultOptions() (SmoothStep2, LowMemory).
//
// Returns a queries × channels matrix of interpolated values.
//
// The lattice and context grid are padded by half a window per axis
// with zero-filled border nodes, so queries up to that margin outside
// the domain stay valid and blend toward zero near the edge. Queries
// further outside are a caller responsibility.
//
// Errors (all detected eagerly, no partial results):
//   - ErrInvalidKernel, ErrInvalidMemoryMode — unrecognized selectors.
//   - ErrUnsupportedDimension, ErrInvalidAxis — malformed spec.
//   - ErrShapeMismatch — context grid node count, query vector length,
//     or empty inputs inconsistent with spec.
func Interpolate(queries [][]float64, contextGrid *mat.Dense, spec GridSpec, opts *Options) (*mat.Dense, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	stride := o.Kernel.Stride()
	if stride == 0 {
		return nil, ErrInvalidKernel
	}
	g, err := newGatherer(o.Memory)
	if err != nil {
		return nil, err
	}
	if err = spec.Validate(); err != nil {
		return nil, err
	}

	dims := spec.Dims()
	channels, nodes := contextGrid.Dims()
	if channels < 1 || nodes != spec.NodeCount() || len(queries) == 0 {
		return nil, ErrShapeMismatch
	}
	for _, q := range queries {
		if len(q) != dims {
			return nil, ErrShapeMismatch
		}
	}

	// Padded lattice and padded context grid (derived temporaries).
	k := stride / 2
	lat := buildLattice(spec, k)
	padded := padContextGrid(contextGrid, spec, k, lat.shape)

	loc := newLocator(spec, stride, lat.shape)
	wgt, err := newWeighter(o.Kernel, spec, loc.window)
	if err != nil {
		return nil, err
	}

	idx := make([][]int, len(queries))
	flat := make([]int, len(queries)*loc.window)
	for qi, q := range queries {
		idx[qi] = flat[qi*loc.window : (qi+1)*loc.window]
		loc.windowIndices(q, idx[qi])
	}

	// Gather twice: lattice positions for distance vectors, then field
	// values for the weighted reduction.
	positions := g.gather(lat.coords, dims, idx)
	values := g.gather(padded, channels, idx)

	out := mat.NewDense(len(queries), channels, nil)
	dist := make([]float64, loc.window*dims)
	weights := make([]float64, loc.window)
	for qi, q := range queries {
		base := qi * loc.window * dims
		for s := 0; s < loc.window; s++ {
			for a := 0; a < dims; a++ {
				dist[s*dims+a] = q[a] - positions[base+s*dims+a]
			}
		}
		wgt.weights(dist, weights)

		row := out.RawRowView(qi)
		vbase := qi * loc.window * channels
		for s := 0; s < loc.window; s++ {
			floats.AddScaled(row, weights[s], values[vbase+s*channels:vbase+(s+1)*channels])
		}
	}

	return out, nil
}
