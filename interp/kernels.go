package interp

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// linearStep clips x to [0, 1].
func linearStep(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}

	return x
}

// smoothStep1 is the C¹-continuous cubic ease 3x²-2x³, clipped to [0, 1].
func smoothStep1(x float64) float64 {
	return linearStep(3*x*x - 2*x*x*x)
}

// smoothStep2 is the C²-continuous quintic ease x³(6x²-15x+10),
// clipped to [0, 1].
func smoothStep2(x float64) float64 {
	return linearStep(x * x * x * (6*x*x - 15*x + 10))
}

// hyperCube combines per-axis lower/upper factors into one weight per
// corner of the surrounding cell via a recursive outer product. dst
// has length 2^dims and its slot order matches the row-major window
// enumeration: for each axis the first factor belongs to the node with
// the smaller coordinate.
func hyperCube(lower, upper []float64, dst []float64) {
	dst[0], dst[1] = upper[0], lower[0]
	n := 2
	for a := 1; a < len(lower); a++ {
		for i := n - 1; i >= 0; i-- {
			w := dst[i]
			dst[2*i] = w * upper[a]
			dst[2*i+1] = w * lower[a]
		}
		n *= 2
	}
}

// weighter computes per-window interpolation weights for one kernel on
// one grid. Weights are non-negative and sum to 1 over the window.
type weighter struct {
	kernel KernelType
	dims   int
	window int
	dx     []float64

	ease  func(float64) float64 // linear family
	norms []distuv.Normal       // gaussian per-axis densities, σ = dx/2

	lower, upper []float64 // scratch, len dims
}

// newWeighter validates the kernel selector and prepares kernel state.
// An unrecognized kernel fails with ErrInvalidKernel before any
// computation begins.
func newWeighter(kernel KernelType, spec GridSpec, window int) (*weighter, error) {
	w := &weighter{
		kernel: kernel,
		dims:   spec.Dims(),
		window: window,
		dx:     spec.Spacing(),
	}
	w.lower = make([]float64, w.dims)
	w.upper = make([]float64, w.dims)

	switch kernel {
	case NearestNeighbor:
	case Linear:
		w.ease = linearStep
	case SmoothStep1:
		w.ease = smoothStep1
	case SmoothStep2:
		w.ease = smoothStep2
	case Gaussian:
		w.norms = make([]distuv.Normal, w.dims)
		for a := 0; a < w.dims; a++ {
			w.norms[a] = distuv.Normal{Mu: 0, Sigma: w.dx[a] / 2}
		}
	default:
		return nil, ErrInvalidKernel
	}

	return w, nil
}

// weights fills dst (len = window) with the weight of every window
// slot for one query. dist is the signed query-to-node distance per
// slot, row-major [window][dims].
func (w *weighter) weights(dist, dst []float64) {
	switch w.kernel {
	case NearestNeighbor:
		dst[0] = 1

	case Linear, SmoothStep1, SmoothStep2:
		// Per-axis normalized distances to the first and last window
		// nodes; the clipped basis pair (1-t, t) per axis sums to 1.
		last := (w.window - 1) * w.dims
		for a := 0; a < w.dims; a++ {
			w.lower[a] = w.ease(dist[a] / w.dx[a])
			w.upper[a] = w.ease(-dist[last+a] / w.dx[a])
		}
		hyperCube(w.lower, w.upper, dst)

	case Gaussian:
		// Raw gaussian density per slot; the density does not sum to 1
		// over a finite window, so renormalize explicitly.
		for s := 0; s < w.window; s++ {
			p := 1.0
			for a := 0; a < w.dims; a++ {
				p *= w.norms[a].Prob(dist[s*w.dims+a])
			}
			dst[s] = p
		}
		floats.Scale(1/floats.Sum(dst), dst)
	}
}
