// Package interp core types: axis/grid specifications, kernel and
// memory-mode enums, and call options.
package interp

import "math"

// AxisSpec describes one rectilinear axis: Resolution uniformly spaced
// nodes covering [Min, Max] inclusive.
type AxisSpec struct {
	Min        float64
	Max        float64
	Resolution int
}

// Spacing returns the node spacing (Max-Min)/(Resolution-1).
func (a AxisSpec) Spacing() float64 {
	return (a.Max - a.Min) / float64(a.Resolution-1)
}

// validate reports ErrInvalidAxis for non-finite bounds, Max ≤ Min, or
// fewer than two nodes.
func (a AxisSpec) validate() error {
	if math.IsNaN(a.Min) || math.IsInf(a.Min, 0) ||
		math.IsNaN(a.Max) || math.IsInf(a.Max, 0) {
		return ErrInvalidAxis
	}
	if a.Max <= a.Min || a.Resolution < 2 {
		return ErrInvalidAxis
	}

	return nil
}

// GridSpec is an ordered sequence of 1–3 axes. Axis order is
// significant: it defines the row-major flattening of the context
// grid, with the first axis varying slowest.
type GridSpec []AxisSpec

// Dims returns the number of axes.
func (g GridSpec) Dims() int { return len(g) }

// NodeCount returns the total number of lattice nodes, the product of
// the per-axis resolutions.
func (g GridSpec) NodeCount() int {
	n := 1
	for _, a := range g {
		n *= a.Resolution
	}

	return n
}

// Spacing returns the per-axis node spacing vector.
func (g GridSpec) Spacing() []float64 {
	dx := make([]float64, len(g))
	for i, a := range g {
		dx[i] = a.Spacing()
	}

	return dx
}

// Validate reports ErrUnsupportedDimension unless the spec has 1–3
// axes, and ErrInvalidAxis if any axis is malformed.
func (g GridSpec) Validate() error {
	if len(g) < 1 || len(g) > 3 {
		return ErrUnsupportedDimension
	}
	for _, a := range g {
		if err := a.validate(); err != nil {
			return err
		}
	}

	return nil
}

// KernelType selects the weighting kernel. Each kernel has a fixed
// window width per axis (its stride); the window holds stride^dims
// lattice nodes.
type KernelType int

const (
	// NearestNeighbor copies the value of the single closest node. Stride 1.
	NearestNeighbor KernelType = iota
	// Linear blends the 2^dims surrounding cell corners with linear
	// basis weights. Stride 2.
	Linear
	// SmoothStep1 is Linear with each per-axis factor passed through the
	// C¹ cubic ease 3x²-2x³. Stride 2.
	SmoothStep1
	// SmoothStep2 is Linear with each per-axis factor passed through the
	// C² quintic ease x³(6x²-15x+10). Stride 2.
	SmoothStep2
	// Gaussian weights a 5-node-per-axis window by an isotropic gaussian
	// density (σ = dx/2), renormalized over the window. Stride 5.
	Gaussian
)

// Stride returns the window width per axis for the kernel, or 0 for an
// unrecognized kernel.
func (k KernelType) Stride() int {
	switch k {
	case NearestNeighbor:
		return 1
	case Linear, SmoothStep1, SmoothStep2:
		return 2
	case Gaussian:
		return 5
	default:
		return 0
	}
}

// String returns the canonical kernel name.
func (k KernelType) String() string {
	switch k {
	case NearestNeighbor:
		return "nearest_neighbor"
	case Linear:
		return "linear"
	case SmoothStep1:
		return "smooth_step_1"
	case SmoothStep2:
		return "smooth_step_2"
	case Gaussian:
		return "gaussian"
	default:
		return "unknown"
	}
}

// MemoryMode selects how neighbor values are gathered. Both modes
// produce identical numeric results; they differ only in intermediate
// memory footprint and speed.
//
//   - LowMemory  — one flat (query, node) index list, one lookup per
//     pair. Smallest peak memory.
//   - HighMemory — the full lattice/grid is broadcast against all
//     queries before indexing. Larger intermediates, fewer per-pair
//     lookups.
type MemoryMode int

const (
	// LowMemory gathers through a flat pair list. Default.
	LowMemory MemoryMode = iota
	// HighMemory broadcasts the source array per query before indexing.
	HighMemory
)

// Options configures a single Interpolate call.
//
// Fields:
//   - Kernel — weighting kernel (default SmoothStep2).
//   - Memory — gather strategy (default LowMemory). Purely a
//     performance knob; it never changes output values.
type Options struct {
	Kernel KernelType
	Memory MemoryMode
}

// DefaultOptions returns the documented defaults: SmoothStep2 kernel,
// LowMemory gathering.
func DefaultOptions() Options {
	return Options{
		Kernel: SmoothStep2,
		Memory: LowMemory,
	}
}
