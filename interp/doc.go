// Package interp evaluates a gridded field at arbitrary off-grid
// points by blending a small neighborhood of lattice samples under a
// selectable weighting kernel.
//
// 🚀 What is interp?
//
//	Given a context grid (one value per channel per lattice node of a
//	rectilinear 1D–3D grid) and a set of query coordinates, interp
//	returns one interpolated value per channel per query. It is meant
//	for resampling coarse simulation or field data onto scattered
//	points for downstream numeric work.
//
// ✨ Key features:
//   - five kernels: NearestNeighbor, Linear, SmoothStep1 (C¹ cubic),
//     SmoothStep2 (C² quintic), Gaussian (5-node window per axis)
//   - exact recovery: the linear and smooth-step kernels reproduce the
//     stored value when queried exactly on an interior lattice node
//   - two gather strategies (choose via MemoryMode): LowMemory indexes
//     node by node, HighMemory broadcasts the lattice per query; both
//     produce identical numbers
//   - zero-fill border padding: queries up to half a window outside
//     the domain stay valid and blend toward zero at the edge
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/gridfield/interp"
//
//	spec := interp.GridSpec{
//	  {Min: 0, Max: 1, Resolution: 3}, // nodes at 0, 0.5, 1
//	}
//	ctx := mat.NewDense(1, 3, []float64{0, 10, 0}) // channels × nodes
//
//	opts := interp.DefaultOptions() // SmoothStep2, LowMemory
//	opts.Kernel = interp.Linear
//
//	out, err := interp.Interpolate([][]float64{{0.25}}, ctx, spec, &opts)
//	// out is queries × channels; out.At(0, 0) == 5
//
// Performance:
//
//   - Time:   O(queries · stride^dims · channels)
//   - Memory: O(queries · stride^dims · channels) gathered values;
//     HighMemory additionally materializes one lattice copy per query
//
// The computation is pure and call-scoped: concurrent Interpolate
// calls need no synchronization.
package interp
