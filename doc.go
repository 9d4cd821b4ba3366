// Package gridfield resamples continuous fields stored on rectilinear
// grids onto arbitrary scattered points.
//
// 🚀 What is gridfield?
//
//	A small numeric toolkit for moving field data between fixed grids
//	and point clouds:
//	  • interp/      — local-neighborhood grid interpolation (1D–3D),
//	    five weighting kernels, two gather strategies
//	  • tessellate/  — triangulated-surface point sampling and a thin
//	    wrapper over an external signed-distance-field model
//
// ✨ Why choose gridfield?
//
//   - Deterministic – no global state, no hidden randomness
//   - Exact at the lattice – interpolants reduce to the stored values
//     on grid nodes
//   - Tunable memory footprint – pick the gather strategy that fits
//     your budget without changing the numbers
//
// Start with interp.Interpolate; see each subpackage's doc.go for
// details and runnable examples.
package gridfield
