// Package tessellate turns triangulated surfaces and signed-distance
// models into the point clouds and context grids consumed by
// gridfield/interp.
//
// 🚀 What is tessellate?
//
//	Three small collaborators around a geometry:
//	  • Sample     — area-weighted random points on a triangle soup,
//	    with unit surface normals and per-point area weights
//	  • Field      — a thin wrapper over an external signed-distance
//	    model (sdf.SDF3); all distance math is delegated, never
//	    reimplemented
//	  • Rasterize  — evaluates a signed-distance model on every node
//	    of an interp.GridSpec, producing a single-channel context grid
//	  • Normalize  — rescales a triangle soup into the centered unit
//	    cube, returning the mapping back to original coordinates
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/gridfield/tessellate"
//
//	pts, err := tessellate.Sample(tris, 4096, 42) // deterministic seed
//
//	field := tessellate.NewField(model)           // model is an sdf.SDF3
//	d := field.Distance(pts.Points[0])
//
//	spec, _ := tessellate.GridSpecFromBounds(field.Bounds(), 64)
//	ctx, _ := tessellate.Rasterize(model, spec)
//	out, _ := interp.Interpolate(queries, ctx, spec, nil)
//
// Sampling is deterministic for a given seed; distance evaluation is
// exactly as accurate as the wrapped model.
package tessellate
