package tessellate

import (
	"github.com/soypat/sdf"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/gridfield/interp"
)

// Rasterize evaluates a signed-distance model on every node of spec
// and returns a single-channel context grid (1 × spec.NodeCount(),
// nodes flattened row-major in axis order) ready for
// interp.Interpolate. Specs with fewer than three axes evaluate the
// model on the corresponding coordinate plane/line (missing
// coordinates are zero).
func Rasterize(model sdf.SDF3, spec interp.GridSpec) (*mat.Dense, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	dims := spec.Dims()
	dx := spec.Spacing()
	nodes := spec.NodeCount()

	vals := make([]float64, nodes)
	coord := make([]float64, 3)
	idx := make([]int, dims)
	for flat := 0; flat < nodes; flat++ {
		rem := flat
		for a := dims - 1; a >= 0; a-- {
			idx[a] = rem % spec[a].Resolution
			rem /= spec[a].Resolution
		}
		coord[0], coord[1], coord[2] = 0, 0, 0
		for a := 0; a < dims; a++ {
			coord[a] = spec[a].Min + float64(idx[a])*dx[a]
		}
		vals[flat] = model.Evaluate(r3.Vec{X: coord[0], Y: coord[1], Z: coord[2]})
	}

	return mat.NewDense(1, nodes, vals), nil
}

// GridSpecFromBounds builds a three-axis GridSpec covering an
// axis-aligned box at the given per-axis resolution.
func GridSpecFromBounds(b r3.Box, resolution int) (interp.GridSpec, error) {
	if resolution < 2 {
		return nil, ErrBadResolution
	}

	return interp.GridSpec{
		{Min: b.Min.X, Max: b.Max.X, Resolution: resolution},
		{Min: b.Min.Y, Max: b.Max.Y, Resolution: resolution},
		{Min: b.Min.Z, Max: b.Max.Z, Resolution: resolution},
	}, nil
}
