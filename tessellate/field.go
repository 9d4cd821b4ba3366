package tessellate

import (
	"github.com/soypat/sdf"
	"gonum.org/v1/gonum/spatial/r3"
)

// Field wraps an external signed-distance model. It never computes
// distances itself: every query delegates to the wrapped sdf.SDF3
// (negative inside, zero on the surface, positive outside).
type Field struct {
	model sdf.SDF3
}

// NewField wraps model.
func NewField(model sdf.SDF3) *Field {
	return &Field{model: model}
}

// Bounds returns the wrapped model's axis-aligned bounding box.
func (f *Field) Bounds() r3.Box { return f.model.Bounds() }

// Distance returns the signed distance at p.
func (f *Field) Distance(p r3.Vec) float64 { return f.model.Evaluate(p) }

// Distances evaluates the signed distance at every point, preserving
// input order.
func (f *Field) Distances(pts []r3.Vec) []float64 {
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = f.model.Evaluate(p)
	}

	return out
}

// Gradient returns the unit direction of steepest distance increase at
// p, estimated by central differences with step eps. Returns the zero
// vector where the numeric gradient vanishes (e.g. at a medial point).
func (f *Field) Gradient(p r3.Vec, eps float64) r3.Vec {
	ex := r3.Vec{X: eps}
	ey := r3.Vec{Y: eps}
	ez := r3.Vec{Z: eps}

	g := r3.Vec{
		X: f.model.Evaluate(r3.Add(p, ex)) - f.model.Evaluate(r3.Sub(p, ex)),
		Y: f.model.Evaluate(r3.Add(p, ey)) - f.model.Evaluate(r3.Sub(p, ey)),
		Z: f.model.Evaluate(r3.Add(p, ez)) - f.model.Evaluate(r3.Sub(p, ez)),
	}
	if r3.Norm(g) == 0 {
		return r3.Vec{}
	}

	return r3.Unit(g)
}
