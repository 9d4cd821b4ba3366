package tessellate

import (
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle is one face of a triangulated surface, vertices in
// counter-clockwise order when viewed from outside.
type Triangle [3]r3.Vec

// Area returns the triangle's area by Heron's formula.
func (t Triangle) Area() float64 {
	a := r3.Norm(r3.Sub(t[0], t[1]))
	b := r3.Norm(r3.Sub(t[1], t[2]))
	c := r3.Norm(r3.Sub(t[0], t[2]))
	s := (a + b + c) / 2

	return math.Sqrt(math.Max(0, s*(s-a)*(s-b)*(s-c)))
}

// Normal returns the triangle's unit normal, or the zero vector for a
// degenerate triangle.
func (t Triangle) Normal() r3.Vec {
	n := r3.Cross(r3.Sub(t[1], t[0]), r3.Sub(t[2], t[0]))
	if r3.Norm(n) == 0 {
		return r3.Vec{}
	}

	return r3.Unit(n)
}

// PointSample is a batch of surface points: positions, unit normals of
// the triangle each point lies on, and per-point area weights (the
// triangle's area split evenly across the points it received).
type PointSample struct {
	Points  []r3.Vec
	Normals []r3.Vec
	Areas   []float64
}

// Sample draws n random points on the surface. Triangles are selected
// with probability proportional to their area; within a triangle the
// point is uniform (square-root barycentric placement). Output order
// groups points by triangle index. Deterministic for a given seed.
func Sample(tris []Triangle, n int, seed int64) (PointSample, error) {
	if len(tris) == 0 {
		return PointSample{}, ErrNoTriangles
	}
	if n < 1 {
		return PointSample{}, ErrBadSampleCount
	}

	areas := make([]float64, len(tris))
	for i, tri := range tris {
		areas[i] = tri.Area()
	}
	total := floats.Sum(areas)
	if total <= 0 {
		return PointSample{}, ErrDegenerateSurface
	}

	// Cumulative areas for proportional triangle selection.
	cum := make([]float64, len(tris))
	run := 0.0
	for i, a := range areas {
		run += a
		cum[i] = run
	}

	rng := rand.New(rand.NewSource(seed))
	counts := make([]int, len(tris))
	for i := 0; i < n; i++ {
		counts[sort.SearchFloat64s(cum, rng.Float64()*total)]++
	}

	out := PointSample{
		Points:  make([]r3.Vec, 0, n),
		Normals: make([]r3.Vec, 0, n),
		Areas:   make([]float64, 0, n),
	}
	for ti, c := range counts {
		if c == 0 {
			continue
		}
		tri := tris[ti]
		normal := tri.Normal()
		weight := areas[ti] / float64(c)
		for j := 0; j < c; j++ {
			out.Points = append(out.Points, samplePoint(tri, rng))
			out.Normals = append(out.Normals, normal)
			out.Areas = append(out.Areas, weight)
		}
	}

	return out, nil
}

// Normalize rescales a triangle soup to fit inside the unit cube
// centered at the origin, preserving aspect ratio. It returns the
// rescaled copy together with the applied scale and the original
// center, so results map back via p = scaled/scale + center.
func Normalize(tris []Triangle) ([]Triangle, float64, r3.Vec, error) {
	if len(tris) == 0 {
		return nil, 0, r3.Vec{}, ErrNoTriangles
	}

	lo := tris[0][0]
	hi := tris[0][0]
	for _, tri := range tris {
		for _, v := range tri {
			lo = r3.Vec{X: math.Min(lo.X, v.X), Y: math.Min(lo.Y, v.Y), Z: math.Min(lo.Z, v.Z)}
			hi = r3.Vec{X: math.Max(hi.X, v.X), Y: math.Max(hi.Y, v.Y), Z: math.Max(hi.Z, v.Z)}
		}
	}

	center := r3.Scale(0.5, r3.Add(lo, hi))
	extent := math.Max(hi.X-lo.X, math.Max(hi.Y-lo.Y, hi.Z-lo.Z))
	scale := 1.0
	if extent > 0 {
		scale = 1 / extent
	}

	out := make([]Triangle, len(tris))
	for i, tri := range tris {
		for v := range tri {
			out[i][v] = r3.Scale(scale, r3.Sub(tri[v], center))
		}
	}

	return out, scale, center, nil
}

// samplePoint places one uniform random point inside tri using
// square-root barycentric coordinates.
func samplePoint(tri Triangle, rng *rand.Rand) r3.Vec {
	s1 := math.Sqrt(rng.Float64())
	r2 := rng.Float64()

	alpha := 1 - s1
	beta := (1 - r2) * s1
	gamma := r2 * s1

	p := r3.Scale(alpha, tri[0])
	p = r3.Add(p, r3.Scale(beta, tri[1]))

	return r3.Add(p, r3.Scale(gamma, tri[2]))
}
