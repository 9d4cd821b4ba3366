package interp

import "math"

// locator maps query coordinates to flat window indices on the padded
// lattice. One generalized strided-index routine covers every
// dimensionality: the per-axis arithmetic is driven by the padded
// shape's row-major stride vector, never by a branch per axis count.
type locator struct {
	dims      int
	stride    int       // window width per axis
	window    int       // stride^dims
	start     []float64 // padded lattice origin per axis
	dx        []float64
	rowStride []int // row-major flat stride per axis
	frac      float64
	offsets   []int // relative flat offsets of the window slots
}

// newLocator prepares index arithmetic for spec and a kernel stride.
// The window covers offsets [-((stride-1)/2), stride/2] per axis;
// frac = (stride/2) mod 1 resolves the parity difference between even
// strides (window symmetric around a lattice edge) and odd strides
// (window symmetric around a node).
func newLocator(spec GridSpec, stride int, paddedShape []int) *locator {
	dims := spec.Dims()
	k := stride / 2

	loc := &locator{
		dims:      dims,
		stride:    stride,
		window:    1,
		start:     make([]float64, dims),
		dx:        spec.Spacing(),
		rowStride: make([]int, dims),
		frac:      math.Mod(float64(stride)/2, 1),
	}
	for a, ax := range spec {
		loc.start[a] = ax.Min - float64(k)*loc.dx[a]
		loc.window *= stride
	}
	loc.rowStride[dims-1] = 1
	for a := dims - 2; a >= 0; a-- {
		loc.rowStride[a] = loc.rowStride[a+1] * paddedShape[a+1]
	}

	// Window offsets relative to the center node, enumerated row-major
	// so slot order matches the lattice flattening.
	lo := -((stride - 1) / 2)
	loc.offsets = make([]int, loc.window)
	for w := 0; w < loc.window; w++ {
		rem, off := w, 0
		for a := dims - 1; a >= 0; a-- {
			off += (lo + rem%stride) * loc.rowStride[a]
			rem /= stride
		}
		loc.offsets[w] = off
	}

	return loc
}

// windowIndices writes the flat padded-lattice indices of q's window
// into dst (len = locator.window). Queries within the nominal domain
// plus up to half a window of margin always land inside the padding;
// anything further out is a caller responsibility.
func (l *locator) windowIndices(q []float64, dst []int) {
	center := 0
	for a := 0; a < l.dims; a++ {
		ca := int(math.Floor((q[a]-l.start[a])/l.dx[a] + l.frac))
		center += ca * l.rowStride[a]
	}
	for w, off := range l.offsets {
		dst[w] = center + off
	}
}
