package tessellate

import "errors"

// Sentinel errors for surface sampling and rasterization.
var (
	// ErrNoTriangles indicates an empty triangle soup.
	ErrNoTriangles = errors.New("tessellate: surface must contain at least one triangle")
	// ErrBadSampleCount indicates a non-positive requested point count.
	ErrBadSampleCount = errors.New("tessellate: sample count must be positive")
	// ErrDegenerateSurface indicates the surface has zero total area.
	ErrDegenerateSurface = errors.New("tessellate: surface has zero total area")
	// ErrBadResolution indicates a grid resolution below two nodes per axis.
	ErrBadResolution = errors.New("tessellate: resolution must be at least 2")
)
