package interp

import "errors"

// Sentinel errors for interpolation operations. All are precondition
// failures detected before any computation; a failing call fails
// identically on retry, so callers must fix inputs rather than retry.
var (
	// ErrInvalidKernel indicates an unrecognized kernel selector.
	ErrInvalidKernel = errors.New("interp: invalid kernel type")
	// ErrInvalidMemoryMode indicates an unrecognized gather strategy selector.
	ErrInvalidMemoryMode = errors.New("interp: invalid memory mode")
	// ErrUnsupportedDimension indicates a grid spec with other than 1–3 axes.
	ErrUnsupportedDimension = errors.New("interp: grid spec must have between one and three axes")
	// ErrInvalidAxis indicates an axis with non-finite bounds, max ≤ min,
	// or fewer than two nodes.
	ErrInvalidAxis = errors.New("interp: axis must be finite with max > min and resolution >= 2")
	// ErrShapeMismatch indicates a context grid or query set inconsistent
	// with the grid spec.
	ErrShapeMismatch = errors.New("interp: context grid or query shape does not match grid spec")
)
