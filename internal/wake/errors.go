package wake

import "errors"

// Domain errors for solver operations.
var (
	// ErrNotConverged indicates a fixed-point iteration hit its iteration
	// ceiling or produced NaN before meeting tolerance. The momentum models
	// never return this themselves (the Converged flag is the in-band
	// signal); it exists for callers that need to escalate.
	ErrNotConverged = errors.New("wake: iteration did not converge")

	// ErrShapeMismatch indicates incompatible Field lengths that cannot be
	// reconciled by length-1 broadcasting.
	ErrShapeMismatch = errors.New("wake: field shape mismatch")
)
