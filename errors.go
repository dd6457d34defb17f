package pyrostex

import "errors"

// Error kinds reported by the sampling core. All failures are local and
// synchronous; wrap sites add coordinate or argument context with
// fmt.Errorf("...: %w", err) so callers can still match with errors.Is.
var (
	// ErrOutOfRange reports a coordinate outside the representation's
	// valid domain (grid, tile, or relative-coordinate bounds).
	ErrOutOfRange = errors.New("pyrostex: coordinate out of range")

	// ErrInvalidArgument reports degenerate input such as a zero
	// direction vector or a non-positive sample count.
	ErrInvalidArgument = errors.New("pyrostex: invalid argument")

	// ErrUnsupported reports an operation the representation does not
	// implement, such as vector lookup on a bare Field or sub-tile
	// extraction.
	ErrUnsupported = errors.New("pyrostex: operation not supported")

	// ErrInconsistent reports a violated field invariant, such as a
	// non-positive accumulated sum while smoothing. It indicates a
	// malformed field or caller misuse, not a transient condition.
	ErrInconsistent = errors.New("pyrostex: inconsistent field state")
)
