package mandel

import "errors"

// Error kinds signalled by the core. All are recoverable; callers typically
// surface them to the user (or ignore the gesture) and retry with corrected
// input. They are returned wrapped with context, so match with errors.Is.
var (
	// ErrInvalidParameter rejects out-of-range view or renderer
	// parameters before any computation starts.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDegenerateSelection rejects a zero-area pixel selection; the
	// previous view state is retained.
	ErrDegenerateSelection = errors.New("degenerate selection")

	// ErrEmptyHistory signals a pop on an empty navigation history.
	ErrEmptyHistory = errors.New("empty history")
)
