package edit

import "errors"

var (
	// ErrInvalidEdit reports an edit that is malformed at construction
	// time (negative length, move destination inside its own source).
	ErrInvalidEdit = errors.New("invalid edit")

	// ErrOverlap reports two edits whose ranges interact in a way the
	// merge rules cannot reconcile. The whole batch is abandoned.
	ErrOverlap = errors.New("conflicting edits")

	// ErrOutOfRange reports an edit whose range exceeds the buffer it
	// is applied to.
	ErrOutOfRange = errors.New("edit out of range")
)
