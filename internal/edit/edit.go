// internal/edit/edit.go
package edit

import (
	"fmt"
)

// Kind discriminates the two edit variants.
type Kind int

const (
	// KindChange replaces a range with new text (insert, delete, replace).
	KindChange Kind = iota
	// KindMove relocates a range to another offset without altering it.
	KindMove
)

func (k Kind) String() string {
	switch k {
	case KindChange:
		return "change"
	case KindMove:
		return "move"
	default:
		return "unknown"
	}
}

// Edit is a pending modification of a text buffer. Its range is the
// half-open interval [Start, Start+Length) in *current* buffer
// coordinates: Merge rewrites Start (and Dest for moves) as earlier
// edits are applied, so that Apply stays correct against the mutated
// buffer. An Edit belongs to exactly one batch; it is discarded once
// applied.
type Edit struct {
	Kind   Kind
	Start  int
	Length int

	// Replacement is the text substituted for the range (KindChange only).
	Replacement string

	// Dest is the offset the range is relocated to (KindMove only).
	// It must not fall strictly inside the source range.
	Dest int
}

// NewChange builds a Change edit replacing [start, start+length) with
// replacement. length==0 is an insert, replacement=="" a delete.
func NewChange(start, length int, replacement string) (*Edit, error) {
	if start < 0 {
		return nil, fmt.Errorf("%w: negative start %d", ErrInvalidEdit, start)
	}
	if length < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrInvalidEdit, length)
	}
	return &Edit{Kind: KindChange, Start: start, Length: length, Replacement: replacement}, nil
}

// NewMove builds a Move edit relocating [start, start+length) to dest.
func NewMove(start, length, dest int) (*Edit, error) {
	if start < 0 {
		return nil, fmt.Errorf("%w: negative start %d", ErrInvalidEdit, start)
	}
	if length < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrInvalidEdit, length)
	}
	if dest < 0 {
		return nil, fmt.Errorf("%w: negative destination %d", ErrInvalidEdit, dest)
	}
	if dest > start && dest < start+length {
		return nil, fmt.Errorf("%w: destination %d inside moved range [%d,%d)", ErrInvalidEdit, dest, start, start+length)
	}
	return &Edit{Kind: KindMove, Start: start, Length: length, Dest: dest}, nil
}

// End returns the exclusive end of the edit's range.
func (e *Edit) End() int {
	return e.Start + e.Length
}

// addedLength is the net length change a Change edit introduces.
func (e *Edit) addedLength() int {
	return len(e.Replacement) - e.Length
}

// addedIndex is the signed displacement a Move edit applies to the
// moved content.
func (e *Edit) addedIndex() int {
	return e.Dest - e.Start
}

// Before reports whether e's range lies entirely before other's.
// Touching ranges count as before.
func (e *Edit) Before(other *Edit) bool {
	return e.End() <= other.Start
}

// After reports whether e's range lies entirely after other's.
func (e *Edit) After(other *Edit) bool {
	return e.Start >= other.End()
}

// Intersects reports whether the ranges strictly overlap. Touching
// ranges do not intersect.
func (e *Edit) Intersects(other *Edit) bool {
	return other.Start < e.End() && other.End() > e.Start
}

// Contains reports whether e's range fully covers other's.
func (e *Edit) Contains(other *Edit) bool {
	return e.Start <= other.Start && e.End() >= other.End()
}

// Inside reports whether e's range is fully covered by other's.
func (e *Edit) Inside(other *Edit) bool {
	return other.Contains(e)
}

func (e *Edit) String() string {
	if e.Kind == KindMove {
		return fmt.Sprintf("move[%d,%d)->%d", e.Start, e.End(), e.Dest)
	}
	return fmt.Sprintf("change[%d,%d)+%dch", e.Start, e.End(), len(e.Replacement))
}

// Apply performs the edit against text and returns the new text. The
// edit's coordinates must already be valid for text (see Merge).
func (e *Edit) Apply(text string) (string, error) {
	switch e.Kind {
	case KindMove:
		return e.applyMove(text)
	default:
		return e.applyChange(text)
	}
}

func (e *Edit) applyChange(text string) (string, error) {
	if e.End() > len(text) {
		return "", fmt.Errorf("%w: %s exceeds buffer length %d", ErrOutOfRange, e, len(text))
	}
	return text[:e.Start] + e.Replacement + text[e.End():], nil
}

func (e *Edit) applyMove(text string) (string, error) {
	if e.End() > len(text) || e.Dest > len(text) {
		return "", fmt.Errorf("%w: %s exceeds buffer length %d", ErrOutOfRange, e, len(text))
	}
	moved := text[e.Start:e.End()]
	rest := text[:e.Start] + text[e.End():]

	// Removing the source range shifts everything after it back by
	// Length, so a destination past the source must shift with it.
	dest := e.Dest
	if e.Start < e.Dest {
		dest -= e.Length
	}
	return rest[:dest] + moved + rest[dest:], nil
}
