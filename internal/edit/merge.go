// internal/edit/merge.go
package edit

import "fmt"

// Merge rewrites e's coordinates to stay valid after applied has been
// performed on the buffer. Both edits must originally have been
// expressed against the same buffer state. The rules are pure offset
// arithmetic: no text is inspected, only how removing, inserting or
// relocating a block of known size at a known position displaces a
// range defined against the same original buffer.
func (e *Edit) Merge(applied *Edit) error {
	if applied.Kind == KindMove {
		if e.Kind == KindMove {
			return e.mergeMoveAfterMove(applied)
		}
		return e.mergeChangeAfterMove(applied)
	}
	if e.Kind == KindMove {
		return e.mergeMoveAfterChange(applied)
	}
	return e.mergeChangeAfterChange(applied)
}

// mergeChangeAfterChange: a pending Change follows an applied Change.
// Disjoint ranges shift (or don't); any overlap is unresolvable.
func (e *Edit) mergeChangeAfterChange(applied *Edit) error {
	switch {
	case e.After(applied):
		e.Start += applied.addedLength()
	case e.Before(applied):
		// Unaffected.
	default:
		return fmt.Errorf("%w: %s overlaps applied %s", ErrOverlap, e, applied)
	}
	return nil
}

// mergeChangeAfterMove: a pending Change follows an applied Move. A
// Change wholly inside the moved block travels with it; one straddling
// the block boundary cannot be repositioned.
func (e *Edit) mergeChangeAfterMove(applied *Edit) error {
	if e.Intersects(applied) {
		if !e.Inside(applied) {
			return fmt.Errorf("%w: %s straddles applied %s", ErrOverlap, e, applied)
		}
		e.Start += applied.addedIndex()
		return nil
	}

	// Outside the moved block: the block's removal at Start and
	// reinsertion at Dest shift only the text between the two.
	if e.Start <= applied.Start {
		if e.Start > applied.Dest {
			e.Start += applied.Length
		}
	} else {
		if e.Start < applied.Dest {
			e.Start -= applied.Length
		}
	}
	return nil
}

// mergeMoveAfterChange: a pending Move follows an applied Change. The
// Move must cover the whole changed range or avoid it entirely, and
// its destination must not point into the replaced text.
func (e *Edit) mergeMoveAfterChange(applied *Edit) error {
	if e.Intersects(applied) && !e.Contains(applied) {
		return fmt.Errorf("%w: %s partially overlaps applied %s", ErrOverlap, e, applied)
	}
	if e.Dest > applied.Start && e.Dest < applied.End() {
		return fmt.Errorf("%w: %s destination inside applied %s", ErrOverlap, e, applied)
	}
	if e.Start >= applied.Start {
		e.Start += applied.addedLength()
	}
	if e.Dest >= applied.Start {
		e.Dest += applied.addedLength()
	}
	return nil
}

// mergeMoveAfterMove: a pending Move follows an applied Move. The
// ranges must be disjoint; the shift mirrors mergeChangeAfterChange
// but uses the moved block's full length, a relocation being
// length-neutral overall.
func (e *Edit) mergeMoveAfterMove(applied *Edit) error {
	if e.Intersects(applied) {
		return fmt.Errorf("%w: %s overlaps applied %s", ErrOverlap, e, applied)
	}
	if e.Start <= applied.Start {
		if e.Start > applied.Dest {
			e.Start += applied.Length
		}
	} else {
		if e.Start < applied.Dest {
			e.Start -= applied.Length
		}
	}
	return nil
}
