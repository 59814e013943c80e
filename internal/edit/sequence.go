// internal/edit/sequence.go
package edit

import (
	"fmt"

	"github.com/bethropolis/templit/internal/logger"
)

// MergeAndApply applies edits to text one at a time, in order. After
// each application every not-yet-applied edit is merged against the
// one just applied, keeping its coordinates valid for the new buffer
// state. The first conflict or range error aborts the batch; edits
// already applied are not rolled back.
//
// Quadratic in the number of edits, which stays in the low tens per
// batch.
func MergeAndApply(text string, edits []*Edit) (string, error) {
	for i, e := range edits {
		out, err := e.Apply(text)
		if err != nil {
			return "", fmt.Errorf("applying edit %d: %w", i, err)
		}
		text = out

		for _, pending := range edits[i+1:] {
			if err := pending.Merge(e); err != nil {
				logger.DebugTagf("edit", "merge failed: pending %s vs applied %s", pending, e)
				return "", fmt.Errorf("merging edit %d: %w", i, err)
			}
		}
	}
	return text, nil
}
