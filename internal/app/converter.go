// internal/app/converter.go
package app

import (
	"fmt"

	"github.com/bethropolis/templit/internal/buffer"
	"github.com/bethropolis/templit/internal/edit"
	"github.com/bethropolis/templit/internal/event"
	"github.com/bethropolis/templit/internal/logger"
	"github.com/bethropolis/templit/internal/scanner"
	"github.com/bethropolis/templit/internal/tui"
)

// Converter drives the scan/merge/apply loop over one buffer. The
// scanner emits at most one chain per line per pass, so lines holding
// several chains are finished by rescanning until a pass comes up
// empty.
type Converter struct {
	buf       buffer.Buffer
	events    *event.Manager
	maxPasses int
}

// NewConverter creates a Converter bound to a buffer.
func NewConverter(buf buffer.Buffer, events *event.Manager, maxPasses int) *Converter {
	return &Converter{
		buf:       buf,
		events:    events,
		maxPasses: maxPasses,
	}
}

// Convert runs scan passes until a pass finds nothing or the pass
// budget is exhausted.
func (c *Converter) Convert() error {
	totalMatches := 0
	passes := 0

	for passes < c.maxPasses {
		matches := scanner.Scan(c.buf.Lines())
		if len(matches) == 0 {
			break
		}
		passes++

		if err := c.applyMatches(passes, matches); err != nil {
			return err
		}
		totalMatches += len(matches)
	}

	c.events.Dispatch(event.TypeConvertDone, event.ConvertDoneData{
		Passes:  passes,
		Matches: totalMatches,
	})
	return nil
}

// ConvertInteractive runs a single scan pass, letting the user accept
// or skip each match on the preview screen before anything is applied.
func (c *Converter) ConvertInteractive(preview *tui.Preview) error {
	matches := scanner.Scan(c.buf.Lines())
	if len(matches) == 0 {
		c.events.Dispatch(event.TypeConvertDone, event.ConvertDoneData{})
		return nil
	}

	accepted, err := preview.Run(c.buf.Lines(), matches)
	if err != nil {
		return err
	}
	if len(accepted) > 0 {
		if err := c.applyMatches(1, accepted); err != nil {
			return err
		}
	}

	c.events.Dispatch(event.TypeConvertDone, event.ConvertDoneData{
		Passes:  1,
		Matches: len(accepted),
	})
	return nil
}

// applyMatches turns one pass worth of matches into Change edits and
// runs them through the merge/apply sequencer. The buffer is replaced
// in a single call once the whole batch has succeeded.
func (c *Converter) applyMatches(pass int, matches []scanner.Match) error {
	for _, m := range matches {
		c.events.Dispatch(event.TypeMatchFound, event.MatchFoundData{
			Line:        m.Line,
			Original:    m.Original,
			Replacement: m.Replacement,
		})
	}

	edits, err := scanner.Edits(c.buf.Lines(), matches)
	if err != nil {
		return fmt.Errorf("pass %d: building edits: %w", pass, err)
	}

	text, err := edit.MergeAndApply(string(c.buf.Bytes()), edits)
	if err != nil {
		return fmt.Errorf("pass %d: %w", pass, err)
	}

	c.buf.Replace([]byte(text))
	logger.DebugTagf("convert", "pass %d applied %d edit(s)", pass, len(edits))
	c.events.Dispatch(event.TypeEditApplied, event.EditAppliedData{Pass: pass, Edits: len(edits)})
	return nil
}
