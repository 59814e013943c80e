// internal/tui/preview.go
package tui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/bethropolis/templit/internal/event"
	"github.com/bethropolis/templit/internal/logger"
	"github.com/bethropolis/templit/internal/scanner"
)

// ErrCancelled is returned when the user quits the preview without
// confirming the batch.
var ErrCancelled = errors.New("preview cancelled")

// Preview presents scanner matches one at a time and collects the
// user's accept/skip decisions.
type Preview struct {
	tui    *TUI
	events *event.Manager
}

// NewPreview creates a Preview over an initialized screen.
func NewPreview(t *TUI, events *event.Manager) *Preview {
	return &Preview{tui: t, events: events}
}

// Run walks matches in order. Returns the accepted subset, or
// ErrCancelled when the user aborts the run.
func (p *Preview) Run(lines [][]byte, matches []scanner.Match) ([]scanner.Match, error) {
	accepted := make([]scanner.Match, 0, len(matches))

	for i := 0; i < len(matches); i++ {
		m := matches[i]
		p.draw(lines, m, i, len(matches))

		decided := false
		for !decided {
			ev := p.tui.PollEvent()
			keyEv, ok := ev.(*tcell.EventKey)
			if !ok {
				if _, resized := ev.(*tcell.EventResize); resized {
					p.draw(lines, m, i, len(matches))
				}
				continue
			}
			if p.events != nil {
				p.events.Dispatch(event.TypePreviewKey, event.PreviewKeyData{KeyEvent: keyEv})
			}

			switch {
			case keyEv.Key() == tcell.KeyEscape || keyEv.Key() == tcell.KeyCtrlC || keyEv.Rune() == 'q':
				return nil, ErrCancelled
			case keyEv.Key() == tcell.KeyEnter || keyEv.Rune() == 'y':
				accepted = append(accepted, m)
				decided = true
			case keyEv.Rune() == 'n':
				logger.DebugTagf("preview", "skipped match on line %d", m.Line+1)
				decided = true
			case keyEv.Rune() == 'a':
				accepted = append(accepted, matches[i:]...)
				return accepted, nil
			}
		}
	}
	return accepted, nil
}

// draw renders one pending conversion: the original line with the
// matched span highlighted, the converted line below it, and a key
// hint footer.
func (p *Preview) draw(lines [][]byte, m scanner.Match, index, total int) {
	p.tui.Clear()
	screen := p.tui.GetScreen()
	width, height := p.tui.Size()
	if width <= 0 || height < 6 {
		p.tui.Show()
		return
	}

	headerStyle := tcell.StyleDefault.Bold(true)
	matchStyle := tcell.StyleDefault.Foreground(tcell.ColorRed).Underline(true)
	newStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	hintStyle := tcell.StyleDefault.Reverse(true)

	header := fmt.Sprintf("templit preview - match %d/%d (line %d)", index+1, total, m.Line+1)
	drawText(screen, 0, 0, width, header, headerStyle)

	line := lines[m.Line]
	x := drawText(screen, 0, 2, width, "- "+string(line[:m.Start]), tcell.StyleDefault)
	x = drawText(screen, x, 2, width, m.Original, matchStyle)
	drawText(screen, x, 2, width, string(line[m.End:]), tcell.StyleDefault)

	converted := string(line[:m.Start]) + m.Replacement + string(line[m.End:])
	drawText(screen, 0, 3, width, "+ "+converted, newStyle)

	drawText(screen, 0, height-1, width, " [y]es  [n]o  [a]ll  [q]uit ", hintStyle)
	p.tui.Show()
}

// drawText emits a string at (x, y), advancing by grapheme cluster
// widths so wide characters occupy their real cells. Returns the x
// position after the last cell written.
func drawText(screen tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) int {
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		if x >= maxWidth {
			break
		}
		runes := gr.Runes()
		width := gr.Width()
		if len(runes) > 0 {
			screen.SetContent(x, y, runes[0], runes[1:], style)
		}
		x += width
	}
	return x
}
