// internal/scanner/scanner.go
//
// Line-oriented scanner locating string concatenation chains like
//
//	'foo' + bar + 'baz'
//
// and proposing their template-literal form `foo${bar}baz`. It emits
// at most one match per line per pass, in ascending offset order, as
// Change edits in original-buffer coordinates. It never emits Move
// edits.
package scanner

import (
	"strings"

	"github.com/bethropolis/templit/internal/edit"
	"github.com/bethropolis/templit/internal/logger"
)

// Match describes one concatenation chain found in the buffer.
type Match struct {
	Line        int    // zero-based line index
	Start       int    // byte offset of the chain within the line
	End         int    // exclusive byte offset of the chain's end
	Original    string // the matched source text
	Replacement string // the template literal replacing it
}

// ScanLine finds the first convertible concatenation chain on one
// line. Returns nil when the line has none.
func ScanLine(lineIndex int, line []byte) *Match {
	tokens := tokenizeLine(line)

	for from := 0; from < len(tokens); {
		lo, hi, ok := findChain(tokens, from)
		if !ok {
			return nil
		}
		run := tokens[lo : hi+1]
		if !convertible(run) || splitsCall(tokens, hi, line) {
			from = hi + 1
			continue
		}

		start := tokens[lo].start
		end := tokens[hi].end
		return &Match{
			Line:        lineIndex,
			Start:       start,
			End:         end,
			Original:    string(line[start:end]),
			Replacement: buildTemplate(run, line),
		}
	}
	return nil
}

// Scan walks all lines and collects at most one match per line. The
// result is ordered by line, so edits derived from it are in ascending
// start order.
func Scan(lines [][]byte) []Match {
	var matches []Match
	for i, line := range lines {
		if m := ScanLine(i, line); m != nil {
			logger.DebugTagf("scan", "line %d: %q -> %q", i+1, m.Original, m.Replacement)
			matches = append(matches, *m)
		}
	}
	return matches
}

// Edits converts matches into Change edits in whole-buffer byte
// coordinates (lines joined by single '\n').
func Edits(lines [][]byte, matches []Match) ([]*edit.Edit, error) {
	lineBase := make([]int, len(lines))
	offset := 0
	for i, line := range lines {
		lineBase[i] = offset
		offset += len(line) + 1
	}

	edits := make([]*edit.Edit, 0, len(matches))
	for _, m := range matches {
		start := lineBase[m.Line] + m.Start
		e, err := edit.NewChange(start, m.End-m.Start, m.Replacement)
		if err != nil {
			return nil, err
		}
		edits = append(edits, e)
	}
	return edits, nil
}

// findChain locates the next maximal alternating run
// term (+ term)+ containing a string literal, starting the search at
// token index from. Returns the inclusive token bounds of the run.
func findChain(tokens []token, from int) (int, int, bool) {
	for s := from; s < len(tokens); s++ {
		if tokens[s].kind != tokString {
			continue
		}
		lo, hi := s, s
		for lo-2 >= 0 && tokens[lo-1].kind == tokPlus && isTerm(tokens[lo-2]) {
			lo -= 2
		}
		for hi+2 < len(tokens) && tokens[hi+1].kind == tokPlus && isTerm(tokens[hi+2]) {
			hi += 2
		}
		if hi > lo {
			return lo, hi, true
		}
		// Lone literal; keep looking past it.
	}
	return 0, 0, false
}

func isTerm(t token) bool {
	return t.kind == tokString || t.kind == tokExpr
}

// splitsCall reports whether the run's last term is an expression with
// a bracket group glued to it that the tokenizer refused to swallow
// (it contains a chain of its own). Converting such a run would tear a
// call apart; the inner chain converts first and the outer one follows
// on a later pass.
func splitsCall(tokens []token, hi int, line []byte) bool {
	if tokens[hi].kind != tokExpr || hi+1 >= len(tokens) {
		return false
	}
	next := tokens[hi+1]
	if next.start != tokens[hi].end {
		return false
	}
	return line[next.start] == '(' || line[next.start] == '['
}

// convertible requires at least one literal and at least one
// expression term: a chain of plain literals is left alone, and a
// chain of plain expressions is arithmetic as far as we know.
func convertible(run []token) bool {
	hasString, hasExpr := false, false
	for i := 0; i < len(run); i += 2 {
		switch run[i].kind {
		case tokString:
			hasString = true
		case tokExpr:
			hasExpr = true
		}
	}
	return hasString && hasExpr
}

// buildTemplate renders the chain as a template literal. Literal terms
// contribute their content with backtick and dollar escaped; other
// terms become ${expr} interpolations.
func buildTemplate(run []token, line []byte) string {
	var b strings.Builder
	b.WriteByte('`')
	for i := 0; i < len(run); i += 2 {
		t := run[i]
		if t.kind == tokString {
			b.WriteString(escapeContent(t.content))
		} else {
			b.WriteString("${")
			b.Write(line[t.start:t.end])
			b.WriteByte('}')
		}
	}
	b.WriteByte('`')
	return b.String()
}

// escapeContent rewrites a quoted literal's inner text for use inside
// a template literal: backtick and dollar gain a backslash, quote
// escapes lose theirs, everything else passes through.
func escapeContent(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) {
			next := s[i+1]
			if next == '\'' || next == '"' {
				b.WriteByte(next)
			} else {
				b.WriteByte(c)
				b.WriteByte(next)
			}
			i++
			continue
		}
		if c == '`' || c == '$' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}
