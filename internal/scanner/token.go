// internal/scanner/token.go
package scanner

// tokenKind classifies line tokens just enough to spot concatenation
// chains. This is not a JavaScript lexer; anything it cannot use is
// tokOther and breaks a chain.
type tokenKind int

const (
	tokOther tokenKind = iota
	tokString           // quoted literal ('...' or "...")
	tokExpr             // identifier-ish expression term
	tokPlus             // a single binary '+'
)

// token is a classified span [start, end) of one line.
type token struct {
	kind    tokenKind
	start   int
	end     int
	content string // for tokString: inner content, quotes stripped
}

// exprByte reports bytes allowed inside an expression term outside of
// bracket groups.
func exprByte(b byte) bool {
	return b == '_' || b == '$' || b == '.' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func exprStartByte(b byte) bool {
	return b == '_' || b == '$' || b == '(' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// tokenizeLine splits one line into tokens, skipping whitespace.
func tokenizeLine(line []byte) []token {
	var tokens []token
	i := 0
	for i < len(line) {
		b := line[i]
		switch {
		case b == ' ' || b == '\t':
			i++
		case b == '\'' || b == '"':
			t, next, ok := lexQuoted(line, i)
			if !ok {
				// Unterminated literal: the rest of the line is unusable.
				tokens = append(tokens, token{kind: tokOther, start: i, end: len(line)})
				return tokens
			}
			tokens = append(tokens, t)
			i = next
		case b == '`':
			// Template literal already; skip it whole so its content
			// (dollars, quotes) can't fake a chain.
			next := skipBacktick(line, i)
			tokens = append(tokens, token{kind: tokOther, start: i, end: next})
			i = next
		case b == '+':
			if i+1 < len(line) && (line[i+1] == '+' || line[i+1] == '=') {
				tokens = append(tokens, token{kind: tokOther, start: i, end: i + 2})
				i += 2
			} else {
				tokens = append(tokens, token{kind: tokPlus, start: i, end: i + 1})
				i++
			}
		case exprStartByte(b):
			next := lexExpr(line, i)
			if next == i {
				// A bracket group we refuse to swallow; emit the
				// bracket itself and let its content tokenize.
				tokens = append(tokens, token{kind: tokOther, start: i, end: i + 1})
				i++
				break
			}
			tokens = append(tokens, token{kind: tokExpr, start: i, end: next})
			i = next
		default:
			tokens = append(tokens, token{kind: tokOther, start: i, end: i + 1})
			i++
		}
	}
	return tokens
}

// lexQuoted scans a single- or double-quoted literal starting at i.
// Returns the token, the index after the closing quote, and whether
// the literal terminated on this line.
func lexQuoted(line []byte, i int) (token, int, bool) {
	quote := line[i]
	j := i + 1
	var content []byte
	for j < len(line) {
		b := line[j]
		if b == '\\' && j+1 < len(line) {
			content = append(content, b, line[j+1])
			j += 2
			continue
		}
		if b == quote {
			return token{kind: tokString, start: i, end: j + 1, content: string(content)}, j + 1, true
		}
		content = append(content, b)
		j++
	}
	return token{}, 0, false
}

// skipBacktick advances past a backtick literal, or to end of line if
// it doesn't close here.
func skipBacktick(line []byte, i int) int {
	j := i + 1
	for j < len(line) {
		if line[j] == '\\' && j+1 < len(line) {
			j += 2
			continue
		}
		if line[j] == '`' {
			return j + 1
		}
		j++
	}
	return len(line)
}

// lexExpr scans an expression term: identifier characters with any
// directly attached balanced () and [] groups, e.g. foo.bar(x)[0].
// A group whose content itself looks like a concatenation chain is
// not swallowed, so the chain inside stays visible to the scanner;
// the surrounding call converts on a later pass, once the inside is a
// template literal.
func lexExpr(line []byte, i int) int {
	j := i
	for j < len(line) {
		b := line[j]
		if exprByte(b) {
			j++
			continue
		}
		if b == '(' || b == '[' {
			closed := skipBalanced(line, j)
			if closed == -1 {
				return j
			}
			if groupHasChain(line[j+1 : closed-1]) {
				return j
			}
			j = closed
			continue
		}
		break
	}
	return j
}

// groupHasChain is a rough signal that a bracket group contains a
// convertible chain: a quoted literal next to a plus somewhere inside.
func groupHasChain(inner []byte) bool {
	hasQuote, hasPlus := false, false
	for _, b := range inner {
		switch b {
		case '\'', '"':
			hasQuote = true
		case '+':
			hasPlus = true
		}
	}
	return hasQuote && hasPlus
}

// skipBalanced advances past a balanced bracket group starting at i,
// respecting nested groups and quoted sections. Returns -1 when the
// group doesn't close on this line.
func skipBalanced(line []byte, i int) int {
	open := line[i]
	var close byte = ')'
	if open == '[' {
		close = ']'
	}
	depth := 0
	j := i
	for j < len(line) {
		b := line[j]
		switch b {
		case '\'', '"':
			_, next, ok := lexQuoted(line, j)
			if !ok {
				return -1
			}
			j = next
			continue
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return j + 1
			}
		}
		j++
	}
	return -1
}
