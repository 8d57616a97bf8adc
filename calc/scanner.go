// Package calc implements a structural linter for calc scripts: a
// comment- and string-aware keyword scanner, balance checkers for
// FIX/ENDFIX blocks and IF/ELSEIF/ELSE/ENDIF chains, and a detector
// for misplaced commas in argument lists.
package calc

import "strings"

// ScanState is the scan state that survives a line break. Carrying it
// explicitly lets a caller scan one line at a time and resume from any
// line boundary.
type ScanState struct {
	InComment bool
}

// Scan walks text once and returns every structural keyword found
// outside block comments and string literals, in document order.
// Unterminated comments and strings raise no error; the affected span
// is simply treated as non-code.
func Scan(text string) []Token {
	var tokens []Token
	var state ScanState
	for lineNo, line := range strings.Split(text, "\n") {
		tokens, state = ScanLine(tokens, line, lineNo, state)
	}
	return tokens
}

// keywords in match priority order. ELSEIF must stay ahead of ELSE and
// IF so that a loosened boundary check can never split it into two
// matches.
var keywords = []struct {
	text string
	kind TokenKind
}{
	{"ELSEIF", TokenElseif},
	{"ELSE", TokenElse},
	{"IF", TokenIf},
	{"ENDIF", TokenEndif},
	{"FIX", TokenFix},
	{"ENDFIX", TokenEndfix},
}

// ScanLine scans a single line, appending any tokens found to tokens,
// and returns the state to carry into the next line.
func ScanLine(tokens []Token, line string, lineNo int, state ScanState) ([]Token, ScanState) {
	i := 0
	for i < len(line) {
		if state.InComment {
			end := strings.Index(line[i:], "*/")
			if end < 0 {
				return tokens, state
			}
			state.InComment = false
			i += end + 2
			continue
		}
		if line[i] == '/' && i+1 < len(line) && line[i+1] == '*' {
			state.InComment = true
			i += 2
			continue
		}
		if line[i] == '"' {
			i = skipString(line, i+1)
			continue
		}
		if lexeme, kind, ok := matchKeyword(line, i); ok {
			tokens = append(tokens, Token{Kind: kind, Line: lineNo, Column: i, Lexeme: lexeme})
			i += len(lexeme)
			continue
		}
		i++
	}
	return tokens, state
}

// skipString consumes a double-quoted literal starting just past the
// opening quote and returns the position after the closing quote. A
// backslash consumes the following character unconditionally. An
// unterminated literal runs to the end of the line; escapes never span
// lines.
func skipString(line string, i int) int {
	for i < len(line) {
		switch line[i] {
		case '\\':
			i += 2
		case '"':
			return i + 1
		default:
			i++
		}
	}
	return len(line)
}

// matchKeyword reports whether a structural keyword starts at position
// i. Matching is case-insensitive with word boundaries on both sides,
// so PREFIX never matches FIX. The matched lexeme keeps the source
// casing.
func matchKeyword(line string, i int) (string, TokenKind, bool) {
	if i > 0 && isWordChar(line[i-1]) {
		return "", 0, false
	}
	for _, kw := range keywords {
		end := i + len(kw.text)
		if end > len(line) {
			continue
		}
		if !strings.EqualFold(line[i:end], kw.text) {
			continue
		}
		if end < len(line) && isWordChar(line[end]) {
			continue
		}
		return line[i:end], kw.kind, true
	}
	return "", 0, false
}

func isWordChar(ch byte) bool {
	return ch == '_' ||
		(ch >= '0' && ch <= '9') ||
		(ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z')
}
