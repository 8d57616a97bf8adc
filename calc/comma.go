package calc

import "strings"

// CommaIssueKind classifies an anomalous comma.
type CommaIssueKind int

const (
	// CommaTrailing marks a comma directly before a closing paren or
	// bracket, with only whitespace or comments between.
	CommaTrailing CommaIssueKind = iota
	// CommaDouble marks a comma directly before another comma, with
	// only whitespace or comments between.
	CommaDouble
)

func (k CommaIssueKind) String() string {
	if k == CommaDouble {
		return "double"
	}
	return "trailing"
}

// CommaIssue is one anomalous comma occurrence. StartCol is inclusive,
// EndCol exclusive; both are zero-based columns on Line.
type CommaIssue struct {
	Kind     CommaIssueKind
	Line     int
	StartCol int
	EndCol   int
}

// FindCommaIssues scans text for trailing and duplicated commas. It
// works directly on the raw text, not the token stream, tracking the
// same comment and string state as Scan plus the current paren and
// bracket nesting depth. A comma at the end of a line is classified by
// looking ahead across subsequent lines for the first significant
// character, skipping whitespace and comments.
func FindCommaIssues(text string) []CommaIssue {
	lines := strings.Split(text, "\n")
	var issues []CommaIssue
	var state ScanState
	parens, brackets := 0, 0
	for lineNo, line := range lines {
		i := 0
		for i < len(line) {
			if state.InComment {
				end := strings.Index(line[i:], "*/")
				if end < 0 {
					i = len(line)
					break
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
			if escaped(line, i) {
				i++
				continue
			}
			switch line[i] {
			case '(':
				parens++
			case ')':
				if parens > 0 {
					parens--
				}
			case '[':
				brackets++
			case ']':
				if brackets > 0 {
					brackets--
				}
			case ',':
				if issue, ok := classifyComma(lines, lineNo, i, parens+brackets > 0); ok {
					issues = append(issues, issue)
				}
			}
			i++
		}
	}
	return issues
}

// classifyComma decides whether the comma at column col of line lineNo
// is anomalous. Same-line lookahead skips only whitespace; when the
// rest of the line is blank, lookahead continues on later lines,
// skipping comments as well, and the enclosure state decides which
// findings count.
func classifyComma(lines []string, lineNo, col int, enclosed bool) (CommaIssue, bool) {
	line := lines[lineNo]
	j := col + 1
	for j < len(line) && isBlank(line[j]) {
		j++
	}
	if j < len(line) {
		switch line[j] {
		case ',':
			return CommaIssue{Kind: CommaDouble, Line: lineNo, StartCol: col, EndCol: j + 1}, true
		case ')', ']':
			return CommaIssue{Kind: CommaTrailing, Line: lineNo, StartCol: col, EndCol: col + 1}, true
		}
		return CommaIssue{}, false
	}

	// The comma ends its line. The next significant character decides:
	// another comma is always a duplicate; a closing paren or bracket
	// is only an error inside an enclosure. A bare trailing comma at
	// the top level is a valid statement terminator and never flagged.
	ch, ok := firstSignificant(lines, lineNo+1)
	if !ok {
		return CommaIssue{}, false
	}
	if ch == ',' {
		return CommaIssue{Kind: CommaDouble, Line: lineNo, StartCol: col, EndCol: col + 1}, true
	}
	if enclosed && (ch == ')' || ch == ']') {
		return CommaIssue{Kind: CommaTrailing, Line: lineNo, StartCol: col, EndCol: col + 1}, true
	}
	return CommaIssue{}, false
}

// firstSignificant returns the first character at or after line lineNo
// that is neither whitespace nor part of a block comment. The comment
// skipping mirrors the main scan loop so that a commented-out closing
// bracket never triggers a false positive.
func firstSignificant(lines []string, lineNo int) (byte, bool) {
	var state ScanState
	for ; lineNo < len(lines); lineNo++ {
		line := lines[lineNo]
		i := 0
		for i < len(line) {
			if state.InComment {
				end := strings.Index(line[i:], "*/")
				if end < 0 {
					i = len(line)
					break
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
			if isBlank(line[i]) {
				i++
				continue
			}
			return line[i], true
		}
	}
	return 0, false
}

func isBlank(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r'
}

// escaped reports whether the character at position i is preceded by a
// backslash outside a string, in which case it does not affect the
// nesting depth.
func escaped(line string, i int) bool {
	return i > 0 && line[i-1] == '\\'
}
