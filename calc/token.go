package calc

// TokenKind identifies one of the six structural keywords of the calc
// script dialect.
type TokenKind int

const (
	TokenFix TokenKind = iota
	TokenEndfix
	TokenIf
	TokenElseif
	TokenElse
	TokenEndif
)

func (k TokenKind) String() string {
	switch k {
	case TokenFix:
		return "FIX"
	case TokenEndfix:
		return "ENDFIX"
	case TokenIf:
		return "IF"
	case TokenElseif:
		return "ELSEIF"
	case TokenElse:
		return "ELSE"
	case TokenEndif:
		return "ENDIF"
	}
	return "UNKNOWN"
}

// Token is one structural keyword occurrence. Line and Column are
// zero-based and point at the first character of the match. Lexeme is
// the exact source substring, preserving the original casing.
type Token struct {
	Kind   TokenKind
	Line   int
	Column int
	Lexeme string
}

// Position is a zero-based line/character location in the document.
type Position struct {
	Line      int
	Character int
}

// Severity classifies how a diagnostic should be presented.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Diagnostic is one reported problem. Start and End form a half-open
// range in zero-based line/character coordinates.
type Diagnostic struct {
	Code     string
	Message  string
	Severity Severity
	Start    Position
	End      Position
}

// Diagnostic codes produced by the rules in this package.
const (
	CodeMissingEndfix    = "missingEndfix"
	CodeUnmatchedEndfix  = "unmatchedEndfix"
	CodeMissingEndif     = "missingEndif"
	CodeUnmatchedEndif   = "unmatchedEndif"
	CodeUnexpectedElseif = "unexpectedElseif"
	CodeUnexpectedElse   = "unexpectedElse"
	CodeDuplicateElse    = "duplicateElse"
	CodeTrailingComma    = "trailingComma"
	CodeDuplicateComma   = "duplicateComma"
)
