package calc

import "strings"

// RuleID identifies one lint rule.
type RuleID string

const (
	RuleFixBalance RuleID = "fixBalance"
	RuleIfBalance  RuleID = "ifBalance"
	RuleCommas     RuleID = "commaPlacement"
)

// RuleOptions overrides one rule's defaults. A nil Enabled keeps the
// rule enabled; an empty or unrecognized Severity keeps the default.
type RuleOptions struct {
	Enabled  *bool
	Severity Severity
}

// Options maps rule IDs to their overrides. Entries for unknown rule
// IDs are ignored.
type Options map[RuleID]RuleOptions

// rule is one registered check. Exactly one of the two check functions
// is set: token rules consume the scanner's token stream, text rules
// work on the raw document. The rule set is closed; there is no
// runtime registration.
type rule struct {
	id              RuleID
	defaultSeverity Severity
	tokens          func([]Token) []Diagnostic
	text            func(string) []Diagnostic
}

var rules = []rule{
	{id: RuleFixBalance, defaultSeverity: SeverityError, tokens: CheckFixBlocks},
	{id: RuleIfBalance, defaultSeverity: SeverityError, tokens: CheckIfChains},
	{id: RuleCommas, defaultSeverity: SeverityWarning, text: checkCommas},
}

// Lint scans text once and runs every enabled rule over it, returning
// the concatenated diagnostics in rule order. It is total over
// arbitrary text: malformed input produces diagnostics, never an
// error, and malformed options fall back to the rule's defaults.
func Lint(text string, opts Options) []Diagnostic {
	tokens := Scan(text)
	var diags []Diagnostic
	for _, r := range rules {
		o := opts[r.id]
		if o.Enabled != nil && !*o.Enabled {
			continue
		}
		severity := r.defaultSeverity
		switch o.Severity {
		case SeverityError, SeverityWarning, SeverityInfo:
			severity = o.Severity
		}
		var found []Diagnostic
		if r.tokens != nil {
			found = r.tokens(tokens)
		} else {
			found = r.text(text)
		}
		for i := range found {
			found[i].Severity = severity
		}
		diags = append(diags, found...)
	}
	return diags
}

// checkCommas adapts the comma detector's issues to diagnostics.
func checkCommas(text string) []Diagnostic {
	var diags []Diagnostic
	for _, issue := range FindCommaIssues(text) {
		code, message := CodeTrailingComma, "comma closes the list with no element after it"
		if issue.Kind == CommaDouble {
			code, message = CodeDuplicateComma, "duplicate comma with no element between"
		}
		diags = append(diags, Diagnostic{
			Code:    code,
			Message: message,
			Start:   Position{Line: issue.Line, Character: issue.StartCol},
			End:     Position{Line: issue.Line, Character: issue.EndCol},
		})
	}
	return diags
}

// Insertion is a single text insertion at the start of a line.
type Insertion struct {
	Line int
	Text string
}

// ClosingKeywordFor maps a missing-close diagnostic code to the
// keyword that repairs it.
func ClosingKeywordFor(code string) (string, bool) {
	switch code {
	case CodeMissingEndfix:
		return "ENDFIX", true
	case CodeMissingEndif:
		return "ENDIF", true
	}
	return "", false
}

// FixForDiagnostic returns the insertion that repairs a missing-close
// diagnostic: the matching closing keyword on the line after the
// unmatched opening token, reusing that line's leading whitespace,
// followed by a newline. ok is false for diagnostics that have no
// auto-fix.
func FixForDiagnostic(text string, d Diagnostic) (Insertion, bool) {
	keyword, ok := ClosingKeywordFor(d.Code)
	if !ok {
		return Insertion{}, false
	}
	indent := ""
	lines := strings.Split(text, "\n")
	if d.Start.Line >= 0 && d.Start.Line < len(lines) {
		indent = leadingWhitespace(lines[d.Start.Line])
	}
	return Insertion{Line: d.Start.Line + 1, Text: indent + keyword + "\n"}, true
}

func leadingWhitespace(line string) string {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			return line[:i]
		}
	}
	return line
}
