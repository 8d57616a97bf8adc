package calc

// CheckFixBlocks verifies that FIX and ENDFIX occurrences balance.
// Matching is pure LIFO counting: an ENDFIX closes the most recently
// opened FIX regardless of what lies between them. Nesting order is
// not validated beyond depth.
func CheckFixBlocks(tokens []Token) []Diagnostic {
	var diags []Diagnostic
	var open []Token
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenFix:
			open = append(open, tok)
		case TokenEndfix:
			if len(open) == 0 {
				diags = append(diags, diagAt(tok, CodeUnmatchedEndfix, "ENDFIX without a matching FIX"))
			} else {
				open = open[:len(open)-1]
			}
		}
	}
	for _, tok := range open {
		diags = append(diags, diagAt(tok, CodeMissingEndfix, "FIX without a matching ENDFIX"))
	}
	return diags
}

type condFrame struct {
	open     Token
	elseSeen bool
}

// CheckIfChains verifies IF/ELSEIF/ELSE/ENDIF chains: every IF needs
// an ENDIF, branch keywords need an enclosing IF, and a chain carries
// at most one ELSE. ELSEIF is permitted anywhere inside a chain,
// including after an ELSE.
func CheckIfChains(tokens []Token) []Diagnostic {
	var diags []Diagnostic
	var stack []condFrame
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenIf:
			stack = append(stack, condFrame{open: tok})
		case TokenElseif:
			if len(stack) == 0 {
				diags = append(diags, diagAt(tok, CodeUnexpectedElseif, "ELSEIF outside of an IF block"))
			}
		case TokenElse:
			if len(stack) == 0 {
				diags = append(diags, diagAt(tok, CodeUnexpectedElse, "ELSE outside of an IF block"))
			} else if stack[len(stack)-1].elseSeen {
				diags = append(diags, diagAt(tok, CodeDuplicateElse, "IF block already has an ELSE branch"))
			} else {
				stack[len(stack)-1].elseSeen = true
			}
		case TokenEndif:
			if len(stack) == 0 {
				diags = append(diags, diagAt(tok, CodeUnmatchedEndif, "ENDIF without a matching IF"))
			} else {
				stack = stack[:len(stack)-1]
			}
		}
	}
	for _, frame := range stack {
		diags = append(diags, diagAt(frame.open, CodeMissingEndif, "IF without a matching ENDIF"))
	}
	return diags
}

// diagAt builds a diagnostic whose range covers the token's lexeme.
// Severity is filled in by the rule registry.
func diagAt(tok Token, code, message string) Diagnostic {
	return Diagnostic{
		Code:    code,
		Message: message,
		Start:   Position{Line: tok.Line, Character: tok.Column},
		End:     Position{Line: tok.Line, Character: tok.Column + len(tok.Lexeme)},
	}
}
