package lsp

import (
	"github.com/dhamidi/cslint/calc"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// textDocumentCodeAction offers a quick fix for every missing-close
// diagnostic the client hands back: inserting the matching closing
// keyword on the line after the unmatched opening token, indented like
// the opening line.
func (s *Server) textDocumentCodeAction(ctx *glsp.Context, params *protocol.CodeActionParams) (any, error) {
	uri := params.TextDocument.URI
	text, ok := s.documents[uri]
	if !ok {
		return nil, nil
	}

	var actions []protocol.CodeAction
	for _, pd := range params.Context.Diagnostics {
		code, ok := diagnosticCode(pd)
		if !ok {
			continue
		}
		insertion, ok := calc.FixForDiagnostic(text, calc.Diagnostic{
			Code:  code,
			Start: calc.Position{Line: int(pd.Range.Start.Line)},
		})
		if !ok {
			continue
		}

		keyword, _ := calc.ClosingKeywordFor(code)
		kind := protocol.CodeActionKindQuickFix
		at := protocol.Position{Line: protocol.UInteger(insertion.Line), Character: 0}
		actions = append(actions, protocol.CodeAction{
			Title:       "Insert " + keyword,
			Kind:        &kind,
			Diagnostics: []protocol.Diagnostic{pd},
			Edit: &protocol.WorkspaceEdit{
				Changes: map[protocol.DocumentUri][]protocol.TextEdit{
					uri: {{
						Range:   protocol.Range{Start: at, End: at},
						NewText: insertion.Text,
					}},
				},
			},
		})
	}

	if len(actions) == 0 {
		return nil, nil
	}
	return actions, nil
}

// diagnosticCode extracts the string code from a protocol diagnostic.
func diagnosticCode(d protocol.Diagnostic) (string, bool) {
	if d.Code == nil {
		return "", false
	}
	code, ok := d.Code.Value.(string)
	return code, ok
}
