// Package lsp exposes the calc linter to editors over the Language
// Server Protocol.
package lsp

import (
	"github.com/dhamidi/cslint/calc"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "cslint"

var log = commonlog.GetLogger(lsName)

type Server struct {
	handler   protocol.Handler
	server    *server.Server
	version   string
	documents map[protocol.DocumentUri]string
	options   calc.Options
}

func NewServer(version string) *Server {
	s := &Server{
		version:   version,
		documents: make(map[protocol.DocumentUri]string),
		options:   calc.Options{},
	}

	s.handler = protocol.Handler{
		Initialize:                      s.initialize,
		Initialized:                     s.initialized,
		Shutdown:                        s.shutdown,
		SetTrace:                        s.setTrace,
		TextDocumentDidOpen:             s.textDocumentDidOpen,
		TextDocumentDidChange:           s.textDocumentDidChange,
		TextDocumentDidClose:            s.textDocumentDidClose,
		TextDocumentDidSave:             s.textDocumentDidSave,
		TextDocumentCodeAction:          s.textDocumentCodeAction,
		WorkspaceDidChangeConfiguration: s.workspaceDidChangeConfiguration,
	}

	s.server = server.NewServer(&s.handler, lsName, false)

	return s
}

func (s *Server) RunStdio() error {
	return s.server.RunStdio()
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	if params.InitializationOptions != nil {
		s.options = decodeOptions(params.InitializationOptions)
	}

	capabilities := s.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}
	capabilities.CodeActionProvider = true

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("initialized")
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.documents[params.TextDocument.URI] = params.TextDocument.Text
	s.publish(ctx, params.TextDocument.URI)
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			s.documents[uri] = textChange.Text
		}
	}
	s.publish(ctx, uri)
	return nil
}

func (s *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	uri := params.TextDocument.URI
	if params.Text != nil {
		s.documents[uri] = *params.Text
	}
	s.publish(ctx, uri)
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	delete(s.documents, params.TextDocument.URI)
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (s *Server) workspaceDidChangeConfiguration(ctx *glsp.Context, params *protocol.DidChangeConfigurationParams) error {
	settings := params.Settings
	if m, ok := settings.(map[string]any); ok {
		if sub, ok := m[lsName]; ok {
			settings = sub
		}
	}
	s.options = decodeOptions(settings)
	for uri := range s.documents {
		s.publish(ctx, uri)
	}
	return nil
}

// publish re-lints the full document text and pushes the resulting
// diagnostics to the client. An empty list clears earlier findings.
func (s *Server) publish(ctx *glsp.Context, uri protocol.DocumentUri) {
	text, ok := s.documents[uri]
	if !ok {
		return
	}

	diagnostics := []protocol.Diagnostic{}
	for _, d := range calc.Lint(text, s.options) {
		diagnostics = append(diagnostics, toProtocolDiagnostic(d))
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

// decodeOptions converts the client's settings value, a JSON object of
// rule ID to {enabled, severity}, into rule options. Entries that do
// not have that shape are dropped and the affected rule keeps its
// defaults.
func decodeOptions(v any) calc.Options {
	opts := calc.Options{}
	m, ok := v.(map[string]any)
	if !ok {
		return opts
	}
	for id, raw := range m {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		var o calc.RuleOptions
		if enabled, ok := entry["enabled"].(bool); ok {
			o.Enabled = &enabled
		}
		if severity, ok := entry["severity"].(string); ok {
			o.Severity = calc.Severity(severity)
		}
		opts[calc.RuleID(id)] = o
	}
	return opts
}

func toProtocolDiagnostic(d calc.Diagnostic) protocol.Diagnostic {
	severity := toProtocolSeverity(d.Severity)
	code := protocol.IntegerOrString{Value: d.Code}
	source := lsName
	return protocol.Diagnostic{
		Range:    toProtocolRange(d.Start, d.End),
		Severity: &severity,
		Code:     &code,
		Source:   &source,
		Message:  d.Message,
	}
}

func toProtocolSeverity(s calc.Severity) protocol.DiagnosticSeverity {
	switch s {
	case calc.SeverityWarning:
		return protocol.DiagnosticSeverityWarning
	case calc.SeverityInfo:
		return protocol.DiagnosticSeverityInformation
	default:
		return protocol.DiagnosticSeverityError
	}
}

func toProtocolRange(start, end calc.Position) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: protocol.UInteger(start.Line), Character: protocol.UInteger(start.Character)},
		End:   protocol.Position{Line: protocol.UInteger(end.Line), Character: protocol.UInteger(end.Character)},
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
