// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/creachadair/vjson"
	"github.com/spf13/cobra"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

const lsName = "vjson"

func newLSPCmd() *cobra.Command {
	var flags checkFlags

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Serve diagnostics for embedded JSON over the language server protocol",
		Long: `Run a language server on stdin and stdout.

The server publishes the same diagnostics as "check" for each Go document the
client opens, changes, or saves.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newLangServer(flags).RunStdio()
		},
	}

	cmd.Flags().BoolVar(&flags.strict, "strict", false, "accept only standard JSON")
	cmd.Flags().BoolVarP(&flags.all, "all", "a", false, "check every string literal")

	return cmd
}

type langServer struct {
	flags   checkFlags
	handler protocol.Handler
	server  *server.Server
}

func newLangServer(flags checkFlags) *langServer {
	ls := &langServer{flags: flags}
	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
		TextDocumentDidSave:   ls.textDocumentDidSave,
	}
	ls.server = server.NewServer(&ls.handler, lsName, false)
	return ls
}

func (ls *langServer) RunStdio() error { return ls.server.RunStdio() }

func (ls *langServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}
	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name: lsName,
		},
	}, nil
}

func (ls *langServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Infof("client initialized (strict=%v, all=%v)", ls.flags.strict, ls.flags.all)
	return nil
}

func (ls *langServer) shutdown(ctx *glsp.Context) error { return nil }

func (ls *langServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *langServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	ls.publish(ctx, params.TextDocument.URI, []byte(params.TextDocument.Text))
	return nil
}

func (ls *langServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		ls.publish(ctx, params.TextDocument.URI, []byte(whole.Text))
	}
	return nil
}

func (ls *langServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	// Clear any diagnostics left from the open document.
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (ls *langServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		ls.publish(ctx, params.TextDocument.URI, []byte(*params.Text))
		return nil
	}
	path, err := uriToPath(string(params.TextDocument.URI))
	if err != nil {
		log.Warningf("save %s: %v", params.TextDocument.URI, err)
		return nil
	}
	src, err := os.ReadFile(path)
	if err != nil {
		log.Warningf("save %s: %v", path, err)
		return nil
	}
	ls.publish(ctx, params.TextDocument.URI, src)
	return nil
}

func (ls *langServer) publish(ctx *glsp.Context, uri protocol.DocumentUri, src []byte) {
	if !strings.HasSuffix(string(uri), ".go") {
		return
	}
	diags := analyze(string(uri), src, ls.flags)
	log.Debugf("%s: publishing %d diagnostics", uri, len(diags))
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: lspDiagnostics(src, diags),
	})
}

// lspDiagnostics converts diagnostics in the byte offsets of src to protocol
// diagnostics. The result is never nil.
func lspDiagnostics(src []byte, diags []vjson.Diagnostic) []protocol.Diagnostic {
	out := make([]protocol.Diagnostic, 0, len(diags))
	for _, d := range diags {
		severity := protocol.DiagnosticSeverityWarning
		source := lsName
		out = append(out, protocol.Diagnostic{
			Range: protocol.Range{
				Start: lspPosition(src, d.Span.Pos),
				End:   lspPosition(src, d.Span.End),
			},
			Severity: &severity,
			Source:   &source,
			Message:  d.Message,
		})
	}
	return out
}

// lspPosition reports the protocol position of offset within src. Lines are
// 0-based, and columns count UTF-16 code units. Offsets past the end of src
// are clamped to the end.
func lspPosition(src []byte, offset int) protocol.Position {
	offset = min(offset, len(src))
	var line, col int
	for i := 0; i < offset; {
		r, n := utf8.DecodeRune(src[i:])
		if r == '\n' {
			line++
			col = 0
		} else if i+n > offset {
			break // offset splits a rune
		} else {
			col += utf16.RuneLen(r)
		}
		i += n
	}
	return protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(col)}
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool { return &b }

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind { return &k }
