// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"testing"

	"github.com/creachadair/vjson"
	"github.com/google/go-cmp/cmp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestLSPPosition(t *testing.T) {
	const src = "ab\ncé\U0001F600x"
	tests := []struct {
		offset     int
		line, char protocol.UInteger
	}{
		{0, 0, 0},
		{2, 0, 2},
		{3, 1, 0},
		{4, 1, 1},
		{5, 1, 1}, // inside a multi-byte rune
		{6, 1, 2},
		{10, 1, 4},
		{11, 1, 5},
		{100, 1, 5},
	}
	for _, test := range tests {
		got := lspPosition([]byte(src), test.offset)
		want := protocol.Position{Line: test.line, Character: test.char}
		if got != want {
			t.Errorf("lspPosition(%d): got %+v, want %+v", test.offset, got, want)
		}
	}
}

func TestLSPDiagnostics(t *testing.T) {
	src := []byte(checkSource)

	if got := lspDiagnostics(src, analyze("input.go", src, checkFlags{})); got == nil || len(got) != 0 {
		t.Errorf("Loose: got %+v, want empty", got)
	}

	diags := analyze("input.go", src, checkFlags{strict: true})
	want := []vjson.Diagnostic{{
		Message: "Trailing comma not allowed",
		Span:    vjson.Span{Pos: 27, End: 28},
	}}
	if diff := cmp.Diff(want, diags); diff != "" {
		t.Fatalf("analyze (-want, +got):\n%s", diff)
	}

	severity := protocol.DiagnosticSeverityWarning
	source := lsName
	wantLSP := []protocol.Diagnostic{{
		Range: protocol.Range{
			Start: protocol.Position{Line: 2, Character: 16},
			End:   protocol.Position{Line: 2, Character: 17},
		},
		Severity: &severity,
		Source:   &source,
		Message:  "Trailing comma not allowed",
	}}
	if diff := cmp.Diff(wantLSP, lspDiagnostics(src, diags)); diff != "" {
		t.Errorf("lspDiagnostics (-want, +got):\n%s", diff)
	}
}

func TestURIToPath(t *testing.T) {
	tests := []struct {
		uri, want string
	}{
		{"file:///tmp/x/../a.go", "/tmp/a.go"},
		{"file:///a%20b.go", "/a b.go"},
		{"relative/path.go", "relative/path.go"},
	}
	for _, test := range tests {
		got, err := uriToPath(test.uri)
		if err != nil {
			t.Errorf("uriToPath(%q): unexpected error: %v", test.uri, err)
		} else if got != test.want {
			t.Errorf("uriToPath(%q): got %q, want %q", test.uri, got, test.want)
		}
	}
}
