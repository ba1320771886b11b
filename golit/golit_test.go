// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package golit_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/creachadair/vjson"
	"github.com/creachadair/vjson/golit"
	"github.com/google/go-cmp/cmp"
)

func ch(v rune, pos, end int, raw string) vjson.Char {
	return vjson.Char{Value: v, Span: vjson.Span{Pos: pos, End: end}, Raw: raw}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		lit  string
		pos  int
		want vjson.Chars
	}{
		{`""`, 0, vjson.Chars{}},
		{"``", 3, vjson.Chars{}},
		{`"ab"`, 0, vjson.Chars{ch('a', 1, 2, "a"), ch('b', 2, 3, "b")}},
		{`"a\tb"`, 0, vjson.Chars{ch('a', 1, 2, "a"), ch('\t', 2, 4, `\t`), ch('b', 4, 5, "b")}},
		{`"\"\\"`, 10, vjson.Chars{ch('"', 11, 13, `\"`), ch('\\', 13, 15, `\\`)}},
		{"`x\\n`", 5, vjson.Chars{ch('x', 6, 7, "x"), ch('\\', 7, 8, `\`), ch('n', 8, 9, "n")}},
		{"`a\nb`", 0, vjson.Chars{ch('a', 1, 2, "a"), ch('\n', 2, 3, "\n"), ch('b', 3, 4, "b")}},
		{`"é"`, 0, vjson.Chars{ch('é', 1, 3, "é")}},
		{`"\u00e9"`, 0, vjson.Chars{ch('é', 1, 7, `\u00e9`)}},
		{`"\U0001F600"`, 0, vjson.Chars{ch('\U0001F600', 1, 11, `\U0001F600`)}},
		{`"\xc3\xa9!"`, 0, vjson.Chars{ch('é', 1, 9, `\xc3\xa9`), ch('!', 9, 10, "!")}},
		{`"\101\x42"`, 0, vjson.Chars{ch('A', 1, 5, `\101`), ch('B', 5, 9, `\x42`)}},
		{`"\a\b\f\n\r\v"`, 0, vjson.Chars{
			ch('\a', 1, 3, `\a`), ch('\b', 3, 5, `\b`), ch('\f', 5, 7, `\f`),
			ch('\n', 7, 9, `\n`), ch('\r', 9, 11, `\r`), ch('\v', 11, 13, `\v`),
		}},
	}
	for _, test := range tests {
		got, err := golit.Convert(test.lit, test.pos)
		if err != nil {
			t.Errorf("Convert(%#q, %d): unexpected error: %v", test.lit, test.pos, err)
			continue
		}
		if got == nil {
			t.Errorf("Convert(%#q, %d): got nil, want non-nil", test.lit, test.pos)
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Convert(%#q, %d) (-want, +got):\n%s", test.lit, test.pos, diff)
		}
		if err := got.Validate(); err != nil {
			t.Errorf("Convert(%#q, %d): invalid result: %v", test.lit, test.pos, err)
		}
	}
}

func TestConvert_notAnalyzable(t *testing.T) {
	tests := []string{
		``, `"`, `'a'`, `"abc`, "`abc",
		"`a\rb`",         // carriage return in raw literal
		"\"a\xffb\"",     // invalid UTF-8
		"`a\xffb`",       // invalid UTF-8
		`"a"b"`,          // unescaped quote
		"\"a\nb\"",       // unescaped newline
		`"\q"`,           // unknown escape
		`"\'"`,           // not valid in a string
		`"\400"`,         // octal out of range
		`"\x4"`,          // short escape
		`"\u12"`,         // short escape
		`"\ud800"`,       // surrogate
		`"\U00110000"`,   // out of range
		`"\xc3"`,         // incomplete encoding
		`"\xc3x"`,        // incomplete encoding
		`"\xff\xfe"`,     // invalid encoding
		`"\xc3\xa9\xa9"`, // trailing continuation byte
		`"abc\"`,         // escaped closing quote
	}
	for _, lit := range tests {
		got, err := golit.Convert(lit, 0)
		if !errors.Is(err, golit.ErrNotAnalyzable) {
			t.Errorf("Convert(%#q): got %v, %v; want %v", lit, got, err, golit.ErrNotAnalyzable)
		}
	}
}

func TestParseLiteral(t *testing.T) {
	t.Run("Escaped", func(t *testing.T) {
		tree, err := golit.ParseLiteral(`"{\"a\": 1}"`, 0, vjson.Strict)
		if err != nil {
			t.Fatalf("ParseLiteral: unexpected error: %v", err)
		}
		if len(tree.Diagnostics) != 0 {
			t.Errorf("Diagnostics: got %v, want none", tree.Diagnostics)
		}
		if err := vjson.CheckCoverage(tree); err != nil {
			t.Errorf("Coverage: %v", err)
		}
		p := tree.Root.Value().Properties()[0]
		if name, ok := p.Name(); !ok || name != "a" {
			t.Errorf("Name: got %q, %v; want a, true", name, ok)
		}
		if got, want := p.Key().Span(), (vjson.Span{Pos: 2, End: 7}); got != want {
			t.Errorf("Key span: got %v, want %v", got, want)
		}
	})

	t.Run("HostPositions", func(t *testing.T) {
		tree, err := golit.ParseLiteral(`"[1,\t2"`, 10, vjson.Strict)
		if err != nil {
			t.Fatalf("ParseLiteral: unexpected error: %v", err)
		}
		want := []vjson.Diagnostic{{Message: "']' expected", Span: vjson.Span{Pos: 17, End: 17}}}
		if diff := cmp.Diff(want, tree.Diagnostics); diff != "" {
			t.Errorf("Diagnostics (-want, +got):\n%s", diff)
		}
		comma := tree.Root.Tokens()[2]
		if comma.Kind != vjson.Comma || len(comma.Trailing) != 1 {
			t.Fatalf("Comma: got %v with trailing %v", comma.Kind, comma.Trailing)
		}
		ws := comma.Trailing[0].Chars
		if got, want := ws.Span(), (vjson.Span{Pos: 14, End: 16}); got != want {
			t.Errorf("Trivia span: got %v, want %v", got, want)
		}
		if got := ws.RawString(); got != `\t` {
			t.Errorf("Trivia raw: got %q, want %q", got, `\t`)
		}
	})

	t.Run("EscapeDiagnostic", func(t *testing.T) {
		const lit = `"[\"\\q\"]"`
		tree, err := golit.ParseLiteral(lit, 0, vjson.Strict)
		if err != nil {
			t.Fatalf("ParseLiteral: unexpected error: %v", err)
		}
		want := []vjson.Diagnostic{{Message: "Invalid escape sequence", Span: vjson.Span{Pos: 4, End: 7}}}
		if diff := cmp.Diff(want, tree.Diagnostics); diff != "" {
			t.Errorf("Diagnostics (-want, +got):\n%s", diff)
		}

		loose, err := golit.ParseLiteral(lit, 0, vjson.Loose)
		if err != nil {
			t.Fatalf("ParseLiteral: unexpected error: %v", err)
		}
		if len(loose.Diagnostics) != 0 {
			t.Errorf("Loose diagnostics: got %v, want none", loose.Diagnostics)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		tree, err := golit.ParseLiteral(`""`, 0, vjson.Loose)
		if tree != nil || err != nil {
			t.Errorf("ParseLiteral: got %v, %v; want nil, nil", tree, err)
		}
	})

	t.Run("NotAnalyzable", func(t *testing.T) {
		tree, err := golit.ParseLiteral(`"{\q}"`, 0, vjson.Loose)
		if tree != nil || !errors.Is(err, golit.ErrNotAnalyzable) {
			t.Errorf("ParseLiteral: got %v, %v; want nil, %v", tree, err, golit.ErrNotAnalyzable)
		}
	})

	t.Run("DeepNesting", func(t *testing.T) {
		lit := `"` + strings.Repeat("[", 2600) + `"`
		text, err := golit.Convert(lit, 0)
		if err != nil {
			t.Fatalf("Convert: unexpected error: %v", err)
		}
		if len(text) != 2600 {
			t.Errorf("Convert: got %d characters, want 2600", len(text))
		}

		tree, err := golit.ParseLiteral(lit, 0, vjson.Loose)
		if err != nil {
			t.Fatalf("ParseLiteral: unexpected error: %v", err)
		}
		if err := vjson.CheckCoverage(tree); err != nil {
			t.Errorf("Coverage: %v", err)
		}
		pos := vjson.DefaultMaxDepth + 1 // after the opening quote
		want := []vjson.Diagnostic{{
			Message: "Nesting too deep",
			Span:    vjson.Span{Pos: pos, End: pos + 1},
		}}
		if diff := cmp.Diff(want, tree.Diagnostics); diff != "" {
			t.Errorf("Diagnostics (-want, +got):\n%s", diff)
		}
	})
}
