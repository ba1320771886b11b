// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape_test

import (
	"testing"

	"github.com/creachadair/vjson/internal/escape"
	"go4.org/mem"
)

func TestUnquote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{``, ``},
		{`abc`, `abc`},
		{`a\nb`, "a\nb"},
		{`\"\\\/\b\f\n\r\t`, "\"\\/\b\f\n\r\t"},
		{`étÉ`, "étÉ"},
		{"\U0001F600", "\U0001F600"},
		{`\ud800x`, "\ufffdx"},
		{`\ude00\ud83d`, "\ufffd\ufffd"},
		{`\ud83d\ude00`, "\U0001F600"},
		{`\u12zz`, "\ufffd"},
		{`it\'s`, "it's"},
		{`\q\x`, "qx"},
		{`tail\\`, `tail\`},
	}
	for _, test := range tests {
		got, err := escape.Unquote(mem.S(test.input))
		if err != nil {
			t.Errorf("Unquote(%#q): unexpected error: %v", test.input, err)
		} else if got != test.want {
			t.Errorf("Unquote(%#q): got %q, want %q", test.input, got, test.want)
		}
	}

	for _, bad := range []string{`a\`, `\u12`, `\u`} {
		got, err := escape.Unquote(mem.S(bad))
		if err == nil {
			t.Errorf("Unquote(%#q): got %q, want error", bad, got)
		}
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", `""`},
		{"abc", `"abc"`},
		{`a"b\c`, `"a\"b\\c"`},
		{"\n\t\x01\x1f", `"\n\t\u0001\u001f"`},
		{"é", "\"é\""},
		{"\u00a0\ufeff\u2028\u2029", `"\u00a0\ufeff\u2028\u2029"`},
		{"\xff", `"\ufffd"`},
	}
	for _, test := range tests {
		if got := escape.Quote(mem.S(test.input)); got != test.want {
			t.Errorf("Quote(%q): got %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestClasses(t *testing.T) {
	for _, r := range `"\/bfnrtu` {
		if !escape.IsStandard(r) {
			t.Errorf("IsStandard(%q): got false, want true", r)
		}
	}
	for _, r := range `'xav0U` {
		if escape.IsStandard(r) {
			t.Errorf("IsStandard(%q): got true, want false", r)
		}
	}
	for _, r := range "0123456789abcdefABCDEF" {
		if !escape.IsHexDigit(r) {
			t.Errorf("IsHexDigit(%q): got false, want true", r)
		}
	}
	for _, r := range "gG-x " {
		if escape.IsHexDigit(r) {
			t.Errorf("IsHexDigit(%q): got true, want false", r)
		}
	}
}
