// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package golit converts Go string literals into virtual characters for the
// vjson parser.
//
// An interpreted literal such as "a\tb" converts to one character per logical
// character of its value, each spanning the source text it was decoded from
// (here `a`, `\t`, and `b`). A raw literal converts one rune at a time.
//
// Some literals have no faithful character representation: those with
// malformed escapes, escapes that produce invalid UTF-8, or raw literals
// containing carriage returns (which the Go compiler discards). Convert
// reports ErrNotAnalyzable for these, and callers should skip the literal
// rather than treat it as malformed JSON.
package golit

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/creachadair/vjson"
)

// ErrNotAnalyzable is reported when a literal cannot be represented as a
// sequence of virtual characters.
var ErrNotAnalyzable = errors.New("literal cannot be analyzed")

// Convert converts lit, the complete source text of a Go string literal
// including its quotes, to the characters of its value. The literal is assumed
// to begin at byte offset pos of the host source.
//
// The result for an empty literal is empty but non-nil. In case of error, the
// error wraps ErrNotAnalyzable.
func Convert(lit string, pos int) (vjson.Chars, error) {
	if len(lit) < 2 {
		return nil, notAnalyzable(pos, "incomplete literal")
	}
	switch q := lit[0]; {
	case q == '`' && lit[len(lit)-1] == '`':
		return convertRaw(lit[1:len(lit)-1], pos+1)
	case q == '"' && lit[len(lit)-1] == '"':
		return convertInterpreted(lit[1:len(lit)-1], pos+1)
	}
	return nil, notAnalyzable(pos, "not a string literal")
}

// ParseLiteral converts the Go string literal lit at offset pos and parses
// its value with the given options. It returns nil, nil if the literal is
// empty, and an error wrapping ErrNotAnalyzable if conversion fails.
func ParseLiteral(lit string, pos int, opts vjson.Options) (*vjson.Tree, error) {
	text, err := Convert(lit, pos)
	if err != nil {
		return nil, err
	}
	return vjson.ParseOptions(text, opts), nil
}

func convertRaw(body string, base int) (vjson.Chars, error) {
	if i := strings.IndexByte(body, '\r'); i >= 0 {
		return nil, notAnalyzable(base+i, "carriage return in raw literal")
	}
	out := make(vjson.Chars, 0, len(body))
	for i := 0; i < len(body); {
		r, n := utf8.DecodeRuneInString(body[i:])
		if r == utf8.RuneError && n == 1 {
			return nil, notAnalyzable(base+i, "invalid UTF-8")
		}
		out = append(out, char(r, body, base, i, i+n))
		i += n
	}
	return out, nil
}

func convertInterpreted(body string, base int) (vjson.Chars, error) {
	out := make(vjson.Chars, 0, len(body))
	for i := 0; i < len(body); {
		if body[i] != '\\' {
			r, n := utf8.DecodeRuneInString(body[i:])
			if r == utf8.RuneError && n == 1 {
				return nil, notAnalyzable(base+i, "invalid UTF-8")
			} else if r == '"' || r == '\n' {
				return nil, notAnalyzable(base+i, "unescaped %q", r)
			}
			out = append(out, char(r, body, base, i, i+n))
			i += n
			continue
		}

		r, isByte, n, err := decodeEscape(body[i:])
		if err != nil {
			return nil, notAnalyzable(base+i, "%v", err)
		}
		if !isByte || r < utf8.RuneSelf {
			out = append(out, char(r, body, base, i, i+n))
			i += n
			continue
		}

		// A byte escape above 0x7f must combine with the byte escapes that
		// follow it to spell out a single valid UTF-8 encoding.
		j, buf := i+n, []byte{byte(r)}
		for !utf8.FullRune(buf) && j < len(body) {
			b, isByte, m, err := decodeEscape(body[j:])
			if err != nil || !isByte {
				break
			}
			buf = append(buf, byte(b))
			j += m
		}
		v, size := utf8.DecodeRune(buf)
		if v == utf8.RuneError || size != len(buf) {
			return nil, notAnalyzable(base+i, "byte escapes do not encode a valid rune")
		}
		out = append(out, char(v, body, base, i, j))
		i = j
	}
	return out, nil
}

// decodeEscape decodes the escape sequence at the front of s, which begins
// with a backslash. It returns the decoded value, whether it is a byte value
// (from an octal or \x escape), and the length of the escape in s.
func decodeEscape(s string) (rune, bool, int, error) {
	if len(s) < 2 || s[0] != '\\' {
		return 0, false, 0, errors.New("incomplete escape")
	}
	switch c := s[1]; c {
	case 'a':
		return '\a', false, 2, nil
	case 'b':
		return '\b', false, 2, nil
	case 'f':
		return '\f', false, 2, nil
	case 'n':
		return '\n', false, 2, nil
	case 'r':
		return '\r', false, 2, nil
	case 't':
		return '\t', false, 2, nil
	case 'v':
		return '\v', false, 2, nil
	case '\\', '"':
		return rune(c), false, 2, nil
	case '0', '1', '2', '3', '4', '5', '6', '7':
		v, err := digits(s[1:], 3, 8)
		if err != nil {
			return 0, false, 0, err
		} else if v > 255 {
			return 0, false, 0, fmt.Errorf("octal escape value %d > 255", v)
		}
		return v, true, 4, nil
	case 'x':
		v, err := digits(s[2:], 2, 16)
		return v, true, 4, err
	case 'u':
		v, err := digits(s[2:], 4, 16)
		if err == nil && !utf8.ValidRune(v) {
			err = fmt.Errorf("escape is invalid Unicode code point %U", v)
		}
		return v, false, 6, err
	case 'U':
		v, err := digits(s[2:], 8, 16)
		if err == nil && !utf8.ValidRune(v) {
			err = fmt.Errorf("escape is invalid Unicode code point %U", v)
		}
		return v, false, 10, err
	default:
		return 0, false, 0, fmt.Errorf("unknown escape %q", s[:2])
	}
}

// digits decodes exactly n digits in the given base from the front of s.
func digits(s string, n, base int) (rune, error) {
	if len(s) < n {
		return 0, errors.New("escape sequence is too short")
	}
	var v rune
	for i := 0; i < n; i++ {
		d := digitVal(s[i])
		if d >= base {
			return 0, fmt.Errorf("invalid digit %q in escape", s[i])
		}
		v = v*rune(base) + rune(d)
	}
	return v, nil
}

func digitVal(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c - 'a' + 10)
	case 'A' <= c && c <= 'F':
		return int(c - 'A' + 10)
	}
	return 16
}

func char(r rune, body string, base, i, j int) vjson.Char {
	return vjson.Char{
		Value: r,
		Span:  vjson.Span{Pos: base + i, End: base + j},
		Raw:   body[i:j],
	}
}

func notAnalyzable(pos int, msg string, args ...any) error {
	return fmt.Errorf("offset %d: %s: %w", pos, fmt.Sprintf(msg, args...), ErrNotAnalyzable)
}
