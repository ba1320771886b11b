// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package golit

import (
	"bytes"
	"go/scanner"
	"go/token"
	"strings"
	"unicode"

	"github.com/creachadair/vjson"
)

// A Literal is a string literal token found in Go source.
type Literal struct {
	Pos  int    // byte offset of the opening quote in the source
	Text string // source text of the literal, including quotes
}

// Convert converts the literal to characters, as the package-level Convert.
func (l Literal) Convert() (vjson.Chars, error) { return Convert(l.Text, l.Pos) }

// Literals returns the string literals of src, which must be Go source text,
// in order of occurrence. Lexical errors in src do not stop the scan; if any
// occur, the literals found are returned together with the errors.
func Literals(src []byte) ([]Literal, error) {
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))

	var errs scanner.ErrorList
	var s scanner.Scanner
	s.Init(file, src, errs.Add, 0)

	var out []Literal
	for {
		pos, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		} else if tok != token.STRING {
			continue
		}

		// The scanner strips carriage returns from raw literals, so take the
		// text of those from the source instead.
		off := file.Offset(pos)
		if lit[0] == '`' {
			if j := bytes.IndexByte(src[off+1:], '`'); j >= 0 {
				lit = string(src[off : off+j+2])
			}
		}
		out = append(out, Literal{Pos: off, Text: lit})
	}
	errs.Sort()
	return out, errs.Err()
}

// LooksLikeJSON reports whether text plausibly holds a JSON object or array,
// meaning its first non-space character is "{" or "[".
func LooksLikeJSON(text vjson.Chars) bool {
	s := strings.TrimLeftFunc(text.String(), unicode.IsSpace)
	return strings.HasPrefix(s, "{") || strings.HasPrefix(s, "[")
}
