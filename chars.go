// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package vjson

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// A Char is one logical character of embedded text, together with the
// location in host source of the text it was decoded from. For example, the
// Go literal "a\tb" yields three characters, the second of which has Value
// '\t' and Raw `\t`.
type Char struct {
	Value rune   // the logical character
	Span  Span   // the location of Raw in host source
	Raw   string // the host text this character was decoded from (non-empty)
}

func (c Char) String() string { return string(c.Value) }

// Chars is an ordered sequence of characters. The spans of the elements of a
// valid sequence are non-empty, non-overlapping, and strictly increasing.
// Values of this type are not modified once constructed.
type Chars []Char

// FromString constructs an unescaped sequence for text, in which each rune
// maps to its own UTF-8 encoding in host source starting at offset base.
// Invalid UTF-8 bytes are mapped one by one to utf8.RuneError.
func FromString(text string, base int) Chars {
	out := make(Chars, 0, utf8.RuneCountInString(text))
	for i := 0; i < len(text); {
		r, n := utf8.DecodeRuneInString(text[i:])
		out = append(out, Char{
			Value: r,
			Span:  Span{Pos: base + i, End: base + i + n},
			Raw:   text[i : i+n],
		})
		i += n
	}
	return out
}

// String returns the logical text of c.
func (c Chars) String() string {
	var sb strings.Builder
	for _, ch := range c {
		sb.WriteRune(ch.Value)
	}
	return sb.String()
}

// RawString returns the host text covered by c.
func (c Chars) RawString() string {
	var sb strings.Builder
	for _, ch := range c {
		sb.WriteString(ch.Raw)
	}
	return sb.String()
}

// Span returns the host span covered by c. It returns a zero span if c is
// empty.
func (c Chars) Span() Span {
	if len(c) == 0 {
		return Span{}
	}
	return Span{Pos: c[0].Span.Pos, End: c[len(c)-1].Span.End}
}

// Equal reports whether c and d contain the same characters.
func (c Chars) Equal(d Chars) bool {
	if len(c) != len(d) {
		return false
	}
	for i := range c {
		if c[i] != d[i] {
			return false
		}
	}
	return true
}

// Validate reports an error if c does not satisfy the ordering invariants of
// a character sequence.
func (c Chars) Validate() error {
	prev := -1
	for i, ch := range c {
		switch {
		case ch.Raw == "":
			return fmt.Errorf("char %d (%q) has no raw text", i, ch.Value)
		case ch.Span.End <= ch.Span.Pos:
			return fmt.Errorf("char %d (%q) has empty span %v", i, ch.Value, ch.Span)
		case ch.Span.Pos < prev:
			return fmt.Errorf("char %d (%q) at %v overlaps previous end %d", i, ch.Value, ch.Span, prev)
		}
		prev = ch.Span.End
	}
	return nil
}
