// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package vjson

import "fmt"

// A Span describes a contiguous span of host source text.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// Len reports the length of s in bytes.
func (s Span) Len() int { return s.End - s.Pos }

// IsEmpty reports whether s has zero length.
func (s Span) IsEmpty() bool { return s.End == s.Pos }

// Contains reports whether offset lies inside s.
func (s Span) Contains(offset int) bool { return s.Pos <= offset && offset < s.End }

func (s Span) String() string { return fmt.Sprintf("%d+%d", s.Pos, s.Len()) }

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// Position reports the line and column of offset within src. Offsets past the
// end of src are clamped to the end.
func Position(src []byte, offset int) LineCol {
	offset = min(offset, len(src))
	lc := LineCol{Line: 1}
	for i := 0; i < offset; i++ {
		if src[i] == '\n' {
			lc.Line++
			lc.Column = 0
		} else {
			lc.Column++
		}
	}
	return lc
}
