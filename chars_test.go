// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package vjson_test

import (
	"testing"

	"github.com/creachadair/vjson"
	"github.com/google/go-cmp/cmp"
)

func TestFromString(t *testing.T) {
	got := vjson.FromString("aé\xff", 3)
	want := vjson.Chars{
		{Value: 'a', Span: vjson.Span{Pos: 3, End: 4}, Raw: "a"},
		{Value: 'é', Span: vjson.Span{Pos: 4, End: 6}, Raw: "é"},
		{Value: '\ufffd', Span: vjson.Span{Pos: 6, End: 7}, Raw: "\xff"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FromString (-want, +got):\n%s", diff)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("Validate: unexpected error: %v", err)
	}
	if s := got.String(); s != "aé\ufffd" {
		t.Errorf("String: got %q, want %q", s, "aé\ufffd")
	}
	if s := got.RawString(); s != "aé\xff" {
		t.Errorf("RawString: got %q, want %q", s, "aé\xff")
	}
	if sp := got.Span(); sp != (vjson.Span{Pos: 3, End: 7}) {
		t.Errorf("Span: got %v, want 3+4", sp)
	}
	if !got.Equal(vjson.FromString("aé\xff", 3)) {
		t.Error("Equal: same input is not equal")
	}
	if got.Equal(vjson.FromString("aé\xff", 0)) {
		t.Error("Equal: different offsets are equal")
	}
}

func TestValidate(t *testing.T) {
	ch := func(v rune, pos, end int, raw string) vjson.Char {
		return vjson.Char{Value: v, Span: vjson.Span{Pos: pos, End: end}, Raw: raw}
	}
	tests := []struct {
		name  string
		input vjson.Chars
		ok    bool
	}{
		{"Empty", nil, true},
		{"Gaps", vjson.Chars{ch('a', 0, 1, "a"), ch('\n', 2, 4, `\n`), ch('b', 9, 10, "b")}, true},
		{"NoRaw", vjson.Chars{ch('a', 0, 1, "")}, false},
		{"EmptySpan", vjson.Chars{ch('a', 0, 1, "a"), ch('b', 1, 1, "b")}, false},
		{"Overlap", vjson.Chars{ch('a', 0, 2, "ab"), ch('b', 1, 2, "b")}, false},
		{"Backward", vjson.Chars{ch('a', 5, 6, "a"), ch('b', 0, 1, "b")}, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.input.Validate()
			if got := err == nil; got != test.ok {
				t.Errorf("Validate: got %v, want ok=%v", err, test.ok)
			}
		})
	}
}

func TestPosition(t *testing.T) {
	src := []byte("ab\ncd\n\nef")
	tests := []struct {
		offset int
		want   vjson.LineCol
	}{
		{0, vjson.LineCol{Line: 1, Column: 0}},
		{2, vjson.LineCol{Line: 1, Column: 2}},
		{3, vjson.LineCol{Line: 2, Column: 0}},
		{4, vjson.LineCol{Line: 2, Column: 1}},
		{6, vjson.LineCol{Line: 3, Column: 0}},
		{8, vjson.LineCol{Line: 4, Column: 1}},
		{100, vjson.LineCol{Line: 4, Column: 2}},
	}
	for _, test := range tests {
		if got := vjson.Position(src, test.offset); got != test.want {
			t.Errorf("Position(%d): got %v, want %v", test.offset, got, test.want)
		}
	}
	if s := (vjson.LineCol{Line: 3, Column: 7}).String(); s != "3:7" {
		t.Errorf("LineCol string: got %q, want 3:7", s)
	}
	if s := (vjson.Span{Pos: 3, End: 5}).String(); s != "3+2" {
		t.Errorf("Span string: got %q, want 3+2", s)
	}
}
