// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package vjson_test

import (
	"strings"
	"testing"

	"github.com/creachadair/vjson"
	"github.com/creachadair/vjson/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		input  string
		strict bool
		want   string
	}{
		{`{"a": [1]} // c`, false, `
CompilationUnit
  Object
    OpenBrace "{"
    Property
      String "\"a\"" value="a"
      Colon ":" trailing=[Whitespace " "]
      Array
        OpenBracket "["
        Literal
          Number "1" value=1
        CloseBracket "]"
    CloseBrace "}" trailing=[Whitespace " ", LineComment "// c"]
  EndOfFile
`},
		{`[1,`, true, `
CompilationUnit
  Array
    OpenBracket "["
    Literal
      Number "1" value=1
    Comma ","
    CloseBracket (missing)
  EndOfFile
Diagnostics
  3+0: ']' expected
`},
		{"true\n@", false, `
CompilationUnit
  Literal
    True "true" value=true
  Error
    BadToken "@" leading=[EndOfLine "\n"]
  EndOfFile
Diagnostics
  5+1: '@' unexpected
`},
		{`{k: NaN}`, false, `
CompilationUnit
  Object
    OpenBrace "{"
    Property
      Identifier "k"
      Colon ":" trailing=[Whitespace " "]
      Literal
        NaN "NaN" value=NaN
    CloseBrace "}"
  EndOfFile
`},
	}
	for _, test := range tests {
		tree := testutil.MustParse(t, test.input, test.strict)
		got := vjson.FormatToString(tree)
		if diff := cmp.Diff(strings.TrimPrefix(test.want, "\n"), got); diff != "" {
			t.Errorf("Format %#q (-want, +got):\n%s", test.input, diff)
		}
	}
}
