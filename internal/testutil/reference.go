// Package testutil defines support code for unit tests.
package testutil

import (
	"encoding/json"
	"testing"

	"github.com/creachadair/vjson"
	"github.com/tailscale/hujson"
)

// ValidStrict reports whether text is valid standard JSON, according to the
// standard library decoder.
func ValidStrict(text string) bool { return json.Valid([]byte(text)) }

// ValidLoose reports whether text is valid JWCC (JSON with commas and
// comments), according to the hujson parser. Every such input is also valid
// loose input for vjson, though not conversely.
func ValidLoose(text string) bool {
	_, err := hujson.Parse([]byte(text))
	return err == nil
}

// MustParse parses text as unescaped characters at offset 0 in the given
// mode, and fails t if the result does not satisfy the coverage invariant.
func MustParse(t testing.TB, text string, strict bool) *vjson.Tree {
	t.Helper()
	tree := vjson.Parse(vjson.FromString(text, 0), strict)
	if tree == nil {
		t.Fatalf("Parse(%#q, strict=%v): got no tree", text, strict)
	}
	if err := vjson.CheckCoverage(tree); err != nil {
		t.Fatalf("Parse(%#q, strict=%v): coverage: %v", text, strict, err)
	}
	return tree
}

// Kinds returns the token kinds of the tree in document order, with missing
// tokens marked.
func Kinds(tree *vjson.Tree) []string {
	var out []string
	for _, tok := range tree.Root.Tokens() {
		s := tok.Kind.String()
		if tok.Missing {
			s += "?"
		}
		out = append(out, s)
	}
	return out
}

// Messages returns the messages of the tree's diagnostics, in order.
func Messages(tree *vjson.Tree) []string {
	var out []string
	for _, d := range tree.Diagnostics {
		out = append(out, d.Message)
	}
	return out
}
