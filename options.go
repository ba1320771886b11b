// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package vjson

// DefaultMaxDepth is the nesting depth limit used when Options.MaxDepth is
// not positive.
const DefaultMaxDepth = 1000

// Options control which extensions of standard JSON the parser accepts. The
// zero value accepts only standard JSON (RFC 8259) with the default depth
// limit. Each extension that is not enabled is still parsed, but reported
// with a diagnostic.
type Options struct {
	// Accept "//" line comments and "/* */" block comments as trivia.
	AllowComments bool

	// Accept a comma after the last member of an object or array.
	AllowTrailingCommas bool

	// Accept bare identifiers as object keys.
	AllowUnquotedKeys bool

	// Accept numbers with a leading "+", a leading or trailing ".", or
	// redundant leading zeroes.
	LenientNumbers bool

	// Accept single-quoted strings, escapes outside the JSON set, and
	// unescaped control characters in strings.
	LenientStrings bool

	// Accept the constants NaN, Infinity, -Infinity, and undefined.
	AllowExtendedLiterals bool

	// Accept form feed, vertical tab, no-break space, byte-order marks, line
	// and paragraph separators, and other Unicode spaces as whitespace.
	AllowExtendedSpace bool

	// The maximum nesting depth of objects and arrays. If the input nests
	// deeper, the remainder of the input is not parsed structurally.
	// If MaxDepth ≤ 0, DefaultMaxDepth is used.
	MaxDepth int
}

var (
	// Strict accepts only standard JSON.
	Strict = Options{}

	// Loose accepts all supported extensions.
	Loose = Options{
		AllowComments:         true,
		AllowTrailingCommas:   true,
		AllowUnquotedKeys:     true,
		LenientNumbers:        true,
		LenientStrings:        true,
		AllowExtendedLiterals: true,
		AllowExtendedSpace:    true,
	}
)

// Mode returns Strict if strict is true, otherwise Loose.
func Mode(strict bool) Options {
	if strict {
		return Strict
	}
	return Loose
}

func (o Options) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}
