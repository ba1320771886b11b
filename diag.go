// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package vjson

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/slices"
)

// A Diagnostic reports a recoverable syntax problem at a location in host
// source.
type Diagnostic struct {
	Message string
	Span    Span
}

// Error satisfies the error interface.
func (d Diagnostic) Error() string { return fmt.Sprintf("at %s: %s", d.Span, d.Message) }

// Diagnostic messages.
const (
	msgUnterminatedString = "Unterminated string"
	msgInvalidEscape      = "Invalid escape sequence"
	msgIllegalStringChar  = "Illegal string character"
	msgSingleQuote        = `Strings must start with " not '`
	msgInvalidNumber      = "Invalid number"
	msgCommentsNotAllowed = "Comments not allowed"
	msgUnterminatedCmt    = "Unterminated comment"
	msgIllegalWhitespace  = "Illegal whitespace character"
	msgLiteralNotAllowed  = "'%s' literal not allowed"
	msgUnexpected         = "'%s' unexpected"
	msgExpected           = "'%s' expected"
	msgValueRequired      = "Value required"
	msgPropertyRequired   = "Property required"
	msgPropertyName       = "Property name must be a string"
	msgTrailingComma      = "Trailing comma not allowed"
	msgOnlyOneValue       = "Only one value allowed"
	msgTooDeep            = "Nesting too deep"
)

// A reporter accumulates the diagnostics of a single parse. Once muted, it
// discards further reports.
type reporter struct {
	diags []Diagnostic
	muted bool
}

func (r *reporter) addf(span Span, msg string, args ...any) {
	if r.muted {
		return
	}
	if len(args) != 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	r.diags = append(r.diags, Diagnostic{Message: msg, Span: span})
}

// sorted returns the accumulated diagnostics ordered by start position.
// Diagnostics at the same position keep the order they were reported.
func (r *reporter) sorted() []Diagnostic {
	slices.SortStableFunc(r.diags, func(a, b Diagnostic) int {
		return cmp.Compare(a.Span.Pos, b.Span.Pos)
	})
	return r.diags
}
