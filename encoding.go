// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package vjson

import (
	"errors"

	"github.com/creachadair/vjson/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a standard JSON string value. The contents are escaped
// and double quotation marks are added.
func Quote(src string) string { return escape.Quote(mem.S(src)) }

// Unquote decodes the text of a string token. The enclosing quotation marks,
// which may be double or (as loose mode allows) single, are removed and
// escape sequences are replaced with their unescaped equivalents.
//
// Invalid escapes are replaced by the Unicode replacement rune. Unquote
// reports an error for an incomplete escape sequence.
func Unquote(src string) (string, error) {
	if len(src) < 2 || (src[0] != '"' && src[0] != '\'') || src[len(src)-1] != src[0] {
		return "", errors.New("missing quotations")
	}
	return escape.Unquote(mem.S(src[1 : len(src)-1]))
}
