// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON string text.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// IsStandard reports whether r may follow a backslash in a standard JSON
// string. The Unicode escape 'u' must additionally be followed by four
// hexadecimal digits.
func IsStandard(r rune) bool {
	switch r {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't', 'u':
		return true
	}
	return false
}

// IsHexDigit reports whether r is a hexadecimal digit.
func IsHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// Unquote decodes the contents of a string literal whose enclosing quotation
// marks have already been removed.
//
// Standard escape sequences are replaced with their unescaped equivalents, as
// is the escaped single quote (\'). Other escapes decode as the escaped
// character itself. A Unicode escape with invalid digits decodes as the
// Unicode replacement rune, as does an unpaired surrogate. Unquote reports an
// error for an incomplete escape sequence.
func Unquote(src mem.RO) (string, error) {
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return src.StringCopy(), nil
	}

	dec := make([]byte, 0, src.Len())
	putRune := func(r rune) { dec = utf8.AppendRune(dec, r) }
	for src.Len() != 0 {
		dec = mem.Append(dec, src.SliceTo(i))

		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return "", errors.New("incomplete escape sequence")
		}
		r, n := mem.DecodeRune(src)
		if n == 0 {
			n++
		}

		src = src.SliceFrom(n)
		switch r {
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			if src.Len() < 4 {
				return "", errors.New("incomplete Unicode escape")
			}
			v, err := parseHex(src.SliceTo(4))
			src = src.SliceFrom(4)
			if err != nil {
				putRune(utf8.RuneError)
				break
			}
			r := rune(v)
			if utf16.IsSurrogate(r) {
				// Combine with a following low surrogate escape, if present.
				if src.Len() >= 6 && src.At(0) == '\\' && src.At(1) == 'u' {
					if lo, err := parseHex(src.Slice(2, 6)); err == nil {
						if c := utf16.DecodeRune(r, rune(lo)); c != utf8.RuneError {
							r = c
							src = src.SliceFrom(6)
						}
					}
				}
			}
			putRune(r)
		default:
			putRune(r) // includes " \ / '
		}

		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
	}
	return string(dec), nil
}

func parseHex(data mem.RO) (int64, error) {
	var v int64
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += int64(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += int64(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += int64(b - 'A' + 10)
		} else {
			return 0, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, nil
}
