// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// Quote renders src as a double-quoted string for display. Control
// characters, quotation marks, backslashes, and the invisible separators that
// are significant to the lexer are escaped; other text is copied verbatim.
func Quote(src mem.RO) string {
	buf := make([]byte, 0, src.Len()+2)
	buf = append(buf, '"')
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		if n == 0 {
			n++
		}
		src = src.SliceFrom(n)

		switch {
		case r < ' ':
			if b := controlEsc[r]; b != 0 {
				buf = append(buf, '\\', b)
			} else {
				buf = append(buf, '\\', 'u', '0', '0', hexDigit[int(r>>4)], hexDigit[int(r&15)])
			}
		case r == '\\' || r == '"':
			buf = append(buf, '\\', byte(r))
		case r == '\u00a0', r == '\ufeff', r == '\u2028', r == '\u2029', r == utf8.RuneError:
			buf = append(buf, '\\', 'u',
				hexDigit[int(r>>12)&15], hexDigit[int(r>>8)&15],
				hexDigit[int(r>>4)&15], hexDigit[int(r)&15])
		default:
			buf = utf8.AppendRune(buf, r)
		}
	}
	return string(append(buf, '"'))
}
