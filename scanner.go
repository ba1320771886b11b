// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package vjson

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/creachadair/vjson/internal/escape"
	"go4.org/mem"
)

// A scanner reads lexical tokens with their trivia from a character
// sequence. Each call to next consumes one token.
type scanner struct {
	text Chars
	pos  int // index of the next unread character
	opts Options
	rep  *reporter
}

// next scans the next token of the input along with its leading and trailing
// trivia. At the end of input it returns an EndOfFile token; once that has
// been returned, every further call returns another one.
func (s *scanner) next() *Token {
	lead := s.scanTrivia(true)
	tok := s.scanToken()
	tok.Leading = lead
	if tok.Kind != EndOfFile {
		tok.Trailing = s.scanTrivia(false)
	}
	return tok
}

// offset returns the host offset of the next unread character, or the end of
// the last character if the input is exhausted.
func (s *scanner) offset() int {
	if s.pos < len(s.text) {
		return s.text[s.pos].Span.Pos
	} else if len(s.text) != 0 {
		return s.text[len(s.text)-1].Span.End
	}
	return 0
}

// peek returns the value of the character i positions ahead of the cursor,
// or -1 if that is past the end of the input.
func (s *scanner) peek(i int) rune {
	if j := s.pos + i; j < len(s.text) {
		return s.text[j].Value
	}
	return -1
}

// take returns the characters from start to the cursor.
func (s *scanner) take(start int) Chars { return s.text[start:s.pos:s.pos] }

// scanTrivia consumes a run of whitespace, line breaks, and (if enabled)
// comments. Trailing trivia stops before the first line break.
func (s *scanner) scanTrivia(leading bool) []Trivia {
	var out []Trivia
	for s.pos < len(s.text) {
		ch := s.peek(0)
		switch {
		case isEOL(ch):
			if !leading {
				return out
			}
			out = append(out, s.scanEndOfLine())
		case isSpace(ch):
			out = append(out, s.scanWhitespace())
		case s.opts.AllowComments && isCommentStart(ch, s.peek(1)):
			kind, chars := s.scanComment()
			out = append(out, Trivia{Kind: kind, Chars: chars})
		default:
			return out
		}
	}
	return out
}

func (s *scanner) scanWhitespace() Trivia {
	start := s.pos
	for s.pos < len(s.text) && isSpace(s.peek(0)) {
		if ch := s.peek(0); !isJSONSpace(ch) && !s.opts.AllowExtendedSpace {
			s.rep.addf(s.text[s.pos].Span, msgIllegalWhitespace)
		}
		s.pos++
	}
	return Trivia{Kind: Whitespace, Chars: s.take(start)}
}

func (s *scanner) scanEndOfLine() Trivia {
	start := s.pos
	ch := s.peek(0)
	if ch == '\u2028' || ch == '\u2029' {
		if !s.opts.AllowExtendedSpace {
			s.rep.addf(s.text[s.pos].Span, msgIllegalWhitespace)
		}
	}
	s.pos++
	if ch == '\r' && s.peek(0) == '\n' {
		s.pos++
	}
	return Trivia{Kind: EndOfLine, Chars: s.take(start)}
}

// scanComment consumes a comment starting at the cursor. A line comment runs
// up to but not including the next line break. An unterminated block comment
// runs to the end of input and is diagnosed.
// Precondition: isCommentStart(peek(0), peek(1)).
func (s *scanner) scanComment() (TriviaKind, Chars) {
	start := s.pos
	s.pos += 2
	if s.text[start+1].Value == '/' {
		for s.pos < len(s.text) && !isEOL(s.peek(0)) {
			s.pos++
		}
		return LineComment, s.take(start)
	}
	for s.pos < len(s.text) {
		if s.peek(0) == '*' && s.peek(1) == '/' {
			s.pos += 2
			return BlockComment, s.take(start)
		}
		s.pos++
	}
	chars := s.take(start)
	s.rep.addf(chars.Span(), msgUnterminatedCmt)
	return BlockComment, chars
}

// scanToken consumes a single token, not including trivia.
func (s *scanner) scanToken() *Token {
	if s.pos >= len(s.text) {
		return &Token{Kind: EndOfFile, pos: s.offset()}
	}
	ch := s.peek(0)

	// Handle punctuation.
	if k, ok := selfDelim(ch); ok {
		s.pos++
		return &Token{Kind: k, Chars: s.take(s.pos - 1)}
	}

	switch {
	case ch == '"' || ch == '\'':
		return s.scanString(ch)
	case isNumStart(ch):
		return s.scanNumber()
	case isCommentStart(ch, s.peek(1)):
		// Comments that reach here are disabled.
		_, chars := s.scanComment()
		s.rep.addf(chars.Span(), msgCommentsNotAllowed)
		return &Token{Kind: BadToken, Chars: chars}
	case isNameStart(ch):
		return s.scanName(s.pos)
	}
	s.pos++
	chars := s.take(s.pos - 1)
	s.rep.addf(chars.Span(), msgUnexpected, string(ch))
	return &Token{Kind: BadToken, Chars: chars}
}

// scanString consumes a string quoted by open, which is either a double or a
// single quotation mark. Unterminated strings run to the end of input.
func (s *scanner) scanString(open rune) *Token {
	start := s.pos
	if open == '\'' && !s.opts.LenientStrings {
		s.rep.addf(s.text[start].Span, msgSingleQuote)
	}
	s.pos++
	closed := false
	for s.pos < len(s.text) {
		ch := s.peek(0)
		if ch == open {
			s.pos++
			closed = true
			break
		} else if ch == '\\' {
			s.scanEscape()
			continue
		} else if ch < ' ' && !s.opts.LenientStrings {
			s.rep.addf(s.text[s.pos].Span, msgIllegalStringChar)
		}
		s.pos++
	}

	tok := &Token{Kind: String, Chars: s.take(start)}
	if !closed {
		s.rep.addf(s.text[start].Span, msgUnterminatedString)
		return tok
	}
	body := tok.Chars[1 : len(tok.Chars)-1].String()
	if v, err := escape.Unquote(mem.S(body)); err == nil {
		tok.Value = v
	}
	return tok
}

// scanEscape consumes a backslash escape inside a string.
// Precondition: peek(0) == '\\'.
func (s *scanner) scanEscape() {
	start := s.pos
	s.pos++
	ch := s.peek(0)
	if ch < 0 {
		return // the string is unterminated
	}
	s.pos++
	if ch == 'u' {
		for i := 0; i < 4; i++ {
			if !escape.IsHexDigit(s.peek(0)) {
				s.rep.addf(s.take(start).Span(), msgInvalidEscape)
				return
			}
			s.pos++
		}
		return
	}
	if !escape.IsStandard(ch) && !s.opts.LenientStrings {
		s.rep.addf(s.take(start).Span(), msgInvalidEscape)
	}
}

// scanNumber consumes a number: a maximal run of characters that could
// belong to a number, validated afterward against the grammar in effect.
func (s *scanner) scanNumber() *Token {
	start := s.pos
	if ch := s.peek(0); ch == '-' || ch == '+' {
		s.pos++
		if isNameStart(s.peek(0)) {
			return s.scanName(start) // e.g., -Infinity
		}
	}
	for s.pos < len(s.text) {
		ch := s.peek(0)
		if isDigit(ch) || ch == '.' || isNameRune(ch) {
			s.pos++
		} else if (ch == '-' || ch == '+') && isExpMark(s.text[s.pos-1].Value) {
			s.pos++
		} else {
			break
		}
	}

	tok := &Token{Kind: Number, Chars: s.take(start)}
	text := tok.Text()
	if !isLooseNumber(text) || (!s.opts.LenientNumbers && !isStrictNumber(text)) {
		s.rep.addf(tok.Span(), msgInvalidNumber)
		return tok
	}
	if v, err := strconv.ParseFloat(text, 64); err == nil {
		tok.Value = v
	}
	return tok
}

type keyword struct {
	text     mem.RO
	kind     TokenKind
	extended bool
}

var keywords = []keyword{
	{mem.S("true"), True, false},
	{mem.S("false"), False, false},
	{mem.S("null"), Null, false},
	{mem.S("NaN"), NaN, true},
	{mem.S("Infinity"), Infinity, true},
	{mem.S("-Infinity"), Infinity, true},
	{mem.S("undefined"), Undefined, true},
}

// scanName consumes a keyword or identifier whose text begins at start
// (which may be a sign character before the cursor).
func (s *scanner) scanName(start int) *Token {
	for s.pos < len(s.text) && isNameRune(s.peek(0)) {
		s.pos++
	}
	tok := &Token{Chars: s.take(start)}
	text := tok.Text()
	got := mem.S(text)
	for _, kw := range keywords {
		if !got.Equal(kw.text) {
			continue
		}
		tok.Kind = kw.kind
		if kw.extended && !s.opts.AllowExtendedLiterals {
			s.rep.addf(tok.Span(), msgLiteralNotAllowed, text)
		}
		switch kw.kind {
		case True, False:
			tok.Value = kw.kind == True
		case NaN:
			tok.Value = math.NaN()
		case Infinity:
			tok.Value = math.Inf(1)
			if strings.HasPrefix(text, "-") {
				tok.Value = math.Inf(-1)
			}
		}
		return tok
	}
	if text[0] == '-' || text[0] == '+' {
		tok.Kind = Number
		s.rep.addf(tok.Span(), msgInvalidNumber)
		return tok
	}
	tok.Kind = Identifier
	tok.Value = text
	return tok
}

// isJSONSpace reports whether ch is whitespace in standard JSON.
func isJSONSpace(ch rune) bool { return ch == ' ' || ch == '\t' }

func isSpace(ch rune) bool {
	switch ch {
	case ' ', '\t', '\f', '\v', '\u00a0', '\ufeff':
		return true
	}
	return ch > 0x7f && unicode.Is(unicode.Zs, ch)
}

func isEOL(ch rune) bool {
	return ch == '\n' || ch == '\r' || ch == '\u2028' || ch == '\u2029'
}

func isCommentStart(ch, next rune) bool { return ch == '/' && (next == '/' || next == '*') }

func isNumStart(ch rune) bool { return ch == '-' || ch == '+' || ch == '.' || isDigit(ch) }
func isExpMark(ch rune) bool  { return ch == 'e' || ch == 'E' }
func isDigit(ch rune) bool    { return '0' <= ch && ch <= '9' }

func isNameStart(ch rune) bool {
	return ch == '_' || ch == '$' || unicode.IsLetter(ch)
}

func isNameRune(ch rune) bool {
	return isNameStart(ch) || unicode.IsDigit(ch)
}

// isStrictNumber reports whether s matches the JSON number grammar:
//
//	-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][-+]?[0-9]+)?
func isStrictNumber(s string) bool {
	s = strings.TrimPrefix(s, "-")
	n := countDigits(s)
	if n == 0 || (n > 1 && s[0] == '0') {
		return false // missing digits or extra leading zeroes
	}
	s = s[n:]
	if strings.HasPrefix(s, ".") {
		n := countDigits(s[1:])
		if n == 0 {
			return false
		}
		s = s[1+n:]
	}
	return isExponent(s)
}

// isLooseNumber reports whether s matches the relaxed number grammar, which
// permits a leading "+", leading zeroes, and a leading or trailing ".":
//
//	[-+]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][-+]?[0-9]+)?
func isLooseNumber(s string) bool {
	if s != "" && (s[0] == '-' || s[0] == '+') {
		s = s[1:]
	}
	n := countDigits(s)
	s = s[n:]
	if strings.HasPrefix(s, ".") {
		m := countDigits(s[1:])
		if n+m == 0 {
			return false
		}
		s = s[1+m:]
	} else if n == 0 {
		return false
	}
	return isExponent(s)
}

// isExponent reports whether s is empty or a complete exponent.
func isExponent(s string) bool {
	if s == "" {
		return true
	} else if !isExpMark(rune(s[0])) {
		return false
	}
	s = s[1:]
	if s != "" && (s[0] == '-' || s[0] == '+') {
		s = s[1:]
	}
	return s != "" && countDigits(s) == len(s)
}

func countDigits(s string) int {
	var n int
	for n < len(s) && isDigit(rune(s[n])) {
		n++
	}
	return n
}

var self = [...]TokenKind{OpenBrace, CloseBrace, OpenBracket, CloseBracket, Comma, Colon}

func selfDelim(ch rune) (TokenKind, bool) {
	i := strings.IndexRune("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return BadToken, false
}
