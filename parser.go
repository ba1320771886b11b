// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package vjson

import "fmt"

// Parse parses text as a single JSON value and returns its syntax tree. If
// strict is true, only standard JSON is accepted without diagnostics;
// otherwise the extensions enabled by Loose are accepted as well.
//
// Parse returns nil if text is empty. Syntax errors do not stop the parse:
// they are recorded in the Diagnostics of the tree, and the tree still covers
// every character of text.
//
// Parse panics if text violates the ordering invariants of Chars, since that
// indicates a bug in whatever produced the sequence.
func Parse(text Chars, strict bool) *Tree { return ParseOptions(text, Mode(strict)) }

// ParseOptions is as Parse, but with the given options.
func ParseOptions(text Chars, opts Options) *Tree {
	if len(text) == 0 {
		return nil
	}
	if err := text.Validate(); err != nil {
		panic(fmt.Sprintf("vjson: invalid character sequence: %v", err))
	}
	p := newParser(text, opts)
	root := p.parseCompilationUnit()
	return &Tree{Root: root, Diagnostics: p.rep.sorted(), Text: text}
}

// A parser is a recursive-descent parser over the tokens of a scanner. The
// current token is always available in tok; advance consumes it.
type parser struct {
	s    *scanner
	rep  *reporter
	tok  *Token
	opts Options

	depth   int // current nesting depth of objects and arrays
	objects int // number of open objects
	arrays  int // number of open arrays
}

func newParser(text Chars, opts Options) *parser {
	rep := new(reporter)
	p := &parser{
		s:    &scanner{text: text, opts: opts, rep: rep},
		rep:  rep,
		opts: opts,
	}
	p.tok = p.s.next()
	return p
}

// advance returns the current token and moves to the next one.
func (p *parser) advance() *Token {
	cur := p.tok
	p.tok = p.s.next()
	return cur
}

// parseCompilationUnit consumes the entire input.
func (p *parser) parseCompilationUnit() *Node {
	kids := p.skipBad(nil)
	switch k := p.tok.Kind; {
	case k == EndOfFile:
		p.rep.addf(p.tok.Span(), msgValueRequired)
	case k.startsValue():
		kids = append(kids, nodeChild(p.parseValue()))
		kids = p.skipBad(kids)
		if p.tok.Kind != EndOfFile {
			p.rep.addf(p.tok.Span(), msgOnlyOneValue)
		}
	default:
		kids = append(kids, nodeChild(p.unexpected()))
	}

	// Whatever remains after the value (or after recovering from its absence)
	// is collected without further complaint.
	if p.tok.Kind != EndOfFile {
		kids = append(kids, nodeChild(p.skipWhile(func(TokenKind) bool { return true })))
	}
	kids = append(kids, tokenChild(p.advance()))
	return &Node{Kind: CompilationUnit, Children: kids}
}

// parseValue consumes a single value of any type. If the current token is a
// synchronization point, no input is consumed and the result is a literal
// wrapping a missing token.
func (p *parser) parseValue() *Node {
	switch k := p.tok.Kind; {
	case k == OpenBrace:
		return p.parseObject()
	case k == OpenBracket:
		return p.parseArray()
	case k.isLiteral():
		return &Node{Kind: Literal, Children: []Child{tokenChild(p.advance())}}
	case k.isSync():
		p.rep.addf(p.tok.Span(), msgValueRequired)
		return p.missingValue()
	default:
		return p.unexpected()
	}
}

// parseObject consumes an object and its members.
// Precondition: tok == OpenBrace.
func (p *parser) parseObject() *Node {
	if p.depth >= p.opts.maxDepth() {
		return p.tooDeep()
	}
	p.depth++
	p.objects++
	defer func() { p.depth--; p.objects-- }()

	kids := []Child{tokenChild(p.advance())}
	var lastComma *Token
	want := true // a property is wanted before the next comma
	for {
		kids = p.skipBad(kids)
		k := p.tok.Kind
		if k == CloseBrace || k == EndOfFile || (k == CloseBracket && p.arrays > 0) {
			break
		}
		switch {
		case k == Comma:
			if want {
				p.rep.addf(p.tok.Span(), msgPropertyRequired)
			}
			lastComma = p.advance()
			kids = append(kids, tokenChild(lastComma))
			want = true
			continue

		case k == Identifier || k.isLiteral():
			if !want {
				p.rep.addf(p.tok.Span(), msgExpected, punct[Comma])
			}
			kids = append(kids, nodeChild(p.parseProperty()))

		default:
			kids = append(kids, nodeChild(p.unexpected()))
		}
		lastComma = nil
		want = false
	}
	p.checkTrailingComma(lastComma, CloseBrace)
	kids = append(kids, tokenChild(p.require(CloseBrace, kids)))
	return &Node{Kind: Object, Children: kids}
}

// parseProperty consumes a single key: value member.
// Precondition: tok is an Identifier or literal.
func (p *parser) parseProperty() *Node {
	key := p.advance()
	switch {
	case key.Kind == String:
		// OK
	case key.Kind == Identifier && p.opts.AllowUnquotedKeys:
		// OK
	default:
		p.rep.addf(key.Span(), msgPropertyName)
	}
	kids := p.skipBad([]Child{tokenChild(key)})
	kids = append(kids, tokenChild(p.require(Colon, kids)))
	kids = p.skipBad(kids)
	kids = append(kids, nodeChild(p.parseValue()))
	return &Node{Kind: Property, Children: kids}
}

// parseArray consumes an array and its elements.
// Precondition: tok == OpenBracket.
func (p *parser) parseArray() *Node {
	if p.depth >= p.opts.maxDepth() {
		return p.tooDeep()
	}
	p.depth++
	p.arrays++
	defer func() { p.depth--; p.arrays-- }()

	kids := []Child{tokenChild(p.advance())}
	var lastComma *Token
	want := true // a value is wanted before the next comma
	for {
		kids = p.skipBad(kids)
		k := p.tok.Kind
		if k == CloseBracket || k == EndOfFile || (k == CloseBrace && p.objects > 0) {
			break
		}
		switch {
		case k == Comma:
			if want {
				p.rep.addf(p.tok.Span(), msgValueRequired)
				kids = append(kids, nodeChild(p.missingValue()))
			}
			lastComma = p.advance()
			kids = append(kids, tokenChild(lastComma))
			want = true
			continue

		case k.startsValue():
			if !want {
				p.rep.addf(p.tok.Span(), msgExpected, punct[Comma])
			}
			kids = append(kids, nodeChild(p.parseValue()))

		default:
			kids = append(kids, nodeChild(p.unexpected()))
		}
		lastComma = nil
		want = false
	}
	p.checkTrailingComma(lastComma, CloseBracket)
	kids = append(kids, tokenChild(p.require(CloseBracket, kids)))
	return &Node{Kind: Array, Children: kids}
}

// checkTrailingComma reports a diagnostic if comma is non-nil and followed by
// the closing delimiter, and trailing commas are not allowed.
func (p *parser) checkTrailingComma(comma *Token, close TokenKind) {
	if comma != nil && p.tok.Kind == close && !p.opts.AllowTrailingCommas {
		p.rep.addf(comma.Span(), msgTrailingComma)
	}
}

// require consumes and returns the current token if it has the given kind.
// Otherwise, it reports a diagnostic just after the last of the preceding
// children and returns a missing token at that position.
func (p *parser) require(kind TokenKind, prev []Child) *Token {
	if p.tok.Kind == kind {
		return p.advance()
	}
	pos := endOf(prev)
	p.rep.addf(Span{Pos: pos, End: pos}, msgExpected, punct[kind])
	return &Token{Kind: kind, Missing: true, pos: pos}
}

// missingValue returns a literal wrapping a missing token at the position of
// the current token.
func (p *parser) missingValue() *Node {
	tok := &Token{Kind: Null, Missing: true, pos: p.tok.Span().Pos}
	return &Node{Kind: Literal, Children: []Child{tokenChild(tok)}}
}

// unexpected reports the current token as unexpected, then skips it and any
// following tokens up to the next synchronization point. The skipped tokens
// are returned in an Error node.
func (p *parser) unexpected() *Node {
	if p.tok.Kind != BadToken { // bad tokens were diagnosed by the scanner
		p.rep.addf(p.tok.Span(), msgUnexpected, p.tok.Text())
	}
	first := p.advance()
	n := p.skipWhile(func(k TokenKind) bool { return !k.isSync() })
	n.Children = append([]Child{tokenChild(first)}, n.Children...)
	return n
}

// skipBad appends any bad tokens at the cursor to kids, wrapped in an Error
// node. Bad tokens were diagnosed by the scanner, and do not otherwise affect
// the parse: in particular, a comment in strict mode is recovered from in the
// same way as whitespace.
func (p *parser) skipBad(kids []Child) []Child {
	if p.tok.Kind != BadToken {
		return kids
	}
	return append(kids, nodeChild(p.skipWhile(func(k TokenKind) bool { return k == BadToken })))
}

// skipWhile consumes tokens while f reports true for their kind, stopping at
// end of input, and returns them in an Error node.
func (p *parser) skipWhile(f func(TokenKind) bool) *Node {
	var kids []Child
	for p.tok.Kind != EndOfFile && f(p.tok.Kind) {
		kids = append(kids, tokenChild(p.advance()))
	}
	return &Node{Kind: Error, Children: kids}
}

// tooDeep reports that the nesting limit was reached, and consumes the
// remainder of the input into an Error node. No further diagnostics are
// reported after this point, so the enclosing constructs unwind quietly.
func (p *parser) tooDeep() *Node {
	p.rep.addf(p.tok.Span(), msgTooDeep)
	p.rep.muted = true
	return p.skipWhile(func(TokenKind) bool { return true })
}

// endOf returns the host offset just after the last non-missing, non-bad
// token among kids, excluding trailing trivia.
func endOf(kids []Child) int {
	for i := len(kids) - 1; i >= 0; i-- {
		var t *Token
		if c := kids[i]; c.Token != nil {
			t = c.Token
		} else {
			t = lastRealToken(c.Node)
		}
		if t != nil && !t.Missing && t.Kind != BadToken {
			return t.Span().End
		}
	}
	return 0
}

func lastRealToken(n *Node) *Token {
	for i := len(n.Children) - 1; i >= 0; i-- {
		c := n.Children[i]
		if c.Token != nil && !c.Token.Missing && c.Token.Kind != BadToken {
			return c.Token
		} else if c.Node != nil {
			if t := lastRealToken(c.Node); t != nil {
				return t
			}
		}
	}
	return nil
}
