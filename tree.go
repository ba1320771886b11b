// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package vjson

// Trivia is a run of non-semantic text attached to a token.
type Trivia struct {
	Kind  TriviaKind
	Chars Chars
}

// A Token is a terminal of the syntax tree. The text of the token itself is
// in Chars; surrounding whitespace and comments are in Leading and Trailing.
type Token struct {
	Kind     TokenKind
	Leading  []Trivia
	Chars    Chars
	Trailing []Trivia

	// Value is the decoded value of a literal token, if it has one:
	//
	//	String      string (escapes undone)
	//	Number      float64
	//	True, False bool
	//	NaN         float64 (NaN)
	//	Infinity    float64 (±Inf)
	//	Identifier  string
	Value any

	// Missing reports whether this token was synthesized during error
	// recovery. A missing token has no characters.
	Missing bool

	pos int // host offset for zero-width tokens
}

// Span returns the host span of the token text, excluding trivia. The span of
// a missing or end-of-file token is empty, at the position it was expected.
func (t *Token) Span() Span {
	if len(t.Chars) == 0 {
		return Span{Pos: t.pos, End: t.pos}
	}
	return t.Chars.Span()
}

// Text returns the logical text of the token, excluding trivia.
func (t *Token) Text() string { return t.Chars.String() }

// FullChars returns all the characters covered by t, including trivia, in
// document order.
func (t *Token) FullChars() Chars {
	var out Chars
	for _, tv := range t.Leading {
		out = append(out, tv.Chars...)
	}
	out = append(out, t.Chars...)
	for _, tv := range t.Trailing {
		out = append(out, tv.Chars...)
	}
	return out
}

// A Child is a single child of a node: exactly one of Node or Token is set.
type Child struct {
	Node  *Node
	Token *Token
}

// IsNode reports whether c is a node (true) or a token (false).
func (c Child) IsNode() bool { return c.Node != nil }

// Span returns the span of the child, excluding trivia.
func (c Child) Span() Span {
	if c.Node != nil {
		return c.Node.Span()
	}
	return c.Token.Span()
}

func nodeChild(n *Node) Child   { return Child{Node: n} }
func tokenChild(t *Token) Child { return Child{Token: t} }

// A Node is an interior node of the syntax tree.
type Node struct {
	Kind     NodeKind
	Children []Child
}

// Span returns the span of the text of n from its first to its last token,
// excluding leading and trailing trivia. Missing tokens are included as
// empty spans at their expected positions.
func (n *Node) Span() Span {
	first, last := n.firstToken(), n.lastToken()
	if first == nil {
		return Span{}
	}
	return Span{Pos: first.Span().Pos, End: last.Span().End}
}

func (n *Node) firstToken() *Token {
	for _, c := range n.Children {
		if c.Token != nil {
			return c.Token
		} else if t := c.Node.firstToken(); t != nil {
			return t
		}
	}
	return nil
}

func (n *Node) lastToken() *Token {
	for i := len(n.Children) - 1; i >= 0; i-- {
		c := n.Children[i]
		if c.Token != nil {
			return c.Token
		} else if t := c.Node.lastToken(); t != nil {
			return t
		}
	}
	return nil
}

// Token returns the token of a Literal node, or nil for other kinds.
func (n *Node) Token() *Token {
	if n.Kind != Literal || len(n.Children) == 0 {
		return nil
	}
	return n.Children[0].Token
}

// Key returns the key token of a Property node, or nil for other kinds.
func (n *Node) Key() *Token {
	if n.Kind != Property || len(n.Children) == 0 {
		return nil
	}
	return n.Children[0].Token
}

// Name returns the decoded key of a Property node. It reports false if n is
// not a property or its key has no string value.
func (n *Node) Name() (string, bool) {
	key := n.Key()
	if key == nil {
		return "", false
	}
	s, ok := key.Value.(string)
	return s, ok
}

// Value returns the value of a Property or CompilationUnit node, or nil if n
// has no value.
func (n *Node) Value() *Node {
	switch n.Kind {
	case Property:
		if c := n.Children[len(n.Children)-1]; c.Node != nil {
			return c.Node
		}
	case CompilationUnit:
		for _, c := range n.Children {
			if c.Node != nil && c.Node.Kind != Error {
				return c.Node
			}
		}
	}
	return nil
}

// Properties returns the property nodes of an Object node.
func (n *Node) Properties() []*Node { return n.childNodes(Object, Property) }

// Elements returns the element nodes of an Array node. Error nodes are not
// included.
func (n *Node) Elements() []*Node { return n.childNodes(Array, Object, Array, Literal) }

func (n *Node) childNodes(parent NodeKind, kinds ...NodeKind) []*Node {
	if n.Kind != parent {
		return nil
	}
	var out []*Node
	for _, c := range n.Children {
		if c.Node == nil {
			continue
		}
		for _, k := range kinds {
			if c.Node.Kind == k {
				out = append(out, c.Node)
				break
			}
		}
	}
	return out
}

// Walk traverses the tree rooted at n in document order. It calls f for n
// itself and, if f returns true, recursively for each child of n. Tokens are
// visited as leaves.
func Walk(n *Node, f func(Child) bool) {
	if !f(nodeChild(n)) {
		return
	}
	for _, c := range n.Children {
		if c.Node != nil {
			Walk(c.Node, f)
		} else {
			f(c)
		}
	}
}

// Tokens returns all the tokens of the tree rooted at n, including missing
// tokens, in document order.
func (n *Node) Tokens() []*Token {
	var out []*Token
	Walk(n, func(c Child) bool {
		if c.Token != nil {
			out = append(out, c.Token)
		}
		return true
	})
	return out
}

// A Tree is the result of parsing a sequence of characters.
type Tree struct {
	Root        *Node        // the CompilationUnit
	Diagnostics []Diagnostic // ordered by position
	Text        Chars        // the input sequence
}
