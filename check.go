// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package vjson

import "fmt"

// CheckCoverage verifies that the tokens and trivia of t, concatenated in
// document order, reproduce t.Text exactly. A non-nil error indicates a bug
// in the parser, not a problem with the input.
func CheckCoverage(t *Tree) error {
	if t.Root == nil || t.Root.Kind != CompilationUnit {
		return fmt.Errorf("root is not a %v", CompilationUnit)
	}
	n, err := coverNode(t.Root, t.Text, 0)
	if err != nil {
		return err
	} else if n != len(t.Text) {
		return fmt.Errorf("tree covers %d of %d characters", n, len(t.Text))
	}
	last := t.Root.Children[len(t.Root.Children)-1]
	if last.Token == nil || last.Token.Kind != EndOfFile {
		return fmt.Errorf("tree does not end with %v", EndOfFile)
	}
	return nil
}

// coverNode checks that the characters of n match text beginning at offset
// pos, and returns the number of characters n covers.
func coverNode(n *Node, text Chars, pos int) (int, error) {
	var sum int
	for _, c := range n.Children {
		var k int
		var err error
		switch {
		case c.Node != nil && c.Token != nil:
			return 0, fmt.Errorf("%v child has both node and token", n.Kind)
		case c.Node != nil:
			k, err = coverNode(c.Node, text, pos+sum)
		case c.Token != nil:
			k, err = coverToken(c.Token, text, pos+sum)
		default:
			return 0, fmt.Errorf("%v has an empty child", n.Kind)
		}
		if err != nil {
			return 0, err
		}
		sum += k
	}
	return sum, nil
}

func coverToken(t *Token, text Chars, pos int) (int, error) {
	if t.Missing && len(t.Chars) != 0 {
		return 0, fmt.Errorf("missing %v token has text %q", t.Kind, t.Text())
	}
	var sum int
	for _, tv := range t.Leading {
		k, err := coverTrivia(tv, text, pos+sum)
		if err != nil {
			return 0, err
		}
		sum += k
	}
	k, err := coverChars(t.Chars, text, pos+sum)
	if err != nil {
		return 0, fmt.Errorf("%v token: %w", t.Kind, err)
	}
	sum += k
	for _, tv := range t.Trailing {
		k, err := coverTrivia(tv, text, pos+sum)
		if err != nil {
			return 0, err
		}
		sum += k
	}
	return sum, nil
}

func coverTrivia(tv Trivia, text Chars, pos int) (int, error) {
	switch tv.Kind {
	case Whitespace, EndOfLine, LineComment, BlockComment:
	default:
		return 0, fmt.Errorf("invalid trivia kind %d", tv.Kind)
	}
	if len(tv.Chars) == 0 {
		return 0, fmt.Errorf("empty %v trivia at %d", tv.Kind, pos)
	}
	k, err := coverChars(tv.Chars, text, pos)
	if err != nil {
		return 0, fmt.Errorf("%v trivia: %w", tv.Kind, err)
	}
	return k, nil
}

func coverChars(cs, text Chars, pos int) (int, error) {
	if pos+len(cs) > len(text) {
		return 0, fmt.Errorf("%d characters at %d exceed input length %d", len(cs), pos, len(text))
	}
	for i, c := range cs {
		if want := text[pos+i]; c != want {
			return 0, fmt.Errorf("char %d is %q at %v, want %q at %v", pos+i, c.Value, c.Span, want.Value, want.Span)
		}
	}
	return len(cs), nil
}
