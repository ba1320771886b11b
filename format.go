// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package vjson

import (
	"fmt"
	"io"
	"strings"
)

// Format writes a human-readable rendering of the structure of t to w, one
// node or token per line, indented by depth. Token lines show the kind, the
// quoted text, the decoded value if any, and the attached trivia. If t has
// diagnostics, they are listed after the tree.
func Format(w io.Writer, t *Tree) error {
	var sb strings.Builder
	formatNode(&sb, t.Root, "")
	if len(t.Diagnostics) != 0 {
		sb.WriteString("Diagnostics\n")
		for _, d := range t.Diagnostics {
			fmt.Fprintf(&sb, "  %s: %s\n", d.Span, d.Message)
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// FormatToString renders t as Format does, and returns the result.
func FormatToString(t *Tree) string {
	var sb strings.Builder
	Format(&sb, t) // a strings.Builder does not fail
	return sb.String()
}

func formatNode(sb *strings.Builder, n *Node, indent string) {
	sb.WriteString(indent)
	sb.WriteString(n.Kind.String())
	sb.WriteByte('\n')
	for _, c := range n.Children {
		if c.Node != nil {
			formatNode(sb, c.Node, indent+"  ")
		} else {
			formatToken(sb, c.Token, indent+"  ")
		}
	}
}

func formatToken(sb *strings.Builder, t *Token, indent string) {
	sb.WriteString(indent)
	sb.WriteString(t.Kind.String())
	if t.Missing {
		sb.WriteString(" (missing)")
	} else if len(t.Chars) != 0 {
		sb.WriteByte(' ')
		sb.WriteString(Quote(t.Text()))
	}
	switch v := t.Value.(type) {
	case nil:
	case string:
		if t.Kind != Identifier {
			sb.WriteString(" value=")
			sb.WriteString(Quote(v))
		}
	default:
		fmt.Fprintf(sb, " value=%v", v)
	}
	formatTrivia(sb, "leading", t.Leading)
	formatTrivia(sb, "trailing", t.Trailing)
	sb.WriteByte('\n')
}

func formatTrivia(sb *strings.Builder, label string, tvs []Trivia) {
	if len(tvs) == 0 {
		return
	}
	fmt.Fprintf(sb, " %s=[", label)
	for i, tv := range tvs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(tv.Kind.String())
		sb.WriteByte(' ')
		sb.WriteString(Quote(tv.Chars.String()))
	}
	sb.WriteByte(']')
}

