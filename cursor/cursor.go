// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements traversal over the syntax tree of a JSON value.
package cursor

import (
	"fmt"

	"github.com/creachadair/vjson"
)

// Path traverses a sequential path into the structure of n where path
// elements are as documented for the Cursor.Down method. This is a
// convenience wrapper for creating a cursor, applying path, and retrieving
// its node.
func Path(n *vjson.Node, path ...any) (*vjson.Node, error) {
	c := New(n).Down(path...)
	if err := c.Err(); err != nil {
		return nil, err
	}
	return c.Node(), nil
}

// A Cursor is a pointer that navigates into the structure of a syntax tree.
type Cursor struct {
	org *vjson.Node
	stk []*vjson.Node
	err error
}

// New constructs a new Cursor to traverse the structure of origin. If origin
// is a CompilationUnit, traversal begins from its value.
func New(origin *vjson.Node) *Cursor { return &Cursor{org: origin} }

// Origin returns the origin node of c.
func (c *Cursor) Origin() *vjson.Node { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Node reports the current node under the cursor.
func (c *Cursor) Node() *vjson.Node {
	if c.AtOrigin() {
		return c.org
	}
	return c.stk[len(c.stk)-1]
}

// Path reports the complete sequence of nodes from the origin to the current
// location in c.
func (c *Cursor) Path() []*vjson.Node {
	return append([]*vjson.Node{c.org}, c.stk...)
}

// Err reports the error from the most recent traversal operation, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves the cursor one position upward in the structure, if possible.
// It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset resets the cursor to its origin and clears its error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.err = nil }

// Down traverses a sequential path into the structure of c starting from the
// current node, where path elements are either strings (denoting object
// keys), integers (denoting offsets into arrays), functions (see below), or
// nil. If the path cannot be completely consumed, traversal stops and an
// error is recorded. Use Err to recover the error.
//
// If a path element is a string, the corresponding node must be an Object,
// and the string selects the first Property whose decoded key equals it. If
// this is the last element of the path, the property is the result;
// otherwise, subsequent path elements continue from its value. Use a nil path
// element to step from a property to its value at the end of a path.
//
// If a path element is an integer, the corresponding node must be an Array or
// Object, and the integer selects an element or property by index. Negative
// indices count backward from the end (-1 is last, -2 second last).
//
// If a path element is a function, the function is executed and its result
// becomes the next node in the sequence. The function must have a signature
//
//	func(*vjson.Node) (*vjson.Node, error)
//
// If the function reports an error, traversal stops and the error is recorded.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil // reset error
	cur := c.Node()
	if cur.Kind == vjson.CompilationUnit {
		v := cur.Value()
		if v == nil {
			return c.setErrorf("no value in %v", cur.Kind)
		}
		cur = c.push(v)
	}
	for _, elt := range path {
		// If the previous step ended on a property, interpret the next path
		// element relative to its value.
		if cur.Kind == vjson.Property {
			cur = c.push(cur.Value())
		}

		switch t := elt.(type) {
		case string:
			if cur.Kind != vjson.Object {
				return c.setErrorf("cannot traverse %v with %q", cur.Kind, elt)
			}
			p := find(cur, t)
			if p == nil {
				return c.setErrorf("key %q not found", t)
			}
			cur = c.push(p)

		case int:
			var elts []*vjson.Node
			switch cur.Kind {
			case vjson.Array:
				elts = cur.Elements()
			case vjson.Object:
				elts = cur.Properties()
			default:
				return c.setErrorf("cannot traverse %v with %v", cur.Kind, elt)
			}
			i, ok := fixArrayBound(len(elts), t)
			if !ok {
				return c.setErrorf("%v index %d out of bounds (n=%d)", cur.Kind, i, len(elts))
			}
			cur = c.push(elts[i])

		case func(*vjson.Node) (*vjson.Node, error):
			next, err := t(cur)
			if err != nil {
				c.err = err
				return c
			}
			cur = c.push(next)

		case nil:
			// Do nothing. This case supports indirecting through a property at
			// the end of the path.

		default:
			return c.setErrorf("invalid path element %T", elt)
		}
	}
	return c
}

func (c *Cursor) push(n *vjson.Node) *vjson.Node { c.stk = append(c.stk, n); return n }

func (c *Cursor) setErrorf(msg string, args ...any) *Cursor {
	c.err = fmt.Errorf(msg, args...)
	return c
}

// find returns the first property of obj whose key decodes to name, or nil.
func find(obj *vjson.Node, name string) *vjson.Node {
	for _, p := range obj.Properties() {
		if key, ok := p.Name(); ok && key == name {
			return p
		}
	}
	return nil
}

func fixArrayBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
