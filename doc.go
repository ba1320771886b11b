// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package vjson implements a lossless parser for JSON text embedded in the
// string literals of a host language.
//
// # Characters
//
// The parser does not read bytes. Its input is a sequence of virtual
// characters (Chars), each of which records a logical character together with
// the span of host source it was decoded from. For a host literal such as the
// Go string "{\"a\": 1}", the character '"' at logical offset 1 occupies two
// bytes of host source (\"). Positions reported by the parser are always in
// host coordinates, so they can be shown to a user without translation.
//
// Use FromString to construct characters for unescaped text, or a host
// converter such as the one in package golit for escaped literals.
//
// # Parsing
//
// Call Parse with a character sequence and a mode. In strict mode, only
// standard JSON is accepted without complaint. In loose mode, comments,
// trailing commas, unquoted keys, lenient numbers and strings, and the
// constants NaN, Infinity, and undefined are also accepted. Use ParseOptions
// to choose extensions individually.
//
//	tree := vjson.Parse(vjson.FromString(`{ x: 1 }`, 0), false)
//	for _, d := range tree.Diagnostics {
//	   log.Printf("%v: %s", d.Span, d.Message)
//	}
//
// Parsing never fails on malformed input. Each problem is recorded as a
// Diagnostic and the parser recovers, inserting missing tokens or collecting
// skipped tokens into Error nodes as needed.
//
// # Trees
//
// A Tree is rooted at a CompilationUnit node. Nodes have ordered children,
// each of which is either a *Node or a *Token:
//
//	Node kind       | Children
//	--------------- | ------------------------------------------------
//	CompilationUnit | Value EndOfFile
//	Object          | OpenBrace (Property Comma?)* CloseBrace
//	Array           | OpenBracket (Value Comma?)* CloseBracket
//	Property        | key Colon Value
//	Literal         | a single literal token
//	Error           | tokens skipped during recovery
//
// Whitespace, line breaks, and comments are attached to tokens as trivia.
// Trivia on the same line after a token is trailing trivia of that token;
// everything else is leading trivia of the token that follows. Concatenating
// the leading trivia, text, and trailing trivia of every token in the tree,
// in order, reproduces the input exactly. CheckCoverage verifies this.
package vjson
