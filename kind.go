// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package vjson

// TokenKind is the type of a lexical token in the JSON grammar.
type TokenKind byte

// Constants defining the valid TokenKind values.
const (
	BadToken     TokenKind = iota // unrecognized input, already diagnosed
	OpenBrace                     // left brace "{"
	CloseBrace                    // right brace "}"
	OpenBracket                   // left square bracket "["
	CloseBracket                  // right square bracket "]"
	Comma                         // comma ","
	Colon                         // colon ":"
	String                        // quoted string
	Number                        // number
	True                          // constant: true
	False                         // constant: false
	Null                          // constant: null
	Identifier                    // unquoted name, e.g. a loose property key

	// Extended literals, accepted in loose mode.
	NaN       // constant: NaN
	Infinity  // constant: Infinity or -Infinity
	Undefined // constant: undefined

	EndOfFile // end of input
)

var tokenStr = [...]string{
	BadToken:     "BadToken",
	OpenBrace:    "OpenBrace",
	CloseBrace:   "CloseBrace",
	OpenBracket:  "OpenBracket",
	CloseBracket: "CloseBracket",
	Comma:        "Comma",
	Colon:        "Colon",
	String:       "String",
	Number:       "Number",
	True:         "True",
	False:        "False",
	Null:         "Null",
	Identifier:   "Identifier",
	NaN:          "NaN",
	Infinity:     "Infinity",
	Undefined:    "Undefined",
	EndOfFile:    "EndOfFile",
}

func (k TokenKind) String() string {
	v := int(k)
	if v >= len(tokenStr) {
		return tokenStr[BadToken]
	}
	return tokenStr[v]
}

// punct gives the source text of the punctuation kinds, for messages.
var punct = [...]string{
	OpenBrace:    "{",
	CloseBrace:   "}",
	OpenBracket:  "[",
	CloseBracket: "]",
	Comma:        ",",
	Colon:        ":",
}

// isLiteral reports whether k is a token that forms a complete value.
func (k TokenKind) isLiteral() bool {
	switch k {
	case String, Number, True, False, Null, NaN, Infinity, Undefined:
		return true
	}
	return false
}

// startsValue reports whether k can begin a value.
func (k TokenKind) startsValue() bool {
	return k == OpenBrace || k == OpenBracket || k.isLiteral()
}

// isSync reports whether k is a synchronization point for error recovery.
func (k TokenKind) isSync() bool {
	return k == Comma || k == CloseBrace || k == CloseBracket || k == EndOfFile
}

// TriviaKind is the type of a trivia element.
type TriviaKind byte

// Constants defining the valid TriviaKind values.
const (
	Whitespace   TriviaKind = iota // spaces and tabs
	EndOfLine                      // a line break: LF, CR, CRLF, LS, or PS
	LineComment                    // comment: // ...
	BlockComment                   // comment: /* ... */
)

var triviaStr = [...]string{
	Whitespace:   "Whitespace",
	EndOfLine:    "EndOfLine",
	LineComment:  "LineComment",
	BlockComment: "BlockComment",
}

func (k TriviaKind) String() string {
	if int(k) >= len(triviaStr) {
		return "InvalidTrivia"
	}
	return triviaStr[k]
}

// NodeKind is the type of a syntax tree node.
type NodeKind byte

// Constants defining the valid NodeKind values.
const (
	CompilationUnit NodeKind = iota // root: Value EndOfFile
	Object                          // { Property, ... }
	Array                           // [ Value, ... ]
	Property                        // key : Value
	Literal                         // a single literal token
	Error                           // tokens skipped during recovery
)

var nodeStr = [...]string{
	CompilationUnit: "CompilationUnit",
	Object:          "Object",
	Array:           "Array",
	Property:        "Property",
	Literal:         "Literal",
	Error:           "Error",
}

func (k NodeKind) String() string {
	if int(k) >= len(nodeStr) {
		return "InvalidNode"
	}
	return nodeStr[k]
}
