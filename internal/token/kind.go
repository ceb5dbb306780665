package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// Underscore represents a lone '_'.
	Underscore

	// KwMixin represents the 'mixin' code-injection keyword.
	KwMixin // mixin
	// KwFn represents the 'fn' keyword (function types).
	KwFn // fn
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false

	// IntLit represents an integer literal.
	IntLit
	// FloatLit represents a floating point literal.
	FloatLit
	// StringLit represents an ordinary "..." literal.
	StringLit
	// CharLit represents a '...' character literal.
	CharLit
	// IStringLit represents an interspersion literal i"...".
	IStringLit
	// FStringLit represents a format-string literal f"...".
	FStringLit

	Plus    // +
	Minus   // -
	Star    // *
	Slash   // /
	Percent // %
	Assign  // =
	EqEq    // ==
	Bang    // !
	BangEq  // !=
	Lt      // <
	LtEq    // <=
	Gt      // >
	GtEq    // >=
	Shl     // <<
	Shr     // >>
	Amp     // &
	Pipe    // |
	Caret   // ^
	Tilde   // ~
	AndAnd  // &&
	OrOr    // ||

	Question  // ?
	Colon     // :
	Semicolon // ;
	Comma     // ,
	Dot       // .
	Arrow     // ->
	LParen    // (
	RParen    // )
	LBrace    // {
	RBrace    // }
	LBracket  // [
	RBracket  // ]
	Dollar    // $ (only valid inside interpolation bodies; an error elsewhere)
)

var kindNames = map[Kind]string{
	Invalid:    "Invalid",
	EOF:        "EOF",
	Ident:      "Ident",
	Underscore: "Underscore",
	KwMixin:    "mixin",
	KwFn:       "fn",
	KwTrue:     "true",
	KwFalse:    "false",
	IntLit:     "IntLit",
	FloatLit:   "FloatLit",
	StringLit:  "StringLit",
	CharLit:    "CharLit",
	IStringLit: "IStringLit",
	FStringLit: "FStringLit",
	Plus:       "+",
	Minus:      "-",
	Star:       "*",
	Slash:      "/",
	Percent:    "%",
	Assign:     "=",
	EqEq:       "==",
	Bang:       "!",
	BangEq:     "!=",
	Lt:         "<",
	LtEq:       "<=",
	Gt:         ">",
	GtEq:       ">=",
	Shl:        "<<",
	Shr:        ">>",
	Amp:        "&",
	Pipe:       "|",
	Caret:      "^",
	Tilde:      "~",
	AndAnd:     "&&",
	OrOr:       "||",
	Question:   "?",
	Colon:      ":",
	Semicolon:  ";",
	Comma:      ",",
	Dot:        ".",
	Arrow:      "->",
	LParen:     "(",
	RParen:     ")",
	LBrace:     "{",
	RBrace:     "}",
	LBracket:   "[",
	RBracket:   "]",
	Dollar:     "$",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}
