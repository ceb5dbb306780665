package token

import (
	"interlit/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric, boolean, string,
// character, or interpolation literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, CharLit, IStringLit, FStringLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsInterp reports whether the token is an interpolated string literal.
func (t Token) IsInterp() bool {
	return t.Kind == IStringLit || t.Kind == FStringLit
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case Plus, Minus, Star, Slash, Percent, Assign, EqEq, Bang, BangEq,
		Lt, LtEq, Gt, GtEq, Shl, Shr, Amp, Pipe, Caret, Tilde, AndAnd, OrOr,
		Question, Colon, Semicolon, Comma, Dot, Arrow,
		LParen, RParen, LBrace, RBrace, LBracket, RBracket, Underscore, Dollar:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
