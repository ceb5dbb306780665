package parser

import (
	"interlit/internal/ast"
	"interlit/internal/diag"
	"interlit/internal/lexer"
	"interlit/internal/source"
)

// TypeSpan parses interior as a type. It is one of the two pure classifier
// hooks: success plus consumed byte length, no reported diagnostics (the
// classifier expects failed attempts and must stay silent about them).
func TypeSpan(file *source.File, interior source.Span) (*ast.Type, uint32, bool) {
	p := spanParser(file, interior)
	t, ok := p.parseType()
	if !ok {
		return nil, 0, false
	}
	return t, p.consumedFrom(interior), true
}

// ExprSpan parses interior as an expression; the other classifier hook.
func ExprSpan(file *source.File, interior source.Span) (*ast.Expr, uint32, bool) {
	p := spanParser(file, interior)
	e, ok := p.parseExpr()
	if !ok {
		return nil, 0, false
	}
	return e, p.consumedFrom(interior), true
}

// Hooks bundles the two grammars in classifier order.
func Hooks() (
	func(*source.File, source.Span) (*ast.Type, uint32, bool),
	func(*source.File, source.Span) (*ast.Expr, uint32, bool),
) {
	return TypeSpan, ExprSpan
}

func spanParser(file *source.File, interior source.Span) *Parser {
	lx := lexer.New(file, lexer.Options{Reporter: diag.NopReporter{}})
	lx.SetRange(interior.Start, interior.End)
	return New(lx, Options{Reporter: diag.NopReporter{}})
}

// consumedFrom measures how much of the interior the parse consumed:
// the distance from the interior start to the next unread token. Trailing
// trivia counts as consumed, so a parse followed only by whitespace or
// comments is a full match.
func (p *Parser) consumedFrom(interior source.Span) uint32 {
	next := p.lx.Peek()
	return next.Span.Start - interior.Start
}
