package parser

import (
	"strings"

	"interlit/internal/ast"
	"interlit/internal/diag"
	"interlit/internal/token"
)

// parseType parses the host type grammar:
//
//	Type   := Prefix Suffix*
//	Prefix := Name [ '!(' Type, ... ')' ]
//	        | '(' Type, ... ')'            tuple
//	        | 'fn' '(' Type, ... ')' [ '->' Type ]
//	Name   := Ident ( '.' Ident )*
//	Suffix := '[]' | '*'
func (p *Parser) parseType() (*ast.Type, bool) {
	t, ok := p.parseTypePrefix()
	if !ok {
		return nil, false
	}
	for {
		switch p.lx.Peek().Kind {
		case token.LBracket:
			p.advance()
			close, ok := p.expect(token.RBracket, diag.SynExpectRBracket, "expected ']' in array type")
			if !ok {
				return nil, false
			}
			t = &ast.Type{Kind: ast.TypeArray, Span: t.Span.Cover(close.Span), Elem: t}
		case token.Star:
			star := p.advance()
			t = &ast.Type{Kind: ast.TypePointer, Span: t.Span.Cover(star.Span), Elem: t}
		default:
			return t, true
		}
	}
}

func (p *Parser) parseTypePrefix() (*ast.Type, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Ident:
		return p.parseTypeName()

	case token.LParen:
		open := p.advance()
		elems, ok := p.parseTypeList(token.RParen)
		if !ok {
			return nil, false
		}
		close, ok := p.expect(token.RParen, diag.SynExpectRParen, "expected ')' in tuple type")
		if !ok {
			return nil, false
		}
		return &ast.Type{Kind: ast.TypeTuple, Span: open.Span.Cover(close.Span), Elems: elems}, true

	case token.KwFn:
		fn := p.advance()
		if _, ok := p.expect(token.LParen, diag.SynExpectArgList, "expected '(' after 'fn'"); !ok {
			return nil, false
		}
		params, ok := p.parseTypeList(token.RParen)
		if !ok {
			return nil, false
		}
		close, ok := p.expect(token.RParen, diag.SynExpectRParen, "expected ')' after parameters")
		if !ok {
			return nil, false
		}
		t := &ast.Type{Kind: ast.TypeFn, Span: fn.Span.Cover(close.Span), Elems: params}
		if p.eat(token.Arrow) {
			ret, ok := p.parseType()
			if !ok {
				return nil, false
			}
			t.Ret = ret
			t.Span = t.Span.Cover(ret.Span)
		}
		return t, true

	default:
		p.err(diag.SynExpectType, "expected type")
		return nil, false
	}
}

func (p *Parser) parseTypeName() (*ast.Type, bool) {
	first, ok := p.expect(token.Ident, diag.SynExpectIdent, "expected type name")
	if !ok {
		return nil, false
	}
	span := first.Span
	var path strings.Builder
	path.WriteString(first.Text)

	for p.at(token.Dot) {
		p.advance()
		seg, ok := p.expect(token.Ident, diag.SynExpectIdent, "expected identifier after '.'")
		if !ok {
			return nil, false
		}
		path.WriteByte('.')
		path.WriteString(seg.Text)
		span = span.Cover(seg.Span)
	}

	t := &ast.Type{Kind: ast.TypeName, Span: span, Name: path.String()}
	if p.at(token.Bang) {
		p.advance()
		if _, ok := p.expect(token.LParen, diag.SynExpectArgList, "expected '(' after '!' in type arguments"); !ok {
			return nil, false
		}
		args, ok := p.parseTypeList(token.RParen)
		if !ok {
			return nil, false
		}
		close, ok := p.expect(token.RParen, diag.SynExpectRParen, "expected ')' after type arguments")
		if !ok {
			return nil, false
		}
		t.Args = args
		t.Span = t.Span.Cover(close.Span)
	}
	return t, true
}

// parseTypeList parses a comma-separated, possibly empty list of types, up
// to (not consuming) the closing token.
func (p *Parser) parseTypeList(close token.Kind) ([]*ast.Type, bool) {
	out := make([]*ast.Type, 0, 2)
	if p.at(close) {
		return out, true
	}
	for {
		t, ok := p.parseType()
		if !ok {
			return nil, false
		}
		out = append(out, t)
		if !p.eat(token.Comma) {
			return out, true
		}
	}
}
