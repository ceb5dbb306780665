package parser

import (
	"fmt"

	"interlit/internal/ast"
	"interlit/internal/diag"
	"interlit/internal/source"
	"interlit/internal/token"
)

// parseExpr is the entry point of the Pratt expression parser.
func (p *Parser) parseExpr() (*ast.Expr, bool) {
	return p.parseBinary(0)
}

func (p *Parser) parseBinary(minPrec int) (*ast.Expr, bool) {
	lhs, ok := p.parseUnary()
	if !ok {
		return nil, false
	}
	for {
		prec, rightAssoc := binaryPrec(p.lx.Peek().Kind)
		if prec < 0 || prec < minPrec {
			return lhs, true
		}
		opTok := p.advance()

		nextMin := prec + 1
		if rightAssoc {
			nextMin = prec
		}
		rhs, ok := p.parseBinary(nextMin)
		if !ok {
			return nil, false
		}
		lhs = &ast.Expr{
			Kind:  ast.ExprBinary,
			Span:  lhs.Span.Cover(rhs.Span),
			BinOp: binaryOp(opTok.Kind),
			X:     lhs,
			Y:     rhs,
		}
	}
}

func (p *Parser) parseUnary() (*ast.Expr, bool) {
	var op ast.UnaryOp
	switch p.lx.Peek().Kind {
	case token.Minus:
		op = ast.UnaryNeg
	case token.Bang:
		op = ast.UnaryNot
	case token.Tilde:
		op = ast.UnaryBitNot
	case token.Amp:
		op = ast.UnaryRef
	default:
		return p.parsePostfix()
	}
	opTok := p.advance()
	operand, ok := p.parseUnary()
	if !ok {
		return nil, false
	}
	return &ast.Expr{
		Kind: ast.ExprUnary,
		Span: opTok.Span.Cover(operand.Span),
		UnOp: op,
		X:    operand,
	}, true
}

func (p *Parser) parsePostfix() (*ast.Expr, bool) {
	expr, ok := p.parsePrimary()
	if !ok {
		return nil, false
	}
	for {
		switch p.lx.Peek().Kind {
		case token.LParen:
			args, closeSpan, ok := p.parseArgList(ast.InterpCtxCall)
			if !ok {
				return nil, false
			}
			expr = &ast.Expr{
				Kind:   ast.ExprCall,
				Span:   expr.Span.Cover(closeSpan),
				Callee: expr,
				Args:   args,
			}

		case token.Bang:
			// after a complete operand, '!' can only open an instantiation
			p.advance()
			if !p.at(token.LParen) {
				p.err(diag.SynExpectArgList, "expected '(' after '!' in instantiation")
				return nil, false
			}
			args, closeSpan, ok := p.parseArgList(ast.InterpCtxInstantiation)
			if !ok {
				return nil, false
			}
			expr = &ast.Expr{
				Kind:   ast.ExprInstantiate,
				Span:   expr.Span.Cover(closeSpan),
				Callee: expr,
				Args:   args,
			}

		case token.Dot:
			p.advance()
			name, ok := p.expect(token.Ident, diag.SynExpectIdent, "expected identifier after '.'")
			if !ok {
				return nil, false
			}
			expr = &ast.Expr{
				Kind: ast.ExprMember,
				Span: expr.Span.Cover(name.Span),
				X:    expr,
				Sel:  name.Text,
			}

		case token.LBracket:
			p.advance()
			index, ok := p.parseExpr()
			if !ok {
				return nil, false
			}
			close, ok := p.expect(token.RBracket, diag.SynExpectRBracket, "expected ']' after index")
			if !ok {
				return nil, false
			}
			expr = &ast.Expr{
				Kind: ast.ExprIndex,
				Span: expr.Span.Cover(close.Span),
				X:    expr,
				Y:    index,
			}

		default:
			return expr, true
		}
	}
}

// parseArgList consumes '(' expr, ... ')' and tags interpolation literals
// that appear directly as arguments with the surrounding context.
func (p *Parser) parseArgList(ctx ast.InterpContext) ([]*ast.Expr, source.Span, bool) {
	if _, ok := p.expect(token.LParen, diag.SynExpectArgList, "expected '('"); !ok {
		return nil, source.Span{}, false
	}
	args := make([]*ast.Expr, 0, 4)
	if p.at(token.RParen) {
		close := p.advance()
		return args, close.Span, true
	}
	for {
		arg, ok := p.parseExpr()
		if !ok {
			return nil, source.Span{}, false
		}
		if arg.Kind == ast.ExprInterp {
			// only a literal that IS the argument gets a sanctioned context
			arg.Interp.Context = ctx
		}
		args = append(args, arg)
		if p.eat(token.Comma) {
			continue
		}
		close, ok := p.expect(token.RParen, diag.SynExpectRParen, "expected ')' after arguments")
		if !ok {
			return nil, source.Span{}, false
		}
		return args, close.Span, true
	}
}

func (p *Parser) parsePrimary() (*ast.Expr, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Ident:
		p.advance()
		return ast.NewIdent(tok.Span, tok.Text), true

	case token.KwMixin:
		p.advance()
		args, closeSpan, ok := p.parseArgList(ast.InterpCtxMixin)
		if !ok {
			return nil, false
		}
		return &ast.Expr{
			Kind: ast.ExprMixin,
			Span: tok.Span.Cover(closeSpan),
			Args: args,
		}, true

	case token.IntLit:
		p.advance()
		return &ast.Expr{Kind: ast.ExprLitInt, Span: tok.Span, Text: tok.Text}, true
	case token.FloatLit:
		p.advance()
		return &ast.Expr{Kind: ast.ExprLitFloat, Span: tok.Span, Text: tok.Text}, true
	case token.StringLit:
		p.advance()
		return &ast.Expr{Kind: ast.ExprLitString, Span: tok.Span, Text: tok.Text}, true
	case token.CharLit:
		p.advance()
		return &ast.Expr{Kind: ast.ExprLitChar, Span: tok.Span, Text: tok.Text}, true
	case token.KwTrue, token.KwFalse:
		p.advance()
		return &ast.Expr{Kind: ast.ExprLitBool, Span: tok.Span, Text: tok.Text}, true

	case token.IStringLit, token.FStringLit:
		p.advance()
		return p.interpExpr(tok)

	case token.LParen:
		open := p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		close, ok := p.expect(token.RParen, diag.SynExpectRParen, "expected ')'")
		if !ok {
			return nil, false
		}
		return &ast.Expr{
			Kind: ast.ExprParen,
			Span: open.Span.Cover(close.Span),
			X:    inner,
		}, true

	default:
		p.err(diag.SynExpectExpr, fmt.Sprintf("expected expression, found %s", tok.Kind))
		return nil, false
	}
}

// interpExpr wraps an interpolation token into an ExprInterp node. The body
// span excludes the prefix letter and both quotes. Context starts as None;
// argument-list parsing upgrades it when the literal is a direct argument.
func (p *Parser) interpExpr(tok token.Token) (*ast.Expr, bool) {
	raw := tok.Text
	if len(raw) < 3 || raw[1] != '"' || raw[len(raw)-1] != '"' {
		p.err(diag.SynUnexpectedToken, "malformed interpolation literal")
		return nil, false
	}
	kind := ast.InterpI
	if raw[0] == 'f' {
		kind = ast.InterpF
	}
	return &ast.Expr{
		Kind: ast.ExprInterp,
		Span: tok.Span,
		Interp: &ast.InterpLit{
			Kind: kind,
			BodySpan: source.Span{
				File:  tok.Span.File,
				Start: tok.Span.Start + 2,
				End:   tok.Span.End - 1,
			},
			Context: ast.InterpCtxNone,
		},
	}, true
}
