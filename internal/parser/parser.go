package parser

import (
	"interlit/internal/ast"
	"interlit/internal/diag"
	"interlit/internal/lexer"
	"interlit/internal/source"
	"interlit/internal/token"
)

type Options struct {
	Reporter diag.Reporter
}

// Parser holds per-file parsing state for the host-language subset.
type Parser struct {
	lx       *lexer.Lexer
	file     *source.File
	opts     Options
	lastSpan source.Span // span of the last consumed token, for diagnostics
}

// New creates a parser over an existing lexer.
func New(lx *lexer.Lexer, opts Options) *Parser {
	return &Parser{
		lx:       lx,
		file:     lx.File(),
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}
}

// ParseProgram reads expression statements separated by ';' until EOF.
// Parsing is best-effort: a bad statement is reported and skipped past the
// next ';' so later statements still parse.
func (p *Parser) ParseProgram() []*ast.Expr {
	out := make([]*ast.Expr, 0, 4)
	for !p.at(token.EOF) {
		expr, ok := p.parseExpr()
		if !ok {
			p.resync()
			continue
		}
		out = append(out, expr)
		if !p.eat(token.Semicolon) && !p.at(token.EOF) {
			p.err(diag.SynExpectSemicolon, "expected ';' after expression")
			p.resync()
		}
	}
	return out
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	p.lastSpan = tok.Span
	return tok
}

func (p *Parser) eat(k token.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.err(code, msg)
	return token.Token{}, false
}

func (p *Parser) err(code diag.Code, msg string) {
	sp := p.lx.Peek().Span
	if sp.Empty() && !p.lastSpan.Empty() {
		sp = p.lastSpan
	}
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}

// resync skips to just past the next ';' (or to EOF).
func (p *Parser) resync() {
	for !p.at(token.EOF) {
		if p.advance().Kind == token.Semicolon {
			return
		}
	}
}
