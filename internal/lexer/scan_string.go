package lexer

import (
	"interlit/internal/diag"
	"interlit/internal/token"
)

// scanString scans an ordinary "..." literal. Escapes are consumed as two
// bytes without deep validation here; Token.Text keeps the raw source slice.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	return lx.finishString(start, token.StringLit)
}

// scanPrefixedString scans i"..." and f"..." literals. The prefix letter is
// already known to be glued to the opening quote.
func (lx *Lexer) scanPrefixedString() token.Token {
	start := lx.cursor.Mark()
	prefix := lx.cursor.Bump() // 'i' or 'f'
	lx.cursor.Bump()           // opening '"'

	kind := token.IStringLit
	if prefix == 'f' {
		kind = token.FStringLit
	}
	return lx.finishString(start, kind)
}

func (lx *Lexer) finishString(start Mark, kind token.Kind) token.Token {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		}
		if b == '\n' {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "newline in string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// scanEscapedLit scans a nested literal whose delimiters are still escaped,
// \"...\" or \'...\', as it appears inside an enclosing string literal
// before host unescaping. Only reachable through a SetRange sub-lex. The
// closer is backslash-quote; \\ escapes the next nested character, which
// may itself be an escape pair.
func (lx *Lexer) scanEscapedLit(quote byte) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '\\'
	lx.cursor.Bump() // opening delimiter

	kind := token.StringLit
	unterminated := diag.LexUnterminatedString
	msg := "unterminated string literal"
	if quote == '\'' {
		kind = token.CharLit
		unterminated = diag.LexUnterminatedChar
		msg = "unterminated character literal"
	}

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\n' {
			break
		}
		if b != '\\' {
			lx.cursor.Bump()
			continue
		}
		lx.cursor.Bump()
		if lx.cursor.EOF() {
			break
		}
		c := lx.cursor.Bump()
		if c == quote {
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		if c == '\\' && !lx.cursor.EOF() {
			if lx.cursor.Peek() == '\\' {
				lx.cursor.Bump()
				if !lx.cursor.EOF() {
					lx.cursor.Bump()
				}
			} else {
				lx.cursor.Bump()
			}
		}
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(unterminated, sp, msg)
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// scanCharLit scans a '...' character literal.
func (lx *Lexer) scanCharLit() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '\''
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\'' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.CharLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		}
		if b == '\n' {
			break
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedChar, sp, "unterminated character literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
