package lexer

import (
	"interlit/internal/diag"
	"interlit/internal/token"
)

// scanNumber scans decimal and hex integers plus simple floats
// (fraction and/or exponent). '_' separators are allowed between digits.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	emit := func(kind token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}
	bad := func(msg string) token.Token {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexBadNumber, sp, msg)
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	// 0x hex fast path
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' && (b1 == 'x' || b1 == 'X') {
		lx.cursor.Bump()
		lx.cursor.Bump()
		if !isHex(lx.cursor.Peek()) {
			return bad("hex literal needs at least one digit")
		}
		for isHex(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
			lx.cursor.Bump()
		}
		return emit(token.IntLit)
	}

	digits := func() {
		for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
			lx.cursor.Bump()
		}
	}

	isFloat := false
	if lx.cursor.Peek() == '.' {
		// ".5" entry point
		isFloat = true
		lx.cursor.Bump()
		digits()
	} else {
		digits()
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
			isFloat = true
			lx.cursor.Bump()
			digits()
		}
	}

	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		mark := lx.cursor.Mark()
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == '+' || b == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			// not an exponent after all; give the 'e' back (it may start an ident)
			lx.cursor.Reset(mark)
		} else {
			isFloat = true
			digits()
		}
	}

	if isFloat {
		return emit(token.FloatLit)
	}
	return emit(token.IntLit)
}
