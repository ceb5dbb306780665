package lexer

import (
	"golang.org/x/text/unicode/norm"

	"interlit/internal/token"
)

// scanIdentOrKeyword scans an identifier and checks it against the keyword
// table. Keywords are case-sensitive. Token.Text is the source slice for
// ASCII identifiers; Unicode identifiers are NFC-normalized so that visually
// identical spellings compare equal.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Invalid, Span: sp, Text: ""}
	}
	ascii := true
	if r < utf8RuneSelf {
		if !isIdentStartByte(byte(r)) {
			return lx.scanOperatorOrPunct()
		}
		lx.cursor.Bump()
		for {
			b := lx.cursor.Peek()
			if isIdentContinueByte(b) {
				lx.cursor.Bump()
				continue
			}
			if b >= utf8RuneSelf {
				r2, sz2 := lx.peekRune()
				if sz2 > 0 && isIdentContinueRune(r2) {
					ascii = false
					lx.bumpRune()
					continue
				}
			}
			break
		}
	} else {
		if !isIdentStartRune(r) {
			return lx.scanOperatorOrPunct()
		}
		ascii = false
		lx.bumpRune()
		for {
			r2, sz2 := lx.peekRune()
			if sz2 == 0 || !isIdentContinueRune(r2) {
				break
			}
			lx.bumpRune()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	lex := lx.file.Content[sp.Start:sp.End]
	text := string(lex)
	if !ascii {
		text = norm.NFC.String(text)
	}

	if len(lex) == 1 && lex[0] == '_' {
		return token.Token{Kind: token.Underscore, Span: sp, Text: text}
	}

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}
