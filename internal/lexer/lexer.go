package lexer

import (
	"interlit/internal/source"
	"interlit/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token   // one-token lookahead buffer
	hold   []token.Trivia // accumulated leading trivia

	// set by SetRange: the sub-span came from inside a string literal, so
	// nested literals may still carry escaped delimiters (\"...\")
	escapedLits bool
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		look:   nil,
		hold:   nil,
	}
}

// SetRange restricts the lexer to [start, limit). Used when re-lexing a
// sub-span of a file, e.g. the interior of a '$(' group. Within the range
// string and character literals are accepted in both spellings, bare quotes
// and the escaped-delimiter form they take inside an enclosing literal.
func (lx *Lexer) SetRange(start, limit uint32) {
	lx.cursor.Off = start
	lx.cursor.Limit = limit
	lx.look = nil
	lx.hold = nil
	lx.escapedLits = true
}

// Offset returns the current byte offset of the cursor.
func (lx *Lexer) Offset() uint32 {
	if lx.look != nil {
		return lx.look.Span.Start
	}
	return lx.cursor.Off
}

// Next returns the next significant token with its leading trivia attached.
// After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.EmptySpan(),
			Text: "",
		}
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case ch == 'i' || ch == 'f':
		// possible interpolation prefix: exactly one letter glued to '"'
		if _, b1, ok := lx.cursor.Peek2(); ok && b1 == '"' {
			tok = lx.scanPrefixedString()
		} else {
			tok = lx.scanIdentOrKeyword()
		}

	case ch == '_':
		// lone '_' is Underscore; '_x' and '_1' are identifiers
		b0, b1, ok := lx.cursor.Peek2()
		if ok && b0 == '_' && isIdentContinueByte(b1) {
			tok = lx.scanIdentOrKeyword()
		} else {
			tok = lx.scanOperatorOrPunct()
		}

	case isIdentStartByte(ch):
		tok = lx.scanIdentOrKeyword()

	case ch >= utf8RuneSelf:
		// possible Unicode identifier; scanIdentOrKeyword sorts it out
		tok = lx.scanIdentOrKeyword()

	case isDec(ch):
		tok = lx.scanNumber()

	case ch == '.' && lx.isNumberAfterDot():
		tok = lx.scanNumber()

	case ch == '"':
		tok = lx.scanString()

	case ch == '\'':
		tok = lx.scanCharLit()

	case ch == '\\' && lx.escapedLits:
		if _, b1, ok := lx.cursor.Peek2(); ok && (b1 == '"' || b1 == '\'') {
			tok = lx.scanEscapedLit(b1)
		} else {
			tok = lx.scanOperatorOrPunct()
		}

	default:
		tok = lx.scanOperatorOrPunct()
	}

	tok.Leading = lx.hold
	lx.hold = nil
	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// EmptySpan returns a zero-length span at the current position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// File returns the file this lexer reads from.
func (lx *Lexer) File() *source.File {
	return lx.file
}
