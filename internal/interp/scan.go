package interp

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"interlit/internal/diag"
	"interlit/internal/source"
)

// ScanElements splits the raw literal body into its ordered element
// sequence. Fail-fast: the first problem aborts the scan and comes back as
// a diagnostic; no partial sequence is returned alongside it.
//
// A pending text run is flushed before every escape and at the end of the
// body even when it is empty; merging and dropping of empty runs is the
// lowering engine's business, which keeps the scanner lowering-agnostic.
func ScanElements(file *source.File, body source.Span) ([]Element, *diag.Diagnostic) {
	content := file.Content
	elems := make([]Element, 0, 8)

	runStart := body.Start
	flushText := func(end uint32) {
		sp := source.Span{File: body.File, Start: runStart, End: end}
		elems = append(elems, Element{
			Kind: ElemText,
			Span: sp,
			Text: string(content[sp.Start:sp.End]),
		})
	}

	i := body.Start
	for i < body.End {
		if content[i] != '$' {
			i++
			continue
		}
		flushText(i)

		// '$' at the very end of the body has nothing to escape
		if i+1 >= body.End {
			d := diag.NewError(diag.InterpInvalidEscape,
				source.Span{File: body.File, Start: i, End: i + 1},
				"'$' at end of literal; use '$$' for a literal dollar sign")
			return nil, &d
		}

		next := content[i+1]
		switch {
		case next == '$':
			elems = append(elems, Element{
				Kind: ElemDollar,
				Span: source.Span{File: body.File, Start: i, End: i + 2},
			})
			i += 2

		case next == '(':
			open := source.Span{File: body.File, Start: i, End: i + 2}
			innerEnd, d := extractBalanced(content, i+2, body.End, open)
			if d != nil {
				return nil, d
			}
			inner := source.Span{File: body.File, Start: i + 2, End: innerEnd}
			elems = append(elems, Element{
				Kind:  ElemGroup,
				Span:  source.Span{File: body.File, Start: i, End: innerEnd + 1},
				Inner: inner,
			})
			i = innerEnd + 1 // past the closing ')'

		default:
			name, size := scanIdent(content[i+1:body.End])
			if size == 0 {
				// anything else after '$' (whitespace included) is an error;
				// the primary span pins the offending character, whole rune
				r, rlen := utf8.DecodeRune(content[i+1 : body.End])
				bad := source.Span{File: body.File, Start: i + 1, End: i + 1 + uint32(rlen)}
				d := diag.NewError(diag.InterpInvalidEscape, bad,
					fmt.Sprintf("invalid escape: '$' must be followed by '$', '(' or an identifier, found %q", r)).
					WithNote(source.Span{File: body.File, Start: i, End: i + 1}, "escape starts here")
				return nil, &d
			}
			full := source.Span{File: body.File, Start: i, End: i + 1 + size}
			elems = append(elems, Element{
				Kind:  ElemName,
				Span:  full,
				Text:  name,
				Inner: source.Span{File: body.File, Start: i + 1, End: i + 1 + size},
			})
			i += 1 + size
		}
		runStart = i
	}

	flushText(body.End)
	return elems, nil
}

// scanIdent reads a maximal identifier from the start of b.
// Returns the (NFC-normalized) spelling and the byte length consumed;
// size 0 means b does not start with an identifier.
func scanIdent(b []byte) (string, uint32) {
	if len(b) == 0 {
		return "", 0
	}

	var i int
	ascii := true
	r, sz := utf8.DecodeRune(b)
	if r < utf8.RuneSelf {
		if !isIdentStartByte(b[0]) {
			return "", 0
		}
		i = 1
	} else {
		if !(r == '_' || unicode.IsLetter(r)) {
			return "", 0
		}
		ascii = false
		i = sz
	}

	for i < len(b) {
		c := b[i]
		if c < utf8.RuneSelf {
			if !isIdentContinueByte(c) {
				break
			}
			i++
			continue
		}
		r, sz := utf8.DecodeRune(b[i:])
		if !isIdentContinueRune(r) {
			break
		}
		ascii = false
		i += sz
	}

	text := string(b[:i])
	if !ascii {
		text = norm.NFC.String(text)
	}
	return text, uint32(i)
}

func isIdentStartByte(c byte) bool {
	return c == '_' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isIdentContinueByte(c byte) bool {
	return isIdentStartByte(c) || (c >= '0' && c <= '9')
}

func isIdentContinueRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) ||
		unicode.In(r, unicode.Mn, unicode.Mc)
}
