package interp

import (
	"interlit/internal/diag"
	"interlit/internal/source"
)

// extractBalanced finds the ')' matching an already-consumed "$(", scanning
// content[start:limit]. Parentheses inside host string literals, character
// literals, and comments do not perturb the nesting count; a '$' inside the
// group is an ordinary character (interpolation escapes exist only at the
// top level of the body).
//
// The body is raw source text, so a nested literal appears in one of two
// spellings: bare quotes, or delimiters still carrying the enclosing
// literal's backslash (`\"...\"`), which is the only way a nested string
// can be written inside an i"..."/f"..." literal. Both are skipped.
//
// Returns the offset of the matching ')' or an UnbalancedGroup diagnostic
// pinned to the opening "$(".
func extractBalanced(content []byte, start, limit uint32, open source.Span) (uint32, *diag.Diagnostic) {
	depth := 1
	i := start
	for i < limit {
		switch content[i] {
		case '(':
			depth++
			i++

		case ')':
			depth--
			if depth == 0 {
				return i, nil
			}
			i++

		case '"':
			i = skipString(content, i+1, limit, '"')

		case '\'':
			i = skipString(content, i+1, limit, '\'')

		case '\\':
			switch {
			case i+1 < limit && content[i+1] == '"':
				i = skipEscapedLiteral(content, i+2, limit, '"')
			case i+1 < limit && content[i+1] == '\'':
				i = skipEscapedLiteral(content, i+2, limit, '\'')
			default:
				i += 2 // an escape pair; its second byte is not a delimiter
			}

		case '/':
			if i+1 < limit && content[i+1] == '/' {
				i = skipLineComment(content, i+2, limit)
			} else if i+1 < limit && content[i+1] == '*' {
				i = skipBlockComment(content, i+2, limit)
			} else {
				i++
			}

		default:
			i++
		}
	}

	d := diag.NewError(diag.InterpUnbalancedGroup, open,
		"unterminated '$(' group: no matching ')' before the end of the literal")
	return 0, &d
}

// skipString advances past a quoted literal body, honoring backslash
// escapes. An unterminated literal simply runs to the limit; the group then
// reports UnbalancedGroup, and the group grammar rejects the interior.
func skipString(content []byte, i, limit uint32, quote byte) uint32 {
	for i < limit {
		switch content[i] {
		case '\\':
			i += 2
		case quote:
			return i + 1
		default:
			i++
		}
	}
	return limit
}

// skipEscapedLiteral advances past a nested literal whose delimiters are
// still escaped (`\"...\"`). The closer is backslash-quote; `\\` is an
// escaped backslash that consumes the nested character it escapes, itself
// possibly an escape pair. Unterminated literals run to the limit.
func skipEscapedLiteral(content []byte, i, limit uint32, quote byte) uint32 {
	for i < limit {
		if content[i] != '\\' || i+1 >= limit {
			i++
			continue
		}
		switch content[i+1] {
		case quote:
			return i + 2
		case '\\':
			i += 2
			if i < limit && content[i] == '\\' && i+1 < limit {
				i += 2
			} else if i < limit {
				i++
			}
		default:
			i += 2
		}
	}
	return limit
}

func skipLineComment(content []byte, i, limit uint32) uint32 {
	for i < limit && content[i] != '\n' {
		i++
	}
	return i
}

func skipBlockComment(content []byte, i, limit uint32) uint32 {
	depth := 1
	for i < limit && depth > 0 {
		if i+1 < limit {
			if content[i] == '/' && content[i+1] == '*' {
				depth++
				i += 2
				continue
			}
			if content[i] == '*' && content[i+1] == '/' {
				depth--
				i += 2
				continue
			}
		}
		i++
	}
	return i
}
