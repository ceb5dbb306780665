package interp

import (
	"strings"

	"interlit/internal/ast"
	"interlit/internal/source"
)

// ArgKind discriminates lowered arguments.
type ArgKind uint8

const (
	// ArgString is a string constant produced from literal text.
	ArgString ArgKind = iota
	// ArgExpr is an expression argument produced from an escape.
	ArgExpr
)

// Argument is one element of the lowered argument list.
type Argument struct {
	Kind ArgKind
	// Text is the constant's value with all escapes resolved (ArgString).
	Text string
	// Expr is the parsed node (ArgExpr).
	Expr *ast.Expr
	// Span covers the source region the argument came from.
	Span source.Span
}

// LowerElements converts a validated, classified element sequence into the
// lowered argument list. Element order is the literal's lexical order and
// is preserved exactly.
func LowerElements(elems []Element, kind ast.InterpKind) []Argument {
	if kind == ast.InterpF {
		return lowerFormat(elems)
	}
	return lowerInterspersion(elems)
}

// lowerInterspersion merges adjacent text runs and '$$' escapes into string
// constants, drops the empty ones entirely, and keeps one expression
// argument per escape. A literal made of escapes only lowers to expression
// arguments with no string constants at all.
func lowerInterspersion(elems []Element) []Argument {
	args := make([]Argument, 0, len(elems))

	var run strings.Builder
	var runSpan source.Span
	runOpen := false

	appendText := func(el Element, text string) {
		if !runOpen {
			runSpan = el.Span
			runOpen = true
		} else {
			runSpan = runSpan.Cover(el.Span)
		}
		run.WriteString(text)
	}
	flush := func() {
		if runOpen && run.Len() > 0 {
			args = append(args, Argument{Kind: ArgString, Text: run.String(), Span: runSpan})
		}
		run.Reset()
		runOpen = false
	}

	for _, el := range elems {
		switch el.Kind {
		case ElemText:
			appendText(el, UnescapeText(el.Text))
		case ElemDollar:
			appendText(el, "$")
		case ElemName:
			flush()
			args = append(args, Argument{
				Kind: ArgExpr,
				Expr: ast.NewIdent(el.Inner, el.Text),
				Span: el.Span,
			})
		case ElemGroup:
			flush()
			args = append(args, Argument{
				Kind: ArgExpr,
				Expr: groupExpr(el),
				Span: el.Span,
			})
		}
	}
	flush()
	return args
}

// lowerFormat concatenates every text fragment verbatim (escapes resolved)
// into one leading string constant, always present, then emits the
// expression arguments in lexical order. Specifier-like substrings in the
// text are opaque: nothing is stripped, renumbered, or arity-checked here.
func lowerFormat(elems []Element) []Argument {
	var format strings.Builder
	var formatSpan source.Span
	spanSet := false

	exprs := make([]Argument, 0, len(elems))
	for _, el := range elems {
		if !spanSet {
			formatSpan = el.Span
			spanSet = true
		} else {
			formatSpan = formatSpan.Cover(el.Span)
		}
		switch el.Kind {
		case ElemText:
			format.WriteString(UnescapeText(el.Text))
		case ElemDollar:
			format.WriteByte('$')
		case ElemName:
			exprs = append(exprs, Argument{
				Kind: ArgExpr,
				Expr: ast.NewIdent(el.Inner, el.Text),
				Span: el.Span,
			})
		case ElemGroup:
			exprs = append(exprs, Argument{
				Kind: ArgExpr,
				Expr: groupExpr(el),
				Span: el.Span,
			})
		}
	}

	args := make([]Argument, 0, len(exprs)+1)
	args = append(args, Argument{Kind: ArgString, Text: format.String(), Span: formatSpan})
	args = append(args, exprs...)
	return args
}

func groupExpr(el Element) *ast.Expr {
	if el.Role == RoleType {
		return ast.NewTypeRef(el.Inner, el.TypeNode)
	}
	return el.ExprNode
}

// UnescapeText resolves host string escapes inside a text run. Unknown
// escapes pass through verbatim; validating them is the string lexer's job,
// not this engine's.
func UnescapeText(raw string) string {
	if !strings.ContainsRune(raw, '\\') {
		return raw
	}
	var out strings.Builder
	out.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' || i+1 >= len(raw) {
			out.WriteByte(c)
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			out.WriteByte('\n')
		case 't':
			out.WriteByte('\t')
		case 'r':
			out.WriteByte('\r')
		case '0':
			out.WriteByte(0)
		case '\\', '"', '\'':
			out.WriteByte(raw[i])
		default:
			out.WriteByte('\\')
			out.WriteByte(raw[i])
		}
	}
	return out.String()
}
