package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"interlit/internal/interp"
	"interlit/internal/source"
)

// LoweredArgs renders one literal's lowered argument list on a single line,
// string constants quoted, expressions as their source text:
//
//	"I ate ", apples, " apples"
func LoweredArgs(fs *source.FileSet, args []interp.Argument) string {
	parts := make([]string, len(args))
	for i, a := range args {
		switch a.Kind {
		case interp.ArgString:
			parts[i] = strconv.Quote(a.Text)
		case interp.ArgExpr:
			parts[i] = fs.Snippet(a.Expr.Span)
		}
	}
	return strings.Join(parts, ", ")
}

// Elements renders the scanned element sequence, one element per line, for
// the debugging surface:
//
//	Text   "I ate "
//	Name   $apples
func Elements(w io.Writer, fs *source.FileSet, elems []interp.Element) {
	for _, el := range elems {
		switch el.Kind {
		case interp.ElemText:
			fmt.Fprintf(w, "%-6s %s\n", el.Kind, strconv.Quote(el.Text))
		case interp.ElemGroup:
			fmt.Fprintf(w, "%-6s %s role=%s\n", el.Kind, fs.Snippet(el.Span), el.Role)
		default:
			fmt.Fprintf(w, "%-6s %s\n", el.Kind, fs.Snippet(el.Span))
		}
	}
}

// LoweredArgJSON is one lowered argument in JSON output.
type LoweredArgJSON struct {
	Kind     string       `json:"kind"`
	Text     string       `json:"text,omitempty"`
	Source   string       `json:"source,omitempty"`
	Location LocationJSON `json:"location"`
}

// LoweredLiteralJSON is one literal's lowering in JSON output.
type LoweredLiteralJSON struct {
	Kind      string           `json:"kind"`
	Location  LocationJSON     `json:"location"`
	Arguments []LoweredArgJSON `json:"arguments"`
}

// LoweredOutput is the root structure of lowering JSON output.
type LoweredOutput struct {
	Literals []LoweredLiteralJSON `json:"literals"`
	Count    int                  `json:"count"`
}

// BuildLoweredLiteral converts one lowered literal for JSON output.
func BuildLoweredLiteral(fs *source.FileSet, lit interp.Literal, args []interp.Argument, opts JSONOpts) LoweredLiteralJSON {
	out := LoweredLiteralJSON{
		Kind:      lit.Kind.String(),
		Location:  makeLocation(lit.Body, fs, opts.PathMode, opts.IncludePositions),
		Arguments: make([]LoweredArgJSON, len(args)),
	}
	for i, a := range args {
		aj := LoweredArgJSON{
			Location: makeLocation(a.Span, fs, opts.PathMode, opts.IncludePositions),
		}
		switch a.Kind {
		case interp.ArgString:
			aj.Kind = "string"
			aj.Text = a.Text
		case interp.ArgExpr:
			aj.Kind = "expr"
			aj.Source = fs.Snippet(a.Expr.Span)
		}
		out.Arguments[i] = aj
	}
	return out
}

// LoweredJSON serializes a set of lowered literals as indented JSON.
func LoweredJSON(w io.Writer, out LoweredOutput) error {
	out.Count = len(out.Literals)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
