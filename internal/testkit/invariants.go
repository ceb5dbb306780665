package testkit

import (
	"fmt"
	"strings"

	"interlit/internal/interp"
	"interlit/internal/source"
)

// CheckElementCoverage runs the scanner's tiling invariants on one literal:
// 1) elements appear in source order and are contiguous
// 2) the first element starts at body.Start, the last ends at body.End
// 3) Name and Group elements carry an Inner span contained in their Span
func CheckElementCoverage(body source.Span, elems []interp.Element) error {
	if len(elems) == 0 {
		if !body.Empty() {
			return fmt.Errorf("non-empty body %v produced no elements", body)
		}
		return nil
	}

	cursor := body.Start
	for i, el := range elems {
		sp := el.Span
		if sp.File != body.File {
			return fmt.Errorf("element %d span file mismatch: got=%d want=%d", i, sp.File, body.File)
		}
		if sp.Start != cursor {
			return fmt.Errorf("element %d starts at %d, expected %d (gap or overlap)", i, sp.Start, cursor)
		}
		if sp.End < sp.Start {
			return fmt.Errorf("element %d has inverted span %v", i, sp)
		}
		cursor = sp.End

		switch el.Kind {
		case interp.ElemName, interp.ElemGroup:
			if !sp.Contains(el.Inner) {
				return fmt.Errorf("element %d inner span %v escapes element span %v", i, el.Inner, sp)
			}
		}
	}
	if cursor != body.End {
		return fmt.Errorf("elements end at %d, body ends at %d", cursor, body.End)
	}
	return nil
}

// CheckInterspersion verifies the interspersion lowering shape: string
// constants are never empty and never adjacent (adjacent text runs must have
// been merged), and every argument is either a constant or an expression.
func CheckInterspersion(args []interp.Argument) error {
	prevString := false
	for i, a := range args {
		switch a.Kind {
		case interp.ArgString:
			if a.Text == "" {
				return fmt.Errorf("argument %d is an empty string constant", i)
			}
			if prevString {
				return fmt.Errorf("arguments %d and %d are adjacent string constants", i-1, i)
			}
			prevString = true
		case interp.ArgExpr:
			if a.Expr == nil {
				return fmt.Errorf("argument %d is an expression with a nil node", i)
			}
			prevString = false
		default:
			return fmt.Errorf("argument %d has unknown kind %d", i, a.Kind)
		}
	}
	return nil
}

// CheckFormat verifies the format lowering shape: exactly one string
// constant, first, always present, followed only by expression arguments.
func CheckFormat(args []interp.Argument) error {
	if len(args) == 0 {
		return fmt.Errorf("format lowering produced no arguments")
	}
	if args[0].Kind != interp.ArgString {
		return fmt.Errorf("first argument is not the format string")
	}
	for i, a := range args[1:] {
		if a.Kind != interp.ArgExpr {
			return fmt.Errorf("argument %d after the format string is not an expression", i+1)
		}
		if a.Expr == nil {
			return fmt.Errorf("argument %d is an expression with a nil node", i+1)
		}
	}
	return nil
}

// CheckRoundTrip compares the lowered interspersion output against a direct
// per-element resolution of the body. Expressions are opaque, so both sides
// render them as their trimmed source snippet; the text must agree.
func CheckRoundTrip(fs *source.FileSet, elems []interp.Element, args []interp.Argument) error {
	hole := func(sp source.Span) string {
		return "{" + strings.TrimSpace(fs.Snippet(sp)) + "}"
	}

	var want strings.Builder
	for _, el := range elems {
		switch el.Kind {
		case interp.ElemText:
			want.WriteString(interp.UnescapeText(el.Text))
		case interp.ElemDollar:
			want.WriteByte('$')
		case interp.ElemName, interp.ElemGroup:
			want.WriteString(hole(el.Inner))
		}
	}

	var got strings.Builder
	for _, a := range args {
		switch a.Kind {
		case interp.ArgString:
			got.WriteString(a.Text)
		case interp.ArgExpr:
			got.WriteString(hole(a.Expr.Span))
		}
	}

	if got.String() != want.String() {
		return fmt.Errorf("round trip mismatch:\n got %q\nwant %q", got.String(), want.String())
	}
	return nil
}
