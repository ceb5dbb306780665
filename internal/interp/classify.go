package interp

import (
	"interlit/internal/ast"
	"interlit/internal/diag"
	"interlit/internal/source"
)

// GroupParsers are the two external grammars consumed as black boxes. Each
// is a pure function over a sub-span of the file, returning the parsed node
// plus the number of bytes consumed. A parse counts as a match only when it
// consumes the whole interior.
type GroupParsers struct {
	Type func(file *source.File, interior source.Span) (*ast.Type, uint32, bool)
	Expr func(file *source.File, interior source.Span) (*ast.Expr, uint32, bool)
}

// classifyGroup resolves the role of one group element. The type grammar is
// attempted first; on a full, unambiguous match the group is a Type.
// Otherwise the expression grammar gets its turn. Neither grammar consuming
// the whole interior is InvalidGroupContent.
func classifyGroup(file *source.File, el *Element, parsers GroupParsers) *diag.Diagnostic {
	interior := el.Inner

	if parsers.Type != nil {
		if node, consumed, ok := parsers.Type(file, interior); ok && consumed == interior.Len() {
			el.Role = RoleType
			el.TypeNode = node
			return nil
		}
	}
	if parsers.Expr != nil {
		if node, consumed, ok := parsers.Expr(file, interior); ok && consumed == interior.Len() {
			el.Role = RoleExpr
			el.ExprNode = node
			return nil
		}
	}

	d := diag.NewError(diag.InterpInvalidGroupContent, el.Span,
		"group content is neither a complete type nor a complete expression")
	return &d
}

// ClassifyGroups resolves every group in the element sequence, left to
// right, stopping at the first failure.
func ClassifyGroups(file *source.File, elems []Element, parsers GroupParsers) *diag.Diagnostic {
	for i := range elems {
		if elems[i].Kind != ElemGroup {
			continue
		}
		if d := classifyGroup(file, &elems[i], parsers); d != nil {
			return d
		}
	}
	return nil
}
