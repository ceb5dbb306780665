package interp

import (
	"fmt"

	"interlit/internal/ast"
	"interlit/internal/diag"
	"interlit/internal/source"
)

// ValidateContext gates lowering on the literal's syntactic position. The
// three sanctioned positions are: an argument of an ordinary call, an
// argument of mixin(...) (interspersion form only), and an argument of a
// generic instantiation. Everything else is IllegalContext.
func ValidateContext(kind ast.InterpKind, ctx ast.InterpContext, span source.Span) *diag.Diagnostic {
	switch ctx {
	case ast.InterpCtxCall, ast.InterpCtxInstantiation:
		return nil
	case ast.InterpCtxMixin:
		if kind == ast.InterpI {
			return nil
		}
		d := diag.NewError(diag.InterpIllegalContext, span,
			"format-string literal cannot be a mixin argument; use the i\"...\" form")
		return &d
	default:
		d := diag.NewError(diag.InterpIllegalContext, span,
			fmt.Sprintf("%s literal is only allowed as a call, mixin, or instantiation argument", kind))
		return &d
	}
}
