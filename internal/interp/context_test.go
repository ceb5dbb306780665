package interp_test

import (
	"testing"

	"interlit/internal/ast"
	"interlit/internal/diag"
	"interlit/internal/interp"
	"interlit/internal/source"
)

func TestValidateContext(t *testing.T) {
	tests := []struct {
		kind ast.InterpKind
		ctx  ast.InterpContext
		ok   bool
	}{
		{ast.InterpI, ast.InterpCtxCall, true},
		{ast.InterpF, ast.InterpCtxCall, true},
		{ast.InterpI, ast.InterpCtxInstantiation, true},
		{ast.InterpF, ast.InterpCtxInstantiation, true},
		{ast.InterpI, ast.InterpCtxMixin, true},
		{ast.InterpF, ast.InterpCtxMixin, false}, // format form is not injectable
		{ast.InterpI, ast.InterpCtxNone, false},
		{ast.InterpF, ast.InterpCtxNone, false},
	}
	span := source.Span{File: 1, Start: 0, End: 4}
	for _, tt := range tests {
		d := interp.ValidateContext(tt.kind, tt.ctx, span)
		if tt.ok && d != nil {
			t.Errorf("%v in %v: unexpected diagnostic: %v", tt.kind, tt.ctx, d)
		}
		if !tt.ok {
			if d == nil {
				t.Errorf("%v in %v: expected IllegalContext, got none", tt.kind, tt.ctx)
				continue
			}
			if d.Code != diag.InterpIllegalContext {
				t.Errorf("%v in %v: expected IllegalContext, got %v", tt.kind, tt.ctx, d.Code)
			}
			if d.Primary != span {
				t.Errorf("%v in %v: diagnostic lost the literal span: %v", tt.kind, tt.ctx, d.Primary)
			}
		}
	}
}

func TestLowerRejectsUnsanctionedPosition(t *testing.T) {
	_, lit := litBody(t, `x is $x`)
	lit.Context = ast.InterpCtxNone
	args, d := interp.Lower(lit, hooks())
	if d == nil || d.Code != diag.InterpIllegalContext {
		t.Fatalf("expected IllegalContext, got %v", d)
	}
	if args != nil {
		t.Error("no partial lowering may escape a rejected literal")
	}
}
