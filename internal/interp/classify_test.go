package interp_test

import (
	"testing"

	"interlit/internal/diag"
	"interlit/internal/interp"
)

func classifyOne(t *testing.T, body string) (interp.Element, *diag.Diagnostic) {
	t.Helper()
	_, lit := litBody(t, body)
	elems, d := interp.Scan(lit, hooks())
	if d != nil {
		return interp.Element{}, d
	}
	for _, el := range elems {
		if el.Kind == interp.ElemGroup {
			return el, nil
		}
	}
	t.Fatalf("%q: no group element found", body)
	return interp.Element{}, nil
}

func TestClassifyGroups(t *testing.T) {
	tests := []struct {
		body string
		want interp.GroupRole
	}{
		{`$(int)`, interp.RoleType}, // bare identifier: type wins by order
		{`$(a.b.Map!(string, int))`, interp.RoleType},
		{`$(int[])`, interp.RoleType},
		{`$(int*)`, interp.RoleType},
		{`$((int, string))`, interp.RoleType},
		{`$(fn(int) -> bool)`, interp.RoleType},
		{`$(apples + bananas)`, interp.RoleExpr},
		{`$(f(x) + 1)`, interp.RoleExpr},
		{`$(-count)`, interp.RoleExpr},
		{`$(items[0].name)`, interp.RoleExpr},
		{`$("text")`, interp.RoleExpr},
		{`$(h(\"a\"))`, interp.RoleExpr}, // nested string, delimiters still escaped
	}
	for _, tt := range tests {
		el, d := classifyOne(t, tt.body)
		if d != nil {
			t.Errorf("%q: unexpected diagnostic: %v", tt.body, d)
			continue
		}
		if el.Role != tt.want {
			t.Errorf("%q: classified %v, want %v", tt.body, el.Role, tt.want)
		}
		switch tt.want {
		case interp.RoleType:
			if el.TypeNode == nil {
				t.Errorf("%q: type group carries no node", tt.body)
			}
		case interp.RoleExpr:
			if el.ExprNode == nil {
				t.Errorf("%q: expression group carries no node", tt.body)
			}
		}
	}
}

func TestClassifyInvalidContent(t *testing.T) {
	tests := []string{
		`$(???)`,
		`$(int x)`, // neither grammar consumes the whole interior
		`$()`,
		`$(a + )`,
	}
	for _, body := range tests {
		_, d := classifyOne(t, body)
		if d == nil {
			t.Errorf("%q: expected InvalidGroupContent, got none", body)
			continue
		}
		if d.Code != diag.InterpInvalidGroupContent {
			t.Errorf("%q: expected InvalidGroupContent, got %v", body, d.Code)
		}
	}
}

func TestClassifyFailFast(t *testing.T) {
	// the first bad group aborts; the second is never reached
	_, lit := litBody(t, `$(???) then $(also bad)`)
	_, d := interp.Scan(lit, hooks())
	if d == nil || d.Code != diag.InterpInvalidGroupContent {
		t.Fatalf("expected InvalidGroupContent, got %v", d)
	}
	if d.Primary.Start != 0 {
		t.Errorf("expected the first group's span, got %v", d.Primary)
	}
}
