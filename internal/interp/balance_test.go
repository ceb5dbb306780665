package interp_test

import (
	"testing"

	"interlit/internal/diag"
	"interlit/internal/interp"
)

func groupInterior(t *testing.T, body string) (string, *diag.Diagnostic) {
	t.Helper()
	fs, lit := litBody(t, body)
	elems, d := interp.ScanElements(lit.File, lit.Body)
	if d != nil {
		return "", d
	}
	for _, el := range elems {
		if el.Kind == interp.ElemGroup {
			return fs.Snippet(el.Inner), nil
		}
	}
	t.Fatalf("%q: no group element found", body)
	return "", nil
}

func TestBalanceNestedParens(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{`$(f(g(x)))`, `f(g(x))`},
		{`$((a + b) * (c - d))`, `(a + b) * (c - d)`},
		{`x$(a + (b * c))y`, `a + (b * c)`},
	}
	for _, tt := range tests {
		got, d := groupInterior(t, tt.body)
		if d != nil {
			t.Errorf("%q: unexpected diagnostic: %v", tt.body, d)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: interior %q, want %q", tt.body, got, tt.want)
		}
	}
}

func TestBalanceEmbeddedLiterals(t *testing.T) {
	// parens hidden inside nested strings, chars, and comments do not count
	tests := []struct {
		body string
		want string
	}{
		{`$(f(")"))`, `f(")")`},
		{`$(f("a\")b"))`, `f("a\")b")`},
		{`$(f(')'))`, `f(')')`},
		{`$(a /* ) */ + b)`, `a /* ) */ + b`},
		{`$(a /* /* ) */ ) */ + b)`, `a /* /* ) */ ) */ + b`},
		{"$(a // )\n+ b)", "a // )\n+ b"},
		{`$(s("$"))`, `s("$")`}, // '$' inside a group is an ordinary character
	}
	for _, tt := range tests {
		got, d := groupInterior(t, tt.body)
		if d != nil {
			t.Errorf("%q: unexpected diagnostic: %v", tt.body, d)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: interior %q, want %q", tt.body, got, tt.want)
		}
	}
}

func TestBalanceEscapedDelimiters(t *testing.T) {
	// through the host lexer a nested string keeps its quotes escaped: an
	// unescaped '"' would have terminated the enclosing literal
	tests := []struct {
		body string
		want string
	}{
		{`$(h(\"a\"))`, `h(\"a\")`},
		{`$(h(\"a)b\"))`, `h(\"a)b\")`},
		{`$(h(\"x\\\"y\"))`, `h(\"x\\\"y\")`}, // quote escaped at the nested level
		{`$(c(\')\'))`, `c(\')\')`},
		{`$(a \\ b)`, `a \\ b`}, // a lone escape pair is not a delimiter
	}
	for _, tt := range tests {
		got, d := groupInterior(t, tt.body)
		if d != nil {
			t.Errorf("%q: unexpected diagnostic: %v", tt.body, d)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: interior %q, want %q", tt.body, got, tt.want)
		}
	}
}

func TestBalanceUnterminated(t *testing.T) {
	_, lit := litBody(t, `$(a + (b * c)`)
	_, d := interp.ScanElements(lit.File, lit.Body)
	if d == nil {
		t.Fatal("expected UnbalancedGroup, got none")
	}
	if d.Code != diag.InterpUnbalancedGroup {
		t.Fatalf("expected UnbalancedGroup, got %v", d.Code)
	}
	// pinned to the opening "$("
	if d.Primary.Start != 0 || d.Primary.End != 2 {
		t.Errorf("expected primary span over the opener, got %v", d.Primary)
	}
}

func TestBalanceUnterminatedInsideString(t *testing.T) {
	// an unterminated nested string swallows the ')' and runs to the limit,
	// in either spelling
	for _, body := range []string{`$(f(")`, `$(h(\"a))`} {
		_, lit := litBody(t, body)
		_, d := interp.ScanElements(lit.File, lit.Body)
		if d == nil || d.Code != diag.InterpUnbalancedGroup {
			t.Fatalf("%q: expected UnbalancedGroup, got %v", body, d)
		}
	}
}
