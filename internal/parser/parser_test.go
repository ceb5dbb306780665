package parser_test

import (
	"testing"

	"interlit/internal/ast"
	"interlit/internal/diag"
	"interlit/internal/lexer"
	"interlit/internal/parser"
	"interlit/internal/source"
)

func parseProgram(t *testing.T, input string) ([]*ast.Expr, *diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.il", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(100)
	rep := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: rep})
	p := parser.New(lx, parser.Options{Reporter: rep})
	return p.ParseProgram(), bag, fs
}

func TestParseCall(t *testing.T) {
	exprs, bag, _ := parseProgram(t, `writeln(a, b + 1);`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	if len(exprs) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(exprs))
	}
	call := exprs[0]
	if call.Kind != ast.ExprCall {
		t.Fatalf("expected call, got %v", call.Kind)
	}
	if call.Callee.Kind != ast.ExprIdent || call.Callee.Text != "writeln" {
		t.Errorf("unexpected callee: %+v", call.Callee)
	}
	if len(call.Args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(call.Args))
	}
	if call.Args[1].Kind != ast.ExprBinary {
		t.Errorf("expected binary second arg, got %v", call.Args[1].Kind)
	}
}

func TestPrecedence(t *testing.T) {
	exprs, bag, _ := parseProgram(t, `f(a + b * c);`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	add := exprs[0].Args[0]
	if add.Kind != ast.ExprBinary || add.BinOp != ast.BinaryAdd {
		t.Fatalf("expected '+' at the top, got %+v", add)
	}
	if add.Y.Kind != ast.ExprBinary || add.Y.BinOp != ast.BinaryMul {
		t.Errorf("expected '*' to bind tighter, got %+v", add.Y)
	}
}

func TestInterpContexts(t *testing.T) {
	tests := []struct {
		input string
		want  ast.InterpContext
	}{
		{`writeln(i"x$a");`, ast.InterpCtxCall},
		{`mixin(i"let $name = 1;");`, ast.InterpCtxMixin},
		{`Fmt!(i"pattern $x");`, ast.InterpCtxInstantiation},
	}
	for _, tt := range tests {
		exprs, bag, _ := parseProgram(t, tt.input)
		if bag.HasErrors() {
			t.Fatalf("%q: unexpected errors: %v", tt.input, bag.Items())
		}
		arg := exprs[0].Args[0]
		if arg.Kind != ast.ExprInterp {
			t.Fatalf("%q: expected interp arg, got %v", tt.input, arg.Kind)
		}
		if arg.Interp.Context != tt.want {
			t.Errorf("%q: expected context %v, got %v", tt.input, tt.want, arg.Interp.Context)
		}
	}
}

func TestInterpNestedStaysUnsanctioned(t *testing.T) {
	// a literal under a parenthesized sub-expression is not a direct argument
	exprs, bag, _ := parseProgram(t, `f((i"x$a"));`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	paren := exprs[0].Args[0]
	if paren.Kind != ast.ExprParen {
		t.Fatalf("expected paren arg, got %v", paren.Kind)
	}
	if paren.X.Interp.Context != ast.InterpCtxNone {
		t.Errorf("expected nested literal to keep CtxNone, got %v", paren.X.Interp.Context)
	}
}

func TestInterpBodySpan(t *testing.T) {
	exprs, bag, fs := parseProgram(t, `f(i"ab$x");`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	lit := exprs[0].Args[0]
	body := fs.Snippet(lit.Interp.BodySpan)
	if body != "ab$x" {
		t.Errorf("expected body \"ab$x\", got %q", body)
	}
}

func TestParseErrorRecovery(t *testing.T) {
	exprs, bag, _ := parseProgram(t, `f(+);
g(1);`)
	if !bag.HasErrors() {
		t.Error("expected a parse error")
	}
	if len(exprs) != 1 {
		t.Fatalf("expected recovery to keep the second statement, got %d", len(exprs))
	}
}

func hookFile(input string) (*source.File, source.Span) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("hook.il", []byte(input))
	f := fs.Get(id)
	return f, source.Span{File: id, Start: 0, End: uint32(len(input))}
}

func TestTypeSpan(t *testing.T) {
	tests := []struct {
		input string
		full  bool
		kind  ast.TypeKind
	}{
		{"int", true, ast.TypeName},
		{"a.b.Map!(string, int)", true, ast.TypeName},
		{"int[]", true, ast.TypeArray},
		{"int*", true, ast.TypePointer},
		{"(int, string)", true, ast.TypeTuple},
		{"fn(int) -> bool", true, ast.TypeFn},
		{"int x", false, 0},
	}
	for _, tt := range tests {
		f, sp := hookFile(tt.input)
		node, consumed, ok := parser.TypeSpan(f, sp)
		full := ok && consumed == sp.Len()
		if full != tt.full {
			t.Errorf("%q: expected full=%v, got ok=%v consumed=%d/%d", tt.input, tt.full, ok, consumed, sp.Len())
			continue
		}
		if tt.full && node.Kind != tt.kind {
			t.Errorf("%q: expected kind %v, got %v", tt.input, tt.kind, node.Kind)
		}
	}
}

func TestExprSpan(t *testing.T) {
	f, sp := hookFile("apples + bananas")
	node, consumed, ok := parser.ExprSpan(f, sp)
	if !ok || consumed != sp.Len() {
		t.Fatalf("expected full expression parse, ok=%v consumed=%d", ok, consumed)
	}
	if node.Kind != ast.ExprBinary || node.BinOp != ast.BinaryAdd {
		t.Errorf("unexpected node: %+v", node)
	}

	// trailing garbage must not count as a full parse
	f, sp = hookFile("a + b ???")
	_, consumed, ok = parser.ExprSpan(f, sp)
	if ok && consumed == sp.Len() {
		t.Error("expected partial consumption for trailing garbage")
	}
}
