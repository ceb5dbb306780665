package interp_test

import (
	"strconv"
	"testing"

	"interlit/internal/ast"
	"interlit/internal/interp"
	"interlit/internal/source"
	"interlit/internal/testkit"
)

// render flattens a lowered argument list for comparison: string constants
// as quoted Go strings, expressions as their source snippet.
func render(fs *source.FileSet, args []interp.Argument) []string {
	out := make([]string, len(args))
	for i, a := range args {
		switch a.Kind {
		case interp.ArgString:
			out[i] = strconv.Quote(a.Text)
		case interp.ArgExpr:
			out[i] = fs.Snippet(a.Expr.Span)
		}
	}
	return out
}

func lowerBody(t *testing.T, kind ast.InterpKind, body string) (*source.FileSet, []interp.Element, []interp.Argument) {
	t.Helper()
	fs, lit := litBody(t, body)
	lit.Kind = kind
	elems, d := interp.Scan(lit, hooks())
	if d != nil {
		t.Fatalf("%q: unexpected diagnostic: %v", body, d)
	}
	args, d := interp.Lower(lit, hooks())
	if d != nil {
		t.Fatalf("%q: unexpected diagnostic: %v", body, d)
	}
	return fs, elems, args
}

func expectArgs(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d arguments, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("argument %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestLowerInterspersion(t *testing.T) {
	body := `I ate $apples apples and $bananas bananas totalling $(apples + bananas) fruit.`
	fs, elems, args := lowerBody(t, ast.InterpI, body)
	expectArgs(t, render(fs, args), []string{
		`"I ate "`,
		`apples`,
		`" apples and "`,
		`bananas`,
		`" bananas totalling "`,
		`apples + bananas`,
		`" fruit."`,
	})
	if err := testkit.CheckInterspersion(args); err != nil {
		t.Error(err)
	}
	if err := testkit.CheckRoundTrip(fs, elems, args); err != nil {
		t.Error(err)
	}
}

func TestLowerFormat(t *testing.T) {
	body := `I ate %s$apples apples and %s$bananas bananas totalling %s$(apples + bananas) fruit.`
	fs, _, args := lowerBody(t, ast.InterpF, body)
	expectArgs(t, render(fs, args), []string{
		`"I ate %s apples and %s bananas totalling %s fruit."`,
		`apples`,
		`bananas`,
		`apples + bananas`,
	})
	if err := testkit.CheckFormat(args); err != nil {
		t.Error(err)
	}
}

func TestLowerDegenerate(t *testing.T) {
	// i"$x" lowers to the bare expression; f"$x" keeps its empty format string
	fs, _, args := lowerBody(t, ast.InterpI, `$x`)
	expectArgs(t, render(fs, args), []string{`x`})

	fs, _, args = lowerBody(t, ast.InterpF, `$x`)
	expectArgs(t, render(fs, args), []string{`""`, `x`})

	fs, _, args = lowerBody(t, ast.InterpI, `$x$y`)
	expectArgs(t, render(fs, args), []string{`x`, `y`})
}

func TestLowerEmptyBody(t *testing.T) {
	fs, _, args := lowerBody(t, ast.InterpI, ``)
	if len(args) != 0 {
		t.Errorf("empty interspersion body must lower to nothing, got %v", render(fs, args))
	}

	fs, _, args = lowerBody(t, ast.InterpF, ``)
	expectArgs(t, render(fs, args), []string{`""`})
}

func TestLowerDollarEscape(t *testing.T) {
	// '$$' contributes a literal '$' to the nearest run, never an argument
	fs, _, args := lowerBody(t, ast.InterpI, `100$$ off $price`)
	expectArgs(t, render(fs, args), []string{`"100$ off "`, `price`})

	fs, _, args = lowerBody(t, ast.InterpF, `100$$ off`)
	expectArgs(t, render(fs, args), []string{`"100$ off"`})
}

func TestLowerHostEscapes(t *testing.T) {
	fs, _, args := lowerBody(t, ast.InterpI, `a\tb$x\n`)
	expectArgs(t, render(fs, args), []string{`"a\tb"`, `x`, `"\n"`})
}

func TestLowerTypeGroup(t *testing.T) {
	fs, _, args := lowerBody(t, ast.InterpI, `sizeof $(int[]) here`)
	expectArgs(t, render(fs, args), []string{`"sizeof "`, `int[]`, `" here"`})
	if args[1].Expr.Kind != ast.ExprTypeRef {
		t.Errorf("type group must lower to a type reference, got %v", args[1].Expr.Kind)
	}
	if args[1].Expr.Type == nil || args[1].Expr.Type.Kind != ast.TypeArray {
		t.Errorf("type reference lost its node: %+v", args[1].Expr)
	}
}

func TestLowerOrderIsLexical(t *testing.T) {
	fs, elems, args := lowerBody(t, ast.InterpI, `$c$(b)$a`)
	expectArgs(t, render(fs, args), []string{`c`, `b`, `a`})
	if err := testkit.CheckRoundTrip(fs, elems, args); err != nil {
		t.Error(err)
	}

	fs, _, args = lowerBody(t, ast.InterpF, `$c$(b)$a`)
	expectArgs(t, render(fs, args), []string{`""`, `c`, `b`, `a`})
}
