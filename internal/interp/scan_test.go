package interp_test

import (
	"strings"
	"testing"

	"interlit/internal/ast"
	"interlit/internal/diag"
	"interlit/internal/interp"
	"interlit/internal/parser"
	"interlit/internal/source"
	"interlit/internal/testkit"
)

// litBody builds a virtual file whose whole content is the literal body, so
// body offsets and file offsets coincide.
func litBody(t *testing.T, body string) (*source.FileSet, interp.Literal) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("lit.il", []byte(body))
	f := fs.Get(id)
	return fs, interp.Literal{
		File:    f,
		Kind:    ast.InterpI,
		Body:    source.Span{File: id, Start: 0, End: uint32(len(body))},
		Context: ast.InterpCtxCall,
	}
}

func hooks() interp.GroupParsers {
	typeFn, exprFn := parser.Hooks()
	return interp.GroupParsers{Type: typeFn, Expr: exprFn}
}

func scanBody(t *testing.T, body string) ([]interp.Element, *diag.Diagnostic) {
	t.Helper()
	_, lit := litBody(t, body)
	return interp.ScanElements(lit.File, lit.Body)
}

func kinds(elems []interp.Element) []interp.ElemKind {
	out := make([]interp.ElemKind, len(elems))
	for i, el := range elems {
		out[i] = el.Kind
	}
	return out
}

func TestScanBasic(t *testing.T) {
	fs, lit := litBody(t, `I ate $apples apples`)
	elems, d := interp.ScanElements(lit.File, lit.Body)
	if d != nil {
		t.Fatalf("unexpected diagnostic: %v", d)
	}
	want := []interp.ElemKind{interp.ElemText, interp.ElemName, interp.ElemText}
	got := kinds(elems)
	if len(got) != len(want) {
		t.Fatalf("expected %d elements, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("element %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	if elems[0].Text != "I ate " {
		t.Errorf("leading text run: got %q", elems[0].Text)
	}
	if elems[1].Text != "apples" {
		t.Errorf("name ref: got %q", elems[1].Text)
	}
	if fs.Snippet(elems[1].Span) != "$apples" {
		t.Errorf("name span: got %q", fs.Snippet(elems[1].Span))
	}
	if err := testkit.CheckElementCoverage(lit.Body, elems); err != nil {
		t.Error(err)
	}
}

func TestScanEmptyBoundaryRuns(t *testing.T) {
	// escapes at the boundaries still produce (zero-length) text runs
	elems, d := scanBody(t, `$x`)
	if d != nil {
		t.Fatalf("unexpected diagnostic: %v", d)
	}
	want := []interp.ElemKind{interp.ElemText, interp.ElemName, interp.ElemText}
	got := kinds(elems)
	if len(got) != 3 || got[0] != want[0] || got[1] != want[1] || got[2] != want[2] {
		t.Fatalf("expected Text,Name,Text, got %v", got)
	}
	if elems[0].Text != "" || elems[2].Text != "" {
		t.Errorf("boundary runs should be empty, got %q and %q", elems[0].Text, elems[2].Text)
	}
}

func TestScanDollarEscape(t *testing.T) {
	elems, d := scanBody(t, `100$$ off`)
	if d != nil {
		t.Fatalf("unexpected diagnostic: %v", d)
	}
	got := kinds(elems)
	if len(got) != 3 || got[1] != interp.ElemDollar {
		t.Fatalf("expected Text,Dollar,Text, got %v", got)
	}
	if elems[1].Span.Len() != 2 {
		t.Errorf("'$$' span must cover both bytes, got %v", elems[1].Span)
	}
}

func TestScanGroup(t *testing.T) {
	fs, lit := litBody(t, `$(a + b)`)
	elems, d := interp.ScanElements(lit.File, lit.Body)
	if d != nil {
		t.Fatalf("unexpected diagnostic: %v", d)
	}
	got := kinds(elems)
	if len(got) != 3 || got[1] != interp.ElemGroup {
		t.Fatalf("expected Text,Group,Text, got %v", got)
	}
	if fs.Snippet(elems[1].Inner) != "a + b" {
		t.Errorf("group interior: got %q", fs.Snippet(elems[1].Inner))
	}
	if fs.Snippet(elems[1].Span) != "$(a + b)" {
		t.Errorf("group span: got %q", fs.Snippet(elems[1].Span))
	}
}

func TestScanUnicodeNameNFC(t *testing.T) {
	// combining acute accent folds into the precomposed form
	elems, d := scanBody(t, "$café!")
	if d != nil {
		t.Fatalf("unexpected diagnostic: %v", d)
	}
	if elems[1].Kind != interp.ElemName || elems[1].Text != "café" {
		t.Errorf("expected NFC name %q, got %q", "café", elems[1].Text)
	}
}

func TestScanInvalidEscapeMultibyteRune(t *testing.T) {
	// the primary span covers the whole rune after '$', not its first byte
	_, d := scanBody(t, "a$€b")
	if d == nil || d.Code != diag.InterpInvalidEscape {
		t.Fatalf("expected InvalidEscape, got %v", d)
	}
	if d.Primary.Start != 2 || d.Primary.End != 5 {
		t.Errorf("expected primary over the full rune (2..5), got %v", d.Primary)
	}
	if !strings.Contains(d.Message, "'€'") {
		t.Errorf("message should name the rune, got %q", d.Message)
	}
}

func TestScanInvalidEscapes(t *testing.T) {
	tests := []struct {
		body  string
		start uint32 // expected primary span start
	}{
		{`$ x`, 1},   // whitespace after '$' pins the space itself
		{`a$1b`, 2},  // digit cannot start an identifier
		{`ab$`, 2},   // '$' at end of body
		{`a$.b`, 2},  // punctuation after '$'
	}
	for _, tt := range tests {
		_, d := scanBody(t, tt.body)
		if d == nil {
			t.Errorf("%q: expected InvalidEscape, got none", tt.body)
			continue
		}
		if d.Code != diag.InterpInvalidEscape {
			t.Errorf("%q: expected InvalidEscape, got %v", tt.body, d.Code)
		}
		if d.Primary.Start != tt.start {
			t.Errorf("%q: expected primary at %d, got %d", tt.body, tt.start, d.Primary.Start)
		}
	}
}
