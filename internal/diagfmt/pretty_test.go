package diagfmt_test

import (
	"strings"
	"testing"

	"interlit/internal/diag"
	"interlit/internal/diagfmt"
	"interlit/internal/source"
)

func oneErrorBag(t *testing.T, content string, start, end uint32) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("demo.il", []byte(content))
	bag := diag.NewBag(10)
	d := diag.NewError(diag.InterpInvalidEscape,
		source.Span{File: id, Start: start, End: end},
		"invalid escape")
	bag.Add(d)
	return bag, fs
}

func TestPrettyHeadline(t *testing.T) {
	bag, fs := oneErrorBag(t, "abc$ x", 4, 5)
	var sb strings.Builder
	diagfmt.Pretty(&sb, bag, fs, diagfmt.PrettyOpts{})
	out := sb.String()

	if !strings.Contains(out, "demo.il:1:5: ERROR ITP4001: invalid escape") {
		t.Errorf("missing headline, got:\n%s", out)
	}
	if !strings.Contains(out, "abc$ x") {
		t.Errorf("missing source context, got:\n%s", out)
	}
	// caret under column 5
	if !strings.Contains(out, "\n      ^\n") {
		t.Errorf("missing caret line, got:\n%q", out)
	}
}

func TestPrettyUnderlineWidth(t *testing.T) {
	bag, fs := oneErrorBag(t, "see $(a + b) here", 4, 12)
	var sb strings.Builder
	diagfmt.Pretty(&sb, bag, fs, diagfmt.PrettyOpts{})
	// span covers 8 bytes: one caret plus seven tildes
	if !strings.Contains(sb.String(), "^~~~~~~") {
		t.Errorf("missing underline, got:\n%s", sb.String())
	}
}

func TestPrettyNotes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("demo.il", []byte("a$ b"))
	bag := diag.NewBag(10)
	d := diag.NewError(diag.InterpInvalidEscape,
		source.Span{File: id, Start: 2, End: 3}, "invalid escape").
		WithNote(source.Span{File: id, Start: 1, End: 2}, "escape starts here")
	bag.Add(d)

	var sb strings.Builder
	diagfmt.Pretty(&sb, bag, fs, diagfmt.PrettyOpts{ShowNotes: true})
	if !strings.Contains(sb.String(), "note: demo.il:1:2: escape starts here") {
		t.Errorf("missing note, got:\n%s", sb.String())
	}

	sb.Reset()
	diagfmt.Pretty(&sb, bag, fs, diagfmt.PrettyOpts{})
	if strings.Contains(sb.String(), "note:") {
		t.Errorf("notes leaked without ShowNotes:\n%s", sb.String())
	}
}
