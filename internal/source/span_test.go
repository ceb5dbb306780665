package source

import "testing"

func TestSpanEmptyAndLen(t *testing.T) {
	sp := Span{File: 0, Start: 3, End: 3}
	if !sp.Empty() {
		t.Error("expected zero-length span to be empty")
	}
	sp.End = 7
	if sp.Empty() {
		t.Error("expected non-empty span")
	}
	if sp.Len() != 4 {
		t.Errorf("expected len 4, got %d", sp.Len())
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 5, End: 10}
	b := Span{File: 1, Start: 2, End: 7}
	c := a.Cover(b)
	if c.Start != 2 || c.End != 10 {
		t.Errorf("expected 2-10, got %d-%d", c.Start, c.End)
	}

	// different files: unchanged
	other := Span{File: 2, Start: 0, End: 100}
	c = a.Cover(other)
	if c != a {
		t.Errorf("expected cover across files to be a no-op, got %v", c)
	}
}

func TestSpanContains(t *testing.T) {
	outer := Span{File: 0, Start: 2, End: 12}
	inner := Span{File: 0, Start: 4, End: 8}
	if !outer.Contains(inner) {
		t.Error("expected outer to contain inner")
	}
	if inner.Contains(outer) {
		t.Error("expected inner not to contain outer")
	}
	if outer.Contains(Span{File: 1, Start: 4, End: 8}) {
		t.Error("expected containment to require the same file")
	}
}
