package token

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{EOF, "EOF"},
		{Ident, "Ident"},
		{IStringLit, "IStringLit"},
		{FStringLit, "FStringLit"},
		{KwMixin, "mixin"},
		{Arrow, "->"},
		{BangEq, "!="},
		{Kind(250), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestLookupKeyword(t *testing.T) {
	if k, ok := LookupKeyword("mixin"); !ok || k != KwMixin {
		t.Errorf("expected mixin keyword, got %v (ok=%v)", k, ok)
	}
	if _, ok := LookupKeyword("Mixin"); ok {
		t.Error("keywords must be case-sensitive")
	}
	if _, ok := LookupKeyword("apples"); ok {
		t.Error("plain identifiers are not keywords")
	}
}

func TestIsInterp(t *testing.T) {
	if !(Token{Kind: IStringLit}).IsInterp() {
		t.Error("IStringLit should be an interpolation literal")
	}
	if !(Token{Kind: FStringLit}).IsInterp() {
		t.Error("FStringLit should be an interpolation literal")
	}
	if (Token{Kind: StringLit}).IsInterp() {
		t.Error("StringLit is not an interpolation literal")
	}
}
