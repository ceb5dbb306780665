package token

var keywords = map[string]Kind{
	"mixin": KwMixin,
	"fn":    KwFn,
	"true":  KwTrue,
	"false": KwFalse,
}

// LookupKeyword maps an identifier spelling to its keyword kind.
// Keywords are case-sensitive (lowercase only).
func LookupKeyword(text string) (Kind, bool) {
	k, ok := keywords[text]
	return k, ok
}
