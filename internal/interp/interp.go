package interp

import (
	"interlit/internal/ast"
	"interlit/internal/diag"
	"interlit/internal/source"
)

// Literal is one interpolation literal handed over by the surrounding
// parser: the file it lives in, its kind, the raw body between the quotes,
// and the syntactic position it occupies.
type Literal struct {
	File    *source.File
	Kind    ast.InterpKind
	Body    source.Span
	Context ast.InterpContext
}

// Scan produces the classified element sequence for a literal without
// lowering it. Context is not checked here; this is the debugging surface.
func Scan(lit Literal, parsers GroupParsers) ([]Element, *diag.Diagnostic) {
	elems, d := ScanElements(lit.File, lit.Body)
	if d != nil {
		return nil, d
	}
	if d := ClassifyGroups(lit.File, elems, parsers); d != nil {
		return nil, d
	}
	return elems, nil
}

// Lower runs the whole pipeline for one literal: context gate, element
// scan, group classification, lowering. Pure and stateless; safe to call
// from parallel workers as long as the supplied parsers are. The first
// diagnostic aborts the literal with no partial output.
func Lower(lit Literal, parsers GroupParsers) ([]Argument, *diag.Diagnostic) {
	span := source.Span{File: lit.File.ID, Start: lit.Body.Start, End: lit.Body.End}
	if d := ValidateContext(lit.Kind, lit.Context, span); d != nil {
		return nil, d
	}
	elems, d := Scan(lit, parsers)
	if d != nil {
		return nil, d
	}
	return LowerElements(elems, lit.Kind), nil
}
