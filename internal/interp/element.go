// Package interp implements the interpolated-literal transformation: it
// scans the body of an i"..." or f"..." literal into elements, classifies
// parenthesized groups against the type and expression grammars, validates
// the literal's syntactic context, and lowers the result into an ordinary
// argument list.
package interp

import (
	"interlit/internal/ast"
	"interlit/internal/source"
)

// ElemKind discriminates body elements.
type ElemKind uint8

const (
	// ElemText is a run of literal text without unescaped '$'.
	// Zero-length runs at boundaries are kept; lowering drops them.
	ElemText ElemKind = iota
	// ElemDollar is the two-byte escape '$$', one literal '$'.
	ElemDollar
	// ElemName is '$' directly followed by an identifier.
	ElemName
	// ElemGroup is '$( ... )' holding a type or an expression.
	ElemGroup
)

func (k ElemKind) String() string {
	switch k {
	case ElemText:
		return "Text"
	case ElemDollar:
		return "Dollar"
	case ElemName:
		return "Name"
	case ElemGroup:
		return "Group"
	}
	return "Unknown"
}

// GroupRole tells which grammar owns a group's interior.
type GroupRole uint8

const (
	RoleUnknown GroupRole = iota
	RoleType
	RoleExpr
)

func (r GroupRole) String() string {
	switch r {
	case RoleType:
		return "Type"
	case RoleExpr:
		return "Expr"
	}
	return "Unknown"
}

// Element is one piece of a literal body. Span always covers the element's
// full source form ("$$", "$name", "$( ... )", or the text run itself), so
// concatenating element spans in order reproduces the body exactly.
type Element struct {
	Kind ElemKind
	Span source.Span

	// ElemText: the raw run (escapes unresolved). ElemName: the identifier,
	// NFC-normalized, without the '$'.
	Text string

	// Inner is the payload span: the identifier for ElemName, the interior
	// between the parentheses for ElemGroup.
	Inner source.Span

	// Classification results for ElemGroup.
	Role     GroupRole
	TypeNode *ast.Type
	ExprNode *ast.Expr
}
