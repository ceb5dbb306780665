package ast

import (
	"interlit/internal/source"
)

// ExprKind discriminates expression nodes.
type ExprKind uint8

const (
	ExprInvalid ExprKind = iota
	// ExprIdent is a bare identifier reference.
	ExprIdent
	// ExprLitInt, ExprLitFloat, ExprLitString, ExprLitChar, ExprLitBool are literals.
	ExprLitInt
	ExprLitFloat
	ExprLitString
	ExprLitChar
	ExprLitBool
	// ExprUnary is a prefix operation (- ! ~ &).
	ExprUnary
	// ExprBinary is an infix operation.
	ExprBinary
	// ExprParen is a parenthesized expression.
	ExprParen
	// ExprCall is callee(args...).
	ExprCall
	// ExprMixin is the code-injection construct mixin(args...).
	ExprMixin
	// ExprInstantiate is a generic instantiation callee!(args...).
	ExprInstantiate
	// ExprMember is x.name.
	ExprMember
	// ExprIndex is x[index].
	ExprIndex
	// ExprInterp is an interpolated literal in place, before lowering.
	ExprInterp
	// ExprTypeRef is a type used in expression position; the lowered form of
	// a classified Type group.
	ExprTypeRef
)

// UnaryOp enumerates prefix operators.
type UnaryOp uint8

const (
	UnaryNeg UnaryOp = iota // -
	UnaryNot                // !
	UnaryBitNot             // ~
	UnaryRef                // &
)

// BinaryOp enumerates infix operators.
type BinaryOp uint8

const (
	BinaryAdd BinaryOp = iota
	BinarySub
	BinaryMul
	BinaryDiv
	BinaryMod
	BinaryBitAnd
	BinaryBitOr
	BinaryBitXor
	BinaryShiftLeft
	BinaryShiftRight
	BinaryLogicalAnd
	BinaryLogicalOr
	BinaryEq
	BinaryNotEq
	BinaryLess
	BinaryLessEq
	BinaryGreater
	BinaryGreaterEq
	BinaryAssign
)

// InterpKind tells which lowering an interpolated literal requests.
type InterpKind uint8

const (
	// InterpI is the interspersion form i"...".
	InterpI InterpKind = iota
	// InterpF is the format-string form f"...".
	InterpF
)

func (k InterpKind) String() string {
	if k == InterpF {
		return "format-string"
	}
	return "interspersion"
}

// InterpContext records the lexical position an interpolated literal
// occupies, as seen by the parser.
type InterpContext uint8

const (
	// InterpCtxNone: any position other than the three sanctioned ones.
	InterpCtxNone InterpContext = iota
	// InterpCtxCall: directly an argument of an ordinary call.
	InterpCtxCall
	// InterpCtxMixin: directly an argument of mixin(...).
	InterpCtxMixin
	// InterpCtxInstantiation: directly an argument of Name!(...).
	InterpCtxInstantiation
)

func (c InterpContext) String() string {
	switch c {
	case InterpCtxCall:
		return "call argument"
	case InterpCtxMixin:
		return "mixin argument"
	case InterpCtxInstantiation:
		return "instantiation argument"
	}
	return "expression position"
}

// Expr is one expression node. Fields are used according to Kind; unused
// fields stay zero.
type Expr struct {
	Kind ExprKind
	Span source.Span

	// Ident/literal spelling, exactly as written (NFC-normalized for idents).
	Text string

	UnOp  UnaryOp
	BinOp BinaryOp
	X     *Expr // unary/paren operand, member/index receiver, binary lhs
	Y     *Expr // binary rhs, index subscript

	Callee *Expr   // call/instantiation target
	Args   []*Expr // call/mixin/instantiation arguments, lexical order

	// ExprMember selector.
	Sel string

	// ExprTypeRef payload.
	Type *Type

	// ExprInterp payload.
	Interp *InterpLit
}

// InterpLit describes an interpolated literal token before lowering.
type InterpLit struct {
	Kind InterpKind
	// BodySpan covers the raw body between the quotes.
	BodySpan source.Span
	// Context is the syntactic position the literal appeared in.
	Context InterpContext
}

// NewIdent builds an identifier expression.
func NewIdent(sp source.Span, text string) *Expr {
	return &Expr{Kind: ExprIdent, Span: sp, Text: text}
}

// NewTypeRef wraps a type for use in expression position.
func NewTypeRef(sp source.Span, t *Type) *Expr {
	return &Expr{Kind: ExprTypeRef, Span: sp, Type: t}
}
