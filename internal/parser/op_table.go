package parser

import (
	"interlit/internal/ast"
	"interlit/internal/token"
)

// Binary operator precedence; larger binds tighter.
const (
	precAssignment     = 1  // =
	precLogicalOr      = 2  // ||
	precLogicalAnd     = 3  // &&
	precEquality       = 4  // == !=
	precComparison     = 5  // < <= > >=
	precBitwiseOr      = 6  // |
	precBitwiseXor     = 7  // ^
	precBitwiseAnd     = 8  // &
	precShift          = 9  // << >>
	precAdditive       = 10 // + -
	precMultiplicative = 11 // * / %
)

// binaryPrec returns the precedence and right-associativity of an operator
// token, or -1 for non-operators.
func binaryPrec(kind token.Kind) (int, bool) {
	switch kind {
	case token.Assign:
		return precAssignment, true
	case token.OrOr:
		return precLogicalOr, false
	case token.AndAnd:
		return precLogicalAnd, false
	case token.EqEq, token.BangEq:
		return precEquality, false
	case token.Lt, token.LtEq, token.Gt, token.GtEq:
		return precComparison, false
	case token.Pipe:
		return precBitwiseOr, false
	case token.Caret:
		return precBitwiseXor, false
	case token.Amp:
		return precBitwiseAnd, false
	case token.Shl, token.Shr:
		return precShift, false
	case token.Plus, token.Minus:
		return precAdditive, false
	case token.Star, token.Slash, token.Percent:
		return precMultiplicative, false
	default:
		return -1, false
	}
}

func binaryOp(kind token.Kind) ast.BinaryOp {
	switch kind {
	case token.Plus:
		return ast.BinaryAdd
	case token.Minus:
		return ast.BinarySub
	case token.Star:
		return ast.BinaryMul
	case token.Slash:
		return ast.BinaryDiv
	case token.Percent:
		return ast.BinaryMod
	case token.Amp:
		return ast.BinaryBitAnd
	case token.Pipe:
		return ast.BinaryBitOr
	case token.Caret:
		return ast.BinaryBitXor
	case token.Shl:
		return ast.BinaryShiftLeft
	case token.Shr:
		return ast.BinaryShiftRight
	case token.AndAnd:
		return ast.BinaryLogicalAnd
	case token.OrOr:
		return ast.BinaryLogicalOr
	case token.EqEq:
		return ast.BinaryEq
	case token.BangEq:
		return ast.BinaryNotEq
	case token.Lt:
		return ast.BinaryLess
	case token.LtEq:
		return ast.BinaryLessEq
	case token.Gt:
		return ast.BinaryGreater
	case token.GtEq:
		return ast.BinaryGreaterEq
	case token.Assign:
		return ast.BinaryAssign
	}
	return ast.BinaryAdd
}
