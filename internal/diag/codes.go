package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical (host subset)
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedChar         Code = 1003
	LexUnterminatedBlockComment Code = 1004
	LexBadNumber                Code = 1005
	LexBarePrefix               Code = 1006
	LexStrayDollar              Code = 1007

	// Syntactic (host subset: expressions, types, argument lists)
	SynInfo            Code = 2000
	SynUnexpectedToken Code = 2001
	SynExpectExpr      Code = 2002
	SynExpectType      Code = 2003
	SynExpectRParen    Code = 2004
	SynExpectRBracket  Code = 2005
	SynExpectSemicolon Code = 2006
	SynExpectIdent     Code = 2007
	SynExpectArgList   Code = 2008
	SynTrailingTokens  Code = 2009

	// Interpolation core
	InterpInfo                Code = 4000
	InterpInvalidEscape       Code = 4001
	InterpUnbalancedGroup     Code = 4002
	InterpInvalidGroupContent Code = 4003
	InterpIllegalContext      Code = 4004

	// I/O
	IOLoadFileError Code = 5001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedChar:         "Unterminated character literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Bad numeric literal",
	LexBarePrefix:               "Literal prefix without a string",
	LexStrayDollar:              "'$' outside an interpolation literal",
	SynInfo:                     "Syntax information",
	SynUnexpectedToken:          "Unexpected token",
	SynExpectExpr:               "Expected expression",
	SynExpectType:               "Expected type",
	SynExpectRParen:             "Expected ')'",
	SynExpectRBracket:           "Expected ']'",
	SynExpectSemicolon:          "Expected ';'",
	SynExpectIdent:              "Expected identifier",
	SynExpectArgList:            "Expected argument list",
	SynTrailingTokens:           "Trailing tokens after expression",
	InterpInfo:                  "Interpolation information",
	InterpInvalidEscape:         "Invalid '$' escape",
	InterpUnbalancedGroup:       "Unbalanced '$(' group",
	InterpInvalidGroupContent:   "Group is neither a type nor an expression",
	InterpIllegalContext:        "Interpolation literal in illegal context",
	IOLoadFileError:             "Failed to load file",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("ITP%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
