package ast

import (
	"interlit/internal/source"
)

// TypeKind discriminates type syntax nodes.
type TypeKind uint8

const (
	TypeInvalid TypeKind = iota
	// TypeName is a possibly qualified, possibly instantiated name:
	// Foo, a.b.Foo, Foo!(int, string).
	TypeName
	// TypeArray is Elem[].
	TypeArray
	// TypePointer is Elem*.
	TypePointer
	// TypeTuple is (T, U, ...).
	TypeTuple
	// TypeFn is fn(T, ...) -> R.
	TypeFn
)

// Type is one type syntax node.
type Type struct {
	Kind TypeKind
	Span source.Span

	// TypeName: dotted path plus optional generic arguments.
	Name string
	Args []*Type

	// TypeArray/TypePointer element.
	Elem *Type

	// TypeTuple elements / TypeFn parameters.
	Elems []*Type
	// TypeFn result; nil means no arrow.
	Ret *Type
}
