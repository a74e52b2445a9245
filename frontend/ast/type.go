package ast

import "github.com/minic-lang/minic/frontend/common"

// Type is a declared type name. The language has no derived types, so a
// type is just one of the builtin names plus its source span.
type Type struct {
	Name string
	span common.Span
}

func NewType(name string, span common.Span) Type {
	return Type{Name: name, span: span}
}

func (t Type) Span() common.Span {
	return t.span
}

func (t Type) String() string {
	return t.Name
}

func (t Type) IsVoid() bool {
	return t.Name == "void"
}
