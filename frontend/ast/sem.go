package ast

import "github.com/minic-lang/minic/frontend/common"

// SymbolKind says what a name is bound to.
type SymbolKind uint8

const (
	_ SymbolKind = iota
	SymVar
	SymParam
	SymFunc
)

func (k SymbolKind) String() string {
	switch k {
	case SymVar:
		return "variable"
	case SymParam:
		return "parameter"
	case SymFunc:
		return "function"
	default:
		panic("unreachable")
	}
}

// Symbol is a resolved binding: the declaration info an identifier
// reference is annotated with. NumParams is only meaningful for SymFunc.
type Symbol struct {
	Name      string
	Kind      SymbolKind
	Type      Type // declared type; return type for functions
	Const     bool
	NumParams int
	span      common.Span
}

func NewSymbol(name string, kind SymbolKind, ty Type, span common.Span) *Symbol {
	return &Symbol{Name: name, Kind: kind, Type: ty, span: span}
}

func (s *Symbol) Span() common.Span {
	return s.span
}
