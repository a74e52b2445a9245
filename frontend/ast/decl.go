package ast

import "github.com/minic-lang/minic/frontend/common"

type Decl interface {
	isDecl()
	Span() common.Span
}

/* Function declaration */

type Param struct {
	Name Ident
	Type Type
}

func NewParam(name Ident, ty Type) Param {
	return Param{Name: name, Type: ty}
}

func (p Param) Span() common.Span {
	return common.SpanFrom(p.Type.Span(), p.Name.Span())
}

type FuncDecl struct {
	Name       Ident
	ReturnType Type
	Params     []Param
	Body       Block
	span       common.Span
}

func NewFuncDecl(name Ident, ret Type, params []Param, body Block, span common.Span) *FuncDecl {
	return &FuncDecl{
		Name:       name,
		ReturnType: ret,
		Params:     params,
		Body:       body,
		span:       span,
	}
}

func (f *FuncDecl) isDecl() {}

func (f *FuncDecl) Span() common.Span {
	return f.span
}

/* Variable declaration */

// VarDecl is one declarator. A comma-separated declaration such as
// `int a, b = 1;` parses into one VarDecl per name.
type VarDecl struct {
	Name  Ident
	Type  Type
	Const bool
	Init  Expr // nil when there is no initializer
	span  common.Span
}

func NewVarDecl(name Ident, ty Type, isConst bool, init Expr, span common.Span) *VarDecl {
	return &VarDecl{
		Name:  name,
		Type:  ty,
		Const: isConst,
		Init:  init,
		span:  span,
	}
}

func (v *VarDecl) isDecl() {}

func (v *VarDecl) Span() common.Span {
	return v.span
}
