package ast

import (
	"github.com/minic-lang/minic/frontend/common"
)

type Expr interface {
	isExpr()
	Span() common.Span
}

/* Literal */

type LiteralKind uint8

const (
	_ LiteralKind = iota
	LitInt
	LitFloat
	LitChar
	LitBool
	LitString
)

func (k LiteralKind) String() string {
	switch k {
	case LitInt:
		return "int"
	case LitFloat:
		return "float"
	case LitChar:
		return "char"
	case LitBool:
		return "bool"
	case LitString:
		return "string"
	default:
		panic("unreachable")
	}
}

// ExprLiteral carries the literal kind plus its value. Raw holds the
// source text for numbers and "true"/"false" for bools; for char and
// string literals it holds the unescaped content.
type ExprLiteral struct {
	Kind LiteralKind
	Raw  string
	span common.Span
}

func NewLiteralExpr(kind LiteralKind, raw string, span common.Span) *ExprLiteral {
	return &ExprLiteral{Kind: kind, Raw: raw, span: span}
}

func (e *ExprLiteral) isExpr() {}

func (e *ExprLiteral) Span() common.Span {
	return e.span
}

/* Identifier */

// ExprIdent is a reference to a declared name. Sym is set by the semantic
// analyzer when the reference resolves.
type ExprIdent struct {
	Name string
	Sym  *Symbol
	span common.Span
}

func NewIdentExpr(name string, span common.Span) *ExprIdent {
	return &ExprIdent{Name: name, span: span}
}

func (e *ExprIdent) isExpr() {}

func (e *ExprIdent) Span() common.Span {
	return e.span
}

/* Binary */

type ExprBinary struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
	span  common.Span
}

func NewBinaryExpr(left Expr, op BinaryOp, right Expr, span common.Span) *ExprBinary {
	return &ExprBinary{Op: op, Left: left, Right: right, span: span}
}

func (e *ExprBinary) isExpr() {}

func (e *ExprBinary) Span() common.Span {
	return e.span
}

/* Unary */

// ExprUnary covers both prefix operators and the postfix `++`/`--`.
type ExprUnary struct {
	Op      UnaryOp
	Operand Expr
	Postfix bool
	span    common.Span
}

func NewUnaryExpr(op UnaryOp, operand Expr, postfix bool, span common.Span) *ExprUnary {
	return &ExprUnary{Op: op, Operand: operand, Postfix: postfix, span: span}
}

func (e *ExprUnary) isExpr() {}

func (e *ExprUnary) Span() common.Span {
	return e.span
}

/* Call */

// ExprCall is a direct call of a named function. Sym is set by the
// semantic analyzer when the callee resolves.
type ExprCall struct {
	Callee Ident
	Args   []Expr
	Sym    *Symbol
	span   common.Span
}

func NewCallExpr(callee Ident, args []Expr, span common.Span) *ExprCall {
	return &ExprCall{Callee: callee, Args: args, span: span}
}

func (e *ExprCall) isExpr() {}

func (e *ExprCall) Span() common.Span {
	return e.span
}

/* Assignment */

type ExprAssign struct {
	Target Expr
	Op     AssignOp
	Value  Expr
	span   common.Span
}

func NewAssignExpr(target Expr, op AssignOp, value Expr, span common.Span) *ExprAssign {
	return &ExprAssign{Target: target, Op: op, Value: value, span: span}
}

func (e *ExprAssign) isExpr() {}

func (e *ExprAssign) Span() common.Span {
	return e.span
}

/* Cast */

type ExprCast struct {
	Type    Type
	Operand Expr
	span    common.Span
}

func NewCastExpr(ty Type, operand Expr, span common.Span) *ExprCast {
	return &ExprCast{Type: ty, Operand: operand, span: span}
}

func (e *ExprCast) isExpr() {}

func (e *ExprCast) Span() common.Span {
	return e.span
}
