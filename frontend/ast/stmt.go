package ast

import (
	"github.com/minic-lang/minic/frontend/common"
)

type Stmt interface {
	isStmt()
	Span() common.Span
}

/* Expression statement */

type StmtExpr struct {
	Expr Expr
	span common.Span
}

func NewStmtExpr(expr Expr, span common.Span) *StmtExpr {
	return &StmtExpr{Expr: expr, span: span}
}

func (s *StmtExpr) isStmt() {}

func (s *StmtExpr) Span() common.Span {
	return s.span
}

/* Return */

type StmtReturn struct {
	Expr Expr // nil for a bare `return;`
	span common.Span
}

func NewReturnStmt(expr Expr, span common.Span) *StmtReturn {
	return &StmtReturn{Expr: expr, span: span}
}

func (s *StmtReturn) isStmt() {}

func (s *StmtReturn) Span() common.Span {
	return s.span
}

/* If */

type StmtIf struct {
	Cond Expr
	Then Stmt
	Else Stmt // nil when there is no else branch
	span common.Span
}

func NewIfStmt(cond Expr, then, els Stmt, span common.Span) *StmtIf {
	return &StmtIf{Cond: cond, Then: then, Else: els, span: span}
}

func (s *StmtIf) isStmt() {}

func (s *StmtIf) Span() common.Span {
	return s.span
}

/* While */

type StmtWhile struct {
	Cond Expr
	Body Stmt
	span common.Span
}

func NewWhileStmt(cond Expr, body Stmt, span common.Span) *StmtWhile {
	return &StmtWhile{Cond: cond, Body: body, span: span}
}

func (s *StmtWhile) isStmt() {}

func (s *StmtWhile) Span() common.Span {
	return s.span
}

/* Do-while */

type StmtDoWhile struct {
	Body Stmt
	Cond Expr
	span common.Span
}

func NewDoWhileStmt(body Stmt, cond Expr, span common.Span) *StmtDoWhile {
	return &StmtDoWhile{Body: body, Cond: cond, span: span}
}

func (s *StmtDoWhile) isStmt() {}

func (s *StmtDoWhile) Span() common.Span {
	return s.span
}

/* For */

// StmtFor is `for (init; cond; post) body`. Init is a declaration or
// expression statement; any of the three header slots may be nil.
type StmtFor struct {
	Init Stmt
	Cond Expr
	Post Expr
	Body Stmt
	span common.Span
}

func NewForStmt(init Stmt, cond, post Expr, body Stmt, span common.Span) *StmtFor {
	return &StmtFor{Init: init, Cond: cond, Post: post, Body: body, span: span}
}

func (s *StmtFor) isStmt() {}

func (s *StmtFor) Span() common.Span {
	return s.span
}

/* Declaration statement */

// StmtDecl wraps the declarators of one local variable declaration.
type StmtDecl struct {
	Decls []*VarDecl
	span  common.Span
}

func NewDeclStmt(decls []*VarDecl, span common.Span) *StmtDecl {
	return &StmtDecl{Decls: decls, span: span}
}

func (s *StmtDecl) isStmt() {}

func (s *StmtDecl) Span() common.Span {
	return s.span
}
