package sema

import "github.com/minic-lang/minic/frontend/ast"

func (a *Analysis) handleExpr(expr ast.Expr) {
	switch expr := expr.(type) {
	case *ast.ExprLiteral:
	case *ast.ExprIdent:
		a.resolveIdent(expr)
	case *ast.ExprBinary:
		a.handleExpr(expr.Left)
		a.handleExpr(expr.Right)
	case *ast.ExprUnary:
		a.handleExpr(expr.Operand)
	case *ast.ExprCast:
		a.handleExpr(expr.Operand)
	case *ast.ExprCall:
		a.handleCall(expr)
	case *ast.ExprAssign:
		a.handleAssign(expr)
	default:
		panic("unreachable")
	}
}

func (a *Analysis) resolveIdent(expr *ast.ExprIdent) {
	sym := a.scope().Lookup(expr.Name)
	if sym == nil {
		a.errorAt(ErrUndeclared, expr.Name, expr.Span())
		return
	}
	if sym.Kind == ast.SymFunc {
		a.errorAt(ErrFuncAsValue, expr.Name, expr.Span())
		return
	}
	expr.Sym = sym
}

func (a *Analysis) handleCall(expr *ast.ExprCall) {
	name := expr.Callee.Raw
	sym := a.scope().Lookup(name)
	switch {
	case sym == nil:
		a.errorAt(ErrUndeclared, name, expr.Callee.Span())
	case sym.Kind != ast.SymFunc:
		a.errorAt(ErrNotAFunction, name, expr.Callee.Span())
	default:
		expr.Sym = sym
		if len(expr.Args) != sym.NumParams {
			a.errorAt(ErrArity, name, expr.Span())
		}
	}
	// Arguments are checked even when the callee itself is bad.
	for _, arg := range expr.Args {
		a.handleExpr(arg)
	}
}

func (a *Analysis) handleAssign(expr *ast.ExprAssign) {
	if target, ok := expr.Target.(*ast.ExprIdent); ok {
		a.resolveIdent(target)
		if target.Sym != nil && target.Sym.Const {
			a.errorAt(ErrAssignConst, target.Name, target.Span())
		}
	} else {
		a.handleExpr(expr.Target)
	}
	a.handleExpr(expr.Value)
}
