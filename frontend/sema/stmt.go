package sema

import "github.com/minic-lang/minic/frontend/ast"

func (a *Analysis) handleBlock(block *ast.Block) {
	a.pushScope()
	for _, stmt := range block.Stmts {
		a.handleStmt(stmt)
	}
	a.popScope()
}

func (a *Analysis) handleStmt(stmt ast.Stmt) {
	switch stmt := stmt.(type) {
	case *ast.Block:
		a.handleBlock(stmt)
	case *ast.StmtExpr:
		a.handleExpr(stmt.Expr)
	case *ast.StmtReturn:
		if stmt.Expr != nil {
			a.handleExpr(stmt.Expr)
		}
	case *ast.StmtIf:
		a.handleExpr(stmt.Cond)
		a.handleStmt(stmt.Then)
		if stmt.Else != nil {
			a.handleStmt(stmt.Else)
		}
	case *ast.StmtWhile:
		a.handleExpr(stmt.Cond)
		a.handleStmt(stmt.Body)
	case *ast.StmtDoWhile:
		a.handleStmt(stmt.Body)
		a.handleExpr(stmt.Cond)
	case *ast.StmtFor:
		// Names declared in the header scope over the condition, the post
		// expression and the body.
		a.pushScope()
		if stmt.Init != nil {
			a.handleStmt(stmt.Init)
		}
		if stmt.Cond != nil {
			a.handleExpr(stmt.Cond)
		}
		if stmt.Post != nil {
			a.handleExpr(stmt.Post)
		}
		a.handleStmt(stmt.Body)
		a.popScope()
	case *ast.StmtDecl:
		for _, decl := range stmt.Decls {
			a.handleVarDecl(decl)
		}
	default:
		panic("unreachable")
	}
}

func (a *Analysis) handleVarDecl(decl *ast.VarDecl) {
	// The initializer is analyzed before the name is bound, so a local
	// variable is not visible inside its own initializer.
	if decl.Init != nil {
		a.handleExpr(decl.Init)
	}
	sym := ast.NewSymbol(decl.Name.Raw, ast.SymVar, decl.Type, decl.Name.Span())
	sym.Const = decl.Const
	a.declare(sym)
}
