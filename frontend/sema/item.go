package sema

import "github.com/minic-lang/minic/frontend/ast"

func (a *Analysis) handleTranslationUnit(tu *ast.TranslationUnit) {
	a.pushScope()
	// Bind every top-level name first so function bodies and global
	// initializers can reference declarations that appear later in the file.
	for _, decl := range tu.Decls {
		a.declareTopLevel(decl)
	}
	for _, decl := range tu.Decls {
		switch decl := decl.(type) {
		case *ast.VarDecl:
			if decl.Init != nil {
				a.handleExpr(decl.Init)
			}
		case *ast.FuncDecl:
			a.handleFuncDecl(decl)
		}
	}
	a.popScope()
}

func (a *Analysis) declareTopLevel(decl ast.Decl) {
	switch decl := decl.(type) {
	case *ast.VarDecl:
		sym := ast.NewSymbol(decl.Name.Raw, ast.SymVar, decl.Type, decl.Name.Span())
		sym.Const = decl.Const
		a.declare(sym)
	case *ast.FuncDecl:
		sym := ast.NewSymbol(decl.Name.Raw, ast.SymFunc, decl.ReturnType, decl.Name.Span())
		sym.NumParams = len(decl.Params)
		a.declare(sym)
	}
}

func (a *Analysis) handleFuncDecl(decl *ast.FuncDecl) {
	// Parameters get a scope of their own between the translation unit and
	// the body, so a local in the outermost block may shadow a parameter.
	a.pushScope()
	for _, param := range decl.Params {
		sym := ast.NewSymbol(param.Name.Raw, ast.SymParam, param.Type, param.Name.Span())
		a.declare(sym)
	}
	a.handleBlock(&decl.Body)
	a.popScope()
}
