package parser

import (
	"github.com/minic-lang/minic/frontend/ast"
)

// parseDecl parses one top-level declaration: an optional `const`
// qualifier, a type, then either a function (name followed by `(`) or one
// or more comma-separated variable declarators.
func (p *parser) parseDecl() []ast.Decl {
	spanStart := p.span()

	isConst := p.tryConsume("const")
	ty := p.parseType()
	name := p.expectIdentMsg("declaration name")

	if p.Token.Is("(") {
		if isConst {
			p.fail("`const` cannot qualify a function declaration")
		}
		return []ast.Decl{p.parseFuncRest(ty, name, spanStart)}
	}

	vars := p.parseVarRest(isConst, ty, name, spanStart)
	decls := make([]ast.Decl, 0, len(vars))
	for _, v := range vars {
		decls = append(decls, v)
	}
	return decls
}

// parseVarRest parses the declarator list of a variable declaration after
// the type and the first name have been consumed, up to and including the
// terminating `;`. `int a = 1, b, c = 2;` yields one VarDecl per name.
func (p *parser) parseVarRest(isConst bool, ty ast.Type, first ast.Ident, spanStart Span) []*ast.VarDecl {
	var decls []*ast.VarDecl

	name := first
	declStart := spanStart
	for {
		var init ast.Expr
		if p.tryConsume("=") {
			init = p.parseExpr()
		}
		decls = append(decls, ast.NewVarDecl(name, ty, isConst, init, SpanFrom(declStart, p.prevSpan())))

		if !p.tryConsume(",") {
			break
		}
		name = p.expectIdentMsg("declarator name")
		declStart = name.Span()
	}

	p.expect(";")
	return decls
}
