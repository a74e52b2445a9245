package parser

import (
	"github.com/minic-lang/minic/frontend/ast"
)

func (p *parser) parseStmt() ast.Stmt {
	switch p.Token.AsString() {
	case "{":
		block := p.parseBlock()
		return &block
	case "if":
		return p.parseIf()
	case "while":
		return p.parseWhile()
	case "do":
		return p.parseDoWhile()
	case "for":
		return p.parseFor()
	case "return":
		return p.parseReturn()
	case "const", "int", "float", "char", "bool", "void":
		return p.parseDeclStmt()
	default:
		spanStart := p.span()
		expr := p.parseExpr()
		p.expect(";")
		return ast.NewStmtExpr(expr, SpanFrom(spanStart, p.prevSpan()))
	}
}

// parseDeclStmt parses a local variable declaration statement, including
// the terminating `;`.
func (p *parser) parseDeclStmt() ast.Stmt {
	spanStart := p.span()

	isConst := p.tryConsume("const")
	ty := p.parseType()
	name := p.expectIdentMsg("variable name")
	if p.Token.Is("(") {
		p.fail("function declarations are only allowed at the top level")
	}

	decls := p.parseVarRest(isConst, ty, name, spanStart)
	return ast.NewDeclStmt(decls, SpanFrom(spanStart, p.prevSpan()))
}

func (p *parser) parseIf() ast.Stmt {
	spanStart := p.span()
	p.advance() // consume `if`

	p.expect("(")
	cond := p.parseExpr()
	p.expect(")")

	then := p.parseStmt()

	var els ast.Stmt
	if p.tryConsume("else") {
		els = p.parseStmt()
	}

	return ast.NewIfStmt(cond, then, els, SpanFrom(spanStart, p.prevSpan()))
}

func (p *parser) parseWhile() ast.Stmt {
	spanStart := p.span()
	p.advance() // consume `while`

	p.expect("(")
	cond := p.parseExpr()
	p.expect(")")

	body := p.parseStmt()

	return ast.NewWhileStmt(cond, body, SpanFrom(spanStart, p.prevSpan()))
}

func (p *parser) parseDoWhile() ast.Stmt {
	spanStart := p.span()
	p.advance() // consume `do`

	body := p.parseStmt()

	p.expect("while")
	p.expect("(")
	cond := p.parseExpr()
	p.expect(")")
	p.expect(";")

	return ast.NewDoWhileStmt(body, cond, SpanFrom(spanStart, p.prevSpan()))
}

func (p *parser) parseFor() ast.Stmt {
	spanStart := p.span()
	p.advance() // consume `for`

	p.expect("(")

	// init: declaration, expression, or empty
	var init ast.Stmt
	if !p.tryConsume(";") {
		switch p.Token.AsString() {
		case "const", "int", "float", "char", "bool", "void":
			init = p.parseDeclStmt() // consumes the `;`
		default:
			initStart := p.span()
			expr := p.parseExpr()
			p.expect(";")
			init = ast.NewStmtExpr(expr, SpanFrom(initStart, p.prevSpan()))
		}
	}

	var cond ast.Expr
	if !p.tryConsume(";") {
		cond = p.parseExpr()
		p.expect(";")
	}

	var post ast.Expr
	if !p.Token.Is(")") {
		post = p.parseExpr()
	}
	p.expect(")")

	body := p.parseStmt()

	return ast.NewForStmt(init, cond, post, body, SpanFrom(spanStart, p.prevSpan()))
}

func (p *parser) parseReturn() ast.Stmt {
	spanStart := p.span()
	p.advance() // consume `return`

	var expr ast.Expr
	if !p.tryConsume(";") {
		expr = p.parseExpr()
		p.expect(";")
	}

	return ast.NewReturnStmt(expr, SpanFrom(spanStart, p.prevSpan()))
}
