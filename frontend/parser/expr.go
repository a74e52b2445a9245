package parser

import (
	"github.com/minic-lang/minic/frontend/ast"
	"github.com/minic-lang/minic/frontend/lexer"
)

// parseExpr parses a full expression. Assignment is right-associative and
// binds loosest of all binary operators, so it is handled here, above the
// precedence climber.
func (p *parser) parseExpr() ast.Expr {
	left := p.parseBinaryExpr(0)

	if op, ok := lookupAssignOp(p.Token.AsString()); ok {
		if !isValidAssignmentTarget(left) {
			p.failSpan("invalid left-hand side of assignment", left.Span())
		}
		p.advance() // consume the assignment operator
		value := p.parseExpr()
		return ast.NewAssignExpr(left, op, value, SpanFrom(left.Span(), value.Span()))
	}

	return left
}

func lookupAssignOp(op string) (ast.AssignOp, bool) {
	switch op {
	case "=":
		return ast.AssignOpPlain, true
	case "+=":
		return ast.AssignOpAdd, true
	case "-=":
		return ast.AssignOpSub, true
	case "*=":
		return ast.AssignOpMul, true
	case "/=":
		return ast.AssignOpDiv, true
	case "%=":
		return ast.AssignOpMod, true
	}
	return 0, false
}

func isValidAssignmentTarget(expr ast.Expr) bool {
	_, ok := expr.(*ast.ExprIdent)
	return ok
}

func (p *parser) parsePrimaryExpr() ast.Expr {
	switch v := p.Token.(type) {
	case lexer.TokIdent:
		p.advance() // consume the identifier
		if p.Token.Is("(") {
			return p.parseCallRest(v)
		}
		return ast.NewIdentExpr(v.Raw, v.Span())
	case lexer.TokInt:
		p.advance()
		return ast.NewLiteralExpr(ast.LitInt, v.Raw, v.Span())
	case lexer.TokFloat:
		p.advance()
		return ast.NewLiteralExpr(ast.LitFloat, v.Raw, v.Span())
	case lexer.TokChar:
		p.advance()
		return ast.NewLiteralExpr(ast.LitChar, string(v.Value), v.Span())
	case lexer.TokString:
		p.advance()
		return ast.NewLiteralExpr(ast.LitString, v.Raw, v.Span())
	}

	tok := p.Token
	switch tok.AsString() {
	case "true", "false":
		p.advance()
		return ast.NewLiteralExpr(ast.LitBool, tok.AsString(), tok.Span())
	case "(":
		return p.parseParenOrCast()
	default:
		p.failExpect("expression")
		panic("unreachable")
	}
}

func (p *parser) parseCallRest(callee lexer.TokIdent) ast.Expr {
	p.expect("(")
	var args []ast.Expr
	p.parseCommaSeparatedDelimited(")", func(p *parser) {
		args = append(args, p.parseExpr())
	})
	return ast.NewCallExpr(callee, args, SpanFrom(callee.Span(), p.prevSpan()))
}

// parseParenOrCast disambiguates `(type) expr` from a parenthesized
// expression with a bounded probe: snapshot the position, look for a type
// name followed by `)`, and roll back if the probe fails.
func (p *parser) parseParenOrCast() ast.Expr {
	spanStart := p.span()

	if ty, ok := p.probeCast(); ok {
		operand := p.parseUnaryExpr()
		return ast.NewCastExpr(ty, operand, SpanFrom(spanStart, p.prevSpan()))
	}

	p.expect("(")
	expr := p.parseExpr()
	p.expect(")")
	// parentheses leave no node behind
	return expr
}

func (p *parser) probeCast() (ast.Type, bool) {
	snap := p.save()
	p.advance() // consume `(`
	if !isTypeToken(p.Token) {
		p.restore(snap)
		return ast.Type{}, false
	}
	ty := p.parseType()
	if !p.tryConsume(")") {
		p.restore(snap)
		return ast.Type{}, false
	}
	return ty, true
}
