package parser

import "github.com/minic-lang/minic/frontend/ast"

func (p *parser) parseUnaryExpr() ast.Expr {
	spanStart := p.span()
	var op ast.UnaryOp
	switch p.Token.AsString() {
	case "!":
		op = ast.UnaryOpNot
	case "+":
		op = ast.UnaryOpPlus
	case "-":
		op = ast.UnaryOpNegate
	case "++":
		op = ast.UnaryOpIncrement
	case "--":
		op = ast.UnaryOpDecrement
	default:
		return p.parsePostfixExpr(p.parsePrimaryExpr())
	}
	p.advance()
	operand := p.parseUnaryExpr()
	return ast.NewUnaryExpr(op, operand, false, SpanFrom(spanStart, p.prevSpan()))
}

// parsePostfixExpr applies any trailing `++`/`--` to a primary expression.
func (p *parser) parsePostfixExpr(expr ast.Expr) ast.Expr {
	for {
		var op ast.UnaryOp
		switch p.Token.AsString() {
		case "++":
			op = ast.UnaryOpIncrement
		case "--":
			op = ast.UnaryOpDecrement
		default:
			return expr
		}
		p.advance()
		expr = ast.NewUnaryExpr(op, expr, true, SpanFrom(expr.Span(), p.prevSpan()))
	}
}
