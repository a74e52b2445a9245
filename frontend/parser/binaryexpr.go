package parser

import (
	"github.com/minic-lang/minic/frontend/ast"
)

type associativity uint8

const (
	assocLeft associativity = iota
	assocRight
)

func getBinaryOperatorPrecedence(op string) (int, associativity, ast.BinaryOp, bool) {
	switch op {
	// Logical
	case "||":
		return 1, assocLeft, ast.BinaryOpLogicalOr, true
	case "&&":
		return 2, assocLeft, ast.BinaryOpLogicalAnd, true

	// Equality
	case "==":
		return 3, assocLeft, ast.BinaryOpEqual, true
	case "!=":
		return 3, assocLeft, ast.BinaryOpNotEqual, true

	// Relational
	case "<":
		return 4, assocLeft, ast.BinaryOpLess, true
	case ">":
		return 4, assocLeft, ast.BinaryOpGreater, true
	case "<=":
		return 4, assocLeft, ast.BinaryOpLessEqual, true
	case ">=":
		return 4, assocLeft, ast.BinaryOpGreaterEqual, true

	// Add / sub
	case "+":
		return 5, assocLeft, ast.BinaryOpAdd, true
	case "-":
		return 5, assocLeft, ast.BinaryOpSub, true

	// Mul / div / mod
	case "*":
		return 6, assocLeft, ast.BinaryOpMul, true
	case "/":
		return 6, assocLeft, ast.BinaryOpDiv, true
	case "%":
		return 6, assocLeft, ast.BinaryOpMod, true
	}

	return 0, assocLeft, 0, false
}

// parseBinaryExpr is the precedence climber: one function for every binary
// precedence level instead of one grammar rule per level.
func (p *parser) parseBinaryExpr(minPrec int) ast.Expr {
	left := p.parseUnaryExpr()

	for {
		opStr := p.Token.AsString()

		prec, assoc, binOp, ok := getBinaryOperatorPrecedence(opStr)
		if !ok || prec < minPrec {
			// Not an operator we care about, or lower precedence -> done.
			break
		}

		p.advance() // consume the operator

		nextMinPrec := prec
		if assoc == assocLeft {
			nextMinPrec = prec + 1
		}
		right := p.parseBinaryExpr(nextMinPrec)

		span := SpanFrom(left.Span(), right.Span())
		left = ast.NewBinaryExpr(left, binOp, right, span)
	}

	return left
}
