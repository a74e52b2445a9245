package ast

type BinaryOp int

const (
	BinaryOpInvalid BinaryOp = iota
	// BinaryOpLogicalOr is `||`
	BinaryOpLogicalOr
	// BinaryOpLogicalAnd is `&&`
	BinaryOpLogicalAnd

	// BinaryOpEqual is `==`
	BinaryOpEqual
	// BinaryOpNotEqual is `!=`
	BinaryOpNotEqual

	// BinaryOpLess is `<`
	BinaryOpLess
	// BinaryOpGreater is `>`
	BinaryOpGreater
	// BinaryOpLessEqual is `<=`
	BinaryOpLessEqual
	// BinaryOpGreaterEqual is `>=`
	BinaryOpGreaterEqual

	// BinaryOpAdd is `+`
	BinaryOpAdd
	// BinaryOpSub is `-`
	BinaryOpSub
	// BinaryOpMul is `*`
	BinaryOpMul
	// BinaryOpDiv is `/`
	BinaryOpDiv
	// BinaryOpMod is `%`
	BinaryOpMod
)

var binaryOpNames = map[BinaryOp]string{
	BinaryOpLogicalOr:    "||",
	BinaryOpLogicalAnd:   "&&",
	BinaryOpEqual:        "==",
	BinaryOpNotEqual:     "!=",
	BinaryOpLess:         "<",
	BinaryOpGreater:      ">",
	BinaryOpLessEqual:    "<=",
	BinaryOpGreaterEqual: ">=",
	BinaryOpAdd:          "+",
	BinaryOpSub:          "-",
	BinaryOpMul:          "*",
	BinaryOpDiv:          "/",
	BinaryOpMod:          "%",
}

func (op BinaryOp) String() string {
	return binaryOpNames[op]
}
