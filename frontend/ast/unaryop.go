package ast

type UnaryOp int

const (
	_ UnaryOp = iota
	// UnaryOpNot is `!a`
	UnaryOpNot
	// UnaryOpPlus is `+a`
	UnaryOpPlus
	// UnaryOpNegate is `-a`
	UnaryOpNegate
	// UnaryOpIncrement is `++a` / `a++`
	UnaryOpIncrement
	// UnaryOpDecrement is `--a` / `a--`
	UnaryOpDecrement
)

var unaryOpNames = map[UnaryOp]string{
	UnaryOpNot:       "!",
	UnaryOpPlus:      "+",
	UnaryOpNegate:    "-",
	UnaryOpIncrement: "++",
	UnaryOpDecrement: "--",
}

func (op UnaryOp) String() string {
	return unaryOpNames[op]
}
