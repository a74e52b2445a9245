package ast

// AssignOp is `=` or one of the compound assignment operators.
type AssignOp int

const (
	_ AssignOp = iota
	// AssignOpPlain is `=`
	AssignOpPlain
	// AssignOpAdd is `+=`
	AssignOpAdd
	// AssignOpSub is `-=`
	AssignOpSub
	// AssignOpMul is `*=`
	AssignOpMul
	// AssignOpDiv is `/=`
	AssignOpDiv
	// AssignOpMod is `%=`
	AssignOpMod
)

var assignOpNames = map[AssignOp]string{
	AssignOpPlain: "=",
	AssignOpAdd:   "+=",
	AssignOpSub:   "-=",
	AssignOpMul:   "*=",
	AssignOpDiv:   "/=",
	AssignOpMod:   "%=",
}

func (op AssignOp) String() string {
	return assignOpNames[op]
}
