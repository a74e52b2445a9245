package ast

import "github.com/minic-lang/minic/frontend/common"

// Block is a brace-delimited statement sequence. A block is itself a
// statement, so blocks nest arbitrarily.
type Block struct {
	Stmts []Stmt
	span  common.Span
}

func NewBlock(stmts []Stmt, span common.Span) Block {
	return Block{Stmts: stmts, span: span}
}

func (b *Block) isStmt() {}

func (b *Block) Span() common.Span {
	return b.span
}
