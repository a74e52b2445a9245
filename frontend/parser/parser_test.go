package parser

import (
	"testing"

	"github.com/minic-lang/minic/frontend/ast"
	"github.com/minic-lang/minic/frontend/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, code string) *ast.TranslationUnit {
	t.Helper()
	tokens, lexErr := lexer.Lex("test.mc", code)
	require.Nil(t, lexErr)
	tu, synErr := Parse(tokens)
	require.Nil(t, synErr)
	return tu
}

func parseFail(t *testing.T, code string) *SyntaxError {
	t.Helper()
	tokens, lexErr := lexer.Lex("test.mc", code)
	require.Nil(t, lexErr)
	tu, synErr := Parse(tokens)
	require.Nil(t, tu)
	require.NotNil(t, synErr)
	return synErr
}

// parseExprIn parses src as the return expression of a wrapper function.
func parseExprIn(t *testing.T, src string) ast.Expr {
	t.Helper()
	tu := parse(t, "int f() { return "+src+"; }")
	fn := tu.Decls[0].(*ast.FuncDecl)
	ret := fn.Body.Stmts[0].(*ast.StmtReturn)
	require.NotNil(t, ret.Expr)
	return ret.Expr
}

func TestTopLevelVarDecls(t *testing.T) {
	tu := parse(t, "int a;\nconst float b = 1.5;\nint c, d = 2;")
	require.Len(t, tu.Decls, 4)

	a := tu.Decls[0].(*ast.VarDecl)
	assert.Equal(t, "a", a.Name.Raw)
	assert.Equal(t, "int", a.Type.String())
	assert.False(t, a.Const)
	assert.Nil(t, a.Init)

	b := tu.Decls[1].(*ast.VarDecl)
	assert.Equal(t, "b", b.Name.Raw)
	assert.True(t, b.Const)
	require.NotNil(t, b.Init)
	lit := b.Init.(*ast.ExprLiteral)
	assert.Equal(t, ast.LitFloat, lit.Kind)
	assert.Equal(t, "1.5", lit.Raw)

	c := tu.Decls[2].(*ast.VarDecl)
	assert.Equal(t, "c", c.Name.Raw)
	assert.Nil(t, c.Init)

	d := tu.Decls[3].(*ast.VarDecl)
	assert.Equal(t, "d", d.Name.Raw)
	assert.NotNil(t, d.Init)
}

func TestFuncDecl(t *testing.T) {
	tu := parse(t, "float add(int a, float b) { return a + b; }")
	require.Len(t, tu.Decls, 1)

	fn := tu.Decls[0].(*ast.FuncDecl)
	assert.Equal(t, "add", fn.Name.Raw)
	assert.Equal(t, "float", fn.ReturnType.String())
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Name.Raw)
	assert.Equal(t, "int", fn.Params[0].Type.String())
	assert.Equal(t, "b", fn.Params[1].Name.Raw)
	assert.Equal(t, "float", fn.Params[1].Type.String())
	assert.Len(t, fn.Body.Stmts, 1)
}

func TestVoidFuncNoParams(t *testing.T) {
	tu := parse(t, "void f() { return; }")
	fn := tu.Decls[0].(*ast.FuncDecl)
	assert.True(t, fn.ReturnType.IsVoid())
	assert.Empty(t, fn.Params)
	ret := fn.Body.Stmts[0].(*ast.StmtReturn)
	assert.Nil(t, ret.Expr)
}

func TestPrecedence(t *testing.T) {
	expr := parseExprIn(t, "1 + 2 * 3")
	add := expr.(*ast.ExprBinary)
	assert.Equal(t, ast.BinaryOpAdd, add.Op)
	mul := add.Right.(*ast.ExprBinary)
	assert.Equal(t, ast.BinaryOpMul, mul.Op)

	expr = parseExprIn(t, "a || b && c")
	or := expr.(*ast.ExprBinary)
	assert.Equal(t, ast.BinaryOpLogicalOr, or.Op)
	and := or.Right.(*ast.ExprBinary)
	assert.Equal(t, ast.BinaryOpLogicalAnd, and.Op)

	expr = parseExprIn(t, "a < b == c > d")
	eq := expr.(*ast.ExprBinary)
	assert.Equal(t, ast.BinaryOpEqual, eq.Op)
	assert.Equal(t, ast.BinaryOpLess, eq.Left.(*ast.ExprBinary).Op)
	assert.Equal(t, ast.BinaryOpGreater, eq.Right.(*ast.ExprBinary).Op)
}

func TestLeftAssociativity(t *testing.T) {
	expr := parseExprIn(t, "1 - 2 - 3")
	outer := expr.(*ast.ExprBinary)
	assert.Equal(t, ast.BinaryOpSub, outer.Op)
	inner := outer.Left.(*ast.ExprBinary)
	assert.Equal(t, ast.BinaryOpSub, inner.Op)
	assert.Equal(t, "3", outer.Right.(*ast.ExprLiteral).Raw)
}

func TestParensOverridePrecedence(t *testing.T) {
	expr := parseExprIn(t, "(1 + 2) * 3")
	mul := expr.(*ast.ExprBinary)
	assert.Equal(t, ast.BinaryOpMul, mul.Op)
	add := mul.Left.(*ast.ExprBinary)
	assert.Equal(t, ast.BinaryOpAdd, add.Op)
}

func TestUnaryAndPostfix(t *testing.T) {
	expr := parseExprIn(t, "-x")
	neg := expr.(*ast.ExprUnary)
	assert.Equal(t, ast.UnaryOpNegate, neg.Op)
	assert.False(t, neg.Postfix)

	expr = parseExprIn(t, "!!a")
	outer := expr.(*ast.ExprUnary)
	assert.Equal(t, ast.UnaryOpNot, outer.Op)
	_, ok := outer.Operand.(*ast.ExprUnary)
	assert.True(t, ok)

	expr = parseExprIn(t, "x++")
	inc := expr.(*ast.ExprUnary)
	assert.Equal(t, ast.UnaryOpIncrement, inc.Op)
	assert.True(t, inc.Postfix)

	// Prefix binds after postfix: -x++ negates the incremented value.
	expr = parseExprIn(t, "-x++")
	neg = expr.(*ast.ExprUnary)
	assert.Equal(t, ast.UnaryOpNegate, neg.Op)
	post := neg.Operand.(*ast.ExprUnary)
	assert.True(t, post.Postfix)
}

func TestCast(t *testing.T) {
	expr := parseExprIn(t, "(int)x")
	cast := expr.(*ast.ExprCast)
	assert.Equal(t, "int", cast.Type.String())
	_, ok := cast.Operand.(*ast.ExprIdent)
	assert.True(t, ok)

	// (x) is a parenthesized expression, not a cast; parens leave no node.
	expr = parseExprIn(t, "(x)")
	_, ok = expr.(*ast.ExprIdent)
	assert.True(t, ok)

	// The cast operand is a unary expression: (float)x + y adds y after casting.
	expr = parseExprIn(t, "(float)x + y")
	add := expr.(*ast.ExprBinary)
	assert.Equal(t, ast.BinaryOpAdd, add.Op)
	_, ok = add.Left.(*ast.ExprCast)
	assert.True(t, ok)
}

func TestCall(t *testing.T) {
	expr := parseExprIn(t, "f(1, g(), x + 2)")
	call := expr.(*ast.ExprCall)
	assert.Equal(t, "f", call.Callee.Raw)
	require.Len(t, call.Args, 3)
	_, ok := call.Args[1].(*ast.ExprCall)
	assert.True(t, ok)
	_, ok = call.Args[2].(*ast.ExprBinary)
	assert.True(t, ok)
}

func TestAssignment(t *testing.T) {
	tu := parse(t, "int f() { a = b = 1; a += 2; }")
	fn := tu.Decls[0].(*ast.FuncDecl)

	chain := fn.Body.Stmts[0].(*ast.StmtExpr).Expr.(*ast.ExprAssign)
	assert.Equal(t, ast.AssignOpPlain, chain.Op)
	inner := chain.Value.(*ast.ExprAssign)
	assert.Equal(t, "b", inner.Target.(*ast.ExprIdent).Name)

	compound := fn.Body.Stmts[1].(*ast.StmtExpr).Expr.(*ast.ExprAssign)
	assert.Equal(t, ast.AssignOpAdd, compound.Op)
}

func TestInvalidAssignmentTarget(t *testing.T) {
	err := parseFail(t, "int f() { 1 = 2; }")
	assert.Equal(t, "invalid left-hand side of assignment", err.Msg)

	err = parseFail(t, "int f() { a + b = 2; }")
	assert.Equal(t, "invalid left-hand side of assignment", err.Msg)
}

func TestControlFlow(t *testing.T) {
	tu := parse(t, `
int f() {
    if (a) b = 1; else { c = 2; }
    while (x < 10) x = x + 1;
    do x--; while (x > 0);
    for (int i = 0; i < 3; i++) f();
    for (;;) g();
}`)
	fn := tu.Decls[0].(*ast.FuncDecl)
	require.Len(t, fn.Body.Stmts, 5)

	ifStmt := fn.Body.Stmts[0].(*ast.StmtIf)
	_, ok := ifStmt.Then.(*ast.StmtExpr)
	assert.True(t, ok)
	_, ok = ifStmt.Else.(*ast.Block)
	assert.True(t, ok)

	_, ok = fn.Body.Stmts[1].(*ast.StmtWhile)
	assert.True(t, ok)

	_, ok = fn.Body.Stmts[2].(*ast.StmtDoWhile)
	assert.True(t, ok)

	forStmt := fn.Body.Stmts[3].(*ast.StmtFor)
	_, ok = forStmt.Init.(*ast.StmtDecl)
	assert.True(t, ok)
	assert.NotNil(t, forStmt.Cond)
	assert.NotNil(t, forStmt.Post)

	empty := fn.Body.Stmts[4].(*ast.StmtFor)
	assert.Nil(t, empty.Init)
	assert.Nil(t, empty.Cond)
	assert.Nil(t, empty.Post)
}

func TestLocalDeclStmt(t *testing.T) {
	tu := parse(t, "int f() { const int a = 1, b = 2; }")
	fn := tu.Decls[0].(*ast.FuncDecl)
	decl := fn.Body.Stmts[0].(*ast.StmtDecl)
	require.Len(t, decl.Decls, 2)
	assert.True(t, decl.Decls[0].Const)
	assert.True(t, decl.Decls[1].Const)
	assert.Equal(t, "a", decl.Decls[0].Name.Raw)
	assert.Equal(t, "b", decl.Decls[1].Name.Raw)
}

func TestNestedFunctionRejected(t *testing.T) {
	err := parseFail(t, "int f() { int g() { return 1; } }")
	assert.Equal(t, "function declarations are only allowed at the top level", err.Msg)
}

func TestConstFunctionRejected(t *testing.T) {
	err := parseFail(t, "const int f() { return 1; }")
	assert.Equal(t, "`const` cannot qualify a function declaration", err.Msg)
}

func TestMissingSemicolon(t *testing.T) {
	err := parseFail(t, "int f() { return 1 }")
	assert.Equal(t, ";", err.Expected)
	assert.Equal(t, "}", err.Found)
}

func TestUnexpectedTokenMessage(t *testing.T) {
	err := parseFail(t, "int f() { return +; }")
	assert.Equal(t, "expression", err.Expected)
	assert.Equal(t, ";", err.Found)
}

func TestDanglingElse(t *testing.T) {
	// else binds to the nearest if
	tu := parse(t, "int f() { if (a) if (b) x = 1; else x = 2; }")
	fn := tu.Decls[0].(*ast.FuncDecl)
	outer := fn.Body.Stmts[0].(*ast.StmtIf)
	assert.Nil(t, outer.Else)
	inner := outer.Then.(*ast.StmtIf)
	assert.NotNil(t, inner.Else)
}
