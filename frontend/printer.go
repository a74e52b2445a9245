package frontend

import (
	"fmt"
	"strings"

	"github.com/minic-lang/minic/frontend/ast"
)

// Print renders a translation unit back to canonical source text. The
// output re-parses to an equivalent tree: operands that are themselves
// binary or assignment expressions are parenthesized, so the rendered
// precedence matches the tree regardless of how the original was written.
func Print(tu *ast.TranslationUnit) string {
	p := &printer{}
	for i, decl := range tu.Decls {
		if i > 0 {
			p.line()
		}
		p.printDecl(decl)
	}
	return p.sb.String()
}

type printer struct {
	sb     strings.Builder
	indent int
}

func (p *printer) write(format string, args ...any) {
	fmt.Fprintf(&p.sb, format, args...)
}

func (p *printer) line() {
	p.sb.WriteByte('\n')
}

func (p *printer) pad() {
	p.sb.WriteString(strings.Repeat("    ", p.indent))
}

func (p *printer) printDecl(decl ast.Decl) {
	switch decl := decl.(type) {
	case *ast.VarDecl:
		p.pad()
		p.write("%s;", p.varDecl(decl))
		p.line()
	case *ast.FuncDecl:
		p.printFuncDecl(decl)
	default:
		panic("unreachable")
	}
}

func (p *printer) varDecl(decl *ast.VarDecl) string {
	var sb strings.Builder
	if decl.Const {
		sb.WriteString("const ")
	}
	sb.WriteString(decl.Type.String())
	sb.WriteByte(' ')
	sb.WriteString(decl.Name.Raw)
	if decl.Init != nil {
		sb.WriteString(" = ")
		sb.WriteString(p.expr(decl.Init))
	}
	return sb.String()
}

func (p *printer) printFuncDecl(decl *ast.FuncDecl) {
	p.pad()
	params := make([]string, 0, len(decl.Params))
	for _, param := range decl.Params {
		params = append(params, fmt.Sprintf("%s %s", param.Type.String(), param.Name.Raw))
	}
	p.write("%s %s(%s) ", decl.ReturnType.String(), decl.Name.Raw, strings.Join(params, ", "))
	p.printBlock(&decl.Body)
	p.line()
}

func (p *printer) printBlock(block *ast.Block) {
	p.write("{")
	p.line()
	p.indent++
	for _, stmt := range block.Stmts {
		p.printStmt(stmt)
	}
	p.indent--
	p.pad()
	p.write("}")
}

// printStmt renders one statement on its own line(s), indented.
func (p *printer) printStmt(stmt ast.Stmt) {
	switch stmt := stmt.(type) {
	case *ast.Block:
		p.pad()
		p.printBlock(stmt)
		p.line()
	case *ast.StmtExpr:
		p.pad()
		p.write("%s;", p.expr(stmt.Expr))
		p.line()
	case *ast.StmtReturn:
		p.pad()
		if stmt.Expr != nil {
			p.write("return %s;", p.expr(stmt.Expr))
		} else {
			p.write("return;")
		}
		p.line()
	case *ast.StmtIf:
		p.pad()
		p.write("if (%s)", p.expr(stmt.Cond))
		p.printBody(stmt.Then)
		if stmt.Else != nil {
			p.pad()
			p.write("else")
			p.printBody(stmt.Else)
		}
	case *ast.StmtWhile:
		p.pad()
		p.write("while (%s)", p.expr(stmt.Cond))
		p.printBody(stmt.Body)
	case *ast.StmtDoWhile:
		p.pad()
		p.write("do")
		p.printBody(stmt.Body)
		p.pad()
		p.write("while (%s);", p.expr(stmt.Cond))
		p.line()
	case *ast.StmtFor:
		p.pad()
		p.write("for (%s; %s; %s)", p.forInit(stmt.Init), p.optExpr(stmt.Cond), p.optExpr(stmt.Post))
		p.printBody(stmt.Body)
	case *ast.StmtDecl:
		p.pad()
		p.write("%s;", p.declStmt(stmt))
		p.line()
	default:
		panic("unreachable")
	}
}

// printBody places a statement after a control header: a block stays on
// the same line, anything else goes on its own indented line.
func (p *printer) printBody(stmt ast.Stmt) {
	if block, ok := stmt.(*ast.Block); ok {
		p.write(" ")
		p.printBlock(block)
		p.line()
		return
	}
	p.line()
	p.indent++
	p.printStmt(stmt)
	p.indent--
}

// forInit renders a for-loop init slot without its trailing semicolon.
func (p *printer) forInit(stmt ast.Stmt) string {
	switch stmt := stmt.(type) {
	case nil:
		return ""
	case *ast.StmtExpr:
		return p.expr(stmt.Expr)
	case *ast.StmtDecl:
		return p.declStmt(stmt)
	default:
		panic("unreachable")
	}
}

func (p *printer) optExpr(expr ast.Expr) string {
	if expr == nil {
		return ""
	}
	return p.expr(expr)
}

// declStmt joins the declarators of one declaration back into a comma list.
func (p *printer) declStmt(stmt *ast.StmtDecl) string {
	first := stmt.Decls[0]
	var sb strings.Builder
	if first.Const {
		sb.WriteString("const ")
	}
	sb.WriteString(first.Type.String())
	sb.WriteByte(' ')
	for i, decl := range stmt.Decls {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(decl.Name.Raw)
		if decl.Init != nil {
			sb.WriteString(" = ")
			sb.WriteString(p.expr(decl.Init))
		}
	}
	return sb.String()
}

func (p *printer) expr(expr ast.Expr) string {
	switch expr := expr.(type) {
	case *ast.ExprLiteral:
		return p.literal(expr)
	case *ast.ExprIdent:
		return expr.Name
	case *ast.ExprBinary:
		return fmt.Sprintf("%s %s %s", p.operand(expr.Left), expr.Op.String(), p.operand(expr.Right))
	case *ast.ExprUnary:
		if expr.Postfix {
			return fmt.Sprintf("%s%s", p.operand(expr.Operand), expr.Op.String())
		}
		return fmt.Sprintf("%s%s", expr.Op.String(), p.operand(expr.Operand))
	case *ast.ExprCall:
		args := make([]string, 0, len(expr.Args))
		for _, arg := range expr.Args {
			args = append(args, p.expr(arg))
		}
		return fmt.Sprintf("%s(%s)", expr.Callee.Raw, strings.Join(args, ", "))
	case *ast.ExprAssign:
		return fmt.Sprintf("%s %s %s", p.expr(expr.Target), expr.Op.String(), p.expr(expr.Value))
	case *ast.ExprCast:
		return fmt.Sprintf("(%s)%s", expr.Type.String(), p.operand(expr.Operand))
	default:
		panic("unreachable")
	}
}

// operand renders a sub-expression, parenthesizing anything that does not
// bind at least as tightly as a unary expression.
func (p *printer) operand(expr ast.Expr) string {
	switch expr.(type) {
	case *ast.ExprLiteral, *ast.ExprIdent, *ast.ExprCall, *ast.ExprCast:
		return p.expr(expr)
	default:
		return fmt.Sprintf("(%s)", p.expr(expr))
	}
}

func (p *printer) literal(lit *ast.ExprLiteral) string {
	switch lit.Kind {
	case ast.LitChar:
		return fmt.Sprintf("'%s'", escapeText(lit.Raw, '\''))
	case ast.LitString:
		return fmt.Sprintf(`"%s"`, escapeText(lit.Raw, '"'))
	default:
		return lit.Raw
	}
}

// escapeText re-escapes literal content for rendering inside quote.
func escapeText(s string, quote rune) string {
	var sb strings.Builder
	for _, c := range s {
		switch c {
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		case 0:
			sb.WriteString(`\0`)
		case '\\':
			sb.WriteString(`\\`)
		case quote:
			sb.WriteByte('\\')
			sb.WriteRune(quote)
		default:
			sb.WriteRune(c)
		}
	}
	return sb.String()
}
