package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes a textual representation of the AST to w.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *Module:
		p.printf("Module %s\n", n.loc)
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		p.indent--

	case *VarStmt:
		p.printf("VarStmt %s\n", n.loc)
		p.indent++
		p.printf("Name: %s\n", n.Name.Value)
		p.printf("Value:\n")
		p.indent++
		p.print(n.Value)
		p.indent--
		p.indent--

	case *ExprStmt:
		p.printf("ExprStmt %s\n", n.loc)
		p.indent++
		p.print(n.X)
		p.indent--

	case *ReturnStmt:
		p.printf("ReturnStmt %s\n", n.loc)
		p.indent++
		p.print(n.Result)
		p.indent--

	case *BranchStmt:
		p.printf("BranchStmt %s %s\n", n.loc, n.Tok.Kind)

	case *BlockStmt:
		p.printf("BlockStmt %s\n", n.loc)
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		p.indent--

	case *Name:
		p.printf("Name %s %s\n", n.loc, n.Value)

	case *BasicLit:
		p.printf("BasicLit %s %s %s\n", n.loc, n.Kind, n.Value)

	case *BinaryExpr:
		p.printf("BinaryExpr %s %s\n", n.loc, n.Op.Kind)
		p.indent++
		p.print(n.X)
		p.print(n.Y)
		p.indent--

	case *PostfixExpr:
		p.printf("PostfixExpr %s %s\n", n.loc, n.Op.Kind)
		p.indent++
		p.print(n.X)
		p.indent--

	case *PrefixExpr:
		p.printf("PrefixExpr %s %s\n", n.loc, n.Op.Kind)
		p.indent++
		p.print(n.X)
		p.indent--

	case *CallExpr:
		p.printf("CallExpr %s\n", n.loc)
		p.indent++
		p.printf("Fun:\n")
		p.indent++
		p.print(n.Fun)
		p.indent--
		if len(n.Args) > 0 {
			p.printf("Args:\n")
			p.indent++
			for _, a := range n.Args {
				p.print(a)
			}
			p.indent--
		}
		p.indent--

	case *SelectorExpr:
		p.printf("SelectorExpr %s\n", n.loc)
		p.indent++
		p.print(n.X)
		p.printf("Sel: %s\n", n.Sel.Value)
		p.indent--

	case *FuncLit:
		p.printf("FuncLit %s\n", n.loc)
		p.indent++
		if len(n.Params) > 0 {
			names := make([]string, len(n.Params))
			for i, param := range n.Params {
				names[i] = param.Value
			}
			p.printf("Params: %s\n", strings.Join(names, ", "))
		}
		p.print(n.Body)
		p.indent--
	}
}
