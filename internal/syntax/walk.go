package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses an AST in depth-first order.
// If visitor returns false, children are not visited.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *Module:
		for _, s := range n.Stmts {
			Walk(s, v)
		}

	case *VarStmt:
		Walk(n.Name, v)
		Walk(n.Value, v)

	case *ExprStmt:
		Walk(n.X, v)

	case *ReturnStmt:
		Walk(n.Result, v)

	case *BlockStmt:
		for _, s := range n.Stmts {
			Walk(s, v)
		}

	case *BinaryExpr:
		Walk(n.X, v)
		Walk(n.Y, v)

	case *PostfixExpr:
		Walk(n.X, v)

	case *PrefixExpr:
		Walk(n.X, v)

	case *CallExpr:
		Walk(n.Fun, v)
		for _, a := range n.Args {
			Walk(a, v)
		}

	case *SelectorExpr:
		Walk(n.X, v)
		Walk(n.Sel, v)

	case *FuncLit:
		for _, param := range n.Params {
			Walk(param, v)
		}
		Walk(n.Body, v)

		// Leaf nodes: Name, BasicLit, BranchStmt
		// No children to visit
	}
}

// Inspect traverses an AST and calls f for each node.
// Convenience wrapper around Walk.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, Visitor(f))
}
