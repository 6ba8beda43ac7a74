package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the AST to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(node))
}

func spanJSON(l Location) map[string]interface{} {
	return map[string]interface{}{"start": l.Start, "end": l.End}
}

func toJSON(node Node) interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *Module:
		return map[string]interface{}{
			"type":  "Module",
			"span":  spanJSON(n.loc),
			"stmts": stmtsJSON(n.Stmts),
		}

	case *VarStmt:
		return map[string]interface{}{
			"type":  "VarStmt",
			"span":  spanJSON(n.loc),
			"name":  n.Name.Value,
			"value": toJSON(n.Value),
		}

	case *ExprStmt:
		return map[string]interface{}{
			"type": "ExprStmt",
			"span": spanJSON(n.loc),
			"expr": toJSON(n.X),
		}

	case *ReturnStmt:
		return map[string]interface{}{
			"type":   "ReturnStmt",
			"span":   spanJSON(n.loc),
			"result": toJSON(n.Result),
		}

	case *BranchStmt:
		return map[string]interface{}{
			"type": "BranchStmt",
			"span": spanJSON(n.loc),
			"tok":  n.Tok.Kind.String(),
		}

	case *BlockStmt:
		return map[string]interface{}{
			"type":  "BlockStmt",
			"span":  spanJSON(n.loc),
			"stmts": stmtsJSON(n.Stmts),
		}

	case *Name:
		return map[string]interface{}{
			"type":  "Name",
			"span":  spanJSON(n.loc),
			"value": n.Value,
		}

	case *BasicLit:
		m := map[string]interface{}{
			"type":  "BasicLit",
			"span":  spanJSON(n.loc),
			"kind":  n.Kind.String(),
			"value": n.Value,
		}
		if n.Kind == IntLit {
			m["value"] = n.Int
		}
		return m

	case *BinaryExpr:
		return map[string]interface{}{
			"type":  "BinaryExpr",
			"span":  spanJSON(n.loc),
			"op":    n.Op.Kind.String(),
			"left":  toJSON(n.X),
			"right": toJSON(n.Y),
		}

	case *PostfixExpr:
		return map[string]interface{}{
			"type": "PostfixExpr",
			"span": spanJSON(n.loc),
			"op":   n.Op.Kind.String(),
			"left": toJSON(n.X),
		}

	case *PrefixExpr:
		return map[string]interface{}{
			"type":  "PrefixExpr",
			"span":  spanJSON(n.loc),
			"op":    n.Op.Kind.String(),
			"right": toJSON(n.X),
		}

	case *CallExpr:
		return map[string]interface{}{
			"type": "CallExpr",
			"span": spanJSON(n.loc),
			"fun":  toJSON(n.Fun),
			"args": exprsJSON(n.Args),
		}

	case *SelectorExpr:
		return map[string]interface{}{
			"type": "SelectorExpr",
			"span": spanJSON(n.loc),
			"left": toJSON(n.X),
			"sel":  n.Sel.Value,
		}

	case *FuncLit:
		params := make([]interface{}, len(n.Params))
		for i, param := range n.Params {
			params[i] = param.Value
		}
		return map[string]interface{}{
			"type":   "FuncLit",
			"span":   spanJSON(n.loc),
			"params": params,
			"body":   toJSON(n.Body),
		}
	}

	return nil
}

func stmtsJSON(list []Stmt) []interface{} {
	out := make([]interface{}, len(list))
	for i, s := range list {
		out[i] = toJSON(s)
	}
	return out
}

func exprsJSON(list []Expr) []interface{} {
	out := make([]interface{}, len(list))
	for i, x := range list {
		out[i] = toJSON(x)
	}
	return out
}
