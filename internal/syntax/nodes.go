package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// There are 2 main classes of nodes: Expressions and Statements. All
// nodes implement the Node interface and carry the byte span of the
// source text they were built from.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Span() Location // byte range of the source text the node covers
	aNode()         // marker method to restrict implementations to this package
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	aExpr()
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	aStmt()
}

// ----------------------------------------------------------------------------
// Base node types

// node is the base struct embedded in all AST nodes.
type node struct {
	loc Location
}

func (n *node) Span() Location { return n.loc }
func (n *node) aNode()         {}

// expr is embedded in all expression nodes.
type expr struct{ node }

func (*expr) aExpr() {}

// stmt is embedded in all statement nodes.
type stmt struct{ node }

func (*stmt) aStmt() {}

// ----------------------------------------------------------------------------
// Module

// Module is the ordered sequence of top-level statements of one source
// buffer. There are no enclosing braces; the span runs from the first
// statement's start to the last statement's end.
type Module struct {
	node
	Stmts []Stmt
}

// ----------------------------------------------------------------------------
// Expressions

// Name represents an identifier.
type Name struct {
	expr
	Value string // identifier string
}

// BasicLit represents a literal value lifted directly from its token.
type BasicLit struct {
	expr
	Kind  Kind   // IntLit, FloatLit, StringLit, CharLit, or BoolLit
	Value string // literal text (string content, "true"/"false", char)
	Int   uint64 // integer payload, valid when Kind == IntLit
}

// Bool returns the payload of a bool literal.
func (l *BasicLit) Bool() bool {
	return l.Kind == BoolLit && l.Value == "true"
}

// BinaryExpr represents an infix operation: X op Y.
type BinaryExpr struct {
	expr
	X  Expr  // left operand
	Op Token // operator token (+ - * /)
	Y  Expr  // right operand
}

// PostfixExpr represents a postfix operation: X op (x++, x--).
type PostfixExpr struct {
	expr
	X  Expr  // operand
	Op Token // operator token (++ --)
}

// PrefixExpr represents a prefix operation: op X.
type PrefixExpr struct {
	expr
	Op Token // operator token
	X  Expr  // operand
}

// CallExpr represents a function call: Fun(Args...).
type CallExpr struct {
	expr
	Fun  Expr   // callee expression
	Args []Expr // ordered argument list
}

// SelectorExpr represents a field access: X.Sel.
type SelectorExpr struct {
	expr
	X   Expr  // receiver expression
	Sel *Name // field name
}

// FuncLit represents a function literal: fun (params...) { body }.
type FuncLit struct {
	expr
	Params []*Name    // ordered parameter list
	Body   *BlockStmt // function body
}

// ----------------------------------------------------------------------------
// Statements

// ExprStmt represents an expression used as a statement, terminated by
// a semicolon. Its span includes the semicolon.
type ExprStmt struct {
	stmt
	X Expr
}

// ReturnStmt represents: return Result;
type ReturnStmt struct {
	stmt
	Result Expr
}

// BranchStmt represents a break or continue statement.
type BranchStmt struct {
	stmt
	Tok Token // Break or Continue keyword token
}

// VarStmt represents a variable declaration: var Name = Value;
type VarStmt struct {
	stmt
	Name  *Name // variable name
	Value Expr  // initializer
}

// BlockStmt represents a brace-enclosed statement sequence. Its span
// covers the brace pair.
type BlockStmt struct {
	stmt
	Stmts []Stmt
}
