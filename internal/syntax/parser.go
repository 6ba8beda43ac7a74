package syntax

import "fmt"

// ParseError describes a failed consumption point: the construct the
// parser expected and the token it found instead. Got is nil when the
// input ended where a token was required.
type ParseError struct {
	Expected string
	Got      *Token
}

func (e *ParseError) Error() string {
	if e.Got == nil {
		return fmt.Sprintf("expected %s, got end of input", e.Expected)
	}
	return fmt.Sprintf("expected %s, got %s", e.Expected, e.Got)
}

// Parser builds a Module from a token stream with exactly one token of
// lookahead. It owns its Lexer exclusively and consumes the stream
// left to right exactly once; there is no backtracking and no error
// recovery. The first failed consumption aborts the parse.
type Parser struct {
	lexer *Lexer
	tok   Token // one token of lookahead
}

// NewParser returns a Parser over src.
func NewParser(src string) *Parser {
	p := &Parser{lexer: NewLexer(src)}
	p.next() // prime the lookahead
	return p
}

// Parse parses src as a module. Shorthand for NewParser(src).Parse().
func Parse(src string) (*Module, error) {
	return NewParser(src).Parse()
}

// ----------------------------------------------------------------------------
// Token navigation

// next advances the lookahead by one token.
func (p *Parser) next() {
	p.tok = p.lexer.Next()
}

// take consumes and returns the lookahead token.
func (p *Parser) take() Token {
	tok := p.tok
	p.next()
	return tok
}

// consume takes the next token and fails unless its kind matches.
func (p *Parser) consume(kind Kind) (Token, error) {
	if p.tok.Kind == EOF {
		return Token{}, &ParseError{Expected: kind.String()}
	}
	if p.tok.Kind != kind {
		got := p.tok
		return Token{}, &ParseError{Expected: kind.String(), Got: &got}
	}
	return p.take(), nil
}

// consumeIdent takes the next token, which must be an identifier, and
// returns it as a Name node.
func (p *Parser) consumeIdent() (*Name, error) {
	if p.tok.Kind == EOF {
		return nil, &ParseError{Expected: "identifier"}
	}
	if p.tok.Kind != Ident {
		got := p.tok
		return nil, &ParseError{Expected: "identifier", Got: &got}
	}
	tok := p.take()
	n := &Name{Value: tok.Lit}
	n.loc = tok.Loc
	return n, nil
}

// ----------------------------------------------------------------------------
// Module

// Parse parses the whole token stream as a module.
func (p *Parser) Parse() (*Module, error) {
	m := &Module{}
	for p.tok.Kind != EOF {
		s, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		m.Stmts = append(m.Stmts, s)
	}
	if len(m.Stmts) > 0 {
		m.loc = span(m.Stmts[0].Span(), m.Stmts[len(m.Stmts)-1].Span())
	}
	return m, nil
}

// ----------------------------------------------------------------------------
// Statements

// parseStatement dispatches on the leading token. Every statement's
// span runs from its leading token through the consumed semicolon.
func (p *Parser) parseStatement() (Stmt, error) {
	switch p.tok.Kind {
	case Break, Continue:
		s := &BranchStmt{Tok: p.take()}
		semi, err := p.consume(Semi)
		if err != nil {
			return nil, err
		}
		s.loc = Location{Start: s.Tok.Loc.Start, End: semi.Loc.End}
		return s, nil

	case Return:
		start := p.take().Loc.Start
		x, err := p.parseExpr(PrecLowest)
		if err != nil {
			return nil, err
		}
		semi, err := p.consume(Semi)
		if err != nil {
			return nil, err
		}
		s := &ReturnStmt{Result: x}
		s.loc = Location{Start: start, End: semi.Loc.End}
		return s, nil

	case Var:
		start := p.take().Loc.Start
		name, err := p.consumeIdent()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(Assign); err != nil {
			return nil, err
		}
		x, err := p.parseExpr(PrecLowest)
		if err != nil {
			return nil, err
		}
		semi, err := p.consume(Semi)
		if err != nil {
			return nil, err
		}
		s := &VarStmt{Name: name, Value: x}
		s.loc = Location{Start: start, End: semi.Loc.End}
		return s, nil

	default:
		x, err := p.parseExpr(PrecLowest)
		if err != nil {
			return nil, err
		}
		semi, err := p.consume(Semi)
		if err != nil {
			return nil, err
		}
		s := &ExprStmt{X: x}
		s.loc = Location{Start: x.Span().Start, End: semi.Loc.End}
		return s, nil
	}
}

// parseBlock parses { stmts... }. The block's span covers the brace
// pair.
func (p *Parser) parseBlock() (*BlockStmt, error) {
	open, err := p.consume(Lbrace)
	if err != nil {
		return nil, err
	}
	b := &BlockStmt{}
	for p.tok.Kind != Rbrace && p.tok.Kind != EOF {
		s, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		b.Stmts = append(b.Stmts, s)
	}
	rbrace, err := p.consume(Rbrace)
	if err != nil {
		return nil, err
	}
	b.loc = Location{Start: open.Loc.Start, End: rbrace.Loc.End}
	return b, nil
}

// ----------------------------------------------------------------------------
// Expressions

// parseExpr parses an expression by precedence climbing: it parses a
// primary expression, then folds in infix and postfix operators while
// the lookahead's precedence is strictly greater than min. Binary
// operators recurse at their own precedence for the right operand,
// which makes equal-precedence chains fold left-associatively.
func (p *Parser) parseExpr(min int) (Expr, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

loop:
	for min < p.tok.Kind.Precedence() {
		op := p.take()
		switch op.Kind {
		case Plus, Minus, Star, Slash:
			right, err := p.parseExpr(op.Kind.Precedence())
			if err != nil {
				return nil, err
			}
			bin := &BinaryExpr{X: left, Op: op, Y: right}
			bin.loc = span(left.Span(), right.Span())
			left = bin

		case PlusPlus, MinusMinus:
			post := &PostfixExpr{X: left, Op: op}
			post.loc = Location{Start: left.Span().Start, End: op.Loc.End}
			left = post

		case Dot:
			sel, err := p.consumeIdent()
			if err != nil {
				return nil, err
			}
			fa := &SelectorExpr{X: left, Sel: sel}
			fa.loc = span(left.Span(), sel.Span())
			left = fa

		case Lparen:
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			rparen, err := p.consume(Rparen)
			if err != nil {
				return nil, err
			}
			call := &CallExpr{Fun: left, Args: args}
			call.loc = Location{Start: left.Span().Start, End: rparen.Loc.End}
			left = call

		default:
			// Operators with precedence but no infix rule (+= -= *= /= **)
			// are consumed and end the climb.
			break loop
		}
	}

	return left, nil
}

// parseArgs parses zero or more comma-separated call arguments at
// lowest precedence, stopping before the closing parenthesis. The
// comma may be omitted only before the closer; a trailing comma
// directly followed by the closer is also accepted.
func (p *Parser) parseArgs() ([]Expr, error) {
	var args []Expr
	for p.tok.Kind != Rparen && p.tok.Kind != EOF {
		x, err := p.parseExpr(PrecLowest)
		if err != nil {
			return nil, err
		}
		args = append(args, x)
		if p.tok.Kind != Comma {
			break
		}
		p.next()
	}
	return args, nil
}

// parsePrimary parses a primary expression: a parenthesized
// expression, an identifier, a literal, or a function literal.
func (p *Parser) parsePrimary() (Expr, error) {
	switch p.tok.Kind {
	case Lparen:
		p.next()
		if p.tok.Kind == EOF {
			return nil, &ParseError{Expected: Rparen.String()}
		}
		x, err := p.parseExpr(PrecLowest)
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(Rparen); err != nil {
			return nil, err
		}
		// No wrapper node: the inner expression keeps its own span.
		return x, nil

	case Ident:
		tok := p.take()
		n := &Name{Value: tok.Lit}
		n.loc = tok.Loc
		return n, nil

	case IntLit, StringLit, CharLit, BoolLit:
		tok := p.take()
		lit := &BasicLit{Kind: tok.Kind, Value: tok.Lit, Int: tok.Int}
		lit.loc = tok.Loc
		return lit, nil

	case Fun:
		return p.parseFuncLit()

	case EOF:
		return nil, &ParseError{Expected: "expression"}

	default:
		got := p.take()
		return nil, &ParseError{Expected: "expression", Got: &got}
	}
}

// parseFuncLit parses fun (param, param, ...) { block }. Parameters
// follow the same trailing-comma rule as call arguments.
func (p *Parser) parseFuncLit() (Expr, error) {
	start := p.take().Loc.Start // fun keyword
	if _, err := p.consume(Lparen); err != nil {
		return nil, err
	}

	var params []*Name
	for p.tok.Kind != Rparen && p.tok.Kind != EOF {
		name, err := p.consumeIdent()
		if err != nil {
			return nil, err
		}
		params = append(params, name)
		if p.tok.Kind != Comma {
			break
		}
		p.next()
	}
	if _, err := p.consume(Rparen); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	fn := &FuncLit{Params: params, Body: body}
	fn.loc = Location{Start: start, End: body.Span().End}
	return fn, nil
}
