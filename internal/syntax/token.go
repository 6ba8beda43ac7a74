// Package syntax implements lexical and syntactic analysis for the
// Spectra programming language.
package syntax

import (
	"fmt"
	"strconv"
)

// Kind classifies a lexical token.
type Kind uint

const (
	// Special tokens
	EOF        Kind = iota // end of input
	Unexpected             // unrecognized character

	// Identifiers and literals
	Ident
	IntLit
	FloatLit
	StringLit
	CharLit
	BoolLit

	// Punctuation
	Plus       // +
	PlusPlus   // ++
	PlusEq     // +=
	Minus      // -
	MinusMinus // --
	MinusEq    // -=
	Star       // *
	StarStar   // **
	StarEq     // *=
	Slash      // /
	SlashEq    // /=
	Assign     // =
	Lparen     // (
	Rparen     // )
	Lbrack     // [
	Rbrack     // ]
	Lbrace     // {
	Rbrace     // }
	Semi       // ;
	Comma      // ,
	Dot        // .

	// Keywords
	Fun
	Class
	While
	If
	Else
	Var
	Break
	Continue
	Return

	kindCount
)

// kindNames maps kinds to the human-readable form used in error
// messages: punctuation and keywords render backtick-quoted, the rest
// as short descriptions.
var kindNames = [...]string{
	EOF:        "end of input",
	Unexpected: "invalid token",

	Ident:     "identifier",
	IntLit:    "integer literal",
	FloatLit:  "float literal",
	StringLit: "string literal",
	CharLit:   "char literal",
	BoolLit:   "bool literal",

	Plus:       "`+`",
	PlusPlus:   "`++`",
	PlusEq:     "`+=`",
	Minus:      "`-`",
	MinusMinus: "`--`",
	MinusEq:    "`-=`",
	Star:       "`*`",
	StarStar:   "`**`",
	StarEq:     "`*=`",
	Slash:      "`/`",
	SlashEq:    "`/=`",
	Assign:     "`=`",
	Lparen:     "`(`",
	Rparen:     "`)`",
	Lbrack:     "`[`",
	Rbrack:     "`]`",
	Lbrace:     "`{`",
	Rbrace:     "`}`",
	Semi:       "`;`",
	Comma:      "`,`",
	Dot:        "`.`",

	Fun:      "`fun`",
	Class:    "`class`",
	While:    "`while`",
	If:       "`if`",
	Else:     "`else`",
	Var:      "`var`",
	Break:    "`break`",
	Continue: "`continue`",
	Return:   "`return`",
}

// String returns the human-readable form of the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint(k))
}

// IsKeyword reports whether k is a keyword kind.
func (k Kind) IsKeyword() bool {
	return k >= Fun && k <= Return
}

// IsLiteral reports whether k is a literal kind.
func (k Kind) IsLiteral() bool {
	return k >= IntLit && k <= BoolLit
}

// IsPunct reports whether k is a punctuation kind.
func (k Kind) IsPunct() bool {
	return k >= Plus && k <= Dot
}

// Operator precedence levels, lowest binds loosest. The parser's
// climbing loop folds an operator into the left operand only while its
// precedence is strictly greater than the current minimum.
const (
	PrecLowest = iota
	PrecAssign
	PrecSum
	PrecProduct
	PrecPower
	PrecCall
	PrecFieldAccess
)

// Precedence returns the operator precedence for k.
// Kinds that never appear as operators map to PrecLowest.
func (k Kind) Precedence() int {
	switch k {
	case PlusEq, MinusEq, StarEq, SlashEq, PlusPlus, MinusMinus:
		return PrecAssign
	case Plus, Minus:
		return PrecSum
	case Star, Slash:
		return PrecProduct
	case StarStar:
		return PrecPower
	case Lparen:
		return PrecCall
	case Dot:
		return PrecFieldAccess
	}
	return PrecLowest
}

// keywords maps reserved spellings to their kinds. The bool literal
// spellings are reserved too: "true" and "false" always lex as BoolLit,
// never as identifiers.
var keywords = map[string]Kind{
	"true":     BoolLit,
	"false":    BoolLit,
	"fun":      Fun,
	"class":    Class,
	"while":    While,
	"if":       If,
	"else":     Else,
	"var":      Var,
	"break":    Break,
	"continue": Continue,
	"return":   Return,
}

// LookupKeyword returns the kind for a scanned identifier spelling.
// If the spelling is not reserved, it returns Ident.
func LookupKeyword(name string) Kind {
	if k, ok := keywords[name]; ok {
		return k
	}
	return Ident
}

// Token is a single lexical unit with its source span. Tokens are
// plain values, owned independently of the lexer that produced them.
type Token struct {
	Kind Kind
	Lit  string   // identifier name, literal text, or offending character
	Int  uint64   // integer payload, valid when Kind == IntLit
	Loc  Location // byte span the token was scanned from
}

// Bool returns the payload of a bool literal token.
func (t Token) Bool() bool {
	return t.Kind == BoolLit && t.Lit == "true"
}

// String returns the human-readable form of the token used in error
// messages, e.g. "identifier `foo`", "`+`", "`true`".
func (t Token) String() string {
	switch t.Kind {
	case Ident:
		return fmt.Sprintf("identifier `%s`", t.Lit)
	case IntLit:
		return strconv.FormatUint(t.Int, 10)
	case StringLit:
		return t.Lit
	case CharLit:
		return "'" + t.Lit + "'"
	case BoolLit:
		return "`" + t.Lit + "`"
	default:
		return t.Kind.String()
	}
}
