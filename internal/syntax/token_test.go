package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		name string
		want Kind
	}{
		{"fun", Fun},
		{"class", Class},
		{"while", While},
		{"if", If},
		{"else", Else},
		{"var", Var},
		{"break", Break},
		{"continue", Continue},
		{"return", Return},
		{"true", BoolLit},
		{"false", BoolLit},
		{"foo", Ident},
		{"funs", Ident},
		{"Return", Ident},
		{"_", Ident},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LookupKeyword(tt.name))
		})
	}
}

func TestPrecedenceOrdering(t *testing.T) {
	// The levels form a total order, lowest to highest.
	assert.True(t, PrecLowest < PrecAssign)
	assert.True(t, PrecAssign < PrecSum)
	assert.True(t, PrecSum < PrecProduct)
	assert.True(t, PrecProduct < PrecPower)
	assert.True(t, PrecPower < PrecCall)
	assert.True(t, PrecCall < PrecFieldAccess)
}

func TestKindPrecedence(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{PlusEq, PrecAssign},
		{MinusEq, PrecAssign},
		{StarEq, PrecAssign},
		{SlashEq, PrecAssign},
		{PlusPlus, PrecAssign},
		{MinusMinus, PrecAssign},
		{Plus, PrecSum},
		{Minus, PrecSum},
		{Star, PrecProduct},
		{Slash, PrecProduct},
		{StarStar, PrecPower},
		{Lparen, PrecCall},
		{Dot, PrecFieldAccess},
		{Assign, PrecLowest},
		{Rparen, PrecLowest},
		{Semi, PrecLowest},
		{Ident, PrecLowest},
		{IntLit, PrecLowest},
		{EOF, PrecLowest},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.Precedence())
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "`+`", Plus.String())
	assert.Equal(t, "`++`", PlusPlus.String())
	assert.Equal(t, "`fun`", Fun.String())
	assert.Equal(t, "identifier", Ident.String())
	assert.Equal(t, "end of input", EOF.String())
	assert.Equal(t, "invalid token", Unexpected.String())
	assert.Equal(t, "kind(999)", Kind(999).String())
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		name string
		tok  Token
		want string
	}{
		{"ident", Token{Kind: Ident, Lit: "foo"}, "identifier `foo`"},
		{"int", Token{Kind: IntLit, Int: 42}, "42"},
		{"string", Token{Kind: StringLit, Lit: "hi"}, "hi"},
		{"char", Token{Kind: CharLit, Lit: "c"}, "'c'"},
		{"bool", Token{Kind: BoolLit, Lit: "true"}, "`true`"},
		{"punct", Token{Kind: Semi}, "`;`"},
		{"keyword", Token{Kind: While}, "`while`"},
		{"unexpected", Token{Kind: Unexpected, Lit: "@"}, "invalid token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tok.String())
		})
	}
}

func TestKindPredicates(t *testing.T) {
	assert.True(t, Fun.IsKeyword())
	assert.True(t, Return.IsKeyword())
	assert.False(t, Ident.IsKeyword())
	assert.False(t, Plus.IsKeyword())

	assert.True(t, IntLit.IsLiteral())
	assert.True(t, BoolLit.IsLiteral())
	assert.False(t, Ident.IsLiteral())

	assert.True(t, Plus.IsPunct())
	assert.True(t, Dot.IsPunct())
	assert.False(t, Fun.IsPunct())
	assert.False(t, EOF.IsPunct())
}

func TestTokenBool(t *testing.T) {
	assert.True(t, Token{Kind: BoolLit, Lit: "true"}.Bool())
	assert.False(t, Token{Kind: BoolLit, Lit: "false"}.Bool())
	assert.False(t, Token{Kind: Ident, Lit: "true"}.Bool())
}
