package syntax

import (
	"math"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// eof is the sentinel for "no character": it is not a valid Unicode
// scalar value and fails every character class below.
const eof rune = -1

// Lexer converts a source buffer into a stream of tokens, one call to
// Next at a time. It scans decoded Unicode scalar values but reports
// spans in UTF-8 byte offsets. The cursor keeps the current character
// plus one character of lookahead to disambiguate the two-character
// operators, and never backtracks.
//
// The lexer itself never fails: unrecognized characters and
// unterminated strings are emitted as ordinary tokens and left for the
// parser to reject.
type Lexer struct {
	src string

	offs int  // byte offset of cur
	cur  rune // current character, eof at end of input
	curW int  // encoded width of cur in bytes
	nxt  rune // lookahead character, eof at end of input
	nxtW int  // encoded width of nxt in bytes
}

// NewLexer returns a Lexer positioned at the start of src.
func NewLexer(src string) *Lexer {
	l := &Lexer{src: src}
	l.cur, l.curW = decodeAt(src, 0)
	l.nxt, l.nxtW = decodeAt(src, l.curW)
	return l
}

// decodeAt decodes the rune starting at byte offset offs.
func decodeAt(src string, offs int) (rune, int) {
	if offs >= len(src) {
		return eof, 0
	}
	return utf8.DecodeRuneInString(src[offs:])
}

// advance moves the cursor one character forward. The byte offset
// grows by the encoded width of the consumed character.
func (l *Lexer) advance() {
	l.offs += l.curW
	l.cur, l.curW = l.nxt, l.nxtW
	l.nxt, l.nxtW = decodeAt(l.src, l.offs+l.curW)
}

// Next scans and returns the next token. Once the input is exhausted
// it returns EOF tokens carrying the empty span at end of input.
func (l *Lexer) Next() Token {
	l.skipWhitespace()

	if l.cur == eof {
		return Token{Kind: EOF, Loc: Location{Start: l.offs, End: l.offs}}
	}

	switch l.cur {
	case '+':
		switch l.nxt {
		case '+':
			return l.punct2(PlusPlus)
		case '=':
			return l.punct2(PlusEq)
		}
		return l.punct(Plus)
	case '-':
		switch l.nxt {
		case '-':
			return l.punct2(MinusMinus)
		case '=':
			return l.punct2(MinusEq)
		}
		return l.punct(Minus)
	case '*':
		switch l.nxt {
		case '*':
			return l.punct2(StarStar)
		case '=':
			return l.punct2(StarEq)
		}
		return l.punct(Star)
	case '/':
		if l.nxt == '=' {
			return l.punct2(SlashEq)
		}
		return l.punct(Slash)
	case '=':
		return l.punct(Assign)
	case '(':
		return l.punct(Lparen)
	case ')':
		return l.punct(Rparen)
	case '[':
		return l.punct(Lbrack)
	case ']':
		return l.punct(Rbrack)
	case '{':
		return l.punct(Lbrace)
	case '}':
		return l.punct(Rbrace)
	case ';':
		return l.punct(Semi)
	case ',':
		return l.punct(Comma)
	case '.':
		return l.punct(Dot)
	case '"':
		return l.scanString()
	}

	switch {
	case isIdentStart(l.cur):
		return l.scanIdent()
	case isDigit(l.cur):
		return l.scanNumber()
	}

	tok := Token{
		Kind: Unexpected,
		Lit:  string(l.cur),
		Loc:  Location{Start: l.offs, End: l.offs + l.curW},
	}
	l.advance()
	return tok
}

// skipWhitespace consumes a maximal run of whitespace characters.
func (l *Lexer) skipWhitespace() {
	for isWhitespace(l.cur) {
		l.advance()
	}
}

// punct emits a single-character punctuation token.
func (l *Lexer) punct(k Kind) Token {
	tok := Token{Kind: k, Loc: Location{Start: l.offs, End: l.offs + 1}}
	l.advance()
	return tok
}

// punct2 emits a two-character punctuation token.
func (l *Lexer) punct2(k Kind) Token {
	tok := Token{Kind: k, Loc: Location{Start: l.offs, End: l.offs + 2}}
	l.advance()
	l.advance()
	return tok
}

// scanIdent scans a maximal identifier run and classifies it as a
// keyword, bool literal, or identifier.
func (l *Lexer) scanIdent() Token {
	start := l.offs
	for isIdentContinue(l.cur) {
		l.advance()
	}
	name := l.src[start:l.offs]
	return Token{
		Kind: LookupKeyword(name),
		Lit:  name,
		Loc:  Location{Start: start, End: l.offs},
	}
}

// scanNumber scans a maximal run of ASCII digits as an unsigned
// integer literal. Floating-point literals are not supported: scanning
// stops at the first non-digit, so "1.5" lexes as 1, `.`, 5. Runs that
// do not fit in 64 bits saturate at the maximum value.
func (l *Lexer) scanNumber() Token {
	start := l.offs
	for isDigit(l.cur) {
		l.advance()
	}
	text := l.src[start:l.offs]
	value, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		// The run is all digits, so the only possible error is range.
		value = math.MaxUint64
	}
	return Token{
		Kind: IntLit,
		Lit:  text,
		Int:  value,
		Loc:  Location{Start: start, End: l.offs},
	}
}

// scanString scans a string literal. Escape sequences are not
// processed: the literal carries the raw text between the quotes. An
// unterminated string consumes to end of input without erroring; the
// span covers the quotes that were actually present.
func (l *Lexer) scanString() Token {
	start := l.offs
	l.advance() // opening quote
	for l.cur != '"' && l.cur != eof {
		l.advance()
	}
	lit := l.src[start+1 : l.offs]
	if l.cur == '"' {
		l.advance() // closing quote
	}
	return Token{
		Kind: StringLit,
		Lit:  lit,
		Loc:  Location{Start: start, End: l.offs},
	}
}

// Character classification helpers

// isWhitespace reports whether r is in the fixed whitespace set: the
// ASCII blanks plus NEL, the bidi marks, and the Unicode line and
// paragraph separators.
func isWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		'', // NEXT LINE
		'‎', // LEFT-TO-RIGHT MARK
		'‏', // RIGHT-TO-LEFT MARK
		' ', // LINE SEPARATOR
		' ': // PARAGRAPH SEPARATOR
		return true
	}
	return false
}

// isIdentStart reports whether r can start an identifier.
func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

// isIdentContinue reports whether r can continue an identifier.
func isIdentContinue(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isDigit reports whether r is an ASCII decimal digit.
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
