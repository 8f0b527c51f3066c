package token

type TokenType string

const (
	NUMBER = "NUMBER" // 3.14
	SYMBOL = "SYMBOL" // define, +, foo

	// Delimiters
	LPAREN = "("
	RPAREN = ")"
)

// Token is a single lexeme. Tokens carry no source position; the reader
// only ever reports paren balance errors, which have no useful location.
type Token struct {
	Type    TokenType
	Literal string
	Number  float64 // set when Type is NUMBER
}

func (t Token) String() string {
	if t.Type == NUMBER || t.Type == SYMBOL {
		return string(t.Type) + "(" + t.Literal + ")"
	}
	return t.Literal
}

func NewNumber(literal string, value float64) Token {
	return Token{Type: NUMBER, Literal: literal, Number: value}
}

func NewSymbol(literal string) Token {
	return Token{Type: SYMBOL, Literal: literal}
}

func NewParen(ch rune) Token {
	if ch == '(' {
		return Token{Type: LPAREN, Literal: LPAREN}
	}
	return Token{Type: RPAREN, Literal: RPAREN}
}
