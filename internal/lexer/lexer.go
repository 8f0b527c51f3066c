package lexer

import (
	"errors"
	"minilisp/internal/token"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type Lexer struct {
	input        string
	position     int  // current byte position in input (points to start of current rune)
	readPosition int  // next byte position in input (start of next rune)
	ch           rune // current rune under examination; 0 means EOF
	eof          bool
}

func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// Tokenize scans the whole input. The error return is reserved for
// malformed literals; every run of characters currently lexes as either a
// number or a symbol, so it is always nil.
func Tokenize(input string) ([]token.Token, error) {
	l := New(input)
	tokens := make([]token.Token, 0)
	for {
		tok, ok := l.NextToken()
		if !ok {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// NextToken returns the next token and false once the input is exhausted.
func (l *Lexer) NextToken() (token.Token, bool) {
	l.skipWhitespace()
	if l.eof {
		return token.Token{}, false
	}

	switch l.ch {
	case '(', ')':
		tok := token.NewParen(l.ch)
		l.readChar()
		return tok, true
	default:
		return atom(l.readAtom()), true
	}
}

func (l *Lexer) skipWhitespace() {
	for !l.eof && unicode.IsSpace(l.ch) {
		l.readChar()
	}
}

// readChar advances by one UTF-8 rune, updating byte positions
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.eof = true
		l.position = l.readPosition
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += size
}

// readAtom returns the run of runes up to the next delimiter
func (l *Lexer) readAtom() string {
	start := l.position
	for !l.eof && !isDelimiter(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// atom lexes a run as a decimal float literal when it is one. Out of range
// literals become infinities or zero. Hex floats and digit separators are
// left as symbols.
func atom(literal string) token.Token {
	if strings.ContainsAny(literal, "xX_") {
		return token.NewSymbol(literal)
	}
	f, err := strconv.ParseFloat(literal, 64)
	if err == nil || errors.Is(err, strconv.ErrRange) {
		return token.NewNumber(literal, f)
	}
	return token.NewSymbol(literal)
}

func isDelimiter(ch rune) bool {
	return ch == '(' || ch == ')' || unicode.IsSpace(ch)
}
