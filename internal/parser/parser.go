package parser

import (
	"log/slog"
	"minilisp/internal/errs"
	"minilisp/internal/object"
	"minilisp/internal/token"
)

// Parse turns a token stream into the top-level forms it contains, in
// source order. A stack of partially built lists tracks the nesting; its
// bottom frame collects the top-level forms.
func Parse(tokens []token.Token) ([]object.Expr, error) {
	p := New(tokens)
	return p.ParseProgram()
}

type Parser struct {
	tokens []token.Token
	frames [][]object.Expr
}

func New(tokens []token.Token) *Parser {
	return &Parser{
		tokens: tokens,
		frames: make([][]object.Expr, 1),
	}
}

func (p *Parser) ParseProgram() ([]object.Expr, error) {
	for _, tok := range p.tokens {
		if err := p.parseToken(tok); err != nil {
			slog.Debug("parse failed",
				slog.Int("tokens", len(p.tokens)),
				slog.Any("error", err))
			return nil, err
		}
	}

	if len(p.frames) != 1 {
		return nil, errs.Parserf("unclosed left paren")
	}
	return p.frames[0], nil
}

func (p *Parser) parseToken(tok token.Token) error {
	switch tok.Type {
	case token.NUMBER:
		p.push(object.Number{Value: tok.Number})
	case token.SYMBOL:
		p.push(parseSymbol(tok.Literal))
	case token.LPAREN:
		p.frames = append(p.frames, nil)
	case token.RPAREN:
		if len(p.frames) == 1 {
			return errs.Parserf("redundant right paren")
		}
		list := p.frames[len(p.frames)-1]
		p.frames = p.frames[:len(p.frames)-1]
		p.push(object.NewList(list...))
	default:
		return errs.Parserf("unexpected token: %s", tok)
	}
	return nil
}

func (p *Parser) push(e object.Expr) {
	top := len(p.frames) - 1
	p.frames[top] = append(p.frames[top], e)
}

func parseSymbol(literal string) object.Expr {
	switch literal {
	case "true":
		return object.TRUE
	case "false":
		return object.FALSE
	default:
		return object.Symbol{Name: literal}
	}
}
