package object

import (
	"math"
	"strconv"
	"strings"

	"minilisp/internal/errs"
)

const (
	NUMBER_EXPR    = "NUMBER"
	BOOL_EXPR      = "BOOL"
	SYMBOL_EXPR    = "SYMBOL"
	LIST_EXPR      = "LIST"
	LAMBDA_EXPR    = "LAMBDA"
	PROCEDURE_EXPR = "PROCEDURE"
)

type ExprType string

// Expr is both the parsed form of source code and the value produced by
// evaluating it. The set of variants is closed; the unexported marker keeps
// other packages from adding to it.
type Expr interface {
	Type() ExprType
	Inspect() string
	expr()
}

// BuiltinFunction receives its operands unevaluated, together with the
// caller's environment, and decides itself what to evaluate.
type BuiltinFunction func(args []Expr, env *Environment) (Expr, error)

type Number struct {
	Value float64
}

func (n Number) Type() ExprType  { return NUMBER_EXPR }
func (n Number) Inspect() string { return FormatNumber(n.Value) }
func (Number) expr()             {}

type Bool struct {
	Value bool
}

func (b Bool) Type() ExprType  { return BOOL_EXPR }
func (b Bool) Inspect() string { return strconv.FormatBool(b.Value) }
func (Bool) expr()             {}

type Symbol struct {
	Name string
}

func (s Symbol) Type() ExprType  { return SYMBOL_EXPR }
func (s Symbol) Inspect() string { return s.Name }
func (Symbol) expr()             {}

// List is a compound form. The zero List is the empty list, which doubles
// as the "no value" result.
type List struct {
	Elements []Expr
}

func (l List) Type() ExprType { return LIST_EXPR }
func (l List) Inspect() string {
	parts := make([]string, 0, len(l.Elements))
	for _, e := range l.Elements {
		parts = append(parts, e.Inspect())
	}
	return "(" + strings.Join(parts, " ") + ")"
}
func (List) expr() {}

// Lambda is a user procedure. Params is checked to be a list of symbols
// when the lambda is applied, not when it is built.
type Lambda struct {
	Params Expr
	Body   Expr
	Env    *Environment
}

func (l *Lambda) Type() ExprType { return LAMBDA_EXPR }
func (l *Lambda) Inspect() string {
	return "<lambda " + l.Params.Inspect() + " " + l.Body.Inspect() + ">"
}
func (*Lambda) expr() {}

type Procedure struct {
	Name string
	Fn   BuiltinFunction
}

func (p *Procedure) Type() ExprType  { return PROCEDURE_EXPR }
func (p *Procedure) Inspect() string { return "<builtin " + p.Name + ">" }
func (*Procedure) expr()             {}

var (
	TRUE  = Bool{Value: true}
	FALSE = Bool{Value: false}
	EMPTY = List{}
)

func NewList(elements ...Expr) List {
	if len(elements) == 0 {
		return EMPTY
	}
	return List{Elements: elements}
}

func ExpectSymbol(e Expr) (string, error) {
	if s, ok := e.(Symbol); ok {
		return s.Name, nil
	}
	return "", mismatch(SYMBOL_EXPR, e)
}

func ExpectNumber(e Expr) (float64, error) {
	if n, ok := e.(Number); ok {
		return n.Value, nil
	}
	return 0, mismatch(NUMBER_EXPR, e)
}

func ExpectList(e Expr) ([]Expr, error) {
	if l, ok := e.(List); ok {
		return l.Elements, nil
	}
	return nil, mismatch(LIST_EXPR, e)
}

func mismatch(want ExprType, got Expr) error {
	if got == nil {
		return errs.Evalf("expect a %s but find nothing", strings.ToLower(string(want)))
	}
	return errs.Evalf("expect a %s but find: %s %s",
		strings.ToLower(string(want)), got.Type(), got.Inspect())
}

// FormatNumber renders a float the shortest way that reads back exactly.
func FormatNumber(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "+Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	case math.IsNaN(f):
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Equal compares two expressions structurally. Lambdas and procedures only
// equal themselves.
func Equal(a, b Expr) bool {
	switch a := a.(type) {
	case Number:
		bn, ok := b.(Number)
		return ok && a.Value == bn.Value
	case Bool:
		bb, ok := b.(Bool)
		return ok && a.Value == bb.Value
	case Symbol:
		bs, ok := b.(Symbol)
		return ok && a.Name == bs.Name
	case List:
		bl, ok := b.(List)
		if !ok || len(a.Elements) != len(bl.Elements) {
			return false
		}
		for i := range a.Elements {
			if !Equal(a.Elements[i], bl.Elements[i]) {
				return false
			}
		}
		return true
	case *Lambda:
		bl, ok := b.(*Lambda)
		return ok && a == bl
	case *Procedure:
		bp, ok := b.(*Procedure)
		return ok && a == bp
	}
	return false
}
