package object

import (
	"math"
	"testing"

	"minilisp/internal/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpectProjections(t *testing.T) {
	name, err := ExpectSymbol(Symbol{Name: "a"})
	require.NoError(t, err)
	assert.Equal(t, "a", name)

	n, err := ExpectNumber(Number{Value: 2.5})
	require.NoError(t, err)
	assert.Equal(t, 2.5, n)

	items, err := ExpectList(NewList(Number{Value: 1}, Symbol{Name: "x"}))
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestExpectMismatch(t *testing.T) {
	tests := []struct {
		fn       func() error
		expected string
	}{
		{func() error { _, err := ExpectSymbol(Number{Value: 1}); return err },
			"Eval error: `expect a symbol but find: NUMBER 1`"},
		{func() error { _, err := ExpectNumber(NewList(Symbol{Name: "+"})); return err },
			"Eval error: `expect a number but find: LIST (+)`"},
		{func() error { _, err := ExpectList(TRUE); return err },
			"Eval error: `expect a list but find: BOOL true`"},
		{func() error { _, err := ExpectNumber(Symbol{Name: "1"}); return err },
			"Eval error: `expect a number but find: SYMBOL 1`"},
	}

	for _, tt := range tests {
		err := tt.fn()
		require.Error(t, err)
		assert.True(t, errs.IsKind(err, errs.KindEval))
		assert.Equal(t, tt.expected, err.Error())
	}
}

func TestInspect(t *testing.T) {
	lambda := &Lambda{
		Params: NewList(Symbol{Name: "a"}),
		Body:   NewList(Symbol{Name: "+"}, Symbol{Name: "a"}, Number{Value: 1}),
		Env:    NewEnvironment(),
	}
	tests := []struct {
		expr     Expr
		expected string
	}{
		{Number{Value: 4}, "4"},
		{Number{Value: 0.1}, "0.1"},
		{Number{Value: -2.5}, "-2.5"},
		{Number{Value: math.Inf(1)}, "+Inf"},
		{Number{Value: math.Inf(-1)}, "-Inf"},
		{Number{Value: math.NaN()}, "NaN"},
		{TRUE, "true"},
		{Symbol{Name: "define"}, "define"},
		{EMPTY, "()"},
		{NewList(Number{Value: 1}, NewList(Symbol{Name: "b"})), "(1 (b))"},
		{lambda, "<lambda (a) (+ a 1)>"},
		{&Procedure{Name: "+"}, "<builtin +>"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.expr.Inspect())
	}
}

func TestEqual(t *testing.T) {
	a := NewList(Symbol{Name: "+"}, Number{Value: 1}, NewList(TRUE))
	b := NewList(Symbol{Name: "+"}, Number{Value: 1}, NewList(TRUE))
	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, NewList(Symbol{Name: "+"}, Number{Value: 1})))
	assert.False(t, Equal(Number{Value: 1}, Bool{Value: true}))
	assert.True(t, Equal(EMPTY, List{Elements: []Expr{}}))

	p := &Procedure{Name: "+"}
	assert.True(t, Equal(p, p))
	assert.False(t, Equal(p, &Procedure{Name: "+"}))
}
