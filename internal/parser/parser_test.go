package parser

import (
	"encoding/json"
	"minilisp/internal/errs"
	"minilisp/internal/lexer"
	"minilisp/internal/object"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseString(t *testing.T, input string) ([]object.Expr, error) {
	t.Helper()
	tokens, err := lexer.Tokenize(input)
	require.NoError(t, err)
	return Parse(tokens)
}

func sym(name string) object.Symbol { return object.Symbol{Name: name} }
func num(f float64) object.Number   { return object.Number{Value: f} }

func TestParseSimple(t *testing.T) {
	program, err := parseString(t, "(+ 1 2)")
	require.NoError(t, err)
	assert.Equal(t, []object.Expr{
		object.NewList(sym("+"), num(1), num(2)),
	}, program)
}

func TestParseLambda(t *testing.T) {
	program, err := parseString(t, "(lambda (a) (+ a 1))")
	require.NoError(t, err)
	require.Len(t, program, 1)

	expected := object.NewList(
		sym("lambda"),
		object.NewList(sym("a")),
		object.NewList(sym("+"), sym("a"), num(1)),
	)
	assert.True(t, object.Equal(expected, program[0]), "got %s", program[0].Inspect())
}

func TestParseBooleans(t *testing.T) {
	program, err := parseString(t, "(f true false truth)")
	require.NoError(t, err)
	require.Len(t, program, 1)

	items, err := object.ExpectList(program[0])
	require.NoError(t, err)
	assert.Equal(t, object.TRUE, items[1])
	assert.Equal(t, object.FALSE, items[2])
	assert.Equal(t, sym("truth"), items[3])
}

func TestParseTopLevelForms(t *testing.T) {
	program, err := parseString(t, "(define a 1) a 7 ()")
	require.NoError(t, err)
	require.Len(t, program, 4)
	assert.Equal(t, object.LIST_EXPR, string(program[0].Type()))
	assert.Equal(t, sym("a"), program[1])
	assert.Equal(t, num(7), program[2])
	assert.True(t, object.Equal(object.EMPTY, program[3]))
}

func TestParseEmptyInput(t *testing.T) {
	program, err := parseString(t, "   ")
	require.NoError(t, err)
	assert.Empty(t, program)
}

// Re-serializing a parsed form reproduces its paren structure.
func TestParseStructureRoundTrip(t *testing.T) {
	inputs := []string{
		"(a)",
		"(a (b c) (d (e (f))))",
		"(() (()) ((())))",
		"(+ 2 (- 5 1))",
		"((lambda (a) (+ a 1)) 10)",
		"(define (sq x) (* x x))",
	}

	for _, input := range inputs {
		program, err := parseString(t, input)
		require.NoError(t, err, input)
		require.Len(t, program, 1, input)
		assert.Equal(t, input, program[0].Inspect())
		assert.Equal(t, strings.Count(input, "("), countLists(program[0]), input)
	}
}

func countLists(e object.Expr) int {
	l, ok := e.(object.List)
	if !ok {
		return 0
	}
	n := 1
	for _, el := range l.Elements {
		n += countLists(el)
	}
	return n
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{")(", "redundant right paren"},
		{"(+ 1 2))", "redundant right paren"},
		{"(( )", "unclosed left paren"},
		{"(", "unclosed left paren"},
	}

	for _, tt := range tests {
		_, err := parseString(t, tt.input)
		require.Error(t, err, tt.input)
		assert.True(t, errs.IsKind(err, errs.KindParser), tt.input)
		assert.Contains(t, err.Error(), tt.expected, tt.input)
	}
}

func TestRenderASTAsJSON(t *testing.T) {
	program, err := parseString(t, "(f 1 true)")
	require.NoError(t, err)

	out, err := RenderASTAsJSON(program)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "Program", decoded["type"])

	forms := decoded["forms"].([]interface{})
	require.Len(t, forms, 1)
	list := forms[0].(map[string]interface{})
	assert.Equal(t, "List", list["type"])
	elements := list["elements"].([]interface{})
	require.Len(t, elements, 3)
	assert.Equal(t, "f", elements[0].(map[string]interface{})["name"])
	assert.Equal(t, "1", elements[1].(map[string]interface{})["value"])
	assert.Equal(t, true, elements[2].(map[string]interface{})["value"])
}

func TestRenderASTAsText(t *testing.T) {
	program, err := parseString(t, "(+ a (f))")
	require.NoError(t, err)

	expected := "List[3]\n" +
		"  Symbol +\n" +
		"  Symbol a\n" +
		"  List[1]\n" +
		"    Symbol f"
	assert.Equal(t, expected, RenderProgramAsText(program))
}
