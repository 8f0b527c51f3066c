package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		err      *Error
		expected string
	}{
		{Lexerf("bad literal %q", "1x"), "Lexer error: `bad literal \"1x\"`"},
		{Parserf("redundant right paren"), "Parser error: `redundant right paren`"},
		{Evalf("undefined variable: %s", "a"), "Eval error: `undefined variable: a`"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.err.Error())
	}
}

func TestKindOfWrapped(t *testing.T) {
	err := fmt.Errorf("line 3: %w", Evalf("can not apply: 1"))
	assert.Equal(t, KindEval, KindOf(err))
	assert.True(t, IsKind(err, KindEval))
	assert.False(t, IsKind(err, KindParser))

	assert.Equal(t, KindNone, KindOf(errors.New("disk full")))
	assert.False(t, IsKind(nil, KindNone))
}
