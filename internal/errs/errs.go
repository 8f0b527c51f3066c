// Package errs holds the three failure kinds the interpreter reports.
// Every failing operation returns one of these instead of panicking, and
// callers short-circuit on the first one they see.
package errs

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// KindNone is what KindOf reports for errors raised outside the interpreter.
	KindNone Kind = iota
	KindLexer
	KindParser
	KindEval
)

func (k Kind) String() string {
	switch k {
	case KindLexer:
		return "Lexer"
	case KindParser:
		return "Parser"
	case KindEval:
		return "Eval"
	default:
		return "Unknown"
	}
}

type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error: `%s`", e.Kind, e.Msg)
}

func Lexerf(format string, a ...any) *Error {
	return &Error{Kind: KindLexer, Msg: fmt.Sprintf(format, a...)}
}

func Parserf(format string, a ...any) *Error {
	return &Error{Kind: KindParser, Msg: fmt.Sprintf(format, a...)}
}

func Evalf(format string, a ...any) *Error {
	return &Error{Kind: KindEval, Msg: fmt.Sprintf(format, a...)}
}

// KindOf unwraps err looking for an interpreter error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindNone
}

func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
