package evaluator

import (
	"log/slog"
	"minilisp/internal/errs"
	"minilisp/internal/object"
)

// Builtins returns a fresh table of the base procedures. Each root
// environment gets its own copy.
func Builtins() map[string]*object.Procedure {
	return map[string]*object.Procedure{
		"lambda": funcLambda(),
		"define": funcDefine(),

		// arithmetic
		"+": arithmetic("+", func(a, b float64) float64 { return a + b }),
		"-": arithmetic("-", func(a, b float64) float64 { return a - b }),
		"*": arithmetic("*", func(a, b float64) float64 { return a * b }),
		"/": arithmetic("/", func(a, b float64) float64 { return a / b }),
	}
}

func NewRootEnvironment() *object.Environment {
	return object.NewRootEnvironment(Builtins())
}

func checkArity(name string, args []object.Expr, want int) error {
	if len(args) != want {
		return errs.Evalf("invalid %s expression: want %d operands, got %d: %s",
			name, want, len(args), object.NewList(args...).Inspect())
	}
	return nil
}

// funcLambda builds a closure from (lambda (params...) body). Neither
// operand is evaluated.
func funcLambda() *object.Procedure {
	return &object.Procedure{
		Name: "lambda",
		Fn: func(args []object.Expr, env *object.Environment) (object.Expr, error) {
			if err := checkArity("lambda", args, 2); err != nil {
				return nil, err
			}
			return &object.Lambda{
				Params: args[0],
				Body:   args[1],
				Env:    object.NewEnclosedEnvironment(env),
			}, nil
		},
	}
}

// funcDefine binds a name in the caller's scope, either
//
//	(define name expr)         name = value of expr
//	(define (name params...) body)  name = lambda
func funcDefine() *object.Procedure {
	return &object.Procedure{
		Name: "define",
		Fn: func(args []object.Expr, env *object.Environment) (object.Expr, error) {
			if err := checkArity("define", args, 2); err != nil {
				return nil, err
			}

			if sig, ok := args[0].(object.List); ok {
				if len(sig.Elements) == 0 {
					return nil, errs.Evalf("invalid define expression: missing function name")
				}
				name, err := object.ExpectSymbol(sig.Elements[0])
				if err != nil {
					return nil, err
				}
				env.Assign(name, &object.Lambda{
					Params: object.NewList(sig.Elements[1:]...),
					Body:   args[1],
					Env:    env,
				})
				slog.Debug("define function", slog.String("name", name), slog.Uint64("env", env.ID))
				return object.EMPTY, nil
			}

			name, err := object.ExpectSymbol(args[0])
			if err != nil {
				return nil, err
			}
			val, err := Eval(args[1], env)
			if err != nil {
				return nil, err
			}
			env.Assign(name, val)
			slog.Debug("define", slog.String("name", name), slog.Uint64("env", env.ID))
			return object.EMPTY, nil
		},
	}
}

// arithmetic evaluates both operands in the caller's environment. Division
// follows IEEE-754, so x/0 is an infinity or NaN rather than an error.
func arithmetic(name string, op func(a, b float64) float64) *object.Procedure {
	return &object.Procedure{
		Name: name,
		Fn: func(args []object.Expr, env *object.Environment) (object.Expr, error) {
			if err := checkArity(name, args, 2); err != nil {
				return nil, err
			}
			lhs, err := evalNumber(args[0], env)
			if err != nil {
				return nil, err
			}
			rhs, err := evalNumber(args[1], env)
			if err != nil {
				return nil, err
			}
			return object.Number{Value: op(lhs, rhs)}, nil
		},
	}
}

func evalNumber(e object.Expr, env *object.Environment) (float64, error) {
	val, err := Eval(e, env)
	if err != nil {
		return 0, err
	}
	return object.ExpectNumber(val)
}
