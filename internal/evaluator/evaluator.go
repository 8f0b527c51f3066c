package evaluator

import (
	"log/slog"
	"minilisp/internal/errs"
	"minilisp/internal/lexer"
	"minilisp/internal/object"
	"minilisp/internal/parser"
)

// EvalString reads every top-level form in src and evaluates them in order
// against env, returning the value of the last one. Forms evaluated before a
// failing one keep their effect on env.
func EvalString(src string, env *object.Environment) (object.Expr, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	program, err := parser.Parse(tokens)
	if err != nil {
		return nil, err
	}
	return EvalProgram(program, env)
}

func EvalProgram(program []object.Expr, env *object.Environment) (object.Expr, error) {
	var result object.Expr = object.EMPTY
	for _, form := range program {
		val, err := Eval(form, env)
		if err != nil {
			return nil, err
		}
		result = val
	}
	return result, nil
}

func Eval(e object.Expr, env *object.Environment) (object.Expr, error) {
	switch e := e.(type) {
	case object.Number, object.Bool, *object.Procedure, *object.Lambda:
		return e, nil

	case object.Symbol:
		val, ok := env.Lookup(e.Name)
		if !ok {
			return nil, errs.Evalf("undefined variable: %s", e.Name)
		}
		return val, nil

	case object.List:
		if len(e.Elements) == 0 {
			return object.EMPTY, nil
		}
		op, err := Eval(e.Elements[0], env)
		if err != nil {
			return nil, err
		}
		return Apply(op, e.Elements[1:], env)

	case nil:
		return nil, errs.Evalf("can not eval: nothing")
	}
	return nil, errs.Evalf("can not eval: %s", e.Inspect())
}

// Apply calls op with operands as written at the call site. Builtins get
// them raw together with the caller's environment. Lambdas get them
// evaluated in the caller's environment and bound in a fresh scope that
// extends the lambda's own.
func Apply(op object.Expr, operands []object.Expr, env *object.Environment) (object.Expr, error) {
	switch fn := op.(type) {
	case *object.Procedure:
		slog.Debug("apply builtin",
			slog.String("name", fn.Name),
			slog.Int("operands", len(operands)))
		return fn.Fn(operands, env)

	case *object.Lambda:
		slog.Debug("apply lambda",
			slog.Uint64("env", fn.Env.ID),
			slog.Int("operands", len(operands)))
		return applyLambda(fn, operands, env)

	default:
		return nil, errs.Evalf("can not apply: %s", describe(op))
	}
}

func applyLambda(fn *object.Lambda, operands []object.Expr, env *object.Environment) (object.Expr, error) {
	params, err := lambdaParams(fn)
	if err != nil {
		return nil, err
	}
	if len(operands) < len(params) {
		return nil, errs.Evalf("apply params count not match: %s expects %d, got %d",
			fn.Inspect(), len(params), len(operands))
	}

	args, err := evalOperands(operands, env)
	if err != nil {
		return nil, err
	}

	scope := object.NewEnclosedEnvironment(fn.Env)
	for i, name := range params {
		scope.Assign(name, args[i])
	}
	return Eval(fn.Body, scope)
}

func lambdaParams(fn *object.Lambda) ([]string, error) {
	items, err := object.ExpectList(fn.Params)
	if err != nil {
		return nil, errs.Evalf("invalid lambda parameters: %s", fn.Params.Inspect())
	}
	names := make([]string, len(items))
	for i, item := range items {
		name, err := object.ExpectSymbol(item)
		if err != nil {
			return nil, err
		}
		names[i] = name
	}
	return names, nil
}

func evalOperands(operands []object.Expr, env *object.Environment) ([]object.Expr, error) {
	args := make([]object.Expr, 0, len(operands))
	for _, operand := range operands {
		val, err := Eval(operand, env)
		if err != nil {
			return nil, err
		}
		args = append(args, val)
	}
	return args, nil
}

func describe(e object.Expr) string {
	if e == nil {
		return "nothing"
	}
	return string(e.Type()) + " " + e.Inspect()
}
