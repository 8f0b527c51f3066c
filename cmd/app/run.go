package main

import (
	"fmt"
	"os"

	"minilisp/internal/evaluator"
	"minilisp/internal/lexer"
	"minilisp/internal/object"
	"minilisp/internal/parser"
	"minilisp/internal/printer"

	"github.com/spf13/cobra"
)

var (
	runExpression bool
	runPrint      bool
	debugAST      string
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [files...]",
	Short: "Run lisp code",
	Long: `Run lisp code supplied via the command line or files. All inputs share one
environment, so definitions in one file are visible to the next.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		defer logger.Close()

		sources, err := runReadSources(args)
		if err != nil {
			return err
		}

		env := evaluator.NewRootEnvironment()
		for i, src := range sources {
			val, err := runSource(src, env)
			if err != nil {
				return fmt.Errorf("%s: %w", args[i], err)
			}
			if runPrint {
				fmt.Fprintln(cmd.OutOrStdout(), printer.Render(val))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print the value of each input to stdout")
	runCmd.Flags().StringVar(&debugAST, "debug-ast", "",
		"Render the parsed forms to stderr before evaluating (json or text)")
}

func runReadSources(args []string) ([]string, error) {
	sources := make([]string, len(args))
	if runExpression {
		copy(sources, args)
		return sources, nil
	}
	for i, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		sources[i] = string(b)
	}
	return sources, nil
}

func runSource(src string, env *object.Environment) (object.Expr, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	program, err := parser.Parse(tokens)
	if err != nil {
		return nil, err
	}

	switch debugAST {
	case "":
	case "json":
		out, err := parser.RenderASTAsJSON(program)
		if err != nil {
			return nil, err
		}
		fmt.Fprintln(os.Stderr, out)
	case "text":
		fmt.Fprintln(os.Stderr, parser.RenderProgramAsText(program))
	default:
		return nil, fmt.Errorf("unknown --debug-ast format %q", debugAST)
	}

	return evaluator.EvalProgram(program, env)
}
