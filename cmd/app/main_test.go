package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("MINILISP_CONFIG", "")
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	defer func() {
		runExpression, runPrint, debugAST = false, false, ""
	}()
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRunExpressions(t *testing.T) {
	out, err := execute(t, "run", "-e", "-p", "(define a 1) (+ a 5)", "(* a 2)")
	require.NoError(t, err)
	assert.Equal(t, "6\n2\n", out)
}

func TestRunFiles(t *testing.T) {
	dir := t.TempDir()
	lib := filepath.Join(dir, "lib.lisp")
	mainFile := filepath.Join(dir, "main.lisp")
	require.NoError(t, os.WriteFile(lib, []byte("(define (sq x)\n  (* x x))\n"), 0o644))
	require.NoError(t, os.WriteFile(mainFile, []byte("(sq (+ 1 2))\n"), 0o644))

	out, err := execute(t, "run", "-p", lib, mainFile)
	require.NoError(t, err)
	assert.Equal(t, "()\n9\n", out)
}

func TestRunFailure(t *testing.T) {
	_, err := execute(t, "run", "-e", "(+ 1 nope)")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undefined variable: nope")

	_, err = execute(t, "run", filepath.Join(t.TempDir(), "missing.lisp"))
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "minilisp version 'vdev' unknown unknown\n", out)
}

func TestHistoryRequiresStore(t *testing.T) {
	_, err := execute(t, "history")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no transcript store configured")
}
