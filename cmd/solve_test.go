package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolvePrefersShallowRepresentative(t *testing.T) {
	problem := `
		(declare-const a Int)
		(declare-const b Int)
		(declare-fun f (Int) Int)
		(assert (= (f a) b))
		(rep (f a))
	`
	file := filepath.Join(t.TempDir(), "problem.qeq")
	require.NoError(t, os.WriteFile(file, []byte(problem), 0o644))

	out := &strings.Builder{}
	SolveCmd.SetOut(out)
	require.NoError(t, SolveCmd.Flags().Set("rep-mode", "depth"))
	require.NoError(t, runSolve(SolveCmd, []string{file}))

	assert.Equal(t, "(f a) -> b\n", out.String())
}

func TestSolveInvalidateRecomputes(t *testing.T) {
	problem := `
		(declare-const a Int)
		(declare-const b Int)
		(declare-fun f (Int) Int)
		(rep (f a))
		(assert (= (f a) b))
		(invalidate)
		(rep (f a))
	`
	file := filepath.Join(t.TempDir(), "problem.qeq")
	require.NoError(t, os.WriteFile(file, []byte(problem), 0o644))

	out := &strings.Builder{}
	SolveCmd.SetOut(out)
	require.NoError(t, SolveCmd.Flags().Set("rep-mode", "depth"))
	require.NoError(t, runSolve(SolveCmd, []string{file}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	// before the equality arrives the term stands for itself
	assert.Equal(t, "(f a) -> (f a)", lines[0])
	// after invalidation the shallow class member wins
	assert.Equal(t, "(f a) -> b", lines[1])
}

func TestSolveRejectsUndeclaredSymbols(t *testing.T) {
	problem := `(rep a)`
	file := filepath.Join(t.TempDir(), "problem.qeq")
	require.NoError(t, os.WriteFile(file, []byte(problem), 0o644))

	SolveCmd.SetOut(&strings.Builder{})
	err := runSolve(SolveCmd, []string{file})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undeclared constant")
}

func TestSolveConflictingAssertionsFail(t *testing.T) {
	problem := `
		(declare-const a Int)
		(declare-const b Int)
		(assert (distinct a b))
		(assert (= a b))
	`
	file := filepath.Join(t.TempDir(), "problem.qeq")
	require.NoError(t, os.WriteFile(file, []byte(problem), 0o644))

	SolveCmd.SetOut(&strings.Builder{})
	err := runSolve(SolveCmd, []string{file})
	assert.Error(t, err)
}
