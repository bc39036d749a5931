package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"advent/internal/config"
	"advent/internal/puzzle"
)

const forestSample = "30373\n25512\n65332\n33549\n35390\n"

// setup points the package globals at a temp workspace.
func setup(t *testing.T) string {
	t.Helper()
	logger = zap.NewNop()

	ws := t.TempDir()
	c := config.DefaultConfig()
	c.Inputs.Dir = filepath.Join(ws, "inputs")
	c.Inputs.ExamplesDir = filepath.Join(ws, "examples")
	c.Store.Path = filepath.Join(ws, "data", "advent.db")
	cfg = c

	require.NoError(t, os.MkdirAll(c.Inputs.ExamplesDir, 0755))
	require.NoError(t, os.WriteFile(puzzle.InputPath(c.Inputs.ExamplesDir, 8), []byte(forestSample), 0644))

	t.Cleanup(func() {
		cfg = config.DefaultConfig()
		solvePart = 0
		useExample = false
		historyLimit = 10
	})
	return ws
}

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origOut := os.Stdout
	origErr := os.Stderr
	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()
	os.Stdout = wOut
	os.Stderr = wErr

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, rOut)
		_, _ = io.Copy(&buf, rErr)
		done <- buf.String()
	}()

	fn()

	_ = wOut.Close()
	_ = wErr.Close()
	os.Stdout = origOut
	os.Stderr = origErr
	return <-done
}

func TestSolveCmd(t *testing.T) {
	setup(t)
	useExample = true

	var err error
	out := captureOutput(t, func() {
		err = runSolve(&cobra.Command{}, []string{"8"})
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Day 8: Treetop Tree House")
	assert.Contains(t, out, "21")
	assert.Contains(t, out, "8")
	assert.FileExists(t, cfg.Store.Path)
}

func TestSolveCmd_SinglePart(t *testing.T) {
	setup(t)
	useExample = true
	solvePart = 2
	cfg.Store.Enabled = false

	var err error
	out := captureOutput(t, func() {
		err = runSolve(&cobra.Command{}, []string{"8"})
	})
	require.NoError(t, err)
	assert.Contains(t, out, "part 2")
	assert.NotContains(t, out, "part 1")
	assert.NoFileExists(t, cfg.Store.Path)
}

func TestSolveCmd_BadArgs(t *testing.T) {
	setup(t)

	assert.ErrorContains(t, runSolve(&cobra.Command{}, []string{"26"}), "invalid day")
	assert.ErrorContains(t, runSolve(&cobra.Command{}, []string{"eight"}), "invalid day")

	solvePart = 3
	assert.ErrorContains(t, runSolve(&cobra.Command{}, []string{"8"}), "invalid part")
}

func TestSolveCmd_MissingInput(t *testing.T) {
	setup(t)
	err := runSolve(&cobra.Command{}, []string{"8"})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestAllCmd_ReportsFailures(t *testing.T) {
	setup(t)
	useExample = true
	cfg.Store.Enabled = false

	var err error
	out := captureOutput(t, func() {
		err = runAll(&cobra.Command{}, nil)
	})
	// Only day 8 has an example input in the workspace.
	assert.ErrorContains(t, err, "14 of 16 parts failed")
	assert.Contains(t, out, "Day 1")
	assert.Contains(t, out, "Day 8: Treetop Tree House")
}

func TestHistoryCmd(t *testing.T) {
	setup(t)
	useExample = true

	captureOutput(t, func() {
		require.NoError(t, runSolve(&cobra.Command{}, []string{"8"}))
	})

	var err error
	out := captureOutput(t, func() {
		err = runHistory(&cobra.Command{}, []string{"8"})
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Day 8 history")
	assert.Contains(t, out, "example")
	assert.Contains(t, out, "21")

	out = captureOutput(t, func() {
		err = runHistory(&cobra.Command{}, []string{"3"})
	})
	require.NoError(t, err)
	assert.Contains(t, out, "no recorded runs")

	cfg.Store.Enabled = false
	assert.ErrorContains(t, runHistory(&cobra.Command{}, []string{"8"}), "disabled")
}

func TestRenderCmd(t *testing.T) {
	ws := setup(t)
	path := filepath.Join(ws, "map.txt")
	require.NoError(t, os.WriteFile(path, []byte(forestSample), 0644))

	var err error
	out := captureOutput(t, func() {
		err = runRender(&cobra.Command{}, []string{path})
	})
	require.NoError(t, err)
	assert.Contains(t, out, "21 of 25 trees visible")
	assert.Contains(t, out, "best spot (2,3) scores 8")
}

func TestRenderCmd_Malformed(t *testing.T) {
	ws := setup(t)
	path := filepath.Join(ws, "map.txt")
	require.NoError(t, os.WriteFile(path, []byte("123\n12\n"), 0644))

	err := runRender(&cobra.Command{}, []string{path})
	assert.Error(t, err)
}

func TestCheckCmd(t *testing.T) {
	ws := setup(t)
	cfg.Store.Enabled = false
	batteryPath = filepath.Join(ws, "answers.yaml")
	t.Cleanup(func() { batteryPath = "answers.yaml" })

	battery := "version: 1\ntasks:\n" +
		"  - {day: 8, part: 1, source: example, want: \"21\"}\n" +
		"  - {day: 8, part: 2, source: example, want: \"8\"}\n"
	require.NoError(t, os.WriteFile(batteryPath, []byte(battery), 0644))

	var err error
	out := captureOutput(t, func() {
		err = runCheck(&cobra.Command{}, nil)
	})
	require.NoError(t, err)
	assert.Contains(t, out, "2 answers verified")

	require.NoError(t, os.WriteFile(batteryPath, []byte(battery+"  - {day: 8, part: 2, source: example, want: \"9\"}\n"), 0644))
	out = captureOutput(t, func() {
		err = runCheck(&cobra.Command{}, nil)
	})
	assert.ErrorContains(t, err, "failed")
	assert.Contains(t, out, "FAIL")
}
