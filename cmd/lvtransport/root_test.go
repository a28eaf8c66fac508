package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvtransport/transport"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand(&Input{}, &stdout, &stderr, "test")
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func fieldsOf(out, first string) []string {
	for _, line := range strings.Split(out, "\n") {
		f := strings.Fields(line)
		if len(f) > 0 && f[0] == first {
			return f
		}
	}
	return nil
}

func TestSolveDemoTable(t *testing.T) {
	out, _, err := run(t, "solve")
	require.NoError(t, err)

	assert.Equal(t, []string{"D1", "D2", "D3", "D4*", "Supply"}, fieldsOf(out, "D1"))
	assert.Equal(t, []string{"S1", "-", "-", "-", "30", "30"}, fieldsOf(out, "S1"))
	assert.Equal(t, []string{"S2", "50", "20", "10", "0", "80"}, fieldsOf(out, "S2"))
	assert.Equal(t, []string{"S3", "-", "40", "-", "-", "40"}, fieldsOf(out, "S3"))
	assert.Equal(t, []string{"Demand", "50", "60", "10", "30"}, fieldsOf(out, "Demand"))
	assert.Contains(t, out, "Total cost: 250 (potentials, 3 pivots, balance dummy-demand)")
}

func TestSolveFileJSONOutput(t *testing.T) {
	out, _, err := run(t, "solve", "-f", filepath.Join("testdata", "demo.yaml"), "--algo", "lp", "-o", "json")
	require.NoError(t, err)

	var rf resultFile
	require.NoError(t, json.Unmarshal([]byte(out), &rf))
	assert.Equal(t, int64(250), rf.Cost)
	assert.Equal(t, "lp", rf.Algorithm)
	assert.Equal(t, "dummy-demand", rf.Balance)
	require.Len(t, rf.Allocation, 3)
	require.Len(t, rf.Allocation[0], 4)
}

func TestSolveJSONInputYAMLOutput(t *testing.T) {
	out, _, err := run(t, "solve", "-f", filepath.Join("testdata", "scenario2.json"), "-o", "yaml")
	require.NoError(t, err)

	var rf resultFile
	require.NoError(t, yaml.Unmarshal([]byte(out), &rf))
	assert.Equal(t, int64(15), rf.Cost)
	assert.Equal(t, []int64{3, 4, 3}, rf.Demand)
	require.NotNil(t, rf.Allocation[0][0])
	assert.Equal(t, int64(3), *rf.Allocation[0][0])
	assert.Nil(t, rf.Allocation[0][2], "empty cell is null")
}

func TestSolveVerboseTrace(t *testing.T) {
	_, stderr, err := run(t, "solve", "-v")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(stderr, "msg=pivot"))
	assert.Contains(t, stderr, "enter=\"(0,3)\"")
}

func TestSolveErrors(t *testing.T) {
	_, _, err := run(t, "solve", "-f", filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to read problem file")

	_, _, err = run(t, "solve", "-f", filepath.Join("testdata", "unknown_field.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to parse problem file")

	_, _, err = run(t, "solve", "--algo", "vogel")
	require.Error(t, err)

	_, _, err = run(t, "solve", "-o", "xml")
	require.Error(t, err)

	_, _, err = run(t, "solve", "--max-iter", "1")
	require.ErrorIs(t, err, transport.ErrIterationLimit)
}

func TestGenerateThenSolve(t *testing.T) {
	out, _, err := run(t, "generate", "-m", "4", "-n", "5", "--seed", "9", "--balanced")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "p.yaml")
	require.NoError(t, os.WriteFile(path, []byte(out), 0o600))
	p, err := loadProblem(path)
	require.NoError(t, err)
	require.Len(t, p.Supply, 4)
	require.Len(t, p.Demand, 5)

	again, _, err := run(t, "generate", "-m", "4", "-n", "5", "--seed", "9", "--balanced")
	require.NoError(t, err)
	assert.Equal(t, out, again, "same seed, same file")

	solved, _, err := run(t, "solve", "-f", path, "-o", "json")
	require.NoError(t, err)
	var rf resultFile
	require.NoError(t, json.Unmarshal([]byte(solved), &rf))
	assert.Equal(t, "none", rf.Balance)
}

func TestGenerateRejectsBadSize(t *testing.T) {
	_, _, err := run(t, "generate", "-m", "0")
	require.Error(t, err)
}
