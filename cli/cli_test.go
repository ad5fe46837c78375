package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/assignment/cli"
	"github.com/katalvlaran/assignment/hungarian"
	"github.com/katalvlaran/assignment/instance"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := cli.RootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--env-file", ""}, args...))
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

// writeInstance stores p as YAML in a temp dir and returns the path.
func writeInstance(t *testing.T, p *instance.Problem) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "problem.yaml")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, p.WriteYAML(f))
	require.NoError(t, f.Close())

	return path
}

func TestExampleCommand(t *testing.T) {
	out, _, err := execute(t, "example", "--format", "csv")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"Assignment,Row,Column,Weight",
		"Assignment 1,Alicia,Proyecto D,15",
		"Assignment 2,Roberto,Proyecto A,10",
		"Assignment 3,Carlos,Proyecto B,16",
		"Assignment 4,Diana,Proyecto C,8",
		",,Total:,49",
		"",
	}, "\n"), out)
}

func TestExampleSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.yaml")
	_, _, err := execute(t, "example", "--save", path)
	require.NoError(t, err)

	p, err := instance.Load(path)
	require.NoError(t, err)
	assert.Equal(t, instance.Example(), p)
}

func TestSolveCommandJSON(t *testing.T) {
	path := writeInstance(t, instance.Default())
	out, _, err := execute(t, "solve", "--input", path, "--format", "json", "--method", "potentials")
	require.NoError(t, err)

	var got struct {
		TotalWeight  float64 `json:"totalWeight"`
		MatchingType string  `json:"matchingType"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 12.0, got.TotalWeight)
	assert.Equal(t, "min", got.MatchingType)
}

func TestSolveDirectionOverride(t *testing.T) {
	path := writeInstance(t, instance.Default())
	out, _, err := execute(t, "solve", "-i", path, "-d", "max", "--format", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "Total benefit: 14")
}

func TestSolveCSVInputToFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "wide.csv")
	require.NoError(t, os.WriteFile(in, []byte(",A,B,C\nAnn,4,2,8\nBob,4,3,7\n"), 0o600))
	outPath := filepath.Join(dir, "result.csv")

	stdout, _, err := execute(t, "solve", "--input", in, "--format", "csv", "--output", outPath)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	b, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "Assignment,Row,Column,Weight\nAssignment 1,Ann,B,2\nAssignment 2,Bob,A,4\n,,Total:,6\n", string(b))
}

func TestEnvironmentPrecedence(t *testing.T) {
	path := writeInstance(t, instance.Example())

	t.Setenv(cli.EnvFormat, "json")
	out, _, err := execute(t, "solve", "--input", path)
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)), "env selects json")

	out, _, err = execute(t, "solve", "--input", path, "--format", "csv")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Assignment,Row"), "flag beats env")

	t.Setenv(cli.EnvMaxSize, "3")
	_, _, err = execute(t, "solve", "--input", path)
	assert.ErrorIs(t, err, hungarian.ErrTooLarge)

	_, _, err = execute(t, "solve", "--input", path, "--max-size", "0")
	assert.NoError(t, err)
}

func TestEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "assign.env")
	require.NoError(t, os.WriteFile(envFile, []byte(cli.EnvMethod+"=bogus\n"), 0o600))
	// godotenv.Load sets variables for the whole process; register cleanup first.
	t.Setenv(cli.EnvMethod, "")
	require.NoError(t, os.Unsetenv(cli.EnvMethod))

	var stdout bytes.Buffer
	cmd := cli.RootCmd()
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"--env-file", envFile, "example"})
	err := cmd.Execute()
	assert.ErrorIs(t, err, hungarian.ErrUnsupportedMethod)
}

func TestDebugLogging(t *testing.T) {
	_, stderr, err := execute(t, "--log-level", "debug", "example")
	require.NoError(t, err)
	assert.Contains(t, stderr, "hungarian: cover adjusted")
	assert.Contains(t, stderr, "solved")

	_, stderr, err = execute(t, "--log-level", "error", "example")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestCommandErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		msg  string
	}{
		{"missing input", []string{"solve"}, "required flag"},
		{"bad format", []string{"example", "--format", "xml"}, "unknown format"},
		{"bad method", []string{"example", "--method", "auction"}, "unsupported method"},
		{"bad max size", []string{"example", "--max-size", "-4"}, "invalid max size"},
		{"bad log level", []string{"--log-level", "loud", "example"}, "invalid log level"},
		{"bad extension", []string{"solve", "--input", "problem.txt"}, "unsupported file format"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := execute(t, tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestSolveBadDirection(t *testing.T) {
	path := writeInstance(t, instance.Default())
	_, _, err := execute(t, "solve", "--input", path, "--direction", "sideways")
	assert.ErrorIs(t, err, hungarian.ErrUnknownDirection)
}
