package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/playgrounds/internal/logger"
)

const payloadJSON = `[
  {"description": "Buy milk", "completed": false, "due_on": "2015-07-08"},
  {"description": "Walk dog", "completed": true}
]`

const mixedJSON = `[
  {"description": "Buy milk", "completed": false},
  {"description": "Walk dog"},
  {"completed": 1}
]`

// testEnvPrefix keeps the tests clear of any PLAYGROUND_* variables exported
// in the developer's shell.
const testEnvPrefix = "PLAYGROUND_CLI_TEST"

type result struct {
	code           int
	stdout, stderr string
}

func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	code := Run(args, Options{
		Stdin:  strings.NewReader(stdin),
		Stdout: &out,
		Stderr: &errOut,
		Logger:    logger.Test(t),
		EnvPrefix: testEnvPrefix,
	})
	return result{code: code, stdout: out.String(), stderr: errOut.String()}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func findCmd(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

func TestRootCmd_BasicStructure(t *testing.T) {
	t.Parallel()

	root := (&app{}).rootCmd()
	assert.Equal(t, "playground", root.Use)
	for _, flag := range []string{"config", "theme", "log-level", "collect-all"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), "persistent flag %q", flag)
	}
	for _, name := range []string{"parse", "demo", "browse"} {
		assert.NotNil(t, findCmd(root, name), "subcommand %q", name)
	}

	parse := findCmd(root, "parse")
	require.NotNil(t, parse)
	for _, flag := range []string{"try", "json", "format"} {
		assert.NotNil(t, parse.Flags().Lookup(flag), "parse flag %q", flag)
	}
}

func TestRun_Parse(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "todos.json", payloadJSON)
	r := run(t, "", "--theme", "mono", "parse", path)

	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, `ok  1. TodoItem(description: "Buy milk", dueDate: "2015-07-08", completed: false)`)
	assert.Contains(t, r.stdout, `ok  2. TodoItem(description: "Walk dog", dueDate: nil, completed: true)`)
	assert.Contains(t, r.stdout, "Parsed  ok 2  x 0  Total 2")
	assert.Empty(t, r.stderr)
}

func TestRun_ParseYAMLFromStdin(t *testing.T) {
	t.Parallel()

	stdin := "- description: Buy milk\n  completed: true\n"
	r := run(t, stdin, "--theme", "mono", "parse", "--format", "yaml", "-")

	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, `ok  1. TodoItem(description: "Buy milk", dueDate: nil, completed: true)`)
}

func TestRun_ParseInvalidRecords(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "todos.json", mixedJSON)
	r := run(t, "", "--theme", "mono", "parse", path)

	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stdout, "ok  1.")
	assert.Contains(t, r.stderr, `x  2. completed invalid: missing "completed"`)
	assert.Contains(t, r.stderr, `x  3. description invalid: missing "description"`)
	assert.Contains(t, r.stderr, "x 2 of 3 records invalid")
	assert.NotContains(t, r.stderr, "Hint:")
}

func TestRun_ParseCollectAll(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "todos.json", `{"completed": 1}`)
	r := run(t, "", "--theme", "mono", "--collect-all", "parse", path)

	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, `description invalid: missing "description"; completed invalid: "completed" is float64, want bool`)
}

func TestRun_ParseTry(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "todos.json", mixedJSON)
	r := run(t, "", "--theme", "mono", "parse", "--try", path)

	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "x  2. no value")
	assert.Contains(t, r.stderr, "x  3. no value")
	assert.NotContains(t, r.stderr, "invalid:")
}

func TestRun_ParseJSONOutput(t *testing.T) {
	t.Parallel()

	r := run(t, payloadJSON, "parse", "--json")

	require.Equal(t, 0, r.code, r.stderr)
	assert.JSONEq(t, `[
		{"description": "Buy milk", "completed": false, "due_on": "2015-07-08"},
		{"description": "Walk dog", "completed": true, "due_on": null}
	]`, r.stdout)
}

func TestRun_ParseLoadFailure(t *testing.T) {
	t.Parallel()

	r := run(t, "", "--theme", "mono", "parse", filepath.Join(t.TempDir(), "missing.json"))
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "x load: read file:")

	r = run(t, "", "parse", "--format", "toml")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.stderr, `--format: want json or yaml, got "toml"`)
}

func TestRun_IgnoresShellEnvironment(t *testing.T) {
	t.Setenv("PLAYGROUND_THEME", "neon")
	t.Setenv("PLAYGROUND_COLLECT_ALL", "true")

	path := writeFile(t, "todos.json", `{"completed": 1}`)
	r := run(t, "", "parse", path)
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, `✖  1. description invalid: missing "description"`)
	assert.NotContains(t, r.stderr, "completed invalid")

	t.Setenv(testEnvPrefix+"_THEME", "mono")
	r = run(t, "", "parse", path)
	assert.Contains(t, r.stderr, `x  1. description invalid`)
}

func TestRun_ParseTrailingData(t *testing.T) {
	t.Parallel()

	r := run(t, `{"description":"A","completed":true} {"description":"B","completed":true}`, "--theme", "mono", "parse")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "x load: json decode: payload must hold a single document")
	assert.NotContains(t, r.stdout, "ok  1.")
}

func TestRun_ConfigFile(t *testing.T) {
	t.Parallel()

	cfg := writeFile(t, "playground.yaml", "theme: mono\nparser:\n  collect_all: true\n")
	path := writeFile(t, "todos.json", `{"completed": "yes"}`)
	r := run(t, "", "--config", cfg, "parse", path)

	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, `x  1. description invalid: missing "description"; completed invalid`)

	r = run(t, "", "--config", filepath.Join(t.TempDir(), "nope.yaml"), "demo")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "config:")
}

func TestRun_Demo(t *testing.T) {
	t.Parallel()

	r := run(t, "", "--theme", "mono", "demo")
	require.Equal(t, 0, r.code, r.stderr)
	for _, name := range []string{"errors", "styling", "values", "sequences"} {
		assert.Contains(t, r.stdout, name)
	}
	assert.Contains(t, r.stdout, "Value and reference semantics")

	r = run(t, "", "--theme", "mono", "demo", "sequences")
	require.Equal(t, 0, r.code, r.stderr)
	assert.NotEmpty(t, r.stdout)

	r = run(t, "", "demo", "nope")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.stderr, `unknown demo "nope" (have errors, styling, values, sequences)`)
	assert.Contains(t, r.stderr, "Hint: run `playground help` to see usage")
}

func TestRun_Usage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "missing subcommand", args: nil, want: "missing subcommand"},
		{name: "unknown subcommand", args: []string{"bogus"}, want: `unknown command "bogus"`},
		{name: "unknown flag", args: []string{"--bogus"}, want: "unknown flag: --bogus"},
		{name: "too many args", args: []string{"parse", "a.json", "b.json"}, want: "accepts at most 1 arg(s)"},
		{name: "browse without file", args: []string{"browse"}, want: "accepts 1 arg(s)"},
		{name: "browse stdin", args: []string{"browse", "-"}, want: "pass a file, not stdin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := run(t, "", tt.args...)
			assert.Equal(t, 2, r.code)
			assert.Contains(t, r.stderr, tt.want)
		})
	}
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	r := run(t, "", "--help")
	assert.Equal(t, 0, r.code)
	assert.Contains(t, r.stdout, "Usage:")
	assert.Contains(t, r.stdout, "browse")
}
