package playground

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/playgrounds/internal/logger"
	"github.com/idilsaglam/playgrounds/internal/model"
	"github.com/idilsaglam/playgrounds/internal/ui"
)

func newRegistry(t *testing.T) *Registry {
	t.Helper()
	lggr := logger.Test(t)
	return NewRegistry(lggr, model.NewParser(lggr))
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	r := newRegistry(t)
	assert.Equal(t, []string{"errors", "styling", "values", "sequences"}, r.Names())

	d, ok := r.Get("values")
	require.True(t, ok)
	assert.Equal(t, "Value and reference semantics", d.Title)

	_, ok = r.Get("nope")
	assert.False(t, ok)

	demos := r.Demos()
	demos[0].Name = "mutated"
	assert.Equal(t, "errors", r.Names()[0])
}

func TestErrorHandling(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	p := ui.NewPrinter(&out, &errOut, "mono")
	require.NoError(t, ErrorHandling(p, logger.Test(t)))

	stdout := out.String()
	// Explicit x2, per-field x3, collapse x2; the collect-all parser has no hook.
	assert.Equal(t, 7, strings.Count(stdout, "parsing complete!"))
	assert.Contains(t, stdout, `ok TodoItem(description: "Facebook app and contest", dueDate: "2015-07-08", completed: false)`)
	assert.Contains(t, stdout, "ok The todo item parsing was a success! 🎉")
	assert.Contains(t, stdout, "The todo item parsing wasn't a success! 👻")

	stderr := errOut.String()
	assert.Contains(t, stderr, `x 😱 the data is invalid!!! (description invalid: missing "description")`)
	assert.Contains(t, stderr, "bad description: ")
	assert.Contains(t, stderr, "bad completed flag: ")
	assert.Contains(t, stderr, "bad due date: ")
	assert.Contains(t, stderr, `description invalid: "description" is empty`)
	assert.Contains(t, stderr, `completed invalid: missing "completed"`)
	assert.Contains(t, stderr, `due date invalid: "due_on" is bool, want string`)
}

func TestRunAll(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p := ui.NewPrinter(&out, &out, "mono")
	require.NoError(t, newRegistry(t).RunAll(p))

	for _, d := range newRegistry(t).Demos() {
		assert.Contains(t, out.String(), d.Title)
	}
}
