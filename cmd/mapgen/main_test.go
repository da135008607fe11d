package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-mapgen/pkg/pipeline/model"
)

const smallDocument = `
name = "strip"

[size]
width = 8
height = 4

[[steps]]
  [steps.create_attribute]
  name = "elevation"

[[steps]]
  [steps.generator_add]
  attribute = "elevation"
    [steps.generator_add.generator.apply_to_x.generator.gradient]
    value_start = 0.0
    value_end = 70.0
    length = 7.0
`

func writeDocument(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pipeline.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRun(t *testing.T) {
	path := writeDocument(t, smallDocument)
	dot := filepath.Join(t.TempDir(), "pipeline.dot")

	var out bytes.Buffer
	err := run(context.Background(), []string{"-log-format", "json", "-workers", "2", "-dot", dot, path}, &out)
	require.NoError(t, err)

	var summary map[string]any
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))

		if entry["msg"] == "attribute" {
			summary = entry
		}
	}

	require.NotNil(t, summary)
	assert.Equal(t, "elevation", summary["name"])
	assert.InDelta(t, 0.0, summary["min"], 1e-9)
	assert.InDelta(t, 70.0, summary["max"], 1e-9)
	assert.InDelta(t, 35.0, summary["mean"], 1e-9)
	assert.Len(t, summary["checksum"], 16)

	graph, err := os.ReadFile(dot)
	require.NoError(t, err)
	assert.Contains(t, string(graph), `"elevation@1" -> "end"`)
}

func TestRunPipelineError(t *testing.T) {
	path := writeDocument(t, `
[size]
width = 2
height = 2

[[steps]]
  [steps.generator_add]
  attribute = "elevation"
    [steps.generator_add.generator.apply_to_x.generator.gradient]
    length = 1.0
`)

	var out bytes.Buffer
	err := run(context.Background(), []string{path}, &out)
	require.ErrorIs(t, err, model.ErrUnknownAttribute)
	assert.NotErrorIs(t, err, errUsage)
}

func TestRunUsage(t *testing.T) {
	tcs := map[string][]string{
		"no document":    {},
		"two documents":  {"a.toml", "b.toml"},
		"unknown flag":   {"-frobnicate", "a.toml"},
		"invalid format": {"-log-format", "xml", "a.toml"},
	}
	for name, args := range tcs {
		args := args
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(context.Background(), args, &out)
			assert.ErrorIs(t, err, errUsage)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var out bytes.Buffer

	logger := newLogger("warn", "text", &out)
	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "shown")
}
