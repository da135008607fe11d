package drawer_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-mapgen/pkg/pipeline"
	"github.com/askiada/go-mapgen/pkg/pipeline/drawer"
	"github.com/askiada/go-mapgen/pkg/pipeline/measure"
	"github.com/askiada/go-mapgen/pkg/pipeline/model"
)

func lineageConfig() model.Config {
	return model.Config{
		Name: "lineage",
		Size: model.Size{Width: 3, Height: 2},
		Steps: []model.Step{
			model.CreateAttribute{Name: "elevation"},
			model.GeneratorAdd{Name: "base", Attribute: "elevation", Generator: model.Index{}},
			model.CreateAttribute{Name: "temperature", Default: 20},
			model.ModifyWithAttribute{Source: "elevation", Target: "temperature", Percentage: -10},
		},
	}
}

func runDrawn(t *testing.T, withMeasure bool) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pipeline.dot")
	hooks := []model.PipelineOption{}

	var msr measure.Measure
	if withMeasure {
		msr = measure.NewDefaultMeasure()
		hooks = append(hooks, measure.PipelineMeasure(msr))
	}

	hooks = append(hooks, drawer.PipelineDrawer(drawer.NewDOTDrawer(path), msr))

	pipe, err := pipeline.New(lineageConfig(),
		pipeline.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		pipeline.WithHooks(hooks...),
	)
	require.NoError(t, err)

	_, err = pipe.Run(context.Background())
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(content)
}

func TestPipelineDrawerLineage(t *testing.T) {
	t.Parallel()

	out := runDrawn(t, false)

	assert.Contains(t, out, "strict digraph")

	edges := []string{
		`"start" -> "#0 CreateAttribute elevation"`,
		`"#0 CreateAttribute elevation" -> "elevation@0"`,
		`"elevation@0" -> "#1 GeneratorAdd base"`,
		`"#1 GeneratorAdd base" -> "elevation@1"`,
		`"start" -> "#2 CreateAttribute temperature"`,
		`"#2 CreateAttribute temperature" -> "temperature@2"`,
		`"elevation@1" -> "#3 ModifyWithAttribute temperature"`,
		`"temperature@2" -> "#3 ModifyWithAttribute temperature"`,
		`"#3 ModifyWithAttribute temperature" -> "temperature@3"`,
		`"elevation@1" -> "end"`,
		`"temperature@3" -> "end"`,
	}
	for _, edge := range edges {
		assert.Contains(t, out, edge)
	}

	assert.NotContains(t, out, `"elevation@0" -> "end"`)
	assert.NotContains(t, out, `"temperature@2" -> "end"`)
}

func TestPipelineDrawerStableOutput(t *testing.T) {
	t.Parallel()

	assert.Equal(t, runDrawn(t, false), runDrawn(t, false))
}

func TestPipelineDrawerWithMeasure(t *testing.T) {
	t.Parallel()

	out := runDrawn(t, true)

	assert.Contains(t, out, "2 rows, avg")
	assert.Contains(t, out, "end: ")
	assert.Contains(t, out, `fontcolor="blue"`)
}

func TestDOTDrawer(t *testing.T) {
	t.Parallel()

	d := drawer.NewDOTDrawer("")
	require.NoError(t, d.AddStep("#0 CreateAttribute elevation"))
	require.NoError(t, d.AddAttribute("elevation@0"))
	require.NoError(t, d.AddLink("#0 CreateAttribute elevation", "elevation@0"))
	require.NoError(t, d.AddLink("#0 CreateAttribute elevation", "elevation@0"))
	require.Error(t, d.AddLink("#0 CreateAttribute elevation", "missing"))
	require.Error(t, d.AddStep("#0 CreateAttribute elevation"))

	var buf bytes.Buffer
	require.NoError(t, d.DrawTo(&buf))

	out := buf.String()
	assert.Contains(t, out, `"#0 CreateAttribute elevation" -> "elevation@0"`)
	assert.Contains(t, out, `shape="box"`)
	assert.Contains(t, out, `shape="ellipse"`)
}

func TestAddMeasureColours(t *testing.T) {
	t.Parallel()

	d := drawer.NewDOTDrawer("")
	require.NoError(t, d.AddAttribute("elevation@0"))
	require.NoError(t, d.AddAttribute("temperature@1"))
	require.NoError(t, d.AddStep("#2 ModifyWithAttribute temperature"))
	require.NoError(t, d.AddLink("elevation@0", "#2 ModifyWithAttribute temperature"))
	require.NoError(t, d.AddLink("temperature@1", "#2 ModifyWithAttribute temperature"))

	msr := measure.NewDefaultMeasure()
	mt := msr.AddMetric("#2 ModifyWithAttribute temperature", 1)
	mt.AddSnapshotDuration("elevation", 2*time.Microsecond)
	mt.AddSnapshotDuration("temperature", 4*time.Microsecond)
	mt.AddDuration(time.Millisecond)

	require.NoError(t, d.AddMeasure(msr))

	var buf bytes.Buffer
	require.NoError(t, d.DrawTo(&buf))

	out := buf.String()
	assert.Contains(t, strings.ToLower(out), `color="#0000f0"`)
	assert.Contains(t, strings.ToLower(out), `color="#f00000"`)
	assert.Contains(t, out, "1 rows, avg 1ms")
}

func TestAddMeasureWithoutSnapshots(t *testing.T) {
	t.Parallel()

	d := drawer.NewDOTDrawer("")
	require.NoError(t, d.AddStep("#0 CreateAttribute elevation"))

	msr := measure.NewDefaultMeasure()
	msr.AddMetric("#0 CreateAttribute elevation", 1)

	assert.NoError(t, d.AddMeasure(msr))
}

func TestAttributeVersion(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "elevation@3", drawer.AttributeVersion("elevation", 3))
	assert.Equal(t, "sea@level", drawer.AttributeName(drawer.AttributeVersion("sea@level", 0)))
	assert.Equal(t, "plain", drawer.AttributeName("plain"))
}
