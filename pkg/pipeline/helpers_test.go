package pipeline_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/askiada/go-mapgen/pkg/pipeline"
	"github.com/askiada/go-mapgen/pkg/pipeline/attribute"
	"github.com/askiada/go-mapgen/pkg/pipeline/model"
)

// identity maps inputs in [0, 10000] to themselves.
var identity = model.InterpolateVector{Vector: []model.Point{
	{Threshold: 0, Value: 0},
	{Threshold: 10000, Value: 10000},
}}

func constant(value float64) model.Generator {
	return model.ApplyToX{Generator: model.InterpolateVector{Vector: []model.Point{{Threshold: 0, Value: value}}}}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func run(t *testing.T, cfg model.Config, opts ...pipeline.Option) (*pipeline.Pipeline, *attribute.Store, error) {
	t.Helper()

	opts = append([]pipeline.Option{pipeline.WithLogger(discardLogger())}, opts...)
	pipe, err := pipeline.New(cfg, opts...)
	require.NoError(t, err)

	store, err := pipe.Run(context.Background())

	return pipe, store, err
}

func values(t *testing.T, store *attribute.Store, name string) []float64 {
	t.Helper()

	snap, err := store.Snapshot(name)
	require.NoError(t, err)

	return snap.Values()
}

type recordingHook struct {
	mu        sync.Mutex
	calls     []string
	rows      map[int]int
	snapshots map[int][]string
	finished  bool
}

func newRecordingHook() *recordingHook {
	return &recordingHook{
		rows:      make(map[int]int),
		snapshots: make(map[int][]string),
	}
}

func (h *recordingHook) record(call string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = append(h.calls, call)
}

func (h *recordingHook) New() error {
	h.record("new")
	return nil
}

func (h *recordingHook) PrepareStep(step *model.StepInfo) error {
	h.record("prepare " + step.Label())
	return nil
}

func (h *recordingHook) OnSnapshot(step *model.StepInfo, attribute string, _ time.Duration) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.snapshots[step.Index] = append(h.snapshots[step.Index], attribute)

	return nil
}

func (h *recordingHook) OnRowOutput(step *model.StepInfo, _ time.Duration) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.rows[step.Index]++

	return nil
}

func (h *recordingHook) OnStepCommit(step *model.StepInfo, _ time.Duration) error {
	h.record("commit " + step.Label())
	return nil
}

func (h *recordingHook) Finish() error {
	h.record("finish")
	h.mu.Lock()
	defer h.mu.Unlock()
	h.finished = true

	return nil
}

var _ model.PipelineOption = (*recordingHook)(nil)
