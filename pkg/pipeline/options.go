package pipeline

import (
	"log/slog"

	"github.com/askiada/go-mapgen/pkg/pipeline/model"
)

type Option func(p *Pipeline)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithWorkers sets how many rows of a step are computed concurrently. Defaults to GOMAXPROCS.
func WithWorkers(workers int) Option {
	return func(p *Pipeline) {
		if workers < 1 {
			workers = 1
		}
		p.workers = workers
	}
}

// WithoutPreflight skips the validation pass. Configuration errors then surface when the
// faulty step runs, after the previous steps have been committed.
func WithoutPreflight() Option {
	return func(p *Pipeline) {
		p.preflight = false
	}
}

// WithHooks registers pipeline options such as measure.PipelineMeasure or drawer.PipelineDrawer.
func WithHooks(hooks ...model.PipelineOption) Option {
	return func(p *Pipeline) {
		p.hooks = append(p.hooks, hooks...)
	}
}
