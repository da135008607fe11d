package pipeline

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/askiada/go-mapgen/pkg/pipeline/attribute"
	"github.com/askiada/go-mapgen/pkg/pipeline/model"
)

// Pipeline runs a pipeline configuration once.
type Pipeline struct {
	cfg       model.Config
	hooks     []model.PipelineOption
	logger    *slog.Logger
	workers   int
	preflight bool
	runID     string
	startTime time.Time

	mu    sync.Mutex
	state State
}

// New creates a new pipeline.
func New(cfg model.Config, opts ...Option) (*Pipeline, error) {
	pipe := &Pipeline{
		cfg:       cfg,
		logger:    slog.Default(),
		workers:   runtime.GOMAXPROCS(0),
		preflight: true,
		runID:     uuid.NewString(),
		state:     State{Phase: Pending, Step: -1},
	}

	for _, opt := range opts {
		opt(pipe)
	}

	pipe.logger = pipe.logger.With("pipeline", cfg.Name, "run_id", pipe.runID)

	for _, hook := range pipe.hooks {
		err := hook.New()
		if err != nil {
			return nil, errors.Wrap(err, "unable to apply pipeline option")
		}
	}

	return pipe, nil
}

// RunID identifies the run in logs.
func (p *Pipeline) RunID() string {
	return p.runID
}

// State returns the current state of the run.
func (p *Pipeline) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.state
}

func (p *Pipeline) setState(phase Phase, step int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.state = State{Phase: phase, Step: step}
}

func (p *Pipeline) start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state.Phase != Pending {
		return ErrAlreadyRun
	}

	p.state = State{Phase: Running, Step: -1}
	p.startTime = time.Now()

	return nil
}

// Run executes every step in order and returns the store holding the attributes.
//
// On failure the returned store holds the attributes as committed by the steps before the
// failing one; it is nil if the run aborted before its first step.
func (p *Pipeline) Run(ctx context.Context) (*attribute.Store, error) {
	err := p.start()
	if err != nil {
		return nil, err
	}

	p.logger.Info("pipeline started", "steps", len(p.cfg.Steps), "width", p.cfg.Size.Width, "height", p.cfg.Size.Height, "workers", p.workers)

	if p.preflight {
		err = Validate(p.cfg)
		if err != nil {
			step := -1

			var stepErr *StepError
			if errors.As(err, &stepErr) {
				step = stepErr.Index
			}

			return nil, p.abort(step, errors.Wrap(err, "preflight"))
		}
	}

	store, err := attribute.NewStore(p.cfg.Size)
	if err != nil {
		return nil, p.abort(-1, errors.Wrap(err, "size"))
	}

	for idx, step := range p.cfg.Steps {
		err = p.runStep(ctx, store, idx, step)
		if err != nil {
			return store, p.abort(idx, err)
		}
	}

	p.setState(Committed, len(p.cfg.Steps)-1)
	p.logger.Info("pipeline committed", "elapsed", time.Since(p.startTime), "attributes", store.Names())

	return store, p.finishRun()
}

func (p *Pipeline) runStep(ctx context.Context, store *attribute.Store, idx int, step model.Step) error {
	info := model.Describe(idx, step)
	info.Concurrent = p.workers
	p.setState(Running, idx)

	err := ctx.Err()
	if err != nil {
		return newStepError(info, errors.Wrap(err, "pipeline stopped"))
	}

	for _, hook := range p.hooks {
		err = hook.PrepareStep(info)
		if err != nil {
			return newStepError(info, errors.Wrap(err, "unable to run prepare step function"))
		}
	}

	start := time.Now()

	err = p.execute(ctx, store, info, step)
	if err != nil {
		return newStepError(info, err)
	}

	elapsed := time.Since(start)

	for _, hook := range p.hooks {
		err := hook.OnStepCommit(info, elapsed)
		if err != nil {
			return newStepError(info, errors.Wrap(err, "unable to run step commit function"))
		}
	}

	p.logger.Info("step committed", "step", idx, "kind", info.Kind, "name", info.Name, "attribute", info.Writes.Name, "elapsed", elapsed)

	return nil
}

func (p *Pipeline) abort(step int, err error) error {
	p.setState(Aborted, step)
	p.logger.Error("pipeline aborted", "step", step, "error", err)

	finishErr := p.finishRun()
	if finishErr != nil {
		p.logger.Error("unable to finish pipeline options", "error", finishErr)
	}

	return err
}

func (p *Pipeline) finishRun() error {
	for _, hook := range p.hooks {
		err := hook.Finish()
		if err != nil {
			return errors.Wrap(err, "unable to finish pipeline option")
		}
	}

	return nil
}
