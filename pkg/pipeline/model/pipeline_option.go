package model

import "time"

// PipelineOption defines the interface for pipeline options.
type PipelineOption interface {
	// New initialises the pipeline option.
	New() error

	pipelineStepOption

	// Finish runs after the pipeline is finished, whether it committed or aborted.
	Finish() error
}

// pipelineStepOption defines the interface for step options at the pipeline level.
type pipelineStepOption interface {
	// PrepareStep runs before the step is executed.
	PrepareStep(step *StepInfo) error
	// OnSnapshot runs after the step has taken a snapshot of an attribute it reads.
	OnSnapshot(step *StepInfo, attribute string, snapshotDuration time.Duration) error
	// OnRowOutput runs everytime a row of the step output has been computed.
	OnRowOutput(step *StepInfo, computationDuration time.Duration) error
	// OnStepCommit runs after the step output has been committed to the store.
	OnStepCommit(step *StepInfo, totalDuration time.Duration) error
}
