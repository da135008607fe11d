package measure

import (
	"time"

	"github.com/askiada/go-mapgen/pkg/pipeline/model"
)

type pipelineMeasure struct {
	Measure
}

func (pm *pipelineMeasure) New() error {
	return nil
}

func (pm *pipelineMeasure) PrepareStep(step *model.StepInfo) error {
	pm.AddMetric(step.Label(), step.Concurrent)

	return nil
}

func (pm *pipelineMeasure) OnSnapshot(step *model.StepInfo, attribute string, snapshotDuration time.Duration) error {
	if mt := pm.GetMetric(step.Label()); mt != nil {
		mt.AddSnapshotDuration(attribute, snapshotDuration)
	}

	return nil
}

func (pm *pipelineMeasure) OnRowOutput(step *model.StepInfo, computationDuration time.Duration) error {
	if mt := pm.GetMetric(step.Label()); mt != nil {
		mt.AddDuration(computationDuration)
	}

	return nil
}

func (pm *pipelineMeasure) OnStepCommit(step *model.StepInfo, totalDuration time.Duration) error {
	if mt := pm.GetMetric(step.Label()); mt != nil {
		mt.SetTotalDuration(totalDuration)
	}

	return nil
}

func (pm *pipelineMeasure) Finish() error {
	return nil
}

// PipelineMeasure records step timings into measure while the pipeline runs.
func PipelineMeasure(measure Measure) model.PipelineOption {
	return &pipelineMeasure{measure}
}
