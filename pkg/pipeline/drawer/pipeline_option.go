package drawer

import (
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-mapgen/pkg/pipeline/measure"
	"github.com/askiada/go-mapgen/pkg/pipeline/model"
)

const (
	// StartVertex links to every attribute creation.
	StartVertex = "start"
	// EndVertex is linked from the final version of every attribute.
	EndVertex = "end"
)

type pipelineDrawer struct {
	Drawer
	m         measure.Measure
	startTime time.Time
	// latest maps an attribute name to the vertex of its last committed version.
	latest map[string]string
}

func (pd *pipelineDrawer) New() error {
	err := pd.AddStep(StartVertex)
	if err != nil {
		return errors.Wrap(err, "unable to add start step to drawer")
	}

	err = pd.AddStep(EndVertex)
	if err != nil {
		return errors.Wrap(err, "unable to add end step to drawer")
	}

	return nil
}

func (pd *pipelineDrawer) PrepareStep(step *model.StepInfo) error {
	label := step.Label()

	err := pd.AddStep(label)
	if err != nil {
		return err
	}

	if len(step.Reads) == 0 {
		return pd.AddLink(StartVertex, label)
	}

	for _, ref := range step.Reads {
		version, ok := pd.latest[ref.Name]
		if !ok {
			continue
		}

		err := pd.AddLink(version, label)
		if err != nil {
			return err
		}
	}

	return nil
}

func (pd *pipelineDrawer) OnSnapshot(step *model.StepInfo, attribute string, snapshotDuration time.Duration) error {
	return nil
}

func (pd *pipelineDrawer) OnRowOutput(step *model.StepInfo, computationDuration time.Duration) error {
	return nil
}

func (pd *pipelineDrawer) OnStepCommit(step *model.StepInfo, totalDuration time.Duration) error {
	version := AttributeVersion(step.Writes.Name, step.Index)

	err := pd.AddAttribute(version)
	if err != nil {
		return err
	}

	err = pd.AddLink(step.Label(), version)
	if err != nil {
		return err
	}

	pd.latest[step.Writes.Name] = version

	return nil
}

func (pd *pipelineDrawer) Finish() error {
	names := make([]string, 0, len(pd.latest))
	for name := range pd.latest {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		err := pd.AddLink(pd.latest[name], EndVertex)
		if err != nil {
			return err
		}
	}

	if pd.m != nil {
		err := pd.SetTotalTime(EndVertex, pd.startTime)
		if err != nil {
			return errors.Wrap(err, "unable to set total time")
		}

		err = pd.AddMeasure(pd.m)
		if err != nil {
			return errors.Wrap(err, "unable to add measure")
		}
	}

	err := pd.Draw()
	if err != nil {
		return errors.Wrap(err, "unable to draw pipeline")
	}

	return nil
}

// PipelineDrawer draws the attribute lineage of the pipeline when it finishes. Step timings
// are added to the graph when measure is not nil; it must be registered as a hook too.
func PipelineDrawer(drawer Drawer, measure measure.Measure) model.PipelineOption {
	return &pipelineDrawer{
		Drawer:    drawer,
		m:         measure,
		startTime: time.Now(),
		latest:    make(map[string]string),
	}
}
