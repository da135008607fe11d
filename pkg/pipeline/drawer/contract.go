package drawer

import (
	"io"
	"time"

	"github.com/askiada/go-mapgen/pkg/pipeline/measure"
)

// Drawer is an interface that defines the methods for drawing the lineage of a pipeline.
type Drawer interface {
	// AddStep adds a step vertex to the pipeline drawer.
	AddStep(label string) error
	// AddAttribute adds a vertex for one version of an attribute.
	AddAttribute(version string) error
	// AddLink adds a link between two vertices.
	AddLink(parent, child string) error
	// Draw writes the pipeline graph to its destination.
	Draw() error
	// DrawTo writes the pipeline graph to wrt.
	DrawTo(wrt io.Writer) error
	// SetTotalTime sets the time elapsed since startTime on a vertex.
	SetTotalTime(vertex string, startTime time.Time) error
	// AddMeasure adds a measure to the pipeline drawer.
	AddMeasure(measure measure.Measure) error
}
