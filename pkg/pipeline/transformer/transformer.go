package transformer

import (
	"github.com/pkg/errors"

	"github.com/askiada/go-mapgen/pkg/pipeline/model"
)

// Transformer combines the values of two source attributes at one cell.
type Transformer interface {
	// Transform returns the new target value. current is the target value before the step.
	Transform(source0, source1, current float64) float64
}

// New compiles cfg. Every invariant of cfg is checked here, so a returned Transformer never
// fails while cells are processed.
func New(cfg model.Transformer) (Transformer, error) {
	switch trf := cfg.(type) {
	case nil:
		return nil, model.ErrMissingTransformer
	case model.Clusterer:
		clu, err := newClusterer(trf)
		if err != nil {
			return nil, model.WithField(err, "clusterer")
		}

		return clu, nil
	case model.OverwriteIfBelow:
		return overwriteIfBelow{value: trf.Value, threshold: trf.Threshold}, nil
	case model.OverwriteIfAbove:
		return overwriteIfAbove{value: trf.Value, threshold: trf.Threshold}, nil
	default:
		return nil, errors.Wrapf(model.ErrUnknownKind, "transformer %T", cfg)
	}
}

type overwriteIfBelow struct {
	value, threshold float64
}

func (o overwriteIfBelow) Transform(source0, _, current float64) float64 {
	if source0 < o.threshold {
		return o.value
	}

	return current
}

type overwriteIfAbove struct {
	value, threshold float64
}

func (o overwriteIfAbove) Transform(source0, _, current float64) float64 {
	if source0 >= o.threshold {
		return o.value
	}

	return current
}
