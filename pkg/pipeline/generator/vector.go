package generator

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/askiada/go-mapgen/pkg/pipeline/model"
)

type vector struct {
	points []model.Point
}

func newVector(points []model.Point) (*vector, error) {
	if len(points) == 0 {
		return nil, model.WithField(errors.Wrap(model.ErrVectorOrder, "no control points"), "vector")
	}

	for i := 1; i < len(points); i++ {
		if points[i].Threshold <= points[i-1].Threshold {
			return nil, model.WithField(
				errors.Wrapf(model.ErrVectorOrder, "threshold %v follows %v", points[i].Threshold, points[i-1].Threshold),
				"vector",
			)
		}
	}

	cpy := make([]model.Point, len(points))
	copy(cpy, points)

	return &vector{points: cpy}, nil
}

func (v *vector) eval(_, _, input float64) float64 {
	first, last := v.points[0], v.points[len(v.points)-1]

	if input <= first.Threshold {
		return first.Value
	}

	if input >= last.Threshold {
		return last.Value
	}

	// idx >= 1 because input > first.Threshold.
	idx := sort.Search(len(v.points), func(i int) bool {
		return v.points[i].Threshold >= input
	})
	lo, hi := v.points[idx-1], v.points[idx]

	return lo.Value + (hi.Value-lo.Value)*(input-lo.Threshold)/(hi.Threshold-lo.Threshold)
}
