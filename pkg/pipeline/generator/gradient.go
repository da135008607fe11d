package generator

import (
	"math"

	"github.com/pkg/errors"

	"github.com/askiada/go-mapgen/pkg/pipeline/model"
)

type gradient struct {
	valueStart, valueEnd float64
	start, length        float64
	absolute             bool
}

func newGradient(valueStart, valueEnd, start, length float64, absolute bool) (*gradient, error) {
	if length <= 0 {
		return nil, model.WithField(errors.Wrapf(model.ErrZeroLength, "got %v", length), "length")
	}

	return &gradient{
		valueStart: valueStart,
		valueEnd:   valueEnd,
		start:      start,
		length:     length,
		absolute:   absolute,
	}, nil
}

func (g *gradient) eval(_, _, input float64) float64 {
	if g.absolute {
		return lerp(g.valueStart, g.valueEnd, math.Abs(input-g.start)/g.length)
	}

	if input <= g.start {
		return g.valueStart
	}

	return lerp(g.valueStart, g.valueEnd, (input-g.start)/g.length)
}

// lerp interpolates between a and b. factor is clamped to [0, 1].
func lerp(a, b, factor float64) float64 {
	switch {
	case factor <= 0:
		return a
	case factor >= 1:
		return b
	}

	return a + (b-a)*factor
}
