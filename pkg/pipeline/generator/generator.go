package generator

import (
	"github.com/pkg/errors"

	"github.com/askiada/go-mapgen/pkg/pipeline/model"
)

// Generator evaluates a compiled generator tree.
type Generator interface {
	// Generate returns the value of the cell (x, y).
	Generate(x, y int) float64
	// GenerateRow fills dst with the values of row y, starting at x = 0.
	GenerateRow(y int, dst []float64)
}

// node is one compiled generator. input is the 1d value fed by the closest ApplyTo* ancestor.
type node interface {
	eval(x, y, input float64) float64
}

type tree struct {
	root node
}

func (t *tree) Generate(x, y int) float64 {
	return t.root.eval(float64(x), float64(y), 0)
}

func (t *tree) GenerateRow(y int, dst []float64) {
	fy := float64(y)
	for x := range dst {
		dst[x] = t.root.eval(float64(x), fy, 0)
	}
}

// New compiles cfg for a pipeline of the given size.
func New(cfg model.Generator, size model.Size) (Generator, error) {
	root, err := compile(cfg, size, false)
	if err != nil {
		return nil, err
	}

	return &tree{root: root}, nil
}

func compile(cfg model.Generator, size model.Size, hasInput bool) (node, error) {
	switch gen := cfg.(type) {
	case nil:
		return nil, model.ErrMissingGenerator
	case model.Gradient:
		if !hasInput {
			return nil, model.WithField(model.ErrMissingInput, "gradient")
		}

		grd, err := newGradient(gen.ValueStart, gen.ValueEnd, gen.Start, gen.Length, false)

		return grd, model.WithField(err, "gradient")
	case model.AbsoluteGradient:
		if !hasInput {
			return nil, model.WithField(model.ErrMissingInput, "absolute_gradient")
		}

		grd, err := newGradient(gen.ValueStart, gen.ValueEnd, gen.Start, gen.Length, true)

		return grd, model.WithField(err, "absolute_gradient")
	case model.InterpolateVector:
		if !hasInput {
			return nil, model.WithField(model.ErrMissingInput, "interpolate_vector")
		}

		vec, err := newVector(gen.Vector)

		return vec, model.WithField(err, "interpolate_vector")
	case model.Noise:
		nse, err := newNoise(gen)

		return nse, model.WithField(err, "noise")
	case model.Index:
		return index{width: float64(size.Width)}, nil
	case model.ApplyToX:
		child, err := compile(gen.Generator, size, true)
		if err != nil {
			return nil, model.WithField(err, "apply_to_x.generator")
		}

		return applyToX{child: child}, nil
	case model.ApplyToY:
		child, err := compile(gen.Generator, size, true)
		if err != nil {
			return nil, model.WithField(err, "apply_to_y.generator")
		}

		return applyToY{child: child}, nil
	case model.ApplyToDistance:
		child, err := compile(gen.Generator, size, true)
		if err != nil {
			return nil, model.WithField(err, "apply_to_distance.generator")
		}

		return newApplyToDistance(child, gen.CenterX, gen.CenterY), nil
	default:
		return nil, errors.Wrapf(model.ErrUnknownKind, "generator %T", cfg)
	}
}
