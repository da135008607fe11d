package generator

import (
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
	"github.com/pkg/errors"

	"github.com/askiada/go-mapgen/pkg/pipeline/model"
)

// Perlin parameters: alpha=2, beta=2, n=3 give terrain-like noise.
const (
	perlinAlpha   = 2
	perlinBeta    = 2
	perlinOctaves = 3
)

// source returns coherent noise, roughly in [-1, 1].
type source interface {
	Eval2(x, y float64) float64
}

type perlinSource struct {
	noise *perlin.Perlin
}

func (p perlinSource) Eval2(x, y float64) float64 {
	return p.noise.Noise2D(x, y)
}

type noise struct {
	src                source
	scale              float64
	minValue, maxValue float64
}

func newNoise(cfg model.Noise) (*noise, error) {
	if cfg.Scale <= 0 {
		return nil, model.WithField(errors.Wrapf(model.ErrInvalidScale, "got %v", cfg.Scale), "scale")
	}

	if cfg.MinValue > cfg.MaxValue {
		return nil, model.WithField(
			errors.Wrapf(model.ErrInvalidRange, "min %v, max %v", cfg.MinValue, cfg.MaxValue),
			"min_value",
		)
	}

	var src source

	switch cfg.Algorithm {
	case "", model.Simplex:
		src = opensimplex.New(cfg.Seed)
	case model.Perlin:
		src = perlinSource{noise: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, cfg.Seed)}
	default:
		return nil, model.WithField(errors.Wrapf(model.ErrUnknownKind, "noise algorithm %q", cfg.Algorithm), "algorithm")
	}

	return &noise{
		src:      src,
		scale:    cfg.Scale,
		minValue: cfg.MinValue,
		maxValue: cfg.MaxValue,
	}, nil
}

func (n *noise) eval(x, y, _ float64) float64 {
	raw := n.src.Eval2(x/n.scale, y/n.scale)
	value := n.minValue + (raw+1)/2*(n.maxValue-n.minValue)

	return math.Max(n.minValue, math.Min(n.maxValue, value))
}
