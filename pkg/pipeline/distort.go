package pipeline

import (
	"math"

	"github.com/pkg/errors"

	"github.com/askiada/go-mapgen/pkg/pipeline/attribute"
	"github.com/askiada/go-mapgen/pkg/pipeline/generator"
	"github.com/askiada/go-mapgen/pkg/pipeline/model"
)

// distortionSampler reads a grid at (x, y + offset) where the offset comes from a generator.
// Shifted coordinates are clamped to the first and last row.
type distortionSampler struct {
	gen  generator.Generator
	grid *attribute.Grid
}

func newDistortionSampler(gen generator.Generator, grid *attribute.Grid) *distortionSampler {
	return &distortionSampler{gen: gen, grid: grid}
}

// sampleY returns the row to read for row y shifted by offset.
func (d *distortionSampler) sampleY(y int, offset float64) (int, error) {
	if math.IsNaN(offset) || math.IsInf(offset, 0) {
		return 0, errors.Wrapf(model.ErrNonFinite, "offset %v", offset)
	}

	maxY := float64(d.grid.Size().Height - 1)
	shifted := math.Max(0, math.Min(maxY, math.Round(float64(y)+offset)))

	return int(shifted), nil
}

func (d *distortionSampler) sampleRow(y int, out []float64) error {
	// out holds the offsets until each cell is replaced by its sample.
	d.gen.GenerateRow(y, out)

	for x, offset := range out {
		sy, err := d.sampleY(y, offset)
		if err != nil {
			return errors.Wrapf(err, "at (%d, %d)", x, y)
		}

		value, err := d.grid.At(x, sy)
		if err != nil {
			return err
		}

		out[x] = value
	}

	return nil
}
