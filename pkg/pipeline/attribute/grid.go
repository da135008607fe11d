package attribute

import (
	"github.com/pkg/errors"

	"github.com/askiada/go-mapgen/pkg/pipeline/model"
)

// Grid is an immutable copy of an attribute.
type Grid struct {
	name   string
	size   model.Size
	values []float64
}

func newGrid(name string, size model.Size, values []float64) *Grid {
	cpy := make([]float64, len(values))
	copy(cpy, values)

	return &Grid{name: name, size: size, values: cpy}
}

// Name returns the name of the attribute the grid was taken from.
func (g *Grid) Name() string {
	return g.name
}

// Size returns the grid size.
func (g *Grid) Size() model.Size {
	return g.size
}

// At returns the value at (x, y).
func (g *Grid) At(x, y int) (float64, error) {
	if !g.size.Contains(x, y) {
		return 0, errors.Wrapf(model.ErrOutOfBounds, "%s at (%d, %d)", g.name, x, y)
	}

	return g.values[g.size.Index(x, y)], nil
}

// Get returns the value at (x, y). It panics if (x, y) is outside the grid.
func (g *Grid) Get(x, y int) float64 {
	return g.values[g.size.Index(x, y)]
}

// Values returns a copy of all values in row-major order.
func (g *Grid) Values() []float64 {
	cpy := make([]float64, len(g.values))
	copy(cpy, g.values)

	return cpy
}
