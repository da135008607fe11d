package model

// GeneratorKind names a generator variant.
type GeneratorKind string

const (
	GradientKind          GeneratorKind = "Gradient"
	AbsoluteGradientKind  GeneratorKind = "AbsoluteGradient"
	NoiseKind             GeneratorKind = "Noise"
	ApplyToDistanceKind   GeneratorKind = "ApplyToDistance"
	ApplyToXKind          GeneratorKind = "ApplyToX"
	ApplyToYKind          GeneratorKind = "ApplyToY"
	InterpolateVectorKind GeneratorKind = "InterpolateVector"
	IndexKind             GeneratorKind = "Index"
)

// Generator is a pure coordinate to scalar function, possibly wrapping another generator.
// The set of implementations is closed.
type Generator interface {
	Kind() GeneratorKind
	isGenerator()
}

// NoiseAlgorithm selects the coherent noise implementation.
type NoiseAlgorithm string

const (
	Simplex NoiseAlgorithm = "simplex"
	Perlin  NoiseAlgorithm = "perlin"
)

// Gradient maps a 1d input to ValueStart before Start, ValueEnd after Start+Length and
// interpolates linearly in between.
type Gradient struct {
	ValueStart float64
	ValueEnd   float64
	Start      float64
	Length     float64
}

// AbsoluteGradient is a Gradient applied to the absolute distance between the input and Start.
type AbsoluteGradient struct {
	ValueStart float64
	ValueEnd   float64
	Start      float64
	Length     float64
}

// Noise is seeded coherent noise remapped into [MinValue, MaxValue].
// An empty Algorithm means Simplex.
type Noise struct {
	Seed      int64
	Scale     float64
	MinValue  float64
	MaxValue  float64
	Algorithm NoiseAlgorithm
}

// ApplyToDistance feeds the distance to the center into Generator.
type ApplyToDistance struct {
	Generator Generator
	CenterX   float64
	CenterY   float64
}

// ApplyToX feeds the x coordinate into Generator.
type ApplyToX struct {
	Generator Generator
}

// ApplyToY feeds the y coordinate into Generator.
type ApplyToY struct {
	Generator Generator
}

// Point is a control point of InterpolateVector.
type Point struct {
	Threshold float64
	Value     float64
}

// InterpolateVector interpolates linearly between control points sorted by threshold.
type InterpolateVector struct {
	Vector []Point
}

// Index generates the row-major index of each cell.
type Index struct{}

func (Gradient) Kind() GeneratorKind          { return GradientKind }
func (AbsoluteGradient) Kind() GeneratorKind  { return AbsoluteGradientKind }
func (Noise) Kind() GeneratorKind             { return NoiseKind }
func (ApplyToDistance) Kind() GeneratorKind   { return ApplyToDistanceKind }
func (ApplyToX) Kind() GeneratorKind          { return ApplyToXKind }
func (ApplyToY) Kind() GeneratorKind          { return ApplyToYKind }
func (InterpolateVector) Kind() GeneratorKind { return InterpolateVectorKind }
func (Index) Kind() GeneratorKind             { return IndexKind }

func (Gradient) isGenerator()          {}
func (AbsoluteGradient) isGenerator()  {}
func (Noise) isGenerator()             {}
func (ApplyToDistance) isGenerator()   {}
func (ApplyToX) isGenerator()          {}
func (ApplyToY) isGenerator()          {}
func (InterpolateVector) isGenerator() {}
func (Index) isGenerator()             {}
