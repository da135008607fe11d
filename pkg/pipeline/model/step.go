package model

// StepKind names a step variant.
type StepKind string

const (
	CreateAttributeKind      StepKind = "CreateAttribute"
	GeneratorAddKind         StepKind = "GeneratorAdd"
	DistortAlongYKind        StepKind = "DistortAlongY"
	ModifyWithAttributeKind  StepKind = "ModifyWithAttribute"
	TransformAttribute2dKind StepKind = "TransformAttribute2d"
)

// Step is one pipeline operation. The set of implementations is closed.
type Step interface {
	Kind() StepKind
	isStep()
}

// CreateAttribute creates a new attribute filled with Default.
type CreateAttribute struct {
	Name    string
	Default float64
}

// GeneratorAdd adds the output of Generator to every cell of Attribute.
type GeneratorAdd struct {
	Name      string
	Attribute string
	Generator Generator
}

// DistortAlongY replaces every cell of Attribute with the cell found after shifting its y
// coordinate by the output of Generator.
type DistortAlongY struct {
	Attribute string
	Generator Generator
}

// ModifyWithAttribute computes target = max(Minimum, target + source * Percentage / 100).
type ModifyWithAttribute struct {
	Source     string
	Target     string
	Percentage float64
	Minimum    float64
}

// TransformAttribute2d writes Transformer(Source0, Source1) into Target.
type TransformAttribute2d struct {
	Name        string
	Source0     string
	Source1     string
	Target      string
	Transformer Transformer
}

func (CreateAttribute) Kind() StepKind      { return CreateAttributeKind }
func (GeneratorAdd) Kind() StepKind         { return GeneratorAddKind }
func (DistortAlongY) Kind() StepKind        { return DistortAlongYKind }
func (ModifyWithAttribute) Kind() StepKind  { return ModifyWithAttributeKind }
func (TransformAttribute2d) Kind() StepKind { return TransformAttribute2dKind }

func (CreateAttribute) isStep()      {}
func (GeneratorAdd) isStep()         {}
func (DistortAlongY) isStep()        {}
func (ModifyWithAttribute) isStep()  {}
func (TransformAttribute2d) isStep() {}
