package model

import "fmt"

// AttributeRef is an attribute name read or written by a step, together with the field that
// holds it.
type AttributeRef struct {
	Field string
	Name  string
}

// StepInfo describes a step for pipeline options and error reports.
type StepInfo struct {
	Index      int
	Kind       StepKind
	Name       string
	Reads      []AttributeRef
	Writes     AttributeRef
	Concurrent int
}

// Label returns a name unique within a pipeline, used as a graph vertex and metric key.
func (s *StepInfo) Label() string {
	return fmt.Sprintf("#%d %s %s", s.Index, s.Kind, s.Name)
}

// Describe returns the StepInfo of the step at index.
func Describe(index int, step Step) *StepInfo {
	info := &StepInfo{Index: index}
	if step == nil {
		return info
	}

	info.Kind = step.Kind()

	switch stp := step.(type) {
	case CreateAttribute:
		info.Name = stp.Name
		info.Writes = AttributeRef{Field: "name", Name: stp.Name}
	case GeneratorAdd:
		info.Name = stp.Name
		info.Reads = []AttributeRef{{Field: "attribute", Name: stp.Attribute}}
		info.Writes = AttributeRef{Field: "attribute", Name: stp.Attribute}
	case DistortAlongY:
		info.Name = stp.Attribute
		info.Reads = []AttributeRef{{Field: "attribute", Name: stp.Attribute}}
		info.Writes = AttributeRef{Field: "attribute", Name: stp.Attribute}
	case ModifyWithAttribute:
		info.Name = stp.Target
		info.Reads = []AttributeRef{
			{Field: "source", Name: stp.Source},
			{Field: "target", Name: stp.Target},
		}
		info.Writes = AttributeRef{Field: "target", Name: stp.Target}
	case TransformAttribute2d:
		info.Name = stp.Name
		info.Reads = []AttributeRef{
			{Field: "source0", Name: stp.Source0},
			{Field: "source1", Name: stp.Source1},
			{Field: "target", Name: stp.Target},
		}
		info.Writes = AttributeRef{Field: "target", Name: stp.Target}
	}

	return info
}
