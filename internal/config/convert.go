package config

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/askiada/go-mapgen/pkg/pipeline/model"
)

// variant picks the single non-nil entry of a table. keys and set are parallel.
func variant(keys []string, set []bool) (string, error) {
	chosen := []string{}

	for i, ok := range set {
		if ok {
			chosen = append(chosen, keys[i])
		}
	}

	if len(chosen) != 1 {
		return "", errors.Wrapf(model.ErrUnknownKind, "expected exactly one of %s, got %d (%s)",
			strings.Join(keys, ", "), len(chosen), strings.Join(chosen, ", "))
	}

	return chosen[0], nil
}

// Config converts the document into a pipeline configuration. Shape errors carry the path of the
// offending table, for instance steps[2].generator_add.generator.
func (d Document) Config() (model.Config, error) {
	cfg := model.Config{
		Name:  d.Name,
		Size:  model.Size{Width: d.Size.Width, Height: d.Size.Height},
		Steps: make([]model.Step, 0, len(d.Steps)),
	}

	for idx, doc := range d.Steps {
		step, err := doc.step()
		if err != nil {
			return model.Config{}, model.WithField(err, fmt.Sprintf("steps[%d]", idx))
		}

		cfg.Steps = append(cfg.Steps, step)
	}

	return cfg, nil
}

func (s stepDoc) step() (model.Step, error) {
	key, err := variant(
		[]string{"create_attribute", "generator_add", "distort_along_y", "modify_with_attribute", "transform_attribute_2d"},
		[]bool{s.CreateAttribute != nil, s.GeneratorAdd != nil, s.DistortAlongY != nil, s.ModifyWithAttribute != nil, s.TransformAttribute2d != nil},
	)
	if err != nil {
		return nil, err
	}

	switch key {
	case "create_attribute":
		return model.CreateAttribute{Name: s.CreateAttribute.Name, Default: s.CreateAttribute.Default}, nil
	case "generator_add":
		gen, err := s.GeneratorAdd.Generator.generator()
		if err != nil {
			return nil, model.WithField(err, "generator_add.generator")
		}

		return model.GeneratorAdd{Name: s.GeneratorAdd.Name, Attribute: s.GeneratorAdd.Attribute, Generator: gen}, nil
	case "distort_along_y":
		gen, err := s.DistortAlongY.Generator.generator()
		if err != nil {
			return nil, model.WithField(err, "distort_along_y.generator")
		}

		return model.DistortAlongY{Attribute: s.DistortAlongY.Attribute, Generator: gen}, nil
	case "modify_with_attribute":
		mod := s.ModifyWithAttribute

		return model.ModifyWithAttribute{
			Source:     mod.Source,
			Target:     mod.Target,
			Percentage: mod.Percentage,
			Minimum:    mod.Minimum,
		}, nil
	default:
		trf, err := s.TransformAttribute2d.Transformer.transformer()
		if err != nil {
			return nil, model.WithField(err, "transform_attribute_2d.transformer")
		}

		doc := s.TransformAttribute2d

		return model.TransformAttribute2d{
			Name:        doc.Name,
			Source0:     doc.Source0,
			Source1:     doc.Source1,
			Target:      doc.Target,
			Transformer: trf,
		}, nil
	}
}

func (g generatorDoc) generator() (model.Generator, error) {
	key, err := variant(
		[]string{"gradient", "absolute_gradient", "noise", "apply_to_distance", "apply_to_x", "apply_to_y", "interpolate_vector", "index"},
		[]bool{g.Gradient != nil, g.AbsoluteGradient != nil, g.Noise != nil, g.ApplyToDistance != nil, g.ApplyToX != nil, g.ApplyToY != nil, g.InterpolateVector != nil, g.Index != nil},
	)
	if err != nil {
		return nil, err
	}

	switch key {
	case "gradient":
		grd := g.Gradient

		return model.Gradient{ValueStart: grd.ValueStart, ValueEnd: grd.ValueEnd, Start: grd.Start, Length: grd.Length}, nil
	case "absolute_gradient":
		grd := g.AbsoluteGradient

		return model.AbsoluteGradient{ValueStart: grd.ValueStart, ValueEnd: grd.ValueEnd, Start: grd.Start, Length: grd.Length}, nil
	case "noise":
		nse := g.Noise

		return model.Noise{
			Seed:      nse.Seed,
			Scale:     nse.Scale,
			MinValue:  nse.MinValue,
			MaxValue:  nse.MaxValue,
			Algorithm: model.NoiseAlgorithm(nse.Algorithm),
		}, nil
	case "apply_to_distance":
		child, err := g.ApplyToDistance.Generator.generator()
		if err != nil {
			return nil, model.WithField(err, "apply_to_distance.generator")
		}

		return model.ApplyToDistance{Generator: child, CenterX: g.ApplyToDistance.CenterX, CenterY: g.ApplyToDistance.CenterY}, nil
	case "apply_to_x":
		child, err := g.ApplyToX.Generator.generator()
		if err != nil {
			return nil, model.WithField(err, "apply_to_x.generator")
		}

		return model.ApplyToX{Generator: child}, nil
	case "apply_to_y":
		child, err := g.ApplyToY.Generator.generator()
		if err != nil {
			return nil, model.WithField(err, "apply_to_y.generator")
		}

		return model.ApplyToY{Generator: child}, nil
	case "interpolate_vector":
		points := make([]model.Point, 0, len(g.InterpolateVector.Vector))
		for _, pt := range g.InterpolateVector.Vector {
			points = append(points, model.Point{Threshold: pt.Threshold, Value: pt.Value})
		}

		return model.InterpolateVector{Vector: points}, nil
	default:
		return model.Index{}, nil
	}
}

func (t transformerDoc) transformer() (model.Transformer, error) {
	key, err := variant(
		[]string{"clusterer", "overwrite_if_below", "overwrite_if_above"},
		[]bool{t.Clusterer != nil, t.OverwriteIfBelow != nil, t.OverwriteIfAbove != nil},
	)
	if err != nil {
		return nil, err
	}

	switch key {
	case "clusterer":
		cls := t.Clusterer

		return model.Clusterer{
			Size:            model.Size{Width: cls.Size.Width, Height: cls.Size.Height},
			ClusterIDLookup: cls.ClusterIDLookup,
			Domain0:         model.Domain{Min: cls.Domain0.Min, Max: cls.Domain0.Max},
			Domain1:         model.Domain{Min: cls.Domain1.Min, Max: cls.Domain1.Max},
		}, nil
	case "overwrite_if_below":
		return model.OverwriteIfBelow{Value: t.OverwriteIfBelow.Value, Threshold: t.OverwriteIfBelow.Threshold}, nil
	default:
		return model.OverwriteIfAbove{Value: t.OverwriteIfAbove.Value, Threshold: t.OverwriteIfAbove.Threshold}, nil
	}
}
