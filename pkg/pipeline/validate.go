package pipeline

import (
	"github.com/pkg/errors"

	"github.com/askiada/go-mapgen/pkg/pipeline/generator"
	"github.com/askiada/go-mapgen/pkg/pipeline/model"
	"github.com/askiada/go-mapgen/pkg/pipeline/transformer"
)

// Validate checks a configuration without computing any cell: the size, attribute names
// resolved in textual order, duplicated attributes, and every generator and transformer.
// Step failures are reported as *StepError.
func Validate(cfg model.Config) error {
	err := cfg.Size.Validate()
	if err != nil {
		return errors.Wrapf(err, "size %dx%d", cfg.Size.Width, cfg.Size.Height)
	}

	known := make(map[string]struct{})

	for idx, step := range cfg.Steps {
		info := model.Describe(idx, step)

		err := validateStep(cfg.Size, known, info, step)
		if err != nil {
			return newStepError(info, err)
		}
	}

	return nil
}

func validateStep(size model.Size, known map[string]struct{}, info *model.StepInfo, step model.Step) error {
	for _, ref := range info.Reads {
		if _, ok := known[ref.Name]; !ok {
			return model.WithField(errors.Wrapf(model.ErrUnknownAttribute, "%q", ref.Name), ref.Field)
		}
	}

	switch stp := step.(type) {
	case model.CreateAttribute:
		if _, ok := known[stp.Name]; ok {
			return model.WithField(errors.Wrapf(model.ErrDuplicateAttribute, "%q", stp.Name), "name")
		}

		known[stp.Name] = struct{}{}
	case model.GeneratorAdd:
		_, err := generator.New(stp.Generator, size)
		if err != nil {
			return model.WithField(err, "generator")
		}
	case model.DistortAlongY:
		_, err := generator.New(stp.Generator, size)
		if err != nil {
			return model.WithField(err, "generator")
		}
	case model.ModifyWithAttribute:
	case model.TransformAttribute2d:
		_, err := transformer.New(stp.Transformer)
		if err != nil {
			return model.WithField(err, "transformer")
		}
	default:
		return errors.Wrapf(model.ErrUnknownKind, "step %T", step)
	}

	return nil
}
