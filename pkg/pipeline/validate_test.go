package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-mapgen/pkg/pipeline"
	"github.com/askiada/go-mapgen/pkg/pipeline/model"
	"github.com/askiada/go-mapgen/pkg/pipeline/sample"
)

func TestValidateSample(t *testing.T) {
	t.Parallel()

	assert.NoError(t, pipeline.Validate(sample.Island()))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	size := model.Size{Width: 10, Height: 10}

	tcs := map[string]struct {
		cfg   model.Config
		err   error
		index int
		field string
	}{
		"duplicate attribute": {
			cfg: model.Config{Size: size, Steps: []model.Step{
				model.CreateAttribute{Name: "elevation"},
				model.CreateAttribute{Name: "elevation"},
			}},
			err:   model.ErrDuplicateAttribute,
			index: 1,
			field: "name",
		},
		"attribute used before creation": {
			cfg: model.Config{Size: size, Steps: []model.Step{
				model.GeneratorAdd{Attribute: "elevation", Generator: model.Index{}},
				model.CreateAttribute{Name: "elevation"},
			}},
			err:   model.ErrUnknownAttribute,
			index: 0,
			field: "attribute",
		},
		"unknown modify source": {
			cfg: model.Config{Size: size, Steps: []model.Step{
				model.CreateAttribute{Name: "temperature"},
				model.ModifyWithAttribute{Source: "elevation", Target: "temperature"},
			}},
			err:   model.ErrUnknownAttribute,
			index: 1,
			field: "source",
		},
		"unknown transform target": {
			cfg: model.Config{Size: size, Steps: []model.Step{
				model.CreateAttribute{Name: "elevation"},
				model.TransformAttribute2d{
					Source0: "elevation", Source1: "elevation", Target: "biome",
					Transformer: model.OverwriteIfAbove{},
				},
			}},
			err:   model.ErrUnknownAttribute,
			index: 1,
			field: "target",
		},
		"zero length gradient": {
			cfg: model.Config{Size: size, Steps: []model.Step{
				model.CreateAttribute{Name: "elevation"},
				model.GeneratorAdd{Attribute: "elevation", Generator: model.ApplyToDistance{Generator: model.Gradient{Length: 0}}},
			}},
			err:   model.ErrZeroLength,
			index: 1,
			field: "generator.apply_to_distance.generator.gradient.length",
		},
		"distortion without input": {
			cfg: model.Config{Size: size, Steps: []model.Step{
				model.CreateAttribute{Name: "rainfall"},
				model.DistortAlongY{Attribute: "rainfall", Generator: model.Gradient{Length: 3}},
			}},
			err:   model.ErrMissingInput,
			index: 1,
			field: "generator.gradient",
		},
		"lookup length": {
			cfg: model.Config{Size: size, Steps: []model.Step{
				model.CreateAttribute{Name: "elevation"},
				model.TransformAttribute2d{
					Source0: "elevation", Source1: "elevation", Target: "elevation",
					Transformer: model.Clusterer{Size: model.Size{Width: 2, Height: 2}},
				},
			}},
			err:   model.ErrLookupLength,
			index: 1,
			field: "transformer.clusterer.cluster_id_lookup",
		},
		"missing transformer": {
			cfg: model.Config{Size: size, Steps: []model.Step{
				model.CreateAttribute{Name: "elevation"},
				model.TransformAttribute2d{Source0: "elevation", Source1: "elevation", Target: "elevation"},
			}},
			err:   model.ErrMissingTransformer,
			index: 1,
			field: "transformer",
		},
		"nil step": {
			cfg:   model.Config{Size: size, Steps: []model.Step{nil}},
			err:   model.ErrUnknownKind,
			index: 0,
		},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := pipeline.Validate(tc.cfg)
			require.ErrorIs(t, err, tc.err)
			assert.ErrorIs(t, err, model.ErrConfig)

			var stepErr *pipeline.StepError
			require.ErrorAs(t, err, &stepErr)
			assert.Equal(t, tc.index, stepErr.Index)
			assert.Equal(t, tc.field, stepErr.Field)
		})
	}
}

func TestValidateSize(t *testing.T) {
	t.Parallel()

	err := pipeline.Validate(model.Config{Size: model.Size{Width: 10}})
	assert.ErrorIs(t, err, model.ErrInvalidSize)
}
