package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-mapgen/internal/config"
	"github.com/askiada/go-mapgen/pkg/pipeline/model"
	"github.com/askiada/go-mapgen/pkg/pipeline/sample"
)

func TestLoadIsland(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(filepath.Join("..", "..", "configs", "island.toml"))
	require.NoError(t, err)
	assert.Equal(t, sample.Island(), cfg)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse([]byte(`
name = "small"

[size]
width = 4
height = 2

[[steps]]
  [steps.create_attribute]
  name = "elevation"
  default = 1.5

[[steps]]
  [steps.generator_add]
  attribute = "elevation"
    [steps.generator_add.generator.apply_to_x.generator.gradient]
    value_start = 0.0
    value_end = 10.0
    length = 4.0
`))
	require.NoError(t, err)

	assert.Equal(t, model.Config{
		Name: "small",
		Size: model.Size{Width: 4, Height: 2},
		Steps: []model.Step{
			model.CreateAttribute{Name: "elevation", Default: 1.5},
			model.GeneratorAdd{
				Attribute: "elevation",
				Generator: model.ApplyToX{Generator: model.Gradient{ValueStart: 0, ValueEnd: 10, Length: 4}},
			},
		},
	}, cfg)
}

func TestParseVariants(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		doc   string
		field string
	}{
		"empty step": {
			doc: `
[[steps]]
  [steps.create_attribute]
  name = "elevation"

[[steps]]
`,
			field: "steps[1]",
		},
		"two step variants": {
			doc: `
[[steps]]
  [steps.create_attribute]
  name = "elevation"
  [steps.modify_with_attribute]
  source = "elevation"
  target = "elevation"
`,
			field: "steps[0]",
		},
		"missing generator": {
			doc: `
[[steps]]
  [steps.generator_add]
  attribute = "elevation"
`,
			field: "steps[0].generator_add.generator",
		},
		"nested generator variants": {
			doc: `
[[steps]]
  [steps.distort_along_y]
  attribute = "rainfall"
    [steps.distort_along_y.generator.apply_to_x.generator.gradient]
    length = 2.0
    [steps.distort_along_y.generator.apply_to_x.generator.absolute_gradient]
    length = 2.0
`,
			field: "steps[0].distort_along_y.generator.apply_to_x.generator",
		},
		"missing transformer": {
			doc: `
[[steps]]
  [steps.transform_attribute_2d]
  source0 = "elevation"
  source1 = "elevation"
  target = "elevation"
`,
			field: "steps[0].transform_attribute_2d.transformer",
		},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := config.Parse([]byte(tc.doc))
			require.ErrorIs(t, err, model.ErrUnknownKind)

			var fieldErr *model.FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tc.field, fieldErr.Field)
		})
	}
}

func TestParseInvalidTOML(t *testing.T) {
	t.Parallel()

	_, err := config.Parse([]byte(`name = `))
	assert.Error(t, err)
}
