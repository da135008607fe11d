package config

import (
	"os"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"

	"github.com/askiada/go-mapgen/pkg/pipeline/model"
)

// Document is the TOML form of a pipeline. Each step, generator and transformer table sets
// exactly one of its variant keys.
type Document struct {
	Name  string    `toml:"name"`
	Size  sizeDoc   `toml:"size"`
	Steps []stepDoc `toml:"steps"`
}

type sizeDoc struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type stepDoc struct {
	CreateAttribute      *createAttributeDoc      `toml:"create_attribute"`
	GeneratorAdd         *generatorAddDoc         `toml:"generator_add"`
	DistortAlongY        *distortAlongYDoc        `toml:"distort_along_y"`
	ModifyWithAttribute  *modifyWithAttributeDoc  `toml:"modify_with_attribute"`
	TransformAttribute2d *transformAttribute2dDoc `toml:"transform_attribute_2d"`
}

type createAttributeDoc struct {
	Name    string  `toml:"name"`
	Default float64 `toml:"default"`
}

type generatorAddDoc struct {
	Name      string       `toml:"name"`
	Attribute string       `toml:"attribute"`
	Generator generatorDoc `toml:"generator"`
}

type distortAlongYDoc struct {
	Attribute string       `toml:"attribute"`
	Generator generatorDoc `toml:"generator"`
}

type modifyWithAttributeDoc struct {
	Source     string  `toml:"source"`
	Target     string  `toml:"target"`
	Percentage float64 `toml:"percentage"`
	Minimum    float64 `toml:"minimum"`
}

type transformAttribute2dDoc struct {
	Name        string         `toml:"name"`
	Source0     string         `toml:"source0"`
	Source1     string         `toml:"source1"`
	Target      string         `toml:"target"`
	Transformer transformerDoc `toml:"transformer"`
}

type generatorDoc struct {
	Gradient          *gradientDoc        `toml:"gradient"`
	AbsoluteGradient  *gradientDoc        `toml:"absolute_gradient"`
	Noise             *noiseDoc           `toml:"noise"`
	ApplyToDistance   *applyToDistanceDoc `toml:"apply_to_distance"`
	ApplyToX          *applyToAxisDoc     `toml:"apply_to_x"`
	ApplyToY          *applyToAxisDoc     `toml:"apply_to_y"`
	InterpolateVector *vectorDoc          `toml:"interpolate_vector"`
	Index             *struct{}           `toml:"index"`
}

type gradientDoc struct {
	ValueStart float64 `toml:"value_start"`
	ValueEnd   float64 `toml:"value_end"`
	Start      float64 `toml:"start"`
	Length     float64 `toml:"length"`
}

type noiseDoc struct {
	Seed      int64   `toml:"seed"`
	Scale     float64 `toml:"scale"`
	MinValue  float64 `toml:"min_value"`
	MaxValue  float64 `toml:"max_value"`
	Algorithm string  `toml:"algorithm"`
}

type applyToDistanceDoc struct {
	Generator generatorDoc `toml:"generator"`
	CenterX   float64      `toml:"center_x"`
	CenterY   float64      `toml:"center_y"`
}

type applyToAxisDoc struct {
	Generator generatorDoc `toml:"generator"`
}

type vectorDoc struct {
	Vector []pointDoc `toml:"vector"`
}

type pointDoc struct {
	Threshold float64 `toml:"threshold"`
	Value     float64 `toml:"value"`
}

type transformerDoc struct {
	Clusterer        *clustererDoc `toml:"clusterer"`
	OverwriteIfBelow *overwriteDoc `toml:"overwrite_if_below"`
	OverwriteIfAbove *overwriteDoc `toml:"overwrite_if_above"`
}

type clustererDoc struct {
	Size            sizeDoc   `toml:"size"`
	ClusterIDLookup []float64 `toml:"cluster_id_lookup"`
	Domain0         domainDoc `toml:"domain0"`
	Domain1         domainDoc `toml:"domain1"`
}

type domainDoc struct {
	Min float64 `toml:"min"`
	Max float64 `toml:"max"`
}

type overwriteDoc struct {
	Value     float64 `toml:"value"`
	Threshold float64 `toml:"threshold"`
}

// Parse decodes a TOML pipeline document into a configuration.
func Parse(data []byte) (model.Config, error) {
	var doc Document

	err := toml.Unmarshal(data, &doc)
	if err != nil {
		return model.Config{}, errors.Wrap(err, "unable to decode pipeline document")
	}

	return doc.Config()
}

// Load reads and decodes the TOML pipeline document at path.
func Load(path string) (model.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Config{}, errors.Wrapf(err, "unable to read %s", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		return model.Config{}, errors.Wrapf(err, "unable to load %s", path)
	}

	return cfg, nil
}
