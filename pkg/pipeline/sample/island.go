// Package sample provides ready-made pipeline configurations.
package sample

import "github.com/askiada/go-mapgen/pkg/pipeline/model"

// Biome ids written by Island.
const (
	Ocean    = 12
	Mountain = 13
)

// IslandLookup maps (temperature bucket, rainfall bucket) to a biome id, rainfall major.
var IslandLookup = []float64{
	0, 1, 2, // dry: tundra, steppe, desert
	3, 4, 5, // moderate: taiga, grassland, savanna
	6, 7, 8, // wet: bog, forest, rainforest
}

// Island returns a 400x300 island: a radial elevation gradient with noise, temperature falling
// from the equator and with altitude, distorted rainfall, and biomes classified from temperature
// and rainfall with ocean and mountain overrides.
func Island() model.Config {
	return model.Config{
		Name: "island",
		Size: model.Size{Width: 400, Height: 300},
		Steps: []model.Step{
			model.CreateAttribute{Name: "elevation", Default: 0},
			model.GeneratorAdd{
				Name:      "island gradient",
				Attribute: "elevation",
				Generator: model.ApplyToDistance{
					Generator: model.Gradient{ValueStart: 125, ValueEnd: 0, Start: 0, Length: 150},
					CenterX:   200,
					CenterY:   150,
				},
			},
			model.GeneratorAdd{
				Name:      "island noise",
				Attribute: "elevation",
				Generator: model.Noise{Seed: 300, Scale: 50, MinValue: 0, MaxValue: 125},
			},
			model.CreateAttribute{Name: "temperature", Default: 0},
			model.GeneratorAdd{
				Name:      "equator",
				Attribute: "temperature",
				Generator: model.ApplyToY{
					Generator: model.AbsoluteGradient{ValueStart: 255, ValueEnd: 0, Start: 150, Length: 150},
				},
			},
			model.ModifyWithAttribute{Source: "elevation", Target: "temperature", Percentage: -80, Minimum: 0},
			model.CreateAttribute{Name: "rainfall", Default: 0},
			model.GeneratorAdd{
				Name:      "rain noise",
				Attribute: "rainfall",
				Generator: model.Noise{Seed: 42, Scale: 40, MinValue: 0, MaxValue: 255, Algorithm: model.Perlin},
			},
			model.DistortAlongY{
				Attribute: "rainfall",
				Generator: model.ApplyToX{
					Generator: model.InterpolateVector{Vector: []model.Point{
						{Threshold: 0, Value: 0},
						{Threshold: 200, Value: 20},
						{Threshold: 400, Value: 0},
					}},
				},
			},
			model.CreateAttribute{Name: "biome", Default: 0},
			model.TransformAttribute2d{
				Name:    "biomes",
				Source0: "temperature",
				Source1: "rainfall",
				Target:  "biome",
				Transformer: model.Clusterer{
					Size:            model.Size{Width: 3, Height: 3},
					ClusterIDLookup: IslandLookup,
					Domain0:         model.Domain{Min: 0, Max: 256},
					Domain1:         model.Domain{Min: 0, Max: 256},
				},
			},
			model.TransformAttribute2d{
				Name:        "ocean",
				Source0:     "elevation",
				Source1:     "elevation",
				Target:      "biome",
				Transformer: model.OverwriteIfBelow{Value: Ocean, Threshold: 76},
			},
			model.TransformAttribute2d{
				Name:        "mountains",
				Source0:     "elevation",
				Source1:     "elevation",
				Target:      "biome",
				Transformer: model.OverwriteIfAbove{Value: Mountain, Threshold: 200},
			},
		},
	}
}
