// Package model provides the data structures shared by the map generation pipeline.
// It defines the in-memory pipeline configuration (steps, generators and transformers as closed
// tagged unions), the error taxonomy used across the engine and the hooks that pipeline options
// implement to observe a run.
package model
