// Package pipeline runs map generation pipelines.
//
// A pipeline is an ordered list of steps that create and fill named attributes (elevation,
// temperature, rainfall, biome ids, ...) on a fixed size grid. Each step reads attributes
// committed by the previous steps and writes exactly one attribute.
//
// Steps run strictly one after the other. Inside a step the rows of the output are computed
// concurrently by a bounded pool of goroutines; every step works on snapshots of the attributes it
// reads, so cells never observe each other's updates. The output of a step is committed to the
// store in one operation once every row has been computed.
//
// The pipeline stops on the first error. The failing step commits nothing, the steps before it
// keep their results, and the returned error is a *StepError that reports the position of the
// step and the configuration field at fault.
//
// Before any cell is computed, the configuration goes through a preflight validation that
// resolves attribute names in textual order and compiles every generator and transformer, so
// cheap configuration mistakes surface before expensive work starts.
package pipeline
