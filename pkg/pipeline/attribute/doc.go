// Package attribute stores the named grids produced by a pipeline run.
//
// A Store owns one dense, row-major grid per attribute. All grids share the size of the pipeline.
// Steps never write cell by cell into a grid they also read: they take a Snapshot before running
// and commit their full output with Replace.
package attribute
