// Package transformer compiles transformer configurations into per-cell functions of two
// source values.
package transformer
