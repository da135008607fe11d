// Package generator compiles generator configurations into evaluators.
//
// A generator maps a cell coordinate to a scalar. Some generators wrap another one and feed it a
// 1d input: the x or y coordinate, or the distance to a center. Evaluators are pure and hold no
// mutable state, so a single compiled tree may be evaluated from many goroutines at once.
package generator
