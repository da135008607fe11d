package model

// Size is the width and height shared by every attribute of a pipeline run.
type Size struct {
	Width  int
	Height int
}

// Area returns the number of cells.
func (s Size) Area() int {
	return s.Width * s.Height
}

// Contains reports whether (x, y) lies inside the size.
func (s Size) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.Width && y < s.Height
}

// Index returns the row-major index of (x, y).
func (s Size) Index(x, y int) int {
	return y*s.Width + x
}

// Validate checks that both dimensions are positive.
func (s Size) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return ErrInvalidSize
	}

	return nil
}

// Config is a parsed pipeline. It is never mutated by the engine.
type Config struct {
	Name  string
	Size  Size
	Steps []Step
}
