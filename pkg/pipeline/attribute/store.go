package attribute

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/askiada/go-mapgen/pkg/pipeline/model"
)

// Store owns the attributes of one pipeline run.
type Store struct {
	lock  sync.RWMutex
	size  model.Size
	names []string
	grids map[string][]float64
}

// NewStore creates an empty store for grids of the given size.
func NewStore(size model.Size) (*Store, error) {
	if err := size.Validate(); err != nil {
		return nil, errors.Wrapf(err, "%dx%d", size.Width, size.Height)
	}

	return &Store{
		size:  size,
		grids: make(map[string][]float64),
	}, nil
}

// Size returns the size shared by all attributes.
func (s *Store) Size() model.Size {
	return s.size
}

// Create adds an attribute filled with value.
func (s *Store) Create(name string, value float64) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.grids[name]; ok {
		return errors.Wrapf(model.ErrDuplicateAttribute, "%q", name)
	}

	values := make([]float64, s.size.Area())
	for i := range values {
		values[i] = value
	}

	s.grids[name] = values
	s.names = append(s.names, name)

	return nil
}

// Has reports whether the attribute exists.
func (s *Store) Has(name string) bool {
	s.lock.RLock()
	defer s.lock.RUnlock()

	_, ok := s.grids[name]

	return ok
}

// Names returns the attribute names in creation order.
func (s *Store) Names() []string {
	s.lock.RLock()
	defer s.lock.RUnlock()

	names := make([]string, len(s.names))
	copy(names, s.names)

	return names
}

func (s *Store) grid(name string) ([]float64, error) {
	values, ok := s.grids[name]
	if !ok {
		return nil, errors.Wrapf(model.ErrUnknownAttribute, "%q", name)
	}

	return values, nil
}

func (s *Store) index(name string, x, y int) (int, error) {
	if !s.size.Contains(x, y) {
		return 0, errors.Wrapf(model.ErrOutOfBounds, "%s at (%d, %d)", name, x, y)
	}

	return s.size.Index(x, y), nil
}

// Read returns the value of an attribute at (x, y).
func (s *Store) Read(name string, x, y int) (float64, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	values, err := s.grid(name)
	if err != nil {
		return 0, err
	}

	idx, err := s.index(name, x, y)
	if err != nil {
		return 0, err
	}

	return values[idx], nil
}

// Write sets the value of an attribute at (x, y).
func (s *Store) Write(name string, x, y int, value float64) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	values, err := s.grid(name)
	if err != nil {
		return err
	}

	idx, err := s.index(name, x, y)
	if err != nil {
		return err
	}

	values[idx] = value

	return nil
}

// Snapshot returns an immutable copy of an attribute.
func (s *Store) Snapshot(name string) (*Grid, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	values, err := s.grid(name)
	if err != nil {
		return nil, err
	}

	return newGrid(name, s.size, values), nil
}

// Replace overwrites every cell of an attribute at once.
func (s *Store) Replace(name string, values []float64) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, err := s.grid(name); err != nil {
		return err
	}

	if len(values) != s.size.Area() {
		return errors.Wrapf(model.ErrOutOfBounds, "%s: got %d values for %d cells", name, len(values), s.size.Area())
	}

	cpy := make([]float64, len(values))
	copy(cpy, values)
	s.grids[name] = cpy

	return nil
}

// Stats summarises an attribute.
type Stats struct {
	Min  float64
	Max  float64
	Mean float64
}

// Stats returns the minimum, maximum and mean of an attribute.
func (s *Store) Stats(name string) (Stats, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	values, err := s.grid(name)
	if err != nil {
		return Stats{}, err
	}

	return Stats{
		Min:  floats.Min(values),
		Max:  floats.Max(values),
		Mean: floats.Sum(values) / float64(len(values)),
	}, nil
}

// Checksum returns a hash of the exact bits of an attribute. Two runs of the same pipeline
// produce the same checksum.
func (s *Store) Checksum(name string) (uint64, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	values, err := s.grid(name)
	if err != nil {
		return 0, err
	}

	digest := xxhash.New()
	buf := make([]byte, 8)

	for _, value := range values {
		binary.LittleEndian.PutUint64(buf, math.Float64bits(value))
		_, _ = digest.Write(buf)
	}

	return digest.Sum64(), nil
}
