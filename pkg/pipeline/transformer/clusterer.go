package transformer

import (
	"math"

	"github.com/pkg/errors"

	"github.com/askiada/go-mapgen/pkg/pipeline/model"
)

type quantizer struct {
	min, width float64
	buckets    int
}

func newQuantizer(domain model.Domain, buckets int) (quantizer, error) {
	if !(domain.Min < domain.Max) {
		return quantizer{}, errors.Wrapf(model.ErrInvalidDomain, "[%v, %v)", domain.Min, domain.Max)
	}

	return quantizer{
		min:     domain.Min,
		width:   (domain.Max - domain.Min) / float64(buckets),
		buckets: buckets,
	}, nil
}

// bucket returns the bucket of value. Values outside the domain land in the first or last
// bucket.
func (q quantizer) bucket(value float64) int {
	if math.IsNaN(value) {
		return 0
	}

	idx := int(math.Floor((value - q.min) / q.width))

	switch {
	case idx < 0:
		return 0
	case idx >= q.buckets:
		return q.buckets - 1
	}

	return idx
}

type clusterer struct {
	width  int
	q0, q1 quantizer
	lookup []float64
}

func newClusterer(cfg model.Clusterer) (*clusterer, error) {
	if err := cfg.Size.Validate(); err != nil {
		return nil, model.WithField(err, "size")
	}

	if want := cfg.Size.Area(); len(cfg.ClusterIDLookup) != want {
		return nil, model.WithField(
			errors.Wrapf(model.ErrLookupLength, "got %d ids for %dx%d buckets", len(cfg.ClusterIDLookup), cfg.Size.Width, cfg.Size.Height),
			"cluster_id_lookup",
		)
	}

	q0, err := newQuantizer(cfg.Domain0.OrDefault(), cfg.Size.Width)
	if err != nil {
		return nil, model.WithField(err, "domain0")
	}

	q1, err := newQuantizer(cfg.Domain1.OrDefault(), cfg.Size.Height)
	if err != nil {
		return nil, model.WithField(err, "domain1")
	}

	lookup := make([]float64, len(cfg.ClusterIDLookup))
	copy(lookup, cfg.ClusterIDLookup)

	return &clusterer{
		width:  cfg.Size.Width,
		q0:     q0,
		q1:     q1,
		lookup: lookup,
	}, nil
}

func (c *clusterer) Transform(source0, source1, _ float64) float64 {
	return c.lookup[c.q1.bucket(source1)*c.width+c.q0.bucket(source0)]
}
