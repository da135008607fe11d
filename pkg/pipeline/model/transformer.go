package model

// TransformerKind names a transformer variant.
type TransformerKind string

const (
	ClustererKind        TransformerKind = "Clusterer"
	OverwriteIfBelowKind TransformerKind = "OverwriteIfBelow"
	OverwriteIfAboveKind TransformerKind = "OverwriteIfAbove"
)

// Transformer combines two source values into one. The set of implementations is closed.
type Transformer interface {
	Kind() TransformerKind
	isTransformer()
}

// Domain is the fixed value range a Clusterer quantizes an attribute over.
type Domain struct {
	Min float64
	Max float64
}

// DefaultDomain is used when a Clusterer leaves a domain unset.
var DefaultDomain = Domain{Min: 0, Max: 256}

// IsZero reports whether the domain is unset.
func (d Domain) IsZero() bool {
	return d == Domain{}
}

// OrDefault returns d, or DefaultDomain if d is unset.
func (d Domain) OrDefault() Domain {
	if d.IsZero() {
		return DefaultDomain
	}

	return d
}

// Clusterer quantizes source0 into Size.Width buckets and source1 into Size.Height buckets and
// looks the pair up in ClusterIDLookup.
type Clusterer struct {
	Size            Size
	ClusterIDLookup []float64
	Domain0         Domain
	Domain1         Domain
}

// OverwriteIfBelow writes Value where source0 < Threshold.
type OverwriteIfBelow struct {
	Value     float64
	Threshold float64
}

// OverwriteIfAbove writes Value where source0 >= Threshold.
type OverwriteIfAbove struct {
	Value     float64
	Threshold float64
}

func (Clusterer) Kind() TransformerKind        { return ClustererKind }
func (OverwriteIfBelow) Kind() TransformerKind { return OverwriteIfBelowKind }
func (OverwriteIfAbove) Kind() TransformerKind { return OverwriteIfAboveKind }

func (Clusterer) isTransformer()        {}
func (OverwriteIfBelow) isTransformer() {}
func (OverwriteIfAbove) isTransformer() {}
