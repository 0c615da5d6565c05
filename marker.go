package factory

// MarkerKind names a metadata tag a candidate can carry, such as "format" or
// "version". A candidate carries at most one value per kind.
type MarkerKind string

// Marker is a declared (kind, value) pair.
type Marker struct {
	Kind  MarkerKind
	Value string
}

func Mark(kind MarkerKind, value string) Marker {
	return Marker{Kind: kind, Value: value}
}

func (m Marker) String() string {
	return string(m.Kind) + "=" + m.Value
}
