// Package uid provides unique identifier generators behind small
// interfaces, so business code never depends on a specific scheme.
package uid

// NumberID generates unique int64 identifiers, used for entity
// primary keys.
type NumberID interface {
	Generate() int64
}

// StringID generates unique string identifiers, used for correlation
// IDs and other opaque tokens.
type StringID interface {
	Generate() string
}
