package suggest

import "codeberg.org/reclaim/server/internal/geo"

const (
	// candidates must score strictly above this to be suggested
	DefaultThreshold = 0.1

	// maximum number of suggestions returned
	DefaultLimit = 10

	// vocabulary cap for the per-request vector space
	DefaultMaxFeatures = 1000
)

// tunes a ranking call; zero fields fall back to the defaults
type Options struct {
	Threshold   float64
	Limit       int
	MaxFeatures int
}

// read-only view over a lost or found item
type Candidate[T any] struct {
	// title and description joined by a single space
	Text string

	// nil when the item was posted without coordinates
	Location *geo.Point

	// echoed back untouched in the suggestion
	Payload T
}

// a ranked match for a source item
type Suggestion[T any] struct {
	Item            T
	SimilarityScore float64

	// rounded to two decimals; nil unless both items have valid coordinates
	DistanceKM *float64
}
