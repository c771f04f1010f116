package suggest

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"codeberg.org/reclaim/server/internal/geo"
	"codeberg.org/reclaim/server/internal/textvec"
)

// returns the defaults used by Rank
func DefaultOptions() Options {
	return Options{
		Threshold:   DefaultThreshold,
		Limit:       DefaultLimit,
		MaxFeatures: DefaultMaxFeatures,
	}
}

func (o Options) withDefaults() Options {
	if o.Threshold <= 0 {
		o.Threshold = DefaultThreshold
	}

	if o.Limit <= 0 {
		o.Limit = DefaultLimit
	}

	if o.MaxFeatures <= 0 {
		o.MaxFeatures = DefaultMaxFeatures
	}

	return o
}

// builds the similarity text for an item
func ItemText(title, description string) string {
	return title + " " + description
}

// ranks candidates against source using the default options
func Rank[T any](source Candidate[T], candidates []Candidate[T]) ([]Suggestion[T], error) {
	return RankWith(DefaultOptions(), source, candidates)
}

// ranks candidates against source by TF-IDF cosine similarity.
//
// the vector space is fitted on the source text followed by every candidate
// text, so row i+1 always belongs to candidates[i]. candidates scoring above
// the threshold are annotated with their geodesic distance to the source,
// sorted by score (stable on input order) and truncated to the limit.
// the call owns no shared state and is safe for concurrent use.
func RankWith[T any](opts Options, source Candidate[T], candidates []Candidate[T]) ([]Suggestion[T], error) {
	if len(candidates) == 0 {
		return []Suggestion[T]{}, nil
	}

	opts = opts.withDefaults()

	corpus := make([]string, 0, len(candidates)+1)
	corpus = append(corpus, source.Text)

	for _, c := range candidates {
		corpus = append(corpus, c.Text)
	}

	matrix, err := textvec.NewVectorizer(opts.MaxFeatures).FitTransform(corpus)
	if err != nil {
		return nil, fmt.Errorf("failed to build vector space: %w", err)
	}

	query := matrix.Row(0)
	suggestions := make([]Suggestion[T], 0, min(len(candidates), opts.Limit))

	for i, c := range candidates {
		score := math.Min(textvec.Cosine(query, matrix.Row(i+1)), 1)

		if score <= opts.Threshold {
			continue
		}

		suggestions = append(suggestions, Suggestion[T]{
			Item:            c.Payload,
			SimilarityScore: score,
			DistanceKM:      geo.OptionalDistanceKM(source.Location, c.Location),
		})
	}

	slices.SortStableFunc(suggestions, func(a, b Suggestion[T]) int {
		return cmp.Compare(b.SimilarityScore, a.SimilarityScore)
	})

	if len(suggestions) > opts.Limit {
		suggestions = suggestions[:opts.Limit]
	}

	return suggestions, nil
}
