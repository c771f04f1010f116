package textvec

import (
	"errors"
	"math"
	"sort"
)

var (
	ErrEmptyCorpus = errors.New("textvec: corpus has no documents")
)

// sparse document vector keyed by vocabulary index
type Vector map[int]float64

// holds the fitted vocabulary and one weighted row per corpus document
type Matrix struct {
	Terms      []string
	Vocabulary map[string]int
	Rows       []Vector
}

// builds smoothed, L2-normalised TF-IDF vectors over a corpus
type Vectorizer struct {
	// caps the vocabulary at the most frequent terms; zero means no cap
	MaxFeatures int
}

// creates a vectorizer with the given vocabulary cap
func NewVectorizer(maxFeatures int) *Vectorizer {
	return &Vectorizer{MaxFeatures: maxFeatures}
}

// fits the vocabulary and idf weights on corpus and returns its document vectors.
//
// weights follow the usual smoothed formulation:
//
//	idf(t)   = ln((1 + n) / (1 + df(t))) + 1
//	w(t, d)  = count(t, d) * idf(t)
//
// each row is then scaled to unit length. a corpus made only of stop words
// produces zero rows rather than an error.
func (v *Vectorizer) FitTransform(corpus []string) (*Matrix, error) {
	if len(corpus) == 0 {
		return nil, ErrEmptyCorpus
	}

	counts := make([]map[string]int, len(corpus))
	totals := make(map[string]int)
	docFreq := make(map[string]int)

	for i, doc := range corpus {
		termCounts := make(map[string]int)

		for _, token := range Tokenize(doc) {
			termCounts[token]++
		}

		for term, n := range termCounts {
			totals[term] += n
			docFreq[term]++
		}

		counts[i] = termCounts
	}

	terms := selectTerms(totals, v.MaxFeatures)

	vocabulary := make(map[string]int, len(terms))
	for i, term := range terms {
		vocabulary[term] = i
	}

	n := float64(len(corpus))
	idf := make([]float64, len(terms))

	for i, term := range terms {
		idf[i] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}

	rows := make([]Vector, len(corpus))

	for i, termCounts := range counts {
		row := make(Vector, len(termCounts))

		for term, c := range termCounts {
			idx, ok := vocabulary[term]
			if !ok {
				continue
			}

			row[idx] = float64(c) * idf[idx]
		}

		row.normalize()
		rows[i] = row
	}

	return &Matrix{
		Terms:      terms,
		Vocabulary: vocabulary,
		Rows:       rows,
	}, nil
}

// returns the vector of the i-th corpus document
func (m *Matrix) Row(i int) Vector {
	return m.Rows[i]
}

// keeps the maxFeatures most frequent terms (ties alphabetical), returned in alphabetical order
func selectTerms(totals map[string]int, maxFeatures int) []string {
	terms := make([]string, 0, len(totals))
	for term := range totals {
		terms = append(terms, term)
	}

	if maxFeatures > 0 && len(terms) > maxFeatures {
		sort.Slice(terms, func(i, j int) bool {
			if totals[terms[i]] != totals[terms[j]] {
				return totals[terms[i]] > totals[terms[j]]
			}

			return terms[i] < terms[j]
		})

		terms = terms[:maxFeatures]
	}

	sort.Strings(terms)

	return terms
}

// Euclidean length of the vector
func (v Vector) Norm() float64 {
	var sum float64
	for _, idx := range v.indices() {
		sum += v[idx] * v[idx]
	}

	return math.Sqrt(sum)
}

func (v Vector) normalize() {
	norm := v.Norm()
	if norm == 0 {
		return
	}

	for idx, w := range v {
		v[idx] = w / norm
	}
}

// inner product of two sparse vectors
func (v Vector) Dot(other Vector) float64 {
	small, large := v, other
	if len(small) > len(large) {
		small, large = large, small
	}

	var sum float64
	for _, idx := range small.indices() {
		sum += small[idx] * large[idx]
	}

	return sum
}

// sorted indices so sums are accumulated in a fixed order and repeat bit for bit
func (v Vector) indices() []int {
	idx := make([]int, 0, len(v))
	for i := range v {
		idx = append(idx, i)
	}

	sort.Ints(idx)

	return idx
}

// cosine similarity of two vectors; zero when either has no weight
func Cosine(a, b Vector) float64 {
	na, nb := a.Norm(), b.Norm()
	if na == 0 || nb == 0 {
		return 0
	}

	return a.Dot(b) / (na * nb)
}
