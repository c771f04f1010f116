package textvec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "lowercases and splits on punctuation",
			input:    "Black Leather-Wallet, with CARDS!",
			expected: []string{"black", "leather", "wallet", "cards"},
		},
		{
			name:     "drops single characters",
			input:    "a b iphone x 12",
			expected: []string{"iphone", "12"},
		},
		{
			name:     "drops stop words",
			input:    "I found the keys near the front door",
			expected: []string{"keys", "near", "door"},
		},
		{
			name:     "keeps underscores and unicode letters",
			input:    "porte_monnaie café",
			expected: []string{"porte_monnaie", "café"},
		},
		{
			name:     "capital sigma ending a word becomes final sigma",
			input:    "ΟΔΟΣ οδος ΣΟΣ",
			expected: []string{"οδος", "οδος", "σος"},
		},
		{
			name:     "dotted capital i keeps its combining dot",
			input:    "İstanbul",
			expected: []string{"stanbul"},
		},
		{
			name:     "empty",
			input:    "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input))
		})
	}
}

func TestLower(t *testing.T) {
	assert.Equal(t, "οδος.", lower("ΟΔΟΣ."))
	assert.Equal(t, "σ", lower("Σ"))
	assert.Equal(t, "ασ'σα", lower("ΑΣ'ΣΑ"))
	assert.Equal(t, "i\u0307", lower("İ"))
	assert.Equal(t, "black wallet", lower("Black WALLET"))
}

func TestFitTransform_EmptyCorpus(t *testing.T) {
	_, err := NewVectorizer(1000).FitTransform(nil)
	assert.ErrorIs(t, err, ErrEmptyCorpus)
}

func TestFitTransform_SmoothedIDFWeights(t *testing.T) {
	m, err := NewVectorizer(1000).FitTransform([]string{"red wallet", "red umbrella"})
	require.NoError(t, err)

	assert.Equal(t, []string{"red", "umbrella", "wallet"}, m.Terms)

	// red appears in both documents: idf = ln(3/3) + 1 = 1
	// wallet appears in one: idf = ln(3/2) + 1
	red := 1.0
	wallet := math.Log(1.5) + 1
	norm := math.Sqrt(red*red + wallet*wallet)

	row := m.Row(0)
	assert.InDelta(t, red/norm, row[m.Vocabulary["red"]], 1e-12)
	assert.InDelta(t, wallet/norm, row[m.Vocabulary["wallet"]], 1e-12)
	assert.InDelta(t, 1.0, row.Norm(), 1e-12)
}

func TestFitTransform_TermCountsScaleWeights(t *testing.T) {
	m, err := NewVectorizer(0).FitTransform([]string{"keys keys ring", "ring"})
	require.NoError(t, err)

	row := m.Row(0)
	keys := 2 * (math.Log(3.0/2.0) + 1)
	ring := 1.0
	norm := math.Sqrt(keys*keys + ring*ring)

	assert.InDelta(t, keys/norm, row[m.Vocabulary["keys"]], 1e-12)
	assert.InDelta(t, ring/norm, row[m.Vocabulary["ring"]], 1e-12)
}

func TestFitTransform_MaxFeaturesKeepsMostFrequent(t *testing.T) {
	corpus := []string{
		"phone phone phone charger",
		"phone charger cable",
		"charger sticker",
	}

	m, err := NewVectorizer(2).FitTransform(corpus)
	require.NoError(t, err)

	// phone=4, charger=3, cable=1, sticker=1
	assert.Equal(t, []string{"charger", "phone"}, m.Terms)
	assert.Len(t, m.Vocabulary, 2)

	_, hasCable := m.Vocabulary["cable"]
	assert.False(t, hasCable)
}

func TestFitTransform_MaxFeaturesTieBreaksAlphabetically(t *testing.T) {
	m, err := NewVectorizer(2).FitTransform([]string{"zebra apple mango"})
	require.NoError(t, err)

	assert.Equal(t, []string{"apple", "mango"}, m.Terms)
}

func TestFitTransform_MaxFeaturesNoOpOnSmallCorpus(t *testing.T) {
	m, err := NewVectorizer(1000).FitTransform([]string{"blue umbrella", "red wallet leather"})
	require.NoError(t, err)

	assert.Len(t, m.Terms, 5)
}

func TestFitTransform_StopWordsOnlyYieldsZeroRows(t *testing.T) {
	m, err := NewVectorizer(1000).FitTransform([]string{"the and of", "it is here"})
	require.NoError(t, err)

	assert.Empty(t, m.Terms)
	assert.Zero(t, m.Row(0).Norm())
	assert.Zero(t, Cosine(m.Row(0), m.Row(1)))
}

func TestCosine(t *testing.T) {
	a := Vector{0: 1, 1: 1}
	b := Vector{0: 2, 1: 2}
	c := Vector{2: 5}

	assert.InDelta(t, 1.0, Cosine(a, b), 1e-12)
	assert.Zero(t, Cosine(a, c))
	assert.Zero(t, Cosine(a, Vector{}))
	assert.InDelta(t, 4.0, a.Dot(b), 1e-12)
}
