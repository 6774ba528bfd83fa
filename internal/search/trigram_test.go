package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want func(t *testing.T, got float64)
	}{
		{
			name: "identical strings",
			a:    "детский парк",
			b:    "детский парк",
			want: func(t *testing.T, got float64) {
				require.Equal(t, 1.0, got)
			},
		},
		{
			name: "empty query",
			a:    "",
			b:    "детский парк",
			want: func(t *testing.T, got float64) {
				require.Equal(t, 0.0, got)
			},
		},
		{
			name: "both empty",
			a:    "",
			b:    "",
			want: func(t *testing.T, got float64) {
				require.Equal(t, 0.0, got)
			},
		},
		{
			name: "no shared trigrams",
			a:    "дет",
			b:    "xyz",
			want: func(t *testing.T, got float64) {
				require.Equal(t, 0.0, got)
			},
		},
		{
			name: "case insensitive",
			a:    "ДЕТСКИЙ",
			b:    "детский",
			want: func(t *testing.T, got float64) {
				require.Equal(t, 1.0, got)
			},
		},
		{
			name: "partial overlap scores between 0 and 1",
			a:    "дет",
			b:    "детский сад",
			want: func(t *testing.T, got float64) {
				require.Greater(t, got, 0.0)
				require.Less(t, got, 1.0)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.want(t, Similarity(tt.a, tt.b))
		})
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	require.Equal(t, Similarity("дет", "детский парк"), Similarity("детский парк", "дет"))
}

func TestSimilarity_SharedPrefixRanksHigher(t *testing.T) {
	// A title containing the query's trigrams must outrank one without.
	query := "дет"
	withTrigram := Similarity(query, "детская площадка")
	without := Similarity(query, "взрослый клуб")
	require.Greater(t, withTrigram, without)
	require.Greater(t, withTrigram, RankThreshold)
}

func TestRankThreshold_DiscardsWeakMatches(t *testing.T) {
	// A single shared trigram in a long title can still clear 1/14; a
	// zero-overlap pair never does.
	require.LessOrEqual(t, Similarity("дет", "ночь"), RankThreshold)
}
