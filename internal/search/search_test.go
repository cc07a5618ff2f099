package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fuego-be/internal/catalog"
)

func TestSearch_KindPriority(t *testing.T) {
	idx := NewIndex(catalog.New())

	// Both Sauvage products match on their name and nothing else, so the
	// two name results lead and map back to HM 1026 / HM 1027.
	results := idx.Search("sauvage")
	require.Len(t, results, 2)

	assert.Equal(t, KindName, results[0].Kind)
	assert.Equal(t, "Sauvage", results[0].Value)
	require.NotNil(t, results[0].Product)
	assert.Equal(t, "HM 1026", results[0].Product.Code)

	assert.Equal(t, KindName, results[1].Kind)
	assert.Equal(t, "Sauvage Elixir", results[1].Value)
}

func TestSearch_CodeBeforeName(t *testing.T) {
	idx := NewIndex(catalog.New())

	// "102" hits codes HM 1026 and HM 1027 and no other field.
	results := idx.Search("102")
	require.Len(t, results, 2)
	assert.Equal(t, KindCode, results[0].Kind)
	assert.Equal(t, "HM 1026", results[0].Value)
	assert.Equal(t, KindCode, results[1].Kind)
	assert.Equal(t, "HM 1027", results[1].Value)
}

func TestSearch_NeverExceedsTenAndNoDuplicates(t *testing.T) {
	idx := NewIndex(catalog.New())

	for _, q := range []string{"a", "e", "m", "fm", "1", "o", "paco"} {
		results := idx.Search(q)
		assert.LessOrEqual(t, len(results), 10, "query %q", q)

		seen := make(map[string]bool)
		for _, r := range results {
			key := string(r.Kind) + ":" + r.Value
			assert.False(t, seen[key], "duplicate %s for query %q", key, q)
			seen[key] = true
		}
	}
}

func TestSearch_GlobalTruncationStarvesLowKinds(t *testing.T) {
	idx := NewIndex(catalog.New())

	// "m" matches all 20 codes, so the ten slots fill with code results
	// before any name, house, category or line match gets in.
	results := idx.Search("m")
	require.Len(t, results, 10)
	for _, r := range results {
		assert.Equal(t, KindCode, r.Kind)
	}
}

func TestSearch_HouseCollapsesToOneResult(t *testing.T) {
	idx := NewIndex(catalog.New())

	results := idx.Search("paco rabanne")
	require.Len(t, results, 1)
	assert.Equal(t, KindHouse, results[0].Kind)
	assert.Equal(t, "Paco Rabanne", results[0].Value)
	assert.Nil(t, results[0].Product)
}

func TestSearch_LineKind(t *testing.T) {
	idx := NewIndex(catalog.New())

	results := idx.Search("um")
	require.NotEmpty(t, results)
	last := results[len(results)-1]
	assert.Equal(t, KindLine, last.Kind)
	assert.Equal(t, "UM", last.Value)
}

func TestSearch_BlankQuery(t *testing.T) {
	idx := NewIndex(catalog.New())
	assert.Nil(t, idx.Search(""))
	assert.Nil(t, idx.Search("   "))
}
