package products

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thinktank-analytics/thinktank-engine/pkg/textmatch"
)

func TestResolveIsIdempotent(t *testing.T) {
	r := NewResolver()

	first := r.Resolve("fire and marine bookings this month")
	second := r.Resolve("fire and marine bookings this month")
	require.Equal(t, []int{5, 13}, first)
	assert.Equal(t, first, second)
}

func TestResolveMultiWordPhraseSettlesAnswer(t *testing.T) {
	r := NewResolver()

	// "fire insurance" hits the exact-phrase pass; the shorter "fire" alias
	// must not add a second id.
	assert.Equal(t, []int{5}, r.Resolve("fire insurance leads"))
}

func TestResolveShortAliasWordBoundary(t *testing.T) {
	r := NewResolver()

	assert.Equal(t, []int{19}, r.Resolve("wc leads today"))
	assert.Empty(t, r.Resolve("worcester leads today"))
}

func TestResolveEmptyAndUnknown(t *testing.T) {
	r := NewResolver()

	assert.Empty(t, r.Resolve(""))
	assert.Empty(t, r.Resolve("   "))
	assert.Empty(t, r.Resolve("how many leads today"))
}

func TestResolveFuzzyThresholdBoundary(t *testing.T) {
	r := NewResolver()

	// A one-letter typo reaches the fuzzy pass only. Derive the actual score
	// and check the cutoff is inclusive at the boundary and exclusive above.
	alias, score, ok := textmatch.BestMatch("burglry", r.aliasList, 0)
	require.True(t, ok)
	require.Equal(t, "burglary", alias)
	require.GreaterOrEqual(t, score, DefaultFuzzyThreshold)

	assert.Equal(t, []int{6}, r.Resolve("burglry"))
	assert.Equal(t, []int{6}, r.ResolveFuzzy("burglry", score))
	assert.Empty(t, r.ResolveFuzzy("burglry", score+1))
}

func TestResolveFuzzyStripsNoiseWords(t *testing.T) {
	r := NewResolver()

	// Filler and channel words alone never resolve to a product.
	assert.Empty(t, r.Resolve("show me the crm count"))
}

func TestContainsAlias(t *testing.T) {
	r := NewResolver()

	assert.True(t, r.ContainsAlias("fire leads this week", 5))
	assert.True(t, r.ContainsAlias("workmen compensation bookings", 19))
	assert.False(t, r.ContainsAlias("marine leads", 5))

	// Aliases under three characters are skipped, so "wc" alone does not
	// count as containment for workmen compensation.
	assert.False(t, r.ContainsAlias("wc leads", 19))

	// Word boundary: the alias must appear as its own word.
	assert.False(t, r.ContainsAlias("campfire stories", 5))
}

func TestAllProductsRequested(t *testing.T) {
	assert.True(t, AllProductsRequested("show leads across products"))
	assert.True(t, AllProductsRequested("ALL PRODUCTS this month"))
	assert.False(t, AllProductsRequested("fire leads this month"))
}

func TestResolverWithAliasOverrides(t *testing.T) {
	r := NewResolverWithAliases(map[string]int{"Warehouse Cover": 47})

	assert.Equal(t, []int{47}, r.Resolve("warehouse cover bookings"))
	// Built-in aliases survive the merge.
	assert.Equal(t, []int{5}, r.Resolve("fire leads"))
}

func TestNameTitleCasing(t *testing.T) {
	r := NewResolver()

	assert.Equal(t, "Group Health Insurance", r.Name(1))
	assert.Equal(t, "Fire Insurance", r.Name(5))
}
