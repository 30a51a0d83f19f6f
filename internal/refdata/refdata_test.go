package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectorOfFallback(t *testing.T) {
	ref := Defaults()

	assert.Equal(t, "Banking", ref.SectorOf("HDFCBANK"))
	assert.Equal(t, "Other", ref.SectorOf("NOSUCHSYM"))
}

func TestCategoryOfFallback(t *testing.T) {
	ref := Defaults()

	assert.Equal(t, CategoryLargeCap, ref.CategoryOf("RELIANCE"))
	assert.Equal(t, CategorySmallCap, ref.CategoryOf("NOSUCHSYM"))
}

func TestGroupOf(t *testing.T) {
	ref := Defaults()

	group, ok := ref.GroupOf("TATAMOTORS")
	require.True(t, ok)
	assert.Equal(t, "Tata", group)

	_, ok = ref.GroupOf("HINDUNILVR")
	assert.False(t, ok)
}

func TestInBucket(t *testing.T) {
	ref := Defaults()

	assert.True(t, ref.InBucket(BucketBanking, "SBIN"))
	assert.True(t, ref.InBucket(BucketExport, "INFY"))
	assert.False(t, ref.InBucket(BucketCommodity, "TCS"))
}

func TestAlternativesForExcludesCurrent(t *testing.T) {
	ref := Defaults()

	alts := ref.AlternativesFor("Banking", "HDFCBANK", 3)
	require.Len(t, alts, 3)
	assert.NotContains(t, alts, "HDFCBANK")
}

func TestAlternativesForUnknownSector(t *testing.T) {
	ref := Defaults()

	assert.Empty(t, ref.AlternativesFor("Nope", "X", 3))
}

func TestBenchmarkWeightsRoughlySumToHundred(t *testing.T) {
	ref := Defaults()

	var sum float64
	for _, w := range ref.BenchmarkSectorWeights {
		sum += w
	}
	assert.InDelta(t, 100.0, sum, 0.5)
}
