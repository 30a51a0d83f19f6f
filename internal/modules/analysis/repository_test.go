package analysis

import (
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monjit-TAM/portfolio-analyser/internal/domain"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	repo := NewRepository(conn, zerolog.Nop())
	require.NoError(t, repo.Init())
	return repo
}

func testRun(id string, createdAt time.Time) *Run {
	return &Run{
		ID:           id,
		CreatedAt:    createdAt,
		HoldingCount: 2,
		HealthScore:  71.5,
		Result: Result{
			Summary: domain.PortfolioSummary{TotalInvestment: 1000, CurrentValue: 1200, HoldingCount: 2},
			Holdings: []domain.EnrichedHolding{
				{Holding: domain.Holding{Symbol: "AAA", Quantity: 10, BuyPrice: 100, BuyDate: "2025-01-01"}},
			},
			SkippedHoldings: []string{},
		},
	}
}

func TestRepositorySaveAndGet(t *testing.T) {
	repo := newTestRepository(t)

	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(testRun("run-1", created)))

	got, err := repo.Get("run-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "run-1", got.ID)
	assert.True(t, got.CreatedAt.Equal(created))
	assert.Equal(t, 71.5, got.HealthScore)
	assert.Equal(t, 1200.0, got.Result.Summary.CurrentValue)
	require.Len(t, got.Result.Holdings, 1)
	assert.Equal(t, "AAA", got.Result.Holdings[0].Symbol)
}

func TestRepositorySaveDuplicateIDRollsBack(t *testing.T) {
	repo := newTestRepository(t)

	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(testRun("run-1", created)))

	err := repo.Save(testRun("run-1", created.Add(time.Hour)))
	require.Error(t, err)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// The stored row is the original, untouched by the failed write.
	got, err := repo.Get("run-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.CreatedAt.Equal(created))
}

func TestRepositoryGetMissingReturnsNil(t *testing.T) {
	repo := newTestRepository(t)

	got, err := repo.Get("missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRepositoryListNewestFirst(t *testing.T) {
	repo := newTestRepository(t)

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(testRun("old", base)))
	require.NoError(t, repo.Save(testRun("new", base.Add(time.Hour))))

	list, err := repo.List(10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "new", list[0].ID)
	assert.Equal(t, "old", list[1].ID)
}

func TestRepositoryPrune(t *testing.T) {
	repo := newTestRepository(t)

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(testRun("old", base)))
	require.NoError(t, repo.Save(testRun("new", base.Add(48*time.Hour))))

	deleted, err := repo.Prune(base.Add(24 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCacheRoundTripAndExpiry(t *testing.T) {
	conn, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	cache := NewCache(conn, time.Hour, zerolog.Nop())
	require.NoError(t, cache.Init())

	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	result := &Result{
		Summary:         domain.PortfolioSummary{TotalInvestment: 500, CurrentValue: 700},
		SkippedHoldings: []string{},
	}
	cache.Put("hash-1", result)

	got, ok := cache.Get("hash-1")
	require.True(t, ok)
	assert.Equal(t, 700.0, got.Summary.CurrentValue)

	_, ok = cache.Get("hash-2")
	assert.False(t, ok)

	// Move past the TTL: the entry no longer serves and gets evicted.
	now = now.Add(2 * time.Hour)
	_, ok = cache.Get("hash-1")
	assert.False(t, ok)

	evicted, err := cache.EvictExpired()
	require.NoError(t, err)
	assert.Equal(t, int64(1), evicted)
}
