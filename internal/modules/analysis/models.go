package analysis

import (
	"time"

	"github.com/monjit-TAM/portfolio-analyser/internal/domain"
	"github.com/monjit-TAM/portfolio-analyser/internal/modules/metrics"
	"github.com/monjit-TAM/portfolio-analyser/internal/modules/recommendation"
)

// Result is the full pipeline output for one set of inputs. Deterministic:
// identical inputs produce an identical Result, which is what makes it
// cacheable on an input hash.
type Result struct {
	Summary         domain.PortfolioSummary  `json:"summary" msgpack:"summary"`
	Holdings        []domain.EnrichedHolding `json:"holdings" msgpack:"holdings"`
	Sectors         []domain.GroupAggregate  `json:"sectors" msgpack:"sectors"`
	Categories      []domain.GroupAggregate  `json:"categories" msgpack:"categories"`
	Metrics         metrics.Bundle           `json:"metrics" msgpack:"metrics"`
	Recommendations []recommendation.Record  `json:"recommendations" msgpack:"recommendations"`

	// SkippedHoldings lists validation failures; the rest of the batch
	// proceeded without them.
	SkippedHoldings []string `json:"skipped_holdings" msgpack:"skipped_holdings"`
}

// Run wraps a Result with its identity and persistence metadata. The ID and
// timestamp live outside the cacheable payload.
type Run struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	HoldingCount int       `json:"holding_count"`
	HealthScore  float64   `json:"health_score"`
	CacheHit     bool      `json:"cache_hit"`

	Result Result `json:"result"`
}

// RunSummary is the listing row for run history.
type RunSummary struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	HoldingCount int       `json:"holding_count"`
	HealthScore  float64   `json:"health_score"`
}
