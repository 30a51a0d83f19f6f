// Package analysis orchestrates the pipeline: valuation, aggregation, then
// the metrics and recommendation engines in parallel, with result caching
// and run-history persistence around the pure core.
package analysis

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/monjit-TAM/portfolio-analyser/internal/domain"
	"github.com/monjit-TAM/portfolio-analyser/internal/modules/aggregation"
	"github.com/monjit-TAM/portfolio-analyser/internal/modules/metrics"
	"github.com/monjit-TAM/portfolio-analyser/internal/modules/recommendation"
	"github.com/monjit-TAM/portfolio-analyser/internal/modules/valuation"
)

// Service runs the full analysis pipeline. The repository and cache are
// optional; without them the service is the pure pipeline.
type Service struct {
	valuator    *valuation.Service
	aggregator  *aggregation.Service
	metrics     *metrics.Engine
	recommender *recommendation.Engine

	repo  *Repository
	cache *Cache
	log   zerolog.Logger

	now   func() time.Time
	newID func() string
}

// NewService wires the pipeline stages together. repo and cache may be nil.
func NewService(
	valuator *valuation.Service,
	aggregator *aggregation.Service,
	metricsEngine *metrics.Engine,
	recommender *recommendation.Engine,
	repo *Repository,
	cache *Cache,
	log zerolog.Logger,
) *Service {
	return &Service{
		valuator:    valuator,
		aggregator:  aggregator,
		metrics:     metricsEngine,
		recommender: recommender,
		repo:        repo,
		cache:       cache,
		log:         log.With().Str("service", "analysis").Logger(),
		now:         time.Now,
		newID:       func() string { return uuid.New().String() },
	}
}

// Run executes the pipeline for one input set. Identical inputs within the
// cache TTL reuse the cached result; the run identity is always fresh.
func (s *Service) Run(ctx context.Context, input domain.AnalysisInput) (*Run, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := s.now()

	var result *Result
	var cacheHit bool
	hash := HashInput(input)
	if s.cache != nil {
		if cached, ok := s.cache.Get(hash); ok {
			result = cached
			cacheHit = true
		}
	}

	if result == nil {
		computed := s.compute(input)
		result = &computed
		if s.cache != nil {
			s.cache.Put(hash, result)
		}
	}

	run := &Run{
		ID:           s.newID(),
		CreatedAt:    start.UTC(),
		HoldingCount: len(result.Holdings),
		HealthScore:  result.Metrics.Health.Score,
		CacheHit:     cacheHit,
		Result:       *result,
	}

	if s.repo != nil {
		if err := s.repo.Save(run); err != nil {
			return nil, fmt.Errorf("failed to persist analysis run: %w", err)
		}
	}

	s.log.Info().
		Str("run_id", run.ID).
		Int("holdings", run.HoldingCount).
		Float64("health_score", run.HealthScore).
		Bool("cache_hit", cacheHit).
		Dur("elapsed", s.now().Sub(start)).
		Msg("Analysis run complete")
	return run, nil
}

// compute is the deterministic pipeline core: valuation, aggregation, then
// metrics and recommendations concurrently. No I/O.
func (s *Service) compute(input domain.AnalysisInput) Result {
	enriched, failures := s.valuator.Value(input.Holdings, input.CurrentPrices)

	skipped := make([]string, 0, len(failures))
	for _, err := range failures {
		skipped = append(skipped, err.Error())
	}

	agg := s.aggregator.Aggregate(enriched, input.History)

	result := Result{
		Summary:         agg.Summary,
		Holdings:        agg.Holdings,
		Sectors:         agg.Sectors,
		Categories:      agg.Categories,
		SkippedHoldings: skipped,
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		result.Metrics = s.metrics.Compute(agg.Holdings, agg.Summary, input.History, input.Benchmark)
	}()
	go func() {
		defer wg.Done()
		result.Recommendations = s.recommender.Recommend(agg.Holdings, input.Fundamentals, input.History)
	}()
	wg.Wait()

	return result
}

// GetRun loads a stored run. Returns (nil, nil) when it does not exist or
// no repository is configured.
func (s *Service) GetRun(id string) (*Run, error) {
	if s.repo == nil {
		return nil, nil
	}
	return s.repo.Get(id)
}

// ListRuns lists stored run summaries, newest first.
func (s *Service) ListRuns(limit int) ([]RunSummary, error) {
	if s.repo == nil {
		return []RunSummary{}, nil
	}
	return s.repo.List(limit)
}
