package analysis

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monjit-TAM/portfolio-analyser/internal/domain"
	"github.com/monjit-TAM/portfolio-analyser/internal/modules/aggregation"
	"github.com/monjit-TAM/portfolio-analyser/internal/modules/metrics"
	"github.com/monjit-TAM/portfolio-analyser/internal/modules/recommendation"
	"github.com/monjit-TAM/portfolio-analyser/internal/modules/valuation"
	"github.com/monjit-TAM/portfolio-analyser/internal/refdata"
)

func newTestService() *Service {
	ref := refdata.Defaults()
	log := zerolog.Nop()
	return NewService(
		valuation.NewService(ref, log),
		aggregation.NewService(log),
		metrics.NewEngine(ref, log),
		recommendation.NewEngine(ref, log),
		nil, nil, log,
	)
}

func price(v float64) *float64 { return &v }

func TestRunBasicScenario(t *testing.T) {
	s := newTestService()

	input := domain.AnalysisInput{
		Holdings:      []domain.Holding{{Symbol: "AAA", Quantity: 10, BuyPrice: 100, BuyDate: "2025-01-01"}},
		CurrentPrices: map[string]*float64{"AAA": price(150)},
	}
	run, err := s.Run(context.Background(), input)
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.NotEmpty(t, run.ID)

	require.Len(t, run.Result.Holdings, 1)
	h := run.Result.Holdings[0]
	assert.Equal(t, 1000.0, h.InvestmentValue)
	assert.Equal(t, 1500.0, h.CurrentValue)
	assert.Equal(t, 500.0, h.AbsoluteGainLoss)
	assert.InDelta(t, 50.0, h.PercentageGainLoss, 1e-9)

	assert.Equal(t, 1000.0, run.Result.Summary.TotalInvestment)
	assert.Equal(t, 1500.0, run.Result.Summary.CurrentValue)
	require.Len(t, run.Result.Recommendations, 1)
	assert.Equal(t, "AAA", run.Result.Recommendations[0].Symbol)
}

func TestComputeIsIdempotent(t *testing.T) {
	s := newTestService()

	input := domain.AnalysisInput{
		Holdings: []domain.Holding{
			{Symbol: "HDFCBANK", Quantity: 10, BuyPrice: 1400, BuyDate: "2024-06-01"},
			{Symbol: "TCS", Quantity: 5, BuyPrice: 3600, BuyDate: "2025-02-01"},
		},
		CurrentPrices: map[string]*float64{"HDFCBANK": price(1550), "TCS": price(3400)},
		Fundamentals: map[string]domain.Fundamentals{
			"HDFCBANK": {PERatio: price(18), ROE: price(16)},
		},
	}

	first := s.compute(input)
	second := s.compute(input)
	assert.Equal(t, first, second)
}

func TestRunValidationFailureSkipsHoldingOnly(t *testing.T) {
	s := newTestService()

	input := domain.AnalysisInput{
		Holdings: []domain.Holding{
			{Symbol: "BAD", Quantity: -5, BuyPrice: 100, BuyDate: "2025-01-01"},
			{Symbol: "GOOD", Quantity: 1, BuyPrice: 100, BuyDate: "2025-01-01"},
		},
		CurrentPrices: map[string]*float64{},
	}
	run, err := s.Run(context.Background(), input)
	require.NoError(t, err)

	require.Len(t, run.Result.Holdings, 1)
	assert.Equal(t, "GOOD", run.Result.Holdings[0].Symbol)
	require.Len(t, run.Result.SkippedHoldings, 1)
	assert.Contains(t, run.Result.SkippedHoldings[0], "BAD")
}

func TestRunCancelledContext(t *testing.T) {
	s := newTestService()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Run(ctx, domain.AnalysisInput{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHashInputStableAndSensitive(t *testing.T) {
	base := domain.AnalysisInput{
		Holdings:      []domain.Holding{{Symbol: "AAA", Quantity: 10, BuyPrice: 100, BuyDate: "2025-01-01"}},
		CurrentPrices: map[string]*float64{"AAA": price(150), "BBB": nil},
		History: map[string][]domain.PricePoint{
			"AAA": {{Date: "2025-01-02", Close: 101, Volume: 1000}},
		},
		Fundamentals: map[string]domain.Fundamentals{"AAA": {PERatio: price(20)}},
	}

	assert.Equal(t, HashInput(base), HashInput(base))

	changed := base
	changed.CurrentPrices = map[string]*float64{"AAA": price(151), "BBB": nil}
	assert.NotEqual(t, HashInput(base), HashInput(changed))

	reordered := base
	reordered.CurrentPrices = map[string]*float64{"BBB": nil, "AAA": price(150)}
	assert.Equal(t, HashInput(base), HashInput(reordered))
}

func TestListRunsWithoutRepository(t *testing.T) {
	s := newTestService()

	runs, err := s.ListRuns(10)
	require.NoError(t, err)
	assert.Empty(t, runs)

	run, err := s.GetRun("nope")
	require.NoError(t, err)
	assert.Nil(t, run)
}
