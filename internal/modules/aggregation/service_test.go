package aggregation

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monjit-TAM/portfolio-analyser/internal/domain"
)

func enriched(symbol, sector, category string, invested, current float64) domain.EnrichedHolding {
	h := domain.EnrichedHolding{
		Holding:         domain.Holding{Symbol: symbol, Quantity: 1, BuyPrice: invested, BuyDate: "2025-01-01"},
		CurrentPrice:    current,
		InvestmentValue: invested,
		CurrentValue:    current,
		Sector:          sector,
		Category:        category,
	}
	h.AbsoluteGainLoss = current - invested
	if invested != 0 {
		h.PercentageGainLoss = h.AbsoluteGainLoss / invested * 100
	}
	return h
}

func TestSummarize(t *testing.T) {
	s := NewService(zerolog.Nop())

	sum := s.Summarize([]domain.EnrichedHolding{
		enriched("A", "IT", "Large Cap", 1000, 1500),
		enriched("B", "Banking", "Large Cap", 2000, 1800),
		enriched("C", "IT", "Mid Cap", 500, 500),
	})

	assert.Equal(t, 3500.0, sum.TotalInvestment)
	assert.Equal(t, 3800.0, sum.CurrentValue)
	assert.Equal(t, 300.0, sum.TotalGainLoss)
	assert.InDelta(t, 300.0/3500.0*100, sum.PercentageGainLoss, 1e-9)
	assert.Equal(t, 3, sum.HoldingCount)
	assert.Equal(t, 1, sum.ProfitableCount)
	assert.Equal(t, 1, sum.LossMakingCount)
}

func TestSummarizeEmpty(t *testing.T) {
	s := NewService(zerolog.Nop())

	sum := s.Summarize(nil)
	assert.Equal(t, 0.0, sum.TotalInvestment)
	assert.Equal(t, 0.0, sum.PercentageGainLoss)
	assert.Equal(t, 0, sum.HoldingCount)
}

func TestAggregateGroupPercentagesSumToHundred(t *testing.T) {
	s := NewService(zerolog.Nop())

	res := s.Aggregate([]domain.EnrichedHolding{
		enriched("A", "Banking", "Large Cap", 700, 800),
		enriched("B", "Banking", "Mid Cap", 100, 100),
		enriched("C", "IT", "Large Cap", 150, 200),
		enriched("D", "FMCG", "Small Cap", 50, 60),
	}, nil)

	for _, groups := range [][]domain.GroupAggregate{res.Sectors, res.Categories} {
		var sum float64
		for _, g := range groups {
			sum += g.PortfolioPercent
		}
		assert.InDelta(t, 100.0, sum, 0.5)
	}

	require.NotEmpty(t, res.Sectors)
	assert.Equal(t, "Banking", res.Sectors[0].Name)
	assert.Equal(t, 2, res.Sectors[0].HoldingCount)
	assert.InDelta(t, 900.0/1160.0*100, res.Sectors[0].PortfolioPercent, 1e-9)
}

func TestAggregateSortsGroupsByValue(t *testing.T) {
	s := NewService(zerolog.Nop())

	res := s.Aggregate([]domain.EnrichedHolding{
		enriched("A", "IT", "Large Cap", 100, 100),
		enriched("B", "Banking", "Large Cap", 100, 900),
	}, nil)

	require.Len(t, res.Sectors, 2)
	assert.Equal(t, "Banking", res.Sectors[0].Name)
	assert.Equal(t, "IT", res.Sectors[1].Name)
}

func TestAllTimeHighSincePurchase(t *testing.T) {
	s := NewService(zerolog.Nop())

	h := enriched("A", "IT", "Large Cap", 100, 120)
	h.BuyDate = "2025-06-01"
	history := map[string][]domain.PricePoint{
		"A": {
			{Date: "2025-05-01", High: 500, Close: 480}, // before purchase, ignored
			{Date: "2025-06-15", High: 150, Close: 140},
			{Date: "2025-07-01", High: 130, Close: 125},
		},
	}

	res := s.Aggregate([]domain.EnrichedHolding{h}, history)
	require.Len(t, res.Holdings, 1)
	got := res.Holdings[0]
	assert.Equal(t, 150.0, got.AllTimeHighSincePurchase)
	assert.InDelta(t, (150.0-120.0)/120.0*100, got.PotentialGainFromATH, 1e-9)
}

func TestAllTimeHighMissingHistoryFallsBackToCurrentPrice(t *testing.T) {
	s := NewService(zerolog.Nop())

	h := enriched("A", "IT", "Large Cap", 100, 120)
	res := s.Aggregate([]domain.EnrichedHolding{h}, nil)

	require.Len(t, res.Holdings, 1)
	assert.Equal(t, 120.0, res.Holdings[0].AllTimeHighSincePurchase)
	assert.Equal(t, 0.0, res.Holdings[0].PotentialGainFromATH)
}

func TestAllTimeHighUnparsableBuyDateUsesWholeSeries(t *testing.T) {
	s := NewService(zerolog.Nop())

	h := enriched("A", "IT", "Large Cap", 100, 120)
	h.BuyDate = "garbage"
	history := map[string][]domain.PricePoint{
		"A": {
			{Date: "2025-05-01", High: 500, Close: 480},
			{Date: "2025-07-01", High: 130, Close: 125},
		},
	}

	res := s.Aggregate([]domain.EnrichedHolding{h}, history)
	require.Len(t, res.Holdings, 1)
	assert.Equal(t, 500.0, res.Holdings[0].AllTimeHighSincePurchase)
}
