package recommendation

import (
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monjit-TAM/portfolio-analyser/internal/domain"
	"github.com/monjit-TAM/portfolio-analyser/internal/refdata"
)

func newTestEngine() *Engine {
	return NewEngine(refdata.Defaults(), zerolog.Nop())
}

func f64(v float64) *float64 { return &v }

func enriched(symbol, sector string, currentPrice float64) domain.EnrichedHolding {
	return domain.EnrichedHolding{
		Holding:      domain.Holding{Symbol: symbol, Quantity: 1, BuyPrice: currentPrice, BuyDate: "2025-01-01"},
		CurrentPrice: currentPrice,
		Sector:       sector,
	}
}

func TestCombinedScoreMatchesActionWeights(t *testing.T) {
	cases := []struct {
		value, growth Action
		combined      float64
		overall       Action
		confidence    string
	}{
		{ActionBuy, ActionBuy, 2.0, ActionBuy, ConfidenceHigh},
		{ActionBuy, ActionHold, 1.5, ActionBuy, ConfidenceHigh},
		{ActionBuy, ActionSell, 1.0, ActionHold, ConfidenceMedium},
		{ActionHold, ActionHold, 1.0, ActionHold, ConfidenceHigh},
		{ActionHold, ActionSell, 0.5, ActionSell, ConfidenceHigh},
		{ActionSell, ActionSell, 0.0, ActionSell, ConfidenceHigh},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s_%s", tc.value, tc.growth), func(t *testing.T) {
			overall := combine(tc.value, tc.growth)
			assert.Equal(t, tc.combined, overall.CombinedScore)
			assert.Equal(t, tc.overall, overall.Action)
			assert.Equal(t, tc.confidence, overall.Confidence)
		})
	}
}

func TestValueBuyGrowthSellGivesHoldMedium(t *testing.T) {
	e := newTestEngine()

	f := domain.Fundamentals{
		PERatio:        f64(10),  // +2
		PBRatio:        f64(0.8), // +2
		DividendYield:  f64(4),   // +2
		RevenueGrowth:  f64(-5),  // -2
		EarningsGrowth: f64(-5),  // -2
		ROE:            f64(5),   // -1
	}
	rec := e.recommendOne(enriched("HDFCBANK", "Banking", 1500), f, nil)

	assert.Equal(t, ActionBuy, rec.ValueAnalysis.Action)
	assert.Equal(t, ActionSell, rec.GrowthAnalysis.Action)
	assert.Equal(t, 1.0, rec.Overall.CombinedScore)
	assert.Equal(t, ActionHold, rec.Overall.Action)
	assert.Equal(t, ConfidenceMedium, rec.Overall.Confidence)
	assert.Empty(t, rec.Alternatives)
}

func TestStrongFundamentalsGiveBuy(t *testing.T) {
	e := newTestEngine()

	f := domain.Fundamentals{
		PERatio:          f64(12),
		DividendYield:    f64(3.5),
		DebtToEquity:     f64(0.2),
		RevenueGrowth:    f64(25),
		EarningsGrowth:   f64(30),
		ROE:              f64(22),
		FiftyTwoWeekHigh: f64(1550),
	}
	rec := e.recommendOne(enriched("HDFCBANK", "Banking", 1500), f, nil)

	assert.Equal(t, ActionBuy, rec.ValueAnalysis.Action)
	assert.Equal(t, ActionBuy, rec.GrowthAnalysis.Action)
	assert.Equal(t, ActionBuy, rec.Overall.Action)
	assert.Equal(t, ConfidenceHigh, rec.Overall.Confidence)
	assert.NotEmpty(t, rec.ValueAnalysis.Rationale)
}

func TestSellProvidesSectorAlternatives(t *testing.T) {
	e := newTestEngine()

	f := domain.Fundamentals{
		PERatio:        f64(50), // -2
		DebtToEquity:   f64(3),  // -2
		RevenueGrowth:  f64(-8), // -2
		EarningsGrowth: f64(-4), // -2
	}
	rec := e.recommendOne(enriched("AXISBANK", "Banking", 900), f, nil)

	assert.Equal(t, ActionSell, rec.Overall.Action)
	require.NotEmpty(t, rec.Alternatives)
	assert.LessOrEqual(t, len(rec.Alternatives), 3)
	assert.NotContains(t, rec.Alternatives, "AXISBANK")
}

func TestMissingFundamentalsScoreZeroHold(t *testing.T) {
	e := newTestEngine()

	rec := e.recommendOne(enriched("UNKNOWNCO", "Other", 100), domain.Fundamentals{}, nil)

	assert.Equal(t, 0, rec.ValueAnalysis.Score)
	assert.Equal(t, 0, rec.GrowthAnalysis.Score)
	assert.Equal(t, ActionHold, rec.Overall.Action)
	assert.Empty(t, rec.ValueAnalysis.Rationale)
}

func TestRecommendProducesOneRecordPerHolding(t *testing.T) {
	e := newTestEngine()

	holdings := []domain.EnrichedHolding{
		enriched("TCS", "IT", 3500),
		enriched("INFY", "IT", 1500),
	}
	records := e.Recommend(holdings, nil, nil)

	require.Len(t, records, 2)
	assert.Equal(t, "TCS", records[0].Symbol)
	assert.Equal(t, "INFY", records[1].Symbol)
}

func TestRSINoteOnSustainedUptrend(t *testing.T) {
	e := newTestEngine()

	series := make([]domain.PricePoint, 40)
	price := 100.0
	for i := range series {
		series[i] = domain.PricePoint{Date: fmt.Sprintf("2025-%02d-%02d", i/28+1, i%28+1), Close: price}
		price += 2
	}
	rec := e.recommendOne(enriched("TCS", "IT", price), domain.Fundamentals{}, series)

	require.NotEmpty(t, rec.Notes)
	assert.Contains(t, rec.Notes[0], "overbought")
}
