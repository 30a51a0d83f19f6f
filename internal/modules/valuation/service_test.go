package valuation

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monjit-TAM/portfolio-analyser/internal/domain"
	"github.com/monjit-TAM/portfolio-analyser/internal/refdata"
)

func newTestService() *Service {
	s := NewService(refdata.Defaults(), zerolog.Nop())
	s.SetNow(func() time.Time {
		return time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	})
	return s
}

func price(v float64) *float64 { return &v }

func TestValueBasicGain(t *testing.T) {
	s := newTestService()

	holdings := []domain.Holding{
		{Symbol: "AAA", Quantity: 10, BuyPrice: 100, BuyDate: "2025-01-01"},
	}
	prices := map[string]*float64{"AAA": price(150)}

	enriched, failures := s.Value(holdings, prices)
	require.Empty(t, failures)
	require.Len(t, enriched, 1)

	e := enriched[0]
	assert.Equal(t, 1000.0, e.InvestmentValue)
	assert.Equal(t, 1500.0, e.CurrentValue)
	assert.Equal(t, 500.0, e.AbsoluteGainLoss)
	assert.InDelta(t, 50.0, e.PercentageGainLoss, 1e-9)
}

func TestValueMissingPriceFallsBackToBuyPrice(t *testing.T) {
	s := newTestService()

	enriched, failures := s.Value([]domain.Holding{
		{Symbol: "BBB", Quantity: 5, BuyPrice: 200, BuyDate: "2025-01-01"},
	}, map[string]*float64{})

	require.Empty(t, failures)
	require.Len(t, enriched, 1)
	assert.Equal(t, 200.0, enriched[0].CurrentPrice)
	assert.Equal(t, 0.0, enriched[0].AbsoluteGainLoss)
	assert.Equal(t, 0.0, enriched[0].PercentageGainLoss)
}

func TestValueNilPriceFallsBack(t *testing.T) {
	s := newTestService()

	enriched, _ := s.Value([]domain.Holding{
		{Symbol: "CCC", Quantity: 1, BuyPrice: 50, BuyDate: "2025-01-01"},
	}, map[string]*float64{"CCC": nil})

	require.Len(t, enriched, 1)
	assert.Equal(t, 50.0, enriched[0].CurrentPrice)
}

func TestValueZeroInvestmentNoDivisionByZero(t *testing.T) {
	s := newTestService()

	enriched, failures := s.Value([]domain.Holding{
		{Symbol: "DDD", Quantity: 10, BuyPrice: 0, BuyDate: "2025-01-01"},
	}, map[string]*float64{"DDD": price(25)})

	require.Empty(t, failures)
	require.Len(t, enriched, 1)
	assert.Equal(t, 0.0, enriched[0].InvestmentValue)
	assert.Equal(t, 250.0, enriched[0].CurrentValue)
	assert.Equal(t, 0.0, enriched[0].PercentageGainLoss)
}

func TestValueNegativeQuantityFailsThatHoldingOnly(t *testing.T) {
	s := newTestService()

	enriched, failures := s.Value([]domain.Holding{
		{Symbol: "BAD", Quantity: -1, BuyPrice: 100, BuyDate: "2025-01-01"},
		{Symbol: "GOOD", Quantity: 1, BuyPrice: 100, BuyDate: "2025-01-01"},
	}, map[string]*float64{})

	require.Len(t, failures, 1)
	assert.True(t, domain.IsValidation(failures[0]))
	require.Len(t, enriched, 1)
	assert.Equal(t, "GOOD", enriched[0].Symbol)
}

func TestValueClassifiesSectorAndCategory(t *testing.T) {
	s := newTestService()

	enriched, _ := s.Value([]domain.Holding{
		{Symbol: "HDFCBANK", Quantity: 1, BuyPrice: 1500, BuyDate: "2025-01-01"},
		{Symbol: "UNKNOWNCO", Quantity: 1, BuyPrice: 10, BuyDate: "2025-01-01"},
	}, map[string]*float64{})

	require.Len(t, enriched, 2)
	assert.Equal(t, "Banking", enriched[0].Sector)
	assert.Equal(t, refdata.CategoryLargeCap, enriched[0].Category)
	assert.Equal(t, "Other", enriched[1].Sector)
	assert.Equal(t, refdata.CategorySmallCap, enriched[1].Category)
}

func TestValueHoldingDays(t *testing.T) {
	s := newTestService()

	enriched, _ := s.Value([]domain.Holding{
		{Symbol: "AAA", Quantity: 1, BuyPrice: 10, BuyDate: "2026-05-01"},
		{Symbol: "BBB", Quantity: 1, BuyPrice: 10, BuyDate: "not-a-date"},
	}, map[string]*float64{})

	require.Len(t, enriched, 2)
	assert.Equal(t, 31, enriched[0].HoldingDays)
	assert.Equal(t, -1, enriched[1].HoldingDays)
}
