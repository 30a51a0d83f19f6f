package formulas

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateReturns(t *testing.T) {
	prices := []float64{100, 110, 99}
	returns := CalculateReturns(prices)

	require.Len(t, returns, 2)
	assert.InDelta(t, 0.10, returns[0], 1e-9)
	assert.InDelta(t, -0.10, returns[1], 1e-9)
}

func TestCalculateReturnsShortSeries(t *testing.T) {
	assert.Empty(t, CalculateReturns([]float64{100}))
	assert.Empty(t, CalculateReturns(nil))
}

func TestCalculateReturnsZeroPrice(t *testing.T) {
	returns := CalculateReturns([]float64{0, 100, 110})

	require.Len(t, returns, 2)
	assert.Equal(t, 0.0, returns[0])
	assert.False(t, math.IsInf(returns[0], 0))
}

func TestAnnualizedVolatility(t *testing.T) {
	// Constant returns have zero standard deviation.
	assert.Equal(t, 0.0, AnnualizedVolatility([]float64{0.01, 0.01, 0.01}))

	returns := []float64{0.01, -0.01, 0.02, -0.02}
	vol := AnnualizedVolatility(returns)
	assert.InDelta(t, StdDev(returns)*math.Sqrt(252), vol, 1e-12)
	assert.Greater(t, vol, 0.0)
}

func TestBeta(t *testing.T) {
	bench := []float64{0.01, -0.02, 0.03, -0.01, 0.02}

	// An asset that moves exactly 2x the benchmark has beta 2.
	asset := make([]float64, len(bench))
	for i, r := range bench {
		asset[i] = 2 * r
	}

	beta, ok := Beta(asset, bench)
	require.True(t, ok)
	assert.InDelta(t, 2.0, beta, 1e-9)
}

func TestBetaDegenerateBenchmark(t *testing.T) {
	// Zero benchmark variance must not divide by zero.
	_, ok := Beta([]float64{0.01, 0.02, 0.03}, []float64{0.01, 0.01, 0.01})
	assert.False(t, ok)

	_, ok = Beta([]float64{0.01}, []float64{0.01})
	assert.False(t, ok)
}

func TestCalculateMaxDrawdown(t *testing.T) {
	// Peak 120 down to 60 is a 50% drawdown.
	values := []float64{100, 120, 90, 60, 80}
	assert.InDelta(t, 0.5, CalculateMaxDrawdown(values), 1e-9)

	// Monotonic rise has no drawdown.
	assert.Equal(t, 0.0, CalculateMaxDrawdown([]float64{100, 110, 120}))
	assert.Equal(t, 0.0, CalculateMaxDrawdown([]float64{100}))
}

func TestHighestSince(t *testing.T) {
	values := []float64{100, 150, 120, 140}

	high, ok := HighestSince(values, 2)
	require.True(t, ok)
	assert.Equal(t, 140.0, high)

	high, ok = HighestSince(values, 0)
	require.True(t, ok)
	assert.Equal(t, 150.0, high)

	_, ok = HighestSince(values, 10)
	assert.False(t, ok)
}

func TestSharpeRatio(t *testing.T) {
	// Zero-volatility series yields 0 rather than dividing by zero.
	assert.Equal(t, 0.0, SharpeRatio([]float64{0.01, 0.01}, 0.06))

	returns := []float64{0.02, -0.01, 0.015, -0.005, 0.01}
	sharpe := SharpeRatio(returns, 0.06)
	expected := (Mean(returns)*252 - 0.06) / AnnualizedVolatility(returns)
	assert.InDelta(t, expected, sharpe, 1e-12)
}

func TestSortinoRatioNoDownside(t *testing.T) {
	// All returns far above the MAR: no downside deviation, ratio is 0.
	assert.Equal(t, 0.0, SortinoRatio([]float64{0.05, 0.04, 0.06}, 0.06))
}

func TestCalculateMomentum(t *testing.T) {
	prices := []float64{100, 105, 110, 120}

	m := CalculateMomentum(prices, 3)
	require.NotNil(t, m)
	assert.InDelta(t, 0.20, *m, 1e-9)

	assert.Nil(t, CalculateMomentum(prices, 10))
}

func TestCalculateRSIInsufficientData(t *testing.T) {
	assert.Nil(t, CalculateRSI([]float64{100, 101}, 14))
}

func TestCalculateRSIUptrend(t *testing.T) {
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}

	rsi := CalculateRSI(closes, 14)
	require.NotNil(t, rsi)
	// A pure uptrend pins RSI at the top of its range.
	assert.Greater(t, *rsi, 90.0)
	assert.LessOrEqual(t, *rsi, 100.0)
}
