// Package formulas provides the statistical building blocks shared by the
// analytics layers: return series, volatility, beta, drawdown and
// risk-adjusted ratios.
package formulas

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// TradingDaysPerYear is the annualization factor for daily return series.
const TradingDaysPerYear = 252

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// StdDev calculates the standard deviation of a slice of float64 values
func StdDev(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	return stat.StdDev(data, nil)
}

// Variance calculates the variance of a slice of float64 values
func Variance(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	return stat.Variance(data, nil)
}

// Covariance calculates the covariance between two equal-length datasets
func Covariance(x, y []float64) float64 {
	if len(x) < 2 || len(x) != len(y) {
		return 0
	}
	return stat.Covariance(x, y, nil)
}

// CalculateReturns converts prices to simple periodic returns.
// Returns[i] = (Price[i+1] - Price[i]) / Price[i]. Zero-price observations
// contribute a zero return rather than an infinity.
func CalculateReturns(prices []float64) []float64 {
	if len(prices) < 2 {
		return []float64{}
	}

	returns := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		if prices[i-1] != 0 {
			returns[i-1] = (prices[i] - prices[i-1]) / prices[i-1]
		}
	}

	return returns
}

// AnnualizedVolatility calculates annualized volatility from daily returns.
// Formula: StdDev of daily returns × sqrt(252 trading days).
func AnnualizedVolatility(dailyReturns []float64) float64 {
	if len(dailyReturns) == 0 {
		return 0
	}
	return StdDev(dailyReturns) * math.Sqrt(TradingDaysPerYear)
}

// Beta calculates the beta of an asset's returns against benchmark returns:
// covariance(asset, benchmark) / variance(benchmark).
// Returns (0, false) when the benchmark variance is zero or the series are
// too short to produce a meaningful estimate.
func Beta(assetReturns, benchmarkReturns []float64) (float64, bool) {
	if len(assetReturns) < 2 || len(assetReturns) != len(benchmarkReturns) {
		return 0, false
	}

	benchVar := Variance(benchmarkReturns)
	if benchVar == 0 {
		return 0, false
	}

	return Covariance(assetReturns, benchmarkReturns) / benchVar, true
}

// DownsideDeviation calculates the annualized downside deviation of daily
// returns below the given annual minimum acceptable return.
func DownsideDeviation(dailyReturns []float64, annualMAR float64) float64 {
	if len(dailyReturns) == 0 {
		return 0
	}

	periodicMAR := annualMAR / TradingDaysPerYear

	var downsideSquaredSum float64
	count := 0
	for _, ret := range dailyReturns {
		if ret < periodicMAR {
			deviation := ret - periodicMAR
			downsideSquaredSum += deviation * deviation
			count++
		}
	}
	if count == 0 {
		return 0
	}

	return math.Sqrt(downsideSquaredSum/float64(count)) * math.Sqrt(TradingDaysPerYear)
}
