package formulas

// SharpeRatio calculates the annualized Sharpe ratio from daily returns.
//
// Sharpe = (annualized mean return − risk-free rate) / annualized volatility
//
// riskFreeRate is annual, as a decimal (0.06 for 6%). Returns 0 when the
// return series has zero volatility or is too short.
func SharpeRatio(dailyReturns []float64, riskFreeRate float64) float64 {
	if len(dailyReturns) < 2 {
		return 0
	}

	vol := AnnualizedVolatility(dailyReturns)
	if vol == 0 {
		return 0
	}

	annualReturn := Mean(dailyReturns) * TradingDaysPerYear
	return (annualReturn - riskFreeRate) / vol
}

// SortinoRatio calculates the annualized Sortino ratio from daily returns,
// using downside deviation below the risk-free rate instead of total
// volatility. Returns 0 when there are no observations below the target.
func SortinoRatio(dailyReturns []float64, riskFreeRate float64) float64 {
	if len(dailyReturns) < 2 {
		return 0
	}

	downside := DownsideDeviation(dailyReturns, riskFreeRate)
	if downside == 0 {
		return 0
	}

	annualReturn := Mean(dailyReturns) * TradingDaysPerYear
	return (annualReturn - riskFreeRate) / downside
}
