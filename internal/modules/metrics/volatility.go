package metrics

import (
	"github.com/monjit-TAM/portfolio-analyser/internal/domain"
	"github.com/monjit-TAM/portfolio-analyser/pkg/formulas"
)

// volatility computes the value-weighted portfolio risk statistics over the
// holdings that have a usable historical series. A stock with insufficient
// history is excluded from the weighting; it never zeroes the whole metric.
func (e *Engine) volatility(holdings []domain.EnrichedHolding, stats map[string]stockStats) VolatilityMetrics {
	m := VolatilityMetrics{}

	var coveredValue float64
	for _, h := range holdings {
		if _, ok := stats[h.Symbol]; ok {
			coveredValue += h.CurrentValue
			m.CoveredHoldings++
		}
	}
	if coveredValue <= 0 {
		return m
	}

	var betaValue float64
	var weightedDailyMean float64
	var weightedDownside float64
	for _, h := range holdings {
		st, ok := stats[h.Symbol]
		if !ok {
			continue
		}
		w := h.CurrentValue / coveredValue
		m.AnnualizedVolatility += w * st.annVol
		m.MaxDrawdown += w * st.maxDD
		weightedDailyMean += w * st.dailyMean
		weightedDownside += w * formulas.DownsideDeviation(st.returns, riskFreeRate)
		if st.hasBeta {
			m.PortfolioBeta += w * st.beta
			betaValue += w
		}
	}
	if betaValue > 0 {
		m.PortfolioBeta /= betaValue
	}

	m.DownsideDeviation = weightedDownside * 100

	annualReturn := weightedDailyMean * formulas.TradingDaysPerYear
	if m.AnnualizedVolatility > 0 {
		m.SharpeRatio = (annualReturn - riskFreeRate) / (m.AnnualizedVolatility / 100)
	}
	if weightedDownside > 0 {
		m.SortinoRatio = (annualReturn - riskFreeRate) / weightedDownside
	}
	return m
}
