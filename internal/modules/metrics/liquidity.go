package metrics

import (
	"github.com/monjit-TAM/portfolio-analyser/internal/domain"
	"github.com/monjit-TAM/portfolio-analyser/internal/refdata"
	"github.com/monjit-TAM/portfolio-analyser/pkg/formulas"
)

const (
	// participationRate is the assumed share of daily traded value a seller
	// can absorb without moving the price.
	participationRate = 0.1

	tradedValueWindow = 20

	liquidityHighMaxDays   = 1.0
	liquidityMediumMaxDays = 5.0
)

// Liquidity grade labels.
const (
	GradeHigh   = "High"
	GradeMedium = "Medium"
	GradeLow    = "Low"
)

// liquidity estimates per-position days-to-liquidate against recent traded
// value. Missing volume data grades the position Medium with zero days
// rather than guessing either extreme.
func (e *Engine) liquidity(holdings []domain.EnrichedHolding, history map[string][]domain.PricePoint) LiquidityMetrics {
	m := LiquidityMetrics{Holdings: []HoldingLiquidity{}}
	if len(holdings) == 0 {
		return m
	}

	for _, h := range holdings {
		hl := HoldingLiquidity{Symbol: h.Symbol, Grade: GradeMedium}

		avgTradedValue := avgDailyTradedValue(history[h.Symbol])
		if avgTradedValue > 0 {
			hl.DaysToLiquidate = h.CurrentValue / (avgTradedValue * participationRate)
			switch {
			case hl.DaysToLiquidate <= liquidityHighMaxDays:
				hl.Grade = GradeHigh
			case hl.DaysToLiquidate <= liquidityMediumMaxDays:
				hl.Grade = GradeMedium
			default:
				hl.Grade = GradeLow
			}
		} else {
			e.log.Debug().Str("symbol", h.Symbol).Msg("No volume data, defaulting liquidity grade to Medium")
		}

		switch hl.Grade {
		case GradeHigh:
			m.HighCount++
		case GradeMedium:
			m.MediumCount++
		case GradeLow:
			m.LowCount++
		}
		m.Holdings = append(m.Holdings, hl)
	}

	n := float64(len(m.Holdings))
	m.LiquidityScore = clampScore((float64(m.HighCount)*100 + float64(m.MediumCount)*60 + float64(m.LowCount)*20) / n)
	return m
}

// avgDailyTradedValue is the mean close×volume over the trailing window.
// Returns 0 when the series carries no usable volume.
func avgDailyTradedValue(series []domain.PricePoint) float64 {
	if len(series) == 0 {
		return 0
	}
	start := len(series) - tradedValueWindow
	if start < 0 {
		start = 0
	}

	values := make([]float64, 0, tradedValueWindow)
	for _, p := range series[start:] {
		if p.Volume > 0 && p.Close > 0 {
			values = append(values, p.Close*p.Volume)
		}
	}
	if len(values) == 0 {
		return 0
	}
	return formulas.Mean(values)
}

const (
	tailRiskVolThreshold = 40.0

	tailHighVolExposureLimit = 30.0
	tailSmallCapLimit        = 40.0
	tailFlaggedCountLimit    = 5
)

// tailRisk penalizes exposure to high-volatility names and small caps.
func (e *Engine) tailRisk(holdings []domain.EnrichedHolding, summary domain.PortfolioSummary, stats map[string]stockStats) TailRiskMetrics {
	m := TailRiskMetrics{HighVolSymbols: []string{}, TailRiskScore: 100}
	if summary.CurrentValue <= 0 || len(holdings) == 0 {
		if len(holdings) == 0 {
			m.TailRiskScore = 0
		}
		return m
	}

	for _, h := range holdings {
		w := weightOf(h, summary.CurrentValue)
		if st, ok := stats[h.Symbol]; ok && st.annVol > tailRiskVolThreshold {
			m.HighVolSymbols = append(m.HighVolSymbols, h.Symbol)
			m.HighVolExposurePercent += w
		}
		if h.Category == refdata.CategorySmallCap {
			m.SmallCapPercent += w
		}
	}

	score := 100.0
	if m.HighVolExposurePercent > tailHighVolExposureLimit {
		score -= 35
	}
	if m.SmallCapPercent > tailSmallCapLimit {
		score -= 30
	}
	if len(m.HighVolSymbols) > tailFlaggedCountLimit {
		score -= 15
	}
	m.TailRiskScore = clampScore(score)
	return m
}
