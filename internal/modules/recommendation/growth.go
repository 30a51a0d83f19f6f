package recommendation

import (
	"fmt"

	"github.com/monjit-TAM/portfolio-analyser/internal/domain"
)

// growthScore runs the growth-perspective signals: revenue and earnings
// growth, return on equity, distance from the 52-week high and recent
// momentum. Missing fields skip their signal.
func (e *Engine) growthScore(f domain.Fundamentals, currentPrice float64, recentPerf *float64) PerspectiveAnalysis {
	score := 0
	rationale := []string{}

	if f.RevenueGrowth != nil {
		rg := *f.RevenueGrowth
		switch {
		case rg > 20:
			score += 2
			rationale = append(rationale, fmt.Sprintf("Revenue growing %.1f%% (+2)", rg))
		case rg > 10:
			score++
			rationale = append(rationale, fmt.Sprintf("Revenue growing %.1f%% (+1)", rg))
		case rg < 0:
			score -= 2
			rationale = append(rationale, fmt.Sprintf("Revenue shrinking %.1f%% (-2)", rg))
		}
	}

	if f.EarningsGrowth != nil {
		eg := *f.EarningsGrowth
		switch {
		case eg > 25:
			score += 2
			rationale = append(rationale, fmt.Sprintf("Earnings growing %.1f%% (+2)", eg))
		case eg > 12:
			score++
			rationale = append(rationale, fmt.Sprintf("Earnings growing %.1f%% (+1)", eg))
		case eg < 0:
			score -= 2
			rationale = append(rationale, fmt.Sprintf("Earnings shrinking %.1f%% (-2)", eg))
		}
	}

	if f.ROE != nil {
		roe := *f.ROE
		switch {
		case roe > 20:
			score += 2
			rationale = append(rationale, fmt.Sprintf("ROE %.1f%% is excellent (+2)", roe))
		case roe > 12:
			score++
			rationale = append(rationale, fmt.Sprintf("ROE %.1f%% is healthy (+1)", roe))
		case roe < 8:
			score--
			rationale = append(rationale, fmt.Sprintf("ROE %.1f%% is weak (-1)", roe))
		}
	}

	if f.FiftyTwoWeekHigh != nil && *f.FiftyTwoWeekHigh > 0 && currentPrice > 0 {
		distance := (*f.FiftyTwoWeekHigh - currentPrice) / *f.FiftyTwoWeekHigh * 100
		switch {
		case distance < 10:
			score += 2
			rationale = append(rationale, fmt.Sprintf("Within %.1f%% of 52-week high (+2)", distance))
		case distance < 25:
			score++
			rationale = append(rationale, fmt.Sprintf("%.1f%% off 52-week high (+1)", distance))
		case distance > 50:
			score--
			rationale = append(rationale, fmt.Sprintf("%.1f%% below 52-week high (-1)", distance))
		}
	}

	if recentPerf != nil {
		perf := *recentPerf
		switch {
		case perf > 10:
			score++
			rationale = append(rationale, fmt.Sprintf("Momentum up %.1f%% in 30 days (+1)", perf))
		case perf < -20:
			score--
			rationale = append(rationale, fmt.Sprintf("Momentum down %.1f%% in 30 days (-1)", -perf))
		}
	}

	return PerspectiveAnalysis{Score: score, Action: actionFromScore(score), Rationale: rationale}
}
