package recommendation

import (
	"fmt"

	"github.com/monjit-TAM/portfolio-analyser/internal/domain"
)

// valueScore runs the value-perspective signals: valuation multiples,
// dividend yield, leverage and a contrarian read of recent performance.
// A missing fundamental field skips that signal, it never scores zero.
func (e *Engine) valueScore(f domain.Fundamentals, recentPerf *float64) PerspectiveAnalysis {
	score := 0
	rationale := []string{}

	if f.PERatio != nil {
		pe := *f.PERatio
		switch {
		case pe < 15:
			score += 2
			rationale = append(rationale, fmt.Sprintf("P/E %.1f is attractively low (+2)", pe))
		case pe < 25:
			score++
			rationale = append(rationale, fmt.Sprintf("P/E %.1f is reasonable (+1)", pe))
		case pe > 40:
			score -= 2
			rationale = append(rationale, fmt.Sprintf("P/E %.1f is expensive (-2)", pe))
		default:
			score--
			rationale = append(rationale, fmt.Sprintf("P/E %.1f is above comfort (-1)", pe))
		}
	}

	if f.PBRatio != nil {
		pb := *f.PBRatio
		switch {
		case pb < 1:
			score += 2
			rationale = append(rationale, fmt.Sprintf("P/B %.2f below book value (+2)", pb))
		case pb < 3:
			score++
			rationale = append(rationale, fmt.Sprintf("P/B %.2f is moderate (+1)", pb))
		case pb > 6:
			score--
			rationale = append(rationale, fmt.Sprintf("P/B %.2f is stretched (-1)", pb))
		}
	}

	if f.DividendYield != nil {
		dy := *f.DividendYield
		switch {
		case dy > 3:
			score += 2
			rationale = append(rationale, fmt.Sprintf("Dividend yield %.1f%% is strong (+2)", dy))
		case dy > 1:
			score++
			rationale = append(rationale, fmt.Sprintf("Dividend yield %.1f%% adds income (+1)", dy))
		}
	}

	if f.DebtToEquity != nil {
		de := *f.DebtToEquity
		switch {
		case de < 0.3:
			score += 2
			rationale = append(rationale, fmt.Sprintf("Debt/equity %.2f is very low (+2)", de))
		case de < 1:
			score++
			rationale = append(rationale, fmt.Sprintf("Debt/equity %.2f is manageable (+1)", de))
		case de > 2:
			score -= 2
			rationale = append(rationale, fmt.Sprintf("Debt/equity %.2f is heavy (-2)", de))
		}
	}

	if recentPerf != nil {
		perf := *recentPerf
		switch {
		case perf < -15:
			score++
			rationale = append(rationale, fmt.Sprintf("Down %.1f%% in 30 days, contrarian entry (+1)", -perf))
		case perf > 25:
			score--
			rationale = append(rationale, fmt.Sprintf("Up %.1f%% in 30 days, already run up (-1)", perf))
		}
	}

	return PerspectiveAnalysis{Score: score, Action: actionFromScore(score), Rationale: rationale}
}
