package metrics

import "github.com/monjit-TAM/portfolio-analyser/internal/domain"

// Health component weights. Sum to 1.
const (
	healthWeightDiversification = 0.25
	healthWeightRisk            = 0.25
	healthWeightLiquidity       = 0.20
	healthWeightBehavior        = 0.15
	healthWeightStyleBalance    = 0.15
)

// health blends the sub-scores the other layers produced into the 0-100
// composite. Each component is clamped before weighting, so one extreme
// layer cannot push the composite out of range.
func (e *Engine) health(holdings []domain.EnrichedHolding, b Bundle) HealthMetrics {
	if len(holdings) == 0 {
		return HealthMetrics{Grade: "D", Components: map[string]float64{}}
	}

	components := map[string]float64{
		"diversification": clampScore(b.Concentration.ConcentrationScore),
		"risk":            clampScore(100 - 2*b.Volatility.AnnualizedVolatility),
		"liquidity":       clampScore(b.Liquidity.LiquidityScore),
		"behavior":        clampScore(b.Behavior.BehaviorScore),
		"style_balance":   clampScore(100 - 2*abs(50-b.Style.ValueTiltPercent)),
	}

	score := components["diversification"]*healthWeightDiversification +
		components["risk"]*healthWeightRisk +
		components["liquidity"]*healthWeightLiquidity +
		components["behavior"]*healthWeightBehavior +
		components["style_balance"]*healthWeightStyleBalance

	return HealthMetrics{
		Score:      clampScore(score),
		Grade:      healthGrade(score),
		Components: components,
	}
}

func healthGrade(score float64) string {
	switch {
	case score >= 80:
		return "A"
	case score >= 65:
		return "B"
	case score >= 50:
		return "C"
	default:
		return "D"
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
