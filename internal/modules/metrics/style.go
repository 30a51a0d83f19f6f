package metrics

import "github.com/monjit-TAM/portfolio-analyser/internal/domain"

const (
	valueSignalLossPercent  = 10.0
	growthSignalGainPercent = 20.0
	styleDominancePercent   = 60.0

	highVolBand = 35.0
	lowVolBand  = 20.0
)

// style classifies the portfolio's value/growth tilt from gain-loss
// dispersion and its volatility tilt from per-stock annualized volatility.
// An established quality name counts toward the value tilt on any loss; the
// deep-loss band applies to everything else.
func (e *Engine) style(holdings []domain.EnrichedHolding, stats map[string]stockStats) StyleMetrics {
	m := StyleMetrics{StyleLabel: "Blend", VolatilityTilt: "Balanced"}
	if len(holdings) == 0 {
		return m
	}

	total := float64(len(holdings))
	var valueCount, growthCount int
	for _, h := range holdings {
		if h.PercentageGainLoss < -valueSignalLossPercent ||
			(h.PercentageGainLoss < 0 && e.ref.IsQuality(h.Symbol)) {
			valueCount++
		}
		if h.PercentageGainLoss > growthSignalGainPercent {
			growthCount++
		}
	}
	m.ValueTiltPercent = float64(valueCount) / total * 100
	m.GrowthTiltPercent = float64(growthCount) / total * 100

	switch {
	case m.ValueTiltPercent > styleDominancePercent:
		m.StyleLabel = "Value"
	case m.GrowthTiltPercent > styleDominancePercent:
		m.StyleLabel = "Growth"
	}

	var covered, highVol, lowVol int
	for _, h := range holdings {
		st, ok := stats[h.Symbol]
		if !ok {
			continue
		}
		covered++
		if st.annVol > highVolBand {
			highVol++
		} else if st.annVol < lowVolBand {
			lowVol++
		}
	}
	if covered > 0 {
		m.HighVolPercent = float64(highVol) / float64(covered) * 100
		m.LowVolPercent = float64(lowVol) / float64(covered) * 100
		switch {
		case m.HighVolPercent > 50:
			m.VolatilityTilt = "High Beta"
		case m.LowVolPercent > 50:
			m.VolatilityTilt = "Low Volatility"
		}
	}
	return m
}
