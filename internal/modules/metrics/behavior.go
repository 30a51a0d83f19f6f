package metrics

import "github.com/monjit-TAM/portfolio-analyser/internal/domain"

const (
	shortTermHoldDays     = 90
	overtradingPercent    = 50.0
	longTermThresholdDays = 365

	stcgRate      = 0.20
	ltcgRate      = 0.125
	ltcgExemption = 125000.0
)

// behavior scores holding-period discipline. Holdings with an unparsable
// buy date are left out of the average.
func (e *Engine) behavior(holdings []domain.EnrichedHolding) BehaviorMetrics {
	m := BehaviorMetrics{}
	if len(holdings) == 0 {
		return m
	}

	var totalDays, counted int
	for _, h := range holdings {
		if h.HoldingDays < 0 {
			continue
		}
		totalDays += h.HoldingDays
		counted++
		if h.HoldingDays < shortTermHoldDays {
			m.ShortTermCount++
		}
	}
	if counted == 0 {
		m.BehaviorScore = 50
		return m
	}

	m.AverageHoldingDays = float64(totalDays) / float64(counted)
	m.ShortTermPercent = float64(m.ShortTermCount) / float64(counted) * 100
	m.Overtrading = m.ShortTermPercent > overtradingPercent

	score := 100.0
	if m.AverageHoldingDays < shortTermHoldDays {
		score -= 30
	} else if m.AverageHoldingDays < 180 {
		score -= 15
	}
	if m.Overtrading {
		score -= 25
	}
	m.BehaviorScore = clampScore(score)
	return m
}

// tax splits unrealized gains and losses at the 365-day holding threshold
// and estimates capital-gains tax on the gains only. An unparsable buy date
// is treated as short-term.
func (e *Engine) tax(holdings []domain.EnrichedHolding) TaxMetrics {
	m := TaxMetrics{}
	for _, h := range holdings {
		longTerm := h.HoldingDays >= longTermThresholdDays
		switch {
		case h.AbsoluteGainLoss >= 0 && longTerm:
			m.LongTermGain += h.AbsoluteGainLoss
		case h.AbsoluteGainLoss >= 0:
			m.ShortTermGain += h.AbsoluteGainLoss
		case longTerm:
			m.LongTermLoss += -h.AbsoluteGainLoss
		default:
			m.ShortTermLoss += -h.AbsoluteGainLoss
		}
	}

	m.EstimatedSTCGTax = m.ShortTermGain * stcgRate

	if m.LongTermGain > ltcgExemption {
		m.LTCGExemptionUsed = ltcgExemption
		m.EstimatedLTCGTax = (m.LongTermGain - ltcgExemption) * ltcgRate
	} else {
		m.LTCGExemptionUsed = m.LongTermGain
	}
	return m
}
