package metrics

import (
	"fmt"

	"github.com/monjit-TAM/portfolio-analyser/internal/domain"
	"github.com/monjit-TAM/portfolio-analyser/internal/refdata"
)

const (
	indexCorrectionDrop = 0.10
	midcapCrashDrop     = 0.20
	sectorDownturnDrop  = 0.15

	// betaProxy stands in for holdings whose beta could not be estimated.
	betaProxy = 0.3
)

// scenario projects portfolio impact under the named market-drop scenarios.
// Each in-scope holding loses value × beta × drop; the scenarios differ only
// in scope and drop size.
func (e *Engine) scenario(holdings []domain.EnrichedHolding, summary domain.PortfolioSummary, stats map[string]stockStats) ScenarioMetrics {
	m := ScenarioMetrics{Scenarios: []ScenarioImpact{}}
	if summary.CurrentValue <= 0 || len(holdings) == 0 {
		return m
	}

	all := func(domain.EnrichedHolding) bool { return true }
	midOrSmall := func(h domain.EnrichedHolding) bool {
		return h.Category == refdata.CategoryMidCap || h.Category == refdata.CategorySmallCap
	}

	m.Scenarios = append(m.Scenarios,
		e.project("Index Correction", "Broad index falls 10%", indexCorrectionDrop, holdings, summary, stats, all),
		e.project("Midcap Crash", "Mid and small caps fall 20%", midcapCrashDrop, holdings, summary, stats, midOrSmall),
	)

	if sector := largestSector(holdings); sector != "" {
		inSector := func(h domain.EnrichedHolding) bool { return h.Sector == sector }
		m.Scenarios = append(m.Scenarios, e.project(
			fmt.Sprintf("%s Downturn", sector),
			fmt.Sprintf("%s sector falls 15%%", sector),
			sectorDownturnDrop, holdings, summary, stats, inSector,
		))
	}
	return m
}

func (e *Engine) project(name, description string, drop float64, holdings []domain.EnrichedHolding, summary domain.PortfolioSummary, stats map[string]stockStats, inScope func(domain.EnrichedHolding) bool) ScenarioImpact {
	var loss float64
	for _, h := range holdings {
		if !inScope(h) {
			continue
		}
		beta := betaProxy
		if st, ok := stats[h.Symbol]; ok && st.hasBeta {
			beta = st.beta
		}
		loss += h.CurrentValue * beta * drop
	}

	return ScenarioImpact{
		Name:                 name,
		Description:          description,
		ProjectedLoss:        loss,
		ProjectedLossPercent: loss / summary.CurrentValue * 100,
		ProjectedValue:       summary.CurrentValue - loss,
	}
}

// largestSector returns the sector carrying the most current value.
func largestSector(holdings []domain.EnrichedHolding) string {
	values := map[string]float64{}
	for _, h := range holdings {
		values[h.Sector] += h.CurrentValue
	}

	var best string
	var bestValue float64
	for _, sector := range sortedKeys(values) {
		if values[sector] > bestValue {
			best = sector
			bestValue = values[sector]
		}
	}
	return best
}
