package metrics

import (
	"math"
	"sort"

	"github.com/monjit-TAM/portfolio-analyser/internal/domain"
)

const attributionTopN = 5

// attribution ranks holdings and sectors by their share of the total
// gain/loss. Contribution percentages are taken against the absolute total;
// a flat portfolio reports zero contributions for everything.
func (e *Engine) attribution(holdings []domain.EnrichedHolding, summary domain.PortfolioSummary) AttributionMetrics {
	m := AttributionMetrics{
		TopContributors:     []Contribution{},
		TopDetractors:       []Contribution{},
		SectorContributions: []Contribution{},
		TotalGainLoss:       summary.TotalGainLoss,
	}

	absTotal := math.Abs(summary.TotalGainLoss)
	contribution := func(gain float64) float64 {
		if absTotal == 0 {
			return 0
		}
		return gain / absTotal * 100
	}

	ranked := make([]Contribution, 0, len(holdings))
	for _, h := range holdings {
		ranked = append(ranked, Contribution{
			Name:                h.Symbol,
			GainLoss:            h.AbsoluteGainLoss,
			ContributionPercent: contribution(h.AbsoluteGainLoss),
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].GainLoss != ranked[j].GainLoss {
			return ranked[i].GainLoss > ranked[j].GainLoss
		}
		return ranked[i].Name < ranked[j].Name
	})

	for _, c := range ranked {
		if c.GainLoss > 0 && len(m.TopContributors) < attributionTopN {
			m.TopContributors = append(m.TopContributors, c)
		}
	}
	for i := len(ranked) - 1; i >= 0; i-- {
		c := ranked[i]
		if c.GainLoss < 0 && len(m.TopDetractors) < attributionTopN {
			m.TopDetractors = append(m.TopDetractors, c)
		}
	}

	bySector := map[string]float64{}
	for _, h := range holdings {
		bySector[h.Sector] += h.AbsoluteGainLoss
	}
	for _, sector := range sortedKeys(bySector) {
		m.SectorContributions = append(m.SectorContributions, Contribution{
			Name:                sector,
			GainLoss:            bySector[sector],
			ContributionPercent: contribution(bySector[sector]),
		})
	}
	sort.Slice(m.SectorContributions, func(i, j int) bool {
		if m.SectorContributions[i].GainLoss != m.SectorContributions[j].GainLoss {
			return m.SectorContributions[i].GainLoss > m.SectorContributions[j].GainLoss
		}
		return m.SectorContributions[i].Name < m.SectorContributions[j].Name
	})
	return m
}
