package metrics

import (
	"math"
	"sort"

	"github.com/monjit-TAM/portfolio-analyser/internal/domain"
)

const driftReportThreshold = 5.0

// drift compares the portfolio's sector allocation against the reference
// index table. The alignment score counts every sector's deviation; the
// reported list keeps only deviations past the display threshold. The
// reference table is fixed to a point-in-time index composition.
func (e *Engine) drift(holdings []domain.EnrichedHolding, summary domain.PortfolioSummary) DriftMetrics {
	m := DriftMetrics{Drifts: []SectorDrift{}, AlignmentScore: 0}
	if summary.CurrentValue <= 0 {
		return m
	}

	portfolio := map[string]float64{}
	for _, h := range holdings {
		portfolio[h.Sector] += weightOf(h, summary.CurrentValue)
	}

	sectors := map[string]bool{}
	for s := range portfolio {
		sectors[s] = true
	}
	for s := range e.ref.BenchmarkSectorWeights {
		sectors[s] = true
	}

	var totalAbsDrift float64
	for sector := range sectors {
		drift := portfolio[sector] - e.ref.BenchmarkSectorWeights[sector]
		totalAbsDrift += math.Abs(drift)
		if math.Abs(drift) > driftReportThreshold {
			m.Drifts = append(m.Drifts, SectorDrift{
				Sector:           sector,
				PortfolioPercent: portfolio[sector],
				BenchmarkPercent: e.ref.BenchmarkSectorWeights[sector],
				Drift:            drift,
			})
		}
	}

	sort.Slice(m.Drifts, func(i, j int) bool {
		ai, aj := math.Abs(m.Drifts[i].Drift), math.Abs(m.Drifts[j].Drift)
		if ai != aj {
			return ai > aj
		}
		return m.Drifts[i].Sector < m.Drifts[j].Sector
	})

	m.AlignmentScore = clampScore(100 - totalAbsDrift)
	return m
}

// overlap flags multiple holdings sharing a business group and sectors
// crowded with many holdings. No matches produce empty lists, not errors.
func (e *Engine) overlap(holdings []domain.EnrichedHolding) OverlapMetrics {
	m := OverlapMetrics{GroupOverlaps: []GroupOverlap{}, SectorCrowding: []SectorCrowding{}}

	byGroup := map[string][]string{}
	bySector := map[string][]string{}
	for _, h := range holdings {
		if group, ok := e.ref.GroupOf(h.Symbol); ok {
			byGroup[group] = append(byGroup[group], h.Symbol)
		}
		bySector[h.Sector] = append(bySector[h.Sector], h.Symbol)
	}

	groups := make([]string, 0, len(byGroup))
	for g := range byGroup {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	for _, g := range groups {
		if len(byGroup[g]) >= 2 {
			m.GroupOverlaps = append(m.GroupOverlaps, GroupOverlap{Group: g, Symbols: byGroup[g]})
		}
	}

	crowdedSectors := make([]string, 0, len(bySector))
	for s := range bySector {
		crowdedSectors = append(crowdedSectors, s)
	}
	sort.Strings(crowdedSectors)
	for _, s := range crowdedSectors {
		if len(bySector[s]) >= 4 {
			m.SectorCrowding = append(m.SectorCrowding, SectorCrowding{
				Sector:  s,
				Count:   len(bySector[s]),
				Symbols: bySector[s],
			})
		}
	}
	return m
}
