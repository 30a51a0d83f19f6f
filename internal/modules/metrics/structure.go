package metrics

import (
	"sort"

	"github.com/monjit-TAM/portfolio-analyser/internal/domain"
)

const (
	sectorConcentrationLimit = 30.0
	stockConcentrationLimit  = 15.0
)

// structure computes market-cap and sector allocation percentages. An empty
// portfolio yields an all-zero record with no flags.
func (e *Engine) structure(holdings []domain.EnrichedHolding, summary domain.PortfolioSummary) StructureMetrics {
	m := StructureMetrics{
		MarketCapAllocation: map[string]float64{},
		SectorAllocation:    map[string]float64{},
		ConcentratedSectors: []string{},
	}
	if summary.CurrentValue <= 0 {
		return m
	}

	for _, h := range holdings {
		w := weightOf(h, summary.CurrentValue)
		m.MarketCapAllocation[h.Category] += w
		m.SectorAllocation[h.Sector] += w
	}

	for _, sector := range sortedKeys(m.SectorAllocation) {
		if m.SectorAllocation[sector] > sectorConcentrationLimit {
			m.ConcentratedSectors = append(m.ConcentratedSectors, sector)
		}
	}
	return m
}

// concentration computes top-N exposure shares and the breach-penalized
// concentration score.
func (e *Engine) concentration(holdings []domain.EnrichedHolding, summary domain.PortfolioSummary) ConcentrationMetrics {
	m := ConcentrationMetrics{
		OverweightStocks:   []string{},
		OverweightSectors:  []string{},
		ConcentrationScore: 100,
	}
	if summary.CurrentValue <= 0 || len(holdings) == 0 {
		if len(holdings) == 0 {
			m.ConcentrationScore = 0
		}
		return m
	}

	weights := make([]float64, 0, len(holdings))
	for _, h := range holdings {
		w := weightOf(h, summary.CurrentValue)
		weights = append(weights, w)
		if w > stockConcentrationLimit {
			m.OverweightStocks = append(m.OverweightStocks, h.Symbol)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(weights)))

	m.Top1Exposure = sumTop(weights, 1)
	m.Top3Exposure = sumTop(weights, 3)
	m.Top5Exposure = sumTop(weights, 5)

	sectorWeights := map[string]float64{}
	for _, h := range holdings {
		sectorWeights[h.Sector] += weightOf(h, summary.CurrentValue)
	}
	for _, sector := range sortedKeys(sectorWeights) {
		if sectorWeights[sector] > sectorConcentrationLimit {
			m.OverweightSectors = append(m.OverweightSectors, sector)
		}
	}

	score := 100.0
	score -= 10 * float64(len(m.OverweightStocks))
	score -= 15 * float64(len(m.OverweightSectors))
	if m.Top1Exposure > 25 {
		score -= 15
	}
	if m.Top5Exposure > 80 {
		score -= 10
	}
	m.ConcentrationScore = clampScore(score)
	return m
}

func sumTop(sortedDesc []float64, n int) float64 {
	if n > len(sortedDesc) {
		n = len(sortedDesc)
	}
	var sum float64
	for _, w := range sortedDesc[:n] {
		sum += w
	}
	return sum
}
