package metrics

import (
	"github.com/monjit-TAM/portfolio-analyser/internal/domain"
	"github.com/monjit-TAM/portfolio-analyser/internal/refdata"
)

const (
	rateSensitivityLimit      = 30.0
	commoditySensitivityLimit = 25.0
	exportSensitivityLimit    = 25.0
)

// macro measures exposure to the rate-sensitive, commodity and export
// buckets and raises the fixed-threshold sensitivity flags.
func (e *Engine) macro(holdings []domain.EnrichedHolding, summary domain.PortfolioSummary) MacroMetrics {
	m := MacroMetrics{Exposure: map[string]float64{
		refdata.BucketBanking:   0,
		refdata.BucketNBFC:      0,
		refdata.BucketCommodity: 0,
		refdata.BucketExport:    0,
	}}
	if summary.CurrentValue <= 0 {
		return m
	}

	for _, h := range holdings {
		w := weightOf(h, summary.CurrentValue)
		for bucket := range m.Exposure {
			if e.ref.InBucket(bucket, h.Symbol) {
				m.Exposure[bucket] += w
			}
		}
	}

	m.RateSensitive = m.Exposure[refdata.BucketBanking]+m.Exposure[refdata.BucketNBFC] > rateSensitivityLimit
	m.CommoditySensitive = m.Exposure[refdata.BucketCommodity] > commoditySensitivityLimit
	m.ExportSensitive = m.Exposure[refdata.BucketExport] > exportSensitivityLimit
	return m
}
