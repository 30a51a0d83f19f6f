// Package metrics derives the fourteen analytic layers from an enriched
// holdings table: structure, style, concentration, volatility, behavior,
// drift, overlap, attribution, liquidity, tail risk, macro sensitivity,
// tax, the composite health score and the stress scenarios.
//
// Layers never fail the bundle: a layer that cannot compute returns its
// declared zero state and the failure is logged.
package metrics

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/monjit-TAM/portfolio-analyser/internal/domain"
	"github.com/monjit-TAM/portfolio-analyser/internal/refdata"
	"github.com/monjit-TAM/portfolio-analyser/pkg/formulas"
)

const (
	// riskFreeRate is the fixed annual risk-free assumption for Sharpe and
	// Sortino. Not derived from input.
	riskFreeRate = 0.06

	// minHistoryPoints is the shortest series a holding needs before it
	// contributes to the weighted volatility figures.
	minHistoryPoints = 20
)

// Engine computes the metrics bundle. Pure computation over in-memory
// tables; construct once and share across runs.
type Engine struct {
	ref refdata.ReferenceData
	log zerolog.Logger
}

// NewEngine creates a metrics engine with the given reference tables.
func NewEngine(ref refdata.ReferenceData, log zerolog.Logger) *Engine {
	return &Engine{
		ref: ref,
		log: log.With().Str("service", "metrics").Logger(),
	}
}

// stockStats caches the per-symbol series statistics shared by the style,
// volatility, tail-risk and scenario layers.
type stockStats struct {
	returns   []float64
	annVol    float64
	maxDD     float64
	dailyMean float64
	beta      float64
	hasBeta   bool
}

// Compute derives the full bundle. The summary must come from the same
// holdings table; benchmark may be nil, in which case beta-dependent figures
// fall back to their declared defaults.
func (e *Engine) Compute(holdings []domain.EnrichedHolding, summary domain.PortfolioSummary, history map[string][]domain.PricePoint, benchmark []domain.PricePoint) Bundle {
	stats := e.computeStockStats(holdings, history, benchmark)

	b := Bundle{
		Structure:     e.structure(holdings, summary),
		Style:         e.style(holdings, stats),
		Concentration: e.concentration(holdings, summary),
		Volatility:    e.volatility(holdings, stats),
		Behavior:      e.behavior(holdings),
		Drift:         e.drift(holdings, summary),
		Overlap:       e.overlap(holdings),
		Attribution:   e.attribution(holdings, summary),
		Liquidity:     e.liquidity(holdings, history),
		TailRisk:      e.tailRisk(holdings, summary, stats),
		Macro:         e.macro(holdings, summary),
		Tax:           e.tax(holdings),
	}
	b.Health = e.health(holdings, b)
	b.Scenario = e.scenario(holdings, summary, stats)
	return b
}

// computeStockStats builds the per-symbol return statistics. Symbols with
// fewer than minHistoryPoints bars are left out entirely; the layers treat
// absence as "excluded from that computation", not as zero risk.
func (e *Engine) computeStockStats(holdings []domain.EnrichedHolding, history map[string][]domain.PricePoint, benchmark []domain.PricePoint) map[string]stockStats {
	var benchReturns []float64
	if len(benchmark) >= minHistoryPoints {
		benchReturns = formulas.CalculateReturns(domain.Closes(benchmark))
	}

	stats := make(map[string]stockStats, len(holdings))
	for _, h := range holdings {
		series := history[h.Symbol]
		if len(series) < minHistoryPoints {
			if len(series) > 0 {
				e.log.Debug().Str("symbol", h.Symbol).Int("points", len(series)).Msg("History too short, excluding from volatility stats")
			}
			continue
		}

		returns := formulas.CalculateReturns(domain.Closes(series))
		st := stockStats{
			returns:   returns,
			annVol:    formulas.AnnualizedVolatility(returns) * 100,
			maxDD:     formulas.CalculateMaxDrawdown(domain.Closes(series)) * 100,
			dailyMean: formulas.Mean(returns),
		}

		if len(benchReturns) > 0 {
			asset, bench := alignTails(returns, benchReturns)
			if beta, ok := formulas.Beta(asset, bench); ok {
				st.beta = beta
				st.hasBeta = true
			}
		}

		stats[h.Symbol] = st
	}
	return stats
}

// alignTails trims two return series to their common most-recent window.
func alignTails(a, b []float64) ([]float64, []float64) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	return a[len(a)-n:], b[len(b)-n:]
}

// weightOf returns the holding's share of total current value, in percent.
func weightOf(h domain.EnrichedHolding, totalValue float64) float64 {
	if totalValue <= 0 {
		return 0
	}
	return h.CurrentValue / totalValue * 100
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
