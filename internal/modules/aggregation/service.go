// Package aggregation rolls enriched holdings up into a portfolio summary
// and sector / market-cap group tables, and annotates each holding with its
// post-purchase all-time high.
package aggregation

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/monjit-TAM/portfolio-analyser/internal/domain"
	"github.com/monjit-TAM/portfolio-analyser/pkg/formulas"
)

// Result is the aggregator's output for one run.
type Result struct {
	Summary    domain.PortfolioSummary `json:"summary"`
	Sectors    []domain.GroupAggregate `json:"sectors"`
	Categories []domain.GroupAggregate `json:"categories"`

	// Holdings is the input table with all-time-high fields filled in.
	Holdings []domain.EnrichedHolding `json:"holdings"`
}

// Service aggregates enriched holdings. Pure computation.
type Service struct {
	log zerolog.Logger
}

// NewService creates a new portfolio aggregator.
func NewService(log zerolog.Logger) *Service {
	return &Service{
		log: log.With().Str("service", "aggregation").Logger(),
	}
}

// Aggregate computes the portfolio summary, the sector and category group
// tables, and the per-holding all-time-high annotations.
func (s *Service) Aggregate(holdings []domain.EnrichedHolding, history map[string][]domain.PricePoint) Result {
	annotated := s.applyAllTimeHighs(holdings, history)
	return Result{
		Summary:    s.Summarize(annotated),
		Sectors:    s.groupBy(annotated, func(h domain.EnrichedHolding) string { return h.Sector }),
		Categories: s.groupBy(annotated, func(h domain.EnrichedHolding) string { return h.Category }),
		Holdings:   annotated,
	}
}

// Summarize totals the enriched holdings table.
func (s *Service) Summarize(holdings []domain.EnrichedHolding) domain.PortfolioSummary {
	sum := domain.PortfolioSummary{HoldingCount: len(holdings)}
	for _, h := range holdings {
		sum.TotalInvestment += h.InvestmentValue
		sum.CurrentValue += h.CurrentValue
		if h.AbsoluteGainLoss > 0 {
			sum.ProfitableCount++
		} else if h.AbsoluteGainLoss < 0 {
			sum.LossMakingCount++
		}
	}
	sum.TotalGainLoss = sum.CurrentValue - sum.TotalInvestment
	if sum.TotalInvestment != 0 {
		sum.PercentageGainLoss = sum.TotalGainLoss / sum.TotalInvestment * 100
	}
	return sum
}

// groupBy rolls holdings up by the given key. Groups are sorted by current
// value, largest first; portfolio percentages are taken against the total
// current value so they sum to 100 within rounding.
func (s *Service) groupBy(holdings []domain.EnrichedHolding, key func(domain.EnrichedHolding) string) []domain.GroupAggregate {
	var totalCurrent float64
	for _, h := range holdings {
		totalCurrent += h.CurrentValue
	}

	byName := make(map[string]*domain.GroupAggregate)
	for _, h := range holdings {
		name := key(h)
		g, ok := byName[name]
		if !ok {
			g = &domain.GroupAggregate{Name: name}
			byName[name] = g
		}
		g.InvestmentValue += h.InvestmentValue
		g.CurrentValue += h.CurrentValue
		g.HoldingCount++
	}

	groups := make([]domain.GroupAggregate, 0, len(byName))
	for _, g := range byName {
		if g.InvestmentValue != 0 {
			g.GainLossPercent = (g.CurrentValue - g.InvestmentValue) / g.InvestmentValue * 100
		}
		if totalCurrent > 0 {
			g.PortfolioPercent = g.CurrentValue / totalCurrent * 100
		}
		groups = append(groups, *g)
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].CurrentValue != groups[j].CurrentValue {
			return groups[i].CurrentValue > groups[j].CurrentValue
		}
		return groups[i].Name < groups[j].Name
	})
	return groups
}

// applyAllTimeHighs fills AllTimeHighSincePurchase and PotentialGainFromATH
// on a copy of the holdings table. The high is taken over bars dated on or
// after the buy date; without usable history the current price stands in and
// the potential gain is zero.
func (s *Service) applyAllTimeHighs(holdings []domain.EnrichedHolding, history map[string][]domain.PricePoint) []domain.EnrichedHolding {
	out := make([]domain.EnrichedHolding, len(holdings))
	copy(out, holdings)

	for i := range out {
		h := &out[i]
		ath, ok := s.highSincePurchase(*h, history[h.Symbol])
		if !ok {
			s.log.Debug().Str("symbol", h.Symbol).Msg("No usable history for all-time high, using current price")
			h.AllTimeHighSincePurchase = h.CurrentPrice
			h.PotentialGainFromATH = 0
			continue
		}
		h.AllTimeHighSincePurchase = ath
		if h.CurrentPrice > 0 {
			h.PotentialGainFromATH = (ath - h.CurrentPrice) / h.CurrentPrice * 100
		}
	}
	return out
}

// highSincePurchase returns the highest bar high on or after the holding's
// buy date. An unparsable buy date widens the window to the whole series.
func (s *Service) highSincePurchase(h domain.EnrichedHolding, series []domain.PricePoint) (float64, bool) {
	if len(series) == 0 {
		return 0, false
	}

	buyDate, haveBuyDate := h.ParseBuyDate()

	highs := make([]float64, 0, len(series))
	for _, p := range series {
		if haveBuyDate {
			d, ok := p.ParseDate()
			if !ok || d.Before(buyDate) {
				continue
			}
		}
		if p.High > 0 {
			highs = append(highs, p.High)
		}
	}
	if len(highs) == 0 {
		return 0, false
	}

	high, ok := formulas.HighestSince(highs, 0)
	if !ok {
		return 0, false
	}
	return high, true
}
