// Package valuation computes per-holding valuation fields from raw holdings
// and a current-price map.
package valuation

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/monjit-TAM/portfolio-analyser/internal/domain"
	"github.com/monjit-TAM/portfolio-analyser/internal/refdata"
)

// Service values holdings against current prices. Pure computation, no side
// effects beyond data-quality logging.
type Service struct {
	ref refdata.ReferenceData
	log zerolog.Logger

	// now is injectable for deterministic holding-period math in tests.
	now func() time.Time
}

// NewService creates a new holding valuator.
func NewService(ref refdata.ReferenceData, log zerolog.Logger) *Service {
	return &Service{
		ref: ref,
		log: log.With().Str("service", "valuation").Logger(),
		now: time.Now,
	}
}

// SetNow overrides the clock used for holding-period computation.
func (s *Service) SetNow(now func() time.Time) {
	s.now = now
}

// Value computes valuation fields for every holding.
//
// A missing current price falls back to the buy price and is logged as a
// data-quality note, never an error. A malformed holding (negative quantity
// or price) is skipped with a ValidationError recorded for that symbol;
// the rest of the batch proceeds.
func (s *Service) Value(holdings []domain.Holding, currentPrices map[string]*float64) ([]domain.EnrichedHolding, []error) {
	enriched := make([]domain.EnrichedHolding, 0, len(holdings))
	var failures []error

	now := s.now()

	for _, h := range holdings {
		if err := h.Validate(); err != nil {
			s.log.Warn().Str("symbol", h.Symbol).Err(err).Msg("Skipping malformed holding")
			failures = append(failures, err)
			continue
		}

		currentPrice := h.BuyPrice
		if p, ok := currentPrices[h.Symbol]; ok && p != nil && *p > 0 {
			currentPrice = *p
		} else {
			s.log.Debug().Str("symbol", h.Symbol).Msg("No current price, falling back to buy price")
		}

		e := domain.EnrichedHolding{
			Holding:         h,
			CurrentPrice:    currentPrice,
			InvestmentValue: h.BuyPrice * h.Quantity,
			CurrentValue:    currentPrice * h.Quantity,
			Sector:          s.ref.SectorOf(h.Symbol),
			Category:        s.ref.CategoryOf(h.Symbol),
			HoldingDays:     -1,
		}
		e.AbsoluteGainLoss = e.CurrentValue - e.InvestmentValue
		if e.InvestmentValue != 0 {
			e.PercentageGainLoss = e.AbsoluteGainLoss / e.InvestmentValue * 100
		}

		if buyDate, ok := h.ParseBuyDate(); ok {
			days := int(now.Sub(buyDate).Hours() / 24)
			if days < 0 {
				days = 0
			}
			e.HoldingDays = days
		} else {
			s.log.Debug().Str("symbol", h.Symbol).Str("buy_date", h.BuyDate).Msg("Unparsable buy date")
		}

		enriched = append(enriched, e)
	}

	return enriched, failures
}
