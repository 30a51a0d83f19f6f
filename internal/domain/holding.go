// Package domain defines the plain, serializable records flowing through the
// analytics pipeline. Types here carry no behaviour beyond parsing and
// validation; all computation lives in the modules that consume them.
package domain

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for all dates in the pipeline.
const DateLayout = "2006-01-02"

// Holding is a single position as supplied by the caller. Immutable input.
type Holding struct {
	Symbol   string  `json:"symbol"`
	Quantity float64 `json:"quantity"`
	BuyPrice float64 `json:"buy_price"`
	BuyDate  string  `json:"buy_date"`
}

// Validate checks the holding for malformed values. A negative quantity or
// price is the only condition that aborts a single holding's processing.
func (h Holding) Validate() error {
	if h.Symbol == "" {
		return &ValidationError{Symbol: h.Symbol, Reason: "empty symbol"}
	}
	if h.Quantity < 0 {
		return &ValidationError{Symbol: h.Symbol, Reason: fmt.Sprintf("negative quantity %v", h.Quantity)}
	}
	if h.BuyPrice < 0 {
		return &ValidationError{Symbol: h.Symbol, Reason: fmt.Sprintf("negative buy price %v", h.BuyPrice)}
	}
	return nil
}

// ParseBuyDate parses the holding's buy date. Callers treat a parse failure
// as a data-quality note, not an error that drops the holding.
func (h Holding) ParseBuyDate() (time.Time, bool) {
	t, err := time.Parse(DateLayout, h.BuyDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// EnrichedHolding is a holding with its valuation fields computed. Derived,
// recomputed on every run; owned by the pipeline for one analysis call.
type EnrichedHolding struct {
	Holding

	CurrentPrice       float64 `json:"current_price"`
	InvestmentValue    float64 `json:"investment_value"`
	CurrentValue       float64 `json:"current_value"`
	AbsoluteGainLoss   float64 `json:"absolute_gain_loss"`
	PercentageGainLoss float64 `json:"percentage_gain_loss"`

	Sector   string `json:"sector"`
	Category string `json:"category"`

	// HoldingDays is days since purchase; -1 when the buy date is unparsable.
	HoldingDays int `json:"holding_days"`

	AllTimeHighSincePurchase float64 `json:"all_time_high_since_purchase"`
	PotentialGainFromATH     float64 `json:"potential_gain_from_ath"`
}

// PortfolioSummary aggregates the enriched holdings table.
type PortfolioSummary struct {
	TotalInvestment    float64 `json:"total_investment"`
	CurrentValue       float64 `json:"current_value"`
	TotalGainLoss      float64 `json:"total_gain_loss"`
	PercentageGainLoss float64 `json:"percentage_gain_loss"`
	HoldingCount       int     `json:"holding_count"`
	ProfitableCount    int     `json:"profitable_count"`
	LossMakingCount    int     `json:"loss_making_count"`
}

// GroupAggregate is a sector or market-cap category rollup. Percentage of
// portfolio across all groups sums to 100 within rounding when the total
// current value is positive.
type GroupAggregate struct {
	Name             string  `json:"name"`
	InvestmentValue  float64 `json:"investment_value"`
	CurrentValue     float64 `json:"current_value"`
	GainLossPercent  float64 `json:"gain_loss_percent"`
	PortfolioPercent float64 `json:"portfolio_percent"`
	HoldingCount     int     `json:"holding_count"`
}
