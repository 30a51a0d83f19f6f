package domain

import "time"

// PricePoint is one bar of a historical price series.
type PricePoint struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// ParseDate parses the bar's date.
func (p PricePoint) ParseDate() (time.Time, bool) {
	t, err := time.Parse(DateLayout, p.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Closes extracts the close-price column from a series.
func Closes(series []PricePoint) []float64 {
	out := make([]float64, len(series))
	for i, p := range series {
		out[i] = p.Close
	}
	return out
}

// Fundamentals carries per-symbol fundamental ratios. Any field may be
// absent; nil means the provider had no value, which scorers treat as a
// skipped signal, never a zero.
type Fundamentals struct {
	PERatio          *float64 `json:"pe_ratio,omitempty"`
	PBRatio          *float64 `json:"pb_ratio,omitempty"`
	DividendYield    *float64 `json:"dividend_yield,omitempty"`
	ROE              *float64 `json:"roe,omitempty"`
	DebtToEquity     *float64 `json:"debt_to_equity,omitempty"`
	RevenueGrowth    *float64 `json:"revenue_growth,omitempty"`
	EarningsGrowth   *float64 `json:"earnings_growth,omitempty"`
	FiftyTwoWeekHigh *float64 `json:"fifty_two_week_high,omitempty"`
	MarketCap        *float64 `json:"market_cap,omitempty"`
}

// AnalysisInput bundles everything one pipeline run consumes. All market
// data arrives pre-fetched; the pipeline performs no I/O of its own.
type AnalysisInput struct {
	Holdings      []Holding               `json:"holdings"`
	CurrentPrices map[string]*float64     `json:"current_prices"`
	History       map[string][]PricePoint `json:"history"`
	Fundamentals  map[string]Fundamentals `json:"fundamentals"`
	Benchmark     []PricePoint            `json:"benchmark,omitempty"`
}
