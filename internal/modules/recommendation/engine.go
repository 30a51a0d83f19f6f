// Package recommendation scores every holding from two independent
// perspectives, Value and Growth, and combines them into a BUY/HOLD/SELL
// verdict with sector alternatives on SELL.
package recommendation

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/monjit-TAM/portfolio-analyser/internal/domain"
	"github.com/monjit-TAM/portfolio-analyser/internal/refdata"
	"github.com/monjit-TAM/portfolio-analyser/pkg/formulas"
)

const (
	buyScoreThreshold  = 3
	sellScoreThreshold = -2

	combinedBuyThreshold  = 1.5
	combinedHoldThreshold = 1.0

	recentPerfWindowDays = 30
	rsiPeriod            = 14
	rsiOverbought        = 70.0
	rsiOversold          = 30.0

	maxAlternatives = 3
)

// Engine scores holdings. Pure computation; construct once.
type Engine struct {
	ref refdata.ReferenceData
	log zerolog.Logger
}

// NewEngine creates a recommendation engine with the given reference tables.
func NewEngine(ref refdata.ReferenceData, log zerolog.Logger) *Engine {
	return &Engine{
		ref: ref,
		log: log.With().Str("service", "recommendation").Logger(),
	}
}

// Recommend produces one record per holding. Missing fundamentals or
// history degrade individual signals, never the record.
func (e *Engine) Recommend(holdings []domain.EnrichedHolding, fundamentals map[string]domain.Fundamentals, history map[string][]domain.PricePoint) []Record {
	records := make([]Record, 0, len(holdings))
	for _, h := range holdings {
		records = append(records, e.recommendOne(h, fundamentals[h.Symbol], history[h.Symbol]))
	}
	return records
}

func (e *Engine) recommendOne(h domain.EnrichedHolding, f domain.Fundamentals, series []domain.PricePoint) Record {
	closes := domain.Closes(series)

	var recentPerf *float64
	if momentum := formulas.CalculateMomentum(closes, recentPerfWindowDays); momentum != nil {
		perf := *momentum * 100
		recentPerf = &perf
	}

	rec := Record{
		Symbol:         h.Symbol,
		ValueAnalysis:  e.valueScore(f, recentPerf),
		GrowthAnalysis: e.growthScore(f, h.CurrentPrice, recentPerf),
		Alternatives:   []string{},
	}
	rec.Overall = combine(rec.ValueAnalysis.Action, rec.GrowthAnalysis.Action)

	if rsi := formulas.CalculateRSI(closes, rsiPeriod); rsi != nil {
		switch {
		case *rsi > rsiOverbought:
			rec.Notes = append(rec.Notes, fmt.Sprintf("RSI %.0f, overbought territory", *rsi))
		case *rsi < rsiOversold:
			rec.Notes = append(rec.Notes, fmt.Sprintf("RSI %.0f, oversold territory", *rsi))
		}
	}

	if rec.Overall.Action == ActionSell {
		rec.Alternatives = e.ref.AlternativesFor(h.Sector, h.Symbol, maxAlternatives)
	}
	return rec
}

// actionFromScore maps a perspective score onto an action.
func actionFromScore(score int) Action {
	switch {
	case score >= buyScoreThreshold:
		return ActionBuy
	case score <= sellScoreThreshold:
		return ActionSell
	default:
		return ActionHold
	}
}

// actionScore maps an action onto its numeric weight for combination.
func actionScore(a Action) float64 {
	switch a {
	case ActionBuy:
		return 2
	case ActionSell:
		return 0
	default:
		return 1
	}
}

// combine averages the two perspectives' action weights. Confidence is High
// when the perspectives agree or the combined score sits at an edge of the
// verdict bands, Medium otherwise.
func combine(value, growth Action) Overall {
	combined := (actionScore(value) + actionScore(growth)) / 2

	var action Action
	switch {
	case combined >= combinedBuyThreshold:
		action = ActionBuy
	case combined >= combinedHoldThreshold:
		action = ActionHold
	default:
		action = ActionSell
	}

	confidence := ConfidenceMedium
	if value == growth || combined >= combinedBuyThreshold || combined <= 0.5 {
		confidence = ConfidenceHigh
	}

	return Overall{Action: action, Confidence: confidence, CombinedScore: combined}
}
