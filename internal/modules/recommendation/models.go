package recommendation

// Action is a recommendation verdict.
type Action string

// Recommendation actions.
const (
	ActionBuy  Action = "BUY"
	ActionHold Action = "HOLD"
	ActionSell Action = "SELL"
)

// Confidence levels for the overall verdict.
const (
	ConfidenceHigh   = "High"
	ConfidenceMedium = "Medium"
)

// PerspectiveAnalysis is one scorer's verdict with the signals that fired.
type PerspectiveAnalysis struct {
	Score     int      `json:"score"`
	Action    Action   `json:"action"`
	Rationale []string `json:"rationale"`
}

// Overall combines the two perspectives into one verdict.
type Overall struct {
	Action        Action  `json:"action"`
	Confidence    string  `json:"confidence"`
	CombinedScore float64 `json:"combined_score"`
}

// Record is the per-holding recommendation output.
type Record struct {
	Symbol         string              `json:"symbol"`
	ValueAnalysis  PerspectiveAnalysis `json:"value_analysis"`
	GrowthAnalysis PerspectiveAnalysis `json:"growth_analysis"`
	Overall        Overall             `json:"overall"`

	// Alternatives lists replacement candidates from the same sector; only
	// populated when the overall action is SELL.
	Alternatives []string `json:"alternatives"`

	// Notes carries context that does not move the scores, such as momentum
	// readings from the historical series.
	Notes []string `json:"notes,omitempty"`
}
