package metrics

// Bundle is the full analytics output: fourteen named layer records. Every
// field is always present; a layer that could not compute anything carries
// its declared zero state.
type Bundle struct {
	Structure     StructureMetrics     `json:"structure"`
	Style         StyleMetrics         `json:"style"`
	Concentration ConcentrationMetrics `json:"concentration"`
	Volatility    VolatilityMetrics    `json:"volatility"`
	Behavior      BehaviorMetrics      `json:"behavior"`
	Drift         DriftMetrics         `json:"drift"`
	Overlap       OverlapMetrics       `json:"overlap"`
	Attribution   AttributionMetrics   `json:"attribution"`
	Liquidity     LiquidityMetrics     `json:"liquidity"`
	TailRisk      TailRiskMetrics      `json:"tail_risk"`
	Macro         MacroMetrics         `json:"macro"`
	Tax           TaxMetrics           `json:"tax"`
	Health        HealthMetrics        `json:"health"`
	Scenario      ScenarioMetrics      `json:"scenario"`
}

// StructureMetrics is the market-cap and sector allocation breakdown.
type StructureMetrics struct {
	// Allocations are percentages of total current value.
	MarketCapAllocation map[string]float64 `json:"market_cap_allocation"`
	SectorAllocation    map[string]float64 `json:"sector_allocation"`
	// ConcentratedSectors lists sectors above the 30% share threshold.
	ConcentratedSectors []string `json:"concentrated_sectors"`
}

// StyleMetrics classifies the portfolio's value/growth and volatility tilt.
type StyleMetrics struct {
	ValueTiltPercent  float64 `json:"value_tilt_percent"`
	GrowthTiltPercent float64 `json:"growth_tilt_percent"`
	StyleLabel        string  `json:"style_label"`

	HighVolPercent float64 `json:"high_vol_percent"`
	LowVolPercent  float64 `json:"low_vol_percent"`
	VolatilityTilt string  `json:"volatility_tilt"`
}

// ConcentrationMetrics measures single-stock and single-sector exposure.
type ConcentrationMetrics struct {
	Top1Exposure float64 `json:"top1_exposure"`
	Top3Exposure float64 `json:"top3_exposure"`
	Top5Exposure float64 `json:"top5_exposure"`

	OverweightStocks  []string `json:"overweight_stocks"`
	OverweightSectors []string `json:"overweight_sectors"`

	// ConcentrationScore starts at 100 and is penalized per breach, floor 0.
	ConcentrationScore float64 `json:"concentration_score"`
}

// VolatilityMetrics carries the portfolio-level risk statistics. Weighted
// figures cover only holdings with a usable historical series.
type VolatilityMetrics struct {
	AnnualizedVolatility float64 `json:"annualized_volatility"`
	PortfolioBeta        float64 `json:"portfolio_beta"`
	MaxDrawdown          float64 `json:"max_drawdown"`
	DownsideDeviation    float64 `json:"downside_deviation"`
	SharpeRatio          float64 `json:"sharpe_ratio"`
	SortinoRatio         float64 `json:"sortino_ratio"`

	// CoveredHoldings counts holdings with enough history to contribute.
	CoveredHoldings int `json:"covered_holdings"`
}

// BehaviorMetrics scores holding-period discipline.
type BehaviorMetrics struct {
	AverageHoldingDays float64 `json:"average_holding_days"`
	ShortTermCount     int     `json:"short_term_count"`
	ShortTermPercent   float64 `json:"short_term_percent"`
	Overtrading        bool    `json:"overtrading"`
	BehaviorScore      float64 `json:"behavior_score"`
}

// SectorDrift is one sector's deviation from the benchmark allocation.
type SectorDrift struct {
	Sector           string  `json:"sector"`
	PortfolioPercent float64 `json:"portfolio_percent"`
	BenchmarkPercent float64 `json:"benchmark_percent"`
	Drift            float64 `json:"drift"`
}

// DriftMetrics compares sector allocation against the reference index table.
type DriftMetrics struct {
	// Drifts lists sectors whose absolute drift exceeds the report threshold,
	// largest deviation first.
	Drifts []SectorDrift `json:"drifts"`
	// AlignmentScore is 100 minus the total absolute drift, floor 0.
	AlignmentScore float64 `json:"alignment_score"`
}

// GroupOverlap flags multiple holdings within one business group.
type GroupOverlap struct {
	Group   string   `json:"group"`
	Symbols []string `json:"symbols"`
}

// SectorCrowding flags a sector carrying many holdings.
type SectorCrowding struct {
	Sector  string   `json:"sector"`
	Count   int      `json:"count"`
	Symbols []string `json:"symbols"`
}

// OverlapMetrics lists business-group and sector crowding findings.
type OverlapMetrics struct {
	GroupOverlaps  []GroupOverlap   `json:"group_overlaps"`
	SectorCrowding []SectorCrowding `json:"sector_crowding"`
}

// Contribution is one holding's or sector's share of the total gain/loss.
type Contribution struct {
	Name                string  `json:"name"`
	GainLoss            float64 `json:"gain_loss"`
	ContributionPercent float64 `json:"contribution_percent"`
}

// AttributionMetrics ranks where the portfolio's return came from.
type AttributionMetrics struct {
	TopContributors     []Contribution `json:"top_contributors"`
	TopDetractors       []Contribution `json:"top_detractors"`
	SectorContributions []Contribution `json:"sector_contributions"`
	TotalGainLoss       float64        `json:"total_gain_loss"`
}

// HoldingLiquidity grades one position's exit horizon.
type HoldingLiquidity struct {
	Symbol          string  `json:"symbol"`
	DaysToLiquidate float64 `json:"days_to_liquidate"`
	Grade           string  `json:"grade"`
}

// LiquidityMetrics grades every position and summarizes the distribution.
type LiquidityMetrics struct {
	Holdings       []HoldingLiquidity `json:"holdings"`
	HighCount      int                `json:"high_count"`
	MediumCount    int                `json:"medium_count"`
	LowCount       int                `json:"low_count"`
	LiquidityScore float64            `json:"liquidity_score"`
}

// TailRiskMetrics estimates crash exposure from high-volatility and
// small-cap concentration.
type TailRiskMetrics struct {
	HighVolSymbols         []string `json:"high_vol_symbols"`
	HighVolExposurePercent float64  `json:"high_vol_exposure_percent"`
	SmallCapPercent        float64  `json:"small_cap_percent"`
	TailRiskScore          float64  `json:"tail_risk_score"`
}

// MacroMetrics measures exposure to macro-sensitive buckets.
type MacroMetrics struct {
	// Exposure maps bucket name to percent of current value.
	Exposure           map[string]float64 `json:"exposure"`
	RateSensitive      bool               `json:"rate_sensitive"`
	CommoditySensitive bool               `json:"commodity_sensitive"`
	ExportSensitive    bool               `json:"export_sensitive"`
}

// TaxMetrics estimates capital-gains tax on unrealized positions.
type TaxMetrics struct {
	ShortTermGain float64 `json:"short_term_gain"`
	ShortTermLoss float64 `json:"short_term_loss"`
	LongTermGain  float64 `json:"long_term_gain"`
	LongTermLoss  float64 `json:"long_term_loss"`

	EstimatedSTCGTax  float64 `json:"estimated_stcg_tax"`
	EstimatedLTCGTax  float64 `json:"estimated_ltcg_tax"`
	LTCGExemptionUsed float64 `json:"ltcg_exemption_used"`
}

// HealthMetrics is the weighted composite of the other layers' sub-scores.
type HealthMetrics struct {
	Score      float64            `json:"score"`
	Grade      string             `json:"grade"`
	Components map[string]float64 `json:"components"`
}

// ScenarioImpact projects portfolio value under one stress scenario.
type ScenarioImpact struct {
	Name                 string  `json:"name"`
	Description          string  `json:"description"`
	ProjectedLoss        float64 `json:"projected_loss"`
	ProjectedLossPercent float64 `json:"projected_loss_percent"`
	ProjectedValue       float64 `json:"projected_value"`
}

// ScenarioMetrics lists the stress-test projections.
type ScenarioMetrics struct {
	Scenarios []ScenarioImpact `json:"scenarios"`
}
