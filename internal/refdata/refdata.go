// Package refdata holds the static market reference tables the analytics
// engines are constructed with: sector and market-cap classification,
// quality and business-group lists, macro exposure buckets, the benchmark
// sector allocation and the alternative-stock table.
//
// The tables are injected as a value object at construction time rather
// than read from module-level globals, so tests and callers can substitute
// their own classification without touching package state.
package refdata

// Market-cap category labels.
const (
	CategoryLargeCap = "Large Cap"
	CategoryMidCap   = "Mid Cap"
	CategorySmallCap = "Small Cap"
)

// Macro exposure bucket names.
const (
	BucketBanking   = "banking"
	BucketNBFC      = "nbfc"
	BucketCommodity = "commodity"
	BucketExport    = "export"
)

// ReferenceData is the full set of lookup tables used by the engines.
type ReferenceData struct {
	// Sectors maps symbol -> sector name.
	Sectors map[string]string
	// Categories maps symbol -> market-cap category.
	Categories map[string]string
	// QualitySymbols lists symbols considered established quality names.
	QualitySymbols map[string]bool
	// BusinessGroups maps group name -> member symbols.
	BusinessGroups map[string][]string
	// MacroBuckets maps macro bucket -> member symbols.
	MacroBuckets map[string][]string
	// BenchmarkSectorWeights is the reference index sector allocation, in
	// percent. Fixed to a point-in-time index composition; a known
	// staleness risk, overridable by injecting different reference data.
	BenchmarkSectorWeights map[string]float64
	// Alternatives maps sector -> candidate replacement symbols.
	Alternatives map[string][]string
}

// SectorOf returns the symbol's sector, defaulting to "Other".
func (r ReferenceData) SectorOf(symbol string) string {
	if s, ok := r.Sectors[symbol]; ok {
		return s
	}
	return "Other"
}

// CategoryOf returns the symbol's market-cap category. Unknown symbols are
// treated as small caps, the conservative choice for the risk layers.
func (r ReferenceData) CategoryOf(symbol string) string {
	if c, ok := r.Categories[symbol]; ok {
		return c
	}
	return CategorySmallCap
}

// IsQuality reports whether the symbol is on the quality list.
func (r ReferenceData) IsQuality(symbol string) bool {
	return r.QualitySymbols[symbol]
}

// GroupOf returns the business group a symbol belongs to, if any.
func (r ReferenceData) GroupOf(symbol string) (string, bool) {
	for group, members := range r.BusinessGroups {
		for _, m := range members {
			if m == symbol {
				return group, true
			}
		}
	}
	return "", false
}

// InBucket reports whether the symbol belongs to the macro bucket.
func (r ReferenceData) InBucket(bucket, symbol string) bool {
	for _, m := range r.MacroBuckets[bucket] {
		if m == symbol {
			return true
		}
	}
	return false
}

// AlternativesFor returns up to max candidate symbols from the sector's
// alternatives table, excluding the given symbol.
func (r ReferenceData) AlternativesFor(sector, exclude string, max int) []string {
	candidates := r.Alternatives[sector]
	out := make([]string, 0, max)
	for _, c := range candidates {
		if c == exclude {
			continue
		}
		out = append(out, c)
		if len(out) == max {
			break
		}
	}
	return out
}
