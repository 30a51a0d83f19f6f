package formulas

// CalculateMaxDrawdown calculates the maximum peak-to-trough decline of a
// value series, as a positive fraction (0.25 = 25% loss from peak).
// Returns 0 for series too short to exhibit a drawdown.
func CalculateMaxDrawdown(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}

	maxDrawdown := 0.0
	peak := values[0]

	for _, v := range values {
		if v > peak {
			peak = v
		}
		if peak > 0 {
			drawdown := (peak - v) / peak
			if drawdown > maxDrawdown {
				maxDrawdown = drawdown
			}
		}
	}

	return maxDrawdown
}

// HighestSince returns the maximum of values[from:]. The second return is
// false when the window is empty.
func HighestSince(values []float64, from int) (float64, bool) {
	if from < 0 {
		from = 0
	}
	if from >= len(values) {
		return 0, false
	}

	high := values[from]
	for _, v := range values[from+1:] {
		if v > high {
			high = v
		}
	}
	return high, true
}
