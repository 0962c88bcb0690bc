package leaderboard

import (
	"math"
)

// ReportingRate returns the percentage of elapsed days covered by logged
// entries, rounded to two decimals. Before the challenge has started
// (elapsed <= 0) the rate is 0. The ratio is deliberately not clamped: an
// entry mis-tagged outside the window shows up as a rate above 100% rather
// than being silently corrected.
func ReportingRate(logged, elapsed int) float64 {
	if elapsed <= 0 {
		return 0
	}
	return math.Round(float64(logged)*100/float64(elapsed)*100) / 100
}

// MeetsThreshold reports whether a rate qualifies for the ranked partition.
// The comparison is inclusive: a rate exactly at the threshold is ranked.
func MeetsThreshold(rate float64, threshold int) bool {
	return rate >= float64(threshold)
}
