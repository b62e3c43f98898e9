// Package stats holds small numeric helpers shared by the analyzers.
package stats

import "math"

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Round1 rounds to one decimal place. All report percentages and averages
// use this rounding.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Pct returns part/total as a percentage rounded to one decimal, or 0 when
// total is 0.
func Pct(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return Round1(float64(part) / float64(total) * 100)
}
