package charts

import (
	"math"
	"sort"
)

// Mean returns the arithmetic mean of the values, ignoring NaN entries. An
// all-NaN or empty input yields NaN.
func Mean(values []float64) float64 {
	var sum float64
	var n int
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

// Median returns the median of the values, ignoring NaN entries. An even
// count averages the two middle values. An all-NaN or empty input yields NaN.
func Median(values []float64) float64 {
	clean := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			clean = append(clean, v)
		}
	}
	if len(clean) == 0 {
		return math.NaN()
	}
	sort.Float64s(clean)
	mid := len(clean) / 2
	if len(clean)%2 == 1 {
		return clean[mid]
	}
	return (clean[mid-1] + clean[mid]) / 2
}

// MedianByGroup computes the median of values per group key. The two slices
// are aligned by index; rows with NaN values still count toward grouping but
// not toward the median. Groups whose values are all NaN get NaN.
func MedianByGroup(groups []string, values []float64) map[string]float64 {
	byGroup := make(map[string][]float64)
	for i, g := range groups {
		if i < len(values) {
			byGroup[g] = append(byGroup[g], values[i])
		}
	}
	medians := make(map[string]float64, len(byGroup))
	for g, vs := range byGroup {
		medians[g] = Median(vs)
	}
	return medians
}
