package scanner

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"spreadscan/internal/models"
)

// SummaryStats aggregates a collection of records. Every field is zero for an
// empty collection.
type SummaryStats struct {
	Count                int     `json:"count"`
	AverageExpectedValue float64 `json:"average_expected_value"`
	ProfitableCount      int     `json:"profitable_count"`
	ProfitablePercentage float64 `json:"profitable_percentage"`
	AverageProbability   float64 `json:"average_probability"`
	MaxProbability       float64 `json:"max_probability"`
}

// Summarize computes SummaryStats over records.
func Summarize(records []*models.OptionsSpread) SummaryStats {
	stats := SummaryStats{Count: len(records)}
	if stats.Count == 0 {
		return stats
	}

	var sumEV, sumProb float64
	for i, s := range records {
		sumEV += s.ExpectedValue
		sumProb += s.ProfitProbability
		if s.ExpectedValue > 0 {
			stats.ProfitableCount++
		}
		if i == 0 || s.ProfitProbability > stats.MaxProbability {
			stats.MaxProbability = s.ProfitProbability
		}
	}

	n := float64(stats.Count)
	stats.AverageExpectedValue = sumEV / n
	stats.AverageProbability = sumProb / n
	stats.ProfitablePercentage = float64(stats.ProfitableCount) / float64(max(stats.Count, 1)) * 100
	return stats
}

// Histogram layout for the expected value distribution chart.
const (
	HistogramStart       = -500
	HistogramBucketWidth = 100
	HistogramBuckets     = 10
)

// Bucket is one half-open [Min, Max) bin of the expected value histogram.
type Bucket struct {
	Min   int    `json:"min"`
	Max   int    `json:"max"`
	Range string `json:"range"`
	Count int    `json:"count"`
}

// Distribution is the expected value histogram. Values outside
// [HistogramStart, HistogramStart+HistogramBuckets*HistogramBucketWidth) are not
// clamped into the edge bins; they are only tallied in Excluded.
type Distribution struct {
	Buckets  []Bucket `json:"buckets"`
	Excluded int      `json:"excluded"`
}

// ExpectedValueDistribution buckets each record's expected value.
func ExpectedValueDistribution(records []*models.OptionsSpread) Distribution {
	buckets := make([]Bucket, HistogramBuckets)
	for i := range buckets {
		lo := HistogramStart + i*HistogramBucketWidth
		hi := lo + HistogramBucketWidth
		buckets[i] = Bucket{Min: lo, Max: hi, Range: fmt.Sprintf("$%d-%d", lo, hi)}
	}

	dist := Distribution{Buckets: buckets}
	for _, s := range records {
		placed := false
		for i := range dist.Buckets {
			b := &dist.Buckets[i]
			if s.ExpectedValue >= float64(b.Min) && s.ExpectedValue < float64(b.Max) {
				b.Count++
				placed = true
				break
			}
		}
		if !placed {
			dist.Excluded++
		}
	}
	return dist
}

// TypeDistribution counts records per spread type, keyed by display label.
// Map order carries no meaning.
func TypeDistribution(records []*models.OptionsSpread) map[string]int {
	counts := make(map[string]int)
	for _, s := range records {
		counts[SpreadTypeLabel(string(s.SpreadType))]++
	}
	return counts
}

// ScatterPoint is one dot of the win probability vs expected value chart.
type ScatterPoint struct {
	Probability   float64 `json:"probability"`
	ExpectedValue float64 `json:"expected_value"`
	Symbol        string  `json:"symbol"`
}

// ProbabilityVsValue projects each record onto the scatter chart, in input order.
func ProbabilityVsValue(records []*models.OptionsSpread) []ScatterPoint {
	points := make([]ScatterPoint, len(records))
	for i, s := range records {
		points[i] = ScatterPoint{
			Probability:   s.ProfitProbability,
			ExpectedValue: s.ExpectedValue,
			Symbol:        s.Symbol,
		}
	}
	return points
}

// SpreadTypeLabel turns an underscore-separated identifier into title case:
// split on "_", upper-case the first letter of each token, join with spaces.
// "iron_condor" becomes "Iron Condor". The rest of each token is left as is.
func SpreadTypeLabel(t string) string {
	words := strings.Split(t, "_")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if size == 0 {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
