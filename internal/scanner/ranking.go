package scanner

import (
	"fmt"
	"math"
	"sort"

	apperrors "spreadscan/internal/errors"
	"spreadscan/internal/format"
	"spreadscan/internal/models"
)

// Metric names a ranking criterion. All metrics rank descending.
type Metric string

const (
	MetricExpectedValue     Metric = "expected_value"
	MetricProfitProbability Metric = "profit_probability"
	MetricRiskRewardRatio   Metric = "risk_reward_ratio"
)

// Panel sizes used by the dashboard views.
const (
	TopPerformersSize = 3
	LeaderboardSize   = 5
)

// Valid reports whether m is a supported metric.
func (m Metric) Valid() bool {
	switch m {
	case MetricExpectedValue, MetricProfitProbability, MetricRiskRewardRatio:
		return true
	}
	return false
}

// Display renders a value of m for a leaderboard cell.
func (m Metric) Display(v float64) string {
	switch m {
	case MetricProfitProbability:
		return format.Percent(v, 1)
	case MetricRiskRewardRatio:
		return format.Ratio(v)
	default:
		return format.Currency(v)
	}
}

// ParseMetric converts a string into a Metric.
func ParseMetric(s string) (Metric, error) {
	m := Metric(s)
	if !m.Valid() {
		return "", apperrors.WithMessage(apperrors.ErrInvalidMetric, fmt.Sprintf("unknown metric %q", s))
	}
	return m, nil
}

// RiskRewardRatio returns maxProfit / |maxLoss|. A zero max loss leaves the
// ratio undefined and yields ErrUndefinedRatio instead of an infinity or NaN.
func RiskRewardRatio(s *models.OptionsSpread) (float64, error) {
	if s.MaxLoss == 0 {
		return 0, apperrors.ErrUndefinedRatio
	}
	return s.MaxProfit / math.Abs(s.MaxLoss), nil
}

// MetricValue returns the value s is ranked by under m. ok is false when the
// value is undefined (zero max loss for the ratio, or a NaN field).
func MetricValue(s *models.OptionsSpread, m Metric) (value float64, ok bool) {
	switch m {
	case MetricExpectedValue:
		value = s.ExpectedValue
	case MetricProfitProbability:
		value = s.ProfitProbability
	case MetricRiskRewardRatio:
		ratio, err := RiskRewardRatio(s)
		if err != nil {
			return 0, false
		}
		value = ratio
	default:
		return 0, false
	}
	if math.IsNaN(value) {
		return 0, false
	}
	return value, true
}

// TopN returns at most n records ordered by m, highest first. The sort is
// stable: records with equal values keep their input order. Records whose
// metric is undefined rank after every defined value, so the result length is
// always min(n, len(records)). The input slice is not reordered.
func TopN(records []*models.OptionsSpread, m Metric, n int) ([]*models.OptionsSpread, error) {
	if !m.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidMetric, fmt.Sprintf("unknown metric %q", m))
	}
	if n < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "n must be >= 0")
	}

	type keyed struct {
		spread  *models.OptionsSpread
		value   float64
		defined bool
	}
	ranked := make([]keyed, len(records))
	for i, s := range records {
		v, ok := MetricValue(s, m)
		ranked[i] = keyed{spread: s, value: v, defined: ok}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.defined != b.defined {
			return a.defined
		}
		return a.defined && a.value > b.value
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	out := make([]*models.OptionsSpread, n)
	for i := 0; i < n; i++ {
		out[i] = ranked[i].spread
	}
	return out, nil
}

// RankedView is an ordered, read-only selection of records and the metric
// that ordered them.
type RankedView struct {
	Metric  Metric
	Spreads []*models.OptionsSpread
}

// Rank is TopN packaged as a RankedView.
func Rank(records []*models.OptionsSpread, m Metric, n int) (RankedView, error) {
	top, err := TopN(records, m, n)
	if err != nil {
		return RankedView{}, err
	}
	return RankedView{Metric: m, Spreads: top}, nil
}

// TopPerformers is the at-a-glance panel: the three highest expected values
// among the already filtered records.
func TopPerformers(filtered []*models.OptionsSpread) []*models.OptionsSpread {
	top, _ := TopN(filtered, MetricExpectedValue, TopPerformersSize)
	return top
}

// Leaderboards holds the three independent top-5 rankings of the
// "Top Opportunities" view.
type Leaderboards struct {
	ByExpectedValue RankedView
	ByProbability   RankedView
	ByRiskReward    RankedView
}

// BuildLeaderboards restricts records to strictly positive expected values,
// independent of any user filter, and ranks that pool three ways.
func BuildLeaderboards(records []*models.OptionsSpread) Leaderboards {
	pool := make([]*models.OptionsSpread, 0, len(records))
	for _, s := range records {
		if s.ExpectedValue > 0 {
			pool = append(pool, s)
		}
	}

	byValue, _ := Rank(pool, MetricExpectedValue, LeaderboardSize)
	byProbability, _ := Rank(pool, MetricProfitProbability, LeaderboardSize)
	byRatio, _ := Rank(pool, MetricRiskRewardRatio, LeaderboardSize)

	return Leaderboards{
		ByExpectedValue: byValue,
		ByProbability:   byProbability,
		ByRiskReward:    byRatio,
	}
}
