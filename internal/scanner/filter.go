// Package scanner holds the spread filtering, ranking and aggregation engines.
//
// Every function in this package is a pure transformation of its arguments:
// records are never mutated or copied, results hold references into the input,
// and nothing is logged. Callers own presentation and error reporting.
package scanner

import (
	"fmt"
	"math"
	"strings"

	apperrors "spreadscan/internal/errors"
	"spreadscan/internal/models"
)

// SpreadTypeAll is the FilterConfig.SpreadType sentinel meaning "any type".
const SpreadTypeAll models.SpreadType = "all"

// Default filter thresholds, matching the dashboard's initial filter panel.
const (
	DefaultMinExpectedValue    = 0
	DefaultMaxDaysToExpiration = 45
	DefaultMinProbability      = 50
)

// FilterConfig describes the active filter. It is a value object: changing a
// field means building a new config, never mutating a shared one.
type FilterConfig struct {
	SpreadType          models.SpreadType `json:"spread_type"`
	MinExpectedValue    float64           `json:"min_expected_value"`
	MaxDaysToExpiration int               `json:"max_days_to_expiration"`
	MinProbability      float64           `json:"min_probability"`
	SymbolQuery         string            `json:"symbol_query"`
}

// DefaultFilterConfig returns the config every field of which is at its default.
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		SpreadType:          SpreadTypeAll,
		MinExpectedValue:    DefaultMinExpectedValue,
		MaxDaysToExpiration: DefaultMaxDaysToExpiration,
		MinProbability:      DefaultMinProbability,
		SymbolQuery:         "",
	}
}

// Validate checks every field against its documented domain. Out-of-range
// values are rejected, never clamped.
func (c FilterConfig) Validate() error {
	if c.SpreadType != SpreadTypeAll && !c.SpreadType.Valid() {
		return invalidFilter("unknown spread_type %q", c.SpreadType)
	}
	if math.IsNaN(c.MinExpectedValue) || math.IsInf(c.MinExpectedValue, 0) {
		return invalidFilter("min_expected_value must be a finite number")
	}
	if c.MaxDaysToExpiration < 0 {
		return invalidFilter("max_days_to_expiration must be >= 0, got %d", c.MaxDaysToExpiration)
	}
	if math.IsNaN(c.MinProbability) || c.MinProbability < 0 || c.MinProbability > 100 {
		return invalidFilter("min_probability must be within [0, 100], got %v", c.MinProbability)
	}
	return nil
}

func invalidFilter(format string, args ...interface{}) error {
	return apperrors.WithMessage(apperrors.ErrInvalidFilter, fmt.Sprintf(format, args...))
}

// Matches reports whether a single record satisfies all five predicates.
// The config is assumed valid.
func (c FilterConfig) Matches(s *models.OptionsSpread) bool {
	if c.SpreadType != SpreadTypeAll && s.SpreadType != c.SpreadType {
		return false
	}
	if c.SymbolQuery != "" {
		q := strings.ToLower(c.SymbolQuery)
		if !strings.Contains(strings.ToLower(s.Symbol), q) &&
			!strings.Contains(strings.ToLower(s.CompanyName), q) {
			return false
		}
	}
	return s.ExpectedValue >= c.MinExpectedValue &&
		s.DaysToExpiration <= c.MaxDaysToExpiration &&
		s.ProfitProbability >= c.MinProbability
}

// Filter returns the order-preserving subsequence of records that pass cfg.
// An invalid config fails the whole call; no partial result is returned.
func Filter(records []*models.OptionsSpread, cfg FilterConfig) ([]*models.OptionsSpread, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	out := make([]*models.OptionsSpread, 0, len(records))
	for _, s := range records {
		if cfg.Matches(s) {
			out = append(out, s)
		}
	}
	return out, nil
}

// ActiveFilterCount counts the fields of cfg that differ from their defaults.
func ActiveFilterCount(cfg FilterConfig) int {
	def := DefaultFilterConfig()
	n := 0
	if cfg.SpreadType != def.SpreadType {
		n++
	}
	if cfg.MinExpectedValue != def.MinExpectedValue {
		n++
	}
	if cfg.MaxDaysToExpiration != def.MaxDaysToExpiration {
		n++
	}
	if cfg.MinProbability != def.MinProbability {
		n++
	}
	if cfg.SymbolQuery != def.SymbolQuery {
		n++
	}
	return n
}

// QuickFilter is a one-click preset from the filter panel. Apply returns a new
// config derived from the given one.
type QuickFilter struct {
	Name  string                          `json:"name"`
	Label string                          `json:"label"`
	Apply func(FilterConfig) FilterConfig `json:"-"`
}

// QuickFilters returns the filter panel presets in display order.
func QuickFilters() []QuickFilter {
	return []QuickFilter{
		{Name: "ev_over_50", Label: "EV > $50", Apply: func(c FilterConfig) FilterConfig {
			c.MinExpectedValue = 50
			return c
		}},
		{Name: "win_over_70", Label: "Win > 70%", Apply: func(c FilterConfig) FilterConfig {
			c.MinProbability = 70
			return c
		}},
		{Name: "under_30_days", Label: "< 30 Days", Apply: func(c FilterConfig) FilterConfig {
			c.MaxDaysToExpiration = 30
			return c
		}},
		{Name: "iron_condor", Label: "Iron Condor", Apply: func(c FilterConfig) FilterConfig {
			c.SpreadType = models.SpreadTypeIronCondor
			return c
		}},
	}
}

// LookupQuickFilter finds a preset by name.
func LookupQuickFilter(name string) (QuickFilter, bool) {
	for _, q := range QuickFilters() {
		if q.Name == name {
			return q, true
		}
	}
	return QuickFilter{}, false
}
