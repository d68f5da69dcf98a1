package models

// SavedFilter is a named filter panel configuration owned by a user.
// SpreadType holds either a SpreadType value or "all".
type SavedFilter struct {
	Base
	UserID              string  `gorm:"type:uuid;not null;uniqueIndex:uq_saved_filters_user_name" json:"user_id"`
	Name                string  `gorm:"not null;uniqueIndex:uq_saved_filters_user_name" json:"name"`
	SpreadType          string  `gorm:"not null" json:"spread_type"`
	MinExpectedValue    float64 `gorm:"not null" json:"min_expected_value"`
	MaxDaysToExpiration int     `gorm:"not null" json:"max_days_to_expiration"`
	MinProbability      float64 `gorm:"not null" json:"min_probability"`
	SymbolQuery         string  `json:"symbol_query"`
}
