package models

// SpreadType identifies the options strategy a spread record describes.
type SpreadType string

const (
	SpreadTypeBullCall   SpreadType = "bull_call_spread"
	SpreadTypeBearPut    SpreadType = "bear_put_spread"
	SpreadTypeIronCondor SpreadType = "iron_condor"
	SpreadTypeCalendar   SpreadType = "calendar_spread"
	SpreadTypeButterfly  SpreadType = "butterfly_spread"
)

// SpreadTypes lists every supported spread type in display order.
var SpreadTypes = []SpreadType{
	SpreadTypeBullCall,
	SpreadTypeBearPut,
	SpreadTypeIronCondor,
	SpreadTypeCalendar,
	SpreadTypeButterfly,
}

// Valid reports whether t is one of the supported spread types.
func (t SpreadType) Valid() bool {
	for _, known := range SpreadTypes {
		if t == known {
			return true
		}
	}
	return false
}

// OptionsSpread is an immutable snapshot of one candidate options strategy as
// produced by the upstream scanner. Currency amounts are in dollars.
//
// Invariants enforced at ingestion: MaxProfit >= 0, MaxLoss <= 0,
// 0 <= ProfitProbability <= 100, DaysToExpiration >= 0.
type OptionsSpread struct {
	Base
	Symbol            string     `gorm:"not null;index" json:"symbol"`
	CompanyName       string     `gorm:"not null" json:"company_name"`
	SpreadType        SpreadType `gorm:"not null;index" json:"spread_type"`
	ExpectedValue     float64    `gorm:"not null;index" json:"expected_value"`
	MaxProfit         float64    `gorm:"not null" json:"max_profit"`
	MaxLoss           float64    `gorm:"not null" json:"max_loss"`
	ProfitProbability float64    `gorm:"not null" json:"profit_probability"`
	DaysToExpiration  int        `gorm:"not null" json:"days_to_expiration"`
	StrikePriceLong   float64    `gorm:"not null" json:"strike_price_long"`
	StrikePriceShort  float64    `gorm:"not null" json:"strike_price_short"`
	PremiumPaid       float64    `gorm:"not null;default:0" json:"premium_paid"`
	PremiumReceived   float64    `gorm:"not null;default:0" json:"premium_received"`
}
