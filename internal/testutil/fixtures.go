package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"spreadscan/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// SampleSpreads returns fresh copies of the five reference spreads shown on the
// dashboard, in the order the mock source declared them. IDs are left empty.
func SampleSpreads() []*models.OptionsSpread {
	return []*models.OptionsSpread{
		{
			Symbol: "AAPL", CompanyName: "Apple Inc.", SpreadType: models.SpreadTypeBullCall,
			ExpectedValue: 125.50, MaxProfit: 250.00, MaxLoss: -125.00, ProfitProbability: 72.5,
			DaysToExpiration: 23, StrikePriceLong: 180, StrikePriceShort: 185,
			PremiumPaid: 125.00, PremiumReceived: 0,
		},
		{
			Symbol: "MSFT", CompanyName: "Microsoft Corporation", SpreadType: models.SpreadTypeBearPut,
			ExpectedValue: 89.25, MaxProfit: 200.00, MaxLoss: -110.75, ProfitProbability: 68.3,
			DaysToExpiration: 31, StrikePriceLong: 420, StrikePriceShort: 415,
			PremiumPaid: 200.00, PremiumReceived: 110.75,
		},
		{
			Symbol: "GOOGL", CompanyName: "Alphabet Inc.", SpreadType: models.SpreadTypeIronCondor,
			ExpectedValue: 156.80, MaxProfit: 180.00, MaxLoss: -220.00, ProfitProbability: 81.2,
			DaysToExpiration: 28, StrikePriceLong: 2800, StrikePriceShort: 2820,
			PremiumPaid: 220.00, PremiumReceived: 180.00,
		},
		{
			Symbol: "TSLA", CompanyName: "Tesla Inc.", SpreadType: models.SpreadTypeCalendar,
			ExpectedValue: 45.30, MaxProfit: 85.00, MaxLoss: -39.70, ProfitProbability: 58.7,
			DaysToExpiration: 45, StrikePriceLong: 240, StrikePriceShort: 240,
			PremiumPaid: 85.00, PremiumReceived: 39.70,
		},
		{
			Symbol: "NVDA", CompanyName: "NVIDIA Corporation", SpreadType: models.SpreadTypeButterfly,
			ExpectedValue: 78.90, MaxProfit: 150.00, MaxLoss: -71.10, ProfitProbability: 65.4,
			DaysToExpiration: 19, StrikePriceLong: 900, StrikePriceShort: 920,
			PremiumPaid: 150.00, PremiumReceived: 71.10,
		},
	}
}

// NewSpread builds an in-memory spread with sensible defaults, for engine tests
// that only care about a couple of fields.
func NewSpread(symbol string, expectedValue, probability float64) *models.OptionsSpread {
	return &models.OptionsSpread{
		Symbol:            symbol,
		CompanyName:       symbol + " Corp",
		SpreadType:        models.SpreadTypeBullCall,
		ExpectedValue:     expectedValue,
		MaxProfit:         100,
		MaxLoss:           -50,
		ProfitProbability: probability,
		DaysToExpiration:  30,
		StrikePriceLong:   100,
		StrikePriceShort:  105,
		PremiumPaid:       50,
	}
}

// SeedSampleSpreads inserts the five reference spreads and returns them with IDs.
func SeedSampleSpreads(t *testing.T, db *gorm.DB) []*models.OptionsSpread {
	t.Helper()

	spreads := SampleSpreads()
	for _, s := range spreads {
		if err := db.Create(s).Error; err != nil {
			t.Fatalf("failed to create sample spread %s: %v", s.Symbol, err)
		}
	}
	return spreads
}

// CreateTestSpread inserts a single spread.
func CreateTestSpread(t *testing.T, db *gorm.DB, spread *models.OptionsSpread) *models.OptionsSpread {
	t.Helper()

	if err := db.Create(spread).Error; err != nil {
		t.Fatalf("failed to create test spread: %v", err)
	}
	return spread
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestSavedFilter creates a saved filter at default thresholds for the user.
func CreateTestSavedFilter(t *testing.T, db *gorm.DB, userID string) *models.SavedFilter {
	t.Helper()

	filter := &models.SavedFilter{
		UserID:              userID,
		Name:                fmt.Sprintf("Test Filter %d", nextID()),
		SpreadType:          "all",
		MaxDaysToExpiration: 45,
		MinProbability:      50,
	}
	if err := db.Create(filter).Error; err != nil {
		t.Fatalf("failed to create test saved filter: %v", err)
	}
	return filter
}
