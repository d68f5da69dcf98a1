package services

import (
	"context"

	"spreadscan/internal/models"
	"spreadscan/internal/pagination"
	"spreadscan/internal/scanner"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
}

// SpreadInput carries one spread record from an ingestion path (HTTP, Kafka,
// seed files) into the store. ID is optional; when set, records that already
// exist are skipped on import.
type SpreadInput struct {
	ID                string            `json:"id,omitempty" yaml:"id"`
	Symbol            string            `json:"symbol" yaml:"symbol" binding:"required,ticker"`
	CompanyName       string            `json:"company_name" yaml:"company_name"`
	SpreadType        models.SpreadType `json:"spread_type" yaml:"spread_type" binding:"required,spread_type"`
	ExpectedValue     float64           `json:"expected_value" yaml:"expected_value"`
	MaxProfit         float64           `json:"max_profit" yaml:"max_profit" binding:"min=0"`
	MaxLoss           float64           `json:"max_loss" yaml:"max_loss" binding:"max=0"`
	ProfitProbability float64           `json:"profit_probability" yaml:"profit_probability" binding:"min=0,max=100"`
	DaysToExpiration  int               `json:"days_to_expiration" yaml:"days_to_expiration" binding:"min=0"`
	StrikePriceLong   float64           `json:"strike_price_long" yaml:"strike_price_long" binding:"gt=0"`
	StrikePriceShort  float64           `json:"strike_price_short" yaml:"strike_price_short" binding:"gt=0"`
	PremiumPaid       float64           `json:"premium_paid" yaml:"premium_paid" binding:"min=0"`
	PremiumReceived   float64           `json:"premium_received" yaml:"premium_received" binding:"min=0"`
}

// SpreadServicer is the spread store. List is the data-source contract the
// scanner views are computed from.
type SpreadServicer interface {
	List(sort SortKey, limit int) ([]*models.OptionsSpread, error)
	GetSpreadByID(id string) (*models.OptionsSpread, error)
	ListSpreads(search string, page pagination.PageRequest) (*pagination.PageResponse[models.OptionsSpread], error)
	CreateSpread(input SpreadInput) (*models.OptionsSpread, error)
	ImportSpreads(inputs []SpreadInput) (int, error)
}

// ScanResult is the scanner page: the filtered table, the top performers
// panel and the stat cards.
type ScanResult struct {
	Filter        scanner.FilterConfig    `json:"filter"`
	ActiveFilters int                     `json:"active_filters"`
	Spreads       []*models.OptionsSpread `json:"spreads"`
	TopPerformers []*models.OptionsSpread `json:"top_performers"`
	Stats         scanner.SummaryStats    `json:"stats"`
}

// AnalyticsResult feeds the analytics page charts.
type AnalyticsResult struct {
	Summary          scanner.SummaryStats   `json:"summary"`
	EVDistribution   scanner.Distribution   `json:"ev_distribution"`
	TypeDistribution map[string]int         `json:"type_distribution"`
	Scatter          []scanner.ScatterPoint `json:"scatter"`
}

// ScanEventPublisher announces completed scan runs.
type ScanEventPublisher interface {
	PublishScanCompleted(ctx context.Context, run *models.ScanRun) error
}

// ScannerServicer orchestrates the data source and the scanner engines.
type ScannerServicer interface {
	Scan(cfg scanner.FilterConfig) (*ScanResult, error)
	TopOpportunities() (*scanner.Leaderboards, error)
	Analytics() (*AnalyticsResult, error)
	RunScan(ctx context.Context, triggeredBy string) (*models.ScanRun, error)
	ListScanRuns(page pagination.PageRequest) (*pagination.PageResponse[models.ScanRun], error)
	GetScanRun(id string) (*models.ScanRun, error)
}

// FilterPresetServicer manages per-user saved filter configurations.
type FilterPresetServicer interface {
	CreateFilter(userID, name string, cfg scanner.FilterConfig) (*models.SavedFilter, error)
	ListFilters(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.SavedFilter], error)
	GetFilter(userID, filterID string) (*models.SavedFilter, error)
	DeleteFilter(userID, filterID string) error
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
