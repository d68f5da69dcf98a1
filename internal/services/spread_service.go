package services

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gorm.io/gorm"

	apperrors "spreadscan/internal/errors"
	"spreadscan/internal/models"
	"spreadscan/internal/pagination"
	"spreadscan/internal/uuid"
)

// SortField names a spread column the data source can order by.
type SortField string

const (
	SortByExpectedValue     SortField = "expected_value"
	SortByMaxProfit         SortField = "max_profit"
	SortByMaxLoss           SortField = "max_loss"
	SortByProfitProbability SortField = "profit_probability"
	SortByDaysToExpiration  SortField = "days_to_expiration"
	SortByCreatedAt         SortField = "created_at"
	SortBySymbol            SortField = "symbol"
)

var sortFields = map[SortField]bool{
	SortByExpectedValue:     true,
	SortByMaxProfit:         true,
	SortByMaxLoss:           true,
	SortByProfitProbability: true,
	SortByDaysToExpiration:  true,
	SortByCreatedAt:         true,
	SortBySymbol:            true,
}

// SortKey is a column plus direction. Its string form is the field name,
// prefixed with "-" when descending.
type SortKey struct {
	Field      SortField
	Descending bool
}

// ParseSortKey parses "field" or "-field".
func ParseSortKey(raw string) (SortKey, error) {
	key := SortKey{Field: SortField(raw)}
	if strings.HasPrefix(raw, "-") {
		key = SortKey{Field: SortField(raw[1:]), Descending: true}
	}
	if !sortFields[key.Field] {
		return SortKey{}, apperrors.WithMessage(apperrors.ErrInvalidSortKey, fmt.Sprintf("unknown sort key %q", raw))
	}
	return key, nil
}

// IsValidSortKey reports whether raw parses as a SortKey.
func IsValidSortKey(raw string) bool {
	_, err := ParseSortKey(raw)
	return err == nil
}

// String implements fmt.Stringer.
func (k SortKey) String() string {
	if k.Descending {
		return "-" + string(k.Field)
	}
	return string(k.Field)
}

// orderClause builds the ORDER BY expression. Ties fall back to the UUIDv7
// primary key, i.e. insertion order.
func (k SortKey) orderClause() string {
	dir := "ASC"
	if k.Descending {
		dir = "DESC"
	}
	return fmt.Sprintf("%s %s, id ASC", k.Field, dir)
}

// spreadService is the gorm-backed spread store.
type spreadService struct {
	db *gorm.DB
}

// NewSpreadService creates a new SpreadServicer.
func NewSpreadService(db *gorm.DB) SpreadServicer {
	return &spreadService{db: db}
}

// List returns at most limit spreads ordered by sort. An empty store yields an
// empty, non-nil slice.
func (s *spreadService) List(sort SortKey, limit int) ([]*models.OptionsSpread, error) {
	if !sortFields[sort.Field] {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidSortKey, fmt.Sprintf("unknown sort key %q", sort))
	}
	if limit <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "limit must be positive")
	}

	spreads := make([]*models.OptionsSpread, 0)
	if err := s.db.Order(sort.orderClause()).Limit(limit).Find(&spreads).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDataSourceUnavailable, err)
	}
	return spreads, nil
}

// GetSpreadByID returns a spread by its ID.
func (s *spreadService) GetSpreadByID(id string) (*models.OptionsSpread, error) {
	var spread models.OptionsSpread
	if err := s.db.Where("id = ?", id).First(&spread).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSpreadNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &spread, nil
}

// likeEscaper makes user search text match literally inside a LIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ListSpreads returns a paginated table of spreads ordered by symbol,
// optionally narrowed by a case-insensitive symbol or company search.
func (s *spreadService) ListSpreads(search string, page pagination.PageRequest) (*pagination.PageResponse[models.OptionsSpread], error) {
	page.Defaults()

	base := s.db.Model(&models.OptionsSpread{})
	if q := strings.TrimSpace(search); q != "" {
		like := "%" + likeEscaper.Replace(strings.ToLower(q)) + "%"
		base = base.Where(`LOWER(symbol) LIKE ? ESCAPE '\' OR LOWER(company_name) LIKE ? ESCAPE '\'`, like, like)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var spreads []models.OptionsSpread
	if err := base.Order("symbol ASC, id ASC").Scopes(pagination.Paginate(page)).Find(&spreads).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(spreads, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// CreateSpread validates and stores a single spread.
func (s *spreadService) CreateSpread(input SpreadInput) (*models.OptionsSpread, error) {
	spread, err := newSpreadFromInput(input)
	if err != nil {
		return nil, err
	}

	if err := s.db.Create(spread).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, apperrors.ErrDuplicateSpread
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return spread, nil
}

// ImportSpreads bulk-inserts spreads, skipping IDs that already exist. The
// whole batch is validated up front and written in one transaction, so an
// invalid record rejects the batch. Returns the number of records created.
func (s *spreadService) ImportSpreads(inputs []SpreadInput) (int, error) {
	if len(inputs) == 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Spreads array is empty")
	}

	spreads := make([]*models.OptionsSpread, len(inputs))
	for i, in := range inputs {
		spread, err := newSpreadFromInput(in)
		if err != nil {
			var appErr *apperrors.AppError
			if errors.As(err, &appErr) {
				return 0, apperrors.WithMessage(appErr, fmt.Sprintf("record %d: %s", i, appErr.Message))
			}
			return 0, err
		}
		spreads[i] = spread
	}

	created := 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, spread := range spreads {
			if spread.ID != "" {
				var count int64
				if err := tx.Model(&models.OptionsSpread{}).Where("id = ?", spread.ID).Count(&count).Error; err != nil {
					return err
				}
				if count > 0 {
					continue
				}
			}
			if err := tx.Create(spread).Error; err != nil {
				return err
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return created, nil
}

// newSpreadFromInput checks the record invariants and builds the model.
func newSpreadFromInput(in SpreadInput) (*models.OptionsSpread, error) {
	if err := validateSpreadInput(in); err != nil {
		return nil, err
	}

	id := ""
	if in.ID != "" {
		parsed, err := uuid.Parse(in.ID)
		if err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidSpread, "id must be a UUID")
		}
		id = parsed
	}

	spread := &models.OptionsSpread{
		Symbol:            strings.ToUpper(strings.TrimSpace(in.Symbol)),
		CompanyName:       strings.TrimSpace(in.CompanyName),
		SpreadType:        in.SpreadType,
		ExpectedValue:     in.ExpectedValue,
		MaxProfit:         in.MaxProfit,
		MaxLoss:           in.MaxLoss,
		ProfitProbability: in.ProfitProbability,
		DaysToExpiration:  in.DaysToExpiration,
		StrikePriceLong:   in.StrikePriceLong,
		StrikePriceShort:  in.StrikePriceShort,
		PremiumPaid:       in.PremiumPaid,
		PremiumReceived:   in.PremiumReceived,
	}
	spread.ID = id
	return spread, nil
}

func validateSpreadInput(in SpreadInput) error {
	if strings.TrimSpace(in.Symbol) == "" {
		return invalidSpread("symbol is required")
	}
	if !in.SpreadType.Valid() {
		return invalidSpread("unknown spread_type %q", in.SpreadType)
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"expected_value", in.ExpectedValue},
		{"max_profit", in.MaxProfit},
		{"max_loss", in.MaxLoss},
		{"profit_probability", in.ProfitProbability},
		{"strike_price_long", in.StrikePriceLong},
		{"strike_price_short", in.StrikePriceShort},
		{"premium_paid", in.PremiumPaid},
		{"premium_received", in.PremiumReceived},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return invalidSpread("%s must be a finite number", f.name)
		}
	}
	if in.MaxProfit < 0 {
		return invalidSpread("max_profit must be >= 0, got %v", in.MaxProfit)
	}
	if in.MaxLoss > 0 {
		return invalidSpread("max_loss must be <= 0, got %v", in.MaxLoss)
	}
	if in.ProfitProbability < 0 || in.ProfitProbability > 100 {
		return invalidSpread("profit_probability must be within [0, 100], got %v", in.ProfitProbability)
	}
	if in.DaysToExpiration < 0 {
		return invalidSpread("days_to_expiration must be >= 0, got %d", in.DaysToExpiration)
	}
	if in.StrikePriceLong <= 0 || in.StrikePriceShort <= 0 {
		return invalidSpread("strike prices must be positive")
	}
	if in.PremiumPaid < 0 || in.PremiumReceived < 0 {
		return invalidSpread("premiums must be >= 0")
	}
	return nil
}

func invalidSpread(format string, args ...interface{}) error {
	return apperrors.WithMessage(apperrors.ErrInvalidSpread, fmt.Sprintf(format, args...))
}

// isUniqueConstraintError checks if a GORM error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // SQLite
		strings.Contains(msg, "duplicate key value violates unique constraint") // PostgreSQL
}
