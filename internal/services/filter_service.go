package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "spreadscan/internal/errors"
	"spreadscan/internal/models"
	"spreadscan/internal/pagination"
	"spreadscan/internal/scanner"
)

// filterService handles saved filter presets.
type filterService struct {
	db *gorm.DB
}

// NewFilterService creates a new FilterPresetServicer.
func NewFilterService(db *gorm.DB) FilterPresetServicer {
	return &filterService{db: db}
}

// CreateFilter validates cfg and stores it under name for the user.
func (s *filterService) CreateFilter(userID, name string, cfg scanner.FilterConfig) (*models.SavedFilter, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Name is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	filter := &models.SavedFilter{
		UserID:              userID,
		Name:                name,
		SpreadType:          string(cfg.SpreadType),
		MinExpectedValue:    cfg.MinExpectedValue,
		MaxDaysToExpiration: cfg.MaxDaysToExpiration,
		MinProbability:      cfg.MinProbability,
		SymbolQuery:         cfg.SymbolQuery,
	}

	if err := s.db.Create(filter).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, apperrors.ErrDuplicateFilter
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return filter, nil
}

// ListFilters returns the user's saved filters ordered by name.
func (s *filterService) ListFilters(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.SavedFilter], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.SavedFilter{}).Where("user_id = ?", userID)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var filters []models.SavedFilter
	if err := base.Order("name ASC").Scopes(pagination.Paginate(page)).Find(&filters).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(filters, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetFilter returns one of the user's saved filters. Filters owned by other
// users are reported as not found.
func (s *filterService) GetFilter(userID, filterID string) (*models.SavedFilter, error) {
	var filter models.SavedFilter
	if err := s.db.Where("id = ? AND user_id = ?", filterID, userID).First(&filter).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFilterNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &filter, nil
}

// DeleteFilter removes one of the user's saved filters.
func (s *filterService) DeleteFilter(userID, filterID string) error {
	filter, err := s.GetFilter(userID, filterID)
	if err != nil {
		return err
	}
	// Hard delete so the (user_id, name) unique index frees the name.
	if err := s.db.Unscoped().Delete(filter).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// FilterConfigOf converts a stored preset back into an engine FilterConfig.
func FilterConfigOf(f *models.SavedFilter) scanner.FilterConfig {
	return scanner.FilterConfig{
		SpreadType:          models.SpreadType(f.SpreadType),
		MinExpectedValue:    f.MinExpectedValue,
		MaxDaysToExpiration: f.MaxDaysToExpiration,
		MinProbability:      f.MinProbability,
		SymbolQuery:         f.SymbolQuery,
	}
}
