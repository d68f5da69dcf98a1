package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "spreadscan/internal/errors"
	"spreadscan/internal/models"
	"spreadscan/internal/pagination"
	"spreadscan/internal/scanner"
	"spreadscan/internal/services"
)

// FilterHandler handles saved filter presets.
type FilterHandler struct {
	filterService  services.FilterPresetServicer
	scannerService services.ScannerServicer
	auditService   services.AuditServicer
}

// NewFilterHandler creates a new FilterHandler.
func NewFilterHandler(filterService services.FilterPresetServicer, scannerService services.ScannerServicer, auditService services.AuditServicer) *FilterHandler {
	return &FilterHandler{filterService: filterService, scannerService: scannerService, auditService: auditService}
}

// CreateFilterRequest represents the request payload for saving a filter.
// Omitted thresholds take their default values.
type CreateFilterRequest struct {
	Name                string   `json:"name" binding:"required,min=1,max=100"`
	SpreadType          string   `json:"spread_type" binding:"omitempty,spread_type_or_all"`
	MinExpectedValue    *float64 `json:"min_expected_value"`
	MaxDaysToExpiration *int     `json:"max_days_to_expiration"`
	MinProbability      *float64 `json:"min_probability"`
	SymbolQuery         string   `json:"symbol_query" binding:"max=50"`
}

func (r CreateFilterRequest) filterConfig() scanner.FilterConfig {
	cfg := scanner.DefaultFilterConfig()
	if r.SpreadType != "" {
		cfg.SpreadType = models.SpreadType(r.SpreadType)
	}
	if r.MinExpectedValue != nil {
		cfg.MinExpectedValue = *r.MinExpectedValue
	}
	if r.MaxDaysToExpiration != nil {
		cfg.MaxDaysToExpiration = *r.MaxDaysToExpiration
	}
	if r.MinProbability != nil {
		cfg.MinProbability = *r.MinProbability
	}
	cfg.SymbolQuery = r.SymbolQuery
	return cfg
}

// CreateFilter handles saving a filter preset.
// @Summary     Save filter
// @Description Save the current filter panel settings under a name
// @Tags        filters
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateFilterRequest true "Filter preset"
// @Success     201 {object} map[string]models.SavedFilter "Saved filter"
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Duplicate name"
// @Router      /filters [post]
func (h *FilterHandler) CreateFilter(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter, err := h.filterService.CreateFilter(userID, req.Name, req.filterConfig())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditActionCreateFilter, "saved_filter", filter.ID, c.ClientIP(),
		map[string]interface{}{"name": filter.Name})

	c.JSON(http.StatusCreated, gin.H{"filter": filter})
}

// ListFilters handles listing the user's filter presets.
// @Summary     List filters
// @Description Get the authenticated user's saved filters ordered by name
// @Tags        filters
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.SavedFilter] "Paginated filters"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /filters [get]
func (h *FilterHandler) ListFilters(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.filterService.ListFilters(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetFilter handles fetching a filter preset.
// @Summary     Get filter
// @Description Get one of the authenticated user's saved filters
// @Tags        filters
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Filter ID"
// @Success     200 {object} map[string]models.SavedFilter "Saved filter"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Filter not found"
// @Router      /filters/{id} [get]
func (h *FilterHandler) GetFilter(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	filter, err := h.filterService.GetFilter(userID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"filter": filter})
}

// DeleteFilter handles deleting a filter preset.
// @Summary     Delete filter
// @Description Delete one of the authenticated user's saved filters
// @Tags        filters
// @Security    BearerAuth
// @Param       id path string true "Filter ID"
// @Success     204 "Deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Filter not found"
// @Router      /filters/{id} [delete]
func (h *FilterHandler) DeleteFilter(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.filterService.DeleteFilter(userID, id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditActionDeleteFilter, "saved_filter", id, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}

// ScanWithFilter runs the scanner with a saved preset.
// @Summary     Scan with saved filter
// @Description Run the scanner with the settings stored in a saved filter
// @Tags        filters
// @Produce     json
// @Security    BearerAuth
// @Param       id        path  string true  "Filter ID"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} ScannerResponse "Scanner results"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Filter not found"
// @Failure     503 {object} ErrorResponse "Data source unavailable"
// @Router      /filters/{id}/scan [get]
func (h *FilterHandler) ScanWithFilter(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter, err := h.filterService.GetFilter(userID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.scannerService.Scan(services.FilterConfigOf(filter))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newScannerResponse(result, page))
}
