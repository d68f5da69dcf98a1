package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "spreadscan/internal/errors"
	"spreadscan/internal/pagination"
	"spreadscan/internal/services"
)

// SpreadHandler serves the raw spread table.
type SpreadHandler struct {
	spreadService services.SpreadServicer
}

// NewSpreadHandler creates a new SpreadHandler.
func NewSpreadHandler(spreadService services.SpreadServicer) *SpreadHandler {
	return &SpreadHandler{spreadService: spreadService}
}

// ListSpreads handles listing spreads.
// @Summary     List spreads
// @Description Get a paginated list of spreads ordered by symbol, optionally filtered by search term
// @Tags        spreads
// @Produce     json
// @Security    BearerAuth
// @Param       search    query string false "Search by symbol or company name (case-insensitive)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.OptionsSpread] "Paginated spreads"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /spreads [get]
func (h *SpreadHandler) ListSpreads(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.spreadService.ListSpreads(c.Query("search"), page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetSpread handles fetching a single spread.
// @Summary     Get spread
// @Description Get a spread by ID
// @Tags        spreads
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Spread ID"
// @Success     200 {object} map[string]models.OptionsSpread "Spread"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Spread not found"
// @Router      /spreads/{id} [get]
func (h *SpreadHandler) GetSpread(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	spread, err := h.spreadService.GetSpreadByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"spread": spread})
}
