package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "spreadscan/internal/errors"
	"spreadscan/internal/services"
)

// Bounds of the raw list endpoint.
const (
	defaultPipelineSort  = "-expected_value"
	defaultPipelineLimit = 20
)

// PipelineHandler exposes the spread store to the upstream data pipeline.
type PipelineHandler struct {
	spreadService services.SpreadServicer
	auditService  services.AuditServicer
}

// NewPipelineHandler creates a new PipelineHandler.
func NewPipelineHandler(spreadService services.SpreadServicer, auditService services.AuditServicer) *PipelineHandler {
	return &PipelineHandler{spreadService: spreadService, auditService: auditService}
}

// ImportSpreadsRequest represents the bulk ingestion payload.
type ImportSpreadsRequest struct {
	Spreads []services.SpreadInput `json:"spreads" binding:"required,min=1,max=1000,dive"`
}

// ImportSpreadsResponse reports how many records were new.
type ImportSpreadsResponse struct {
	Received int `json:"received"`
	Created  int `json:"created"`
}

// ImportSpreads handles bulk spread ingestion.
// @Summary     Import spreads
// @Description Bulk-insert spread records; records whose id already exists are skipped (pipeline endpoint)
// @Tags        pipeline
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       request body ImportSpreadsRequest true "Spread records"
// @Success     201 {object} ImportSpreadsResponse "Import result"
// @Failure     400 {object} ErrorResponse "Invalid spread"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     503 {object} ErrorResponse "Pipeline not configured"
// @Router      /pipeline/spreads [post]
func (h *PipelineHandler) ImportSpreads(c *gin.Context) {
	var req ImportSpreadsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidSpread, err.Error()))
		return
	}

	created, err := h.spreadService.ImportSpreads(req.Spreads)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("", services.AuditActionImportSpreads, "options_spread", "", c.ClientIP(),
		map[string]interface{}{"received": len(req.Spreads), "created": created})

	c.JSON(http.StatusCreated, ImportSpreadsResponse{Received: len(req.Spreads), Created: created})
}

// ListSpreadsQuery holds the raw list parameters.
type ListSpreadsQuery struct {
	Sort  string `form:"sort" binding:"omitempty,sort_key"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=1000"`
}

// ListSpreads handles the raw list contract.
// @Summary     List spreads (pipeline)
// @Description Sorted, limited spread list; sort is a field name optionally prefixed with "-" for descending (pipeline endpoint)
// @Tags        pipeline
// @Produce     json
// @Security    ApiKeyAuth
// @Param       sort  query string false "Sort key (default -expected_value)"
// @Param       limit query int    false "Maximum records (default 20, max 1000)"
// @Success     200 {object} map[string][]models.OptionsSpread "Spreads"
// @Failure     400 {object} ErrorResponse "Invalid sort key or limit"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     503 {object} ErrorResponse "Data source unavailable"
// @Router      /pipeline/spreads [get]
func (h *PipelineHandler) ListSpreads(c *gin.Context) {
	query := ListSpreadsQuery{Sort: defaultPipelineSort, Limit: defaultPipelineLimit}
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, listQueryError(err))
		return
	}

	sort, err := services.ParseSortKey(query.Sort)
	if err != nil {
		respondWithError(c, err)
		return
	}

	spreads, err := h.spreadService.List(sort, query.Limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sort": sort.String(), "limit": query.Limit, "spreads": spreads})
}

// listQueryError reports a rejected sort key as INVALID_SORT_KEY and anything
// else as INVALID_INPUT.
func listQueryError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "sort_key" {
				return apperrors.WithMessage(apperrors.ErrInvalidSortKey, "unknown sort key "+fe.Value().(string))
			}
		}
	}
	return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
}
