package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "spreadscan/internal/errors"
	"spreadscan/internal/format"
	"spreadscan/internal/middleware"
	"spreadscan/internal/models"
	"spreadscan/internal/pagination"
	"spreadscan/internal/scanner"
	"spreadscan/internal/services"
)

// ScannerHandler serves the scanner, opportunities and analytics views and
// the scan run history.
type ScannerHandler struct {
	scannerService services.ScannerServicer
	auditService   services.AuditServicer
}

// NewScannerHandler creates a new ScannerHandler.
func NewScannerHandler(scannerService services.ScannerServicer, auditService services.AuditServicer) *ScannerHandler {
	return &ScannerHandler{scannerService: scannerService, auditService: auditService}
}

// ScannerQuery holds the filter panel query parameters. Absent parameters take
// their default values; quick_filter is applied last.
type ScannerQuery struct {
	SpreadType          string   `form:"spread_type" binding:"omitempty,spread_type_or_all"`
	MinExpectedValue    *float64 `form:"min_expected_value"`
	MaxDaysToExpiration *int     `form:"max_days_to_expiration"`
	MinProbability      *float64 `form:"min_probability"`
	Symbol              string   `form:"symbol" binding:"max=50"`
	QuickFilter         string   `form:"quick_filter"`
}

// FilterConfig builds the engine config for the query.
func (q ScannerQuery) FilterConfig() (scanner.FilterConfig, error) {
	cfg := scanner.DefaultFilterConfig()
	if q.SpreadType != "" {
		cfg.SpreadType = models.SpreadType(q.SpreadType)
	}
	if q.MinExpectedValue != nil {
		cfg.MinExpectedValue = *q.MinExpectedValue
	}
	if q.MaxDaysToExpiration != nil {
		cfg.MaxDaysToExpiration = *q.MaxDaysToExpiration
	}
	if q.MinProbability != nil {
		cfg.MinProbability = *q.MinProbability
	}
	cfg.SymbolQuery = q.Symbol

	if q.QuickFilter != "" {
		preset, ok := scanner.LookupQuickFilter(q.QuickFilter)
		if !ok {
			return scanner.FilterConfig{}, apperrors.WithMessage(apperrors.ErrInvalidFilter,
				fmt.Sprintf("unknown quick_filter %q", q.QuickFilter))
		}
		cfg = preset.Apply(cfg)
	}
	return cfg, nil
}

// StatCards are the four summary cards above the scanner table.
type StatCards struct {
	TotalScanned         int    `json:"total_scanned"`
	ProfitableCount      int    `json:"profitable_count"`
	AverageExpectedValue string `json:"average_expected_value"`
	TopProbability       string `json:"top_probability"`
}

// ScannerResponse is the scanner page payload.
type ScannerResponse struct {
	Filter        scanner.FilterConfig                           `json:"filter"`
	ActiveFilters int                                            `json:"active_filters"`
	Spreads       pagination.PageResponse[*models.OptionsSpread] `json:"spreads"`
	TopPerformers []*models.OptionsSpread                        `json:"top_performers"`
	Stats         scanner.SummaryStats                           `json:"stats"`
	StatCards     StatCards                                      `json:"stat_cards"`
}

func newScannerResponse(result *services.ScanResult, page pagination.PageRequest) ScannerResponse {
	return ScannerResponse{
		Filter:        result.Filter,
		ActiveFilters: result.ActiveFilters,
		Spreads:       pagination.Slice(result.Spreads, page),
		TopPerformers: result.TopPerformers,
		Stats:         result.Stats,
		StatCards: StatCards{
			TotalScanned:         result.Stats.Count,
			ProfitableCount:      result.Stats.ProfitableCount,
			AverageExpectedValue: format.Currency(result.Stats.AverageExpectedValue),
			TopProbability:       format.Percent(result.Stats.MaxProbability, 1),
		},
	}
}

// GetScanner handles the filtered scanner table.
// @Summary     Scan spreads
// @Description Filter the spread pool with the filter panel settings. Stats describe the whole pool.
// @Tags        scanner
// @Produce     json
// @Security    BearerAuth
// @Param       spread_type            query string  false "Spread type or all (default all)"
// @Param       min_expected_value     query number  false "Minimum expected value in dollars (default 0)"
// @Param       max_days_to_expiration query integer false "Maximum days to expiration (default 45)"
// @Param       min_probability        query number  false "Minimum win probability percent (default 50)"
// @Param       symbol                 query string  false "Symbol or company substring"
// @Param       quick_filter           query string  false "Quick filter preset name"
// @Param       page                   query int     false "Page number (default 1)"
// @Param       page_size              query int     false "Items per page (default 20, max 100)"
// @Success     200 {object} ScannerResponse "Scanner results"
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "Data source unavailable"
// @Router      /scanner [get]
func (h *ScannerHandler) GetScanner(c *gin.Context) {
	var query ScannerQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidFilter, err.Error()))
		return
	}
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	cfg, err := query.FilterConfig()
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.scannerService.Scan(cfg)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newScannerResponse(result, page))
}

// GetQuickFilters lists the quick filter presets.
// @Summary     List quick filters
// @Description Get the quick filter presets accepted by the scanner quick_filter parameter
// @Tags        scanner
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string][]scanner.QuickFilter "Quick filters"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /scanner/quick-filters [get]
func (h *ScannerHandler) GetQuickFilters(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"quick_filters": scanner.QuickFilters()})
}

// LeaderboardEntry is one ranked row with its display value.
type LeaderboardEntry struct {
	Rank    int                   `json:"rank"`
	Spread  *models.OptionsSpread `json:"spread"`
	Value   float64               `json:"value"`
	Display string                `json:"display"`
}

// Leaderboard is one ranked board of the opportunities view.
type Leaderboard struct {
	Metric  scanner.Metric     `json:"metric"`
	Title   string             `json:"title"`
	Entries []LeaderboardEntry `json:"entries"`
}

// OpportunitiesResponse holds the three leaderboards.
type OpportunitiesResponse struct {
	ByExpectedValue Leaderboard `json:"by_expected_value"`
	ByProbability   Leaderboard `json:"by_probability"`
	ByRiskReward    Leaderboard `json:"by_risk_reward"`
}

var leaderboardTitles = map[scanner.Metric]string{
	scanner.MetricExpectedValue:     "Highest Expected Value",
	scanner.MetricProfitProbability: "Highest Win Probability",
	scanner.MetricRiskRewardRatio:   "Best Risk/Reward Ratio",
}

func newLeaderboard(view scanner.RankedView) Leaderboard {
	board := Leaderboard{
		Metric:  view.Metric,
		Title:   leaderboardTitles[view.Metric],
		Entries: make([]LeaderboardEntry, len(view.Spreads)),
	}
	for i, s := range view.Spreads {
		entry := LeaderboardEntry{Rank: i + 1, Spread: s, Display: "n/a"}
		if v, ok := scanner.MetricValue(s, view.Metric); ok {
			entry.Value = format.Round2(v)
			entry.Display = view.Metric.Display(v)
		}
		board.Entries[i] = entry
	}
	return board
}

// GetOpportunities handles the top opportunities view.
// @Summary     Top opportunities
// @Description Rank the positive expected value spreads three ways: expected value, win probability and risk/reward
// @Tags        scanner
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} OpportunitiesResponse "Leaderboards"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "Data source unavailable"
// @Router      /opportunities [get]
func (h *ScannerHandler) GetOpportunities(c *gin.Context) {
	boards, err := h.scannerService.TopOpportunities()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, OpportunitiesResponse{
		ByExpectedValue: newLeaderboard(boards.ByExpectedValue),
		ByProbability:   newLeaderboard(boards.ByProbability),
		ByRiskReward:    newLeaderboard(boards.ByRiskReward),
	})
}

// TypeSlice is one slice of the spread type pie chart.
type TypeSlice struct {
	Type  models.SpreadType `json:"type"`
	Label string            `json:"label"`
	Count int               `json:"count"`
}

// AnalyticsResponse is the analytics page payload.
type AnalyticsResponse struct {
	Summary          scanner.SummaryStats   `json:"summary"`
	EVDistribution   scanner.Distribution   `json:"ev_distribution"`
	TypeDistribution []TypeSlice            `json:"type_distribution"`
	Scatter          []scanner.ScatterPoint `json:"scatter"`
}

// typeSlices orders the type distribution by spread type, dropping empty slices.
func typeSlices(counts map[string]int) []TypeSlice {
	slices := make([]TypeSlice, 0, len(counts))
	for _, t := range models.SpreadTypes {
		label := scanner.SpreadTypeLabel(string(t))
		if n := counts[label]; n > 0 {
			slices = append(slices, TypeSlice{Type: t, Label: label, Count: n})
		}
	}
	return slices
}

// GetAnalytics handles the analytics charts.
// @Summary     Analytics
// @Description Summary statistics, expected value histogram, type distribution and probability vs expected value scatter
// @Tags        scanner
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} AnalyticsResponse "Analytics"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "Data source unavailable"
// @Router      /analytics [get]
func (h *ScannerHandler) GetAnalytics(c *gin.Context) {
	result, err := h.scannerService.Analytics()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, AnalyticsResponse{
		Summary:          result.Summary,
		EVDistribution:   result.EVDistribution,
		TypeDistribution: typeSlices(result.TypeDistribution),
		Scatter:          result.Scatter,
	})
}

// StartScan handles the "Start Scan" action.
// @Summary     Start scan
// @Description Re-read the spread pool and record a scan run
// @Tags        scans
// @Produce     json
// @Security    BearerAuth
// @Success     201 {object} map[string]models.ScanRun "Scan run"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "Data source unavailable"
// @Router      /scans [post]
func (h *ScannerHandler) StartScan(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	triggeredBy := c.GetString(middleware.ContextEmail)
	if triggeredBy == "" {
		triggeredBy = userID
	}

	run, err := h.scannerService.RunScan(c.Request.Context(), triggeredBy)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditActionRunScan, "scan_run", run.ID, c.ClientIP(),
		map[string]interface{}{"record_count": run.RecordCount})

	c.JSON(http.StatusCreated, gin.H{"scan": run})
}

// ListScans handles listing scan runs.
// @Summary     List scans
// @Description Get a paginated list of scan runs, newest first
// @Tags        scans
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.ScanRun] "Paginated scan runs"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /scans [get]
func (h *ScannerHandler) ListScans(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.scannerService.ListScanRuns(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetScan handles fetching a single scan run.
// @Summary     Get scan
// @Description Get a scan run by ID
// @Tags        scans
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Scan run ID"
// @Success     200 {object} map[string]models.ScanRun "Scan run"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Scan not found"
// @Router      /scans/{id} [get]
func (h *ScannerHandler) GetScan(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	run, err := h.scannerService.GetScanRun(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"scan": run})
}
