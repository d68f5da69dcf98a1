package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "spreadscan/internal/errors"
	"spreadscan/internal/logger"
	"spreadscan/internal/models"
	"spreadscan/internal/pagination"
	"spreadscan/internal/scanner"
)

// ScannerOptions sizes the spread pools each view loads and the simulated
// scan duration.
type ScannerOptions struct {
	ScannerPoolLimit     int
	OpportunityPoolLimit int
	AnalyticsPoolLimit   int
	ScanDelay            time.Duration
}

// DefaultScannerOptions mirrors the dashboard's list() calls.
func DefaultScannerOptions() ScannerOptions {
	return ScannerOptions{
		ScannerPoolLimit:     500,
		OpportunityPoolLimit: 20,
		AnalyticsPoolLimit:   1000,
	}
}

var (
	scannerPoolSort   = SortKey{Field: SortByExpectedValue, Descending: true}
	analyticsPoolSort = SortKey{Field: SortByCreatedAt, Descending: true}
)

// scannerService wires the spread store to the scanner engines. It keeps no
// state between calls.
type scannerService struct {
	db        *gorm.DB
	spreads   SpreadServicer
	publisher ScanEventPublisher
	opts      ScannerOptions
}

// NewScannerService creates a new ScannerServicer. publisher may be nil.
func NewScannerService(db *gorm.DB, spreads SpreadServicer, publisher ScanEventPublisher, opts ScannerOptions) ScannerServicer {
	return &scannerService{db: db, spreads: spreads, publisher: publisher, opts: opts}
}

// Scan filters the scanner pool with cfg. Stat cards describe the whole pool,
// not the filtered table.
func (s *scannerService) Scan(cfg scanner.FilterConfig) (*ScanResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pool, err := s.spreads.List(scannerPoolSort, s.opts.ScannerPoolLimit)
	if err != nil {
		return nil, err
	}

	filtered, err := scanner.Filter(pool, cfg)
	if err != nil {
		return nil, err
	}

	return &ScanResult{
		Filter:        cfg,
		ActiveFilters: scanner.ActiveFilterCount(cfg),
		Spreads:       filtered,
		TopPerformers: scanner.TopPerformers(filtered),
		Stats:         scanner.Summarize(pool),
	}, nil
}

// TopOpportunities builds the three leaderboards over the opportunity pool.
func (s *scannerService) TopOpportunities() (*scanner.Leaderboards, error) {
	pool, err := s.spreads.List(scannerPoolSort, s.opts.OpportunityPoolLimit)
	if err != nil {
		return nil, err
	}

	boards := scanner.BuildLeaderboards(pool)
	return &boards, nil
}

// Analytics aggregates the most recently created spreads for the charts.
func (s *scannerService) Analytics() (*AnalyticsResult, error) {
	pool, err := s.spreads.List(analyticsPoolSort, s.opts.AnalyticsPoolLimit)
	if err != nil {
		return nil, err
	}

	return &AnalyticsResult{
		Summary:          scanner.Summarize(pool),
		EVDistribution:   scanner.ExpectedValueDistribution(pool),
		TypeDistribution: scanner.TypeDistribution(pool),
		Scatter:          scanner.ProbabilityVsValue(pool),
	}, nil
}

// RunScan is the "Start Scan" action. It waits for the configured delay,
// re-reads the scanner pool and records the outcome as a ScanRun. A failed
// pool read is recorded too, then returned. Publishing is best effort.
func (s *scannerService) RunScan(ctx context.Context, triggeredBy string) (*models.ScanRun, error) {
	log := logger.Named("scanner")
	run := &models.ScanRun{
		TriggeredBy: triggeredBy,
		StartedAt:   time.Now().UTC(),
	}

	if s.opts.ScanDelay > 0 {
		timer := time.NewTimer(s.opts.ScanDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			log.Infow("scan cancelled", "triggered_by", triggeredBy, "error", ctx.Err())
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	pool, listErr := s.spreads.List(scannerPoolSort, s.opts.ScannerPoolLimit)
	completed := time.Now().UTC()
	run.CompletedAt = &completed

	if listErr != nil {
		run.Status = models.ScanStatusFailed
		run.ErrorMessage = listErr.Error()
	} else {
		stats := scanner.Summarize(pool)
		run.Status = models.ScanStatusCompleted
		run.RecordCount = stats.Count
		run.ProfitableCount = stats.ProfitableCount
		run.AverageExpectedValue = stats.AverageExpectedValue
		run.AverageProbability = stats.AverageProbability
	}

	if err := s.db.Create(run).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if listErr != nil {
		log.Warnw("scan failed", "scan_id", run.ID, "triggered_by", triggeredBy, "error", listErr)
		return nil, listErr
	}

	log.Infow("scan completed",
		"scan_id", run.ID,
		"triggered_by", triggeredBy,
		"records", run.RecordCount,
		"profitable", run.ProfitableCount,
	)

	if s.publisher != nil {
		if err := s.publisher.PublishScanCompleted(ctx, run); err != nil {
			log.Warnw("failed to publish scan completed event", "scan_id", run.ID, "error", err)
		}
	}

	return run, nil
}

// ListScanRuns returns scan runs, newest first.
func (s *scannerService) ListScanRuns(page pagination.PageRequest) (*pagination.PageResponse[models.ScanRun], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.ScanRun{})
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var runs []models.ScanRun
	if err := base.Order("started_at DESC, id DESC").Scopes(pagination.Paginate(page)).Find(&runs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(runs, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetScanRun returns a scan run by its ID.
func (s *scannerService) GetScanRun(id string) (*models.ScanRun, error) {
	var run models.ScanRun
	if err := s.db.Where("id = ?", id).First(&run).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrScanNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &run, nil
}
