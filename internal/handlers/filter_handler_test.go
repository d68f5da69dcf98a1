package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "spreadscan/internal/errors"
	"spreadscan/internal/models"
	"spreadscan/internal/pagination"
	"spreadscan/internal/scanner"
	"spreadscan/internal/services"
)

const testFilterID = "0190a1b2-c3d4-7e5f-8a9b-cccccccccccc"

type mockFilterService struct {
	createFilterFn func(userID, name string, cfg scanner.FilterConfig) (*models.SavedFilter, error)
	listFiltersFn  func(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.SavedFilter], error)
	getFilterFn    func(userID, filterID string) (*models.SavedFilter, error)
	deleteFilterFn func(userID, filterID string) error
}

func (m *mockFilterService) CreateFilter(userID, name string, cfg scanner.FilterConfig) (*models.SavedFilter, error) {
	if m.createFilterFn != nil {
		return m.createFilterFn(userID, name, cfg)
	}
	return &models.SavedFilter{Base: models.Base{ID: testFilterID}, UserID: userID, Name: name}, nil
}

func (m *mockFilterService) ListFilters(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.SavedFilter], error) {
	if m.listFiltersFn != nil {
		return m.listFiltersFn(userID, page)
	}
	page.Defaults()
	resp := pagination.NewPageResponse([]models.SavedFilter{}, page.Page, page.PageSize, 0)
	return &resp, nil
}

func (m *mockFilterService) GetFilter(userID, filterID string) (*models.SavedFilter, error) {
	if m.getFilterFn != nil {
		return m.getFilterFn(userID, filterID)
	}
	return &models.SavedFilter{Base: models.Base{ID: filterID}, UserID: userID}, nil
}

func (m *mockFilterService) DeleteFilter(userID, filterID string) error {
	if m.deleteFilterFn != nil {
		return m.deleteFilterFn(userID, filterID)
	}
	return nil
}

func setupFilterRouter(handler *FilterHandler) *gin.Engine {
	r := gin.New()
	g := r.Group("/filters", injectUser(testUserID, "test@example.com"))
	g.POST("", handler.CreateFilter)
	g.GET("", handler.ListFilters)
	g.GET("/:id", handler.GetFilter)
	g.DELETE("/:id", handler.DeleteFilter)
	g.GET("/:id/scan", handler.ScanWithFilter)
	return r
}

func TestFilterHandler_CreateFilter(t *testing.T) {
	t.Run("fills omitted thresholds with defaults", func(t *testing.T) {
		var got scanner.FilterConfig
		var gotUser string
		filterSvc := &mockFilterService{
			createFilterFn: func(userID, name string, cfg scanner.FilterConfig) (*models.SavedFilter, error) {
				gotUser, got = userID, cfg
				return &models.SavedFilter{Base: models.Base{ID: testFilterID}, UserID: userID, Name: name}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupFilterRouter(NewFilterHandler(filterSvc, &mockScannerService{}, audit))

		rec := doRequest(r, "POST", "/filters", `{"name":"Condors","spread_type":"iron_condor","min_probability":70}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotUser != testUserID {
			t.Errorf("expected user %s, got %s", testUserID, gotUser)
		}
		want := scanner.DefaultFilterConfig()
		want.SpreadType = models.SpreadTypeIronCondor
		want.MinProbability = 70
		if got != want {
			t.Errorf("expected %+v, got %+v", want, got)
		}
		if len(audit.calls) != 1 || audit.calls[0].action != services.AuditActionCreateFilter {
			t.Errorf("expected one create audit, got %+v", audit.calls)
		}
	})

	t.Run("keeps explicit zero thresholds", func(t *testing.T) {
		var got scanner.FilterConfig
		filterSvc := &mockFilterService{
			createFilterFn: func(_, name string, cfg scanner.FilterConfig) (*models.SavedFilter, error) {
				got = cfg
				return &models.SavedFilter{Base: models.Base{ID: testFilterID}, Name: name}, nil
			},
		}
		r := setupFilterRouter(NewFilterHandler(filterSvc, &mockScannerService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/filters", `{"name":"Everything","min_probability":0,"max_days_to_expiration":0}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.MinProbability != 0 || got.MaxDaysToExpiration != 0 {
			t.Errorf("expected explicit zeros to survive, got %+v", got)
		}
	})

	t.Run("returns 400 on missing name", func(t *testing.T) {
		r := setupFilterRouter(NewFilterHandler(&mockFilterService{}, &mockScannerService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/filters", `{"spread_type":"all"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on unknown spread type", func(t *testing.T) {
		r := setupFilterRouter(NewFilterHandler(&mockFilterService{}, &mockScannerService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/filters", `{"name":"x","spread_type":"strangle"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 409 on duplicate name", func(t *testing.T) {
		filterSvc := &mockFilterService{
			createFilterFn: func(_, _ string, _ scanner.FilterConfig) (*models.SavedFilter, error) {
				return nil, apperrors.ErrDuplicateFilter
			},
		}
		audit := &mockAuditService{}
		r := setupFilterRouter(NewFilterHandler(filterSvc, &mockScannerService{}, audit))

		rec := doRequest(r, "POST", "/filters", `{"name":"Condors"}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "DUPLICATE_FILTER")
		if len(audit.calls) != 0 {
			t.Error("expected no audit on failure")
		}
	})
}

func TestFilterHandler_ListFilters(t *testing.T) {
	var gotUser string
	filterSvc := &mockFilterService{
		listFiltersFn: func(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.SavedFilter], error) {
			gotUser = userID
			resp := pagination.NewPageResponse([]models.SavedFilter{{Name: "A"}, {Name: "B"}}, 1, 20, 2)
			return &resp, nil
		},
	}
	r := setupFilterRouter(NewFilterHandler(filterSvc, &mockScannerService{}, &mockAuditService{}))

	rec := doRequest(r, "GET", "/filters", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotUser != testUserID {
		t.Errorf("expected user %s, got %s", testUserID, gotUser)
	}
	if len(parseJSON(t, rec)["data"].([]interface{})) != 2 {
		t.Error("expected 2 filters")
	}
}

func TestFilterHandler_GetFilter(t *testing.T) {
	t.Run("returns 404 for another user's filter", func(t *testing.T) {
		filterSvc := &mockFilterService{
			getFilterFn: func(_, _ string) (*models.SavedFilter, error) {
				return nil, apperrors.ErrFilterNotFound
			},
		}
		r := setupFilterRouter(NewFilterHandler(filterSvc, &mockScannerService{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/filters/"+testFilterID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "FILTER_NOT_FOUND")
	})

	t.Run("returns 400 on malformed id", func(t *testing.T) {
		r := setupFilterRouter(NewFilterHandler(&mockFilterService{}, &mockScannerService{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/filters/42", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestFilterHandler_DeleteFilter(t *testing.T) {
	var deleted string
	filterSvc := &mockFilterService{
		deleteFilterFn: func(_, filterID string) error {
			deleted = filterID
			return nil
		},
	}
	audit := &mockAuditService{}
	r := setupFilterRouter(NewFilterHandler(filterSvc, &mockScannerService{}, audit))

	rec := doRequest(r, "DELETE", "/filters/"+testFilterID, "")

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deleted != testFilterID {
		t.Errorf("expected %s deleted, got %q", testFilterID, deleted)
	}
	if len(audit.calls) != 1 || audit.calls[0].action != services.AuditActionDeleteFilter {
		t.Errorf("expected one delete audit, got %+v", audit.calls)
	}
}

func TestFilterHandler_ScanWithFilter(t *testing.T) {
	t.Run("scans with the stored settings", func(t *testing.T) {
		filterSvc := &mockFilterService{
			getFilterFn: func(userID, filterID string) (*models.SavedFilter, error) {
				return &models.SavedFilter{
					Base:                models.Base{ID: filterID},
					UserID:              userID,
					Name:                "Condors",
					SpreadType:          string(models.SpreadTypeIronCondor),
					MinExpectedValue:    0,
					MaxDaysToExpiration: 45,
					MinProbability:      50,
				}, nil
			},
		}
		var got scanner.FilterConfig
		scannerSvc := &mockScannerService{
			scanFn: func(cfg scanner.FilterConfig) (*services.ScanResult, error) {
				got = cfg
				return scanSamples(cfg)
			},
		}
		r := setupFilterRouter(NewFilterHandler(filterSvc, scannerSvc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/filters/"+testFilterID+"/scan", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.SpreadType != models.SpreadTypeIronCondor {
			t.Errorf("expected iron condor filter, got %+v", got)
		}
		data := parseJSON(t, rec)["spreads"].(map[string]interface{})["data"].([]interface{})
		if len(data) != 1 || data[0].(map[string]interface{})["symbol"] != "GOOGL" {
			t.Errorf("expected only GOOGL, got %v", data)
		}
	})

	t.Run("returns 404 without scanning when filter is missing", func(t *testing.T) {
		scanned := false
		filterSvc := &mockFilterService{
			getFilterFn: func(_, _ string) (*models.SavedFilter, error) {
				return nil, apperrors.ErrFilterNotFound
			},
		}
		scannerSvc := &mockScannerService{
			scanFn: func(cfg scanner.FilterConfig) (*services.ScanResult, error) {
				scanned = true
				return scanSamples(cfg)
			},
		}
		r := setupFilterRouter(NewFilterHandler(filterSvc, scannerSvc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/filters/"+testFilterID+"/scan", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		if scanned {
			t.Error("expected no scan for a missing filter")
		}
	})
}
