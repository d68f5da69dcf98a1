package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "spreadscan/internal/errors"
	"spreadscan/internal/models"
	"spreadscan/internal/services"
)

func setupPipelineRouter(handler *PipelineHandler) *gin.Engine {
	r := gin.New()
	r.POST("/pipeline/spreads", handler.ImportSpreads)
	r.GET("/pipeline/spreads", handler.ListSpreads)
	return r
}

func spreadJSON(symbol, spreadType string, maxLoss float64) string {
	return fmt.Sprintf(`{"symbol":%q,"company_name":"%s Inc.","spread_type":%q,"expected_value":50,`+
		`"max_profit":100,"max_loss":%v,"profit_probability":60,"days_to_expiration":20,`+
		`"strike_price_long":100,"strike_price_short":105,"premium_paid":50}`, symbol, symbol, spreadType, maxLoss)
}

func TestPipelineHandler_ImportSpreads(t *testing.T) {
	t.Run("imports a batch and reports the created count", func(t *testing.T) {
		var got []services.SpreadInput
		spreadSvc := &mockSpreadService{
			importSpreadsFn: func(inputs []services.SpreadInput) (int, error) {
				got = inputs
				return 1, nil
			},
		}
		audit := &mockAuditService{}
		r := setupPipelineRouter(NewPipelineHandler(spreadSvc, audit))

		body := `{"spreads":[` + spreadJSON("AAPL", "bull_call_spread", -50) + "," + spreadJSON("MSFT", "bear_put_spread", -50) + `]}`
		rec := doRequest(r, "POST", "/pipeline/spreads", body)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if len(got) != 2 || got[1].SpreadType != models.SpreadTypeBearPut {
			t.Errorf("unexpected inputs %+v", got)
		}
		result := parseJSON(t, rec)
		if result["received"] != float64(2) || result["created"] != float64(1) {
			t.Errorf("unexpected result %v", result)
		}
		if len(audit.calls) != 1 || audit.calls[0].action != services.AuditActionImportSpreads {
			t.Errorf("expected one import audit, got %+v", audit.calls)
		}
	})

	t.Run("rejects a positive max loss", func(t *testing.T) {
		r := setupPipelineRouter(NewPipelineHandler(&mockSpreadService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/pipeline/spreads", `{"spreads":[`+spreadJSON("AAPL", "bull_call_spread", 25)+`]}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_SPREAD")
	})

	t.Run("rejects an unknown spread type", func(t *testing.T) {
		r := setupPipelineRouter(NewPipelineHandler(&mockSpreadService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/pipeline/spreads", `{"spreads":[`+spreadJSON("AAPL", "strangle", -50)+`]}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("rejects an empty batch", func(t *testing.T) {
		r := setupPipelineRouter(NewPipelineHandler(&mockSpreadService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/pipeline/spreads", `{"spreads":[]}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 503 when the store fails", func(t *testing.T) {
		spreadSvc := &mockSpreadService{
			importSpreadsFn: func(_ []services.SpreadInput) (int, error) {
				return 0, apperrors.ErrDataSourceUnavailable
			},
		}
		r := setupPipelineRouter(NewPipelineHandler(spreadSvc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/pipeline/spreads", `{"spreads":[`+spreadJSON("AAPL", "bull_call_spread", -50)+`]}`)

		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", rec.Code)
		}
	})
}

func TestPipelineHandler_ListSpreads(t *testing.T) {
	t.Run("defaults to expected value descending", func(t *testing.T) {
		var gotSort services.SortKey
		var gotLimit int
		spreadSvc := &mockSpreadService{
			listFn: func(sort services.SortKey, limit int) ([]*models.OptionsSpread, error) {
				gotSort, gotLimit = sort, limit
				return []*models.OptionsSpread{{Symbol: "GOOGL"}}, nil
			},
		}
		r := setupPipelineRouter(NewPipelineHandler(spreadSvc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/pipeline/spreads", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotSort.Field != services.SortByExpectedValue || !gotSort.Descending {
			t.Errorf("expected -expected_value, got %+v", gotSort)
		}
		if gotLimit != 20 {
			t.Errorf("expected limit 20, got %d", gotLimit)
		}
		result := parseJSON(t, rec)
		if result["sort"] != "-expected_value" {
			t.Errorf("expected sort echo, got %v", result["sort"])
		}
	})

	t.Run("parses ascending sort and limit", func(t *testing.T) {
		var gotSort services.SortKey
		var gotLimit int
		spreadSvc := &mockSpreadService{
			listFn: func(sort services.SortKey, limit int) ([]*models.OptionsSpread, error) {
				gotSort, gotLimit = sort, limit
				return []*models.OptionsSpread{}, nil
			},
		}
		r := setupPipelineRouter(NewPipelineHandler(spreadSvc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/pipeline/spreads?sort=days_to_expiration&limit=500", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotSort.Field != services.SortByDaysToExpiration || gotSort.Descending {
			t.Errorf("expected days_to_expiration ascending, got %+v", gotSort)
		}
		if gotLimit != 500 {
			t.Errorf("expected limit 500, got %d", gotLimit)
		}
	})

	t.Run("returns INVALID_SORT_KEY on unknown field", func(t *testing.T) {
		r := setupPipelineRouter(NewPipelineHandler(&mockSpreadService{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/pipeline/spreads?sort=-volume", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		assertErrorCode(t, result, "INVALID_SORT_KEY")
		msg := result["error"].(map[string]interface{})["message"].(string)
		if !strings.Contains(msg, "-volume") {
			t.Errorf("expected message to name the key, got %q", msg)
		}
	})

	t.Run("returns INVALID_INPUT on oversized limit", func(t *testing.T) {
		r := setupPipelineRouter(NewPipelineHandler(&mockSpreadService{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/pipeline/spreads?limit=5000", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}
