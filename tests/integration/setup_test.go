package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"spreadscan/internal/logger"
	"spreadscan/internal/models"
	"spreadscan/internal/router"
	"spreadscan/internal/services"
	"spreadscan/internal/testutil"
	"spreadscan/internal/validator"
)

const testAPIKey = "pipeline-test-key"

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB        *gorm.DB
	Router    *gin.Engine
	Published *recordingPublisher
}

// recordingPublisher captures scan completion events in place of Kafka.
type recordingPublisher struct {
	mu   sync.Mutex
	runs []*models.ScanRun
}

func (p *recordingPublisher) PublishScanCompleted(_ context.Context, run *models.ScanRun) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.runs = append(p.runs, run)
	return nil
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.runs)
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()
	return setupAppWithOptions(t, router.Options{PipelineAPIKey: testAPIKey})
}

func setupAppWithOptions(t *testing.T, opts router.Options) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	publisher := &recordingPublisher{}

	spreadService := services.NewSpreadService(db)
	engine := router.New(router.Services{
		Users:   services.NewUserService(db),
		Spreads: spreadService,
		Scanner: services.NewScannerService(db, spreadService, publisher, services.DefaultScannerOptions()),
		Filters: services.NewFilterService(db),
		Audit:   services.NewAuditService(db),
	}, opts)

	return &testApp{DB: db, Router: engine, Published: publisher}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// pipelineRequest makes a request to the pipeline routes with the given API key.
func (app *testApp) pipelineRequest(method, path, body, apiKey string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// errorCode extracts error.code from an error response.
func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	errObj, ok := parseJSON(t, rec)["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object, got %s", rec.Body.String())
	}
	code, _ := errObj["code"].(string)
	return code
}

// registerUser registers a new user and returns the access token, refresh token, and user ID.
func (app *testApp) registerUser(t *testing.T, email, password string) (accessToken, refreshToken, userID string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q,"first_name":"Test","last_name":"Trader"}`, email, password)
	rec := app.request("POST", "/api/v1/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["token"].(string), result["refresh_token"].(string), user["id"].(string)
}

// loginUser logs in and returns the access and refresh tokens.
func (app *testApp) loginUser(t *testing.T, email, password string) (accessToken, refreshToken string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	rec := app.request("POST", "/api/v1/auth/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	return result["token"].(string), result["refresh_token"].(string)
}

// spreadInputs converts spreads into the ingestion payload shape.
func spreadInputs(spreads []*models.OptionsSpread) []services.SpreadInput {
	inputs := make([]services.SpreadInput, len(spreads))
	for i, s := range spreads {
		inputs[i] = services.SpreadInput{
			ID:                s.ID,
			Symbol:            s.Symbol,
			CompanyName:       s.CompanyName,
			SpreadType:        s.SpreadType,
			ExpectedValue:     s.ExpectedValue,
			MaxProfit:         s.MaxProfit,
			MaxLoss:           s.MaxLoss,
			ProfitProbability: s.ProfitProbability,
			DaysToExpiration:  s.DaysToExpiration,
			StrikePriceLong:   s.StrikePriceLong,
			StrikePriceShort:  s.StrikePriceShort,
			PremiumPaid:       s.PremiumPaid,
			PremiumReceived:   s.PremiumReceived,
		}
	}
	return inputs
}

// importSpreads pushes spreads through the pipeline endpoint and returns the created count.
func (app *testApp) importSpreads(t *testing.T, spreads []*models.OptionsSpread) int {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{"spreads": spreadInputs(spreads)})
	if err != nil {
		t.Fatalf("marshal import body: %v", err)
	}
	rec := app.pipelineRequest("POST", "/api/v1/pipeline/spreads", string(body), testAPIKey)
	if rec.Code != http.StatusCreated {
		t.Fatalf("import failed: %d %s", rec.Code, rec.Body.String())
	}
	return int(parseJSON(t, rec)["created"].(float64))
}

// symbols extracts the symbol of every spread object in list.
func symbols(t *testing.T, list interface{}) []string {
	t.Helper()
	items, ok := list.([]interface{})
	if !ok {
		t.Fatalf("expected a JSON array, got %T", list)
	}
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.(map[string]interface{})["symbol"].(string)
	}
	return out
}

func assertSymbols(t *testing.T, got []string, want ...string) {
	t.Helper()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("expected symbols %v, got %v", want, got)
	}
}
