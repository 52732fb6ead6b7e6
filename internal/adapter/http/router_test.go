package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/cashflow/internal/adapter/http/dto"
	"github.com/iho/cashflow/internal/adapter/http/handler"
	apimiddleware "github.com/iho/cashflow/internal/adapter/http/middleware"
	"github.com/iho/cashflow/internal/domain"
	"github.com/iho/cashflow/internal/infrastructure/metrics"
	"github.com/iho/cashflow/internal/usecase"
)

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
	if rec.Header().Get(apimiddleware.RequestIDHeader) == "" {
		t.Fatalf("expected a request id header")
	}
}

func TestNewRouter_RateLimiterBlocksExcessRequests(t *testing.T) {
	rl := apimiddleware.NewRateLimiter(1, 1)
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.RateLimiter = rl
	}))

	req1 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req1.RemoteAddr = "1.2.3.4:1234"
	rec1 := httptest.NewRecorder()
	router.ServeHTTP(rec1, req1)
	if rec1.Code != http.StatusOK {
		t.Fatalf("expected first request to succeed, got %d", rec1.Code)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req2.RemoteAddr = "1.2.3.4:1234"
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req2)
	if rec2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be throttled, got %d", rec2.Code)
	}
}

func TestNewRouter_IdempotencyMiddlewareInvokesStore(t *testing.T) {
	store := &stubIdempotencyStore{}
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.IdempotencyStore = store
	}))

	req := httptest.NewRequest(http.MethodPut, "/api/v1/settings", strings.NewReader(`{"currency":"EUR"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apimiddleware.IdempotencyKeyHeader, "key-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if !store.checkCalled {
		t.Fatalf("expected idempotency store to be used")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !store.updateCalled {
		t.Fatalf("expected successful response to be stored")
	}
}

func TestNewRouter_DashboardEndToEnd(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard?year=2024&view=ytd&month=3", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.DashboardResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode dashboard: %v", err)
	}
	if resp.Period != "2024 YTD (Jan – Mar)" || len(resp.Months) != 3 {
		t.Fatalf("unexpected dashboard: %q with %d months", resp.Period, len(resp.Months))
	}
	if !resp.Totals.Income.Equal(decimal.NewFromInt(3000)) {
		t.Fatalf("expected YTD income 3000, got %s", resp.Totals.Income)
	}
}

func TestNewRouter_MetricsEndpoint(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := metrics.NewWithRegisterer(registry)
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.Metrics = m
		cfg.InFlight = m.HTTPInFlight
		cfg.MetricsHandler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	}))

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /metrics to return 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `cashflow_http_requests_total{method="GET",path="/health",status="200"} 1`) {
		t.Fatalf("expected health request to be counted, got:\n%s", rec.Body.String())
	}
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig())

	chiRoutes, ok := router.(chi.Router)
	if !ok {
		t.Fatal("router does not implement chi.Routes")
	}

	seen := map[string]bool{}
	if err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	expected := []string{
		"GET /health",
		"GET /ready",
		"GET /api/v1/dashboard",
		"GET /api/v1/categories",
		"GET /api/v1/settings/",
		"PUT /api/v1/settings/",
		"PUT /api/v1/entries/{year}/{month}/",
		"DELETE /api/v1/entries/{year}/{month}/",
		"POST /api/v1/entries/{year}/{month}/copy-budgets",
	}

	for _, route := range expected {
		if !seen[route] {
			t.Fatalf("expected route %s to be registered, have %v", route, seen)
		}
	}
}

func newRouterConfig(opts ...func(*RouterConfig)) RouterConfig {
	cfg := RouterConfig{
		DashboardHandler: handler.NewDashboardHandler(usecase.NewDashboardUseCase(stubLedgerReader{}, nil, zerolog.Nop())),
		EntryHandler:     handler.NewEntryHandler(stubEntryService{}),
		SettingsHandler:  handler.NewSettingsHandler(stubSettingsService{}),
		CategoryHandler:  handler.NewCategoryHandler(stubCategoryService{}),
		HealthHandler:    handler.NewHealthHandler(stubPinger{}, stubPinger{}),
		Logger:           zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

type stubLedgerReader struct{}

func (stubLedgerReader) FetchYear(ctx context.Context, year int) (*domain.YearLedger, error) {
	ledger := &domain.YearLedger{Year: year}
	if year == 2024 {
		for m := 1; m <= 12; m++ {
			ledger.Actuals = append(ledger.Actuals, domain.Entry{
				Year: year, Month: m, CategoryID: 1, CategoryType: domain.CategoryIncome, Amount: decimal.NewFromInt(1000),
			})
		}
	}
	return ledger, nil
}

func (stubLedgerReader) FetchCategories(ctx context.Context, activeOnly bool) ([]*domain.Category, error) {
	return []*domain.Category{{ID: 1, Name: "Salary", Type: domain.CategoryIncome, IsActive: true}}, nil
}

func (stubLedgerReader) FetchSettings(ctx context.Context) (*domain.Settings, error) {
	s := domain.DefaultSettings()
	return &s, nil
}

type stubEntryService struct{}

func (stubEntryService) SaveMonth(ctx context.Context, input usecase.SaveMonthInput) (*usecase.SaveMonthResult, error) {
	return &usecase.SaveMonthResult{}, nil
}

func (stubEntryService) CopyBudgetsFromPreviousMonth(ctx context.Context, year, month int) (int, error) {
	return 0, nil
}

func (stubEntryService) ClearMonth(ctx context.Context, year, month int, mode domain.EntryMode) (*usecase.ClearMonthResult, error) {
	return &usecase.ClearMonthResult{}, nil
}

type stubSettingsService struct{}

func (stubSettingsService) GetSettings(ctx context.Context) (*domain.Settings, error) {
	s := domain.DefaultSettings()
	return &s, nil
}

func (stubSettingsService) UpdateSettings(ctx context.Context, input usecase.UpdateSettingsInput) (*domain.Settings, error) {
	s := domain.DefaultSettings()
	if input.Currency != nil {
		s.Currency = *input.Currency
	}
	return &s, nil
}

type stubCategoryService struct{}

func (stubCategoryService) ListCategories(ctx context.Context, activeOnly bool) ([]*domain.Category, error) {
	return []*domain.Category{}, nil
}

type stubPinger struct{}

func (stubPinger) Ping(ctx context.Context) error { return nil }

type stubIdempotencyStore struct {
	checkCalled  bool
	updateCalled bool
}

func (s *stubIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	s.checkCalled = true
	return false, nil, nil
}

func (s *stubIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	s.updateCalled = true
	return nil
}

func (s *stubIdempotencyStore) Release(ctx context.Context, key string) error {
	return nil
}
