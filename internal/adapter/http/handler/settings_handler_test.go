package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/cashflow/internal/adapter/http/dto"
	"github.com/iho/cashflow/internal/domain"
	"github.com/iho/cashflow/internal/usecase"
)

type settingsServiceStub struct {
	getFn    func(ctx context.Context) (*domain.Settings, error)
	updateFn func(ctx context.Context, input usecase.UpdateSettingsInput) (*domain.Settings, error)
}

func (s *settingsServiceStub) GetSettings(ctx context.Context) (*domain.Settings, error) {
	return s.getFn(ctx)
}

func (s *settingsServiceStub) UpdateSettings(ctx context.Context, input usecase.UpdateSettingsInput) (*domain.Settings, error) {
	return s.updateFn(ctx, input)
}

type categoryServiceStub struct {
	listFn func(ctx context.Context, activeOnly bool) ([]*domain.Category, error)
}

func (s *categoryServiceStub) ListCategories(ctx context.Context, activeOnly bool) ([]*domain.Category, error) {
	return s.listFn(ctx, activeOnly)
}

func TestSettingsHandler_Get(t *testing.T) {
	handler := NewSettingsHandler(&settingsServiceStub{
		getFn: func(ctx context.Context) (*domain.Settings, error) {
			return &domain.Settings{InitialBalance: decimal.RequireFromString("1200.50"), Currency: "EUR"}, nil
		},
	})

	rec := httptest.NewRecorder()
	handler.Get(rec, httptest.NewRequest(http.MethodGet, "/settings", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.SettingsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Currency != "EUR" || !resp.InitialBalance.Equal(decimal.RequireFromString("1200.5")) {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestSettingsHandler_Update(t *testing.T) {
	var captured usecase.UpdateSettingsInput
	handler := NewSettingsHandler(&settingsServiceStub{
		updateFn: func(ctx context.Context, input usecase.UpdateSettingsInput) (*domain.Settings, error) {
			captured = input
			return &domain.Settings{InitialBalance: *input.InitialBalance, Currency: "USD"}, nil
		},
	})

	rec := httptest.NewRecorder()
	handler.Update(rec, httptest.NewRequest(http.MethodPut, "/settings", strings.NewReader(`{"initial_balance":"-50"}`)))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if captured.Currency != nil || captured.InitialBalance == nil || !captured.InitialBalance.Equal(decimal.NewFromInt(-50)) {
		t.Fatalf("unexpected input: %+v", captured)
	}
}

func TestSettingsHandler_Update_Errors(t *testing.T) {
	handler := NewSettingsHandler(&settingsServiceStub{
		updateFn: func(ctx context.Context, input usecase.UpdateSettingsInput) (*domain.Settings, error) {
			return nil, domain.ErrInvalidCurrency
		},
	})

	rec := httptest.NewRecorder()
	handler.Update(rec, httptest.NewRequest(http.MethodPut, "/settings", strings.NewReader(`{"currency":"XXX"}`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid currency, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.Update(rec, httptest.NewRequest(http.MethodPut, "/settings", strings.NewReader(`not json`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", rec.Code)
	}
}

func TestCategoryHandler_List(t *testing.T) {
	tests := []struct {
		query      string
		wantActive bool
	}{
		{"", true},
		{"?active=true", true},
		{"?active=false", false},
	}

	for _, tt := range tests {
		var captured bool
		handler := NewCategoryHandler(&categoryServiceStub{
			listFn: func(ctx context.Context, activeOnly bool) ([]*domain.Category, error) {
				captured = activeOnly
				return []*domain.Category{{ID: 1, Name: "Salary", Type: domain.CategoryIncome, IsActive: true}}, nil
			},
		})

		rec := httptest.NewRecorder()
		handler.List(rec, httptest.NewRequest(http.MethodGet, "/categories"+tt.query, nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if captured != tt.wantActive {
			t.Fatalf("%q: activeOnly = %v, want %v", tt.query, captured, tt.wantActive)
		}

		var resp []dto.CategoryResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if len(resp) != 1 || resp[0].TypeLabel != "Income" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	}
}

func TestCategoryHandler_List_Error(t *testing.T) {
	handler := NewCategoryHandler(&categoryServiceStub{
		listFn: func(ctx context.Context, activeOnly bool) ([]*domain.Category, error) {
			return nil, errors.New("db down")
		},
	})

	rec := httptest.NewRecorder()
	handler.List(rec, httptest.NewRequest(http.MethodGet, "/categories", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
