package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/iho/cashflow/internal/adapter/http/dto"
	"github.com/iho/cashflow/internal/domain"
	"github.com/iho/cashflow/internal/usecase"
)

// DashboardService computes dashboards.
type DashboardService interface {
	GetDashboard(ctx context.Context, input usecase.GetDashboardInput) (*domain.Dashboard, error)
}

// DashboardHandler handles dashboard HTTP requests.
type DashboardHandler struct {
	dashboardUC DashboardService
	now         func() time.Time
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardUC DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: dashboardUC,
		now:         time.Now,
	}
}

// Get computes the dashboard for the requested period. Malformed or missing
// parameters fall back to the current year and month instead of failing.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	input := h.parseInput(r)

	dashboard, err := h.dashboardUC.GetDashboard(r.Context(), input)
	if err != nil {
		writeDomainError(w, "failed to compute dashboard", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.DashboardFromDomain(dashboard))
}

func (h *DashboardHandler) parseInput(r *http.Request) usecase.GetDashboardInput {
	now := h.now()

	year := parseIntQuery(r, "year", now.Year())
	if year < domain.MinYear || year > domain.MaxYear {
		year = now.Year()
	}

	return usecase.GetDashboardInput{
		Year: year,
		View: domain.ViewSpec{
			Mode:  domain.ParseViewMode(r.URL.Query().Get("view")),
			Month: parseIntQuery(r, "month", int(now.Month())),
			From:  parseIntQuery(r, "monthFrom", 1),
			To:    parseIntQuery(r, "monthTo", domain.MonthsPerYear),
		},
		HideEmpty: parseBoolQuery(r, "hideEmpty", false),
		Sort: domain.CategorySort{
			Key:  domain.ParseCategorySortKey(r.URL.Query().Get("sort")),
			Desc: r.URL.Query().Get("dir") != "asc",
		},
	}
}
