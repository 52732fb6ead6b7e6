package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/iho/cashflow/internal/adapter/http/dto"
	"github.com/iho/cashflow/internal/domain"
	"github.com/iho/cashflow/internal/usecase"
)

// EntryService writes monthly actual and budget entries.
type EntryService interface {
	SaveMonth(ctx context.Context, input usecase.SaveMonthInput) (*usecase.SaveMonthResult, error)
	CopyBudgetsFromPreviousMonth(ctx context.Context, year, month int) (int, error)
	ClearMonth(ctx context.Context, year, month int, mode domain.EntryMode) (*usecase.ClearMonthResult, error)
}

// EntryHandler handles entry-related HTTP requests.
type EntryHandler struct {
	entryUC EntryService
}

// NewEntryHandler creates a new EntryHandler.
func NewEntryHandler(entryUC EntryService) *EntryHandler {
	return &EntryHandler{entryUC: entryUC}
}

// SaveMonth stores the actual and planned amounts of a month.
func (h *EntryHandler) SaveMonth(w http.ResponseWriter, r *http.Request) {
	year, month, err := parseYearMonth(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", err.Error())
		return
	}

	var req dto.SaveMonthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.entryUC.SaveMonth(r.Context(), req.ToUseCaseInput(year, month))
	if err != nil {
		writeDomainError(w, "failed to save entries", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.SaveMonthFromResult(year, month, result))
}

// CopyBudgets copies the previous calendar month's budgets into the month.
func (h *EntryHandler) CopyBudgets(w http.ResponseWriter, r *http.Request) {
	year, month, err := parseYearMonth(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", err.Error())
		return
	}

	copied, err := h.entryUC.CopyBudgetsFromPreviousMonth(r.Context(), year, month)
	if err != nil {
		writeDomainError(w, "failed to copy budgets", err)
		return
	}

	source := domain.YearMonth{Year: year, Month: month}.Prev()
	writeJSON(w, http.StatusOK, dto.CopyBudgetsResponse{
		Year:   year,
		Month:  month,
		Source: fmt.Sprintf("%04d-%02d", source.Year, source.Month),
		Copied: copied,
	})
}

// ClearMonth deletes the actuals, the budgets or both of a month.
func (h *EntryHandler) ClearMonth(w http.ResponseWriter, r *http.Request) {
	year, month, err := parseYearMonth(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", err.Error())
		return
	}

	mode, err := domain.ParseEntryMode(r.URL.Query().Get("mode"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid mode", err.Error())
		return
	}

	result, err := h.entryUC.ClearMonth(r.Context(), year, month, mode)
	if err != nil {
		writeDomainError(w, "failed to clear month", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ClearMonthResponse{
		Year:           year,
		Month:          month,
		Mode:           string(mode),
		ActualsDeleted: result.ActualsDeleted,
		BudgetsDeleted: result.BudgetsDeleted,
	})
}
