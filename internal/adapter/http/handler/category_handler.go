package handler

import (
	"context"
	"net/http"

	"github.com/iho/cashflow/internal/adapter/http/dto"
	"github.com/iho/cashflow/internal/domain"
)

// CategoryService lists categories.
type CategoryService interface {
	ListCategories(ctx context.Context, activeOnly bool) ([]*domain.Category, error)
}

// CategoryHandler handles category HTTP requests.
type CategoryHandler struct {
	categoryUC CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryUC CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryUC: categoryUC}
}

// List lists categories, only active ones unless active=false.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := parseBoolQuery(r, "active", true)

	categories, err := h.categoryUC.ListCategories(r.Context(), activeOnly)
	if err != nil {
		writeDomainError(w, "failed to list categories", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.CategoriesFromDomain(categories))
}
