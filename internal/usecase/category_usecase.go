package usecase

import (
	"context"

	"github.com/iho/cashflow/internal/domain"
)

// CategoryUseCase exposes the read-only category list.
type CategoryUseCase struct {
	categoryRepo CategoryRepository
}

// NewCategoryUseCase creates a new CategoryUseCase.
func NewCategoryUseCase(categoryRepo CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{categoryRepo: categoryRepo}
}

// ListCategories returns categories in display order.
func (uc *CategoryUseCase) ListCategories(ctx context.Context, activeOnly bool) ([]*domain.Category, error) {
	return uc.categoryRepo.List(ctx, activeOnly)
}
