package postgres

import (
	"context"
	"fmt"

	"github.com/iho/cashflow/internal/domain"
	"github.com/iho/cashflow/internal/infrastructure/postgres/generated"
)

// CategoryRepository implements usecase.CategoryRepository.
type CategoryRepository struct {
	queries *generated.Queries
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(db generated.DBTX) *CategoryRepository {
	return &CategoryRepository{queries: generated.New(db)}
}

// List returns categories ordered by sort order then name.
func (r *CategoryRepository) List(ctx context.Context, activeOnly bool) ([]*domain.Category, error) {
	rows, err := r.queries.ListCategories(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	return rowsToCategories(rows)
}

// GetByIDs returns the categories with the given ids; unknown ids are skipped.
func (r *CategoryRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Category, error) {
	if len(ids) == 0 {
		return []*domain.Category{}, nil
	}

	rows, err := r.queries.GetCategoriesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	return rowsToCategories(rows)
}

func rowsToCategories(rows []generated.Category) ([]*domain.Category, error) {
	categories := make([]*domain.Category, 0, len(rows))
	for _, row := range rows {
		ct, err := domain.ParseCategoryType(row.Type)
		if err != nil {
			return nil, fmt.Errorf("category %d: %w", row.ID, err)
		}

		categories = append(categories, &domain.Category{
			ID:        row.ID,
			Name:      row.Name,
			Type:      ct,
			IsActive:  row.IsActive,
			SortOrder: int(row.SortOrder),
		})
	}

	return categories, nil
}
