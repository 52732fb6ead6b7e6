package postgres

import (
	"context"
	"fmt"

	"github.com/iho/cashflow/internal/domain"
	"github.com/iho/cashflow/internal/infrastructure/postgres/generated"
	"github.com/iho/cashflow/internal/usecase"
)

// EntryRepository implements usecase.EntryRepository over the
// monthly_entries (actuals) and budget_entries (plans) tables.
type EntryRepository struct {
	queries *generated.Queries
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(db generated.DBTX) *EntryRepository {
	return &EntryRepository{queries: generated.New(db)}
}

// ListYear returns every entry of kind recorded in year.
func (r *EntryRepository) ListYear(ctx context.Context, kind domain.EntryKind, year int) ([]domain.Entry, error) {
	switch kind {
	case domain.EntryKindActual:
		rows, err := r.queries.ListActualsByYear(ctx, int32(year))
		if err != nil {
			return nil, err
		}
		return mapEntries(rows, func(row generated.ListActualsByYearRow) (domain.Entry, error) {
			return toEntry(row.Year, row.Month, row.CategoryID, row.CategoryType, row.Amount)
		})
	case domain.EntryKindBudget:
		rows, err := r.queries.ListBudgetsByYear(ctx, int32(year))
		if err != nil {
			return nil, err
		}
		return mapEntries(rows, func(row generated.ListBudgetsByYearRow) (domain.Entry, error) {
			return toEntry(row.Year, row.Month, row.CategoryID, row.CategoryType, row.Amount)
		})
	}

	return nil, unknownKind(kind)
}

// ListMonth returns every entry of kind recorded in year/month.
func (r *EntryRepository) ListMonth(ctx context.Context, kind domain.EntryKind, year, month int) ([]domain.Entry, error) {
	switch kind {
	case domain.EntryKindActual:
		rows, err := r.queries.ListActualsByMonth(ctx, generated.ListActualsByMonthParams{
			Year:  int32(year),
			Month: int32(month),
		})
		if err != nil {
			return nil, err
		}
		return mapEntries(rows, func(row generated.ListActualsByMonthRow) (domain.Entry, error) {
			return toEntry(row.Year, row.Month, row.CategoryID, row.CategoryType, row.Amount)
		})
	case domain.EntryKindBudget:
		rows, err := r.queries.ListBudgetsByMonth(ctx, generated.ListBudgetsByMonthParams{
			Year:  int32(year),
			Month: int32(month),
		})
		if err != nil {
			return nil, err
		}
		return mapEntries(rows, func(row generated.ListBudgetsByMonthRow) (domain.Entry, error) {
			return toEntry(row.Year, row.Month, row.CategoryID, row.CategoryType, row.Amount)
		})
	}

	return nil, unknownKind(kind)
}

// Upsert inserts the entry or replaces the amount of the existing one.
func (r *EntryRepository) Upsert(ctx context.Context, tx usecase.Transaction, kind domain.EntryKind, entry domain.Entry) error {
	queries, err := txQueries(tx)
	if err != nil {
		return err
	}

	switch kind {
	case domain.EntryKindActual:
		return queries.UpsertActual(ctx, generated.UpsertActualParams{
			Year:       int32(entry.Year),
			Month:      int32(entry.Month),
			CategoryID: entry.CategoryID,
			Amount:     decimalToNumeric(entry.Amount),
		})
	case domain.EntryKindBudget:
		return queries.UpsertBudget(ctx, generated.UpsertBudgetParams{
			Year:       int32(entry.Year),
			Month:      int32(entry.Month),
			CategoryID: entry.CategoryID,
			Amount:     decimalToNumeric(entry.Amount),
		})
	}

	return unknownKind(kind)
}

// Delete removes one entry. Deleting a missing entry is not an error.
func (r *EntryRepository) Delete(ctx context.Context, tx usecase.Transaction, kind domain.EntryKind, year, month int, categoryID int64) error {
	queries, err := txQueries(tx)
	if err != nil {
		return err
	}

	switch kind {
	case domain.EntryKindActual:
		return queries.DeleteActual(ctx, generated.DeleteActualParams{
			Year:       int32(year),
			Month:      int32(month),
			CategoryID: categoryID,
		})
	case domain.EntryKindBudget:
		return queries.DeleteBudget(ctx, generated.DeleteBudgetParams{
			Year:       int32(year),
			Month:      int32(month),
			CategoryID: categoryID,
		})
	}

	return unknownKind(kind)
}

// DeleteMonth removes every entry of kind in year/month and returns the
// number of rows removed.
func (r *EntryRepository) DeleteMonth(ctx context.Context, tx usecase.Transaction, kind domain.EntryKind, year, month int) (int64, error) {
	queries, err := txQueries(tx)
	if err != nil {
		return 0, err
	}

	switch kind {
	case domain.EntryKindActual:
		return queries.DeleteActualsByMonth(ctx, generated.DeleteActualsByMonthParams{
			Year:  int32(year),
			Month: int32(month),
		})
	case domain.EntryKindBudget:
		return queries.DeleteBudgetsByMonth(ctx, generated.DeleteBudgetsByMonthParams{
			Year:  int32(year),
			Month: int32(month),
		})
	}

	return 0, unknownKind(kind)
}

func mapEntries[R any](rows []R, convert func(R) (domain.Entry, error)) ([]domain.Entry, error) {
	entries := make([]domain.Entry, 0, len(rows))
	for _, row := range rows {
		e, err := convert(row)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func unknownKind(kind domain.EntryKind) error {
	return fmt.Errorf("unknown entry kind %q", kind)
}
