package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iho/cashflow/internal/domain"
)

// EntryUseCase handles month entry management: saving actuals and plans,
// copying budgets forward and clearing a month.
type EntryUseCase struct {
	txManager    TransactionManager
	entryRepo    EntryRepository
	categoryRepo CategoryRepository
	observer     EntryObserver
}

// NewEntryUseCase creates a new EntryUseCase.
func NewEntryUseCase(txManager TransactionManager, entryRepo EntryRepository, categoryRepo CategoryRepository) *EntryUseCase {
	return &EntryUseCase{
		txManager:    txManager,
		entryRepo:    entryRepo,
		categoryRepo: categoryRepo,
	}
}

// WithObserver sets the observer notified after every write operation.
func (uc *EntryUseCase) WithObserver(observer EntryObserver) *EntryUseCase {
	uc.observer = observer
	return uc
}

func (uc *EntryUseCase) observe(operation string, err error) {
	if uc.observer != nil {
		uc.observer.ObserveEntryWrite(operation, err)
	}
}

// EntryAmounts is the actual and planned amount of one category in a month.
// A nil amount deletes the stored entry.
type EntryAmounts struct {
	CategoryID int64
	Actual     *decimal.Decimal
	Plan       *decimal.Decimal
}

// SaveMonthInput represents input for saving a month's entries.
type SaveMonthInput struct {
	Year  int
	Month int
	Items []EntryAmounts
}

// SaveMonthResult counts the upserts and deletes issued.
type SaveMonthResult struct {
	Upserted int
	Deleted  int
}

// SaveMonth writes every item of the month atomically.
func (uc *EntryUseCase) SaveMonth(ctx context.Context, input SaveMonthInput) (*SaveMonthResult, error) {
	result, err := uc.saveMonth(ctx, input)
	uc.observe("save_month", err)
	return result, err
}

func (uc *EntryUseCase) saveMonth(ctx context.Context, input SaveMonthInput) (*SaveMonthResult, error) {
	if err := domain.ValidateYearMonth(input.Year, input.Month); err != nil {
		return nil, err
	}
	if len(input.Items) > MaxEntriesPerSave {
		return nil, fmt.Errorf("%w: %d > %d", domain.ErrTooManyEntries, len(input.Items), MaxEntriesPerSave)
	}

	ids := make([]int64, 0, len(input.Items))
	seen := make(map[int64]bool, len(input.Items))
	for _, item := range input.Items {
		for _, amount := range []*decimal.Decimal{item.Actual, item.Plan} {
			if amount == nil {
				continue
			}
			if err := domain.ValidateAmount(*amount); err != nil {
				return nil, err
			}
		}
		if !seen[item.CategoryID] {
			seen[item.CategoryID] = true
			ids = append(ids, item.CategoryID)
		}
	}

	if len(ids) == 0 {
		return &SaveMonthResult{}, nil
	}

	categories, err := uc.categoryRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	types := make(map[int64]domain.CategoryType, len(categories))
	for _, c := range categories {
		types[c.ID] = c.Type
	}
	for _, id := range ids {
		if _, ok := types[id]; !ok {
			return nil, fmt.Errorf("%w: %d", domain.ErrCategoryNotFound, id)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	result := &SaveMonthResult{}
	for _, item := range input.Items {
		writes := []struct {
			kind   domain.EntryKind
			amount *decimal.Decimal
		}{
			{domain.EntryKindActual, item.Actual},
			{domain.EntryKindBudget, item.Plan},
		}

		for _, w := range writes {
			if w.amount == nil {
				if err := uc.entryRepo.Delete(ctx, tx, w.kind, input.Year, input.Month, item.CategoryID); err != nil {
					return nil, err
				}
				result.Deleted++
				continue
			}

			entry := domain.Entry{
				Year:         input.Year,
				Month:        input.Month,
				CategoryID:   item.CategoryID,
				CategoryType: types[item.CategoryID],
				Amount:       *w.amount,
			}
			if err := uc.entryRepo.Upsert(ctx, tx, w.kind, entry); err != nil {
				return nil, err
			}
			result.Upserted++
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return result, nil
}

// CopyBudgetsFromPreviousMonth copies the budgets of the previous calendar
// month into year/month, overwriting plans already present. January copies
// from December of the prior year. It returns the number of budgets copied.
func (uc *EntryUseCase) CopyBudgetsFromPreviousMonth(ctx context.Context, year, month int) (int, error) {
	copied, err := uc.copyBudgets(ctx, year, month)
	uc.observe("copy_budgets", err)
	return copied, err
}

func (uc *EntryUseCase) copyBudgets(ctx context.Context, year, month int) (int, error) {
	if err := domain.ValidateYearMonth(year, month); err != nil {
		return 0, err
	}

	source := domain.YearMonth{Year: year, Month: month}.Prev()

	budgets, err := uc.entryRepo.ListMonth(ctx, domain.EntryKindBudget, source.Year, source.Month)
	if err != nil {
		return 0, err
	}

	if len(budgets) == 0 {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	for _, b := range budgets {
		b.Year = year
		b.Month = month
		if err := uc.entryRepo.Upsert(ctx, tx, domain.EntryKindBudget, b); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}

	return len(budgets), nil
}

// ClearMonthResult counts the removed rows per collection.
type ClearMonthResult struct {
	ActualsDeleted int64
	BudgetsDeleted int64
}

// ClearMonth removes the actuals, the plans or both of one month.
func (uc *EntryUseCase) ClearMonth(ctx context.Context, year, month int, mode domain.EntryMode) (*ClearMonthResult, error) {
	result, err := uc.clearMonth(ctx, year, month, mode)
	uc.observe("clear_month", err)
	return result, err
}

func (uc *EntryUseCase) clearMonth(ctx context.Context, year, month int, mode domain.EntryMode) (*ClearMonthResult, error) {
	if err := domain.ValidateYearMonth(year, month); err != nil {
		return nil, err
	}
	if !mode.IncludesActual() && !mode.IncludesPlan() {
		return nil, domain.ErrInvalidEntryMode
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	result := &ClearMonthResult{}

	if mode.IncludesActual() {
		result.ActualsDeleted, err = uc.entryRepo.DeleteMonth(ctx, tx, domain.EntryKindActual, year, month)
		if err != nil {
			return nil, err
		}
	}

	if mode.IncludesPlan() {
		result.BudgetsDeleted, err = uc.entryRepo.DeleteMonth(ctx, tx, domain.EntryKindBudget, year, month)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return result, nil
}
