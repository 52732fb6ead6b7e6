package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/iho/cashflow/internal/domain"
	"github.com/iho/cashflow/internal/usecase"
	"github.com/iho/cashflow/internal/usecase/mocks"
)

type entryMocks struct {
	txManager  *mocks.MockTransactionManager
	tx         *mocks.MockTransaction
	entries    *mocks.MockEntryRepository
	categories *mocks.MockCategoryRepository
}

func newEntryUseCase(t *testing.T) (*usecase.EntryUseCase, entryMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := entryMocks{
		txManager:  mocks.NewMockTransactionManager(ctrl),
		tx:         mocks.NewMockTransaction(ctrl),
		entries:    mocks.NewMockEntryRepository(ctrl),
		categories: mocks.NewMockCategoryRepository(ctrl),
	}

	return usecase.NewEntryUseCase(m.txManager, m.entries, m.categories), m
}

func (m entryMocks) expectCommittedTx() {
	m.txManager.EXPECT().Begin(gomock.Any()).Return(m.tx, nil)
	m.tx.EXPECT().Commit(gomock.Any()).Return(nil)
	m.tx.EXPECT().Rollback(gomock.Any()).Return(nil)
}

func amount(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestEntryUseCase_SaveMonth(t *testing.T) {
	uc, m := newEntryUseCase(t)

	m.categories.EXPECT().GetByIDs(gomock.Any(), []int64{1, 2}).Return([]*domain.Category{
		{ID: 1, Name: "Salary", Type: domain.CategoryIncome},
		{ID: 2, Name: "Rent", Type: domain.CategoryExpense},
	}, nil)
	m.expectCommittedTx()

	m.entries.EXPECT().Upsert(gomock.Any(), m.tx, domain.EntryKindActual, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ usecase.Transaction, _ domain.EntryKind, e domain.Entry) error {
			assert.Equal(t, int64(1), e.CategoryID)
			assert.Equal(t, domain.CategoryIncome, e.CategoryType)
			assert.Equal(t, 3, e.Month)
			return nil
		})
	m.entries.EXPECT().Upsert(gomock.Any(), m.tx, domain.EntryKindBudget, gomock.Any()).Return(nil)
	m.entries.EXPECT().Delete(gomock.Any(), m.tx, domain.EntryKindActual, 2024, 3, int64(2)).Return(nil)
	m.entries.EXPECT().Upsert(gomock.Any(), m.tx, domain.EntryKindBudget, gomock.Any()).Return(nil)

	result, err := uc.SaveMonth(context.Background(), usecase.SaveMonthInput{
		Year:  2024,
		Month: 3,
		Items: []usecase.EntryAmounts{
			{CategoryID: 1, Actual: amount(5000), Plan: amount(5000)},
			{CategoryID: 2, Actual: nil, Plan: amount(1200)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Upserted)
	assert.Equal(t, 1, result.Deleted)
}

func TestEntryUseCase_SaveMonth_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.SaveMonthInput
		setup   func(entryMocks)
		wantErr error
	}{
		{
			name:    "invalid month",
			input:   usecase.SaveMonthInput{Year: 2024, Month: 13},
			wantErr: domain.ErrInvalidMonth,
		},
		{
			name:    "invalid year",
			input:   usecase.SaveMonthInput{Year: 0, Month: 1},
			wantErr: domain.ErrInvalidYear,
		},
		{
			name: "amount too large",
			input: usecase.SaveMonthInput{Year: 2024, Month: 1, Items: []usecase.EntryAmounts{
				{CategoryID: 1, Actual: amount(2_000_000_000_000)},
			}},
			wantErr: domain.ErrAmountTooLarge,
		},
		{
			name: "unknown category",
			input: usecase.SaveMonthInput{Year: 2024, Month: 1, Items: []usecase.EntryAmounts{
				{CategoryID: 99, Actual: amount(1)},
			}},
			setup: func(m entryMocks) {
				m.categories.EXPECT().GetByIDs(gomock.Any(), []int64{99}).Return(nil, nil)
			},
			wantErr: domain.ErrCategoryNotFound,
		},
		{
			name:    "too many entries",
			input:   usecase.SaveMonthInput{Year: 2024, Month: 1, Items: make([]usecase.EntryAmounts, usecase.MaxEntriesPerSave+1)},
			wantErr: domain.ErrTooManyEntries,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, m := newEntryUseCase(t)
			if tt.setup != nil {
				tt.setup(m)
			}

			_, err := uc.SaveMonth(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEntryUseCase_SaveMonth_RollsBackOnWriteError(t *testing.T) {
	uc, m := newEntryUseCase(t)

	writeErr := errors.New("constraint violation")

	m.categories.EXPECT().GetByIDs(gomock.Any(), []int64{1}).Return([]*domain.Category{
		{ID: 1, Type: domain.CategoryIncome},
	}, nil)
	m.txManager.EXPECT().Begin(gomock.Any()).Return(m.tx, nil)
	m.tx.EXPECT().Rollback(gomock.Any()).Return(nil)
	m.entries.EXPECT().Upsert(gomock.Any(), m.tx, domain.EntryKindActual, gomock.Any()).Return(writeErr)

	_, err := uc.SaveMonth(context.Background(), usecase.SaveMonthInput{
		Year:  2024,
		Month: 1,
		Items: []usecase.EntryAmounts{{CategoryID: 1, Actual: amount(10), Plan: amount(10)}},
	})
	assert.ErrorIs(t, err, writeErr)
}

func TestEntryUseCase_CopyBudgetsFromPreviousMonth_January(t *testing.T) {
	uc, m := newEntryUseCase(t)

	m.entries.EXPECT().ListMonth(gomock.Any(), domain.EntryKindBudget, 2023, 12).Return([]domain.Entry{
		entry(2023, 12, 2, domain.CategoryExpense, 1200),
		entry(2023, 12, 4, domain.CategoryExpense, 300),
	}, nil)
	m.expectCommittedTx()

	var copied []domain.Entry
	m.entries.EXPECT().Upsert(gomock.Any(), m.tx, domain.EntryKindBudget, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ usecase.Transaction, _ domain.EntryKind, e domain.Entry) error {
			copied = append(copied, e)
			return nil
		}).Times(2)

	n, err := uc.CopyBudgetsFromPreviousMonth(context.Background(), 2024, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, e := range copied {
		assert.Equal(t, 2024, e.Year)
		assert.Equal(t, 1, e.Month)
	}
}

func TestEntryUseCase_CopyBudgetsFromPreviousMonth_NothingToCopy(t *testing.T) {
	uc, m := newEntryUseCase(t)

	m.entries.EXPECT().ListMonth(gomock.Any(), domain.EntryKindBudget, 2024, 4).Return(nil, nil)

	n, err := uc.CopyBudgetsFromPreviousMonth(context.Background(), 2024, 5)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestEntryUseCase_ClearMonth(t *testing.T) {
	tests := []struct {
		name        string
		mode        domain.EntryMode
		wantActuals int64
		wantBudgets int64
	}{
		{name: "actual only", mode: domain.EntryModeActual, wantActuals: 4},
		{name: "plan only", mode: domain.EntryModePlan, wantBudgets: 6},
		{name: "both", mode: domain.EntryModeBoth, wantActuals: 4, wantBudgets: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, m := newEntryUseCase(t)
			m.expectCommittedTx()

			if tt.mode.IncludesActual() {
				m.entries.EXPECT().DeleteMonth(gomock.Any(), m.tx, domain.EntryKindActual, 2024, 6).Return(int64(4), nil)
			}
			if tt.mode.IncludesPlan() {
				m.entries.EXPECT().DeleteMonth(gomock.Any(), m.tx, domain.EntryKindBudget, 2024, 6).Return(int64(6), nil)
			}

			result, err := uc.ClearMonth(context.Background(), 2024, 6, tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.wantActuals, result.ActualsDeleted)
			assert.Equal(t, tt.wantBudgets, result.BudgetsDeleted)
		})
	}
}

func TestEntryUseCase_ClearMonth_InvalidMode(t *testing.T) {
	uc, _ := newEntryUseCase(t)

	_, err := uc.ClearMonth(context.Background(), 2024, 6, domain.EntryMode("everything"))
	assert.ErrorIs(t, err, domain.ErrInvalidEntryMode)
}

func TestEntryUseCase_ObserverSeesEveryWrite(t *testing.T) {
	uc, m := newEntryUseCase(t)
	observer := mocks.NewMockEntryObserver(gomock.NewController(t))
	uc.WithObserver(observer)

	observer.EXPECT().ObserveEntryWrite("clear_month", gomock.Any()).Do(func(_ string, err error) {
		assert.ErrorIs(t, err, domain.ErrInvalidMonth)
	})
	_, err := uc.ClearMonth(context.Background(), 2024, 13, domain.EntryModeBoth)
	require.Error(t, err)

	m.entries.EXPECT().ListMonth(gomock.Any(), domain.EntryKindBudget, 2024, 4).Return(nil, nil)
	observer.EXPECT().ObserveEntryWrite("copy_budgets", nil)
	copied, err := uc.CopyBudgetsFromPreviousMonth(context.Background(), 2024, 5)
	require.NoError(t, err)
	assert.Zero(t, copied)
}
