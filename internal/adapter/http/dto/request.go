package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/cashflow/internal/usecase"
)

// EntryItem is the actual and planned amount of one category. A null or
// missing amount deletes the stored value.
type EntryItem struct {
	CategoryID int64            `json:"category_id"`
	Actual     *decimal.Decimal `json:"actual"`
	Plan       *decimal.Decimal `json:"plan"`
}

// SaveMonthRequest represents a request to save a month's entries.
type SaveMonthRequest struct {
	Entries []EntryItem `json:"entries"`
}

// ToUseCaseInput converts to use case input.
func (r *SaveMonthRequest) ToUseCaseInput(year, month int) usecase.SaveMonthInput {
	items := make([]usecase.EntryAmounts, len(r.Entries))
	for i, e := range r.Entries {
		items[i] = usecase.EntryAmounts{
			CategoryID: e.CategoryID,
			Actual:     e.Actual,
			Plan:       e.Plan,
		}
	}
	return usecase.SaveMonthInput{
		Year:  year,
		Month: month,
		Items: items,
	}
}

// UpdateSettingsRequest represents a request to update settings. Omitted
// fields keep their current value.
type UpdateSettingsRequest struct {
	InitialBalance *decimal.Decimal `json:"initial_balance,omitempty"`
	Currency       *string          `json:"currency,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateSettingsRequest) ToUseCaseInput() usecase.UpdateSettingsInput {
	return usecase.UpdateSettingsInput{
		InitialBalance: r.InitialBalance,
		Currency:       r.Currency,
	}
}
