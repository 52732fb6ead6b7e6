package domain

import "github.com/shopspring/decimal"

// DefaultCurrency is used when no settings have been saved yet.
const DefaultCurrency = "USD"

// Settings holds the balance at the start of January and the display currency.
type Settings struct {
	InitialBalance decimal.Decimal
	Currency       string
}

// DefaultSettings returns the settings used before any are saved.
func DefaultSettings() Settings {
	return Settings{
		InitialBalance: decimal.Zero,
		Currency:       DefaultCurrency,
	}
}
