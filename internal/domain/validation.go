package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidCurrency = errors.New("invalid currency code")
	ErrAmountTooLarge  = errors.New("amount exceeds maximum allowed")
)

// Validation constants
const (
	MinYear   = 1
	MaxYear   = 9999
	MaxAmount = "1000000000000" // 1 trillion, either sign
)

// Valid currency codes (ISO 4217)
var validCurrencies = map[string]bool{
	"USD": true, "EUR": true, "GBP": true, "JPY": true,
	"CNY": true, "AUD": true, "CAD": true, "CHF": true,
	"SEK": true, "NZD": true, "KRW": true, "SGD": true,
	"NOK": true, "MXN": true, "INR": true, "BRL": true,
	"ZAR": true, "RUB": true, "TRY": true, "HKD": true,
	"PLN": true, "CZK": true, "DKK": true, "HUF": true,
}

var maxAmount = decimal.RequireFromString(MaxAmount)

// ValidateYearMonth validates a ledger year and month.
func ValidateYearMonth(year, month int) error {
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("%w: got %d", ErrInvalidYear, year)
	}
	if !ValidMonth(month) {
		return fmt.Errorf("%w: got %d", ErrInvalidMonth, month)
	}
	return nil
}

// ValidateCurrency validates currency code
func ValidateCurrency(currency string) error {
	currency = strings.ToUpper(strings.TrimSpace(currency))

	if !validCurrencies[currency] {
		return fmt.Errorf("%w: %s is not a valid ISO 4217 currency code", ErrInvalidCurrency, currency)
	}

	return nil
}

// ValidateAmount validates an entry or balance amount. Amounts are signed;
// only their magnitude is bounded.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.Abs().GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum magnitude is %s", ErrAmountTooLarge, MaxAmount)
	}
	return nil
}
