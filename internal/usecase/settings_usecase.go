package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iho/cashflow/internal/domain"
)

// SettingsUseCase handles the settings singleton.
type SettingsUseCase struct {
	settingsRepo    SettingsRepository
	defaultCurrency string
}

// NewSettingsUseCase creates a new SettingsUseCase. defaultCurrency is
// reported until settings are saved; empty means domain.DefaultCurrency.
func NewSettingsUseCase(settingsRepo SettingsRepository, defaultCurrency string) *SettingsUseCase {
	if defaultCurrency == "" {
		defaultCurrency = domain.DefaultCurrency
	}
	return &SettingsUseCase{
		settingsRepo:    settingsRepo,
		defaultCurrency: defaultCurrency,
	}
}

// GetSettings returns the stored settings or the defaults.
func (uc *SettingsUseCase) GetSettings(ctx context.Context) (*domain.Settings, error) {
	settings, err := uc.settingsRepo.Get(ctx)
	if errors.Is(err, domain.ErrSettingsNotFound) {
		defaults := domain.DefaultSettings()
		defaults.Currency = uc.defaultCurrency
		return &defaults, nil
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// UpdateSettingsInput represents input for saving settings. Nil fields keep
// their current value.
type UpdateSettingsInput struct {
	InitialBalance *decimal.Decimal
	Currency       *string
}

// UpdateSettings validates and stores the settings.
func (uc *SettingsUseCase) UpdateSettings(ctx context.Context, input UpdateSettingsInput) (*domain.Settings, error) {
	settings, err := uc.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if input.InitialBalance != nil {
		if err := domain.ValidateAmount(*input.InitialBalance); err != nil {
			return nil, err
		}
		settings.InitialBalance = *input.InitialBalance
	}

	if input.Currency != nil {
		currency := strings.ToUpper(strings.TrimSpace(*input.Currency))
		if err := domain.ValidateCurrency(currency); err != nil {
			return nil, err
		}
		settings.Currency = currency
	}

	if err := uc.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}
