package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/iho/cashflow/internal/domain"
	"github.com/iho/cashflow/internal/infrastructure/postgres/generated"
)

// SettingsRepository implements usecase.SettingsRepository.
type SettingsRepository struct {
	queries *generated.Queries
}

// NewSettingsRepository creates a new SettingsRepository.
func NewSettingsRepository(db generated.DBTX) *SettingsRepository {
	return &SettingsRepository{queries: generated.New(db)}
}

// Get returns the stored settings.
func (r *SettingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	row, err := r.queries.GetSettings(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSettingsNotFound
		}
		return nil, err
	}

	return &domain.Settings{
		InitialBalance: numericToDecimal(row.InitialBalance),
		Currency:       row.Currency,
	}, nil
}

// Save upserts the settings row.
func (r *SettingsRepository) Save(ctx context.Context, settings *domain.Settings) error {
	return r.queries.UpsertSettings(ctx, generated.UpsertSettingsParams{
		InitialBalance: decimalToNumeric(settings.InitialBalance),
		Currency:       settings.Currency,
	})
}
