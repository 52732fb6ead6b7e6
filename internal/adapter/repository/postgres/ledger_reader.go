package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/iho/cashflow/internal/domain"
	"github.com/iho/cashflow/internal/usecase"
)

// QueryObserver records the outcome of ledger reads.
type QueryObserver interface {
	ObserveQuery(operation, table string, duration time.Duration, err error)
}

type txBeginner interface {
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
}

var snapshotTxOptions = pgx.TxOptions{
	IsoLevel:   pgx.RepeatableRead,
	AccessMode: pgx.ReadOnly,
}

// LedgerReader implements usecase.LedgerReader. Every read is retried on
// transient PostgreSQL errors.
type LedgerReader struct {
	db              txBeginner
	entries         usecase.EntryRepository
	categories      usecase.CategoryRepository
	settings        usecase.SettingsRepository
	retrier         usecase.Retrier
	observer        QueryObserver
	defaultCurrency string
}

// NewLedgerReader creates a new LedgerReader. observer may be nil.
func NewLedgerReader(
	entries usecase.EntryRepository,
	categories usecase.CategoryRepository,
	settings usecase.SettingsRepository,
	retrier usecase.Retrier,
	observer QueryObserver,
	defaultCurrency string,
) *LedgerReader {
	if defaultCurrency == "" {
		defaultCurrency = domain.DefaultCurrency
	}
	return &LedgerReader{
		entries:         entries,
		categories:      categories,
		settings:        settings,
		retrier:         retrier,
		observer:        observer,
		defaultCurrency: defaultCurrency,
	}
}

// WithSnapshots lets Snapshot pin its reads to one transaction on db.
func (r *LedgerReader) WithSnapshots(db txBeginner) *LedgerReader {
	r.db = db
	return r
}

// Snapshot runs fn with a reader whose queries all execute in one
// REPEATABLE READ, read-only transaction, so they observe the same committed
// state. A transient failure reruns the whole snapshot. Without WithSnapshots
// fn receives r itself.
func (r *LedgerReader) Snapshot(ctx context.Context, fn func(ctx context.Context, reader usecase.LedgerReader) error) error {
	if r.db == nil {
		return fn(ctx, r)
	}

	return r.retrier.Retry(ctx, func() error {
		tx, err := r.db.BeginTx(ctx, snapshotTxOptions)
		if err != nil {
			return fmt.Errorf("begin snapshot: %w", err)
		}

		snapshot := &LedgerReader{
			entries:         NewEntryRepository(tx),
			categories:      NewCategoryRepository(tx),
			settings:        NewSettingsRepository(tx),
			retrier:         singleAttempt{},
			observer:        r.observer,
			defaultCurrency: r.defaultCurrency,
		}

		if err := fn(ctx, snapshot); err != nil {
			_ = tx.Rollback(ctx)
			return err
		}
		return tx.Commit(ctx)
	})
}

// singleAttempt runs an operation once. Statements inside an aborted
// transaction cannot be retried on their own.
type singleAttempt struct{}

func (singleAttempt) Retry(_ context.Context, operation func() error) error {
	return operation()
}

// FetchYear returns the actual and budget entries of year.
func (r *LedgerReader) FetchYear(ctx context.Context, year int) (*domain.YearLedger, error) {
	ledger := &domain.YearLedger{Year: year}

	err := r.read(ctx, "monthly_entries", func() (err error) {
		ledger.Actuals, err = r.entries.ListYear(ctx, domain.EntryKindActual, year)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list actuals: %w", err)
	}

	err = r.read(ctx, "budget_entries", func() (err error) {
		ledger.Budgets, err = r.entries.ListYear(ctx, domain.EntryKindBudget, year)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}

	return ledger, nil
}

// FetchCategories returns categories in display order.
func (r *LedgerReader) FetchCategories(ctx context.Context, activeOnly bool) ([]*domain.Category, error) {
	var categories []*domain.Category

	err := r.read(ctx, "categories", func() (err error) {
		categories, err = r.categories.List(ctx, activeOnly)
		return err
	})
	if err != nil {
		return nil, err
	}

	return categories, nil
}

// FetchSettings returns the stored settings or the defaults.
func (r *LedgerReader) FetchSettings(ctx context.Context) (*domain.Settings, error) {
	var settings *domain.Settings

	err := r.read(ctx, "settings", func() (err error) {
		settings, err = r.settings.Get(ctx)
		if errors.Is(err, domain.ErrSettingsNotFound) {
			defaults := domain.DefaultSettings()
			defaults.Currency = r.defaultCurrency
			settings = &defaults
			return nil
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	return settings, nil
}

func (r *LedgerReader) read(ctx context.Context, table string, op func() error) error {
	start := time.Now()

	err := r.retrier.Retry(ctx, op)

	if r.observer != nil {
		r.observer.ObserveQuery("select", table, time.Since(start), err)
	}

	return err
}
