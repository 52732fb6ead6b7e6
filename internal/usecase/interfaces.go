package usecase

import (
	"context"
	"time"

	"github.com/iho/cashflow/internal/domain"
)

// LedgerReader supplies the read-only inputs of the dashboard computation.
type LedgerReader interface {
	// FetchYear returns every actual and budget entry of year with the
	// category type resolved.
	FetchYear(ctx context.Context, year int) (*domain.YearLedger, error)
	FetchCategories(ctx context.Context, activeOnly bool) ([]*domain.Category, error)
	// FetchSettings returns the stored settings, or defaults when none exist.
	FetchSettings(ctx context.Context) (*domain.Settings, error)
}

// SnapshotReader is a LedgerReader that can pin a group of reads to one
// consistent view of the data. The reader passed to fn is not safe for
// concurrent use.
type SnapshotReader interface {
	LedgerReader
	Snapshot(ctx context.Context, fn func(ctx context.Context, reader LedgerReader) error) error
}

// CategoryRepository defines data access for categories.
type CategoryRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*domain.Category, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Category, error)
}

// EntryRepository defines data access for actual and budget entries.
type EntryRepository interface {
	ListYear(ctx context.Context, kind domain.EntryKind, year int) ([]domain.Entry, error)
	ListMonth(ctx context.Context, kind domain.EntryKind, year, month int) ([]domain.Entry, error)
	Upsert(ctx context.Context, tx Transaction, kind domain.EntryKind, entry domain.Entry) error
	Delete(ctx context.Context, tx Transaction, kind domain.EntryKind, year, month int, categoryID int64) error
	DeleteMonth(ctx context.Context, tx Transaction, kind domain.EntryKind, year, month int) (int64, error)
}

// SettingsRepository defines data access for the settings singleton.
type SettingsRepository interface {
	// Get returns domain.ErrSettingsNotFound when no row exists.
	Get(ctx context.Context) (*domain.Settings, error)
	Save(ctx context.Context, settings *domain.Settings) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier re-runs an operation on transient storage errors.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// DashboardObserver records dashboard computations.
type DashboardObserver interface {
	ObserveDashboard(view domain.ViewMode, duration time.Duration, err error)
}

// EntryObserver records entry management operations.
type EntryObserver interface {
	ObserveEntryWrite(operation string, err error)
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
	// Release drops a key so the request can be retried.
	Release(ctx context.Context, key string) error
}
