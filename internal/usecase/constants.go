package usecase

import "time"

const (
	// DefaultTransactionTimeout is the maximum duration for a database transaction.
	DefaultTransactionTimeout = 10 * time.Second

	// DefaultReadTimeout bounds the concurrent dashboard reads.
	DefaultReadTimeout = 15 * time.Second

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour

	// MaxEntriesPerSave caps the items of one SaveMonth call.
	MaxEntriesPerSave = 500
)
