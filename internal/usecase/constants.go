package usecase

import "time"

const (
	// DefaultTransactionTimeout caps a single ledger transaction so a
	// stuck sale check cannot hold the category lock indefinitely.
	DefaultTransactionTimeout = 10 * time.Second

	// CategoryCacheTTL is how long category lookups are cached.
	CategoryCacheTTL = 5 * time.Minute

	// IdempotencyKeyTTL is how long idempotency keys are cached.
	IdempotencyKeyTTL = 24 * time.Hour
)
