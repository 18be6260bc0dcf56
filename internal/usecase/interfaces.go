package usecase

import (
	"context"
	"time"

	"github.com/iho/tickstock/internal/domain"
)

// CategoryRepository defines data access for ticket categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	// GetByIDForUpdate locks the category row for the duration of the
	// transaction, serializing concurrent sales of the same category.
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Category, error)
	GetByName(ctx context.Context, name string) (*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*domain.Category, error)
}

// DistributorRepository defines data access for distributors.
type DistributorRepository interface {
	Create(ctx context.Context, distributor *domain.Distributor) error
	GetByID(ctx context.Context, id string) (*domain.Distributor, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*domain.Distributor, error)
}

// PartyRepository defines data access for parties.
type PartyRepository interface {
	Create(ctx context.Context, party *domain.Party) error
	GetByID(ctx context.Context, id string) (*domain.Party, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*domain.Party, error)
}

// EntryFilter narrows entry listings.
type EntryFilter struct {
	CategoryID string
	Date       *time.Time
	Limit      int
	Offset     int
}

// StockEntryRepository defines data access for purchase batches.
type StockEntryRepository interface {
	Create(ctx context.Context, tx Transaction, entry *domain.StockEntry) error
	GetByID(ctx context.Context, id string) (*domain.StockEntry, error)
	ListByCategory(ctx context.Context, categoryID string) ([]*domain.StockEntry, error)
	ListByCategoryTx(ctx context.Context, tx Transaction, categoryID string) ([]*domain.StockEntry, error)
	List(ctx context.Context, filter EntryFilter) ([]*domain.StockEntry, error)
	Update(ctx context.Context, tx Transaction, entry *domain.StockEntry) error
	Delete(ctx context.Context, id string) error
	TotalsByCategory(ctx context.Context) ([]*domain.CategoryTotals, error)
}

// SaleEntryRepository defines data access for sale entries.
type SaleEntryRepository interface {
	Create(ctx context.Context, tx Transaction, entry *domain.SaleEntry) error
	GetByID(ctx context.Context, id string) (*domain.SaleEntry, error)
	ListByCategory(ctx context.Context, categoryID string) ([]*domain.SaleEntry, error)
	ListByCategoryTx(ctx context.Context, tx Transaction, categoryID string) ([]*domain.SaleEntry, error)
	List(ctx context.Context, filter EntryFilter) ([]*domain.SaleEntry, error)
	Update(ctx context.Context, tx Transaction, entry *domain.SaleEntry) error
	Delete(ctx context.Context, id string) error
	TotalsByCategory(ctx context.Context) ([]*domain.CategoryTotals, error)
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

// Retrier re-runs an operation on transient storage conflicts.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
