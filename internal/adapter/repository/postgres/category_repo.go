package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/tickstock/internal/domain"
	"github.com/iho/tickstock/internal/infrastructure/postgres/generated"
	"github.com/iho/tickstock/internal/usecase"
)

// CategoryRepository implements usecase.CategoryRepository.
type CategoryRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create creates a new category.
func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	_, err := r.queries.CreateCategory(ctx, generated.CreateCategoryParams{
		ID:           category.ID,
		Name:         category.Name,
		Series:       category.Series,
		Denomination: category.Denomination,
		PurchaseRate: decimalToNumeric(category.PurchaseRate),
		SaleRate:     decimalToNumeric(category.SaleRate),
		CreatedAt:    timeToPgTimestamptz(category.CreatedAt),
		UpdatedAt:    timeToPgTimestamptz(category.UpdatedAt),
	})

	return err
}

// GetByID retrieves a category by ID.
func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	row, err := r.queries.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}

		return nil, err
	}

	return rowToCategory(row), nil
}

// GetByIDForUpdate retrieves a category by ID with a FOR UPDATE lock.
func (r *CategoryRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Category, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	row, err := queries.GetCategoryByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}

		return nil, err
	}

	return rowToCategory(row), nil
}

// GetByName retrieves a category by its normalized name.
func (r *CategoryRepository) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	row, err := r.queries.GetCategoryByName(ctx, name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}

		return nil, err
	}

	return rowToCategory(row), nil
}

// Update updates a category.
func (r *CategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	_, err := r.queries.UpdateCategory(ctx, generated.UpdateCategoryParams{
		ID:           category.ID,
		Name:         category.Name,
		Series:       category.Series,
		Denomination: category.Denomination,
		PurchaseRate: decimalToNumeric(category.PurchaseRate),
		SaleRate:     decimalToNumeric(category.SaleRate),
		UpdatedAt:    timeToPgTimestamptz(category.UpdatedAt),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrCategoryNotFound
		}

		return err
	}

	return nil
}

// Delete deletes a category.
func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	return r.queries.DeleteCategory(ctx, id)
}

// List lists categories with pagination.
func (r *CategoryRepository) List(ctx context.Context, limit, offset int) ([]*domain.Category, error) {
	rows, err := r.queries.ListCategories(ctx, generated.ListCategoriesParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, err
	}

	categories := make([]*domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, rowToCategory(row))
	}

	return categories, nil
}

func rowToCategory(row generated.Category) *domain.Category {
	return &domain.Category{
		ID:           row.ID,
		Name:         row.Name,
		Series:       row.Series,
		Denomination: row.Denomination,
		PurchaseRate: numericToDecimal(row.PurchaseRate),
		SaleRate:     numericToDecimal(row.SaleRate),
		CreatedAt:    row.CreatedAt.Time,
		UpdatedAt:    row.UpdatedAt.Time,
	}
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func timeToPgDate(t time.Time) pgtype.Date {
	if t.IsZero() {
		return pgtype.Date{}
	}

	return pgtype.Date{Time: t, Valid: true}
}

func stringToPgText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}

	return pgtype.Text{String: s, Valid: true}
}
