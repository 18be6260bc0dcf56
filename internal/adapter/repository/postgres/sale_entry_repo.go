package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/tickstock/internal/domain"
	"github.com/iho/tickstock/internal/infrastructure/postgres/generated"
	"github.com/iho/tickstock/internal/usecase"
)

// SaleEntryRepository implements usecase.SaleEntryRepository.
type SaleEntryRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewSaleEntryRepository creates a new SaleEntryRepository.
func NewSaleEntryRepository(pool *pgxpool.Pool) *SaleEntryRepository {
	return &SaleEntryRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create inserts a sale entry inside the given transaction.
func (r *SaleEntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.SaleEntry) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	_, err := queries.CreateSaleEntry(ctx, generated.CreateSaleEntryParams{
		ID:          entry.ID,
		CategoryID:  entry.CategoryID,
		PartyID:     entry.PartyID,
		EntryDate:   timeToPgDate(entry.EntryDate),
		TicketCode:  stringToPgText(entry.TicketCode),
		StartNumber: entry.Range.Start.Digits,
		EndNumber:   entry.Range.End.Digits,
		Quantity:    entry.Quantity,
		Rate:        decimalToNumeric(entry.Rate),
		Amount:      decimalToNumeric(entry.Amount),
		Notes:       stringToPgText(entry.Notes),
		CreatedAt:   timeToPgTimestamptz(entry.CreatedAt),
		UpdatedAt:   timeToPgTimestamptz(entry.UpdatedAt),
	})

	return err
}

// GetByID retrieves a sale entry by ID.
func (r *SaleEntryRepository) GetByID(ctx context.Context, id string) (*domain.SaleEntry, error) {
	row, err := r.queries.GetSaleEntryByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}

		return nil, err
	}

	return rowToSaleEntry(row)
}

// ListByCategory lists every sale entry for a category in insertion order.
func (r *SaleEntryRepository) ListByCategory(ctx context.Context, categoryID string) ([]*domain.SaleEntry, error) {
	rows, err := r.queries.ListSaleEntriesByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	return rowsToSaleEntries(rows)
}

// ListByCategoryTx lists sale entries for a category inside the given
// transaction.
func (r *SaleEntryRepository) ListByCategoryTx(ctx context.Context, tx usecase.Transaction, categoryID string) ([]*domain.SaleEntry, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	rows, err := queries.ListSaleEntriesByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	return rowsToSaleEntries(rows)
}

// List lists sale entries matching the filter, newest first.
func (r *SaleEntryRepository) List(ctx context.Context, filter usecase.EntryFilter) ([]*domain.SaleEntry, error) {
	params := generated.ListSaleEntriesParams{
		CategoryID: filter.CategoryID,
		Limit:      int32(filter.Limit),
		Offset:     int32(filter.Offset),
	}
	if filter.Date != nil {
		params.EntryDate = timeToPgDate(*filter.Date)
	}

	rows, err := r.queries.ListSaleEntries(ctx, params)
	if err != nil {
		return nil, err
	}

	return rowsToSaleEntries(rows)
}

// Update rewrites a sale entry inside the given transaction.
func (r *SaleEntryRepository) Update(ctx context.Context, tx usecase.Transaction, entry *domain.SaleEntry) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	_, err := queries.UpdateSaleEntry(ctx, generated.UpdateSaleEntryParams{
		ID:          entry.ID,
		CategoryID:  entry.CategoryID,
		PartyID:     entry.PartyID,
		EntryDate:   timeToPgDate(entry.EntryDate),
		TicketCode:  stringToPgText(entry.TicketCode),
		StartNumber: entry.Range.Start.Digits,
		EndNumber:   entry.Range.End.Digits,
		Quantity:    entry.Quantity,
		Rate:        decimalToNumeric(entry.Rate),
		Amount:      decimalToNumeric(entry.Amount),
		Notes:       stringToPgText(entry.Notes),
		UpdatedAt:   timeToPgTimestamptz(entry.UpdatedAt),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrEntryNotFound
		}

		return err
	}

	return nil
}

// Delete deletes a sale entry.
func (r *SaleEntryRepository) Delete(ctx context.Context, id string) error {
	return r.queries.DeleteSaleEntry(ctx, id)
}

// TotalsByCategory aggregates sold quantity and amount per category.
func (r *SaleEntryRepository) TotalsByCategory(ctx context.Context) ([]*domain.CategoryTotals, error) {
	rows, err := r.queries.SaleTotalsByCategory(ctx)
	if err != nil {
		return nil, err
	}

	totals := make([]*domain.CategoryTotals, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, &domain.CategoryTotals{
			CategoryID:   row.CategoryID,
			CategoryName: row.CategoryName,
			Quantity:     row.Quantity,
			Amount:       numericToDecimal(row.Amount),
		})
	}

	return totals, nil
}

func rowToSaleEntry(row generated.SaleEntry) (*domain.SaleEntry, error) {
	rng, err := rowToRange(row.StartNumber, row.EndNumber)
	if err != nil {
		return nil, err
	}

	return &domain.SaleEntry{
		ID:         row.ID,
		CategoryID: row.CategoryID,
		PartyID:    row.PartyID,
		EntryDate:  row.EntryDate.Time,
		TicketCode: row.TicketCode.String,
		Range:      rng,
		Quantity:   row.Quantity,
		Rate:       numericToDecimal(row.Rate),
		Amount:     numericToDecimal(row.Amount),
		Notes:      row.Notes.String,
		CreatedAt:  row.CreatedAt.Time,
		UpdatedAt:  row.UpdatedAt.Time,
	}, nil
}

func rowsToSaleEntries(rows []generated.SaleEntry) ([]*domain.SaleEntry, error) {
	entries := make([]*domain.SaleEntry, 0, len(rows))
	for _, row := range rows {
		entry, err := rowToSaleEntry(row)
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	return entries, nil
}
