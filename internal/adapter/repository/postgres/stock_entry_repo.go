package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/tickstock/internal/domain"
	"github.com/iho/tickstock/internal/infrastructure/postgres/generated"
	"github.com/iho/tickstock/internal/usecase"
)

// StockEntryRepository implements usecase.StockEntryRepository.
type StockEntryRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewStockEntryRepository creates a new StockEntryRepository.
func NewStockEntryRepository(pool *pgxpool.Pool) *StockEntryRepository {
	return &StockEntryRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create inserts a purchase batch inside the given transaction.
func (r *StockEntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.StockEntry) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	_, err := queries.CreateStockEntry(ctx, stockEntryParams(entry))

	return err
}

// GetByID retrieves a purchase batch by ID.
func (r *StockEntryRepository) GetByID(ctx context.Context, id string) (*domain.StockEntry, error) {
	row, err := r.queries.GetStockEntryByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}

		return nil, err
	}

	return rowToStockEntry(row)
}

// ListByCategory lists every purchase batch for a category in insertion order.
func (r *StockEntryRepository) ListByCategory(ctx context.Context, categoryID string) ([]*domain.StockEntry, error) {
	rows, err := r.queries.ListStockEntriesByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	return rowsToStockEntries(rows)
}

// ListByCategoryTx lists purchase batches for a category inside the given
// transaction, so availability checks see a snapshot consistent with the
// locked category row.
func (r *StockEntryRepository) ListByCategoryTx(ctx context.Context, tx usecase.Transaction, categoryID string) ([]*domain.StockEntry, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	rows, err := queries.ListStockEntriesByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	return rowsToStockEntries(rows)
}

// List lists purchase batches matching the filter, newest first.
func (r *StockEntryRepository) List(ctx context.Context, filter usecase.EntryFilter) ([]*domain.StockEntry, error) {
	params := generated.ListStockEntriesParams{
		CategoryID: filter.CategoryID,
		Limit:      int32(filter.Limit),
		Offset:     int32(filter.Offset),
	}
	if filter.Date != nil {
		params.EntryDate = timeToPgDate(*filter.Date)
	}

	rows, err := r.queries.ListStockEntries(ctx, params)
	if err != nil {
		return nil, err
	}

	return rowsToStockEntries(rows)
}

// Update rewrites a purchase batch inside the given transaction.
func (r *StockEntryRepository) Update(ctx context.Context, tx usecase.Transaction, entry *domain.StockEntry) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	_, err := queries.UpdateStockEntry(ctx, generated.UpdateStockEntryParams{
		ID:            entry.ID,
		CategoryID:    entry.CategoryID,
		DistributorID: stringToPgText(entry.DistributorID),
		EntryDate:     timeToPgDate(entry.EntryDate),
		TicketCode:    stringToPgText(entry.TicketCode),
		StartNumber:   entry.Range.Start.Digits,
		EndNumber:     entry.Range.End.Digits,
		Quantity:      entry.Quantity,
		Rate:          decimalToNumeric(entry.Rate),
		Amount:        decimalToNumeric(entry.Amount),
		Notes:         stringToPgText(entry.Notes),
		UpdatedAt:     timeToPgTimestamptz(entry.UpdatedAt),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrEntryNotFound
		}

		return err
	}

	return nil
}

// Delete deletes a purchase batch.
func (r *StockEntryRepository) Delete(ctx context.Context, id string) error {
	return r.queries.DeleteStockEntry(ctx, id)
}

// TotalsByCategory aggregates purchased quantity and amount per category.
func (r *StockEntryRepository) TotalsByCategory(ctx context.Context) ([]*domain.CategoryTotals, error) {
	rows, err := r.queries.StockTotalsByCategory(ctx)
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

func stockEntryParams(entry *domain.StockEntry) generated.CreateStockEntryParams {
	return generated.CreateStockEntryParams{
		ID:            entry.ID,
		CategoryID:    entry.CategoryID,
		DistributorID: stringToPgText(entry.DistributorID),
		EntryDate:     timeToPgDate(entry.EntryDate),
		TicketCode:    stringToPgText(entry.TicketCode),
		StartNumber:   entry.Range.Start.Digits,
		EndNumber:     entry.Range.End.Digits,
		Quantity:      entry.Quantity,
		Rate:          decimalToNumeric(entry.Rate),
		Amount:        decimalToNumeric(entry.Amount),
		Notes:         stringToPgText(entry.Notes),
		CreatedAt:     timeToPgTimestamptz(entry.CreatedAt),
		UpdatedAt:     timeToPgTimestamptz(entry.UpdatedAt),
	}
}

func rowToStockEntry(row generated.StockEntry) (*domain.StockEntry, error) {
	rng, err := rowToRange(row.StartNumber, row.EndNumber)
	if err != nil {
		return nil, err
	}

	return &domain.StockEntry{
		ID:            row.ID,
		CategoryID:    row.CategoryID,
		DistributorID: row.DistributorID.String,
		EntryDate:     row.EntryDate.Time,
		TicketCode:    row.TicketCode.String,
		Range:         rng,
		Quantity:      row.Quantity,
		Rate:          numericToDecimal(row.Rate),
		Amount:        numericToDecimal(row.Amount),
		Notes:         row.Notes.String,
		CreatedAt:     row.CreatedAt.Time,
		UpdatedAt:     row.UpdatedAt.Time,
	}, nil
}

func rowsToStockEntries(rows []generated.StockEntry) ([]*domain.StockEntry, error) {
	entries := make([]*domain.StockEntry, 0, len(rows))
	for _, row := range rows {
		entry, err := rowToStockEntry(row)
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

// rowToRange rebuilds a ticket range from stored digit strings. The end is
// stored fully qualified, so no prefix completion happens here.
func rowToRange(startDigits, endDigits string) (domain.TicketRange, error) {
	start, err := domain.ParseTicketNumber(startDigits)
	if err != nil {
		return domain.TicketRange{}, fmt.Errorf("stored start number: %w", err)
	}

	end, err := domain.ParseTicketNumber(endDigits)
	if err != nil {
		return domain.TicketRange{}, fmt.Errorf("stored end number: %w", err)
	}

	return domain.NewTicketRange(start, end)
}
