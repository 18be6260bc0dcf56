package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/tickstock/internal/domain"
)

// StockUseCase handles purchase batch entries.
type StockUseCase struct {
	txManager       TransactionManager
	categoryRepo    CategoryRepository
	distributorRepo DistributorRepository
	stockRepo       StockEntryRepository
	saleRepo        SaleEntryRepository
	idGen           IDGenerator
}

// NewStockUseCase creates a new StockUseCase.
func NewStockUseCase(
	txManager TransactionManager,
	categoryRepo CategoryRepository,
	distributorRepo DistributorRepository,
	stockRepo StockEntryRepository,
	saleRepo SaleEntryRepository,
	idGen IDGenerator,
) *StockUseCase {
	return &StockUseCase{
		txManager:       txManager,
		categoryRepo:    categoryRepo,
		distributorRepo: distributorRepo,
		stockRepo:       stockRepo,
		saleRepo:        saleRepo,
		idGen:           idGen,
	}
}

// StockEntryInput represents input for creating or updating a stock
// entry. A zero Rate falls back to the category purchase rate.
type StockEntryInput struct {
	CategoryID    string
	DistributorID string
	EntryDate     time.Time
	TicketCode    string
	StartNumber   string
	EndNumber     string
	Rate          decimal.Decimal
	Notes         string
}

func (in *StockEntryInput) validate() (domain.TicketRange, error) {
	if in.CategoryID == "" {
		return domain.TicketRange{}, fmt.Errorf("%w: category", domain.ErrMissingField)
	}

	if err := domain.ValidateEntryDate(in.EntryDate); err != nil {
		return domain.TicketRange{}, err
	}

	if err := domain.ValidateTicketCode(in.TicketCode); err != nil {
		return domain.TicketRange{}, err
	}

	if err := domain.ValidateNotes(in.Notes); err != nil {
		return domain.TicketRange{}, err
	}

	return domain.ResolveRange(in.StartNumber, in.EndNumber)
}

// CreateStockEntry records a purchase batch. Quantity and amount are
// always recomputed here from the resolved range, the category
// denomination and the rate; a client-side preview is never trusted.
func (uc *StockUseCase) CreateStockEntry(ctx context.Context, input StockEntryInput) (*domain.StockEntry, error) {
	ticketRange, err := input.validate()
	if err != nil {
		return nil, err
	}

	category, err := uc.categoryRepo.GetByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}

	if input.DistributorID != "" {
		if _, err := uc.distributorRepo.GetByID(ctx, input.DistributorID); err != nil {
			return nil, err
		}
	}

	rate := input.Rate
	if rate.IsZero() {
		rate = category.PurchaseRate
	}
	if err := domain.ValidateEntryRate(rate); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry := &domain.StockEntry{
		ID:            uc.idGen.Generate(),
		CategoryID:    category.ID,
		DistributorID: input.DistributorID,
		EntryDate:     input.EntryDate,
		TicketCode:    input.TicketCode,
		Range:         ticketRange,
		Rate:          rate,
		Notes:         input.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	entry.Recompute(category.Denomination)

	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(txCtx)

	if err := uc.stockRepo.Create(txCtx, tx, entry); err != nil {
		return nil, err
	}

	if err := tx.Commit(txCtx); err != nil {
		return nil, err
	}

	return entry, nil
}

// UpdateStockEntry rewrites a batch, recomputing quantity and amount
// from the submitted range.
func (uc *StockUseCase) UpdateStockEntry(ctx context.Context, id string, input StockEntryInput) (*domain.StockEntry, error) {
	entry, err := uc.stockRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ticketRange, err := input.validate()
	if err != nil {
		return nil, err
	}

	category, err := uc.categoryRepo.GetByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}

	if input.DistributorID != "" {
		if _, err := uc.distributorRepo.GetByID(ctx, input.DistributorID); err != nil {
			return nil, err
		}
	}

	rate := input.Rate
	if rate.IsZero() {
		rate = category.PurchaseRate
	}
	if err := domain.ValidateEntryRate(rate); err != nil {
		return nil, err
	}

	entry.CategoryID = category.ID
	entry.DistributorID = input.DistributorID
	entry.EntryDate = input.EntryDate
	entry.TicketCode = input.TicketCode
	entry.Range = ticketRange
	entry.Rate = rate
	entry.Notes = input.Notes
	entry.UpdatedAt = time.Now().UTC()
	entry.Recompute(category.Denomination)

	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(txCtx)

	if err := uc.stockRepo.Update(txCtx, tx, entry); err != nil {
		return nil, err
	}

	if err := tx.Commit(txCtx); err != nil {
		return nil, err
	}

	return entry, nil
}

// DeleteStockEntry removes a batch. Deletion is unconditional: sale
// availability is recomputed from history, never from a cached balance,
// so there is no dependent-row check.
func (uc *StockUseCase) DeleteStockEntry(ctx context.Context, id string) error {
	if _, err := uc.stockRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return uc.stockRepo.Delete(ctx, id)
}

// GetStockEntry retrieves a batch by ID.
func (uc *StockUseCase) GetStockEntry(ctx context.Context, id string) (*domain.StockEntry, error) {
	return uc.stockRepo.GetByID(ctx, id)
}

// ListStockEntries lists batches, optionally filtered by category and
// entry date.
func (uc *StockUseCase) ListStockEntries(ctx context.Context, filter EntryFilter) ([]*domain.StockEntry, error) {
	filter.Limit = clampLimit(filter.Limit)

	return uc.stockRepo.List(ctx, filter)
}

// StockSummary reports per-category on-hand stock: purchased totals
// minus sold totals, recomputed from the ledger on every call.
func (uc *StockUseCase) StockSummary(ctx context.Context) ([]*domain.CategoryTotals, error) {
	purchased, err := uc.stockRepo.TotalsByCategory(ctx)
	if err != nil {
		return nil, err
	}

	sold, err := uc.saleRepo.TotalsByCategory(ctx)
	if err != nil {
		return nil, err
	}

	soldByCategory := make(map[string]*domain.CategoryTotals, len(sold))
	for _, s := range sold {
		soldByCategory[s.CategoryID] = s
	}

	summary := make([]*domain.CategoryTotals, 0, len(purchased))
	for _, p := range purchased {
		onHand := &domain.CategoryTotals{
			CategoryID:   p.CategoryID,
			CategoryName: p.CategoryName,
			Quantity:     p.Quantity,
			Amount:       p.Amount,
		}

		if s, ok := soldByCategory[p.CategoryID]; ok {
			onHand.Quantity -= s.Quantity
			onHand.Amount = onHand.Amount.Sub(s.Amount)
		}

		summary = append(summary, onHand)
	}

	return summary, nil
}
