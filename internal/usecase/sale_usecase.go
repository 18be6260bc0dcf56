package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/tickstock/internal/domain"
	"github.com/iho/tickstock/internal/infrastructure/metrics"
)

// SaleUseCase handles sale entries and stock availability checks.
type SaleUseCase struct {
	txManager    TransactionManager
	retrier      Retrier
	categoryRepo CategoryRepository
	partyRepo    PartyRepository
	stockRepo    StockEntryRepository
	saleRepo     SaleEntryRepository
	idGen        IDGenerator
	metrics      *metrics.Metrics
}

// NewSaleUseCase creates a new SaleUseCase. metrics may be nil.
func NewSaleUseCase(
	txManager TransactionManager,
	retrier Retrier,
	categoryRepo CategoryRepository,
	partyRepo PartyRepository,
	stockRepo StockEntryRepository,
	saleRepo SaleEntryRepository,
	idGen IDGenerator,
	metrics *metrics.Metrics,
) *SaleUseCase {
	return &SaleUseCase{
		txManager:    txManager,
		retrier:      retrier,
		categoryRepo: categoryRepo,
		partyRepo:    partyRepo,
		stockRepo:    stockRepo,
		saleRepo:     saleRepo,
		idGen:        idGen,
		metrics:      metrics,
	}
}

// SaleEntryInput represents input for creating or updating a sale entry.
// TicketCode is optional: it is auto-detected from stock when the range
// maps to exactly one batch, and mandatory when the match is ambiguous.
// A zero Rate falls back to the category sale rate.
type SaleEntryInput struct {
	CategoryID  string
	PartyID     string
	EntryDate   time.Time
	TicketCode  string
	StartNumber string
	EndNumber   string
	Rate        decimal.Decimal
	Notes       string
}

func (in *SaleEntryInput) validate() (domain.TicketRange, error) {
	if in.CategoryID == "" {
		return domain.TicketRange{}, fmt.Errorf("%w: category", domain.ErrMissingField)
	}

	if in.PartyID == "" {
		return domain.TicketRange{}, fmt.Errorf("%w: party", domain.ErrMissingField)
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

// CreateSaleEntry records a sale after matching its range against the
// remaining stock of the category. The whole check-and-insert runs in
// one transaction holding the category row lock, so two concurrent sales
// of the same category cannot both observe the same unsold range; the
// retrier re-runs the transaction on serialization conflicts.
func (uc *SaleUseCase) CreateSaleEntry(ctx context.Context, input SaleEntryInput) (*domain.SaleEntry, error) {
	ticketRange, err := input.validate()
	if err != nil {
		return nil, err
	}

	if _, err := uc.partyRepo.GetByID(ctx, input.PartyID); err != nil {
		return nil, err
	}

	var entry *domain.SaleEntry

	err = uc.retrier.Retry(ctx, func() error {
		created, err := uc.createInTx(ctx, input, ticketRange)
		if err != nil {
			return err
		}

		entry = created

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.countEntryCreated("sale")

	return entry, nil
}

func (uc *SaleUseCase) createInTx(ctx context.Context, input SaleEntryInput, ticketRange domain.TicketRange) (*domain.SaleEntry, error) {
	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(txCtx)

	category, err := uc.categoryRepo.GetByIDForUpdate(txCtx, tx, input.CategoryID)
	if err != nil {
		return nil, err
	}

	match, err := uc.matchInTx(txCtx, tx, category.ID, ticketRange, input.TicketCode, "")
	if err != nil {
		return nil, err
	}

	if match.Kind != domain.MatchSingle {
		return nil, &domain.AvailabilityError{Kind: match.Kind, Candidates: match.Candidates}
	}

	rate := input.Rate
	if rate.IsZero() {
		rate = category.SaleRate
	}
	if err := domain.ValidateEntryRate(rate); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry := &domain.SaleEntry{
		ID:         uc.idGen.Generate(),
		CategoryID: category.ID,
		PartyID:    input.PartyID,
		EntryDate:  input.EntryDate,
		TicketCode: match.Batch.TicketCode,
		Range:      ticketRange,
		Rate:       rate,
		Notes:      input.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	entry.Recompute(category.Denomination)

	if err := uc.saleRepo.Create(txCtx, tx, entry); err != nil {
		return nil, err
	}

	if err := tx.Commit(txCtx); err != nil {
		return nil, err
	}

	return entry, nil
}

// UpdateSaleEntry rewrites a sale. The availability match is re-run with
// the edited entry excluded from the prior-sales history, so shrinking,
// moving or re-categorizing a sale is validated against what would remain
// if this sale had never happened.
func (uc *SaleUseCase) UpdateSaleEntry(ctx context.Context, id string, input SaleEntryInput) (*domain.SaleEntry, error) {
	entry, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ticketRange, err := input.validate()
	if err != nil {
		return nil, err
	}

	if _, err := uc.partyRepo.GetByID(ctx, input.PartyID); err != nil {
		return nil, err
	}

	err = uc.retrier.Retry(ctx, func() error {
		return uc.updateInTx(ctx, entry, input, ticketRange)
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func (uc *SaleUseCase) updateInTx(ctx context.Context, entry *domain.SaleEntry, input SaleEntryInput, ticketRange domain.TicketRange) error {
	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return err
	}
	defer tx.Rollback(txCtx)

	category, err := uc.categoryRepo.GetByIDForUpdate(txCtx, tx, input.CategoryID)
	if err != nil {
		return err
	}

	match, err := uc.matchInTx(txCtx, tx, category.ID, ticketRange, input.TicketCode, entry.ID)
	if err != nil {
		return err
	}

	if match.Kind != domain.MatchSingle {
		return &domain.AvailabilityError{Kind: match.Kind, Candidates: match.Candidates}
	}

	rate := input.Rate
	if rate.IsZero() {
		rate = category.SaleRate
	}
	if err := domain.ValidateEntryRate(rate); err != nil {
		return err
	}

	entry.CategoryID = category.ID
	entry.PartyID = input.PartyID
	entry.EntryDate = input.EntryDate
	entry.TicketCode = match.Batch.TicketCode
	entry.Range = ticketRange
	entry.Rate = rate
	entry.Notes = input.Notes
	entry.UpdatedAt = time.Now().UTC()
	entry.Recompute(category.Denomination)

	if err := uc.saleRepo.Update(txCtx, tx, entry); err != nil {
		return err
	}

	return tx.Commit(txCtx)
}

// matchInTx loads the category's stock and sale history inside the
// transaction and classifies the requested range. excludeID drops the
// entry being edited from the history.
func (uc *SaleUseCase) matchInTx(ctx context.Context, tx Transaction, categoryID string, requested domain.TicketRange, ticketCode, excludeID string) (domain.Match, error) {
	batches, err := uc.stockRepo.ListByCategoryTx(ctx, tx, categoryID)
	if err != nil {
		return domain.Match{}, err
	}

	sales, err := uc.saleRepo.ListByCategoryTx(ctx, tx, categoryID)
	if err != nil {
		return domain.Match{}, err
	}

	if excludeID != "" {
		kept := sales[:0]
		for _, s := range sales {
			if s.ID != excludeID {
				kept = append(kept, s)
			}
		}
		sales = kept
	}

	match := domain.MatchAvailability(batches, sales, requested, ticketCode)
	uc.observeMatch(match.Kind)

	return match, nil
}

// DeleteSaleEntry removes a sale. The sold range returns to the batch's
// computed availability immediately, since availability is derived from
// the surviving history.
func (uc *SaleUseCase) DeleteSaleEntry(ctx context.Context, id string) error {
	if _, err := uc.saleRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return uc.saleRepo.Delete(ctx, id)
}

// GetSaleEntry retrieves a sale by ID.
func (uc *SaleUseCase) GetSaleEntry(ctx context.Context, id string) (*domain.SaleEntry, error) {
	return uc.saleRepo.GetByID(ctx, id)
}

// ListSaleEntries lists sales, optionally filtered by category and date.
func (uc *SaleUseCase) ListSaleEntries(ctx context.Context, filter EntryFilter) ([]*domain.SaleEntry, error) {
	filter.Limit = clampLimit(filter.Limit)

	return uc.saleRepo.List(ctx, filter)
}

// CheckStockInput represents input for a read-only availability probe.
type CheckStockInput struct {
	CategoryID  string
	StartNumber string
	EndNumber   string
	TicketCode  string
}

// CheckStockResult is what the probe reports back to the caller.
type CheckStockResult struct {
	Available bool
	Multiple  bool
	Matches   []domain.BatchCandidate
	AutoCode  string
}

// CheckStockRange probes availability without writing anything. The UI
// calls it before submission to auto-fill the ticket code or to ask the
// operator to disambiguate.
func (uc *SaleUseCase) CheckStockRange(ctx context.Context, input CheckStockInput) (*CheckStockResult, error) {
	if input.CategoryID == "" {
		return nil, fmt.Errorf("%w: category", domain.ErrMissingField)
	}

	requested, err := domain.ResolveRange(input.StartNumber, input.EndNumber)
	if err != nil {
		return nil, err
	}

	batches, err := uc.stockRepo.ListByCategory(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}

	sales, err := uc.saleRepo.ListByCategory(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}

	match := domain.MatchAvailability(batches, sales, requested, input.TicketCode)
	uc.observeMatch(match.Kind)

	result := &CheckStockResult{Matches: match.Candidates}

	switch match.Kind {
	case domain.MatchSingle:
		result.Available = true
		result.AutoCode = match.Batch.TicketCode
	case domain.MatchAmbiguous:
		result.Available = true
		result.Multiple = true
	}

	return result, nil
}

func (uc *SaleUseCase) observeMatch(kind domain.MatchKind) {
	if uc.metrics != nil {
		uc.metrics.AvailabilityChecks.WithLabelValues(kind.String()).Inc()
	}
}

func (uc *SaleUseCase) countEntryCreated(kind string) {
	if uc.metrics != nil {
		uc.metrics.EntriesCreated.WithLabelValues(kind).Inc()
	}
}
