package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/tickstock/internal/domain"
	"github.com/iho/tickstock/internal/usecase"
	"github.com/iho/tickstock/internal/usecase/mocks"
)

type stockFixture struct {
	uc              *usecase.StockUseCase
	categoryRepo    *mocks.MockCategoryRepository
	distributorRepo *mocks.MockDistributorRepository
	stockRepo       *mocks.MockStockEntryRepository
	saleRepo        *mocks.MockSaleEntryRepository
}

func newStockFixture(t *testing.T) *stockFixture {
	t.Helper()

	f := &stockFixture{
		categoryRepo:    mocks.NewMockCategoryRepository(),
		distributorRepo: mocks.NewMockDistributorRepository(),
		stockRepo:       mocks.NewMockStockEntryRepository(),
		saleRepo:        mocks.NewMockSaleEntryRepository(),
	}
	f.uc = usecase.NewStockUseCase(
		mocks.NewMockTransactionManager(),
		f.categoryRepo,
		f.distributorRepo,
		f.stockRepo,
		f.saleRepo,
		mocks.NewMockIDGenerator(),
	)

	category := &domain.Category{
		ID:           "cat-1",
		Name:         "M10",
		Series:       "M",
		Denomination: 10,
		PurchaseRate: decimal.NewFromInt(8),
		SaleRate:     decimal.NewFromInt(9),
	}
	if err := f.categoryRepo.Create(context.Background(), category); err != nil {
		t.Fatalf("seed category: %v", err)
	}

	distributor := &domain.Distributor{ID: "dist-1", Name: "Kerala Agencies"}
	if err := f.distributorRepo.Create(context.Background(), distributor); err != nil {
		t.Fatalf("seed distributor: %v", err)
	}

	return f
}

func TestStockUseCase_CreateStockEntry(t *testing.T) {
	entryDate := time.Date(2026, 8, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		input        usecase.StockEntryInput
		expectError  bool
		errorType    error
		wantEnd      string
		wantQuantity int64
		wantAmount   decimal.Decimal
		wantRate     decimal.Decimal
	}{
		{
			name: "short end number inherits the start prefix",
			input: usecase.StockEntryInput{
				CategoryID:    "cat-1",
				DistributorID: "dist-1",
				EntryDate:     entryDate,
				TicketCode:    "AB12",
				StartNumber:   "000100",
				EndNumber:     "49",
				Rate:          decimal.NewFromInt(5),
			},
			wantEnd:      "000149",
			wantQuantity: 500,
			wantAmount:   decimal.NewFromInt(2500),
			wantRate:     decimal.NewFromInt(5),
		},
		{
			name: "zero rate falls back to the category purchase rate",
			input: usecase.StockEntryInput{
				CategoryID:  "cat-1",
				EntryDate:   entryDate,
				StartNumber: "200",
				EndNumber:   "299",
			},
			wantEnd:      "299",
			wantQuantity: 1000,
			wantAmount:   decimal.NewFromInt(8000),
			wantRate:     decimal.NewFromInt(8),
		},
		{
			name: "missing category",
			input: usecase.StockEntryInput{
				EntryDate:   entryDate,
				StartNumber: "100",
				EndNumber:   "200",
			},
			expectError: true,
			errorType:   domain.ErrMissingField,
		},
		{
			name: "unknown category",
			input: usecase.StockEntryInput{
				CategoryID:  "cat-missing",
				EntryDate:   entryDate,
				StartNumber: "100",
				EndNumber:   "200",
				Rate:        decimal.NewFromInt(5),
			},
			expectError: true,
			errorType:   domain.ErrCategoryNotFound,
		},
		{
			name: "unknown distributor",
			input: usecase.StockEntryInput{
				CategoryID:    "cat-1",
				DistributorID: "dist-missing",
				EntryDate:     entryDate,
				StartNumber:   "100",
				EndNumber:     "200",
				Rate:          decimal.NewFromInt(5),
			},
			expectError: true,
			errorType:   domain.ErrDistributorNotFound,
		},
		{
			name: "missing entry date",
			input: usecase.StockEntryInput{
				CategoryID:  "cat-1",
				StartNumber: "100",
				EndNumber:   "200",
			},
			expectError: true,
			errorType:   domain.ErrMissingField,
		},
		{
			name: "inverted range after prefix completion",
			input: usecase.StockEntryInput{
				CategoryID:  "cat-1",
				EntryDate:   entryDate,
				StartNumber: "000150",
				EndNumber:   "49",
			},
			expectError: true,
			errorType:   domain.ErrInvalidRange,
		},
		{
			name: "non numeric range",
			input: usecase.StockEntryInput{
				CategoryID:  "cat-1",
				EntryDate:   entryDate,
				StartNumber: "12a4",
				EndNumber:   "200",
			},
			expectError: true,
			errorType:   domain.ErrInvalidRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newStockFixture(t)
			entry, err := f.uc.CreateStockEntry(context.Background(), tt.input)

			if tt.expectError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errorType != nil && !errors.Is(err, tt.errorType) {
					t.Errorf("expected error %v, got %v", tt.errorType, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := entry.Range.NormalizedEnd(); got != tt.wantEnd {
				t.Errorf("expected normalized end %q, got %q", tt.wantEnd, got)
			}
			if entry.Quantity != tt.wantQuantity {
				t.Errorf("expected quantity %d, got %d", tt.wantQuantity, entry.Quantity)
			}
			if !entry.Amount.Equal(tt.wantAmount) {
				t.Errorf("expected amount %s, got %s", tt.wantAmount, entry.Amount)
			}
			if !entry.Rate.Equal(tt.wantRate) {
				t.Errorf("expected rate %s, got %s", tt.wantRate, entry.Rate)
			}
			if _, err := f.stockRepo.GetByID(context.Background(), entry.ID); err != nil {
				t.Errorf("expected entry persisted, got %v", err)
			}
		})
	}
}

func TestStockUseCase_UpdateStockEntry(t *testing.T) {
	f := newStockFixture(t)
	entryDate := time.Date(2026, 8, 14, 0, 0, 0, 0, time.UTC)

	created, err := f.uc.CreateStockEntry(context.Background(), usecase.StockEntryInput{
		CategoryID:  "cat-1",
		EntryDate:   entryDate,
		StartNumber: "000100",
		EndNumber:   "49",
		Rate:        decimal.NewFromInt(5),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := f.uc.UpdateStockEntry(context.Background(), created.ID, usecase.StockEntryInput{
		CategoryID:  "cat-1",
		EntryDate:   entryDate,
		StartNumber: "000100",
		EndNumber:   "99",
		Rate:        decimal.NewFromInt(6),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Quantity != 1000 {
		t.Errorf("expected quantity recomputed to 1000, got %d", updated.Quantity)
	}
	if !updated.Amount.Equal(decimal.NewFromInt(6000)) {
		t.Errorf("expected amount recomputed to 6000, got %s", updated.Amount)
	}

	_, err = f.uc.UpdateStockEntry(context.Background(), "missing", usecase.StockEntryInput{
		CategoryID:  "cat-1",
		EntryDate:   entryDate,
		StartNumber: "100",
		EndNumber:   "200",
	})
	if !errors.Is(err, domain.ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestStockUseCase_DeleteStockEntry(t *testing.T) {
	f := newStockFixture(t)

	created, err := f.uc.CreateStockEntry(context.Background(), usecase.StockEntryInput{
		CategoryID:  "cat-1",
		EntryDate:   time.Date(2026, 8, 14, 0, 0, 0, 0, time.UTC),
		StartNumber: "100",
		EndNumber:   "200",
		Rate:        decimal.NewFromInt(5),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := f.uc.DeleteStockEntry(context.Background(), created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := f.uc.GetStockEntry(context.Background(), created.ID); !errors.Is(err, domain.ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound, got %v", err)
	}

	if err := f.uc.DeleteStockEntry(context.Background(), "missing"); !errors.Is(err, domain.ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestStockUseCase_StockSummary(t *testing.T) {
	f := newStockFixture(t)

	f.stockRepo.TotalsByCategoryFunc = func(ctx context.Context) ([]*domain.CategoryTotals, error) {
		return []*domain.CategoryTotals{
			{CategoryID: "cat-1", CategoryName: "M10", Quantity: 1500, Amount: decimal.NewFromInt(12000)},
			{CategoryID: "cat-2", CategoryName: "D5", Quantity: 400, Amount: decimal.NewFromInt(1600)},
		}, nil
	}
	f.saleRepo.TotalsByCategoryFunc = func(ctx context.Context) ([]*domain.CategoryTotals, error) {
		return []*domain.CategoryTotals{
			{CategoryID: "cat-1", Quantity: 500, Amount: decimal.NewFromInt(4500)},
		}, nil
	}

	summary, err := f.uc.StockSummary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(summary) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(summary))
	}

	byCategory := make(map[string]*domain.CategoryTotals, len(summary))
	for _, s := range summary {
		byCategory[s.CategoryID] = s
	}

	sold := byCategory["cat-1"]
	if sold.Quantity != 1000 {
		t.Errorf("expected on-hand quantity 1000, got %d", sold.Quantity)
	}
	if !sold.Amount.Equal(decimal.NewFromInt(7500)) {
		t.Errorf("expected on-hand amount 7500, got %s", sold.Amount)
	}

	untouched := byCategory["cat-2"]
	if untouched.Quantity != 400 || !untouched.Amount.Equal(decimal.NewFromInt(1600)) {
		t.Errorf("expected untouched category totals, got %+v", untouched)
	}
}

func TestStockUseCase_ListStockEntries_Filter(t *testing.T) {
	f := newStockFixture(t)

	var gotFilter usecase.EntryFilter
	f.stockRepo.ListFunc = func(ctx context.Context, filter usecase.EntryFilter) ([]*domain.StockEntry, error) {
		gotFilter = filter
		return nil, nil
	}

	date := time.Date(2026, 8, 14, 0, 0, 0, 0, time.UTC)
	_, err := f.uc.ListStockEntries(context.Background(), usecase.EntryFilter{
		CategoryID: "cat-1",
		Date:       &date,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotFilter.CategoryID != "cat-1" || gotFilter.Date == nil {
		t.Errorf("expected filter to pass through, got %+v", gotFilter)
	}
	if gotFilter.Limit != 20 {
		t.Errorf("expected default limit 20, got %d", gotFilter.Limit)
	}
}
