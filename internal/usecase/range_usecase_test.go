package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/tickstock/internal/domain"
	"github.com/iho/tickstock/internal/usecase"
	"github.com/iho/tickstock/internal/usecase/mocks"
)

func TestRangeUseCase_ResolveRange(t *testing.T) {
	tests := []struct {
		name        string
		start       string
		end         string
		expectError bool
		wantStart   int64
		wantEnd     int64
		wantDigits  string
		wantCount   int64
	}{
		{
			name:       "short end inherits start prefix",
			start:      "100045",
			end:        "52",
			wantStart:  100045,
			wantEnd:    100052,
			wantDigits: "100052",
			wantCount:  8,
		},
		{
			name:       "full end is taken verbatim",
			start:      "100045",
			end:        "100145",
			wantStart:  100045,
			wantEnd:    100145,
			wantDigits: "100145",
			wantCount:  101,
		},
		{
			name:       "leading zeros survive completion",
			start:      "000100",
			end:        "49",
			wantStart:  100,
			wantEnd:    149,
			wantDigits: "000149",
			wantCount:  50,
		},
		{
			name:       "single ticket",
			start:      "500",
			end:        "500",
			wantStart:  500,
			wantEnd:    500,
			wantDigits: "500",
			wantCount:  1,
		},
		{
			name:        "completed end below start",
			start:       "000150",
			end:         "49",
			expectError: true,
		},
		{
			name:        "empty start",
			start:       "",
			end:         "49",
			expectError: true,
		},
		{
			name:        "empty end",
			start:       "100",
			end:         "",
			expectError: true,
		},
		{
			name:        "non numeric",
			start:       "10a5",
			end:         "52",
			expectError: true,
		},
	}

	uc := usecase.NewRangeUseCase(mocks.NewMockCategoryRepository())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, err := uc.ResolveRange(context.Background(), tt.start, tt.end)

			if tt.expectError {
				if !errors.Is(err, domain.ErrInvalidRange) {
					t.Errorf("expected ErrInvalidRange, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resolved.StartValue != tt.wantStart {
				t.Errorf("expected start %d, got %d", tt.wantStart, resolved.StartValue)
			}
			if resolved.EndValue != tt.wantEnd {
				t.Errorf("expected end %d, got %d", tt.wantEnd, resolved.EndValue)
			}
			if resolved.NormalizedEnd != tt.wantDigits {
				t.Errorf("expected normalized end %q, got %q", tt.wantDigits, resolved.NormalizedEnd)
			}
			if resolved.TicketCount != tt.wantCount {
				t.Errorf("expected count %d, got %d", tt.wantCount, resolved.TicketCount)
			}
		})
	}
}

func TestRangeUseCase_PreviewQuantityAndAmount(t *testing.T) {
	categoryRepo := mocks.NewMockCategoryRepository()
	if err := categoryRepo.Create(context.Background(), &domain.Category{
		ID:           "cat-1",
		Name:         "M25",
		Series:       "M",
		Denomination: 25,
	}); err != nil {
		t.Fatalf("seed category: %v", err)
	}

	uc := usecase.NewRangeUseCase(categoryRepo)

	tests := []struct {
		name         string
		input        usecase.PreviewInput
		wantQuantity int64
		wantAmount   decimal.Decimal
	}{
		{
			name: "known category uses its denomination",
			input: usecase.PreviewInput{
				StartNumber: "100",
				EndNumber:   "149",
				CategoryID:  "cat-1",
				Rate:        decimal.NewFromInt(2),
			},
			wantQuantity: 1250,
			wantAmount:   decimal.NewFromInt(2500),
		},
		{
			name: "no category defaults to denomination 1",
			input: usecase.PreviewInput{
				StartNumber: "100",
				EndNumber:   "149",
				Rate:        decimal.NewFromInt(2),
			},
			wantQuantity: 50,
			wantAmount:   decimal.NewFromInt(100),
		},
		{
			name: "unknown category defaults to denomination 1",
			input: usecase.PreviewInput{
				StartNumber: "100",
				EndNumber:   "149",
				CategoryID:  "cat-missing",
			},
			wantQuantity: 50,
			wantAmount:   decimal.Zero,
		},
		{
			name: "malformed input previews as zero",
			input: usecase.PreviewInput{
				StartNumber: "1x0",
				EndNumber:   "149",
				CategoryID:  "cat-1",
				Rate:        decimal.NewFromInt(2),
			},
			wantQuantity: 0,
			wantAmount:   decimal.Zero,
		},
		{
			name: "inverted range previews as zero",
			input: usecase.PreviewInput{
				StartNumber: "200",
				EndNumber:   "100",
				CategoryID:  "cat-1",
			},
			wantQuantity: 0,
			wantAmount:   decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preview := uc.PreviewQuantityAndAmount(context.Background(), tt.input)

			if preview.Quantity != tt.wantQuantity {
				t.Errorf("expected quantity %d, got %d", tt.wantQuantity, preview.Quantity)
			}
			if !preview.Amount.Equal(tt.wantAmount) {
				t.Errorf("expected amount %s, got %s", tt.wantAmount, preview.Amount)
			}
		})
	}
}
