package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/iho/tickstock/internal/domain"
)

// RangeUseCase exposes the stateless range operations the UI calls while
// an operator is typing.
type RangeUseCase struct {
	categoryRepo CategoryRepository
}

// NewRangeUseCase creates a new RangeUseCase.
func NewRangeUseCase(categoryRepo CategoryRepository) *RangeUseCase {
	return &RangeUseCase{categoryRepo: categoryRepo}
}

// ResolvedRange is the outcome of interpreting a start/end pair.
type ResolvedRange struct {
	StartValue    int64
	EndValue      int64
	NormalizedEnd string
	TicketCount   int64
}

// ResolveRange interprets a start/end digit pair, applying the
// prefix-completion shorthand.
func (uc *RangeUseCase) ResolveRange(ctx context.Context, startDigits, endDigits string) (*ResolvedRange, error) {
	r, err := domain.ResolveRange(startDigits, endDigits)
	if err != nil {
		return nil, err
	}

	return &ResolvedRange{
		StartValue:    r.Start.Value,
		EndValue:      r.End.Value,
		NormalizedEnd: r.NormalizedEnd(),
		TicketCount:   r.Count(),
	}, nil
}

// PreviewInput represents input for a live quantity/amount preview.
// Category and rate are optional while the operator is still typing.
type PreviewInput struct {
	StartNumber string
	EndNumber   string
	CategoryID  string
	Rate        decimal.Decimal
}

// Preview is the clamped quantity and amount shown next to the form.
type Preview struct {
	Quantity int64
	Amount   decimal.Decimal
}

// PreviewQuantityAndAmount computes the live preview. It never fails:
// partial or invalid input, including an unknown category, yields a zero
// preview rather than an error.
func (uc *RangeUseCase) PreviewQuantityAndAmount(ctx context.Context, input PreviewInput) *Preview {
	denomination := int64(1)

	if input.CategoryID != "" {
		if category, err := uc.categoryRepo.GetByID(ctx, input.CategoryID); err == nil {
			denomination = category.Denomination
		}
	}

	quantity := domain.PreviewQuantity(input.StartNumber, input.EndNumber, denomination)

	return &Preview{
		Quantity: quantity,
		Amount:   domain.StockAmount(quantity, input.Rate),
	}
}
