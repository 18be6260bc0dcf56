package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/tickstock/internal/usecase"
)

// EntryDateFormat is the wire format for entry dates.
const EntryDateFormat = "2006-01-02"

// CreateCategoryRequest represents a request to create a category.
type CreateCategoryRequest struct {
	Name         string          `json:"name"`
	PurchaseRate decimal.Decimal `json:"purchase_rate"`
	SaleRate     decimal.Decimal `json:"sale_rate"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateCategoryRequest) ToUseCaseInput() usecase.CreateCategoryInput {
	return usecase.CreateCategoryInput{
		Name:         r.Name,
		PurchaseRate: r.PurchaseRate,
		SaleRate:     r.SaleRate,
	}
}

// UpdateCategoryRequest represents a request to update a category.
type UpdateCategoryRequest struct {
	Name         string          `json:"name"`
	PurchaseRate decimal.Decimal `json:"purchase_rate"`
	SaleRate     decimal.Decimal `json:"sale_rate"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateCategoryRequest) ToUseCaseInput(id string) usecase.UpdateCategoryInput {
	return usecase.UpdateCategoryInput{
		ID:           id,
		Name:         r.Name,
		PurchaseRate: r.PurchaseRate,
		SaleRate:     r.SaleRate,
	}
}

// CreateCounterpartyRequest represents a request to create a distributor
// or a party.
type CreateCounterpartyRequest struct {
	Name string `json:"name"`
}

// ResolveRangeRequest represents a request to resolve a ticket range.
type ResolveRangeRequest struct {
	StartNumber string `json:"start_number"`
	EndNumber   string `json:"end_number"`
}

// PreviewRequest represents a request for a live quantity/amount preview.
type PreviewRequest struct {
	StartNumber string          `json:"start_number"`
	EndNumber   string          `json:"end_number"`
	CategoryID  string          `json:"category_id,omitempty"`
	Rate        decimal.Decimal `json:"rate"`
}

// ToUseCaseInput converts to use case input.
func (r *PreviewRequest) ToUseCaseInput() usecase.PreviewInput {
	return usecase.PreviewInput{
		StartNumber: r.StartNumber,
		EndNumber:   r.EndNumber,
		CategoryID:  r.CategoryID,
		Rate:        r.Rate,
	}
}

// CheckStockRequest represents a request to probe stock availability.
type CheckStockRequest struct {
	CategoryID  string `json:"category_id"`
	StartNumber string `json:"start_number"`
	EndNumber   string `json:"end_number"`
	TicketCode  string `json:"ticket_code,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CheckStockRequest) ToUseCaseInput() usecase.CheckStockInput {
	return usecase.CheckStockInput{
		CategoryID:  r.CategoryID,
		StartNumber: r.StartNumber,
		EndNumber:   r.EndNumber,
		TicketCode:  r.TicketCode,
	}
}

// StockEntryRequest represents a request to create or update a stock
// entry.
type StockEntryRequest struct {
	CategoryID    string          `json:"category_id"`
	DistributorID string          `json:"distributor_id,omitempty"`
	EntryDate     string          `json:"entry_date"`
	TicketCode    string          `json:"ticket_code,omitempty"`
	StartNumber   string          `json:"start_number"`
	EndNumber     string          `json:"end_number"`
	Rate          decimal.Decimal `json:"rate"`
	Notes         string          `json:"notes,omitempty"`
}

// ToUseCaseInput converts to use case input. An unparseable date stays
// zero and is rejected downstream as a missing field.
func (r *StockEntryRequest) ToUseCaseInput() usecase.StockEntryInput {
	return usecase.StockEntryInput{
		CategoryID:    r.CategoryID,
		DistributorID: r.DistributorID,
		EntryDate:     parseEntryDate(r.EntryDate),
		TicketCode:    r.TicketCode,
		StartNumber:   r.StartNumber,
		EndNumber:     r.EndNumber,
		Rate:          r.Rate,
		Notes:         r.Notes,
	}
}

// SaleEntryRequest represents a request to create or update a sale entry.
type SaleEntryRequest struct {
	CategoryID  string          `json:"category_id"`
	PartyID     string          `json:"party_id"`
	EntryDate   string          `json:"entry_date"`
	TicketCode  string          `json:"ticket_code,omitempty"`
	StartNumber string          `json:"start_number"`
	EndNumber   string          `json:"end_number"`
	Rate        decimal.Decimal `json:"rate"`
	Notes       string          `json:"notes,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *SaleEntryRequest) ToUseCaseInput() usecase.SaleEntryInput {
	return usecase.SaleEntryInput{
		CategoryID:  r.CategoryID,
		PartyID:     r.PartyID,
		EntryDate:   parseEntryDate(r.EntryDate),
		TicketCode:  r.TicketCode,
		StartNumber: r.StartNumber,
		EndNumber:   r.EndNumber,
		Rate:        r.Rate,
		Notes:       r.Notes,
	}
}

func parseEntryDate(s string) time.Time {
	t, err := time.Parse(EntryDateFormat, s)
	if err != nil {
		return time.Time{}
	}

	return t
}
