package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/tickstock/internal/domain"
	"github.com/iho/tickstock/internal/usecase"
)

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Series       string          `json:"series"`
	Denomination int64           `json:"denomination"`
	PurchaseRate decimal.Decimal `json:"purchase_rate"`
	SaleRate     decimal.Decimal `json:"sale_rate"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// CategoryFromDomain converts a domain category to a response.
func CategoryFromDomain(c *domain.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:           c.ID,
		Name:         c.Name,
		Series:       c.Series,
		Denomination: c.Denomination,
		PurchaseRate: c.PurchaseRate,
		SaleRate:     c.SaleRate,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// CategoriesFromDomain converts domain categories to responses.
func CategoriesFromDomain(categories []*domain.Category) []*CategoryResponse {
	result := make([]*CategoryResponse, len(categories))
	for i, c := range categories {
		result[i] = CategoryFromDomain(c)
	}
	return result
}

// ListCategoriesResponse wraps a category listing.
type ListCategoriesResponse struct {
	Categories []*CategoryResponse `json:"categories"`
	Total      int64               `json:"total"`
}

// CounterpartyResponse represents a distributor or a party in API
// responses.
type CounterpartyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// DistributorFromDomain converts a domain distributor to a response.
func DistributorFromDomain(d *domain.Distributor) *CounterpartyResponse {
	return &CounterpartyResponse{ID: d.ID, Name: d.Name, CreatedAt: d.CreatedAt}
}

// PartyFromDomain converts a domain party to a response.
func PartyFromDomain(p *domain.Party) *CounterpartyResponse {
	return &CounterpartyResponse{ID: p.ID, Name: p.Name, CreatedAt: p.CreatedAt}
}

// ListCounterpartiesResponse wraps a distributor or party listing.
type ListCounterpartiesResponse struct {
	Counterparties []*CounterpartyResponse `json:"counterparties"`
	Total          int64                   `json:"total"`
}

// ResolvedRangeResponse represents a resolved ticket range.
type ResolvedRangeResponse struct {
	StartValue    int64  `json:"start_value"`
	EndValue      int64  `json:"end_value"`
	NormalizedEnd string `json:"normalized_end"`
	TicketCount   int64  `json:"ticket_count"`
}

// ResolvedRangeFromUseCase converts a resolved range to a response.
func ResolvedRangeFromUseCase(r *usecase.ResolvedRange) *ResolvedRangeResponse {
	return &ResolvedRangeResponse{
		StartValue:    r.StartValue,
		EndValue:      r.EndValue,
		NormalizedEnd: r.NormalizedEnd,
		TicketCount:   r.TicketCount,
	}
}

// PreviewResponse represents a live quantity/amount preview.
type PreviewResponse struct {
	Quantity int64  `json:"quantity"`
	Amount   string `json:"amount"`
}

// PreviewFromUseCase converts a preview to a response.
func PreviewFromUseCase(p *usecase.Preview) *PreviewResponse {
	return &PreviewResponse{
		Quantity: p.Quantity,
		Amount:   p.Amount.StringFixed(2),
	}
}

// BatchCandidateResponse identifies one purchase batch able to cover a
// requested range.
type BatchCandidateResponse struct {
	EntryID    string `json:"entry_id"`
	TicketCode string `json:"ticket_code"`
}

// BatchCandidatesFromDomain converts batch candidates to responses.
func BatchCandidatesFromDomain(candidates []domain.BatchCandidate) []BatchCandidateResponse {
	result := make([]BatchCandidateResponse, len(candidates))
	for i, c := range candidates {
		result[i] = BatchCandidateResponse{EntryID: c.EntryID, TicketCode: c.TicketCode}
	}
	return result
}

// CheckStockResponse represents the outcome of an availability probe.
type CheckStockResponse struct {
	Available bool                     `json:"available"`
	Multiple  bool                     `json:"multiple"`
	Matches   []BatchCandidateResponse `json:"matches"`
	AutoCode  string                   `json:"auto_code,omitempty"`
}

// CheckStockFromUseCase converts a probe result to a response.
func CheckStockFromUseCase(r *usecase.CheckStockResult) *CheckStockResponse {
	return &CheckStockResponse{
		Available: r.Available,
		Multiple:  r.Multiple,
		Matches:   BatchCandidatesFromDomain(r.Matches),
		AutoCode:  r.AutoCode,
	}
}

// StockEntryResponse represents a purchase batch in API responses.
type StockEntryResponse struct {
	ID            string    `json:"id"`
	CategoryID    string    `json:"category_id"`
	DistributorID string    `json:"distributor_id,omitempty"`
	EntryDate     string    `json:"entry_date"`
	TicketCode    string    `json:"ticket_code,omitempty"`
	StartNumber   string    `json:"start_number"`
	EndNumber     string    `json:"end_number"`
	Quantity      int64     `json:"quantity"`
	Rate          string    `json:"rate"`
	Amount        string    `json:"amount"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// StockEntryFromDomain converts a domain stock entry to a response.
func StockEntryFromDomain(e *domain.StockEntry) *StockEntryResponse {
	return &StockEntryResponse{
		ID:            e.ID,
		CategoryID:    e.CategoryID,
		DistributorID: e.DistributorID,
		EntryDate:     e.EntryDate.Format(EntryDateFormat),
		TicketCode:    e.TicketCode,
		StartNumber:   e.Range.Start.Digits,
		EndNumber:     e.Range.End.Digits,
		Quantity:      e.Quantity,
		Rate:          e.Rate.StringFixed(2),
		Amount:        e.Amount.StringFixed(2),
		Notes:         e.Notes,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

// StockEntriesFromDomain converts domain stock entries to responses.
func StockEntriesFromDomain(entries []*domain.StockEntry) []*StockEntryResponse {
	result := make([]*StockEntryResponse, len(entries))
	for i, e := range entries {
		result[i] = StockEntryFromDomain(e)
	}
	return result
}

// ListStockEntriesResponse wraps a stock entry listing.
type ListStockEntriesResponse struct {
	Entries []*StockEntryResponse `json:"entries"`
	Total   int64                 `json:"total"`
}

// SaleEntryResponse represents a sale entry in API responses.
type SaleEntryResponse struct {
	ID          string    `json:"id"`
	CategoryID  string    `json:"category_id"`
	PartyID     string    `json:"party_id"`
	EntryDate   string    `json:"entry_date"`
	TicketCode  string    `json:"ticket_code,omitempty"`
	StartNumber string    `json:"start_number"`
	EndNumber   string    `json:"end_number"`
	Quantity    int64     `json:"quantity"`
	Rate        string    `json:"rate"`
	Amount      string    `json:"amount"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SaleEntryFromDomain converts a domain sale entry to a response.
func SaleEntryFromDomain(e *domain.SaleEntry) *SaleEntryResponse {
	return &SaleEntryResponse{
		ID:          e.ID,
		CategoryID:  e.CategoryID,
		PartyID:     e.PartyID,
		EntryDate:   e.EntryDate.Format(EntryDateFormat),
		TicketCode:  e.TicketCode,
		StartNumber: e.Range.Start.Digits,
		EndNumber:   e.Range.End.Digits,
		Quantity:    e.Quantity,
		Rate:        e.Rate.StringFixed(2),
		Amount:      e.Amount.StringFixed(2),
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// SaleEntriesFromDomain converts domain sale entries to responses.
func SaleEntriesFromDomain(entries []*domain.SaleEntry) []*SaleEntryResponse {
	result := make([]*SaleEntryResponse, len(entries))
	for i, e := range entries {
		result[i] = SaleEntryFromDomain(e)
	}
	return result
}

// ListSaleEntriesResponse wraps a sale entry listing.
type ListSaleEntriesResponse struct {
	Entries []*SaleEntryResponse `json:"entries"`
	Total   int64                `json:"total"`
}

// CategoryTotalsResponse aggregates per-category stock position.
type CategoryTotalsResponse struct {
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
	Quantity     int64  `json:"quantity"`
	Amount       string `json:"amount"`
}

// StockSummaryResponse wraps the per-category summary listing.
type StockSummaryResponse struct {
	Categories []*CategoryTotalsResponse `json:"categories"`
}

// StockSummaryFromDomain converts category totals to a response.
func StockSummaryFromDomain(totals []*domain.CategoryTotals) *StockSummaryResponse {
	result := make([]*CategoryTotalsResponse, len(totals))
	for i, t := range totals {
		result[i] = &CategoryTotalsResponse{
			CategoryID:   t.CategoryID,
			CategoryName: t.CategoryName,
			Quantity:     t.Quantity,
			Amount:       t.Amount.StringFixed(2),
		}
	}
	return &StockSummaryResponse{Categories: result}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error      string                   `json:"error"`
	Message    string                   `json:"message,omitempty"`
	Candidates []BatchCandidateResponse `json:"candidates,omitempty"`
}
