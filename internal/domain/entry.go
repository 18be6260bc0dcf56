package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockEntry is a purchase batch: a ticket range bought from a
// distributor on a given date. Quantity and Amount are derived from the
// range, the category denomination and the rate, and are recomputed on
// every write rather than trusted from the caller.
type StockEntry struct {
	ID            string
	CategoryID    string
	DistributorID string
	EntryDate     time.Time
	TicketCode    string
	Range         TicketRange
	Quantity      int64
	Rate          decimal.Decimal
	Amount        decimal.Decimal
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Recompute refreshes the derived quantity and amount.
func (e *StockEntry) Recompute(denomination int64) {
	e.Quantity = TicketQuantity(e.Range.Count(), denomination)
	e.Amount = StockAmount(e.Quantity, e.Rate)
}

// SaleEntry mirrors StockEntry but records tickets sold to a party out of
// existing stock for the same category. TicketCode identifies the
// purchase batch the sale was attributed to; batches are never mutated or
// split by a sale, so remaining availability is always recomputed from
// the full sale history.
type SaleEntry struct {
	ID         string
	CategoryID string
	PartyID    string
	EntryDate  time.Time
	TicketCode string
	Range      TicketRange
	Quantity   int64
	Rate       decimal.Decimal
	Amount     decimal.Decimal
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Recompute refreshes the derived quantity and amount.
func (e *SaleEntry) Recompute(denomination int64) {
	e.Quantity = TicketQuantity(e.Range.Count(), denomination)
	e.Amount = StockAmount(e.Quantity, e.Rate)
}

// CategoryTotals aggregates on-hand stock for one category.
type CategoryTotals struct {
	CategoryID   string
	CategoryName string
	Quantity     int64
	Amount       decimal.Decimal
}
