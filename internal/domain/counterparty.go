package domain

import "time"

// Distributor is a purchase-side counterparty: stock batches are bought
// from a distributor.
type Distributor struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// Party is a sale-side counterparty: tickets are sold to a party.
type Party struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
