package domain

import "github.com/shopspring/decimal"

// TicketQuantity converts a ticket count into a stock quantity using the
// category denomination (tickets per unit in a range).
func TicketQuantity(ticketCount, denomination int64) int64 {
	if denomination < 1 {
		denomination = 1
	}

	return ticketCount * denomination
}

// StockAmount computes the monetary amount for a quantity at the given
// rate. The result keeps full precision; rounding to two decimals happens
// only at presentation.
func StockAmount(quantity int64, rate decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(quantity).Mul(rate)
}

// PreviewQuantity computes the quantity shown while an operator is still
// typing a range. It never fails: malformed or inverted input yields zero
// so the UI never displays a negative count. A zero denomination means no
// category is selected yet and defaults to 1.
func PreviewQuantity(startDigits, endDigits string, denomination int64) int64 {
	r, err := ResolveRange(startDigits, endDigits)
	if err != nil {
		return 0
	}

	return TicketQuantity(r.Count(), denomination)
}
