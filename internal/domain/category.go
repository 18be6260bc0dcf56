package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Category is a ticket category such as "M25": series M, denomination 25.
// Denomination is the number of tickets each step in a range represents.
type Category struct {
	ID           string
	Name         string
	Series       string
	Denomination int64
	PurchaseRate decimal.Decimal
	SaleRate     decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Valid category series letters.
var validSeries = map[string]bool{"M": true, "D": true, "E": true}

// ParseCategoryName decomposes a category name like "M25" or "d10" into
// its series letter and denomination. The name is upper-cased first.
func ParseCategoryName(name string) (normalized, series string, denomination int64, err error) {
	name = strings.ToUpper(strings.TrimSpace(name))

	if len(name) < 2 {
		return "", "", 0, fmt.Errorf("%w: use a format like M25, D10 or E5", ErrInvalidCategoryName)
	}

	series = name[:1]
	if !validSeries[series] {
		return "", "", 0, fmt.Errorf("%w: series must be M, D or E", ErrInvalidCategoryName)
	}

	denomination, err = strconv.ParseInt(name[1:], 10, 64)
	if err != nil || denomination < 1 {
		return "", "", 0, fmt.Errorf("%w: denomination must be a positive number", ErrInvalidCategoryName)
	}

	return name, series, denomination, nil
}

// Validate checks category invariants.
func (c *Category) Validate() error {
	if c.Denomination < 1 {
		return fmt.Errorf("%w: denomination must be at least 1", ErrInvalidCategoryName)
	}

	if c.PurchaseRate.IsNegative() || c.SaleRate.IsNegative() {
		return fmt.Errorf("%w: category rates must not be negative", ErrInvalidRate)
	}

	return nil
}
