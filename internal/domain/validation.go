package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	MaxNameLength       = 255
	MaxTicketCodeLength = 50
	MaxNotesLength      = 1024
)

// ValidateName validates a counterparty or category display name.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("%w: name", ErrMissingField)
	}

	if len(name) > MaxNameLength {
		return fmt.Errorf("name exceeds %d characters", MaxNameLength)
	}

	return nil
}

// ValidateEntryRate validates the rate submitted with a stock or sale
// entry. Entry rates must be strictly positive.
func ValidateEntryRate(rate decimal.Decimal) error {
	if rate.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidRate
	}

	return nil
}

// ValidateEntryDate rejects the zero date.
func ValidateEntryDate(date time.Time) error {
	if date.IsZero() {
		return fmt.Errorf("%w: entry date", ErrMissingField)
	}

	return nil
}

// ValidateTicketCode bounds the free-form batch label.
func ValidateTicketCode(code string) error {
	if len(code) > MaxTicketCodeLength {
		return fmt.Errorf("ticket code exceeds %d characters", MaxTicketCodeLength)
	}

	return nil
}

// ValidateNotes bounds the free-form notes field.
func ValidateNotes(notes string) error {
	if len(notes) > MaxNotesLength {
		return fmt.Errorf("notes exceed %d characters", MaxNotesLength)
	}

	return nil
}
