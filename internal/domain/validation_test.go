package domain

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestValidateName(t *testing.T) {
	if err := ValidateName("Lucky Agencies"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := ValidateName("   "); !errors.Is(err, ErrMissingField) {
		t.Errorf("expected ErrMissingField for blank name, got %v", err)
	}

	if err := ValidateName(strings.Repeat("x", MaxNameLength+1)); err == nil {
		t.Error("expected error for oversized name")
	}
}

func TestValidateEntryRate(t *testing.T) {
	if err := ValidateEntryRate(decimal.RequireFromString("4.50")); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	for _, raw := range []string{"0", "-1"} {
		if err := ValidateEntryRate(decimal.RequireFromString(raw)); !errors.Is(err, ErrInvalidRate) {
			t.Errorf("rate %s: expected ErrInvalidRate, got %v", raw, err)
		}
	}
}

func TestValidateEntryDate(t *testing.T) {
	if err := ValidateEntryDate(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := ValidateEntryDate(time.Time{}); !errors.Is(err, ErrMissingField) {
		t.Errorf("expected ErrMissingField for zero date, got %v", err)
	}
}

func TestValidateTicketCode(t *testing.T) {
	if err := ValidateTicketCode(""); err != nil {
		t.Errorf("empty code should be allowed: %v", err)
	}

	if err := ValidateTicketCode(strings.Repeat("A", MaxTicketCodeLength+1)); err == nil {
		t.Error("expected error for oversized ticket code")
	}
}
