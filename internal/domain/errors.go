package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// Range errors
	ErrInvalidRange = errors.New("invalid ticket range")

	// Category errors
	ErrInvalidCategoryName = errors.New("invalid category name")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrCategoryExists      = errors.New("category already exists")

	// Counterparty errors
	ErrDistributorNotFound = errors.New("distributor not found")
	ErrPartyNotFound       = errors.New("party not found")

	// Entry errors
	ErrEntryNotFound = errors.New("entry not found")
	ErrInvalidRate   = errors.New("rate must be positive")
	ErrMissingField  = errors.New("missing required field")

	// Availability errors
	ErrStockUnavailable = errors.New("no stock available for the requested range")
	ErrStockAmbiguous   = errors.New("range matches multiple stock batches")
)

// AvailabilityError reports a sale that could not be matched against
// stock. Kind is MatchUnavailable or MatchAmbiguous; for ambiguous
// matches Candidates lists the batches the caller may pick from by
// resubmitting with an explicit ticket code.
type AvailabilityError struct {
	Kind       MatchKind
	Candidates []BatchCandidate
}

func (e *AvailabilityError) Error() string {
	if e.Kind == MatchAmbiguous {
		codes := make([]string, len(e.Candidates))
		for i, c := range e.Candidates {
			codes[i] = c.TicketCode
		}

		return fmt.Sprintf("%s: candidates [%s]", ErrStockAmbiguous, strings.Join(codes, ", "))
	}

	return ErrStockUnavailable.Error()
}

// Unwrap lets callers classify the failure with errors.Is.
func (e *AvailabilityError) Unwrap() error {
	if e.Kind == MatchAmbiguous {
		return ErrStockAmbiguous
	}

	return ErrStockUnavailable
}
