package domain

import (
	"fmt"
	"strconv"
)

// MaxTicketDigits bounds the width of a ticket number so its value always
// fits in an int64.
const MaxTicketDigits = 18

// TicketNumber is a ticket number as entered by an operator. Digits keeps
// the original fixed-width string (leading zeros are significant for
// display and storage), Value carries the numeric interpretation used for
// range arithmetic.
type TicketNumber struct {
	Digits string
	Value  int64
}

// ParseTicketNumber parses a decimal digit string into a TicketNumber.
func ParseTicketNumber(digits string) (TicketNumber, error) {
	if digits == "" {
		return TicketNumber{}, fmt.Errorf("%w: empty ticket number", ErrInvalidRange)
	}

	if len(digits) > MaxTicketDigits {
		return TicketNumber{}, fmt.Errorf("%w: ticket number exceeds %d digits", ErrInvalidRange, MaxTicketDigits)
	}

	for _, c := range digits {
		if c < '0' || c > '9' {
			return TicketNumber{}, fmt.Errorf("%w: %q is not numeric", ErrInvalidRange, digits)
		}
	}

	value, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return TicketNumber{}, fmt.Errorf("%w: %q", ErrInvalidRange, digits)
	}

	return TicketNumber{Digits: digits, Value: value}, nil
}

// TicketRange is a closed numeric interval of ticket numbers.
type TicketRange struct {
	Start TicketNumber
	End   TicketNumber
}

// NewTicketRange builds a range from two parsed ticket numbers.
func NewTicketRange(start, end TicketNumber) (TicketRange, error) {
	if end.Value < start.Value {
		return TicketRange{}, fmt.Errorf("%w: end %s is below start %s", ErrInvalidRange, end.Digits, start.Digits)
	}

	return TicketRange{Start: start, End: end}, nil
}

// ResolveRange interprets a (start, end) pair of operator-entered digit
// strings into a concrete ticket range.
//
// When the end string is shorter than the start string the operator has
// typed only the changed low-order digits of a sequential book: the
// missing high-order digits are inherited from the start number, so
// ("100045", "52") resolves to the range 100045..100052 with the end
// recorded as "100052". An end string at least as long as the start is
// taken verbatim.
func ResolveRange(startDigits, endDigits string) (TicketRange, error) {
	start, err := ParseTicketNumber(startDigits)
	if err != nil {
		return TicketRange{}, err
	}

	if endDigits == "" {
		return TicketRange{}, fmt.Errorf("%w: empty ticket number", ErrInvalidRange)
	}

	if len(endDigits) < len(startDigits) {
		prefix := startDigits[:len(startDigits)-len(endDigits)]
		endDigits = prefix + endDigits
	}

	end, err := ParseTicketNumber(endDigits)
	if err != nil {
		return TicketRange{}, err
	}

	return NewTicketRange(start, end)
}

// Count returns the number of tickets in the range, always >= 1.
func (r TicketRange) Count() int64 {
	return r.End.Value - r.Start.Value + 1
}

// NormalizedEnd returns the fully qualified end digit string, with any
// inherited prefix applied and leading zeros preserved.
func (r TicketRange) NormalizedEnd() string {
	return r.End.Digits
}

// Contains reports whether the numeric value v falls inside the range.
func (r TicketRange) Contains(v int64) bool {
	return v >= r.Start.Value && v <= r.End.Value
}

// Overlaps reports whether two ranges share at least one ticket.
func (r TicketRange) Overlaps(other TicketRange) bool {
	return r.Start.Value <= other.End.Value && other.Start.Value <= r.End.Value
}

func (r TicketRange) String() string {
	return r.Start.Digits + "-" + r.End.Digits
}
