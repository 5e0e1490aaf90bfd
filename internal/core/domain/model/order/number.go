package order

import (
	"fmt"
	"regexp"
	"time"

	"storefront/internal/pkg/errs"
)

// NumberPrefix starts every generated order number.
const NumberPrefix = "ORD"

// maxDailySequence bounds the 4-digit day-scoped counter.
const maxDailySequence = 9999

var numberPattern = regexp.MustCompile(`^` + NumberPrefix + `\d{8}\d{4}$`)

// Number is a human-readable order identifier of the form
// ORD<YYYYMMDD><NNNN>, where NNNN is a day-scoped sequence starting at 0001.
// Numbers are unique across all orders and strictly increasing within a day.
//
// The next sequence value is claimed from a per-day counter row inside the
// same transaction that inserts the order, so two concurrent creations can
// never observe the same value.
type Number struct {
	value string
}

// NewNumber builds a number for the given day (interpreted in UTC) and
// sequence value.
func NewNumber(day time.Time, seq int) (Number, error) {
	if seq < 1 || seq > maxDailySequence {
		return Number{}, errs.NewValueIsOutOfRangeError("order number sequence", seq, 1, maxDailySequence)
	}
	return Number{
		value: fmt.Sprintf("%s%s%04d", NumberPrefix, day.UTC().Format("20060102"), seq),
	}, nil
}

// NumberFromString validates a persisted order number.
func NumberFromString(s string) (Number, error) {
	if s == "" {
		return Number{}, errs.NewValueIsRequiredError("order number")
	}
	if !numberPattern.MatchString(s) {
		return Number{}, errs.NewValueIsInvalidError("order number")
	}
	return Number{value: s}, nil
}

// Validate reports whether the number was produced by a constructor.
func (n Number) Validate() error {
	if n.value == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	return nil
}

// String returns the formatted order number.
func (n Number) String() string {
	return n.value
}

// IsEqual compares two numbers by value.
func (n Number) IsEqual(other Number) bool {
	return n.value == other.value
}
