package kernel

import (
	"strings"

	"orderapi/internal/pkg/errs"
)

// ErrOrderIDIsRequired indicates an OrderID was not created through NewOrderID,
// or was created from an empty string.
var ErrOrderIDIsRequired = errs.NewValueIsRequiredError("order id")

// OrderID is the caller-supplied identifier of an order. It is assigned at
// creation, globally unique across the store, and immutable thereafter.
//
// The zero value is invalid; construct it with NewOrderID.
//
// Example:
//
//	id, err := kernel.NewOrderID("ORD-1")
//	if err != nil {
//	    // handle empty identifier
//	}
type OrderID struct {
	value string
}

// NewOrderID creates an OrderID from its string form. Leading and trailing
// whitespace is rejected rather than trimmed, since the identifier is an
// external contract and must round-trip byte for byte.
func NewOrderID(value string) (OrderID, error) {
	if value == "" || strings.TrimSpace(value) != value {
		return OrderID{}, errs.NewValueIsInvalidError("order id")
	}
	return OrderID{value: value}, nil
}

// String returns the identifier exactly as the caller supplied it.
func (id OrderID) String() string {
	return id.value
}

// IsEqual compares two order identifiers for equality.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Validate returns ErrOrderIDIsRequired for zero-value identifiers.
func (id OrderID) Validate() error {
	if id.value == "" {
		return ErrOrderIDIsRequired
	}
	return nil
}
