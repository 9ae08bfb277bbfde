// Package kernel contains the shared value objects of the domain model.
//
// It provides:
//   - OrderID: the caller-supplied, globally unique order identifier
//   - UUID: a generated identifier used for order line items
//
// Value objects in this package are immutable, validate themselves, and are the
// only identifier types the rest of the domain accepts.
package kernel
