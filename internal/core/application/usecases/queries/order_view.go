// Package queries contains read-only operations for the CQRS architecture.
// Query handlers read the store directly through GORM, bypassing the domain
// aggregates: a read needs no invariants, only a faithful projection.
package queries

import (
	"github.com/shopspring/decimal"
)

// OrderView is the read-side projection of an order: its identifier, the
// persisted status in wire form, the computed totals and the item lines.
type OrderView struct {
	ID            string
	Status        string
	TotalValue    decimal.Decimal
	TotalQuantity int
	Items         []ItemView
}

// ItemView is the read-side projection of a single order line.
type ItemView struct {
	ID          string
	Description string
	UnitPrice   decimal.Decimal
	Quantity    int
}
