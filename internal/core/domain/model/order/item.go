package order

import (
	"fmt"

	"orderapi/internal/core/domain/model/kernel"
	"orderapi/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through NewItem or RestoreItem.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError("Item must be created via NewItem or RestoreItem constructor")

// Item is a line entry within an order: a description, a unit price with
// monetary precision, and a quantity. An item belongs to exactly one order and
// keeps a non-owning back-reference to that order's identifier; the reference
// is set by the aggregate when the item is attached, never by callers.
//
// Price and quantity invariants (unit price > 0, quantity > 0) are enforced at
// attach time, after the back-reference is set, so a constructed-but-unattached
// Item may still be invalid.
type Item struct {
	// id is the generated identity of the line item
	id kernel.UUID

	// orderID is the back-reference to the owning order, set on attach
	orderID kernel.OrderID

	// description is the free-text label of the item
	description string

	// unitPrice is the price of a single unit
	unitPrice decimal.Decimal

	// quantity is the number of units ordered
	quantity int

	// isConstructed ensures the item was created via a constructor
	isConstructed bool
}

// NewItem creates a line item with a fresh identity. Price and quantity are
// deliberately not checked here: the order aggregate validates them when the
// item is attached, so that a whole batch of inputs fails or succeeds together.
func NewItem(description string, unitPrice decimal.Decimal, quantity int) *Item {
	return &Item{
		id:            kernel.NewUUID(),
		description:   description,
		unitPrice:     unitPrice,
		quantity:      quantity,
		isConstructed: true,
	}
}

// RestoreItem reconstructs a persisted line item, including its identity and
// owning-order back-reference. Stored items must already satisfy the price and
// quantity invariants; violations mean corrupted state and fail loudly here.
func RestoreItem(
	id kernel.UUID,
	orderID kernel.OrderID,
	description string,
	unitPrice decimal.Decimal,
	quantity int,
) (*Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	item := &Item{
		id:            id,
		orderID:       orderID,
		description:   description,
		unitPrice:     unitPrice,
		quantity:      quantity,
		isConstructed: true,
	}

	if err := item.validatePriceAndQuantity(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the Item was created through a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's generated identity.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// OrderID returns the identifier of the owning order.
// The zero value means the item has not been attached yet.
func (i *Item) OrderID() kernel.OrderID {
	return i.orderID
}

// Description returns the item's free-text label.
func (i *Item) Description() string {
	return i.description
}

// UnitPrice returns the price of a single unit.
func (i *Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Quantity returns the number of units ordered.
func (i *Item) Quantity() int {
	return i.quantity
}

// Subtotal returns unit price times quantity.
func (i *Item) Subtotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

// attach sets the owning-order back-reference. Only the aggregate calls this.
func (i *Item) attach(orderID kernel.OrderID) {
	i.orderID = orderID
}

// validatePriceAndQuantity enforces unit price > 0 and quantity > 0.
func (i *Item) validatePriceAndQuantity() error {
	if !i.unitPrice.IsPositive() || i.quantity <= 0 {
		return errs.NewInvalidPriceOrQuantityErrorWithCause(
			i.description,
			fmt.Errorf("unit price is %s, quantity is %d", i.unitPrice, i.quantity),
		)
	}
	return nil
}
