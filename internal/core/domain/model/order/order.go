package order

import (
	"orderapi/internal/core/domain/model/kernel"
	"orderapi/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errs.NewValueIsRequiredError("Order must be created via NewOrder or RestoreOrder constructor")

// Order is the aggregate root representing a customer purchase. It owns its
// line items exclusively: items are attached, validated and replaced only
// through the aggregate, and each attached item carries a non-owning
// back-reference to the order's identifier.
//
// Invariants:
//   - The identifier is caller-supplied, unique across the store, immutable
//   - Every attached item has unit price > 0 and quantity > 0
//   - The persisted status is one of Pending, Approved, Rejected and changes
//     only through the defined transitions
type Order struct {
	// id is the caller-supplied unique identifier
	id kernel.OrderID

	// status is the current persisted state of the order
	status Status

	// items is the ordered collection of line items, owned by the aggregate
	items []*Item

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an order in Pending status and attaches the given items.
// Each item gets its back-reference set and is then validated; the first
// invalid item aborts construction with an InvalidPriceOrQuantityError, so no
// partially valid aggregate ever exists.
func NewOrder(id kernel.OrderID, items []*Item) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		id:            id,
		status:        Pending,
		isConstructed: true,
	}

	if err := o.attachItems(items); err != nil {
		return nil, err
	}

	o.items = items
	return o, nil
}

// RestoreOrder reconstructs an order from persistence with its stored status
// and items. The status must be persistable; items must have been restored via
// RestoreItem.
func RestoreOrder(id kernel.OrderID, status Status, items []*Item) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:            id,
		status:        status,
		items:         items,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// Status returns the current persisted status.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the order's line items. The slice must not be mutated by
// callers; replacement goes through ReplaceItems.
func (o *Order) Items() []*Item {
	return o.items
}

// ReplaceItems discards the order's current item set and attaches the given
// items in its place. Replacement is all or nothing: if any new item fails
// validation the existing item set is left untouched and an
// InvalidPriceOrQuantityError is returned.
func (o *Order) ReplaceItems(items []*Item) error {
	if err := o.attachItems(items); err != nil {
		return err
	}

	o.items = items
	return nil
}

// Approve moves the order to Approved via the status transition rules.
func (o *Order) Approve() error {
	newStatus, err := o.status.Approve()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Reject moves the order to Rejected via the status transition rules.
func (o *Order) Reject() error {
	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Total returns the monetary total of the order: the sum of all item subtotals.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// TotalQuantity returns the sum of all item quantities.
func (o *Order) TotalQuantity() int {
	quantity := 0
	for _, item := range o.items {
		quantity += item.Quantity()
	}
	return quantity
}

// attachItems sets the back-reference on every item and validates it.
// The back-reference is set before validation so diagnostics always describe
// an item in the context of its order, matching the attach-then-validate
// contract of the item invariants.
func (o *Order) attachItems(items []*Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}

		item.attach(o.id)
		if err := item.validatePriceAndQuantity(); err != nil {
			return err
		}
	}
	return nil
}
