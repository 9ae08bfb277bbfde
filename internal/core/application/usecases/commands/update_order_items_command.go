package commands

import (
	"errors"

	"orderapi/internal/core/domain/model/kernel"
	"orderapi/internal/pkg/guard"
)

var (
	ErrUpdateOrderItemsCommandIsNotConstructed = errors.New(
		"UpdateOrderItemsCommand must be created via NewUpdateOrderItemsCommand constructor",
	)
)

// UpdateOrderItemsCommand represents a request to wholly replace the item
// collection of an existing order. Old items are discarded, not merged.
type UpdateOrderItemsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	items   []ItemInput

	guard guard.ConstructorGuard
}

// NewUpdateOrderItemsCommand creates a command to replace an order's items.
func NewUpdateOrderItemsCommand(orderID kernel.OrderID, items []ItemInput) (UpdateOrderItemsCommand, error) {
	updateCommand := UpdateOrderItemsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := updateCommand.setOrderID(orderID); err != nil {
		return UpdateOrderItemsCommand{}, err
	}

	updateCommand.items = items
	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderItemsCommandIsNotConstructed if validation fails.
func (c UpdateOrderItemsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderItemsCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderItemsCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Items returns the replacement item collection.
func (c UpdateOrderItemsCommand) Items() []ItemInput {
	return c.items
}

func (c *UpdateOrderItemsCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
