package commands

import (
	"errors"

	"orderapi/internal/core/domain/model/kernel"
	"orderapi/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to create a new purchase order with
// its initial item collection.
//
// Example:
//
//	orderID, _ := kernel.NewOrderID("ORD-1")
//	cmd, err := commands.NewCreateOrderCommand(orderID, []commands.ItemInput{
//	    {Description: "widget", UnitPrice: decimal.RequireFromString("9.99"), Quantity: 2},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	items   []ItemInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// The identifier must be valid; the item collection may be empty and its
// contents are validated by the aggregate when attached.
func NewCreateOrderCommand(orderID kernel.OrderID, items []ItemInput) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderCommand.setOrderID(orderID); err != nil {
		return CreateOrderCommand{}, err
	}

	orderCommand.items = items
	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the caller assigned to the order.
func (c CreateOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Items returns the proposed item collection.
func (c CreateOrderCommand) Items() []ItemInput {
	return c.items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
