package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"orderapi/internal/core/domain/model/kernel"
	"orderapi/internal/core/domain/model/order"
	"orderapi/internal/pkg/errs"
	"orderapi/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
)

// UpdateOrderStatusCommand represents an external status decision for an
// order: a requested status plus the approved value and quantity the
// decision was based on.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.OrderID
	requested        order.Status
	approvedValue    decimal.Decimal
	approvedQuantity int

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command carrying a status decision.
// Only APROVADO and REPROVADO are requestable statuses.
func NewUpdateOrderStatusCommand(
	orderID kernel.OrderID,
	requested order.Status,
	approvedValue decimal.Decimal,
	approvedQuantity int,
) (UpdateOrderStatusCommand, error) {
	statusCommand := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	if requested != order.Approved && requested != order.Rejected {
		return UpdateOrderStatusCommand{}, errs.NewValueIsInvalidError("requested status")
	}

	statusCommand.orderID = orderID
	statusCommand.requested = requested
	statusCommand.approvedValue = approvedValue
	statusCommand.approvedQuantity = approvedQuantity
	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderStatusCommandIsNotConstructed if validation fails.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order the decision targets.
func (c UpdateOrderStatusCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Requested returns the requested status.
func (c UpdateOrderStatusCommand) Requested() order.Status {
	return c.requested
}

// ApprovedValue returns the monetary value the decision approved.
func (c UpdateOrderStatusCommand) ApprovedValue() decimal.Decimal {
	return c.approvedValue
}

// ApprovedQuantity returns the item quantity the decision approved.
func (c UpdateOrderStatusCommand) ApprovedQuantity() int {
	return c.approvedQuantity
}
