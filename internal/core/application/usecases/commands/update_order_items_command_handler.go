package commands

import (
	"context"
)

// UpdateOrderItemsCommandHandler replaces the full item set of an existing
// order. The lookup, the deletion of stale item rows and the write of the new
// set run in one unit of work, so no caller can observe a half-replaced order.
//
// An absent identifier fails with an ObjectNotFoundError; an invalid
// replacement item aborts before any store mutation, leaving the previous
// item set intact.
type UpdateOrderItemsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderItemsCommandHandler creates a handler for item replacement operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewUpdateOrderItemsCommandHandler(uowFactory OrderUoWFactory) UpdateOrderItemsCommandHandler {
	return UpdateOrderItemsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item replacement command.
func (h *UpdateOrderItemsCommandHandler) Handle(ctx context.Context, cmd UpdateOrderItemsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	existingOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = existingOrder.ReplaceItems(toDomainItems(cmd.Items())); err != nil {
		return err
	}

	if err = orderRepo.DeleteItems(ctx, existingOrder); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, existingOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
