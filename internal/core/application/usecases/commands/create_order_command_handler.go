package commands

import (
	"context"
	"errors"

	"orderapi/internal/core/domain/model/order"
	"orderapi/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// It owns the identity invariant: an identifier already present in the store
// rejects the whole creation with an ObjectAlreadyExistsError.
//
// Items are attached and validated before anything is persisted, so a failed
// validation never leaves a partial order behind.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command. The existence probe and the
// insert run in one unit of work so a concurrent create with the same
// identifier cannot slip in between.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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
	if _, err := orderRepo.Get(ctx, cmd.OrderID()); err == nil {
		return errs.NewObjectAlreadyExistsError("order", cmd.OrderID().String())
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), toDomainItems(cmd.Items()))
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
