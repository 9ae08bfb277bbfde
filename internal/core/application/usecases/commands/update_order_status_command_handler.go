package commands

import (
	"context"
	"errors"

	"orderapi/internal/core/domain/model/order"
	"orderapi/internal/core/domain/services"
	"orderapi/internal/pkg/errs"
)

// UpdateOrderStatusResponse carries the outcome of a status decision: the
// order identifier and the ordered status codes the resolution produced.
type UpdateOrderStatusResponse struct {
	OrderID     string
	StatusCodes []order.Status
}

// UpdateOrderStatusCommandHandler applies an external status decision to an
// order. The outcome is always expressed through status codes in the
// response, never through an error: an unknown identifier yields the
// CODIGO_PEDIDO_INVALIDO code, a mismatching approval yields the relevant
// divergence codes, and only a conclusive resolution changes the stored
// status.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	resolver   services.StatusResolver
}

// NewUpdateOrderStatusCommandHandler creates a handler for status decision
// operations. Requires an OrderUoWFactory for transactional persistence and a
// StatusResolver for the decision policy.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	resolver services.StatusResolver,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
	}
}

// Handle processes the status decision command. Unknown order identifiers are
// reported with the CODIGO_PEDIDO_INVALIDO code and a nil error, so callers
// processing decision batches can keep going.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (UpdateOrderStatusResponse, error) {
	if err := cmd.Validate(); err != nil {
		return UpdateOrderStatusResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpdateOrderStatusResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	existingOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return UpdateOrderStatusResponse{
			OrderID:     cmd.OrderID().String(),
			StatusCodes: []order.Status{order.InvalidOrderCode},
		}, nil
	}
	if err != nil {
		return UpdateOrderStatusResponse{}, err
	}

	resolution, err := h.resolver.Resolve(existingOrder, services.StatusChange{
		Requested:        cmd.Requested(),
		ApprovedValue:    cmd.ApprovedValue(),
		ApprovedQuantity: cmd.ApprovedQuantity(),
	})
	if err != nil {
		return UpdateOrderStatusResponse{}, err
	}

	response := UpdateOrderStatusResponse{
		OrderID:     cmd.OrderID().String(),
		StatusCodes: resolution.Codes,
	}

	if resolution.NewStatus == order.Unknown {
		return response, nil
	}

	if err = h.applyStatus(existingOrder, resolution.NewStatus); err != nil {
		// The order is already past the requested transition. The codes still
		// describe the decision, so the stored status stays as it is.
		return response, nil
	}

	if err = orderRepo.Update(ctx, existingOrder); err != nil {
		return UpdateOrderStatusResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return UpdateOrderStatusResponse{}, err
	}

	return response, nil
}

func (h *UpdateOrderStatusCommandHandler) applyStatus(o *order.Order, newStatus order.Status) error {
	if newStatus == order.Approved {
		return o.Approve()
	}

	return o.Reject()
}
