package services

import (
	"fmt"

	"orderapi/internal/core/domain/model/order"
	"orderapi/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// StatusChange describes a caller's requested status transition: the target
// status (Approved or Rejected) plus the value and quantity the caller is
// approving, which are checked against the order's own totals.
type StatusChange struct {
	// Requested is the status the caller asks for; only Approved and Rejected
	// are meaningful requests.
	Requested order.Status

	// ApprovedValue is the monetary value the caller approves.
	ApprovedValue decimal.Decimal

	// ApprovedQuantity is the total item quantity the caller approves.
	ApprovedQuantity int
}

// Resolution is the outcome of resolving a status change: an ordered sequence
// of status codes describing the result of each check, and the definitive new
// status when the resolution is conclusive (Unknown otherwise).
type Resolution struct {
	Codes     []order.Status
	NewStatus order.Status
}

// StatusResolver is a domain service that resolves a requested status change
// against an order's current recorded state.
//
// Resolution is a pure computation: the resolver never mutates the order or
// touches the store. Committing a definitive new status is the caller's
// explicit, separate step.
//
// Policy:
//   - A rejection request resolves to [REPROVADO] with Rejected as the
//     definitive status.
//   - An approval request whose value equals the order total and whose
//     quantity equals the order's total item quantity resolves to [APROVADO]
//     with Approved as the definitive status.
//   - Otherwise each mismatching field contributes one code, value first:
//     APROVADO_VALOR_A_MENOR / APROVADO_VALOR_A_MAIOR, then
//     APROVADO_QTD_A_MENOR / APROVADO_QTD_A_MAIOR. A mismatch is not
//     definitive: the order keeps its current status.
type StatusResolver struct{}

// NewStatusResolver creates a new StatusResolver instance.
func NewStatusResolver() StatusResolver {
	return StatusResolver{}
}

// Resolve computes the status codes for the requested change against the
// order's current state. The order must be a valid aggregate and the requested
// status must be Approved or Rejected.
func (r StatusResolver) Resolve(o *order.Order, change StatusChange) (Resolution, error) {
	if err := o.Validate(); err != nil {
		return Resolution{}, err
	}

	switch change.Requested {
	case order.Rejected:
		return Resolution{
			Codes:     []order.Status{order.Rejected},
			NewStatus: order.Rejected,
		}, nil
	case order.Approved:
		return r.resolveApproval(o, change), nil
	default:
		return Resolution{}, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a requestable status", change.Requested),
		)
	}
}

// resolveApproval checks the approved value and quantity against the order's
// totals, emitting one code per mismatching field.
func (r StatusResolver) resolveApproval(o *order.Order, change StatusChange) Resolution {
	valueCmp := change.ApprovedValue.Cmp(o.Total())
	quantityDiff := change.ApprovedQuantity - o.TotalQuantity()

	if valueCmp == 0 && quantityDiff == 0 {
		return Resolution{
			Codes:     []order.Status{order.Approved},
			NewStatus: order.Approved,
		}
	}

	codes := make([]order.Status, 0, 2)
	switch {
	case valueCmp < 0:
		codes = append(codes, order.ApprovedValueBelow)
	case valueCmp > 0:
		codes = append(codes, order.ApprovedValueAbove)
	}
	switch {
	case quantityDiff < 0:
		codes = append(codes, order.ApprovedQuantityBelow)
	case quantityDiff > 0:
		codes = append(codes, order.ApprovedQuantityAbove)
	}

	return Resolution{Codes: codes, NewStatus: order.Unknown}
}
