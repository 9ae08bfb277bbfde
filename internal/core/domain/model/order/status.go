package order

import (
	"fmt"

	"orderapi/internal/pkg/errs"
)

// Status represents a state of an order, or a code describing the outcome of a
// status-change request. The wire form of every code is the uppercase
// Portuguese label inherited from the upstream contract.
//
// Persisted states and their transitions:
//
//	Pending ──┬──> Approved ──> Approved
//	          │              (re-approval allowed)
//	          └──> Rejected
//
// The remaining values are response-only codes: they describe the outcome of a
// status-change request and are never stored. InvalidOrderCode in particular is
// the sentinel for "the referenced order identifier does not exist".
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every created order.
	Pending

	// Approved indicates the order passed a status check exactly. Final,
	// except for idempotent re-approval.
	Approved

	// Rejected indicates the caller rejected the order. Final.
	Rejected

	// ApprovedValueBelow reports an approved value lower than the order total.
	ApprovedValueBelow

	// ApprovedValueAbove reports an approved value higher than the order total.
	ApprovedValueAbove

	// ApprovedQuantityBelow reports an approved quantity lower than the order's
	// total item quantity.
	ApprovedQuantityBelow

	// ApprovedQuantityAbove reports an approved quantity higher than the order's
	// total item quantity.
	ApprovedQuantityAbove

	// InvalidOrderCode is the sentinel code returned when a status request
	// names an order identifier that does not exist. Never persisted.
	InvalidOrderCode
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Pending:               "PENDENTE",
		Approved:              "APROVADO",
		Rejected:              "REPROVADO",
		ApprovedValueBelow:    "APROVADO_VALOR_A_MENOR",
		ApprovedValueAbove:    "APROVADO_VALOR_A_MAIOR",
		ApprovedQuantityBelow: "APROVADO_QTD_A_MENOR",
		ApprovedQuantityAbove: "APROVADO_QTD_A_MAIOR",
		InvalidOrderCode:      "CODIGO_PEDIDO_INVALIDO",
	}
}

// getPersistableStatusStrings returns only the statuses an order record may carry.
// Response-only codes are intentionally excluded.
func getPersistableStatusStrings() map[Status]string {
	return map[Status]string{
		Pending:  "PENDENTE",
		Approved: "APROVADO",
		Rejected: "REPROVADO",
	}
}

// StatusFromString parses a wire code back into a Status.
// Returns an error for unknown codes.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a known status code", s),
	)
}

// Validate checks that the Status is one an order record may carry:
// Pending, Approved or Rejected. Response-only codes and Unknown are invalid
// as stored state.
func (s Status) Validate() error {
	if _, ok := getPersistableStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a persistable status", s),
		)
	}
	return nil
}

// String returns the wire code of the status, implementing fmt.Stringer.
// Unknown and out-of-range values yield "DESCONHECIDO".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "DESCONHECIDO"
}

// Approve transitions the status to Approved.
//
// Valid transitions:
//   - Pending -> Approved
//   - Approved -> Approved (idempotent re-approval)
//
// Any other source state is rejected.
func (s Status) Approve() (Status, error) {
	if s != Pending && s != Approved {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to approve from", s.String()),
		)
	}

	return Approved, nil
}

// Reject transitions the status to Rejected.
//
// Valid transitions:
//   - Pending -> Rejected
//   - Rejected -> Rejected (idempotent re-rejection)
//
// Any other source state is rejected.
func (s Status) Reject() (Status, error) {
	if s != Pending && s != Rejected {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to reject from", s.String()),
		)
	}

	return Rejected, nil
}
