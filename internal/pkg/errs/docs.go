// Package errs provides standardized error types for the order service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the failure modes the order lifecycle knows:
//   - ObjectNotFoundError: an operation targets an order that is not in the store
//   - ObjectAlreadyExistsError: order creation collides with an existing identifier
//   - InvalidPriceOrQuantityError: an item fails price/quantity validation
//   - ValueIsRequiredError / ValueIsInvalidError: value-object construction failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// All errors are terminal for the operation that raised them; callers classify
// them with errors.Is against the sentinels and translate them into
// transport-appropriate responses.
package errs
