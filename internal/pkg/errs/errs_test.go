package errs_test

import (
	"errors"
	"testing"

	"orderapi/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "ORD-1")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "ORD-1", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: ORD-1", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "ORD-1", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "ORD-1", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: ORD-1 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestObjectAlreadyExistsError(t *testing.T) {
	t.Run("NewObjectAlreadyExistsError", func(t *testing.T) {
		err := errs.NewObjectAlreadyExistsError("orderId", "ORD-1")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "ORD-1", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object already exists: ORD-1", err.Error())
		assert.Equal(t, errs.ErrObjectAlreadyExists, err.Unwrap())
	})

	t.Run("NewObjectAlreadyExistsErrorWithCause", func(t *testing.T) {
		cause := errors.New("duplicate key")
		err := errs.NewObjectAlreadyExistsErrorWithCause("orderId", "ORD-1", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object already exists: param is: orderId, ID is: ORD-1 (cause: duplicate key)",
			err.Error())
		assert.Equal(t, errs.ErrObjectAlreadyExists, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, "status", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: status (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("order id")

		assert.Equal(t, "order id", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: order id", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("order id", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: order id (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestInvalidPriceOrQuantityError(t *testing.T) {
	t.Run("NewInvalidPriceOrQuantityError", func(t *testing.T) {
		err := errs.NewInvalidPriceOrQuantityError("widget")

		assert.Equal(t, "widget", err.Description)
		require.NoError(t, err.Cause)
		assert.Equal(t, "invalid price or quantity for item: widget", err.Error())
		assert.Equal(t, errs.ErrInvalidPriceOrQuantity, err.Unwrap())
	})

	t.Run("NewInvalidPriceOrQuantityErrorWithCause", func(t *testing.T) {
		cause := errors.New("quantity is -2")
		err := errs.NewInvalidPriceOrQuantityErrorWithCause("widget", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "invalid price or quantity for item: widget (cause: quantity is -2)", err.Error())
		assert.Equal(t, errs.ErrInvalidPriceOrQuantity, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewInvalidPriceOrQuantityError("hello\nworld")
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrObjectAlreadyExists)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrInvalidPriceOrQuantity)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "object already exists", errs.ErrObjectAlreadyExists.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "invalid price or quantity", errs.ErrInvalidPriceOrQuantity.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("orderId", "ORD-1")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		alreadyExistsErr := errs.NewObjectAlreadyExistsError("orderId", "ORD-1")
		require.ErrorIs(t, alreadyExistsErr, errs.ErrObjectAlreadyExists)

		valueInvalidErr := errs.NewValueIsInvalidError("status")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueRequiredErr := errs.NewValueIsRequiredError("order id")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)

		invalidItemErr := errs.NewInvalidPriceOrQuantityError("widget")
		require.ErrorIs(t, invalidItemErr, errs.ErrInvalidPriceOrQuantity)
	})
}
