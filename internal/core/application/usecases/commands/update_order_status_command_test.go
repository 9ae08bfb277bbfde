package commands_test

import (
	"testing"

	"orderapi/internal/core/application/usecases/commands"
	"orderapi/internal/core/domain/model/kernel"
	"orderapi/internal/core/domain/model/order"
	"orderapi/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderStatusCommand_ValidInput(t *testing.T) {
	id, err := kernel.NewOrderID("ORD-1")
	require.NoError(t, err)

	value := decimal.RequireFromString("19.98")
	cmd, err := commands.NewUpdateOrderStatusCommand(id, order.Approved, value, 2)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, order.Approved, cmd.Requested())
	assert.True(t, value.Equal(cmd.ApprovedValue()))
	assert.Equal(t, 2, cmd.ApprovedQuantity())
}

func TestNewUpdateOrderStatusCommand_RejectedInput(t *testing.T) {
	id, err := kernel.NewOrderID("ORD-1")
	require.NoError(t, err)

	cmd, err := commands.NewUpdateOrderStatusCommand(id, order.Rejected, decimal.Zero, 0)
	require.NoError(t, err)
	assert.Equal(t, order.Rejected, cmd.Requested())
}

func TestNewUpdateOrderStatusCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.OrderID{} // zero value, should trigger validation error
	_, err := commands.NewUpdateOrderStatusCommand(invalidID, order.Approved, decimal.Zero, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrOrderIDIsRequired)
}

func TestNewUpdateOrderStatusCommand_NonRequestableStatus(t *testing.T) {
	id, err := kernel.NewOrderID("ORD-1")
	require.NoError(t, err)

	for _, status := range []order.Status{order.Pending, order.ApprovedValueBelow, order.InvalidOrderCode, order.Unknown} {
		t.Run(status.String(), func(t *testing.T) {
			_, err := commands.NewUpdateOrderStatusCommand(id, status, decimal.Zero, 0)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}

func TestUpdateOrderStatusCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.UpdateOrderStatusCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrUpdateOrderStatusCommandIsNotConstructed)
}
