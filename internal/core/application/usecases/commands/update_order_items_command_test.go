package commands_test

import (
	"testing"

	"orderapi/internal/core/application/usecases/commands"
	"orderapi/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderItemsCommand_ValidInput(t *testing.T) {
	id, err := kernel.NewOrderID("ORD-1")
	require.NoError(t, err)

	items := []commands.ItemInput{
		{Description: "gadget", UnitPrice: decimal.RequireFromString("3.50"), Quantity: 4},
	}
	cmd, err := commands.NewUpdateOrderItemsCommand(id, items)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, items, cmd.Items())
}

func TestNewUpdateOrderItemsCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.OrderID{} // zero value, should trigger validation error
	_, err := commands.NewUpdateOrderItemsCommand(invalidID, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrOrderIDIsRequired)
}

func TestUpdateOrderItemsCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.UpdateOrderItemsCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrUpdateOrderItemsCommandIsNotConstructed)
}
