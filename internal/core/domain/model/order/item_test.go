package order_test

import (
	"testing"

	"orderapi/internal/core/domain/model/kernel"
	"orderapi/internal/core/domain/model/order"
	"orderapi/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("should create item with generated identity", func(t *testing.T) {
		item := order.NewItem("widget", decimal.RequireFromString("9.99"), 2)

		require.NoError(t, item.Validate())
		require.NoError(t, item.ID().Validate())
		assert.Equal(t, "widget", item.Description())
		assert.True(t, item.UnitPrice().Equal(decimal.RequireFromString("9.99")))
		assert.Equal(t, 2, item.Quantity())
	})

	t.Run("unattached item has zero order id", func(t *testing.T) {
		item := order.NewItem("widget", decimal.RequireFromString("9.99"), 2)

		require.Error(t, item.OrderID().Validate())
	})
}

func TestItem_Subtotal(t *testing.T) {
	item := order.NewItem("widget", decimal.RequireFromString("9.99"), 3)

	assert.True(t, item.Subtotal().Equal(decimal.RequireFromString("29.97")),
		"subtotal is %s", item.Subtotal())
}

func TestItem_Validate(t *testing.T) {
	t.Run("zero-value item is not constructed", func(t *testing.T) {
		item := &order.Item{}

		err := item.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrItemIsNotConstructed, err)
	})

	t.Run("nil item is not constructed", func(t *testing.T) {
		var item *order.Item

		require.Error(t, item.Validate())
	})
}

func TestRestoreItem(t *testing.T) {
	orderID, err := kernel.NewOrderID("ORD-1")
	require.NoError(t, err)

	t.Run("should restore persisted item", func(t *testing.T) {
		id := kernel.NewUUID()

		item, err := order.RestoreItem(id, orderID, "widget", decimal.RequireFromString("9.99"), 2)

		require.NoError(t, err)
		assert.True(t, item.ID().IsEqual(id))
		assert.True(t, item.OrderID().IsEqual(orderID))
	})

	t.Run("should fail on zero-value item id", func(t *testing.T) {
		var id kernel.UUID

		_, err := order.RestoreItem(id, orderID, "widget", decimal.RequireFromString("9.99"), 2)

		require.Error(t, err)
	})

	t.Run("should fail on stored invariant violation", func(t *testing.T) {
		_, err := order.RestoreItem(kernel.NewUUID(), orderID, "widget", decimal.Zero, 2)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidPriceOrQuantity)
	})
}
