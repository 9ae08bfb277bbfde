// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database rows.
package orderrepo

import (
	"orderapi/internal/core/domain/model/kernel"
	"orderapi/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The primary key is the caller-supplied order identifier; items live in their
// own table and cascade on order deletion.
type OrderDTO struct {
	ID     string `gorm:"primaryKey"`
	Status int
	Items  []ItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents a single order line in the items table. The unit price is
// stored as numeric to preserve monetary precision.
type ItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     string    `gorm:"index"`
	Description string
	UnitPrice   decimal.Decimal `gorm:"type:numeric(14,2)"`
	Quantity    int
}

// TableName specifies the database table name for item entities.
func (ItemDTO) TableName() string {
	return "items"
}

// fromDomain converts an order aggregate to its database representation,
// items included.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:          item.ID().Bytes(),
			OrderID:     aggregate.ID().String(),
			Description: item.Description(),
			UnitPrice:   item.UnitPrice(),
			Quantity:    item.Quantity(),
		})
	}

	return OrderDTO{
		ID:     aggregate.ID().String(),
		Status: int(aggregate.Status()),
		Items:  items,
	}
}

// toDomain converts a database DTO to an order aggregate, reconstructing the
// items through RestoreItem so stored invariant violations fail loudly.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewOrderID(dto.ID)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.RestoreItem(
			itemID,
			id,
			itemDTO.Description,
			itemDTO.UnitPrice,
			itemDTO.Quantity,
		)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	return order.RestoreOrder(id, order.Status(dto.Status), items)
}
