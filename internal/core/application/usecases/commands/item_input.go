package commands

import (
	"orderapi/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// ItemInput carries the caller-supplied attributes of a single line item.
// Price and quantity are not validated here: the order aggregate validates
// them when the items are attached, so a whole batch fails or succeeds
// together and the failure names the offending item.
type ItemInput struct {
	Description string
	UnitPrice   decimal.Decimal
	Quantity    int
}

// toDomainItems maps item inputs to fresh domain items.
func toDomainItems(inputs []ItemInput) []*order.Item {
	items := make([]*order.Item, 0, len(inputs))
	for _, input := range inputs {
		items = append(items, order.NewItem(input.Description, input.UnitPrice, input.Quantity))
	}
	return items
}
