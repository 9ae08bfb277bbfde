package queries

import (
	"context"

	"orderapi/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves every order projection from the database.
// Orders come back sorted by identifier for consistent output; each order
// carries its items and computed totals.
//
// Example:
//
//	handler := NewGetAllOrdersQueryHandler(db)
//	query := NewGetAllOrdersQuery()
//
//	views, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//
//	fmt.Printf("%d orders stored\n", len(views))
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders with their items.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views := make([]OrderView, 0)
	viewIndex := make(map[string]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status
		FROM orders
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		var status int

		if err = rows.Scan(&id, &status); err != nil {
			return nil, err
		}

		viewIndex[id] = len(views)
		views = append(views, OrderView{
			ID:         id,
			Status:     order.Status(status).String(),
			TotalValue: decimal.Zero,
			Items:      make([]ItemView, 0),
		})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	itemRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			description,
			unit_price,
			quantity
		FROM items
		ORDER BY order_id, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var itemView ItemView
		var id uuid.UUID
		var orderID string

		if err = itemRows.Scan(
			&id,
			&orderID,
			&itemView.Description,
			&itemView.UnitPrice,
			&itemView.Quantity,
		); err != nil {
			return nil, err
		}

		index, ok := viewIndex[orderID]
		if !ok {
			continue
		}

		itemView.ID = id.String()
		views[index].Items = append(views[index].Items, itemView)
		views[index].TotalValue = views[index].TotalValue.Add(
			itemView.UnitPrice.Mul(decimal.NewFromInt(int64(itemView.Quantity))),
		)
		views[index].TotalQuantity += itemView.Quantity
	}
	if err = itemRows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
