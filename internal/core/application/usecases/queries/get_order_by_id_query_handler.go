package queries

import (
	"context"
	"database/sql"
	"errors"

	"orderapi/internal/core/domain/model/order"
	"orderapi/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler retrieves a single order projection from the
// database, items included.
//
// Example:
//
//	handler := NewGetOrderByIDQueryHandler(db)
//	query, _ := NewGetOrderByIDQuery(orderID)
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when the
// identifier is absent; item lines come back sorted by item ID.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	var status int
	row := h.db.WithContext(ctx).Raw(`
		SELECT status FROM orders WHERE id = ?
	`, query.OrderID().String()).Row()
	if err := row.Scan(&status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, sql.ErrNoRows) {
			return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return OrderView{}, err
	}

	view := OrderView{
		ID:         query.OrderID().String(),
		Status:     order.Status(status).String(),
		TotalValue: decimal.Zero,
		Items:      make([]ItemView, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			description,
			unit_price,
			quantity
		FROM items
		WHERE order_id = ?
		ORDER BY id
	`, query.OrderID().String()).Rows()
	if err != nil {
		return OrderView{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var itemView ItemView
		var id uuid.UUID

		if err = rows.Scan(
			&id,
			&itemView.Description,
			&itemView.UnitPrice,
			&itemView.Quantity,
		); err != nil {
			return OrderView{}, err
		}

		itemView.ID = id.String()
		view.Items = append(view.Items, itemView)
		view.TotalValue = view.TotalValue.Add(
			itemView.UnitPrice.Mul(decimal.NewFromInt(int64(itemView.Quantity))),
		)
		view.TotalQuantity += itemView.Quantity
	}

	if err = rows.Err(); err != nil {
		return OrderView{}, err
	}

	return view, nil
}
