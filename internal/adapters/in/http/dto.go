package http

import (
	"orderapi/internal/core/application/usecases/queries"

	"github.com/shopspring/decimal"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ItemRequest carries one order line in create and update payloads.
// The unit price accepts both JSON numbers and numeric strings.
type ItemRequest struct {
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
}

// CreateOrderRequest is the payload for POST /api/v1/orders.
type CreateOrderRequest struct {
	ID    string        `json:"id"`
	Items []ItemRequest `json:"items"`
}

// UpdateOrderRequest is the payload for PUT /api/v1/orders/:id.
// The item collection wholly replaces the stored one.
type UpdateOrderRequest struct {
	Items []ItemRequest `json:"items"`
}

// UpdateStatusRequest is the payload for POST /api/v1/orders/status.
type UpdateStatusRequest struct {
	ID               string          `json:"id"`
	Status           string          `json:"status"`
	ApprovedValue    decimal.Decimal `json:"approvedValue"`
	ApprovedQuantity int             `json:"approvedQuantity"`
}

// UpdateStatusResponse is the body returned for every status request,
// for known and unknown order identifiers alike.
type UpdateStatusResponse struct {
	ID          string   `json:"id"`
	StatusCodes []string `json:"statusCodes"`
}

// ItemResponse is one order line in an order response body.
type ItemResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
}

// OrderResponse is the full representation of a stored order.
type OrderResponse struct {
	ID            string          `json:"id"`
	Status        string          `json:"status"`
	TotalValue    decimal.Decimal `json:"totalValue"`
	TotalQuantity int             `json:"totalQuantity"`
	Items         []ItemResponse  `json:"items"`
}

// toOrderResponse maps a read-side order view to its transport representation.
func toOrderResponse(view queries.OrderView) OrderResponse {
	items := make([]ItemResponse, len(view.Items))
	for i, item := range view.Items {
		items[i] = ItemResponse{
			ID:          item.ID,
			Description: item.Description,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
		}
	}

	return OrderResponse{
		ID:            view.ID,
		Status:        view.Status,
		TotalValue:    view.TotalValue,
		TotalQuantity: view.TotalQuantity,
		Items:         items,
	}
}
