// Package http exposes the order API over HTTP using echo. Handlers translate
// transport DTOs into commands and queries, and application errors into
// status codes.
package http

import (
	"errors"
	"net/http"

	"orderapi/internal/core/application/usecases/commands"
	"orderapi/internal/core/application/usecases/queries"
	"orderapi/internal/core/domain/model/kernel"
	"orderapi/internal/core/domain/model/order"
	"orderapi/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderItemsHandler  commands.UpdateOrderItemsCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler

	// Query handlers
	getAllOrdersHandler queries.GetAllOrdersQueryHandler
	getOrderByIDHandler queries.GetOrderByIDQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderItemsHandler commands.UpdateOrderItemsCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderItemsHandler:  updateOrderItemsHandler,
		deleteOrderHandler:       deleteOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		getAllOrdersHandler:      getAllOrdersHandler,
		getOrderByIDHandler:      getOrderByIDHandler,
	}
}

// RegisterRoutes attaches all order endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrderByID)
	api.PUT("/orders/:id", s.UpdateOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.POST("/orders/status", s.UpdateOrderStatus)
}

// CreateOrder handles POST /api/v1/orders - registers a new order and returns
// its stored representation.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID, err := kernel.NewOrderID(request.ID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, toItemInputs(request.Items))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorFromApplication(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusCreated, orderID)
}

// GetOrders handles GET /api/v1/orders - retrieves all stored orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	views, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	response := make([]OrderResponse, len(views))
	for i, view := range views {
		response[i] = toOrderResponse(view)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderByID handles GET /api/v1/orders/:id - retrieves a single order.
func (s *Server) GetOrderByID(ctx echo.Context) error {
	orderID, err := kernel.NewOrderID(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// UpdateOrder handles PUT /api/v1/orders/:id - wholly replaces the order's
// item collection and returns the updated representation.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.NewOrderID(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	var request UpdateOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderItemsCommand(orderID, toItemInputs(request.Items))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if err = s.updateOrderItemsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorFromApplication(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// DeleteOrder handles DELETE /api/v1/orders/:id - removes an order and its items.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.NewOrderID(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorFromApplication(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderStatus handles POST /api/v1/orders/status - applies a status
// decision. The response always carries status codes; an unknown order
// identifier yields CODIGO_PEDIDO_INVALIDO with HTTP 200.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	var request UpdateStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID, err := kernel.NewOrderID(request.ID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	requested, err := order.StatusFromString(request.Status)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(
		orderID,
		requested,
		request.ApprovedValue,
		request.ApprovedQuantity,
	)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid status request: "+err.Error())
	}

	result, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorFromApplication(ctx, err)
	}

	codes := make([]string, len(result.StatusCodes))
	for i, code := range result.StatusCodes {
		codes[i] = code.String()
	}

	return ctx.JSON(http.StatusOK, UpdateStatusResponse{
		ID:          result.OrderID,
		StatusCodes: codes,
	})
}

// respondWithOrder fetches the stored order and writes it with the given status.
func (s *Server) respondWithOrder(ctx echo.Context, status int, orderID kernel.OrderID) error {
	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	view, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorFromApplication(ctx, err)
	}

	return ctx.JSON(status, toOrderResponse(view))
}

// toItemInputs maps transport item DTOs to command inputs.
func toItemInputs(items []ItemRequest) []commands.ItemInput {
	inputs := make([]commands.ItemInput, len(items))
	for i, item := range items {
		inputs[i] = commands.ItemInput{
			Description: item.Description,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
		}
	}
	return inputs
}

// errorFromApplication maps application errors onto HTTP status codes.
func errorFromApplication(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrInvalidPriceOrQuantity),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: message,
	})
}
