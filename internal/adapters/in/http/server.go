// Package http exposes the ordering use cases over a REST API.
// It coordinates between echo handlers and application use cases, mapping the
// domain error taxonomy to HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"fastorder/internal/core/application/usecases/commands"
	"fastorder/internal/core/application/usecases/queries"
	"fastorder/internal/core/domain/model/kernel"
	"fastorder/internal/core/domain/model/order"
	"fastorder/internal/core/domain/services"
	"fastorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server holds the command and query handlers behind the HTTP surface.
type Server struct {
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler

	getOrderHandler     queries.GetOrderQueryHandler
	getAllOrdersHandler queries.GetAllOrdersQueryHandler
}

// NewServer creates an HTTP server with the required handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		getOrderHandler:          getOrderHandler,
		getAllOrdersHandler:      getAllOrdersHandler,
	}
}

// Register attaches all routes to the echo instance.
func (s *Server) Register(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.PUT("/orders/:id/status", s.UpdateOrderStatus)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
}

// CreateOrder handles POST /api/v1/orders - runs the create-order sequence.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	items := make([]services.ItemRequest, len(request.Items))
	for i, item := range request.Items {
		items[i] = services.ItemRequest{ItemID: item.ItemID, Quantity: item.Quantity}
	}

	cmd, err := commands.NewCreateOrderCommand(request.CustomerCPF, items)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	response, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, statusForError(err), err.Error())
	}

	return ctx.JSON(http.StatusCreated, createOrderResponseBody(response))
}

// UpdateOrderStatus handles PUT /api/v1/orders/:id/status - applies one
// lifecycle transition.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	var request UpdateOrderStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	status, err := order.StatusFromString(request.Status)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	response, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, statusForError(err), err.Error())
	}

	return ctx.JSON(http.StatusOK, MessageResponse{Message: response.Message})
}

// GetOrders handles GET /api/v1/orders - lists all persisted orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	rows, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	response := make([]OrderPayload, len(rows))
	for i, row := range rows {
		response[i] = orderPayloadFromQuery(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	row, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, statusForError(err), err.Error())
	}

	return ctx.JSON(http.StatusOK, orderPayloadFromQuery(row))
}

// statusForError maps the application error taxonomy to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, commands.ErrItemNotFound),
		errors.Is(err, commands.ErrCustomerNotFound):
		return http.StatusNotFound
	case errors.Is(err, commands.ErrDuplicateOrderItems),
		errors.Is(err, commands.ErrItemNotAvailable),
		errors.Is(err, order.ErrNoItemsProvided),
		errors.Is(err, order.ErrInvalidItemPricing),
		errors.Is(err, order.ErrOrderFinalized),
		errors.Is(err, order.ErrStatusUnchanged),
		errors.Is(err, order.ErrStatusSequenceViolation),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	default:
		// ErrItemValidationFailed and transport failures are contract
		// violations, not bad requests.
		return http.StatusInternalServerError
	}
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}
