package http

import (
	"time"

	"fastorder/internal/core/application/usecases/commands"
	"fastorder/internal/core/application/usecases/queries"
	"fastorder/internal/core/domain/model/order"
)

// CreateOrderRequest is the payload accepted by POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerCPF string             `json:"customerCpf,omitempty"`
	Items       []OrderItemRequest `json:"items"`
}

// OrderItemRequest is one requested line: the catalog item id and quantity.
// Prices are never accepted from callers.
type OrderItemRequest struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// UpdateOrderStatusRequest is the payload accepted by
// PUT /api/v1/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderPayload is the presentation shape of an order.
type OrderPayload struct {
	ID          string             `json:"id"`
	CustomerID  *string            `json:"customerId,omitempty"`
	Status      string             `json:"status"`
	TotalAmount float64            `json:"totalAmount"`
	Items       []OrderItemPayload `json:"items"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// OrderItemPayload is the presentation shape of one priced order line.
type OrderItemPayload struct {
	ItemID   string  `json:"itemId"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// PaymentPayload is the presentation shape of the payment gateway's receipt.
type PaymentPayload struct {
	PaymentID string `json:"paymentId"`
	Status    string `json:"status"`
}

// CreateOrderResponseBody is the response of POST /api/v1/orders.
type CreateOrderResponseBody struct {
	Order   OrderPayload   `json:"order"`
	Payment PaymentPayload `json:"payment"`
}

// MessageResponse confirms an operation with a human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// orderPayloadFromAggregate maps a domain aggregate to its presentation shape.
func orderPayloadFromAggregate(aggregate *order.Order) OrderPayload {
	items := make([]OrderItemPayload, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items[i] = OrderItemPayload{
			ItemID:   item.ItemID(),
			Quantity: item.Quantity(),
			Price:    item.Price().Float64(),
		}
	}

	return OrderPayload{
		ID:          aggregate.ID().String(),
		CustomerID:  aggregate.CustomerID(),
		Status:      aggregate.Status().String(),
		TotalAmount: aggregate.TotalAmount().Float64(),
		Items:       items,
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

// orderPayloadFromQuery maps a read-side row to the presentation shape.
func orderPayloadFromQuery(row queries.OrderResponse) OrderPayload {
	items := make([]OrderItemPayload, len(row.Items))
	for i, item := range row.Items {
		items[i] = OrderItemPayload{
			ItemID:   item.ItemID,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}

	return OrderPayload{
		ID:          row.ID.String(),
		CustomerID:  row.CustomerID,
		Status:      row.Status,
		TotalAmount: row.TotalAmount,
		Items:       items,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

// createOrderResponseBody maps a create-order result to the response body.
func createOrderResponseBody(response commands.CreateOrderResponse) CreateOrderResponseBody {
	return CreateOrderResponseBody{
		Order: orderPayloadFromAggregate(response.Order),
		Payment: PaymentPayload{
			PaymentID: response.Payment.PaymentID,
			Status:    response.Payment.Status,
		},
	}
}
