// Package queries contains the read side of the ordering service: direct
// database reads that bypass the domain model and return flat response rows.
package queries

import (
	"errors"
	"time"

	"fastorder/internal/core/domain/model/kernel"
	"fastorder/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves one persisted order with its items by identifier.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier to look up.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderResponse is the flat read-side representation of a persisted order.
type OrderResponse struct {
	ID          kernel.UUID
	CustomerID  *string
	Status      string
	TotalAmount float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Items       []OrderItemResponse
}

// OrderItemResponse is one priced line of an order in read-side form.
type OrderItemResponse struct {
	ItemID   string
	Quantity int
	Price    float64
}
