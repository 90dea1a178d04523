package commands

import (
	"context"
	"errors"
	"fmt"

	"fastorder/internal/core/domain/model/kernel"
	"fastorder/internal/core/domain/model/order"
	"fastorder/internal/core/domain/services"
	"fastorder/internal/core/ports"
)

var (
	// ErrItemNotFound is returned when a requested item has no stock snapshot.
	ErrItemNotFound = errors.New("item not found in stock")

	// ErrItemNotAvailable is returned when the available stock quantity does
	// not cover the requested quantity.
	ErrItemNotAvailable = errors.New("item quantity is not available in stock")

	// ErrItemValidationFailed is returned when a fetched stock snapshot is
	// internally inconsistent (missing id, missing or zero price) or the
	// request asks for a zero quantity. This indicates a contract violation
	// rather than a bad request.
	ErrItemValidationFailed = errors.New("stock snapshot failed validation")
)

// validateOrderItem fetches the stock snapshot for one requested item and
// checks availability against the requested quantity. On success the snapshot
// is returned unchanged: it is the only source of truth for pricing, and
// caller-declared prices are never trusted.
func validateOrderItem(
	ctx context.Context,
	stock ports.StockGateway,
	request services.ItemRequest,
) (*ports.StockSnapshot, error) {
	snapshot, err := stock.GetSnapshot(ctx, request.ItemID)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, fmt.Errorf("%w: %s", ErrItemNotFound, request.ItemID)
	}

	if !services.IsAvailable(snapshot.Quantity, request.Quantity) {
		return nil, fmt.Errorf("%w: item %s has %d available",
			ErrItemNotAvailable, request.ItemID, snapshot.Quantity)
	}

	return snapshot, nil
}

// processOrderItems validates every requested item sequentially, in input
// order, and builds the priced order lines for aggregate construction. The
// first failure aborts processing; remaining items are not validated. An empty
// request list yields an empty result with no external calls.
func processOrderItems(
	ctx context.Context,
	stock ports.StockGateway,
	requests []services.ItemRequest,
) ([]*order.OrderItem, error) {
	items := make([]*order.OrderItem, 0, len(requests))
	for _, request := range requests {
		snapshot, err := validateOrderItem(ctx, stock, request)
		if err != nil {
			return nil, err
		}

		if snapshot.ID == "" || snapshot.Price <= 0 || request.Quantity == 0 {
			return nil, fmt.Errorf("%w: item %s", ErrItemValidationFailed, request.ItemID)
		}

		item, err := order.NewOrderItem(request.ItemID, request.Quantity, kernel.NewMoneyFromFloat(snapshot.Price))
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
