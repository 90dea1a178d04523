package commands

import (
	"context"
	"fmt"
	"log/slog"

	"fastorder/internal/core/domain/model/order"
	"fastorder/internal/core/ports"
)

// UpdateOrderStatusResponse confirms a successful status transition.
type UpdateOrderStatusResponse struct {
	Message string
}

// UpdateOrderStatusCommandHandler drives an order through one lifecycle
// transition: load, transition, persist, and - only when the order moves to
// Received - decrement stock for every item.
//
// Stock decrements run sequentially after the status was persisted, one
// external call per item. A failing decrement aborts the remaining loop and
// propagates; already-decremented items stay decremented with no rollback.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	stock      ports.StockGateway
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for status transitions.
// The publisher may be nil when no event transport is configured.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	stock ports.StockGateway,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		stock:      stock,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle runs the update-status sequence and returns a confirmation message
// naming the order id.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (UpdateOrderStatusResponse, error) {
	if err := cmd.Validate(); err != nil {
		return UpdateOrderStatusResponse{}, err
	}

	aggregate, err := h.transition(ctx, cmd)
	if err != nil {
		return UpdateOrderStatusResponse{}, err
	}

	if cmd.Status() == order.Received {
		if err = h.decrementStock(ctx, aggregate); err != nil {
			return UpdateOrderStatusResponse{}, err
		}
	}

	h.publishStatusChanged(ctx, aggregate)

	return UpdateOrderStatusResponse{
		Message: fmt.Sprintf("order %s moved to %s", aggregate.ID(), aggregate.Status()),
	}, nil
}

// transition loads the aggregate, applies the state machine, and persists the
// result within one transaction. State-machine errors propagate unchanged.
func (h *UpdateOrderStatusCommandHandler) transition(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.UpdateStatus(cmd.Status()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// decrementStock issues one decrement call per order item, in item order.
// The first failure aborts the loop; earlier decrements are not rolled back.
func (h *UpdateOrderStatusCommandHandler) decrementStock(ctx context.Context, aggregate *order.Order) error {
	for _, item := range aggregate.Items() {
		if err := h.stock.Decrement(ctx, item.ItemID(), item.Quantity()); err != nil {
			return err
		}
	}
	return nil
}

// publishStatusChanged notifies consumers about the transition, best-effort.
func (h *UpdateOrderStatusCommandHandler) publishStatusChanged(ctx context.Context, aggregate *order.Order) {
	if h.publisher == nil {
		return
	}
	if err := h.publisher.PublishStatusChanged(ctx, aggregate); err != nil && h.logger != nil {
		h.logger.ErrorContext(ctx, "Failed to publish order status change",
			"order_id", aggregate.ID().String(), "error", err)
	}
}
