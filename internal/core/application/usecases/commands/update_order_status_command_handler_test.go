package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"fastorder/internal/core/application/usecases/commands"
	"fastorder/internal/core/domain/model/kernel"
	"fastorder/internal/core/domain/model/order"
	"fastorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func storedOrder(t *testing.T, status order.Status, items []*order.OrderItem) *order.Order {
	t.Helper()
	now := time.Now()
	aggregate, err := order.RestoreOrder(kernel.NewUUID(), nil, status, items, now, now)
	require.NoError(t, err)
	return aggregate
}

func storedItem(t *testing.T, itemID string, quantity int, price float64) *order.OrderItem {
	t.Helper()
	item, err := order.NewOrderItem(itemID, quantity, kernel.NewMoneyFromFloat(price))
	require.NoError(t, err)
	return item
}

// newTransitioningUoW wires the Get-Update-Commit sequence every successful
// transition walks through.
func newTransitioningUoW(
	ctx context.Context,
	repo *MockOrderRepository,
	aggregate *order.Order,
) (*MockOrderUoW, *MockOrderUoWFactory) {
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	return uow, factory
}

func TestUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := storedOrder(t, order.Received, []*order.OrderItem{storedItem(t, "burger", 1, 25.0)})
	cmd, err := commands.NewUpdateOrderStatusCommand(aggregate.ID(), order.Preparing)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow, factory := newTransitioningUoW(ctx, repo, aggregate)

	stock := new(MockStockGateway)

	h := commands.NewUpdateOrderStatusCommandHandler(factory, stock, nil, discardLogger())
	response, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Preparing, aggregate.Status())
	assert.Contains(t, response.Message, aggregate.ID().String())
	assert.Contains(t, response.Message, "Preparing")
	stock.AssertNotCalled(t, "Decrement", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_ReceivedDecrementsStock(t *testing.T) {
	ctx := t.Context()
	aggregate := storedOrder(t, order.Pending, []*order.OrderItem{
		storedItem(t, "burger", 2, 25.0),
		storedItem(t, "fries", 1, 9.5),
	})
	cmd, err := commands.NewUpdateOrderStatusCommand(aggregate.ID(), order.Received)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	_, factory := newTransitioningUoW(ctx, repo, aggregate)

	stock := new(MockStockGateway)
	mock.InOrder(
		stock.On("Decrement", ctx, "burger", 2).Return(nil).Once(),
		stock.On("Decrement", ctx, "fries", 1).Return(nil).Once(),
	)

	h := commands.NewUpdateOrderStatusCommandHandler(factory, stock, nil, discardLogger())
	_, err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Received, aggregate.Status())
	stock.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_DecrementFailureAborts(t *testing.T) {
	ctx := t.Context()
	aggregate := storedOrder(t, order.Pending, []*order.OrderItem{
		storedItem(t, "burger", 2, 25.0),
		storedItem(t, "fries", 1, 9.5),
		storedItem(t, "soda", 3, 4.25),
	})
	cmd, err := commands.NewUpdateOrderStatusCommand(aggregate.ID(), order.Received)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	_, factory := newTransitioningUoW(ctx, repo, aggregate)

	stock := new(MockStockGateway)
	mock.InOrder(
		stock.On("Decrement", ctx, "burger", 2).Return(nil).Once(),
		stock.On("Decrement", ctx, "fries", 1).Return(errors.New("stock service unavailable")).Once(),
	)

	h := commands.NewUpdateOrderStatusCommandHandler(factory, stock, nil, discardLogger())
	_, err = h.Handle(ctx, cmd)

	// The status stays persisted and the first decrement stands; there is no
	// rollback for either.
	require.Error(t, err)
	assert.Equal(t, order.Received, aggregate.Status())
	stock.AssertExpectations(t)
	stock.AssertNotCalled(t, "Decrement", ctx, "soda", 3)
}

func TestUpdateOrderStatusCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	aggregate := storedOrder(t, order.Pending, []*order.OrderItem{storedItem(t, "burger", 1, 25.0)})
	cmd, err := commands.NewUpdateOrderStatusCommand(aggregate.ID(), order.Ready)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	stock := new(MockStockGateway)

	h := commands.NewUpdateOrderStatusCommandHandler(factory, stock, nil, discardLogger())
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrStatusSequenceViolation)
	assert.Equal(t, order.Pending, aggregate.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	stock.AssertNotCalled(t, "Decrement", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, order.Received)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, orderID).
			Return(nil, errs.NewObjectNotFoundError("order", orderID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, new(MockStockGateway), nil, discardLogger())
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUpdateOrderStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UpdateOrderStatusCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)

	h := commands.NewUpdateOrderStatusCommandHandler(factory, new(MockStockGateway), nil, discardLogger())
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestUpdateOrderStatusCommandHandler_Handle_PublishesStatusChange(t *testing.T) {
	ctx := t.Context()
	aggregate := storedOrder(t, order.Received, []*order.OrderItem{storedItem(t, "burger", 1, 25.0)})
	cmd, err := commands.NewUpdateOrderStatusCommand(aggregate.ID(), order.Preparing)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	_, factory := newTransitioningUoW(ctx, repo, aggregate)

	publisher := new(MockOrderEventPublisher)
	publisher.On("PublishStatusChanged", ctx, aggregate).Return(nil).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, new(MockStockGateway), publisher, discardLogger())
	_, err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	publisher.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_PublishFailureIsSwallowed(t *testing.T) {
	ctx := t.Context()
	aggregate := storedOrder(t, order.Received, []*order.OrderItem{storedItem(t, "burger", 1, 25.0)})
	cmd, err := commands.NewUpdateOrderStatusCommand(aggregate.ID(), order.Preparing)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	_, factory := newTransitioningUoW(ctx, repo, aggregate)

	publisher := new(MockOrderEventPublisher)
	publisher.On("PublishStatusChanged", ctx, aggregate).
		Return(errors.New("broker unreachable")).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, new(MockStockGateway), publisher, discardLogger())
	response, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.NotEmpty(t, response.Message)
	publisher.AssertExpectations(t)
}
