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

// paymentFallbackDomain is the fixed domain used to synthesize a contact
// address for anonymous orders, so every order can receive a payment record.
const paymentFallbackDomain = "fastfood.com.br"

var (
	// ErrDuplicateOrderItems is returned when the request lists the same item
	// id more than once.
	ErrDuplicateOrderItems = errors.New("order request contains duplicated items")

	// ErrCustomerNotFound is returned when the supplied identifier matches no
	// registered customer.
	ErrCustomerNotFound = errors.New("customer not found")
)

// CreateOrderResponse is the result of a successful create-order run: the
// persisted aggregate and the payment gateway's receipt.
type CreateOrderResponse struct {
	Order   *order.Order
	Payment *ports.PaymentReceipt
}

// CreateOrderCommandHandler orchestrates order creation end to end:
// duplicate detection, optional customer resolution, per-item stock validation
// and pricing, aggregate construction, persistence, and payment initiation.
//
// Every step short-circuits the whole operation on failure. There is no
// compensation when payment initiation fails after the order was persisted;
// the order remains stored with no linked payment.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	customers  ports.CustomerProvider
	stock      ports.StockGateway
	payments   ports.PaymentGateway
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	customers ports.CustomerProvider,
	stock ports.StockGateway,
	payments ports.PaymentGateway,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		customers:  customers,
		stock:      stock,
		payments:   payments,
	}
}

// Handle runs the create-order sequence. The returned response carries the
// persisted order and the gateway's payment receipt.
func (h *CreateOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrderCommand,
) (CreateOrderResponse, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResponse{}, err
	}

	if len(cmd.Items()) > 0 && services.HasRepeatedItemIDs(cmd.Items()) {
		return CreateOrderResponse{}, ErrDuplicateOrderItems
	}

	customer, err := h.resolveCustomer(ctx, cmd.CustomerIdentifier())
	if err != nil {
		return CreateOrderResponse{}, err
	}

	items, err := processOrderItems(ctx, h.stock, cmd.Items())
	if err != nil {
		return CreateOrderResponse{}, err
	}

	var opts []order.Option
	if customer != nil {
		opts = append(opts, order.WithCustomerID(customer.ID))
	}

	aggregate, err := order.NewOrder(items, opts...)
	if err != nil {
		return CreateOrderResponse{}, err
	}

	if err = h.persist(ctx, aggregate); err != nil {
		return CreateOrderResponse{}, err
	}

	receipt, err := h.payments.Initiate(ctx, ports.PaymentRequest{
		Email:       paymentEmail(customer, aggregate),
		OrderID:     aggregate.ID().String(),
		TotalAmount: aggregate.TotalAmount().Float64(),
	})
	if err != nil {
		return CreateOrderResponse{}, err
	}

	return CreateOrderResponse{Order: aggregate, Payment: receipt}, nil
}

// resolveCustomer normalizes the raw identifier and looks the customer up.
// Skipped entirely when no identifier was supplied.
func (h *CreateOrderCommandHandler) resolveCustomer(
	ctx context.Context,
	rawIdentifier string,
) (*ports.Customer, error) {
	if rawIdentifier == "" {
		return nil, nil
	}

	cpf, err := kernel.NewCPF(rawIdentifier)
	if err != nil {
		return nil, err
	}

	customer, err := h.customers.FindByIdentifier(ctx, cpf.String())
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: %s", ErrCustomerNotFound, cpf)
	}

	return customer, nil
}

func (h *CreateOrderCommandHandler) persist(ctx context.Context, aggregate *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// paymentEmail returns the resolved customer's address, or a deterministic
// fallback derived from the order id for anonymous orders.
func paymentEmail(customer *ports.Customer, aggregate *order.Order) string {
	if customer != nil && customer.Email != "" {
		return customer.Email
	}
	return fmt.Sprintf("payment.order.id+%s@%s", aggregate.ID(), paymentFallbackDomain)
}
