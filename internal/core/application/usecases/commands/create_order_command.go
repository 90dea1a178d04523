package commands

import (
	"errors"

	"fastorder/internal/core/domain/services"
	"fastorder/internal/pkg/errs"
	"fastorder/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to create a new order: the requested
// item lines plus an optional raw customer identifier (CPF). The identifier is
// kept raw here; normalization and lookup happen inside the handler so that
// anonymous requests skip customer resolution entirely.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("111.444.777-35", []services.ItemRequest{
//	    {ItemID: "burger", Quantity: 2},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//	response, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerIdentifier string
	items              []services.ItemRequest

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Every requested line must carry an item id; quantities and the identifier
// are validated downstream by item processing and customer resolution.
func NewCreateOrderCommand(customerIdentifier string, items []services.ItemRequest) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		customerIdentifier: customerIdentifier,
		guard:              guard.NewConstructorGuard(),
	}

	if err := cmd.setItems(items); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerIdentifier returns the raw customer identifier, empty for anonymous
// requests.
func (c CreateOrderCommand) CustomerIdentifier() string {
	return c.customerIdentifier
}

// Items returns the requested item lines in input order.
func (c CreateOrderCommand) Items() []services.ItemRequest {
	return c.items
}

func (c *CreateOrderCommand) setItems(items []services.ItemRequest) error {
	for _, item := range items {
		if item.ItemID == "" {
			return errs.NewValueIsRequiredError("itemID")
		}
	}

	c.items = items
	return nil
}
