package order

import (
	"errors"
	"fmt"

	"fastorder/internal/core/domain/model/kernel"
	"fastorder/internal/pkg/errs"
	"fastorder/internal/pkg/guard"
)

// ErrOrderItemIsNotConstructed is returned when an OrderItem instance was not
// created through NewOrderItem or RestoreOrderItem.
var ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")

// OrderItem is one priced line of an order. The price is the authoritative
// value taken from the stock snapshot at validation time, never the value the
// caller declared.
//
// Invariants:
//   - itemID must not be empty
//   - quantity must be greater than 0
//   - price must be greater than 0
//
// The orderID is a back-reference assigned once the owning order has an
// identity; it is not set at construction time.
type OrderItem struct {
	itemID   string
	orderID  *kernel.UUID
	quantity int
	price    kernel.Money

	guard guard.ConstructorGuard
}

// NewOrderItem creates a priced order line. All invariants are checked and
// violations are aggregated into a single error.
func NewOrderItem(itemID string, quantity int, price kernel.Money) (*OrderItem, error) {
	item := &OrderItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setItemID(itemID),
		item.SetQuantity(quantity),
		item.SetPrice(price),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreOrderItem reconstructs an order line from persistence, including the
// back-reference to its owning order.
func RestoreOrderItem(itemID string, orderID kernel.UUID, quantity int, price kernel.Money) (*OrderItem, error) {
	item, err := NewOrderItem(itemID, quantity, price)
	if err != nil {
		return nil, err
	}
	if err = item.SetOrderID(orderID); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the item was created through a constructor function.
func (i *OrderItem) Validate() error {
	if i == nil {
		return ErrOrderItemIsNotConstructed
	}
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}

// ItemID returns the external catalog identifier of the ordered item.
func (i *OrderItem) ItemID() string {
	return i.itemID
}

// OrderID returns the owning order's identifier, or nil when not yet assigned.
func (i *OrderItem) OrderID() *kernel.UUID {
	return i.orderID
}

// Quantity returns the ordered quantity.
func (i *OrderItem) Quantity() int {
	return i.quantity
}

// Price returns the authoritative unit price.
func (i *OrderItem) Price() kernel.Money {
	return i.price
}

// Subtotal returns price multiplied by quantity.
func (i *OrderItem) Subtotal() kernel.Money {
	return kernel.NewMoneyFromCents(i.price.Cents() * int64(i.quantity))
}

// SetQuantity replaces the ordered quantity. Rejects non-positive values.
func (i *OrderItem) SetQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	i.quantity = quantity
	return nil
}

// SetPrice replaces the unit price. Rejects non-positive amounts.
func (i *OrderItem) SetPrice(price kernel.Money) error {
	if err := price.ValidatePositive("price"); err != nil {
		return err
	}
	i.price = price
	return nil
}

// SetOrderID assigns the back-reference to the owning order.
// Rejects an unconstructed UUID.
func (i *OrderItem) SetOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	i.orderID = &orderID
	return nil
}

func (i *OrderItem) setItemID(itemID string) error {
	if itemID == "" {
		return errs.NewValueIsRequiredError("itemID")
	}
	i.itemID = itemID
	return nil
}
