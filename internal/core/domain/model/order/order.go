package order

import (
	"errors"
	"fmt"
	"time"

	"fastorder/internal/core/domain/model/kernel"
	"fastorder/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrNoItemsProvided is returned when an order is constructed with an
	// empty item list.
	ErrNoItemsProvided = errors.New("order must contain at least one item")

	// ErrInvalidItemPricing is returned when any item carries a non-positive
	// price or quantity at order construction time.
	ErrInvalidItemPricing = errors.New("order item has invalid price or quantity")
)

// Order is the aggregate root for the ordering lifecycle: a priced collection
// of order items plus a status value.
//
// Invariants:
//   - the item list is never empty
//   - totalAmount always equals the sum over items of price × quantity,
//     rounded to cents; it is computed at construction and never mutated
//     independently
//   - status transitions follow the state machine defined on Status
//   - can only be created through NewOrder or RestoreOrder
type Order struct {
	id          kernel.UUID
	customerID  *string
	status      Status
	items       []*OrderItem
	totalAmount kernel.Money
	createdAt   time.Time
	updatedAt   time.Time

	clock func() time.Time
	guard guard.ConstructorGuard
}

// Option customizes order construction. Options exist for every attribute the
// caller may supply instead of the default (generated id, Pending status,
// "now" timestamps, wall clock).
type Option func(*Order)

// WithID sets a caller-supplied identity instead of generating one.
func WithID(id kernel.UUID) Option {
	return func(o *Order) { o.id = id }
}

// WithStatus sets the initial status instead of defaulting to Pending.
func WithStatus(status Status) Option {
	return func(o *Order) { o.status = status }
}

// WithCustomerID links the order to a resolved customer.
func WithCustomerID(customerID string) Option {
	return func(o *Order) { o.customerID = &customerID }
}

// WithCreatedAt sets the creation timestamp instead of reading the clock.
func WithCreatedAt(createdAt time.Time) Option {
	return func(o *Order) { o.createdAt = createdAt }
}

// WithUpdatedAt sets the last-update timestamp instead of reading the clock.
func WithUpdatedAt(updatedAt time.Time) Option {
	return func(o *Order) { o.updatedAt = updatedAt }
}

// WithClock injects the time source used for default timestamps and for
// refreshing updatedAt on status transitions. Defaults to time.Now.
func WithClock(clock func() time.Time) Option {
	return func(o *Order) { o.clock = clock }
}

// NewOrder creates an Order from a non-empty item list.
//
// Defaults applied when no option overrides them: a generated UUID, Pending
// status, and both timestamps read from the clock. Each item receives the
// order's id as its back-reference.
//
// Fails with ErrNoItemsProvided for an empty list and with
// ErrInvalidItemPricing when any item has a non-positive price or quantity.
func NewOrder(items []*OrderItem, opts ...Option) (*Order, error) {
	o := &Order{
		clock: time.Now,
		guard: guard.NewConstructorGuard(),
	}

	for _, opt := range opts {
		opt(o)
	}

	if o.id.Validate() != nil {
		o.id = kernel.NewUUID()
	}
	if o.status == Unknown {
		o.status = Pending
	}
	if err := o.status.Validate(); err != nil {
		return nil, err
	}

	if err := o.setItems(items); err != nil {
		return nil, err
	}
	o.totalAmount = computeTotal(items)

	now := o.clock()
	if o.createdAt.IsZero() {
		o.createdAt = now
	}
	if o.updatedAt.IsZero() {
		o.updatedAt = now
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. The total is recomputed
// from the restored items so the pricing invariant holds regardless of what
// was stored.
func RestoreOrder(
	id kernel.UUID,
	customerID *string,
	status Status,
	items []*OrderItem,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	opts := []Option{
		WithID(id),
		WithStatus(status),
		WithCreatedAt(createdAt),
		WithUpdatedAt(updatedAt),
	}
	if customerID != nil {
		opts = append(opts, WithCustomerID(*customerID))
	}

	return NewOrder(items, opts...)
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the linked customer id, or nil for an anonymous order.
func (o *Order) CustomerID() *string {
	return o.customerID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the ordered line items, in input order.
func (o *Order) Items() []*OrderItem {
	return o.items
}

// TotalAmount returns the computed order total.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last status transition.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// UpdateStatus transitions the order to next following the state machine
// defined on Status. On success the status is assigned and updatedAt is
// refreshed from the clock. State-machine errors are returned unchanged.
func (o *Order) UpdateStatus(next Status) error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Transition(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = o.clock()
	return nil
}

func (o *Order) setItems(items []*OrderItem) error {
	if len(items) == 0 {
		return ErrNoItemsProvided
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidItemPricing, err)
		}
		if item.Quantity() <= 0 || !item.Price().IsPositive() {
			return fmt.Errorf("%w: item %s", ErrInvalidItemPricing, item.ItemID())
		}
		if err := item.SetOrderID(o.id); err != nil {
			return err
		}
	}

	o.items = items
	return nil
}

// computeTotal sums price × quantity over all items in cents.
func computeTotal(items []*OrderItem) kernel.Money {
	total := kernel.Money{}
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}
