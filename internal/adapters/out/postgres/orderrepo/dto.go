// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"sort"
	"time"

	"fastorder/internal/core/domain/model/kernel"
	"fastorder/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database row for an order aggregate.
type OrderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID *string   `gorm:"index"`
	Status     int
	TotalCents int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Items      []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName overrides GORM's default naming convention.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one priced order line. Position preserves the input
// order of the lines within their order.
type OrderItemDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID     string    `gorm:"primaryKey"`
	Position   int
	Quantity   int
	PriceCents int64
}

// TableName overrides GORM's default naming convention.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items[i] = OrderItemDTO{
			OrderID:    aggregate.ID().Bytes(),
			ItemID:     item.ItemID(),
			Position:   i,
			Quantity:   item.Quantity(),
			PriceCents: item.Price().Cents(),
		}
	}

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID(),
		Status:     int(aggregate.Status()),
		TotalCents: aggregate.TotalAmount().Cents(),
		CreatedAt:  aggregate.CreatedAt(),
		UpdatedAt:  aggregate.UpdatedAt(),
		Items:      items,
	}
}

// toDomain reconstructs an order aggregate from its database representation.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	sort.Slice(dto.Items, func(i, j int) bool {
		return dto.Items[i].Position < dto.Items[j].Position
	})

	items := make([]*order.OrderItem, len(dto.Items))
	for i, itemDTO := range dto.Items {
		item, itemErr := order.RestoreOrderItem(
			itemDTO.ItemID,
			id,
			itemDTO.Quantity,
			kernel.NewMoneyFromCents(itemDTO.PriceCents),
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items[i] = item
	}

	return order.RestoreOrder(id, dto.CustomerID, order.Status(dto.Status), items, dto.CreatedAt, dto.UpdatedAt)
}
