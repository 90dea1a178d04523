package ports

import (
	"context"

	"fastorder/internal/core/domain/model/order"
)

// OrderEventPublisher notifies interested consumers about order lifecycle
// changes. Publishing is best-effort: callers log failures but do not fail
// the use case over them.
type OrderEventPublisher interface {
	PublishStatusChanged(ctx context.Context, aggregate *order.Order) error
}
