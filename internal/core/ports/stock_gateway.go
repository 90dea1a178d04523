package ports

import "context"

// StockSnapshot is a point-in-time read of an item's authoritative price and
// available quantity from the external stock service. A snapshot is valid only
// for the instant it was fetched; there is no local cache and no staleness
// guarantee.
type StockSnapshot struct {
	ID       string
	Price    float64
	Quantity int
}

// StockGateway is the outbound contract with the external stock service.
type StockGateway interface {
	// GetSnapshot reads the current snapshot for an item.
	// Returns (nil, nil) when the item does not exist in stock.
	GetSnapshot(ctx context.Context, itemID string) (*StockSnapshot, error)

	// Decrement reduces an item's available quantity. Called once per order
	// item when an order moves to Received.
	Decrement(ctx context.Context, itemID string, quantity int) error
}
