// Package httpclient contains thin JSON/HTTP clients for the external
// services the ordering core depends on: stock, customer, and payment. Each
// client implements its outbound port and maps transport details (status
// codes, payload shapes) to the narrow contracts the core consumes. No
// retries or backoff: failures propagate to the caller unchanged.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"fastorder/internal/core/ports"
)

const defaultRequestTimeout = 10 * time.Second

// StockClient implements ports.StockGateway against the stock service's REST
// API.
type StockClient struct {
	baseURL string
	client  *http.Client
}

// NewStockClient creates a stock service client for the given base URL.
func NewStockClient(baseURL string) *StockClient {
	return &StockClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultRequestTimeout},
	}
}

// GetSnapshot reads the current stock snapshot for an item.
// Returns (nil, nil) when the stock service reports the item as unknown.
func (c *StockClient) GetSnapshot(ctx context.Context, itemID string) (*ports.StockSnapshot, error) {
	url := fmt.Sprintf("%s/items/%s", c.baseURL, itemID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stock service returned status %d for item %s", resp.StatusCode, itemID)
	}

	var payload struct {
		ID       string  `json:"id"`
		Price    float64 `json:"price"`
		Quantity int     `json:"quantity"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding stock snapshot for item %s: %w", itemID, err)
	}

	return &ports.StockSnapshot{
		ID:       payload.ID,
		Price:    payload.Price,
		Quantity: payload.Quantity,
	}, nil
}

// Decrement reduces an item's available quantity in the stock service.
func (c *StockClient) Decrement(ctx context.Context, itemID string, quantity int) error {
	body, err := json.Marshal(map[string]int{"quantity": quantity})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/items/%s/decrement", c.baseURL, itemID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("stock service returned status %d decrementing item %s", resp.StatusCode, itemID)
	}

	return nil
}
