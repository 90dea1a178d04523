package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"fastorder/internal/core/ports"
)

// CustomerClient implements ports.CustomerProvider against the customer
// service's REST API.
type CustomerClient struct {
	baseURL string
	client  *http.Client
}

// NewCustomerClient creates a customer service client for the given base URL.
func NewCustomerClient(baseURL string) *CustomerClient {
	return &CustomerClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultRequestTimeout},
	}
}

// FindByIdentifier looks up a customer by the normalized CPF digit string.
// Returns (nil, nil) when the customer service has no match.
func (c *CustomerClient) FindByIdentifier(ctx context.Context, identifier string) (*ports.Customer, error) {
	url := fmt.Sprintf("%s/customers/%s", c.baseURL, identifier)
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
		return nil, fmt.Errorf("customer service returned status %d", resp.StatusCode)
	}

	var payload struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding customer response: %w", err)
	}

	return &ports.Customer{ID: payload.ID, Email: payload.Email}, nil
}
