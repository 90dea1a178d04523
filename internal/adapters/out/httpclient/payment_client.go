package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"fastorder/internal/core/ports"
)

// PaymentClient implements ports.PaymentGateway against the payment service's
// REST API. Gateway failures propagate unchanged; the core never retries.
type PaymentClient struct {
	baseURL string
	client  *http.Client
}

// NewPaymentClient creates a payment service client for the given base URL.
func NewPaymentClient(baseURL string) *PaymentClient {
	return &PaymentClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultRequestTimeout},
	}
}

// Initiate opens a payment record for an order and returns the gateway's
// receipt unchanged.
func (c *PaymentClient) Initiate(ctx context.Context, request ports.PaymentRequest) (*ports.PaymentReceipt, error) {
	body, err := json.Marshal(map[string]any{
		"email":       request.Email,
		"orderId":     request.OrderID,
		"totalAmount": request.TotalAmount,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/payments", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("payment service returned status %d for order %s", resp.StatusCode, request.OrderID)
	}

	var payload struct {
		PaymentID string `json:"paymentId"`
		Status    string `json:"status"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding payment response for order %s: %w", request.OrderID, err)
	}

	return &ports.PaymentReceipt{PaymentID: payload.PaymentID, Status: payload.Status}, nil
}
