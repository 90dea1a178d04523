package ports

import "context"

// PaymentRequest carries everything the external payment service needs to
// open a payment record for an order.
type PaymentRequest struct {
	Email       string
	OrderID     string
	TotalAmount float64
}

// PaymentReceipt is the gateway's response: the payment identifier and the
// gateway's own status string, returned to the caller unchanged.
type PaymentReceipt struct {
	PaymentID string
	Status    string
}

// PaymentGateway is the outbound contract with the external payment service.
// Failures propagate unmodified; there is no retry.
type PaymentGateway interface {
	Initiate(ctx context.Context, request PaymentRequest) (*PaymentReceipt, error)
}
