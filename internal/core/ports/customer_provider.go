package ports

import "context"

// Customer is the snapshot returned by the external customer service.
type Customer struct {
	ID    string
	Email string
}

// CustomerProvider is the outbound contract with the external customer service.
type CustomerProvider interface {
	// FindByIdentifier looks up a customer by the normalized CPF digit string.
	// Returns (nil, nil) when no customer matches.
	FindByIdentifier(ctx context.Context, identifier string) (*Customer, error)
}
