// Package commands contains business operations that modify system state.
// Each use case follows the same shape: a validated command object, a handler
// holding the outbound ports it needs, and explicit transaction management
// through a unit of work. External services (stock, customer, payment) are
// called outside the transaction boundary; the known partial-failure windows
// this opens are deliberate and documented on the handlers.
package commands

import (
	"context"

	"fastorder/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages transactions for order operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
