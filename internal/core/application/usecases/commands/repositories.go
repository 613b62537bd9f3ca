// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"orderdelivery/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// UserRepoFactory provides access to the user repository within a
	// transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// ProofRepoFactory provides access to the proof repository within a
	// transaction.
	ProofRepoFactory interface {
		ProofRepository() ports.ProofRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions spanning order and user lookups, used by
	// operations that must verify a user before touching an order.
	UoW interface {
		TxManager
		OrderRepoFactory
		UserRepoFactory
	}

	// UoWFactory creates new unit of work instances for order+user operations.
	UoWFactory interface {
		Create() UoW
	}

	// ProofUoW manages transactions spanning orders and proof records.
	// The proof-upload operation writes both within one transaction so a
	// reader never observes a proof without the confirmed status.
	ProofUoW interface {
		TxManager
		OrderRepoFactory
		ProofRepoFactory
	}

	// ProofUoWFactory creates new unit of work instances for proof operations.
	ProofUoWFactory interface {
		Create() ProofUoW
	}
)
