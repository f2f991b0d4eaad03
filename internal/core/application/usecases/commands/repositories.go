// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"onboarding/internal/core/ports"
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

	// CourierRepoFactory provides access to courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// LogisticsRepoFactory provides access to logistics profile repository within a transaction.
	LogisticsRepoFactory interface {
		LogisticsRepository() ports.LogisticsRepository
	}

	// PersonRepoFactory provides access to person repository within a transaction.
	PersonRepoFactory interface {
		PersonRepository() ports.PersonRepository
	}

	// PendingUpdateRepoFactory provides access to staged update repository within a transaction.
	PendingUpdateRepoFactory interface {
		PendingUpdateRepository() ports.PendingUpdateRepository
	}

	// DecisionUoW manages transactions for registration decisions.
	// The courier write happens inside the transaction; the person read that
	// feeds post-commit side effects happens on the base connection afterwards.
	DecisionUoW interface {
		TxManager
		CourierRepoFactory
		PersonRepoFactory
	}

	// DecisionUoWFactory creates new decision unit of work instances.
	DecisionUoWFactory interface {
		Create() DecisionUoW
	}

	// ReconciliationUoW manages transactions for staged update resolutions.
	// A resolution touches the courier, its logistics profile, and the staged
	// request; all three writes share one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   courierRepo := uow.CourierRepository()
	//   requestRepo := uow.PendingUpdateRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	ReconciliationUoW interface {
		TxManager
		CourierRepoFactory
		LogisticsRepoFactory
		PendingUpdateRepoFactory
	}

	// ReconciliationUoWFactory creates new reconciliation unit of work instances.
	ReconciliationUoWFactory interface {
		Create() ReconciliationUoW
	}
)

// TaskDispatcher runs a named function outside the caller's request lifecycle.
// Command handlers use it to fire notification and event side effects after
// their transaction has committed, without blocking the response.
type TaskDispatcher interface {
	Submit(name string, fn func(ctx context.Context))
}
