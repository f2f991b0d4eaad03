package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control across the onboarding aggregates so that a
// resolution touching the courier, its logistics profile, and the staged
// request either applies completely or not at all.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// CourierRepository returns a CourierRepository bound to the current
	// transaction, or to the base connection when none is active.
	CourierRepository() CourierRepository

	// LogisticsRepository returns a LogisticsRepository bound to the current
	// transaction, or to the base connection when none is active.
	LogisticsRepository() LogisticsRepository

	// PersonRepository returns a PersonRepository bound to the current
	// transaction, or to the base connection when none is active.
	PersonRepository() PersonRepository

	// PendingUpdateRepository returns a PendingUpdateRepository bound to the
	// current transaction, or to the base connection when none is active.
	PendingUpdateRepository() PendingUpdateRepository
}
