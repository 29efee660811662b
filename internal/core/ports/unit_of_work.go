package ports

import (
	"context"
)

// UnitOfWorkFactory hands out one UnitOfWork per command so that concurrent
// commands never share a transaction.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of a command. Repositories obtained
// from it write through the open transaction; callers own Begin, Commit and
// Rollback.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	// Commit fails when no transaction is open.
	Commit(ctx context.Context) error
	// Rollback fails when no transaction is open.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	WorkOrderRepository() WorkOrderRepository
}
