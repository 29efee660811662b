package ports

import (
	"context"

	"governance/internal/core/domain/model/kernel"
	"governance/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates
// and their items.
type OrderRepository interface {
	// Add persists a new order with all of its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the order header. Items are written only by Add.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items by identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
