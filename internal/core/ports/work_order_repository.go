package ports

import (
	"context"

	"governance/internal/core/domain/model/kernel"
	"governance/internal/core/domain/model/workorder"
)

// WorkOrderRepository defines the persistence contract for work orders.
type WorkOrderRepository interface {
	Add(ctx context.Context, aggregate *workorder.WorkOrder) error
	Update(ctx context.Context, aggregate *workorder.WorkOrder) error
	Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error)
}
