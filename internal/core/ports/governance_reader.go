// Package ports defines the contracts between the governance core and its
// infrastructure: repositories for the aggregates written by commands and the
// read-only lookup port used by business-rule evaluators.
package ports

import (
	"context"

	"governance/internal/core/domain/model/catalog"
	"governance/internal/core/domain/model/designjob"
	"governance/internal/core/domain/model/kernel"
	"governance/internal/core/domain/model/order"
	"governance/internal/core/domain/model/workorder"
)

// GovernanceReader is the data-access handle handed to rule evaluators.
// It is read-only by contract; evaluators never write through it.
//
// Single-entity lookups return *errs.ObjectNotFoundError when nothing
// matches, which evaluators report as a structural violation. Any other error
// is treated as an infrastructure failure.
type GovernanceReader interface {
	// CustomerByID fetches a customer together with its owning organization.
	CustomerByID(ctx context.Context, id kernel.UUID) (catalog.Customer, error)

	// OrderItemsByOrder lists every item of an order. An unknown order yields an empty list.
	OrderItemsByOrder(ctx context.Context, orderID kernel.UUID) ([]order.ItemSnapshot, error)

	// DesignJobsByAssignee lists every design job assigned to a designer, in any status.
	DesignJobsByAssignee(ctx context.Context, assigneeID kernel.UUID) ([]designjob.Snapshot, error)

	// WorkOrdersByManufacturer lists every work order of a manufacturer, in any status.
	WorkOrdersByManufacturer(ctx context.Context, manufacturerID kernel.UUID) ([]workorder.Snapshot, error)

	// MaterialByID fetches a material.
	MaterialByID(ctx context.Context, id kernel.UUID) (catalog.Material, error)

	// OrderStatus returns the current status of an order.
	OrderStatus(ctx context.Context, id kernel.UUID) (order.Status, error)

	// WorkOrderStatus returns the current status of a work order.
	WorkOrderStatus(ctx context.Context, id kernel.UUID) (workorder.Status, error)
}
