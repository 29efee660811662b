package commands

import (
	"errors"
	"fmt"
	"time"

	"governance/internal/core/domain/model/kernel"
	"governance/internal/pkg/guard"
)

var ErrCreateWorkOrderCommandIsNotConstructed = errors.New(
	"CreateWorkOrderCommand must be created via NewCreateWorkOrderCommand constructor",
)

// CreateWorkOrderCommand represents a request to produce an order item at a manufacturer.
type CreateWorkOrderCommand struct { //nolint:recvcheck //using for validation
	workOrderID    kernel.UUID
	orderID        kernel.UUID
	orderItemID    kernel.UUID
	manufacturerID kernel.UUID
	quantity       int
	plannedStart   *time.Time
	plannedEnd     *time.Time

	guard guard.ConstructorGuard
}

func NewCreateWorkOrderCommand(
	workOrderID, orderID, orderItemID, manufacturerID kernel.UUID,
	quantity int,
	plannedStart, plannedEnd *time.Time,
) (CreateWorkOrderCommand, error) {
	cmd := CreateWorkOrderCommand{
		plannedStart: plannedStart,
		plannedEnd:   plannedEnd,
		guard:        guard.NewConstructorGuard(),
	}

	var quantityErr error
	if quantity <= 0 {
		quantityErr = fmt.Errorf("quantity must be greater than 0, got %d", quantity)
	}

	if err := errors.Join(
		validateID("workOrderId", workOrderID, &cmd.workOrderID),
		validateID("orderId", orderID, &cmd.orderID),
		validateID("orderItemId", orderItemID, &cmd.orderItemID),
		validateID("manufacturerId", manufacturerID, &cmd.manufacturerID),
		quantityErr,
	); err != nil {
		return CreateWorkOrderCommand{}, err
	}
	cmd.quantity = quantity

	return cmd, nil
}

func (c CreateWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateWorkOrderCommandIsNotConstructed)
}

func (c CreateWorkOrderCommand) WorkOrderID() kernel.UUID { return c.workOrderID }
func (c CreateWorkOrderCommand) OrderID() kernel.UUID { return c.orderID }
func (c CreateWorkOrderCommand) OrderItemID() kernel.UUID { return c.orderItemID }
func (c CreateWorkOrderCommand) ManufacturerID() kernel.UUID { return c.manufacturerID }
func (c CreateWorkOrderCommand) Quantity() int { return c.quantity }
func (c CreateWorkOrderCommand) PlannedStart() *time.Time { return c.plannedStart }
func (c CreateWorkOrderCommand) PlannedEnd() *time.Time { return c.plannedEnd }
