package commands

import (
	"context"

	"governance/internal/core/domain/model/workorder"
)

// CreateWorkOrderCommandHandler persists new work orders in pending status.
type CreateWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

func NewCreateWorkOrderCommandHandler(uowFactory WorkOrderUoWFactory) CreateWorkOrderCommandHandler {
	return CreateWorkOrderCommandHandler{uowFactory: uowFactory}
}

func (h CreateWorkOrderCommandHandler) Handle(ctx context.Context, cmd CreateWorkOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := workorder.NewWorkOrder(
		cmd.WorkOrderID(), cmd.OrderID(), cmd.OrderItemID(), cmd.ManufacturerID(),
		cmd.Quantity(), cmd.PlannedStart(), cmd.PlannedEnd(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.WorkOrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
