package commands

import (
	"context"
	"errors"

	"governance/internal/core/domain/model/kernel"
	"governance/internal/core/domain/model/workorder"
	"governance/internal/pkg/guard"
)

var ErrChangeWorkOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeWorkOrderStatusCommand must be created via NewChangeWorkOrderStatusCommand constructor",
)

// ChangeWorkOrderStatusCommand moves an existing work order to a new status.
type ChangeWorkOrderStatusCommand struct { //nolint:recvcheck //using for validation
	workOrderID kernel.UUID
	status      workorder.Status

	guard guard.ConstructorGuard
}

func NewChangeWorkOrderStatusCommand(workOrderID kernel.UUID, status workorder.Status) (ChangeWorkOrderStatusCommand, error) {
	cmd := ChangeWorkOrderStatusCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		validateID("workOrderId", workOrderID, &cmd.workOrderID),
		status.Validate(),
	); err != nil {
		return ChangeWorkOrderStatusCommand{}, err
	}
	cmd.status = status

	return cmd, nil
}

func (c ChangeWorkOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeWorkOrderStatusCommandIsNotConstructed)
}

func (c ChangeWorkOrderStatusCommand) WorkOrderID() kernel.UUID { return c.workOrderID }
func (c ChangeWorkOrderStatusCommand) Status() workorder.Status { return c.status }

// ChangeWorkOrderStatusCommandHandler applies a work order status change.
type ChangeWorkOrderStatusCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

func NewChangeWorkOrderStatusCommandHandler(uowFactory WorkOrderUoWFactory) ChangeWorkOrderStatusCommandHandler {
	return ChangeWorkOrderStatusCommandHandler{uowFactory: uowFactory}
}

func (h ChangeWorkOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeWorkOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.WorkOrderRepository()
	aggregate, err := repo.Get(ctx, cmd.WorkOrderID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
