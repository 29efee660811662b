package commands

import (
	"context"

	"governance/internal/core/domain/model/kernel"
	"governance/internal/core/domain/model/order"
)

// CreateOrderCommandHandler persists new orders with their items.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle builds the order aggregate in draft status and adds it in a single transaction.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items := make([]order.Item, 0, len(cmd.Items()))
	for _, in := range cmd.Items() {
		item, err := order.NewItem(kernel.NewUUID(), in.ProductName, in.Quantity, in.PriceSnapshot)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(), cmd.OrgID(), cmd.CustomerID(),
		items, cmd.TotalAmount(), cmd.RevenueEstimate(), cmd.DueDate(),
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

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
