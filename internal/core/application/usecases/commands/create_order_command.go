package commands

import (
	"errors"
	"fmt"
	"time"

	"governance/internal/core/domain/model/kernel"
	"governance/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderItemsAreRequired = errors.New("at least one order item is required")
)

// OrderItemInput is one line of a CreateOrderCommand.
type OrderItemInput struct {
	ProductName   string
	Quantity      int
	PriceSnapshot float64
}

// CreateOrderCommand represents a request to create a new order in draft status.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), orgID, customerID,
//	    []OrderItemInput{{ProductName: "Mug", Quantity: 2, PriceSnapshot: 10}}, 20, nil, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	orgID           kernel.UUID
	customerID      kernel.UUID
	items           []OrderItemInput
	totalAmount     float64
	revenueEstimate *float64
	dueDate         *time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates identifiers and that at least one item is present.
func NewCreateOrderCommand(
	orderID, orgID, customerID kernel.UUID,
	items []OrderItemInput,
	totalAmount float64,
	revenueEstimate *float64,
	dueDate *time.Time,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		totalAmount:     totalAmount,
		revenueEstimate: revenueEstimate,
		dueDate:         dueDate,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		validateID("orderId", orderID, &cmd.orderID),
		validateID("orgId", orgID, &cmd.orgID),
		validateID("customerId", customerID, &cmd.customerID),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }
func (c CreateOrderCommand) OrgID() kernel.UUID { return c.orgID }
func (c CreateOrderCommand) CustomerID() kernel.UUID { return c.customerID }
func (c CreateOrderCommand) TotalAmount() float64 { return c.totalAmount }
func (c CreateOrderCommand) RevenueEstimate() *float64 { return c.revenueEstimate }
func (c CreateOrderCommand) DueDate() *time.Time { return c.dueDate }
func (c CreateOrderCommand) Items() []OrderItemInput { return append([]OrderItemInput(nil), c.items...) }

func (c *CreateOrderCommand) setItems(items []OrderItemInput) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}
	c.items = append([]OrderItemInput(nil), items...)
	return nil
}

func validateID(name string, id kernel.UUID, dst *kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = id
	return nil
}
