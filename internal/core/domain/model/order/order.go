package order

import (
	"errors"
	"fmt"
	"time"

	"governance/internal/core/domain/model/kernel"
	"governance/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root for a customer order and its items.
//
// Order follows these invariants:
//   - Must have valid order, organization and customer identifiers
//   - Must have at least one item; every item has a positive quantity
//     and a non-negative price snapshot
//   - Total amount is never negative
//   - Status changes follow the order transition table
//
// Cross-field and cross-entity rules (totals matching items, customer belonging
// to the organization, due-date sanity) are evaluated before persistence by
// the rules package and are deliberately not re-checked here.
type Order struct {
	id              kernel.UUID
	orgID           kernel.UUID
	customerID      kernel.UUID
	items           []Item
	totalAmount     float64
	revenueEstimate *float64
	dueDate         *time.Time
	status          Status

	isConstructed bool
}

// NewOrder creates an order in Draft status.
func NewOrder(
	id, orgID, customerID kernel.UUID,
	items []Item,
	totalAmount float64,
	revenueEstimate *float64,
	dueDate *time.Time,
) (*Order, error) {
	return RestoreOrder(id, orgID, customerID, items, totalAmount, revenueEstimate, dueDate, Draft)
}

// RestoreOrder rebuilds an order from persisted state, validating it the same
// way NewOrder does.
func RestoreOrder(
	id, orgID, customerID kernel.UUID,
	items []Item,
	totalAmount float64,
	revenueEstimate *float64,
	dueDate *time.Time,
	status Status,
) (*Order, error) {
	o := &Order{
		revenueEstimate: revenueEstimate,
		dueDate:         dueDate,
		isConstructed:   true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrgID(orgID),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setTotalAmount(totalAmount),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.UUID { return o.id }
func (o *Order) OrgID() kernel.UUID { return o.orgID }
func (o *Order) CustomerID() kernel.UUID { return o.customerID }
func (o *Order) TotalAmount() float64 { return o.totalAmount }
func (o *Order) RevenueEstimate() *float64 { return o.revenueEstimate }
func (o *Order) DueDate() *time.Time { return o.dueDate }
func (o *Order) Status() Status { return o.status }

// Items returns a copy of the order items.
func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

// ChangeStatus moves the order to next if the transition table allows it.
// Changing to the current status is a no-op.
func (o *Order) ChangeStatus(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if !o.status.CanTransitionTo(next) {
		return errs.NewTransitionIsInvalidError("order", o.status.String(), next.String())
	}
	o.status = next
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrgID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orgId", err)
	}
	o.orgID = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", i), err)
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setTotalAmount(total float64) error {
	if total < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalAmount", fmt.Errorf("%.2f is negative", total))
	}
	o.totalAmount = total
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
