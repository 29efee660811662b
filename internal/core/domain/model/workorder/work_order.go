package workorder

import (
	"errors"
	"fmt"
	"time"

	"governance/internal/core/domain/model/kernel"
	"governance/internal/pkg/errs"
)

// ErrWorkOrderIsNotConstructed is returned for WorkOrder values not built by a constructor.
var ErrWorkOrderIsNotConstructed = errors.New("WorkOrder must be created via NewWorkOrder constructor")

// WorkOrder is the aggregate root for a production request sent to a manufacturer.
type WorkOrder struct {
	id             kernel.UUID
	orderID        kernel.UUID
	orderItemID    kernel.UUID
	manufacturerID kernel.UUID
	quantity       int
	plannedStart   *time.Time
	plannedEnd     *time.Time
	status         Status

	isConstructed bool
}

// NewWorkOrder creates a work order in Pending status.
func NewWorkOrder(
	id, orderID, orderItemID, manufacturerID kernel.UUID,
	quantity int,
	plannedStart, plannedEnd *time.Time,
) (*WorkOrder, error) {
	return RestoreWorkOrder(id, orderID, orderItemID, manufacturerID, quantity, plannedStart, plannedEnd, Pending)
}

// RestoreWorkOrder rebuilds a work order from persisted state.
func RestoreWorkOrder(
	id, orderID, orderItemID, manufacturerID kernel.UUID,
	quantity int,
	plannedStart, plannedEnd *time.Time,
	status Status,
) (*WorkOrder, error) {
	var errList []error
	for name, v := range map[string]kernel.UUID{
		"id":             id,
		"orderId":        orderID,
		"orderItemId":    orderItemID,
		"manufacturerId": manufacturerID,
	} {
		if err := v.Validate(); err != nil {
			errList = append(errList, errs.NewValueIsRequiredErrorWithCause(name, err))
		}
	}
	if quantity <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity)))
	}
	if err := status.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &WorkOrder{
		id:             id,
		orderID:        orderID,
		orderItemID:    orderItemID,
		manufacturerID: manufacturerID,
		quantity:       quantity,
		plannedStart:   plannedStart,
		plannedEnd:     plannedEnd,
		status:         status,
		isConstructed:  true,
	}, nil
}

func (w *WorkOrder) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWorkOrderIsNotConstructed
	}
	return nil
}

func (w *WorkOrder) ID() kernel.UUID { return w.id }
func (w *WorkOrder) OrderID() kernel.UUID { return w.orderID }
func (w *WorkOrder) OrderItemID() kernel.UUID { return w.orderItemID }
func (w *WorkOrder) ManufacturerID() kernel.UUID { return w.manufacturerID }
func (w *WorkOrder) Quantity() int { return w.quantity }
func (w *WorkOrder) PlannedStart() *time.Time { return w.plannedStart }
func (w *WorkOrder) PlannedEnd() *time.Time { return w.plannedEnd }
func (w *WorkOrder) Status() Status { return w.status }

// ChangeStatus moves the work order to next if the transition table allows it.
func (w *WorkOrder) ChangeStatus(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if !w.status.CanTransitionTo(next) {
		return errs.NewTransitionIsInvalidError("work order", w.status.String(), next.String())
	}
	w.status = next
	return nil
}
