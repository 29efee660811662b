package rules

import (
	"context"
	"fmt"

	"governance/internal/core/domain/model/kernel"
	"governance/internal/core/domain/model/workorder"
)

// WorkOrderEvaluator checks candidate work orders.
type WorkOrderEvaluator struct{}

var _ Evaluator[workorder.Payload] = WorkOrderEvaluator{}

func NewWorkOrderEvaluator() WorkOrderEvaluator {
	return WorkOrderEvaluator{}
}

func (WorkOrderEvaluator) Evaluate(ctx context.Context, ec EvaluationContext, p workorder.Payload) Report {
	return runChecks(ctx, ec, p,
		func(ctx context.Context, ec EvaluationContext, p workorder.Payload) ([]Violation, error) {
			return checkOrderItemExists(ctx, ec, p.OrderID, p.OrderItemID)
		},
		checkWorkOrderQuantity,
		checkWorkOrderDates,
		checkManufacturerWorkload,
	)
}

func checkWorkOrderQuantity(_ context.Context, _ EvaluationContext, p workorder.Payload) ([]Violation, error) {
	if p.Quantity != nil && *p.Quantity <= 0 {
		return []Violation{NewError("quantity", CodeInvalidQuantity, "Quantity must be greater than 0")}, nil
	}
	return nil, nil
}

func checkWorkOrderDates(_ context.Context, _ EvaluationContext, p workorder.Payload) ([]Violation, error) {
	if p.PlannedStartDate == nil || p.PlannedEndDate == nil {
		return nil, nil
	}
	if p.PlannedEndDate.Before(*p.PlannedStartDate) {
		return []Violation{NewError("plannedEndDate", CodeInvalidDateRange,
			"Planned end date must not be before planned start date")}, nil
	}
	return nil, nil
}

func checkManufacturerWorkload(ctx context.Context, ec EvaluationContext, p workorder.Payload) ([]Violation, error) {
	if p.ManufacturerID == nil {
		return nil, nil
	}

	orders, err := ec.Data.WorkOrdersByManufacturer(ctx, *p.ManufacturerID)
	if err != nil {
		return nil, fmt.Errorf("fetch work orders of %s: %w", p.ManufacturerID, err)
	}

	active := countOtherActive(orders, p.ID,
		func(w workorder.Snapshot) kernel.UUID { return w.ID },
		func(w workorder.Snapshot) bool { return w.Status.IsActive() },
	)
	if active > ManufacturerWorkOrderLimit {
		return []Violation{NewWarning("manufacturerId", CodeManufacturerOverloaded, fmt.Sprintf(
			"Manufacturer already has %d active work orders (limit %d)", active, ManufacturerWorkOrderLimit))}, nil
	}
	return nil, nil
}
