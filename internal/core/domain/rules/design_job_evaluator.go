package rules

import (
	"context"
	"fmt"

	"governance/internal/core/domain/model/designjob"
	"governance/internal/core/domain/model/kernel"
)

// DesignJobEvaluator checks candidate design jobs.
type DesignJobEvaluator struct{}

var _ Evaluator[designjob.Payload] = DesignJobEvaluator{}

func NewDesignJobEvaluator() DesignJobEvaluator {
	return DesignJobEvaluator{}
}

func (DesignJobEvaluator) Evaluate(ctx context.Context, ec EvaluationContext, p designjob.Payload) Report {
	return runChecks(ctx, ec, p,
		func(ctx context.Context, ec EvaluationContext, p designjob.Payload) ([]Violation, error) {
			return checkOrderItemExists(ctx, ec, p.OrderID, p.OrderItemID)
		},
		checkDesignJobDueDate,
		checkDesignerWorkload,
	)
}

func checkDesignJobDueDate(_ context.Context, ec EvaluationContext, p designjob.Payload) ([]Violation, error) {
	if p.DueDate == nil {
		return nil, nil
	}
	if v, ok := dueDateTooSoon("dueDate", ec.Now, *p.DueDate); ok {
		return []Violation{v}, nil
	}
	return nil, nil
}

func checkDesignerWorkload(ctx context.Context, ec EvaluationContext, p designjob.Payload) ([]Violation, error) {
	if p.AssigneeID == nil {
		return nil, nil
	}

	jobs, err := ec.Data.DesignJobsByAssignee(ctx, *p.AssigneeID)
	if err != nil {
		return nil, fmt.Errorf("fetch design jobs of %s: %w", p.AssigneeID, err)
	}

	active := countOtherActive(jobs, p.ID,
		func(j designjob.Snapshot) kernel.UUID { return j.ID },
		func(j designjob.Snapshot) bool { return j.Status.IsActive() },
	)
	if active > DesignerJobLimit {
		return []Violation{NewWarning("assigneeId", CodeDesignerOverloaded, fmt.Sprintf(
			"Designer already has %d active design jobs (limit %d)", active, DesignerJobLimit))}, nil
	}
	return nil, nil
}

// checkOrderItemExists verifies that itemID is one of the items of orderID.
func checkOrderItemExists(ctx context.Context, ec EvaluationContext, orderID, itemID *kernel.UUID) ([]Violation, error) {
	if orderID == nil || itemID == nil {
		return nil, nil
	}

	items, err := ec.Data.OrderItemsByOrder(ctx, *orderID)
	if err != nil {
		if isNotFound(err) {
			items = nil
		} else {
			return nil, fmt.Errorf("fetch items of order %s: %w", orderID, err)
		}
	}

	for _, item := range items {
		if item.ID.IsEqual(*itemID) {
			return nil, nil
		}
	}
	return []Violation{NewError("orderItemId", CodeOrderItemNotFound,
		"Order item does not belong to the specified order")}, nil
}
