package rules

import (
	"context"
	"errors"
	"fmt"

	"governance/internal/core/domain/model/purchaseorder"
)

// PurchaseOrderEvaluator checks candidate purchase orders.
type PurchaseOrderEvaluator struct{}

var _ Evaluator[purchaseorder.Payload] = PurchaseOrderEvaluator{}

func NewPurchaseOrderEvaluator() PurchaseOrderEvaluator {
	return PurchaseOrderEvaluator{}
}

func (PurchaseOrderEvaluator) Evaluate(ctx context.Context, ec EvaluationContext, p purchaseorder.Payload) Report {
	return runChecks(ctx, ec, p,
		checkPurchaseOrderLines,
		checkPurchaseOrderTotal,
		checkPurchaseOrderDates,
		checkPurchaseOrderValue,
	)
}

func checkPurchaseOrderLines(ctx context.Context, ec EvaluationContext, p purchaseorder.Payload) ([]Violation, error) {
	var (
		vs      []Violation
		errList []error
	)
	for i, line := range p.Items {
		prefix := fmt.Sprintf("items[%d]", i)

		material, err := ec.Data.MaterialByID(ctx, line.MaterialID)
		switch {
		case isNotFound(err):
			vs = append(vs, NewError(prefix+".materialId", CodeMaterialNotFound,
				fmt.Sprintf("Material %s does not exist", line.MaterialID)))
		case err != nil:
			errList = append(errList, fmt.Errorf("fetch material %s: %w", line.MaterialID, err))
		case !material.Active:
			vs = append(vs, NewError(prefix+".materialId", CodeMaterialInactive,
				fmt.Sprintf("Material %s is inactive", material.Name)))
		}

		if line.Quantity <= 0 {
			vs = append(vs, NewError(prefix+".quantity", CodeInvalidQuantity, "Quantity must be greater than 0"))
		}
		if line.UnitCost < 0 {
			vs = append(vs, NewError(prefix+".unitCost", CodeInvalidUnitCost, "Unit cost must not be negative"))
		}
	}
	return vs, errors.Join(errList...)
}

func checkPurchaseOrderTotal(_ context.Context, _ EvaluationContext, p purchaseorder.Payload) ([]Violation, error) {
	if p.Items == nil || p.TotalAmount == nil {
		return nil, nil
	}

	var calculated float64
	for _, line := range p.Items {
		calculated += line.Quantity * line.UnitCost
	}
	if v, ok := totalMismatch("totalAmount", calculated, *p.TotalAmount); ok {
		return []Violation{v}, nil
	}
	return nil, nil
}

func checkPurchaseOrderDates(_ context.Context, _ EvaluationContext, p purchaseorder.Payload) ([]Violation, error) {
	if p.OrderDate == nil || p.ExpectedDeliveryDate == nil {
		return nil, nil
	}
	if p.ExpectedDeliveryDate.Before(*p.OrderDate) {
		return []Violation{NewError("expectedDeliveryDate", CodeInvalidDateRange,
			"Expected delivery date must not be before order date")}, nil
	}
	return nil, nil
}

func checkPurchaseOrderValue(_ context.Context, _ EvaluationContext, p purchaseorder.Payload) ([]Violation, error) {
	if p.TotalAmount != nil && *p.TotalAmount > highValuePOAmount {
		return []Violation{NewWarning("totalAmount", CodeHighValuePurchaseOrder, fmt.Sprintf(
			"Purchase order total %.2f requires additional approval", *p.TotalAmount))}, nil
	}
	return nil, nil
}
