package rules

import (
	"context"
	"fmt"

	"governance/internal/core/domain/model/inventory"
)

// InventoryEvaluator checks candidate inventory records.
type InventoryEvaluator struct{}

var _ Evaluator[inventory.Payload] = InventoryEvaluator{}

func NewInventoryEvaluator() InventoryEvaluator {
	return InventoryEvaluator{}
}

func (InventoryEvaluator) Evaluate(ctx context.Context, ec EvaluationContext, p inventory.Payload) Report {
	return runChecks(ctx, ec, p,
		checkInventoryMaterial,
		checkInventoryQuantities,
		checkInventoryReorderLevel,
	)
}

func checkInventoryMaterial(ctx context.Context, ec EvaluationContext, p inventory.Payload) ([]Violation, error) {
	if p.MaterialID == nil {
		return nil, nil
	}
	if _, err := ec.Data.MaterialByID(ctx, *p.MaterialID); err != nil {
		if isNotFound(err) {
			return []Violation{NewError("materialId", CodeMaterialNotFound,
				fmt.Sprintf("Material %s does not exist", p.MaterialID))}, nil
		}
		return nil, fmt.Errorf("fetch material %s: %w", p.MaterialID, err)
	}
	return nil, nil
}

func checkInventoryQuantities(_ context.Context, _ EvaluationContext, p inventory.Payload) ([]Violation, error) {
	var vs []Violation
	if p.QuantityOnHand != nil && *p.QuantityOnHand < 0 {
		vs = append(vs, NewError("quantityOnHand", CodeNegativeStock, "Quantity on hand must not be negative"))
	}
	if p.QuantityReserved != nil && *p.QuantityReserved < 0 {
		vs = append(vs, NewError("quantityReserved", CodeNegativeStock, "Reserved quantity must not be negative"))
	}
	if p.QuantityOnHand != nil && p.QuantityReserved != nil && *p.QuantityReserved > *p.QuantityOnHand {
		vs = append(vs, NewError("quantityReserved", CodeInvalidReservation, fmt.Sprintf(
			"Reserved quantity %.2f exceeds quantity on hand %.2f", *p.QuantityReserved, *p.QuantityOnHand)))
	}
	return vs, nil
}

func checkInventoryReorderLevel(_ context.Context, _ EvaluationContext, p inventory.Payload) ([]Violation, error) {
	if p.QuantityOnHand == nil || p.ReorderLevel == nil {
		return nil, nil
	}
	if *p.QuantityOnHand <= *p.ReorderLevel {
		return []Violation{NewWarning("quantityOnHand", CodeLowStock, fmt.Sprintf(
			"Stock %.2f is at or below the reorder level %.2f", *p.QuantityOnHand, *p.ReorderLevel))}, nil
	}
	return nil, nil
}
