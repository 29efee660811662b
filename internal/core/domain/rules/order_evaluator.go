package rules

import (
	"context"
	"fmt"

	"governance/internal/core/domain/model/order"
)

// OrderEvaluator checks candidate orders:
//  1. the customer belongs to the organization
//  2. the total matches the sum of item lines
//  3. the due date is at least a day and at most a year away
//  4. the profit margin is at least 10%
//  5. no item quantity exceeds 1000
type OrderEvaluator struct{}

var _ Evaluator[order.Payload] = OrderEvaluator{}

func NewOrderEvaluator() OrderEvaluator {
	return OrderEvaluator{}
}

func (OrderEvaluator) Evaluate(ctx context.Context, ec EvaluationContext, p order.Payload) Report {
	return runChecks(ctx, ec, p,
		checkCustomerOrg,
		checkOrderTotal,
		checkOrderDueDate,
		checkProfitMargin,
		checkItemQuantities,
	)
}

func checkCustomerOrg(ctx context.Context, ec EvaluationContext, p order.Payload) ([]Violation, error) {
	if p.CustomerID == nil || p.OrgID == nil {
		return nil, nil
	}

	customer, err := ec.Data.CustomerByID(ctx, *p.CustomerID)
	if err != nil {
		if isNotFound(err) {
			return []Violation{NewError("customerId", CodeInvalidCustomerOrg,
				fmt.Sprintf("Customer %s does not exist", *p.CustomerID))}, nil
		}
		return nil, fmt.Errorf("fetch customer %s: %w", p.CustomerID, err)
	}
	if !customer.BelongsTo(*p.OrgID) {
		return []Violation{NewError("customerId", CodeInvalidCustomerOrg,
			"Customer does not belong to the specified organization")}, nil
	}
	return nil, nil
}

func checkOrderTotal(_ context.Context, _ EvaluationContext, p order.Payload) ([]Violation, error) {
	if p.Items == nil || p.TotalAmount == nil {
		return nil, nil
	}

	var calculated float64
	for _, item := range p.Items {
		calculated += float64(item.Quantity) * item.PriceSnapshot
	}
	if v, ok := totalMismatch("totalAmount", calculated, *p.TotalAmount); ok {
		return []Violation{v}, nil
	}
	return nil, nil
}

func checkOrderDueDate(_ context.Context, ec EvaluationContext, p order.Payload) ([]Violation, error) {
	if p.DueDate == nil {
		return nil, nil
	}
	if v, ok := dueDateTooSoon("dueDate", ec.Now, *p.DueDate); ok {
		return []Violation{v}, nil
	}
	if wholeDaysUntil(ec.Now, *p.DueDate) > maxLeadTimeDays {
		return []Violation{NewWarning("dueDate", CodeDueDateTooFar,
			"Due date is more than one year in the future")}, nil
	}
	return nil, nil
}

func checkProfitMargin(_ context.Context, _ EvaluationContext, p order.Payload) ([]Violation, error) {
	if p.RevenueEstimate == nil || p.TotalAmount == nil || *p.TotalAmount == 0 {
		return nil, nil
	}

	margin := *p.RevenueEstimate / *p.TotalAmount * 100
	if margin < minProfitMarginPct {
		return []Violation{NewWarning("revenueEstimate", CodeLowProfitMargin, fmt.Sprintf(
			"Profit margin %.1f%% is below the recommended %.0f%%", margin, minProfitMarginPct))}, nil
	}
	return nil, nil
}

func checkItemQuantities(_ context.Context, _ EvaluationContext, p order.Payload) ([]Violation, error) {
	var vs []Violation
	for i, item := range p.Items {
		if item.Quantity > highItemQuantity {
			vs = append(vs, NewWarning(fmt.Sprintf("items[%d].quantity", i), CodeHighQuantity, fmt.Sprintf(
				"Quantity %d is unusually high, please confirm", item.Quantity)))
		}
	}
	return vs, nil
}
