package rules

import (
	"context"
	"fmt"

	"governance/internal/core/domain/model/kernel"
	"governance/internal/core/domain/model/lifecycle"
	"governance/internal/core/domain/model/order"
	"governance/internal/core/domain/model/workorder"
	"governance/internal/core/ports"
)

// Status is satisfied by every entity status enum.
type Status interface {
	comparable
	String() string
	Validate() error
}

// StatusChange is a requested move of one entity from Current to Next.
type StatusChange[S Status] struct {
	EntityID kernel.UUID
	Current  S
	Next     S
}

// StatusRequest is a status change as received from a client: the target is
// still a wire code and the current status is not yet known.
type StatusRequest struct {
	EntityID   kernel.UUID `json:"-"`
	StatusCode string      `json:"statusCode"`
}

// Guard is an extra check run for structurally valid transitions into a
// particular status.
type Guard[S Status] func(ctx context.Context, ec EvaluationContext, change StatusChange[S]) ([]Violation, error)

// TransitionEvaluator validates status changes of one entity kind.
type TransitionEvaluator[S Status] struct {
	kind    lifecycle.Kind
	valid   func(from, to S) bool
	parse   func(code string) (S, error)
	current func(ctx context.Context, data ports.GovernanceReader, id kernel.UUID) (S, error)
	guards  map[S][]Guard[S]
}

// NewOrderTransitionEvaluator guards order status changes. Shipping requires
// every order item to be completed or cancelled; completing always carries a
// payment verification reminder.
func NewOrderTransitionEvaluator() *TransitionEvaluator[order.Status] {
	return &TransitionEvaluator[order.Status]{
		kind:  lifecycle.KindOrder,
		valid: order.IsValidTransition,
		parse: order.ParseStatus,
		current: func(ctx context.Context, data ports.GovernanceReader, id kernel.UUID) (order.Status, error) {
			return data.OrderStatus(ctx, id)
		},
		guards: map[order.Status][]Guard[order.Status]{
			order.Shipped:   {guardItemsFinished},
			order.Completed: {guardPaymentVerification},
		},
	}
}

// NewWorkOrderTransitionEvaluator validates work order status changes against the table only.
func NewWorkOrderTransitionEvaluator() *TransitionEvaluator[workorder.Status] {
	return &TransitionEvaluator[workorder.Status]{
		kind:  lifecycle.KindWorkOrder,
		valid: workorder.IsValidTransition,
		parse: workorder.ParseStatus,
		current: func(ctx context.Context, data ports.GovernanceReader, id kernel.UUID) (workorder.Status, error) {
			return data.WorkOrderStatus(ctx, id)
		},
	}
}

// Kind returns the entity kind whose transitions are evaluated.
func (e *TransitionEvaluator[S]) Kind() lifecycle.Kind {
	return e.kind
}

// Evaluate checks change against the transition table. An illegal transition
// yields a single INVALID_STATUS_TRANSITION and no guard runs.
func (e *TransitionEvaluator[S]) Evaluate(ctx context.Context, ec EvaluationContext, change StatusChange[S]) Report {
	if change.Next.Validate() != nil || !e.valid(change.Current, change.Next) {
		return Report{Violations: []Violation{invalidTransition(change.Current.String(), change.Next.String())}}
	}

	guards := e.guards[change.Next]
	checks := make([]check[StatusChange[S]], 0, len(guards))
	for _, g := range guards {
		checks = append(checks, check[StatusChange[S]](g))
	}
	return runChecks(ctx, ec, change, checks...)
}

// EvaluateRequest resolves the current status of the entity and evaluates the
// change. A missing entity is reported as ENTITY_NOT_FOUND; an unknown target
// code as INVALID_STATUS_TRANSITION. Failing to read the current status is
// returned as an error because no rule can be evaluated without it.
func (e *TransitionEvaluator[S]) EvaluateRequest(ctx context.Context, ec EvaluationContext, req StatusRequest) (Report, error) {
	current, err := e.current(ctx, ec.Data, req.EntityID)
	if err != nil {
		if isNotFound(err) {
			return Report{Violations: []Violation{NewError("id", CodeEntityNotFound,
				fmt.Sprintf("%s %s does not exist", e.kind, req.EntityID))}}, nil
		}
		return Report{}, fmt.Errorf("fetch %s status: %w", e.kind, err)
	}

	next, err := e.parse(req.StatusCode)
	if err != nil {
		return Report{Violations: []Violation{invalidTransition(current.String(), req.StatusCode)}}, nil
	}

	return e.Evaluate(ctx, ec, StatusChange[S]{EntityID: req.EntityID, Current: current, Next: next}), nil
}

func invalidTransition(from, to string) Violation {
	return NewError("statusCode", CodeInvalidStatusTransition,
		fmt.Sprintf("Invalid status transition from %s to %s", from, to))
}

func guardItemsFinished(ctx context.Context, ec EvaluationContext, change StatusChange[order.Status]) ([]Violation, error) {
	items, err := ec.Data.OrderItemsByOrder(ctx, change.EntityID)
	if err != nil {
		return nil, fmt.Errorf("fetch items of order %s: %w", change.EntityID, err)
	}

	unfinished := 0
	for _, item := range items {
		if !item.Status.IsFinished() {
			unfinished++
		}
	}
	if unfinished > 0 {
		return []Violation{NewError("statusCode", CodeIncompleteItemsCannotShip, fmt.Sprintf(
			"Cannot ship order: %d item(s) are not completed or cancelled", unfinished))}, nil
	}
	return nil, nil
}

// guardPaymentVerification is advisory only; no payment data is consulted.
func guardPaymentVerification(context.Context, EvaluationContext, StatusChange[order.Status]) ([]Violation, error) {
	return []Violation{NewWarning("statusCode", CodePaymentVerificationNeeded,
		"Payment verification required before completing the order")}, nil
}
