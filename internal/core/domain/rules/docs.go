// Package rules evaluates business rules for candidate entities before they
// are persisted and decides whether a request may proceed.
//
// Evaluation is split into three pure steps:
//
//	evaluator.Evaluate(ctx, ec, payload) -> Report{Violations}
//	AggregateViolations(violations)      -> Aggregate{Errors, Warnings}
//	Decide(aggregate, policy)            -> EnforcementResult{Errors, Warnings, Blocked}
//
// Evaluators run every check in a fixed order and never stop at the first
// failure, so callers always receive the complete list of reasons. Checks that
// need related entities read them through ports.GovernanceReader. A failed
// lookup degrades to a single VALIDATION_SYSTEM_ERROR violation rather than an
// error return, so evaluation always ends with a deterministic result.
//
// Status changes are evaluated by TransitionEvaluator: an illegal transition
// short-circuits with INVALID_STATUS_TRANSITION; legal ones run the guards
// registered for the target status.
//
// Nothing in this package holds mutable state. Evaluators may be shared by
// concurrent requests.
package rules
