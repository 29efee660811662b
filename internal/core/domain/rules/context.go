package rules

import (
	"time"

	"governance/internal/core/ports"
)

// Actor is the authenticated caller attached to a request upstream.
type Actor struct {
	ID   string
	Role string
}

// EvaluationContext is the read-only view passed to evaluators.
type EvaluationContext struct {
	Actor Actor
	Data  ports.GovernanceReader
	Now   time.Time
}

// NewEvaluationContext builds a context evaluated at now.
func NewEvaluationContext(actor Actor, data ports.GovernanceReader, now time.Time) EvaluationContext {
	return EvaluationContext{Actor: actor, Data: data, Now: now}
}
