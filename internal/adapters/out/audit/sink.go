// Package audit publishes the outcome of every governed request so that
// blocked and warned operations can be reviewed after the fact.
package audit

import (
	"context"
	"time"

	"governance/internal/core/domain/rules"
)

// Decision is one governed request together with the enforcement outcome.
type Decision struct {
	Route       string                  `json:"route"`
	Method      string                  `json:"method"`
	Path        string                  `json:"path"`
	ActorID     string                  `json:"actorId,omitempty"`
	Result      rules.EnforcementResult `json:"result"`
	EvaluatedAt time.Time               `json:"evaluatedAt"`
}

// Sink receives decisions. Implementations must be safe for concurrent use.
type Sink interface {
	Record(ctx context.Context, d Decision) error
}
