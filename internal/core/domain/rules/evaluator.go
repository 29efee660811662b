package rules

import (
	"context"
	"errors"
	"fmt"
)

// Evaluator checks a candidate payload of type P.
type Evaluator[P any] interface {
	Evaluate(ctx context.Context, ec EvaluationContext, payload P) Report
}

// Report is what an evaluator produces. Failures holds the infrastructure
// errors hit while checking; when it is non-empty Violations already
// contains exactly one SystemError.
type Report struct {
	Violations []Violation
	Failures   []error
}

// Err joins the failures, or returns nil.
func (r Report) Err() error {
	return errors.Join(r.Failures...)
}

type check[P any] func(ctx context.Context, ec EvaluationContext, payload P) ([]Violation, error)

// runChecks runs every check in order. A failing or panicking check does not
// stop the remaining ones.
func runChecks[P any](ctx context.Context, ec EvaluationContext, payload P, checks ...check[P]) Report {
	r := Report{Violations: make([]Violation, 0)}
	for _, c := range checks {
		vs, err := safeCheck(ctx, ec, payload, c)
		r.Violations = append(r.Violations, vs...)
		if err != nil {
			r.Failures = append(r.Failures, err)
		}
	}
	if len(r.Failures) > 0 {
		r.Violations = append(r.Violations, SystemError())
	}
	return r
}

func safeCheck[P any](ctx context.Context, ec EvaluationContext, payload P, c check[P]) (vs []Violation, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			vs = nil
			err = fmt.Errorf("rule check panicked: %v", rec)
		}
	}()
	return c(ctx, ec, payload)
}
