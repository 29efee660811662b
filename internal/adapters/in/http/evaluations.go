package http

import (
	"context"
	"encoding/json"

	"governance/internal/core/domain/rules"

	"github.com/labstack/echo/v4"
)

// Evaluation produces the rule report of one request. Errors wrapped in
// requestError are answered with 400; any other error with 500.
type Evaluation func(ctx context.Context, c echo.Context, ec rules.EvaluationContext, body []byte) (rules.Report, error)

type requestError struct {
	err error
}

func (e *requestError) Error() string { return e.err.Error() }
func (e *requestError) Unwrap() error { return e.err }

// payloadEvaluation decodes the body as P and runs ev on it.
func payloadEvaluation[P any](ev rules.Evaluator[P]) Evaluation {
	return func(ctx context.Context, _ echo.Context, ec rules.EvaluationContext, body []byte) (rules.Report, error) {
		var payload P
		if err := decodeBody(body, &payload); err != nil {
			return rules.Report{}, err
		}
		return ev.Evaluate(ctx, ec, payload), nil
	}
}

// statusEvaluation evaluates a status change of the entity named by the ":id"
// path parameter.
func statusEvaluation[S rules.Status](ev *rules.TransitionEvaluator[S]) Evaluation {
	return func(ctx context.Context, c echo.Context, ec rules.EvaluationContext, body []byte) (rules.Report, error) {
		id, err := bindEntityID(c)
		if err != nil {
			return rules.Report{}, &requestError{err: err}
		}

		var req rules.StatusRequest
		if err = decodeBody(body, &req); err != nil {
			return rules.Report{}, err
		}
		req.EntityID = id

		return ev.EvaluateRequest(ctx, ec, req)
	}
}

func decodeBody(body []byte, dst any) error {
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return &requestError{err: err}
	}
	return nil
}
