package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"governance/internal/adapters/in/http/apidocs"
	"governance/internal/adapters/out/audit"
	"governance/internal/core/domain/rules"
	"governance/internal/core/ports"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Echo context keys and headers used by the governor.
const (
	ResultKey      = "businessRuleResult"
	ActorKey       = "actor"
	HeaderWarnings = "X-Business-Rule-Warnings"
	HeaderActorID  = "X-Actor-ID"
)

// Recorder receives one observation per governed request.
type Recorder interface {
	ObserveDecision(route string, result rules.EnforcementResult, elapsed time.Duration)
	ObserveFailure(route string)
}

// Governor evaluates the business rules of a route before its handler runs.
// A request is either blocked with 409 or passed on with the enforcement
// result stored under ResultKey.
type Governor struct {
	data      ports.GovernanceReader
	validator *apidocs.SchemaValidator
	policies  map[string]rules.Policy
	sink      audit.Sink
	recorder  Recorder
	tracer    trace.Tracer
	logger    *slog.Logger
	now       func() time.Time
}

type GovernorOption func(*Governor)

// WithPolicies overrides the default policy for the named routes.
func WithPolicies(policies map[string]rules.Policy) GovernorOption {
	return func(g *Governor) { g.policies = policies }
}

// WithSchemaValidator enables request body validation for routes that name a schema.
func WithSchemaValidator(v *apidocs.SchemaValidator) GovernorOption {
	return func(g *Governor) { g.validator = v }
}

func WithSink(s audit.Sink) GovernorOption {
	return func(g *Governor) { g.sink = s }
}

func WithRecorder(r Recorder) GovernorOption {
	return func(g *Governor) { g.recorder = r }
}

// WithClock replaces time.Now as the evaluation clock.
func WithClock(now func() time.Time) GovernorOption {
	return func(g *Governor) { g.now = now }
}

func NewGovernor(data ports.GovernanceReader, logger *slog.Logger, opts ...GovernorOption) *Governor {
	g := &Governor{
		data:     data,
		policies: map[string]rules.Policy{},
		tracer:   otel.Tracer("governance/http"),
		logger:   logger.With("component", "governor"),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Policy returns the enforcement policy of a route.
func (g *Governor) Policy(route string) rules.Policy {
	if p, ok := g.policies[route]; ok {
		return p
	}
	return rules.DefaultPolicy()
}

// Guard returns the middleware protecting route. Evaluation runs at most once
// per request: a request that already carries a result is passed through.
func (g *Governor) Guard(route Route) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, done := c.Get(ResultKey).(rules.EnforcementResult); done {
				return next(c)
			}

			ctx, span := g.tracer.Start(c.Request().Context(), "governance.evaluate",
				trace.WithAttributes(attribute.String("governance.route", route.Name)))
			defer span.End()

			body, err := restoreBody(c)
			if err != nil {
				return writeError(c, http.StatusBadRequest, CodeInvalidRequestBody, "Unable to read request body")
			}
			if route.Schema != "" && g.validator != nil {
				if err = g.validator.Validate(route.Schema, body); err != nil {
					span.SetStatus(codes.Error, "invalid request body")
					return writeError(c, http.StatusBadRequest, CodeInvalidRequestBody, err.Error())
				}
			}

			started := g.now()
			ec := rules.NewEvaluationContext(actorFrom(c), g.data, started)
			report, err := safeEvaluate(ctx, c, route.Evaluate, ec, body)
			if err != nil {
				var reqErr *requestError
				if errors.As(err, &reqErr) {
					span.SetStatus(codes.Error, "invalid request")
					return writeError(c, http.StatusBadRequest, CodeInvalidRequestBody, reqErr.Error())
				}
				return g.fail(ctx, c, span, route, err)
			}
			if failure := report.Err(); failure != nil {
				g.logger.WarnContext(ctx, "Business rule check could not complete",
					"route", route.Name, "error", failure)
			}

			result := rules.Enforce(report.Violations, g.Policy(route.Name))
			c.Set(ResultKey, result)
			span.SetAttributes(
				attribute.Bool("governance.blocked", result.Blocked),
				attribute.Int("governance.errors", len(result.Errors)),
				attribute.Int("governance.warnings", len(result.Warnings)),
			)
			g.observe(ctx, c, route, result, g.now().Sub(started))

			if result.Blocked {
				return writeBlocked(c, result, g.now())
			}
			if len(result.Warnings) > 0 {
				if encoded, encErr := json.Marshal(result.Warnings); encErr == nil {
					c.Response().Header().Set(HeaderWarnings, string(encoded))
				}
			}
			return next(c)
		}
	}
}

func (g *Governor) fail(ctx context.Context, c echo.Context, span trace.Span, route Route, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, "business rule evaluation failed")
	g.logger.ErrorContext(ctx, "Business rule evaluation failed", "route", route.Name, "error", err)
	if g.recorder != nil {
		g.recorder.ObserveFailure(route.Name)
	}
	return writeError(c, http.StatusInternalServerError, CodeBusinessRuleValidationError,
		"Unable to validate business rules")
}

func (g *Governor) observe(
	ctx context.Context,
	c echo.Context,
	route Route,
	result rules.EnforcementResult,
	elapsed time.Duration,
) {
	if g.recorder != nil {
		g.recorder.ObserveDecision(route.Name, result, elapsed)
	}
	if g.sink == nil {
		return
	}

	decision := audit.Decision{
		Route:       route.Name,
		Method:      c.Request().Method,
		Path:        c.Request().URL.Path,
		ActorID:     actorFrom(c).ID,
		Result:      result,
		EvaluatedAt: g.now().UTC(),
	}
	if err := g.sink.Record(ctx, decision); err != nil {
		g.logger.WarnContext(ctx, "Failed to record governance decision", "route", route.Name, "error", err)
	}
}

func safeEvaluate(
	ctx context.Context,
	c echo.Context,
	evaluate Evaluation,
	ec rules.EvaluationContext,
	body []byte,
) (report rules.Report, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("rule evaluation panicked: %v", rec)
		}
	}()
	return evaluate(ctx, c, ec, body)
}

// restoreBody reads the request body and puts an identical reader back so
// that the handler can bind it again.
func restoreBody(c echo.Context) ([]byte, error) {
	req := c.Request()
	if req.Body == nil {
		return nil, nil
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, err
	}
	_ = req.Body.Close()
	req.Body = io.NopCloser(bytes.NewReader(body))
	return body, nil
}

// actorFrom prefers an actor attached by upstream authentication over the
// X-Actor-ID header.
func actorFrom(c echo.Context) rules.Actor {
	if actor, ok := c.Get(ActorKey).(rules.Actor); ok {
		return actor
	}
	return rules.Actor{ID: c.Request().Header.Get(HeaderActorID)}
}
