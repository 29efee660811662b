package audit

import (
	"context"
	"log/slog"
)

// SlogSink writes decisions to a structured logger. Blocked decisions are
// logged at warn level, passed ones at info level.
type SlogSink struct {
	logger *slog.Logger
}

func NewSlogSink(logger *slog.Logger) *SlogSink {
	return &SlogSink{logger: logger.With("component", "governance_audit")}
}

func (s *SlogSink) Record(ctx context.Context, d Decision) error {
	level := slog.LevelInfo
	if d.Result.Blocked {
		level = slog.LevelWarn
	}

	codes := make([]string, 0, len(d.Result.Errors)+len(d.Result.Warnings))
	for _, v := range d.Result.Violations() {
		codes = append(codes, string(v.Code))
	}

	s.logger.Log(ctx, level, "Business rules evaluated",
		"route", d.Route,
		"method", d.Method,
		"path", d.Path,
		"actor_id", d.ActorID,
		"blocked", d.Result.Blocked,
		"errors", len(d.Result.Errors),
		"warnings", len(d.Result.Warnings),
		"codes", codes,
	)
	return nil
}
