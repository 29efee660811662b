package jobs

import (
	"context"
	"log/slog"

	"governance/internal/core/application/usecases/queries"
	"governance/internal/core/domain/rules"

	"github.com/robfig/cron/v3"
)

// overloadedAssigneesFinder is satisfied by queries.GetOverloadedAssigneesQueryHandler.
type overloadedAssigneesFinder interface {
	Handle(
		ctx context.Context,
		query queries.GetOverloadedAssigneesQuery,
	) ([]queries.GetOverloadedAssigneesQueryResponse, error)
}

// WorkloadAuditJob periodically reports designers and manufacturers whose
// active workload is above the limits the rule evaluators enforce.
type WorkloadAuditJob struct {
	finder   overloadedAssigneesFinder
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewWorkloadAuditJob creates the job. schedule is a six-field cron
// expression (seconds first).
func NewWorkloadAuditJob(finder overloadedAssigneesFinder, schedule string, logger *slog.Logger) *WorkloadAuditJob {
	return &WorkloadAuditJob{
		finder:   finder,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "workload_audit_job"),
	}
}

// Start registers the audit with the scheduler and starts it.
func (j *WorkloadAuditJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Workload audit job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running audit to finish.
func (j *WorkloadAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Workload audit job stopped")
}

// Run performs one audit and returns how many overloaded assignees it found.
func (j *WorkloadAuditJob) Run(ctx context.Context) int {
	query, err := queries.NewGetOverloadedAssigneesQuery(rules.DesignerJobLimit, rules.ManufacturerWorkOrderLimit)
	if err != nil {
		j.logger.ErrorContext(ctx, "Workload audit job failed", "error", err)
		return 0
	}

	overloaded, err := j.finder.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Workload audit job failed", "error", err)
		return 0
	}

	for _, a := range overloaded {
		j.logger.WarnContext(ctx, "Assignee is overloaded",
			"role", string(a.Role),
			"assignee_id", a.AssigneeID.String(),
			"active", a.ActiveCount,
		)
	}
	return len(overloaded)
}
