package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	workloadAuditJob *WorkloadAuditJob
}

// NewJobManager creates a job manager. auditSchedule is the cron expression of
// the workload audit.
func NewJobManager(
	overloadedAssigneesHandler overloadedAssigneesFinder,
	auditSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		workloadAuditJob: NewWorkloadAuditJob(overloadedAssigneesHandler, auditSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.workloadAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start workload audit job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.workloadAuditJob.Stop()
}
