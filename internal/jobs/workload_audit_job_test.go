package jobs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"governance/internal/core/application/usecases/queries"
	"governance/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOverloadedAssigneesFinder struct {
	mock.Mock
}

func (m *MockOverloadedAssigneesFinder) Handle(
	ctx context.Context,
	query queries.GetOverloadedAssigneesQuery,
) ([]queries.GetOverloadedAssigneesQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetOverloadedAssigneesQueryResponse), args.Error(1)
}

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestWorkloadAuditJob_Run_LogsOverloadedAssignees(t *testing.T) {
	designer := kernel.NewUUID()
	finder := new(MockOverloadedAssigneesFinder)
	finder.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetOverloadedAssigneesQuery) bool {
		return q.DesignerLimit() == 10 && q.ManufacturerLimit() == 20
	})).Return([]queries.GetOverloadedAssigneesQueryResponse{
		{Role: queries.RoleDesigner, AssigneeID: designer, ActiveCount: 12},
	}, nil).Once()

	logger, buf := newBufferLogger()
	job := NewWorkloadAuditJob(finder, "0 * * * * *", logger)

	assert.Equal(t, 1, job.Run(context.Background()))
	assert.Contains(t, buf.String(), "Assignee is overloaded")
	assert.Contains(t, buf.String(), designer.String())
	assert.Contains(t, buf.String(), "component=workload_audit_job")
	finder.AssertExpectations(t)
}

func TestWorkloadAuditJob_Run_QueryFailureIsLogged(t *testing.T) {
	finder := new(MockOverloadedAssigneesFinder)
	finder.On("Handle", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused")).Once()

	logger, buf := newBufferLogger()
	job := NewWorkloadAuditJob(finder, "0 * * * * *", logger)

	assert.Equal(t, 0, job.Run(context.Background()))
	assert.Contains(t, buf.String(), "connection refused")
}

func TestWorkloadAuditJob_Start_RejectsBadSchedule(t *testing.T) {
	logger, _ := newBufferLogger()
	job := NewWorkloadAuditJob(new(MockOverloadedAssigneesFinder), "every tuesday", logger)

	require.Error(t, job.Start())
}

func TestJobManager_StartAndStop(t *testing.T) {
	logger, buf := newBufferLogger()
	manager := NewJobManager(new(MockOverloadedAssigneesFinder), "0 0 3 * * *", logger)

	require.NoError(t, manager.StartAll())
	manager.StopAll()

	assert.Contains(t, buf.String(), "Workload audit job started")
	assert.Contains(t, buf.String(), "Workload audit job stopped")
}

func TestJobManager_StartAll_WrapsScheduleError(t *testing.T) {
	logger, _ := newBufferLogger()
	manager := NewJobManager(new(MockOverloadedAssigneesFinder), "", logger)

	assert.ErrorContains(t, manager.StartAll(), "failed to start workload audit job")
}
