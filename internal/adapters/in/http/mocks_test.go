package http_test

import (
	"context"
	"time"

	"governance/internal/adapters/out/audit"
	"governance/internal/core/application/usecases/commands"
	"governance/internal/core/domain/model/catalog"
	"governance/internal/core/domain/model/designjob"
	"governance/internal/core/domain/model/kernel"
	"governance/internal/core/domain/model/order"
	"governance/internal/core/domain/model/workorder"
	"governance/internal/core/domain/rules"

	"github.com/stretchr/testify/mock"
)

type MockGovernanceReader struct {
	mock.Mock
}

func (m *MockGovernanceReader) CustomerByID(ctx context.Context, id kernel.UUID) (catalog.Customer, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.Customer), args.Error(1)
}

func (m *MockGovernanceReader) OrderItemsByOrder(ctx context.Context, orderID kernel.UUID) ([]order.ItemSnapshot, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]order.ItemSnapshot)
	return items, args.Error(1)
}

func (m *MockGovernanceReader) DesignJobsByAssignee(ctx context.Context, assigneeID kernel.UUID) ([]designjob.Snapshot, error) {
	args := m.Called(ctx, assigneeID)
	jobs, _ := args.Get(0).([]designjob.Snapshot)
	return jobs, args.Error(1)
}

func (m *MockGovernanceReader) WorkOrdersByManufacturer(ctx context.Context, manufacturerID kernel.UUID) ([]workorder.Snapshot, error) {
	args := m.Called(ctx, manufacturerID)
	orders, _ := args.Get(0).([]workorder.Snapshot)
	return orders, args.Error(1)
}

func (m *MockGovernanceReader) MaterialByID(ctx context.Context, id kernel.UUID) (catalog.Material, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.Material), args.Error(1)
}

func (m *MockGovernanceReader) OrderStatus(ctx context.Context, id kernel.UUID) (order.Status, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(order.Status), args.Error(1)
}

func (m *MockGovernanceReader) WorkOrderStatus(ctx context.Context, id kernel.UUID) (workorder.Status, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(workorder.Status), args.Error(1)
}

type MockCreateOrderHandler struct {
	mock.Mock
}

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockChangeOrderStatusHandler struct {
	mock.Mock
}

func (m *MockChangeOrderStatusHandler) Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockCreateWorkOrderHandler struct {
	mock.Mock
}

func (m *MockCreateWorkOrderHandler) Handle(ctx context.Context, cmd commands.CreateWorkOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockChangeWorkOrderStatusHandler struct {
	mock.Mock
}

func (m *MockChangeWorkOrderStatusHandler) Handle(ctx context.Context, cmd commands.ChangeWorkOrderStatusCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockSink struct {
	mock.Mock
}

func (m *MockSink) Record(ctx context.Context, d audit.Decision) error {
	return m.Called(ctx, d).Error(0)
}

type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) ObserveDecision(route string, result rules.EnforcementResult, elapsed time.Duration) {
	m.Called(route, result, elapsed)
}

func (m *MockRecorder) ObserveFailure(route string) {
	m.Called(route)
}
