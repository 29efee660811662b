package audit_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"governance/internal/adapters/out/audit"
	"governance/internal/core/domain/rules"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(subject string, data []byte) error {
	return m.Called(subject, data).Error(0)
}

func blockedDecision() audit.Decision {
	return audit.Decision{
		Route:   "orders.create",
		Method:  "POST",
		Path:    "/api/v1/orders",
		ActorID: "user-7",
		Result: rules.Enforce([]rules.Violation{
			rules.NewError("customerId", rules.CodeInvalidCustomerOrg, "Customer does not belong to the organization"),
		}, rules.DefaultPolicy()),
		EvaluatedAt: time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC),
	}
}

func TestNATSSink_PublishesJSONOnRouteSubject(t *testing.T) {
	pub := new(MockPublisher)
	var published []byte
	pub.On("Publish", "governance.decisions.orders.create", mock.Anything).
		Run(func(args mock.Arguments) { published = args.Get(1).([]byte) }).
		Return(nil).Once()

	sink := audit.NewNATSSink(pub, "")
	require.NoError(t, sink.Record(context.Background(), blockedDecision()))

	var payload map[string]any
	require.NoError(t, json.Unmarshal(published, &payload))
	assert.Equal(t, "orders.create", payload["route"])
	assert.Equal(t, "user-7", payload["actorId"])
	result, ok := payload["result"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, result["blocked"])
	pub.AssertExpectations(t)
}

func TestNATSSink_PublishErrorIsWrapped(t *testing.T) {
	pub := new(MockPublisher)
	pub.On("Publish", "audit.orders.create", mock.Anything).Return(errors.New("nats: connection closed"))

	err := audit.NewNATSSink(pub, "audit").Record(context.Background(), blockedDecision())

	assert.ErrorContains(t, err, "publish audit.orders.create")
	assert.ErrorContains(t, err, "connection closed")
}

func TestSlogSink_BlockedDecisionLogsWarning(t *testing.T) {
	var buf bytes.Buffer
	sink := audit.NewSlogSink(slog.New(slog.NewTextHandler(&buf, nil)))

	require.NoError(t, sink.Record(context.Background(), blockedDecision()))

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "blocked=true")
	assert.Contains(t, out, "INVALID_CUSTOMER_ORG")
}
