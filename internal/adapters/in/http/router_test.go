package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	api "governance/internal/adapters/in/http"
	"governance/internal/adapters/out/metrics"

	"github.com/stretchr/testify/assert"
)

func Test_RouterServesHealth(t *testing.T) {
	e := api.NewRouter(api.RouterConfig{Governor: newGovernor(t, &MockGovernanceReader{})})
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func Test_RouterMountsMetricsOnlyWhenConfigured(t *testing.T) {
	recorder := metrics.NewPrometheusRecorder()
	withMetrics := api.NewRouter(api.RouterConfig{
		Governor: newGovernor(t, &MockGovernanceReader{}),
		Metrics:  recorder.Handler(),
	})
	withoutMetrics := api.NewRouter(api.RouterConfig{Governor: newGovernor(t, &MockGovernanceReader{})})

	rec := httptest.NewRecorder()
	withMetrics.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")

	rec = httptest.NewRecorder()
	withoutMetrics.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func Test_RoutesHaveUniqueNames(t *testing.T) {
	routes := api.Routes(api.NewServer(nil, nil, nil, nil))

	names := api.RouteNames(routes)

	assert.Len(t, names, 9)
	seen := map[string]bool{}
	for _, r := range routes {
		assert.False(t, seen[r.Name], r.Name)
		seen[r.Name] = true
		assert.NotNil(t, r.Evaluate, r.Name)
		assert.NotEmpty(t, r.Schema, r.Name)
	}
	assert.Contains(t, names, "orders.status")
}
