package http_test

import (
	"os"
	"path/filepath"
	"testing"

	api "governance/internal/adapters/in/http"
	"governance/internal/core/domain/rules"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var knownRoutes = []string{"orders.create", "orders.status", "purchase-orders.validate"}

func Test_ParsePoliciesMergesOverridesOntoDefault(t *testing.T) {
	data := []byte(`
routes:
  orders.create: {blockOnErrors: false, blockOnWarnings: false}
  purchase-orders.validate: {blockOnWarnings: true}
`)

	policies, err := api.ParsePolicies(data, knownRoutes)

	require.NoError(t, err)
	assert.Equal(t, map[string]rules.Policy{
		"orders.create":            {BlockOnErrors: false, BlockOnWarnings: false},
		"purchase-orders.validate": {BlockOnErrors: true, BlockOnWarnings: true},
	}, policies)
}

func Test_ParsePoliciesRejectsUnknownRoutes(t *testing.T) {
	data := []byte(`
routes:
  orders.delete: {blockOnErrors: true}
  shipments.assign: {blockOnWarnings: true}
  orders.status: {blockOnWarnings: true}
`)

	_, err := api.ParsePolicies(data, knownRoutes)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "[orders.delete shipments.assign]")
}

func Test_ParsePoliciesRejectsUnknownFields(t *testing.T) {
	data := []byte(`
routes:
  orders.create: {blockOnError: true}
`)

	_, err := api.ParsePolicies(data, knownRoutes)

	assert.Error(t, err)
}

func Test_ParsePoliciesAcceptsEmptyDocument(t *testing.T) {
	policies, err := api.ParsePolicies(nil, knownRoutes)

	require.NoError(t, err)
	assert.Empty(t, policies)
}

func Test_LoadPolicies(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		policies, err := api.LoadPolicies("", knownRoutes)
		require.NoError(t, err)
		assert.Empty(t, policies)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := api.LoadPolicies(filepath.Join(t.TempDir(), "absent.yaml"), knownRoutes)
		assert.Error(t, err)
	})

	t.Run("file on disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "policies.yaml")
		require.NoError(t, os.WriteFile(path, []byte("routes:\n  orders.status: {blockOnWarnings: true}\n"), 0o600))

		policies, err := api.LoadPolicies(path, knownRoutes)

		require.NoError(t, err)
		assert.Equal(t, rules.Policy{BlockOnErrors: true, BlockOnWarnings: true}, policies["orders.status"])
	})
}
