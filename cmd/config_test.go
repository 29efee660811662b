package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_LoadConfigAppliesDefaults(t *testing.T) {
	cfg, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "disable", cfg.DBSslMode)
	assert.Equal(t, "0 */15 * * * *", cfg.WorkloadAuditSchedule)
	assert.Equal(t, "governance.decisions", cfg.NatsSubject)
}

func Test_LoadConfigEnvironmentWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("HTTP_PORT=9000\nDB_NAME=from_file\n"), 0o600))
	t.Setenv("HTTP_PORT", "7000")
	t.Cleanup(func() { _ = os.Unsetenv("DB_NAME") })

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.HTTPPort)
	assert.Equal(t, "from_file", cfg.DBName)
}

func Test_LoadConfigIgnoresMissingEnvFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.env"))

	assert.NoError(t, err)
}

func Test_ConfigDSN(t *testing.T) {
	cfg := Config{
		DBHost:     "db",
		DBPort:     "5432",
		DBUser:     "governor",
		DBPassword: "p@ss",
		DBName:     "governance",
		DBSslMode:  "require",
	}

	assert.Equal(t, "postgres://governor:p%40ss@db:5432/governance?sslmode=require", cfg.DSN())
	assert.Equal(t, "0.0.0.0:8080", Config{HTTPPort: "8080"}.ListenAddr())
}
