package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort   string `env:"HTTP_PORT" envDefault:"8080"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"governance"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	PolicyFile            string `env:"GOVERNANCE_POLICY_FILE"`
	WorkloadAuditSchedule string `env:"WORKLOAD_AUDIT_SCHEDULE" envDefault:"0 */15 * * * *"`

	NatsURL      string `env:"NATS_URL"`
	NatsSubject  string `env:"NATS_SUBJECT" envDefault:"governance.decisions"`
	OtelEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// LoadConfig reads an optional .env file at envFile and then parses the
// environment. Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// DSN returns the postgres connection string for gorm.
func (c Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSslMode}}.Encode(),
	}
	return u.String()
}

// ListenAddr is the address the HTTP server binds to.
func (c Config) ListenAddr() string {
	return net.JoinHostPort("0.0.0.0", c.HTTPPort)
}
