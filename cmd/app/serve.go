package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"governance/cmd"
	api "governance/internal/adapters/in/http"
	"governance/internal/adapters/in/http/apidocs"
	"governance/internal/adapters/out/audit"
	"governance/internal/adapters/out/metrics"
	"governance/internal/adapters/out/postgres"
	"governance/internal/pkg/telemetry"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	var envFile string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Start the governed HTTP API and the workload audit job",
		RunE: func(command *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(command.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, envFile)
		},
	}
	c.Flags().StringVar(&envFile, "env-file", ".env", "optional dotenv file read before the environment")
	return c
}

func serve(ctx context.Context, envFile string) error {
	cfg, err := cmd.LoadConfig(envFile)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	shutdownTracing, err := telemetry.Setup(ctx, serviceName, cfg.OtelEndpoint)
	if err != nil {
		return fmt.Errorf("set up tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("Failed to flush traces", "error", err)
		}
	}()

	db, err := gorm.Open(gormpostgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	if err = postgres.Migrate(db); err != nil {
		return err
	}

	doc, err := apidocs.Load(ctx)
	if err != nil {
		return err
	}
	if err = apidocs.Register(doc); err != nil {
		return err
	}

	app := cmd.NewCompositionRoot(cfg, db, logger)
	routes := api.Routes(app.CreateServer())
	policies, err := api.LoadPolicies(cfg.PolicyFile, api.RouteNames(routes))
	if err != nil {
		return err
	}

	sink, closeSink, err := auditSink(cfg, logger)
	if err != nil {
		return err
	}
	defer closeSink()

	recorder := metrics.NewPrometheusRecorder()
	governor := api.NewGovernor(app.CreateGovernanceReader(), logger,
		api.WithPolicies(policies),
		api.WithSchemaValidator(apidocs.NewSchemaValidator(doc)),
		api.WithSink(sink),
		api.WithRecorder(recorder),
	)
	e := api.NewRouter(api.RouterConfig{Governor: governor, Routes: routes, Metrics: recorder.Handler()})

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	go func() {
		if err := e.Start(cfg.ListenAddr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// auditSink publishes decisions to NATS when NATS_URL is set and logs them otherwise.
func auditSink(cfg cmd.Config, logger *slog.Logger) (audit.Sink, func(), error) {
	if cfg.NatsURL == "" {
		return audit.NewSlogSink(logger), func() {}, nil
	}

	conn, err := audit.Connect(cfg.NatsURL)
	if err != nil {
		return nil, nil, err
	}
	return audit.NewNATSSink(conn, cfg.NatsSubject), func() { _ = conn.Drain() }, nil
}
