// Package infrastructure provides core service initialization for application startup.
// It assembles common dependencies (logging, database, sessions, metrics) that modules require.
package infrastructure

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/JaimeStill/chargepoint/internal/config"
	"github.com/JaimeStill/chargepoint/internal/migrations"
	"github.com/JaimeStill/chargepoint/internal/sessions"
	"github.com/JaimeStill/chargepoint/pkg/database"
	"github.com/JaimeStill/chargepoint/pkg/lifecycle"
	"github.com/JaimeStill/chargepoint/pkg/logging"
	"github.com/JaimeStill/chargepoint/pkg/middleware"
)

// MetricsNamespace prefixes every collector the service registers.
const MetricsNamespace = "chargepoint"

// Infrastructure holds the core systems required by all modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Sessions  *sessions.Store
	Registry  *prometheus.Registry
	Metrics   *middleware.Metrics

	migrate *database.Config
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := logging.New(&cfg.Logging)

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	store := sessions.NewStore(sessions.Config{
		TTL:           cfg.Auth.SessionTTLDuration(),
		SweepInterval: cfg.Auth.SweepIntervalDuration(),
		CookieName:    cfg.Auth.CookieName,
		CookiePath:    "/",
		Secure:        cfg.Auth.CookieSecure,
	}, logger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	infra := &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Database:  db,
		Sessions:  store,
		Registry:  registry,
		Metrics:   middleware.NewMetrics(registry, MetricsNamespace),
	}
	if cfg.Database.AutoMigrate {
		infra.migrate = &cfg.Database
	}
	return infra, nil
}

// Start migrates the schema when configured, connects the database, and
// starts the session sweeper.
func (i *Infrastructure) Start() error {
	if i.migrate != nil {
		if err := database.Migrate(i.migrate, migrations.FS, migrations.Dir, database.Up, i.Logger); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	i.Sessions.Start(i.Lifecycle)
	return nil
}
