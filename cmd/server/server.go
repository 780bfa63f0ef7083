package main

import (
	"fmt"
	"time"

	"github.com/JaimeStill/chargepoint/internal/config"
	"github.com/JaimeStill/chargepoint/internal/infrastructure"
	"github.com/JaimeStill/chargepoint/internal/server"
	"github.com/JaimeStill/chargepoint/pkg/module"
)

// Server owns the infrastructure, the mounted modules and the HTTP listener.
type Server struct {
	infra  *infrastructure.Infrastructure
	router *module.Router
	http   server.System
}

// NewServer wires every subsystem from cfg without starting any of them.
func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}

	modules, err := NewModules(infra, cfg)
	if err != nil {
		return nil, fmt.Errorf("modules init failed: %w", err)
	}

	router := buildRouter(infra)
	modules.Mount(router)

	for _, m := range []*module.Module{modules.API, modules.App} {
		infra.Logger.Info("module mounted", "prefix", m.Prefix())
	}
	infra.Logger.Info("server initialized", "addr", cfg.Server.Addr(), "version", cfg.Version)

	return &Server{
		infra:  infra,
		router: router,
		http:   server.New(&cfg.Server, router, infra.Logger),
	}, nil
}

// Start migrates and connects the database, begins the session sweeper and
// starts listening. Readiness is reported once every startup hook completes.
func (s *Server) Start() error {
	s.infra.Logger.Info("starting service")

	if err := s.infra.Start(); err != nil {
		return err
	}
	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info("all subsystems ready")
	}()
	return nil
}

// Shutdown stops the listener, the sweeper and the database within timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown", "timeout", timeout)
	return s.infra.Lifecycle.Shutdown(timeout)
}
