// Package probe serves the standard gRPC health protocol for orchestrators,
// backed by periodic pings of the API's dependencies.
package probe

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"sort"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
)

// ServiceName is the per-service name reported alongside the overall "" status.
const ServiceName = "symcheck.API"

const checkTimeout = 5 * time.Second

// Checker is a dependency the probe pings.
type Checker interface {
	Ping(ctx context.Context) error
}

// Server owns a gRPC server exposing grpc.health.v1.Health.
type Server struct {
	checks   map[string]Checker
	names    []string
	interval time.Duration
	health   *health.Server
	grpc     *grpc.Server
	logger   *slog.Logger
}

// New creates a probe over checks that re-evaluates every interval.
// Everything reports NOT_SERVING until the first Check.
func New(checks map[string]Checker, interval time.Duration, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	for _, name := range names {
		hs.SetServingStatus(name, healthpb.HealthCheckResponse_NOT_SERVING)
	}

	gs := grpc.NewServer(grpc.KeepaliveParams(keepalive.ServerParameters{
		Time:    2 * time.Minute,
		Timeout: 10 * time.Second,
	}))
	healthpb.RegisterHealthServer(gs, hs)

	return &Server{
		checks:   checks,
		names:    names,
		interval: interval,
		health:   hs,
		grpc:     gs,
		logger:   logger,
	}
}

// Check pings every dependency once and publishes the statuses. It reports
// whether all of them answered.
func (s *Server) Check(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	healthy := true
	for _, name := range s.names {
		status := healthpb.HealthCheckResponse_SERVING
		if err := s.checks[name].Ping(ctx); err != nil {
			s.logger.Warn("Dependency probe failed", "dependency", name, "error", err)
			status = healthpb.HealthCheckResponse_NOT_SERVING
			healthy = false
		}
		s.health.SetServingStatus(name, status)
	}

	overall := healthpb.HealthCheckResponse_SERVING
	if !healthy {
		overall = healthpb.HealthCheckResponse_NOT_SERVING
	}
	s.health.SetServingStatus("", overall)
	s.health.SetServingStatus(ServiceName, overall)
	return healthy
}

// Run checks immediately, then every interval until ctx is done.
func (s *Server) Run(ctx context.Context) {
	s.Check(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Check(ctx)
		}
	}
}

// Serve accepts health RPCs on lis until Stop.
func (s *Server) Serve(lis net.Listener) error {
	s.logger.Info("gRPC health probe listening", "addr", lis.Addr().String())
	if err := s.grpc.Serve(lis); err != nil {
		return fmt.Errorf("serve health probe: %w", err)
	}
	return nil
}

// Stop marks everything NOT_SERVING and closes the listener and any open
// Watch streams.
func (s *Server) Stop() {
	s.health.Shutdown()
	s.grpc.Stop()
}
