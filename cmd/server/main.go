// Symptom checker API server
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/ashureev/symcheck/internal/api"
	"github.com/ashureev/symcheck/internal/catalog"
	"github.com/ashureev/symcheck/internal/config"
	"github.com/ashureev/symcheck/internal/domain"
	"github.com/ashureev/symcheck/internal/events"
	"github.com/ashureev/symcheck/internal/identity"
	"github.com/ashureev/symcheck/internal/interview"
	"github.com/ashureev/symcheck/internal/middleware"
	"github.com/ashureev/symcheck/internal/probe"
	"github.com/ashureev/symcheck/internal/store"
)

const (
	demoUsername     = "demo"
	demoPassword     = "demo"
	sweepInterval    = time.Minute
	startupPingLimit = 5 * time.Second
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	if err := catalog.ValidateDefault(); err != nil {
		slog.Error("Built-in catalog is inconsistent", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting server",
		"port", cfg.Port,
		"dev", cfg.IsDevelopment(),
		"storage", cfg.StorageBackend,
		"sessions", cfg.SessionBackend,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize dependencies.
	repo, err := openRepository(cfg)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			slog.Error("Failed to close repository", "error", closeErr)
		}
	}()

	pingCtx, cancelPing := context.WithTimeout(ctx, startupPingLimit)
	err = repo.Ping(pingCtx)
	cancelPing()
	if err != nil {
		slog.Error("Database health check failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database connected")

	if cfg.SeedDemoUser {
		if err := seedDemoUser(ctx, repo); err != nil {
			slog.Error("Failed to seed demo user", "error", err)
			os.Exit(1)
		}
	}

	sessions, err := openSessions(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize session store", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := sessions.Close(); closeErr != nil {
			slog.Error("Failed to close session store", "error", closeErr)
		}
	}()

	publisher := newPublisher(cfg)
	defer func() {
		if closeErr := publisher.Close(); closeErr != nil {
			slog.Error("Failed to close event publisher", "error", closeErr)
		}
	}()

	// Initialize services and handlers.
	svc := interview.NewService(sessions, repo, publisher)
	handler := api.NewHandler(repo, svc)
	healthHandler := api.NewHealthHandler(map[string]api.Pinger{
		"database": repo,
		"sessions": sessions,
	})

	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/ping"))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(identity.Middleware(cfg.IsDevelopment()))

	healthHandler.RegisterHealth(r)
	handler.RegisterRoutes(r)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	if cfg.GRPCHealthPort != "" {
		lis, err := net.Listen("tcp", ":"+cfg.GRPCHealthPort)
		if err != nil {
			slog.Error("Failed to listen for health probe", "port", cfg.GRPCHealthPort, "error", err)
			os.Exit(1)
		}
		prober := probe.New(map[string]probe.Checker{
			"database": repo,
			"sessions": sessions,
		}, cfg.ProbeInterval, logger)
		defer prober.Stop()

		go prober.Run(ctx)
		go func() {
			if err := prober.Serve(lis); err != nil {
				slog.Error("Health probe failed", "error", err)
			}
		}()
	}

	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal.
	<-ctx.Done()
	stop()

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		return
	}

	slog.Info("Server stopped successfully")
}

func parseLevel(raw string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		slog.Warn("Unknown LOG_LEVEL, using info", "value", raw)
		return slog.LevelInfo
	}
	return level
}

func openRepository(cfg *config.Config) (store.Repository, error) {
	switch cfg.StorageBackend {
	case config.StorageSQLite:
		return store.NewSQLite(cfg.DBPath)
	case config.StoragePostgres:
		return store.NewPostgres(cfg.DatabaseURL)
	case config.StorageMemory:
		return store.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

func openSessions(ctx context.Context, cfg *config.Config) (*interview.KVSessionStore, error) {
	switch cfg.SessionBackend {
	case config.SessionRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, startupPingLimit)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("ping redis: %w", err)
		}
		slog.Info("Redis connected", "addr", cfg.Redis.Addr)
		return interview.NewKVSessionStore(interview.NewRedisKVStore(client), cfg.SessionTTL), nil
	case config.SessionMemory:
		kv := interview.NewMemoryKVStore()
		go kv.RunSweeper(ctx, sweepInterval)
		return interview.NewKVSessionStore(kv, cfg.SessionTTL), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.SessionBackend)
	}
}

func newPublisher(cfg *config.Config) events.Publisher {
	if len(cfg.Kafka.Brokers) == 0 {
		slog.Info("Event publishing disabled (KAFKA_BROKERS not set)")
		return events.NopPublisher{}
	}
	slog.Info("Publishing interview events", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	return events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
}

// seedDemoUser creates the demo account once so clients that assume user 1
// have someone to save against.
func seedDemoUser(ctx context.Context, repo store.Repository) error {
	existing, err := repo.GetUserByUsername(ctx, demoUsername)
	if err != nil {
		return fmt.Errorf("look up demo user: %w", err)
	}
	if existing != nil {
		slog.Info("Demo user present", "user_id", existing.ID)
		return nil
	}
	user, err := repo.CreateUser(ctx, domain.NewUser{Username: demoUsername, Password: demoPassword})
	if errors.Is(err, domain.ErrConflict) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("create demo user: %w", err)
	}
	slog.Info("Demo user created", "user_id", user.ID)
	return nil
}
