package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/support-mesh/internal/agent"
	httptransport "github.com/spec-kit/support-mesh/internal/api/http"
	"github.com/spec-kit/support-mesh/internal/api/http/handlers"
	"github.com/spec-kit/support-mesh/internal/config"
	"github.com/spec-kit/support-mesh/internal/events"
	"github.com/spec-kit/support-mesh/internal/observability"
	"github.com/spec-kit/support-mesh/internal/persistence"
	"github.com/spec-kit/support-mesh/internal/repository"
	"github.com/spec-kit/support-mesh/internal/service"
	"github.com/spec-kit/support-mesh/internal/tool"
	"github.com/spec-kit/support-mesh/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	store := repository.NewStore(
		repository.NewCustomerRepository(pool, redis),
		repository.NewTicketRepository(pool),
		repository.NewInteractionRepository(pool),
	)

	broadcaster := events.NewBroadcaster()
	storagePool := worker.NewPool(cfg.Worker.PoolSize)
	defer storagePool.Shutdown()

	registry := tool.NewRegistry()
	dispatcher := tool.NewDispatcher(registry, store, broadcaster, storagePool, logger)

	baseURL := fmt.Sprintf("http://%s", cfg.App.Addr())
	agentService := service.NewAgentService(service.AgentDependencies{
		Agents: agent.NewRegistry(baseURL),
		Logger: logger,
	})

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Tools:  handlers.NewToolsHandler(dispatcher, metrics),
		Events: handlers.NewEventsHandler(broadcaster, logger),
		Agents: handlers.NewAgentsHandler(agentService),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
