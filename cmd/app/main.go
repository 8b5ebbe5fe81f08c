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

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/osse101/CraftEconomy_Go/internal/bonus"
	"github.com/osse101/CraftEconomy_Go/internal/bootstrap"
	"github.com/osse101/CraftEconomy_Go/internal/config"
	"github.com/osse101/CraftEconomy_Go/internal/crafting"
	"github.com/osse101/CraftEconomy_Go/internal/route"
	"github.com/osse101/CraftEconomy_Go/internal/scheduler"
	"github.com/osse101/CraftEconomy_Go/internal/server"
	"github.com/osse101/CraftEconomy_Go/internal/worker"
)

// @title Craft Economy API
// @version 1.0
// @description Market prices, production bonuses, focus costs, craft profit and trade routes.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "craft economy: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return fmt.Errorf("validate environment: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	for _, w := range warnings {
		slog.Warn(w)
	}

	bus, deadLetter, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		return err
	}

	dbPool, archive, err := bootstrap.SetupArchive(ctx, cfg)
	if err != nil {
		return err
	}

	catalog, err := bootstrap.LoadCatalog(cfg)
	if err != nil {
		return err
	}
	characters, err := bootstrap.LoadCharacters(cfg)
	if err != nil {
		return err
	}

	mc, err := bootstrap.SetupMarket(cfg, bus, catalog)
	if err != nil {
		return err
	}

	calc := bonus.NewCalculator(bonus.DefaultTables())
	activities := crafting.DefaultActivities()
	craftingService := crafting.NewService(catalog, activities, mc.Feed, characters, mc.Resolver, calc)
	routeService := route.NewService(mc.Feed, route.NewCalculator(route.Config{TaxRate: cfg.TaxRate}, mc.Resolver))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		mc.Feed.Run(gctx)
		return nil
	})

	// Seeded before the archiver subscribes so the seed is not written back
	bootstrap.SeedFromArchive(gctx, mc.Feed, archive, cfg)

	handlers := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:   bus,
		Archive:    archive,
		DeadLetter: deadLetter,
	})

	pool := worker.NewPool(cfg.WorkerCount, bootstrap.WorkerQueueSize)
	pool.Start(gctx)
	sched := scheduler.New(pool)
	sched.ScheduleImmediate(cfg.PollInterval, mc.Refresh)
	slog.Info(bootstrap.LogMsgRefreshScheduled, "interval", cfg.PollInterval)

	srv := server.NewServer(server.Options{
		Port:            cfg.Port,
		APIKey:          cfg.APIKey,
		TrustedProxies:  cfg.TrustedProxies,
		ClientRateLimit: cfg.ClientRateLimit,
		ClientBurst:     cfg.ClientBurst,
	}, server.Dependencies{
		Feed:       mc.Feed,
		Resolver:   mc.Resolver,
		Refresher:  mc.Refresh,
		History:    mc.Client,
		Bonus:      calc,
		Activities: activities,
		Crafting:   craftingService,
		Characters: characters,
		Routes:     routeService,
		Gatherer:   prometheus.DefaultGatherer,
	})

	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
		defer cancel()
		bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
			Server:        srv,
			Scheduler:     sched,
			WorkerPool:    pool,
			EventHandlers: handlers,
			DeadLetter:    deadLetter,
			DBPool:        dbPool,
		})
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
