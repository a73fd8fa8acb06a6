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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	cataloghandler "fitcore/internal/catalog/handler"
	catalogmetrics "fitcore/internal/catalog/metrics"
	catalogservice "fitcore/internal/catalog/service"
	catalogstore "fitcore/internal/catalog/store"
	"fitcore/internal/platform/config"
	"fitcore/internal/platform/health"
	"fitcore/internal/platform/httpserver"
	"fitcore/internal/platform/logger"
	httptransport "fitcore/internal/transport/http"
	verifyhandler "fitcore/internal/verification/handler"
	verifymetrics "fitcore/internal/verification/metrics"
	verifyservice "fitcore/internal/verification/service"
	verifystore "fitcore/internal/verification/store"
	"fitcore/pkg/platform/middleware/request"
	"fitcore/pkg/platform/tracer"
)

const shutdownTimeout = 10 * time.Second

// main wires dependencies and keeps the server lifecycle small. Business
// logic lives in the internal service packages.
func main() {
	cfg, warnings := config.FromEnv()
	log := logger.New(cfg.LogLevel)
	for _, w := range warnings {
		log.Warn("configuration fallback", "detail", w)
	}

	if err := run(cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

func run(cfg config.Server, log *slog.Logger) error {
	codes, err := verifystore.Open(cfg.CodesFile)
	if err != nil {
		return fmt.Errorf("load reference table: %w", err)
	}
	if dups := codes.Duplicates(); len(dups) > 0 {
		log.Warn("reference table has shadowed duplicate codes", "count", len(dups))
	}
	catalog, err := catalogstore.Open(cfg.ProductsFile)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	tr := tracer.NewOTel()

	verifySvc := verifyservice.New(codes,
		verifyservice.WithDelay(cfg.VerifyDelay),
		verifyservice.WithLogger(log),
		verifyservice.WithMetrics(verifymetrics.New(reg)),
		verifyservice.WithTracer(tr),
	)
	catalogSvc := catalogservice.New(catalog,
		catalogservice.WithLogger(log),
		catalogservice.WithMetrics(catalogmetrics.New(reg)),
		catalogservice.WithTracer(tr),
	)

	healthHandler := health.New(cfg.Environment)
	healthHandler.RegisterDataset("codes", codes.Version())
	healthHandler.RegisterDataset("products", catalog.Version())
	healthHandler.RegisterCheck("codes", func(context.Context) error {
		if codes.Len() == 0 {
			return errors.New("reference table is empty")
		}
		return nil
	})
	healthHandler.RegisterCheck("catalog", func(context.Context) error {
		if catalog.Len() == 0 {
			return errors.New("catalog is empty")
		}
		return nil
	})

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:         log,
		RequestTimeout: cfg.RequestTimeout,
		Verification:   verifyhandler.New(verifySvc, log),
		Catalog:        cataloghandler.New(catalogSvc, log),
		Health:         healthHandler,
		Latency:        request.NewMetrics(reg),
		Gatherer:       reg,
	})
	srv := httpserver.New(cfg.Addr, router, cfg.RequestTimeout+cfg.VerifyDelay)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting http server",
			"addr", cfg.Addr,
			"environment", cfg.Environment,
			"codes", codes.Len(),
			"products", catalog.Len(),
			"verify_delay", cfg.VerifyDelay,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server gracefully")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
