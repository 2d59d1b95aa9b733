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

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/futmanager/internal/auth"
	"github.com/mmynk/futmanager/internal/balancer"
	"github.com/mmynk/futmanager/internal/config"
	"github.com/mmynk/futmanager/internal/middleware"
	"github.com/mmynk/futmanager/internal/notify"
	"github.com/mmynk/futmanager/internal/oracle"
	"github.com/mmynk/futmanager/internal/scheduler"
	"github.com/mmynk/futmanager/internal/service"
	"github.com/mmynk/futmanager/internal/storage"
	"github.com/mmynk/futmanager/pkg/api/apiconnect"
	"github.com/mmynk/futmanager/pkg/logging"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))

	if err := run(cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	backend, err := openBackend(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	store := storage.New(backend)
	defer store.Close()
	slog.Info("Storage initialized", "driver", cfg.Store.Driver)

	// Finance gate
	gate, err := auth.NewPassphraseGate(cfg.Finance.Passphrase)
	if err != nil {
		return fmt.Errorf("invalid FINANCE_PASSPHRASE: %w", err)
	}
	sessions, err := auth.NewEphemeralSessionManager(cfg.Finance.SessionTTL)
	if err != nil {
		return err
	}

	// External oracle is optional
	var (
		oracleStrategy balancer.Strategy
		avatars        service.AvatarGenerator
	)
	client, err := oracle.New(ctx, oracle.Config{
		APIKey:     cfg.Oracle.APIKey,
		TeamModel:  cfg.Oracle.TeamModel,
		ImageModel: cfg.Oracle.ImageModel,
		Timeout:    cfg.Oracle.Timeout,
	})
	switch {
	case errors.Is(err, oracle.ErrDisabled):
		slog.Info("Oracle disabled, GEMINI_API_KEY not set")
	case err != nil:
		return err
	default:
		oracleStrategy = balancer.NewOracle(client)
		avatars = client
		slog.Info("Oracle enabled", "team_model", cfg.Oracle.TeamModel, "image_model", cfg.Oracle.ImageModel)
	}

	var notifier notify.Notifier = notify.Log{}
	if cfg.TelegramEnabled() {
		tg, err := notify.NewTelegram(cfg.Telegram.Token, cfg.Telegram.ChatID)
		if err != nil {
			return err
		}
		notifier = tg
	}

	rosterSvc := service.NewRosterService(store, avatars)
	matchSvc := service.NewMatchService(store, oracleStrategy, notifier, loc)
	eventSvc := service.NewEventService(store, loc)
	financeSvc := service.NewFinanceService(store, loc)
	gateSvc := service.NewGateService(gate, sessions, slog.Default())

	sched, err := scheduler.NewScheduler(scheduler.Config{
		Day:      cfg.Report.Day,
		Hour:     cfg.Report.Hour,
		Location: loc,
	}, financeSvc.MonthlyReport, notifier)
	if err != nil {
		return err
	}
	if err := sched.Start(); err != nil {
		return err
	}
	defer sched.Stop()

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.LogRequests)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "Connect-Protocol-Version", "Connect-Timeout-Ms"},
		ExposedHeaders: []string{"Connect-Protocol-Version", "Connect-Timeout-Ms"},
		MaxAge:         300,
	}))

	// Register Connect services
	interceptors := connect.WithInterceptors(
		middleware.MetricsInterceptor(),
		middleware.LoggingInterceptor(),
	)
	mount := func(path string, handler http.Handler) {
		r.Handle(path+"*", handler)
	}
	mount(apiconnect.NewRosterServiceHandler(rosterSvc, interceptors))
	mount(apiconnect.NewMatchServiceHandler(matchSvc, interceptors))
	mount(apiconnect.NewEventServiceHandler(eventSvc, interceptors))
	mount(apiconnect.NewGateServiceHandler(gateSvc, interceptors))
	mount(apiconnect.NewFinanceServiceHandler(financeSvc, connect.WithInterceptors(
		middleware.MetricsInterceptor(),
		middleware.LoggingInterceptor(),
		middleware.RequireSession(sessions),
	)))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	static, err := newStaticHandler(cfg.StaticPath)
	if err != nil {
		return err
	}
	r.Handle("/*", static)

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           h2c.NewHandler(r, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", server.Addr, "url", fmt.Sprintf("http://localhost%s", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	slog.Info("Server stopped")
	return nil
}
