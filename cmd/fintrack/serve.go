package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/google/subcommands"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/fintrack/internal/auth"
	"github.com/mmynk/fintrack/internal/config"
	"github.com/mmynk/fintrack/internal/middleware"
	"github.com/mmynk/fintrack/internal/service"
	"github.com/mmynk/fintrack/pkg/api/apiconnect"
	"github.com/mmynk/fintrack/pkg/logging"
)

const shutdownTimeout = 10 * time.Second

type serveCmd struct {
	port int
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "run the Connect RPC server" }
func (*serveCmd) Usage() string {
	return `fintrack serve [-port <port>]

  Serves the Auth, Ledger, Sharing and Asset services over HTTP/2 cleartext,
  with Prometheus metrics on /metrics and a liveness probe on /healthz.
  Settings come from the environment and an optional .env file.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.port, "port", 0, "Listen port. Overrides PORT.")
}

func (c *serveCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Format)
	if c.port != 0 {
		cfg.Port = c.port
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, cfg); err != nil {
		slog.Error("Server failed", "error", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func serve(ctx context.Context, cfg *config.Config) error {
	seeds, err := cfg.SeedCategories()
	if err != nil {
		return err
	}

	guard, closeGuard, err := openGuard(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeGuard()

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenDuration)
	users := service.NewUserStore(guard, seeds)
	authenticator := auth.NewPasswordAuthenticator(users)

	authOpt := middleware.WithUserIDHeader(cfg.Auth.TrustUserHeader)
	if cfg.Auth.TrustUserHeader {
		slog.Warn("Accepting unauthenticated user header", "header", middleware.UserIDHeader)
	}
	observe := connect.WithInterceptors(middleware.LoggingInterceptor(), middleware.MetricsInterceptor())
	public := []connect.HandlerOption{observe, connect.WithInterceptors(middleware.OptionalAuth(jwtManager, authOpt))}
	private := []connect.HandlerOption{observe, connect.WithInterceptors(middleware.RequireAuth(jwtManager, authOpt))}

	mux := http.NewServeMux()

	// Register Connect services
	authPath, authHandler := apiconnect.NewAuthServiceHandler(
		service.NewAuthService(authenticator, users, jwtManager, slog.Default()), public...)
	mux.Handle(authPath, authHandler)

	ledgerPath, ledgerHandler := apiconnect.NewLedgerServiceHandler(service.NewLedgerService(guard), private...)
	mux.Handle(ledgerPath, ledgerHandler)

	sharingPath, sharingHandler := apiconnect.NewSharingServiceHandler(service.NewSharingService(guard), private...)
	mux.Handle(sharingPath, sharingHandler)

	assetPath, assetHandler := apiconnect.NewAssetServiceHandler(service.NewAssetService(guard), private...)
	mux.Handle(assetPath, assetHandler)

	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	handler := h2c.NewHandler(loggingMiddleware(corsMiddleware(mux)), &http2.Server{})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Connect server starting", "address", srv.Addr, "url", fmt.Sprintf("http://localhost%s", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		slog.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
