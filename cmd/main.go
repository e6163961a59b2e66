package main

//
//  @title           tradegate API
//  @version         1.0
//  @description     REST gateway exposing the dataloader market-data and portfolio backend.
//  @termsOfService  https://github.com/herrhippopotamus/tradegate
//  @contact.name    API Support
//  @contact.url     https://github.com/herrhippopotamus/tradegate
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        market
//  @tag.description Endpoints for streaming tickers, time series and correlations
//
//  @tag.name        portfolio
//  @tag.description Endpoints for managing portfolios and computing profits
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/herrhippopotamus/tradegate/config"
	_ "github.com/herrhippopotamus/tradegate/docs" // swagger docs
	"github.com/herrhippopotamus/tradegate/internal/app"
	"github.com/herrhippopotamus/tradegate/internal/logger"
)

// newServer builds the HTTP server. WriteTimeout is deliberately zero:
// the streaming endpoints write for as long as the backend produces, and
// a fixed write deadline would cut long streams short.
func newServer(router http.Handler, port string) *http.Server {
	return &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// run starts the HTTP server and blocks until ctx is cancelled (SIGINT or
// SIGTERM), then shuts down gracefully and runs the cleanup callback.
func run(ctx context.Context, server *http.Server, cleanup func()) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.L().Info().Str("addr", server.Addr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.L().Info().Msg("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := server.Shutdown(shutdownCtx)
		cleanup()
		return err
	})

	return g.Wait()
}

// main is the entry point of the tradegate application.
//
// Flags:
//   - --port: Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	port := flag.String("port", config.AppConfig.Server.Port, "Port for the API server")
	flag.Parse()

	router, cleanup, err := app.InitializeApp()
	if err != nil {
		logger.L().Fatal().Err(err).Msg("app init error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, newServer(router, *port), cleanup); err != nil {
		logger.L().Fatal().Err(err).Msg("server exited with error")
	}
	logger.L().Info().Msg("server exited gracefully")
}
