package app

import (
	"github.com/gin-gonic/gin"
	"github.com/herrhippopotamus/tradegate/config"
	"github.com/herrhippopotamus/tradegate/internal/api"
	"github.com/herrhippopotamus/tradegate/internal/backend"
	"github.com/herrhippopotamus/tradegate/internal/service"
)

// newDialer builds the backend dialer from configuration.
// Indirection for unit testing.
var newDialer = func(cfg config.Config) *backend.Dialer {
	return backend.NewDialer(cfg.Dataloader.Host, cfg.Dataloader.Port)
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the dataloader dialer from configuration.
//   - Initializes the trading facade (business logic).
//   - Creates the HTTP handler layer to handle requests.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources.
//
// Note:
//   - Connections to the backend are opened per facade call and closed
//     when the call (or stream) ends, so there is no long-lived backend
//     handle to tear down here.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Backend connectivity (one fresh connection per facade call)
	dialer := newDialer(cfg)

	// Initialize service layer (business logic)
	svc := service.NewTradingService(dialer)

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(dialer.Ping)
	healthHandler.Register(router)

	cleanup := func() {}

	return router, cleanup, nil
}
