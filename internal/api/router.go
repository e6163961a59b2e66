package api

import (
	"github.com/gin-gonic/gin"
	"github.com/herrhippopotamus/tradegate/internal/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter creates a Gin engine with routes configured.
// It receives a Handler instance with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, RateLimiter).
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures the market-data and portfolio routes.
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in app.InitializeApp().
//   - There is no router-wide timeout middleware: the streaming endpoints
//     run as long as the backend keeps producing. Unary calls carry their
//     own deadline inside the service layer.
//
// Parameters:
//   - handler (*Handler): The HTTP handler with business logic.
//
// Returns:
//   - *gin.Engine: Configured Gin router.
func NewRouter(handler *Handler) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(),
	)

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── Market data ──────────────────────────────
	router.POST("/tickers", handler.Tickers)
	router.POST("/securityData", handler.SecurityData)
	router.POST("/movements", handler.Movements)
	router.POST("/correlatingTickers", handler.CorrelatingTickers)
	router.POST("/mutualCorrelations", handler.MutualCorrelations)

	// ─── Portfolio ────────────────────────────────
	router.GET("/portfolio", handler.GetPortfolio)
	router.GET("/portfolios", handler.GetPortfolios)
	router.GET("/portfolio/securities", handler.PortfolioSecurities)
	router.POST("/portfolio/create", handler.CreatePortfolio)
	router.POST("/portfolio/buy", handler.BuySecurity)
	router.POST("/portfolio/sell", handler.SellSecurity)
	router.POST("/portfolio/profits", handler.PortfolioProfits)

	return router
}
