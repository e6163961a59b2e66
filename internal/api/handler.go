package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/herrhippopotamus/tradegate/internal/domain/dto"
	"github.com/herrhippopotamus/tradegate/internal/logger"
	"github.com/herrhippopotamus/tradegate/internal/service"
	"github.com/herrhippopotamus/tradegate/internal/stream"
	"github.com/herrhippopotamus/tradegate/internal/translate"
)

// Handler provides HTTP handlers for the trading gateway endpoints.
//
// Responsibilities:
//   - Bind and validate incoming JSON bodies and query parameters
//   - Call the trading facade with the request context
//   - Stream or return JSON responses with appropriate HTTP status codes
type Handler struct {
	svc service.TradingService
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (service.TradingService): The facade all endpoints delegate to.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc service.TradingService) *Handler {
	return &Handler{svc: svc}
}

// respondError maps the facade error taxonomy onto HTTP status codes:
//   - invalid request (bad date, unknown period code) → 400
//   - upstream failure (backend unreachable, RPC error) → 502
//   - contract violation in a backend response → 500
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, translate.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request", err))
	case errors.Is(err, service.ErrUpstream):
		c.JSON(http.StatusBadGateway, dto.NewErrorResponse("upstream failure", err))
	case errors.Is(err, translate.ErrBadShape):
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("invalid upstream response", err))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("internal error", err))
	}
}

// streamArray drains the bridge channel into the response body, flushing
// after every fragment so items reach the client as they arrive. Errors
// here happen after the status line and part of the array have been
// written, so the body is left truncated (and thereby detectable by any
// JSON parser) rather than patched up.
func streamArray(c *gin.Context, fragments <-chan stream.Fragment) {
	c.Header("Content-Type", "application/json; charset=utf-8")
	c.Status(http.StatusOK)

	for f := range fragments {
		if f.Err != nil {
			logger.L().Error().Err(f.Err).
				Str("path", c.Request.URL.Path).
				Msg("stream aborted mid-response")
			return
		}
		if _, err := c.Writer.Write(f.Data); err != nil {
			// Client went away; the bridge stops via the request context.
			return
		}
		c.Writer.Flush()
	}
}

// Tickers handles POST /tickers requests.
//
// Tickers godoc
// @Summary      Stream tickers
// @Description  Streams the tickers matching the filter as an incrementally written JSON array
// @Tags         market
// @Accept       json
// @Produce      json
// @Param        filter  body      dto.TickerFilter   true  "Ticker filter"
// @Success      200     {array}   dto.Ticker         "Success"
// @Failure      400     {object}  dto.ErrorResponse  "Bad Request"
// @Failure      502     {object}  dto.ErrorResponse  "Upstream Failure"
// @Router       /tickers [post]
func (h *Handler) Tickers(c *gin.Context) {
	var req dto.TickerFilter
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}

	fragments, err := h.svc.Tickers(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	streamArray(c, fragments)
}

// SecurityData handles POST /securityData requests.
//
// SecurityData godoc
// @Summary      Stream security time series
// @Description  Streams {date, values} points for one security as an incrementally written JSON array
// @Tags         market
// @Accept       json
// @Produce      json
// @Param        req  body      dto.TimeSeriesReq   true  "Time series request"
// @Success      200  {array}   dto.TimeSeriesData  "Success"
// @Failure      400  {object}  dto.ErrorResponse   "Bad Request"
// @Failure      502  {object}  dto.ErrorResponse   "Upstream Failure"
// @Router       /securityData [post]
func (h *Handler) SecurityData(c *gin.Context) {
	var req dto.TimeSeriesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}

	fragments, err := h.svc.SecurityData(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	streamArray(c, fragments)
}

// Movements handles POST /movements requests. The response is fully
// materialized because of the optional stock-split filtering pass.
//
// Movements godoc
// @Summary      Query movements
// @Description  Returns movement statistics, optionally excluding equities with a recent stock split
// @Tags         market
// @Accept       json
// @Produce      json
// @Param        req  body      dto.MovementsReq   true  "Movements request"
// @Success      200  {array}   dto.Movement       "Success"
// @Failure      400  {object}  dto.ErrorResponse  "Bad Request"
// @Failure      502  {object}  dto.ErrorResponse  "Upstream Failure"
// @Router       /movements [post]
func (h *Handler) Movements(c *gin.Context) {
	var req dto.MovementsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}

	movements, err := h.svc.Movements(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, movements)
}

// CorrelatingTickers handles POST /correlatingTickers requests.
//
// CorrelatingTickers godoc
// @Summary      Stream correlating ticker pairs
// @Description  Streams correlated ticker pairs for the given window as an incrementally written JSON array
// @Tags         market
// @Accept       json
// @Produce      json
// @Param        req  body      dto.CorrelatingTickersReq  true  "Correlation window"
// @Success      200  {array}   dto.CorrelatingTickers     "Success"
// @Failure      400  {object}  dto.ErrorResponse          "Bad Request"
// @Failure      502  {object}  dto.ErrorResponse          "Upstream Failure"
// @Router       /correlatingTickers [post]
func (h *Handler) CorrelatingTickers(c *gin.Context) {
	var req dto.CorrelatingTickersReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}

	fragments, err := h.svc.CorrelatingTickers(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	streamArray(c, fragments)
}

// MutualCorrelations handles POST /mutualCorrelations requests.
//
// MutualCorrelations godoc
// @Summary      Query mutual correlations
// @Description  Returns per-anchor-ticker correlation bundles; the whole request fails if the backend omits a ticker identity
// @Tags         market
// @Accept       json
// @Produce      json
// @Param        req  body      dto.CorrelReq      true  "Correlation request"
// @Success      200  {array}   dto.MutualCorrel   "Success"
// @Failure      400  {object}  dto.ErrorResponse  "Bad Request"
// @Failure      500  {object}  dto.ErrorResponse  "Invalid Upstream Response"
// @Failure      502  {object}  dto.ErrorResponse  "Upstream Failure"
// @Router       /mutualCorrelations [post]
func (h *Handler) MutualCorrelations(c *gin.Context) {
	var req dto.CorrelReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}

	correls, err := h.svc.MutualCorrelations(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, correls)
}

// GetPortfolio handles GET /portfolio requests.
//
// GetPortfolio godoc
// @Summary      Get portfolio by id
// @Tags         portfolio
// @Produce      json
// @Param        id   query     string  true  "Portfolio id"
// @Success      200  {object}  dto.Portfolio      "Success"
// @Failure      400  {object}  dto.ErrorResponse  "Bad Request"
// @Failure      502  {object}  dto.ErrorResponse  "Upstream Failure"
// @Router       /portfolio [get]
func (h *Handler) GetPortfolio(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("id is required", nil))
		return
	}

	portfolio, err := h.svc.Portfolio(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, portfolio)
}

// GetPortfolios handles GET /portfolios requests.
//
// GetPortfolios godoc
// @Summary      List portfolios
// @Tags         portfolio
// @Produce      json
// @Param        filter  query     string  false  "Free-text name filter"
// @Success      200     {array}   dto.Portfolio      "Success"
// @Failure      502     {object}  dto.ErrorResponse  "Upstream Failure"
// @Router       /portfolios [get]
func (h *Handler) GetPortfolios(c *gin.Context) {
	portfolios, err := h.svc.Portfolios(c.Request.Context(), c.Query("filter"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, portfolios)
}

// CreatePortfolio handles POST /portfolio/create requests.
//
// CreatePortfolio godoc
// @Summary      Create a portfolio
// @Tags         portfolio
// @Accept       json
// @Produce      json
// @Param        req  body      dto.CreatePortfolioReq  true  "Name and description"
// @Success      200  {object}  dto.Portfolio      "Success"
// @Failure      400  {object}  dto.ErrorResponse  "Bad Request"
// @Failure      502  {object}  dto.ErrorResponse  "Upstream Failure"
// @Router       /portfolio/create [post]
func (h *Handler) CreatePortfolio(c *gin.Context) {
	var req dto.CreatePortfolioReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}

	portfolio, err := h.svc.CreatePortfolio(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, portfolio)
}

// BuySecurity handles POST /portfolio/buy requests.
//
// BuySecurity godoc
// @Summary      Buy a security into a portfolio
// @Tags         portfolio
// @Accept       json
// @Produce      json
// @Param        req  body      dto.PortfolioSecurity  true  "Security lot"
// @Success      200  {object}  dto.OpResult       "Success"
// @Failure      400  {object}  dto.ErrorResponse  "Bad Request"
// @Failure      502  {object}  dto.ErrorResponse  "Upstream Failure"
// @Router       /portfolio/buy [post]
func (h *Handler) BuySecurity(c *gin.Context) {
	h.tradeSecurity(c, h.svc.BuySecurity)
}

// SellSecurity handles POST /portfolio/sell requests.
//
// SellSecurity godoc
// @Summary      Sell a security from a portfolio
// @Tags         portfolio
// @Accept       json
// @Produce      json
// @Param        req  body      dto.PortfolioSecurity  true  "Security lot"
// @Success      200  {object}  dto.OpResult       "Success"
// @Failure      400  {object}  dto.ErrorResponse  "Bad Request"
// @Failure      502  {object}  dto.ErrorResponse  "Upstream Failure"
// @Router       /portfolio/sell [post]
func (h *Handler) SellSecurity(c *gin.Context) {
	h.tradeSecurity(c, h.svc.SellSecurity)
}

// tradeSecurity is the shared body of the buy and sell endpoints; the
// two differ only in the facade operation invoked.
func (h *Handler) tradeSecurity(c *gin.Context, op func(context.Context, dto.PortfolioSecurity) (dto.OpResult, error)) {
	var req dto.PortfolioSecurity
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}

	result, err := op(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// PortfolioSecurities handles GET /portfolio/securities requests.
//
// PortfolioSecurities godoc
// @Summary      List portfolio securities
// @Tags         portfolio
// @Produce      json
// @Param        id   query     string  true  "Portfolio id"
// @Success      200  {array}   dto.PortfolioSecurity  "Success"
// @Failure      400  {object}  dto.ErrorResponse      "Bad Request"
// @Failure      502  {object}  dto.ErrorResponse      "Upstream Failure"
// @Router       /portfolio/securities [get]
func (h *Handler) PortfolioSecurities(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("id is required", nil))
		return
	}

	securities, err := h.svc.PortfolioSecurities(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, securities)
}

// PortfolioProfits handles POST /portfolio/profits requests.
//
// PortfolioProfits godoc
// @Summary      Compute security profits
// @Description  Returns per-lot profit figures partitioned by the requested period
// @Tags         portfolio
// @Accept       json
// @Produce      json
// @Param        req  body      dto.SecurityProfitReq  true  "Profit request"
// @Success      200  {array}   dto.SecurityProfit  "Success"
// @Failure      400  {object}  dto.ErrorResponse   "Bad Request"
// @Failure      502  {object}  dto.ErrorResponse   "Upstream Failure"
// @Router       /portfolio/profits [post]
func (h *Handler) PortfolioProfits(c *gin.Context) {
	var req dto.SecurityProfitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}

	profits, err := h.svc.PortfolioProfits(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profits)
}
