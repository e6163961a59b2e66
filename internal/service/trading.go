// Package service implements the orchestration facade: one operation per
// REST capability, each composing the translator, a fresh backend
// connection and, for streaming capabilities, the JSON array bridge.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/herrhippopotamus/tradegate/internal/backend"
	"github.com/herrhippopotamus/tradegate/internal/dataloader"
	"github.com/herrhippopotamus/tradegate/internal/domain/dto"
	"github.com/herrhippopotamus/tradegate/internal/stream"
	"github.com/herrhippopotamus/tradegate/internal/timeutil"
	"github.com/herrhippopotamus/tradegate/internal/translate"
)

// ErrUpstream marks failures reaching or talking to the dataloader
// backend (connection refused, RPC error). Handlers map it to 502;
// nothing in this layer retries.
var ErrUpstream = errors.New("dataloader upstream failure")

// DefaultCallTimeout bounds every unary backend call. Streaming calls
// are bounded by the request lifetime instead.
const DefaultCallTimeout = 30 * time.Second

// TradingService exposes the trading/portfolio operations of the REST
// surface. Streaming operations return a fragment channel whose contents
// form a JSON array body; unary operations return translated DTOs.
type TradingService interface {
	Tickers(ctx context.Context, req dto.TickerFilter) (<-chan stream.Fragment, error)
	SecurityData(ctx context.Context, req dto.TimeSeriesReq) (<-chan stream.Fragment, error)
	Movements(ctx context.Context, req dto.MovementsReq) ([]dto.Movement, error)
	CorrelatingTickers(ctx context.Context, req dto.CorrelatingTickersReq) (<-chan stream.Fragment, error)
	MutualCorrelations(ctx context.Context, req dto.CorrelReq) ([]dto.MutualCorrel, error)
	Portfolio(ctx context.Context, id string) (dto.Portfolio, error)
	Portfolios(ctx context.Context, filter string) ([]dto.Portfolio, error)
	CreatePortfolio(ctx context.Context, req dto.CreatePortfolioReq) (dto.Portfolio, error)
	PortfolioSecurities(ctx context.Context, id string) ([]dto.PortfolioSecurity, error)
	BuySecurity(ctx context.Context, sec dto.PortfolioSecurity) (dto.OpResult, error)
	SellSecurity(ctx context.Context, sec dto.PortfolioSecurity) (dto.OpResult, error)
	PortfolioProfits(ctx context.Context, req dto.SecurityProfitReq) ([]dto.SecurityProfit, error)
}

type tradingService struct {
	backend     backend.Provider
	callTimeout time.Duration
}

// Option configures the trading service.
type Option func(*tradingService)

// WithCallTimeout overrides the per-call deadline applied to unary
// backend RPCs.
func WithCallTimeout(d time.Duration) Option {
	return func(s *tradingService) { s.callTimeout = d }
}

// NewTradingService builds the facade on top of a connection provider.
func NewTradingService(p backend.Provider, opts ...Option) TradingService {
	s := &tradingService{
		backend:     p,
		callTimeout: DefaultCallTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func upstream(err error) error {
	return fmt.Errorf("%w: %v", ErrUpstream, err)
}

// connect obtains a fresh backend client and schedules the connection to
// be torn down when ctx ends (for streaming ops the request context
// outlives the call frame, so a defer would close too early).
func (s *tradingService) connect(ctx context.Context) (dataloader.DataLoaderClient, func(), error) {
	client, closer, err := s.backend.Connect(ctx)
	if err != nil {
		return nil, nil, upstream(err)
	}
	stop := context.AfterFunc(ctx, func() { _ = closer.Close() })
	release := func() {
		if stop() {
			_ = closer.Close()
		}
	}
	return client, release, nil
}

// Tickers streams the tickers matching the filter as a JSON array.
func (s *tradingService) Tickers(ctx context.Context, req dto.TickerFilter) (<-chan stream.Fragment, error) {
	client, _, err := s.connect(ctx)
	if err != nil {
		return nil, err
	}
	sc, err := client.GetTickers(ctx, translate.TickerFilterToProto(req))
	if err != nil {
		return nil, upstream(err)
	}
	return stream.JSONArray(ctx, sc.Recv, func(t *dataloader.Ticker) ([]byte, error) {
		return json.Marshal(translate.TickerFromProto(t))
	}), nil
}

// SecurityData streams time-series points for one security.
func (s *tradingService) SecurityData(ctx context.Context, req dto.TimeSeriesReq) (<-chan stream.Fragment, error) {
	client, _, err := s.connect(ctx)
	if err != nil {
		return nil, err
	}
	sc, err := client.GetSecurityData(ctx, translate.TimeSeriesReqToProto(req))
	if err != nil {
		return nil, upstream(err)
	}
	return stream.JSONArray(ctx, sc.Recv, func(d *dataloader.TimeSeriesData) ([]byte, error) {
		return json.Marshal(translate.TimeSeriesDataFromProto(d))
	}), nil
}

// Movements returns the fully materialized movement list. When the
// caller asked for split exclusion on the aggregate equity class, a
// second backend call fetches the stock splits of the lookback window
// [until - duration(period), until] and every movement whose ticker
// split is dropped. The filter never reorders survivors, and the split
// query is skipped entirely whenever the rule does not apply.
func (s *tradingService) Movements(ctx context.Context, req dto.MovementsReq) ([]dto.Movement, error) {
	preq, err := translate.MovementsReqToProto(req)
	if err != nil {
		return nil, err
	}

	client, release, err := s.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	resp, err := client.GetMovements(callCtx, preq)
	if err != nil {
		return nil, upstream(err)
	}
	movements := make([]dto.Movement, 0, len(resp.GetMovements()))
	for _, m := range resp.GetMovements() {
		movements = append(movements, translate.MovementFromProto(m))
	}

	if !req.WithoutStockSplits || req.SecurityType != dto.SecurityTypeEquity {
		return movements, nil
	}

	split, err := s.splitTickers(callCtx, client, preq.GetUntil(), req.Period)
	if err != nil {
		return nil, err
	}
	if len(split) == 0 {
		return movements, nil
	}

	kept := movements[:0]
	for _, m := range movements {
		if _, hit := split[m.Ticker.Symbol]; !hit {
			kept = append(kept, m)
		}
	}
	return kept, nil
}

// splitTickers queries the backend for stock splits in the lookback
// window ending at the movements' own until boundary and returns the set
// of distinct tickers that split.
func (s *tradingService) splitTickers(ctx context.Context, client dataloader.DataLoaderClient, until string, period dto.Period) (map[string]struct{}, error) {
	end, err := timeutil.ParseDate(until)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", translate.ErrInvalidRequest, err)
	}
	lookback, err := period.Duration()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", translate.ErrInvalidRequest, err)
	}

	resp, err := client.GetStockSplits(ctx, &dataloader.StockSplitsReq{
		From:  timeutil.FormatDate(timeutil.LookbackStart(end, lookback)),
		Until: until,
	})
	if err != nil {
		return nil, upstream(err)
	}

	split := make(map[string]struct{}, len(resp.GetSplits()))
	for _, sp := range resp.GetSplits() {
		split[sp.GetTicker()] = struct{}{}
	}
	return split, nil
}

// CorrelatingTickers streams correlated ticker pairs. A pair missing a
// ticker identity is replaced in place by an error marker object rather
// than aborting the stream.
func (s *tradingService) CorrelatingTickers(ctx context.Context, req dto.CorrelatingTickersReq) (<-chan stream.Fragment, error) {
	preq, err := translate.CorrelTickersReqToProto(req)
	if err != nil {
		return nil, err
	}
	client, _, err := s.connect(ctx)
	if err != nil {
		return nil, err
	}
	sc, err := client.GetCorrelatingTickers(ctx, preq)
	if err != nil {
		return nil, upstream(err)
	}
	return stream.JSONArray(ctx, sc.Recv, func(c *dataloader.Correl) ([]byte, error) {
		conv, err := translate.CorrelFromProto(c)
		if err != nil {
			return nil, err
		}
		return json.Marshal(conv)
	}), nil
}

// MutualCorrelations returns per-anchor correlation bundles. Translation
// of the entire response fails if any nested entry is missing a ticker
// identity; partial results are never returned.
func (s *tradingService) MutualCorrelations(ctx context.Context, req dto.CorrelReq) ([]dto.MutualCorrel, error) {
	preq, err := translate.CorrelReqToProto(req)
	if err != nil {
		return nil, err
	}

	client, release, err := s.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	resp, err := client.GetMutualCorrelations(callCtx, preq)
	if err != nil {
		return nil, upstream(err)
	}
	return translate.MutualCorrelsFromProto(resp)
}

// Portfolio fetches one portfolio by id.
func (s *tradingService) Portfolio(ctx context.Context, id string) (dto.Portfolio, error) {
	client, release, err := s.connect(ctx)
	if err != nil {
		return dto.Portfolio{}, err
	}
	defer release()

	callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	resp, err := client.GetPortfolio(callCtx, &dataloader.Id{Id: id})
	if err != nil {
		return dto.Portfolio{}, upstream(err)
	}
	return translate.PortfolioFromProto(resp), nil
}

// Portfolios lists portfolios matching an optional free-text filter.
func (s *tradingService) Portfolios(ctx context.Context, filter string) ([]dto.Portfolio, error) {
	client, release, err := s.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	resp, err := client.GetPortfolios(callCtx, &dataloader.PortfolioReq{Filter: filter})
	if err != nil {
		return nil, upstream(err)
	}
	return translate.PortfoliosFromProto(resp), nil
}

// CreatePortfolio creates a portfolio and returns its stored metadata.
func (s *tradingService) CreatePortfolio(ctx context.Context, req dto.CreatePortfolioReq) (dto.Portfolio, error) {
	client, release, err := s.connect(ctx)
	if err != nil {
		return dto.Portfolio{}, err
	}
	defer release()

	callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	resp, err := client.CreatePortfolio(callCtx, &dataloader.CreatePortfolioReq{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return dto.Portfolio{}, upstream(err)
	}
	return translate.PortfolioFromProto(resp), nil
}

// PortfolioSecurities lists the security lots of one portfolio.
func (s *tradingService) PortfolioSecurities(ctx context.Context, id string) ([]dto.PortfolioSecurity, error) {
	client, release, err := s.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	resp, err := client.GetPortfolioSecurities(callCtx, &dataloader.Id{Id: id})
	if err != nil {
		return nil, upstream(err)
	}
	return translate.PortfolioSecuritiesFromProto(resp), nil
}

// BuySecurity records a purchase lot in a portfolio.
func (s *tradingService) BuySecurity(ctx context.Context, sec dto.PortfolioSecurity) (dto.OpResult, error) {
	return s.tradeSecurity(ctx, sec, func(c dataloader.DataLoaderClient, ctx context.Context, ps *dataloader.PortfolioSecurity) (*dataloader.OpStatus, error) {
		return c.BuySecurity(ctx, ps)
	})
}

// SellSecurity records a sale against a portfolio lot.
func (s *tradingService) SellSecurity(ctx context.Context, sec dto.PortfolioSecurity) (dto.OpResult, error) {
	return s.tradeSecurity(ctx, sec, func(c dataloader.DataLoaderClient, ctx context.Context, ps *dataloader.PortfolioSecurity) (*dataloader.OpStatus, error) {
		return c.SellSecurity(ctx, ps)
	})
}

type tradeCall func(dataloader.DataLoaderClient, context.Context, *dataloader.PortfolioSecurity) (*dataloader.OpStatus, error)

func (s *tradingService) tradeSecurity(ctx context.Context, sec dto.PortfolioSecurity, call tradeCall) (dto.OpResult, error) {
	client, release, err := s.connect(ctx)
	if err != nil {
		return dto.OpResult{}, err
	}
	defer release()

	callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	resp, err := call(client, callCtx, translate.PortfolioSecurityToProto(sec))
	if err != nil {
		return dto.OpResult{}, upstream(err)
	}
	return translate.OpResultFromProto(resp), nil
}

// PortfolioProfits returns computed profit records for the given lots.
func (s *tradingService) PortfolioProfits(ctx context.Context, req dto.SecurityProfitReq) ([]dto.SecurityProfit, error) {
	preq, err := translate.SecurityProfitReqToProto(req)
	if err != nil {
		return nil, err
	}

	client, release, err := s.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	resp, err := client.GetPortfolioProfits(callCtx, preq)
	if err != nil {
		return nil, upstream(err)
	}
	return translate.SecurityProfitsFromProto(resp), nil
}
