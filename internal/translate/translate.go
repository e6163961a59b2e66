// Package translate maps REST request/response shapes to and from the
// dataloader protocol messages. All functions are pure: defaults are
// filled on the way in, required nested identities are enforced on the
// way out, and nothing here talks to the network.
package translate

import (
	"errors"
	"fmt"

	"github.com/herrhippopotamus/tradegate/internal/dataloader"
	"github.com/herrhippopotamus/tradegate/internal/domain/dto"
	"github.com/herrhippopotamus/tradegate/internal/timeutil"
)

// Defaults applied to optional TickerFilter fields.
const (
	DefaultTickerLimit     = 100
	DefaultTradedPastNDays = 10
)

var (
	// ErrInvalidRequest marks a REST request that fails translation
	// (bad date, unknown period code). Handlers map it to 400.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrBadShape marks a backend response that violates the protocol
	// contract (e.g. a correlation entry without a ticker identity).
	// It is deliberately distinct from upstream transport failures so
	// operators can tell "backend unreachable" from "backend returned
	// a shape we refuse to trust".
	ErrBadShape = errors.New("invalid backend response shape")
)

// TickerFilterToProto fills the documented defaults: a missing limit
// becomes 100, a missing traded_within_past_n_days becomes 10.
func TickerFilterToProto(f dto.TickerFilter) *dataloader.TickerFilter {
	out := &dataloader.TickerFilter{
		TickerType:            f.SecurityType,
		Limit:                 DefaultTickerLimit,
		TradedWithinPastNDays: DefaultTradedPastNDays,
	}
	if f.Filter != nil {
		out.Filter = *f.Filter
	}
	if f.Limit != nil {
		out.Limit = *f.Limit
	}
	if f.TradedWithinPastNDays != nil {
		out.TradedWithinPastNDays = *f.TradedWithinPastNDays
	}
	return out
}

// MovementsReqToProto validates the window and normalizes the until date
// to its canonical YYYY-MM-DD form.
func MovementsReqToProto(m dto.MovementsReq) (*dataloader.MovementsReq, error) {
	until, err := timeutil.ParseDate(m.Until)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if !m.Period.Valid() {
		return nil, fmt.Errorf("%w: unknown period code %d", ErrInvalidRequest, m.Period)
	}
	return &dataloader.MovementsReq{
		SecurityType: m.SecurityType,
		SortBy:       m.SortBy,
		Until:        timeutil.FormatDate(until),
		Period:       int32(m.Period),
		Limit:        m.Limit,
		MinVolume:    m.MinVolume,
		MinVariance:  m.MinVariance,
		MaxVariance:  m.MaxVariance,
	}, nil
}

// TimeSeriesReqToProto builds the backend time-series request. Intraday
// resolution is always requested; the backend decides what it can serve.
func TimeSeriesReqToProto(r dto.TimeSeriesReq) *dataloader.TimeSeriesReq {
	return &dataloader.TimeSeriesReq{
		Ticker:    BasicTickerToProto(r.Ticker),
		FromDate:  r.From,
		UntilDate: r.Until,
		Intraday:  true,
	}
}

// CorrelTickersReqToProto validates the window of a correlating-tickers
// request.
func CorrelTickersReqToProto(r dto.CorrelatingTickersReq) (*dataloader.CorrelTickersReq, error) {
	until, err := timeutil.ParseDate(r.Until)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if !r.Period.Valid() {
		return nil, fmt.Errorf("%w: unknown period code %d", ErrInvalidRequest, r.Period)
	}
	return &dataloader.CorrelTickersReq{
		Until:     timeutil.FormatDate(until),
		Period:    int32(r.Period),
		Limit:     r.Limit,
		MinVolume: r.MinVolume,
		Sign:      r.Sign,
	}, nil
}

// CorrelReqToProto builds a mutual-correlations request. The ticker set
// and until date are optional; an empty until means "latest available".
func CorrelReqToProto(r dto.CorrelReq) (*dataloader.CorrelReq, error) {
	if !r.Period.Valid() {
		return nil, fmt.Errorf("%w: unknown period code %d", ErrInvalidRequest, r.Period)
	}
	out := &dataloader.CorrelReq{
		Until:     r.Until,
		Period:    int32(r.Period),
		MinVolume: r.MinVolume,
		Sign:      r.Sign,
	}
	if r.Until != "" {
		until, err := timeutil.ParseDate(r.Until)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		}
		out.Until = timeutil.FormatDate(until)
	}
	for _, t := range r.Tickers {
		out.Tickers = append(out.Tickers, BasicTickerToProto(t))
	}
	return out, nil
}

// BasicTickerToProto converts a minimal ticker identity.
func BasicTickerToProto(t dto.BasicTicker) *dataloader.BasicTicker {
	return &dataloader.BasicTicker{
		Ticker:       t.Symbol,
		SecurityType: t.SecurityType,
	}
}

// SecurityProfitReqToProto converts a profit request; a missing purchase
// date travels as an empty string, a missing sell date stays empty.
func SecurityProfitReqToProto(r dto.SecurityProfitReq) (*dataloader.SecurityProfitReq, error) {
	until, err := timeutil.ParseDate(r.Until)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if !r.Partition.Valid() {
		return nil, fmt.Errorf("%w: unknown period code %d", ErrInvalidRequest, r.Partition)
	}
	out := &dataloader.SecurityProfitReq{
		Until:     timeutil.FormatDate(until),
		Partition: int32(r.Partition),
	}
	for _, s := range r.Securities {
		sec := &dataloader.SecurityProfitReq_Security{
			SecurityType: s.SecurityType,
			Ticker:       s.Ticker,
			Volume:       s.Volume,
		}
		if s.PurchaseDate != nil {
			sec.PurchaseDate = *s.PurchaseDate
		}
		if s.SellDate != nil {
			sec.SellDate = *s.SellDate
		}
		out.Securities = append(out.Securities, sec)
	}
	return out, nil
}

// PortfolioSecurityToProto converts a security lot for buy/sell calls.
func PortfolioSecurityToProto(s dto.PortfolioSecurity) *dataloader.PortfolioSecurity {
	return &dataloader.PortfolioSecurity{
		PortfolioId:  s.PortfolioID,
		SecurityType: s.SecurityType,
		Ticker:       s.Ticker,
		Volume:       s.Volume,
		PurchaseDate: s.PurchaseDate,
		SellDate:     s.SellDate,
	}
}
