package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"google.golang.org/grpc"

	"github.com/herrhippopotamus/tradegate/internal/dataloader"
	"github.com/herrhippopotamus/tradegate/internal/domain/dto"
	"github.com/herrhippopotamus/tradegate/internal/stream"
)

// fakeBackend hands out the same fake client on every Connect and counts
// connections and closes.
type fakeBackend struct {
	client     *fakeClient
	connectErr error
	connects   int32
	closes     int32
}

func (f *fakeBackend) Connect(ctx context.Context) (dataloader.DataLoaderClient, io.Closer, error) {
	if f.connectErr != nil {
		return nil, nil, f.connectErr
	}
	atomic.AddInt32(&f.connects, 1)
	return f.client, closerFunc(func() error {
		atomic.AddInt32(&f.closes, 1)
		return nil
	}), nil
}

type closerFunc func() error

func (c closerFunc) Close() error { return c() }

// fakeClient is a hand-written DataLoaderClient double. Responses and
// errors are configured per method; requests are captured for assertions.
type fakeClient struct {
	tickers    []*dataloader.Ticker
	tickersErr error

	seriesData []*dataloader.TimeSeriesData

	movements    *dataloader.Movements
	movementsErr error
	movementsReq *dataloader.MovementsReq

	splits     *dataloader.StockSplits
	splitsReq  *dataloader.StockSplitsReq
	splitCalls int32

	correls []*dataloader.Correl

	mutualCorrels *dataloader.MutualCorrels

	portfolio  *dataloader.PortfolioMeta
	portfolios *dataloader.PortfolioMetas
	securities *dataloader.PortfolioSecurities
	opStatus   *dataloader.OpStatus
	tradedSec  *dataloader.PortfolioSecurity
	profits    *dataloader.SecurityProfits
}

var _ dataloader.DataLoaderClient = (*fakeClient)(nil)

func (f *fakeClient) GetTickers(ctx context.Context, in *dataloader.TickerFilter, opts ...grpc.CallOption) (dataloader.DataLoader_GetTickersClient, error) {
	if f.tickersErr != nil {
		return nil, f.tickersErr
	}
	return &fakeTickerStream{items: f.tickers}, nil
}

func (f *fakeClient) GetSecurityData(ctx context.Context, in *dataloader.TimeSeriesReq, opts ...grpc.CallOption) (dataloader.DataLoader_GetSecurityDataClient, error) {
	return &fakeSeriesStream{items: f.seriesData}, nil
}

func (f *fakeClient) GetMovements(ctx context.Context, in *dataloader.MovementsReq, opts ...grpc.CallOption) (*dataloader.Movements, error) {
	f.movementsReq = in
	return f.movements, f.movementsErr
}

func (f *fakeClient) GetStockSplits(ctx context.Context, in *dataloader.StockSplitsReq, opts ...grpc.CallOption) (*dataloader.StockSplits, error) {
	atomic.AddInt32(&f.splitCalls, 1)
	f.splitsReq = in
	return f.splits, nil
}

func (f *fakeClient) GetCorrelatingTickers(ctx context.Context, in *dataloader.CorrelTickersReq, opts ...grpc.CallOption) (dataloader.DataLoader_GetCorrelatingTickersClient, error) {
	return &fakeCorrelStream{items: f.correls}, nil
}

func (f *fakeClient) GetMutualCorrelations(ctx context.Context, in *dataloader.CorrelReq, opts ...grpc.CallOption) (*dataloader.MutualCorrels, error) {
	return f.mutualCorrels, nil
}

func (f *fakeClient) GetPortfolio(ctx context.Context, in *dataloader.Id, opts ...grpc.CallOption) (*dataloader.PortfolioMeta, error) {
	return f.portfolio, nil
}

func (f *fakeClient) GetPortfolios(ctx context.Context, in *dataloader.PortfolioReq, opts ...grpc.CallOption) (*dataloader.PortfolioMetas, error) {
	return f.portfolios, nil
}

func (f *fakeClient) CreatePortfolio(ctx context.Context, in *dataloader.CreatePortfolioReq, opts ...grpc.CallOption) (*dataloader.PortfolioMeta, error) {
	return f.portfolio, nil
}

func (f *fakeClient) GetPortfolioSecurities(ctx context.Context, in *dataloader.Id, opts ...grpc.CallOption) (*dataloader.PortfolioSecurities, error) {
	return f.securities, nil
}

func (f *fakeClient) BuySecurity(ctx context.Context, in *dataloader.PortfolioSecurity, opts ...grpc.CallOption) (*dataloader.OpStatus, error) {
	f.tradedSec = in
	return f.opStatus, nil
}

func (f *fakeClient) SellSecurity(ctx context.Context, in *dataloader.PortfolioSecurity, opts ...grpc.CallOption) (*dataloader.OpStatus, error) {
	f.tradedSec = in
	return f.opStatus, nil
}

func (f *fakeClient) GetPortfolioProfits(ctx context.Context, in *dataloader.SecurityProfitReq, opts ...grpc.CallOption) (*dataloader.SecurityProfits, error) {
	return f.profits, nil
}

// Fake streaming clients: the embedded nil ClientStream satisfies the
// interface; only Recv is ever called by the bridge.

type fakeTickerStream struct {
	grpc.ClientStream
	items []*dataloader.Ticker
	i     int
}

func (s *fakeTickerStream) Recv() (*dataloader.Ticker, error) {
	if s.i >= len(s.items) {
		return nil, io.EOF
	}
	item := s.items[s.i]
	s.i++
	return item, nil
}

type fakeSeriesStream struct {
	grpc.ClientStream
	items []*dataloader.TimeSeriesData
	i     int
}

func (s *fakeSeriesStream) Recv() (*dataloader.TimeSeriesData, error) {
	if s.i >= len(s.items) {
		return nil, io.EOF
	}
	item := s.items[s.i]
	s.i++
	return item, nil
}

type fakeCorrelStream struct {
	grpc.ClientStream
	items []*dataloader.Correl
	i     int
}

func (s *fakeCorrelStream) Recv() (*dataloader.Correl, error) {
	if s.i >= len(s.items) {
		return nil, io.EOF
	}
	item := s.items[s.i]
	s.i++
	return item, nil
}

func drainFragments(t *testing.T, ch <-chan stream.Fragment) string {
	t.Helper()
	var sb strings.Builder
	for f := range ch {
		if f.Err != nil {
			t.Fatalf("unexpected stream error: %v", f.Err)
		}
		sb.Write(f.Data)
	}
	return sb.String()
}

func movement(ticker string) *dataloader.Movement {
	return &dataloader.Movement{Ticker: ticker, SecurityType: dto.SecurityTypeEquity}
}

func TestMovements_SplitFilterDropsSplitTickers(t *testing.T) {
	fc := &fakeClient{
		movements: &dataloader.Movements{Movements: []*dataloader.Movement{
			movement("AAA"), movement("XYZ"), movement("BBB"),
		}},
		splits: &dataloader.StockSplits{Splits: []*dataloader.StockSplit{
			{Ticker: "XYZ", Date: "2024-01-28"},
		}},
	}
	svc := NewTradingService(&fakeBackend{client: fc})

	out, err := svc.Movements(context.Background(), dto.MovementsReq{
		SecurityType:       dto.SecurityTypeEquity,
		Until:              "2024-01-31",
		Period:             dto.PeriodWeek,
		WithoutStockSplits: true,
	})
	if err != nil {
		t.Fatalf("Movements: %v", err)
	}

	if len(out) != 2 || out[0].Ticker.Symbol != "AAA" || out[1].Ticker.Symbol != "BBB" {
		t.Fatalf("split ticker not filtered or order lost: %+v", out)
	}
	if n := atomic.LoadInt32(&fc.splitCalls); n != 1 {
		t.Fatalf("split query issued %d times, want 1", n)
	}

	// The lookback window derives from the movements' own until boundary.
	if fc.splitsReq.GetUntil() != "2024-01-31" || fc.splitsReq.GetFrom() != "2024-01-24" {
		t.Fatalf("split window [%s, %s], want [2024-01-24, 2024-01-31]",
			fc.splitsReq.GetFrom(), fc.splitsReq.GetUntil())
	}
}

func TestMovements_NoSplitQueryWhenFlagOff(t *testing.T) {
	fc := &fakeClient{
		movements: &dataloader.Movements{Movements: []*dataloader.Movement{movement("AAA")}},
	}
	svc := NewTradingService(&fakeBackend{client: fc})

	out, err := svc.Movements(context.Background(), dto.MovementsReq{
		SecurityType: dto.SecurityTypeEquity,
		Until:        "2024-01-31",
		Period:       dto.PeriodWeek,
	})
	if err != nil {
		t.Fatalf("Movements: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("movements=%d, want 1", len(out))
	}
	if n := atomic.LoadInt32(&fc.splitCalls); n != 0 {
		t.Fatalf("split query issued %d times, want 0", n)
	}
}

func TestMovements_NoSplitQueryForNonEquity(t *testing.T) {
	fc := &fakeClient{
		movements: &dataloader.Movements{Movements: []*dataloader.Movement{movement("QQQ")}},
	}
	svc := NewTradingService(&fakeBackend{client: fc})

	_, err := svc.Movements(context.Background(), dto.MovementsReq{
		SecurityType:       dto.SecurityTypeETF,
		Until:              "2024-01-31",
		Period:             dto.PeriodWeek,
		WithoutStockSplits: true,
	})
	if err != nil {
		t.Fatalf("Movements: %v", err)
	}
	if n := atomic.LoadInt32(&fc.splitCalls); n != 0 {
		t.Fatalf("split query issued for non-equity class")
	}
}

func TestMovements_EmptySplitSetKeepsAll(t *testing.T) {
	fc := &fakeClient{
		movements: &dataloader.Movements{Movements: []*dataloader.Movement{
			movement("AAA"), movement("BBB"),
		}},
		splits: &dataloader.StockSplits{},
	}
	svc := NewTradingService(&fakeBackend{client: fc})

	out, err := svc.Movements(context.Background(), dto.MovementsReq{
		SecurityType:       dto.SecurityTypeEquity,
		Until:              "2024-01-31",
		Period:             dto.PeriodMonth,
		WithoutStockSplits: true,
	})
	if err != nil {
		t.Fatalf("Movements: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("movements=%d, want 2", len(out))
	}
}

func TestMovements_UpstreamError(t *testing.T) {
	fc := &fakeClient{movementsErr: errors.New("unavailable")}
	svc := NewTradingService(&fakeBackend{client: fc})

	_, err := svc.Movements(context.Background(), dto.MovementsReq{
		Until:  "2024-01-31",
		Period: dto.PeriodWeek,
	})
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("err=%v, want ErrUpstream", err)
	}
}

func TestMovements_ClosesConnection(t *testing.T) {
	fb := &fakeBackend{client: &fakeClient{movements: &dataloader.Movements{}}}
	svc := NewTradingService(fb)

	if _, err := svc.Movements(context.Background(), dto.MovementsReq{
		Until:  "2024-01-31",
		Period: dto.PeriodWeek,
	}); err != nil {
		t.Fatalf("Movements: %v", err)
	}
	if n := atomic.LoadInt32(&fb.closes); n != 1 {
		t.Fatalf("connection closed %d times, want 1", n)
	}
}

func TestTickers_StreamsFlattenedArray(t *testing.T) {
	fc := &fakeClient{tickers: []*dataloader.Ticker{
		{Ticker: "AAPL", Name: "Apple Inc.", CustomFields: map[string]string{"sector": "tech"}},
		{Ticker: "MSFT", Name: "Microsoft"},
	}}
	svc := NewTradingService(&fakeBackend{client: fc})

	ch, err := svc.Tickers(context.Background(), dto.TickerFilter{})
	if err != nil {
		t.Fatalf("Tickers: %v", err)
	}
	body := drainFragments(t, ch)

	var got []map[string]any
	if err := json.Unmarshal([]byte(body), &got); err != nil {
		t.Fatalf("response is not a JSON array: %v\n%s", err, body)
	}
	if len(got) != 2 {
		t.Fatalf("items=%d, want 2", len(got))
	}
	if got[0]["ticker"] != "AAPL" || got[0]["sector"] != "tech" {
		t.Fatalf("custom field not flattened: %v", got[0])
	}
	if _, nested := got[0]["custom_fields"]; nested {
		t.Fatalf("custom_fields key leaked into response: %v", got[0])
	}
}

func TestTickers_UpstreamError(t *testing.T) {
	fc := &fakeClient{tickersErr: errors.New("unavailable")}
	svc := NewTradingService(&fakeBackend{client: fc})

	_, err := svc.Tickers(context.Background(), dto.TickerFilter{})
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("err=%v, want ErrUpstream", err)
	}
}

func TestTickers_ConnectionClosedOnContextEnd(t *testing.T) {
	fb := &fakeBackend{client: &fakeClient{}}
	svc := NewTradingService(fb)

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := svc.Tickers(ctx, dto.TickerFilter{})
	if err != nil {
		t.Fatalf("Tickers: %v", err)
	}
	drainFragments(t, ch)
	cancel()

	// The close runs via context.AfterFunc, so poll briefly.
	deadline := time.Now().Add(2 * time.Second)
	for atomic.LoadInt32(&fb.closes) == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("connection not closed after context end")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestConnectFailureIsUpstream(t *testing.T) {
	svc := NewTradingService(&fakeBackend{connectErr: errors.New("refused")})

	if _, err := svc.Portfolio(context.Background(), "p1"); !errors.Is(err, ErrUpstream) {
		t.Fatalf("err=%v, want ErrUpstream", err)
	}
	if _, err := svc.Tickers(context.Background(), dto.TickerFilter{}); !errors.Is(err, ErrUpstream) {
		t.Fatalf("err=%v, want ErrUpstream", err)
	}
}

func TestBuySellSecurity(t *testing.T) {
	fc := &fakeClient{opStatus: &dataloader.OpStatus{Success: true}}
	svc := NewTradingService(&fakeBackend{client: fc})

	sec := dto.PortfolioSecurity{PortfolioID: "p1", Ticker: "AAPL", Volume: 10, PurchaseDate: "2024-01-02"}

	res, err := svc.BuySecurity(context.Background(), sec)
	if err != nil || !res.Success {
		t.Fatalf("BuySecurity: res=%+v err=%v", res, err)
	}
	if fc.tradedSec.GetPortfolioId() != "p1" || fc.tradedSec.GetTicker() != "AAPL" {
		t.Fatalf("lot not forwarded: %+v", fc.tradedSec)
	}

	fc.opStatus = &dataloader.OpStatus{Success: false, Error: "not enough shares"}
	res, err = svc.SellSecurity(context.Background(), sec)
	if err != nil {
		t.Fatalf("SellSecurity: %v", err)
	}
	if res.Success || res.Error != "not enough shares" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestMutualCorrelations_BadShapeFailsWhole(t *testing.T) {
	fc := &fakeClient{mutualCorrels: &dataloader.MutualCorrels{
		Correls: []*dataloader.MutualCorrel{{}}, // anchor ticker missing
	}}
	svc := NewTradingService(&fakeBackend{client: fc})

	out, err := svc.MutualCorrelations(context.Background(), dto.CorrelReq{Period: dto.PeriodMonth})
	if err == nil || out != nil {
		t.Fatalf("expected whole-response failure, got %+v", out)
	}
}

func TestPortfolioProfits(t *testing.T) {
	fc := &fakeClient{profits: &dataloader.SecurityProfits{
		Profits: []*dataloader.SecurityProfit{
			{Ticker: "AAPL", TotalProfit: 123.45},
		},
	}}
	svc := NewTradingService(&fakeBackend{client: fc})

	out, err := svc.PortfolioProfits(context.Background(), dto.SecurityProfitReq{
		Until:      "2024-01-31",
		Partition:  dto.PeriodQuarter,
		Securities: []dto.Security{{Ticker: "AAPL", Volume: 10}},
	})
	if err != nil {
		t.Fatalf("PortfolioProfits: %v", err)
	}
	if len(out) != 1 || out[0].TotalProfit != 123.45 {
		t.Fatalf("unexpected profits: %+v", out)
	}
}

func TestPortfolioLifecycleOps(t *testing.T) {
	fc := &fakeClient{
		portfolio:  &dataloader.PortfolioMeta{Id: "p1", Name: "retirement"},
		portfolios: &dataloader.PortfolioMetas{Portfolios: []*dataloader.PortfolioMeta{{Id: "p1"}, {Id: "p2"}}},
		securities: &dataloader.PortfolioSecurities{Securities: []*dataloader.PortfolioSecurity{{Ticker: "AAPL"}}},
	}
	svc := NewTradingService(&fakeBackend{client: fc})
	ctx := context.Background()

	p, err := svc.Portfolio(ctx, "p1")
	if err != nil || p.ID != "p1" {
		t.Fatalf("Portfolio: %+v err=%v", p, err)
	}

	ps, err := svc.Portfolios(ctx, "")
	if err != nil || len(ps) != 2 {
		t.Fatalf("Portfolios: %+v err=%v", ps, err)
	}

	created, err := svc.CreatePortfolio(ctx, dto.CreatePortfolioReq{Name: "retirement"})
	if err != nil || created.Name != "retirement" {
		t.Fatalf("CreatePortfolio: %+v err=%v", created, err)
	}

	secs, err := svc.PortfolioSecurities(ctx, "p1")
	if err != nil || len(secs) != 1 || secs[0].Ticker != "AAPL" {
		t.Fatalf("PortfolioSecurities: %+v err=%v", secs, err)
	}
}
