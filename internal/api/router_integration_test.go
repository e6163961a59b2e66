//go:build integration
// +build integration

package api_test

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/grpc"

	"github.com/herrhippopotamus/tradegate/config"
	"github.com/herrhippopotamus/tradegate/internal/app"
	"github.com/herrhippopotamus/tradegate/internal/dataloader"
)

// stubLoader serves a small fixed dataset over real gRPC so the whole
// gateway path (dial, stream, translate, HTTP) is exercised end to end.
type stubLoader struct {
	dataloader.UnimplementedDataLoaderServer
}

func (s *stubLoader) GetTickers(req *dataloader.TickerFilter, srv dataloader.DataLoader_GetTickersServer) error {
	tickers := []*dataloader.Ticker{
		{Ticker: "AAPL", Name: "Apple Inc.", CustomFields: map[string]string{"sector": "tech"}},
		{Ticker: "MSFT", Name: "Microsoft"},
	}
	limit := int(req.GetLimit())
	for i, tk := range tickers {
		if i >= limit {
			break
		}
		if err := srv.Send(tk); err != nil {
			return err
		}
	}
	return nil
}

func (s *stubLoader) GetMovements(ctx context.Context, req *dataloader.MovementsReq) (*dataloader.Movements, error) {
	return &dataloader.Movements{Movements: []*dataloader.Movement{
		{Ticker: "AAA"},
		{Ticker: "XYZ"},
	}}, nil
}

func (s *stubLoader) GetStockSplits(ctx context.Context, req *dataloader.StockSplitsReq) (*dataloader.StockSplits, error) {
	return &dataloader.StockSplits{Splits: []*dataloader.StockSplit{
		{Ticker: "XYZ", Date: "2024-01-28"},
	}}, nil
}

func startBackend(t *testing.T) (port int, stop func()) {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	srv := grpc.NewServer()
	dataloader.RegisterDataLoaderServer(srv, &stubLoader{})
	go func() { _ = srv.Serve(lis) }()
	return lis.Addr().(*net.TCPAddr).Port, srv.Stop
}

func TestGateway_E2E(t *testing.T) {
	port, stop := startBackend(t)
	defer stop()

	old := config.AppConfig
	t.Cleanup(func() { config.AppConfig = old })
	config.AppConfig = config.Config{
		Server:     config.ServerConfig{Port: "8080"},
		Dataloader: config.DataloaderConfig{Host: "127.0.0.1", Port: port},
	}

	router, cleanup, err := app.InitializeApp()
	if err != nil {
		t.Fatalf("init app: %v", err)
	}
	defer cleanup()

	t.Run("tickers stream", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/tickers",
			strings.NewReader(`{"limit":10}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}
		var got []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid json: %v\n%s", err, w.Body.String())
		}
		if len(got) != 2 || got[0]["ticker"] != "AAPL" || got[0]["sector"] != "tech" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("movements with split filter", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/movements",
			strings.NewReader(`{"until":"2024-01-31","period":4,"without_stock_splits":true}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}
		var got []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("split ticker not filtered: %s", w.Body.String())
		}
	})

	t.Run("readyz", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("readyz status=%d", w.Code)
		}
	})
}
