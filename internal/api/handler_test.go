package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/herrhippopotamus/tradegate/internal/domain/dto"
	"github.com/herrhippopotamus/tradegate/internal/service"
	"github.com/herrhippopotamus/tradegate/internal/stream"
	"github.com/herrhippopotamus/tradegate/internal/translate"
)

// mockTradingSvc implements service.TradingService with per-test
// overrides; methods a test does not expect to hit fail loudly.
type mockTradingSvc struct {
	tickers       func(ctx context.Context, req dto.TickerFilter) (<-chan stream.Fragment, error)
	movements     func(ctx context.Context, req dto.MovementsReq) ([]dto.Movement, error)
	mutualCorrels func(ctx context.Context, req dto.CorrelReq) ([]dto.MutualCorrel, error)
	portfolio     func(ctx context.Context, id string) (dto.Portfolio, error)
	trade         func(ctx context.Context, sec dto.PortfolioSecurity) (dto.OpResult, error)
}

var _ service.TradingService = (*mockTradingSvc)(nil)

func (m *mockTradingSvc) Tickers(ctx context.Context, req dto.TickerFilter) (<-chan stream.Fragment, error) {
	return m.tickers(ctx, req)
}

func (m *mockTradingSvc) SecurityData(ctx context.Context, req dto.TimeSeriesReq) (<-chan stream.Fragment, error) {
	return nil, fmt.Errorf("unexpected call")
}

func (m *mockTradingSvc) Movements(ctx context.Context, req dto.MovementsReq) ([]dto.Movement, error) {
	return m.movements(ctx, req)
}

func (m *mockTradingSvc) CorrelatingTickers(ctx context.Context, req dto.CorrelatingTickersReq) (<-chan stream.Fragment, error) {
	return nil, fmt.Errorf("unexpected call")
}

func (m *mockTradingSvc) MutualCorrelations(ctx context.Context, req dto.CorrelReq) ([]dto.MutualCorrel, error) {
	return m.mutualCorrels(ctx, req)
}

func (m *mockTradingSvc) Portfolio(ctx context.Context, id string) (dto.Portfolio, error) {
	return m.portfolio(ctx, id)
}

func (m *mockTradingSvc) Portfolios(ctx context.Context, filter string) ([]dto.Portfolio, error) {
	return nil, fmt.Errorf("unexpected call")
}

func (m *mockTradingSvc) CreatePortfolio(ctx context.Context, req dto.CreatePortfolioReq) (dto.Portfolio, error) {
	return dto.Portfolio{ID: "new", Name: req.Name}, nil
}

func (m *mockTradingSvc) PortfolioSecurities(ctx context.Context, id string) ([]dto.PortfolioSecurity, error) {
	return nil, fmt.Errorf("unexpected call")
}

func (m *mockTradingSvc) BuySecurity(ctx context.Context, sec dto.PortfolioSecurity) (dto.OpResult, error) {
	return m.trade(ctx, sec)
}

func (m *mockTradingSvc) SellSecurity(ctx context.Context, sec dto.PortfolioSecurity) (dto.OpResult, error) {
	return m.trade(ctx, sec)
}

func (m *mockTradingSvc) PortfolioProfits(ctx context.Context, req dto.SecurityProfitReq) ([]dto.SecurityProfit, error) {
	return nil, fmt.Errorf("unexpected call")
}

// fragmentsOf fakes a bridge channel emitting the given fragments.
func fragmentsOf(frags ...stream.Fragment) <-chan stream.Fragment {
	ch := make(chan stream.Fragment, len(frags))
	for _, f := range frags {
		ch <- f
	}
	close(ch)
	return ch
}

func newTestRouter(svc service.TradingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(NewHandler(svc))
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestTickers_StreamsBody(t *testing.T) {
	svc := &mockTradingSvc{
		tickers: func(ctx context.Context, req dto.TickerFilter) (<-chan stream.Fragment, error) {
			return fragmentsOf(
				stream.Fragment{Data: []byte("[")},
				stream.Fragment{Data: []byte(`{"ticker":"AAPL","security_type":0}`)},
				stream.Fragment{Data: []byte(`,{"ticker":"MSFT","security_type":0}`)},
				stream.Fragment{Data: []byte("]")},
			), nil
		},
	}
	w := postJSON(newTestRouter(svc), "/tickers", `{}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	want := `[{"ticker":"AAPL","security_type":0},{"ticker":"MSFT","security_type":0}]`
	if w.Body.String() != want {
		t.Fatalf("body=%s, want %s", w.Body.String(), want)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("content-type=%q", ct)
	}
}

func TestTickers_TerminalErrorLeavesBodyTruncated(t *testing.T) {
	svc := &mockTradingSvc{
		tickers: func(ctx context.Context, req dto.TickerFilter) (<-chan stream.Fragment, error) {
			return fragmentsOf(
				stream.Fragment{Data: []byte("[")},
				stream.Fragment{Data: []byte(`{"ticker":"AAPL","security_type":0}`)},
				stream.Fragment{Err: fmt.Errorf("backend hung up")},
			), nil
		},
	}
	w := postJSON(newTestRouter(svc), "/tickers", `{}`)

	// Status was already committed; the truncated body is the signal.
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if body := w.Body.String(); strings.HasSuffix(body, "]") {
		t.Fatalf("body must stay truncated, got %s", body)
	}
}

func TestTickers_BadBody(t *testing.T) {
	w := postJSON(newTestRouter(&mockTradingSvc{}), "/tickers", `{not json`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", w.Code)
	}
}

func TestMovements_ErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{name: "invalid request", err: fmt.Errorf("%w: bad date", translate.ErrInvalidRequest), status: http.StatusBadRequest},
		{name: "upstream failure", err: fmt.Errorf("%w: refused", service.ErrUpstream), status: http.StatusBadGateway},
		{name: "bad shape", err: fmt.Errorf("%w: no ticker", translate.ErrBadShape), status: http.StatusInternalServerError},
		{name: "unknown", err: fmt.Errorf("boom"), status: http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockTradingSvc{
				movements: func(ctx context.Context, req dto.MovementsReq) ([]dto.Movement, error) {
					return nil, tc.err
				},
			}
			w := postJSON(newTestRouter(svc), "/movements", `{"until":"2024-01-31"}`)
			if w.Code != tc.status {
				t.Fatalf("status=%d, want %d (body: %s)", w.Code, tc.status, w.Body.String())
			}
		})
	}
}

func TestMovements_Success(t *testing.T) {
	svc := &mockTradingSvc{
		movements: func(ctx context.Context, req dto.MovementsReq) ([]dto.Movement, error) {
			if !req.WithoutStockSplits {
				t.Fatalf("flag not bound from body")
			}
			return []dto.Movement{{Ticker: dto.Ticker{Symbol: "AAA"}}}, nil
		},
	}
	w := postJSON(newTestRouter(svc), "/movements",
		`{"until":"2024-01-31","period":4,"without_stock_splits":true}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"AAA"`) {
		t.Fatalf("body=%s", w.Body.String())
	}
}

func TestGetPortfolio_RequiresID(t *testing.T) {
	svc := &mockTradingSvc{
		portfolio: func(ctx context.Context, id string) (dto.Portfolio, error) {
			t.Fatalf("service must not be called without id")
			return dto.Portfolio{}, nil
		},
	}
	w := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/portfolio", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", w.Code)
	}
}

func TestGetPortfolio_Success(t *testing.T) {
	svc := &mockTradingSvc{
		portfolio: func(ctx context.Context, id string) (dto.Portfolio, error) {
			if id != "p1" {
				t.Fatalf("id=%q", id)
			}
			return dto.Portfolio{ID: "p1", Name: "retirement"}, nil
		},
	}
	w := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/portfolio?id=p1", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"retirement"`) {
		t.Fatalf("body=%s", w.Body.String())
	}
}

func TestBuySecurity_ForwardsLot(t *testing.T) {
	svc := &mockTradingSvc{
		trade: func(ctx context.Context, sec dto.PortfolioSecurity) (dto.OpResult, error) {
			if sec.PortfolioID != "p1" || sec.Ticker != "AAPL" {
				t.Fatalf("lot not bound: %+v", sec)
			}
			return dto.OpResult{Success: true}, nil
		},
	}
	w := postJSON(newTestRouter(svc), "/portfolio/buy",
		`{"portfolio_id":"p1","ticker":"AAPL","volume":10}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"success":true`) {
		t.Fatalf("body=%s", w.Body.String())
	}
}

func TestSellSecurity_MissingRequiredField(t *testing.T) {
	svc := &mockTradingSvc{
		trade: func(ctx context.Context, sec dto.PortfolioSecurity) (dto.OpResult, error) {
			t.Fatalf("service must not be called with invalid body")
			return dto.OpResult{}, nil
		},
	}
	// ticker is required by the binding
	w := postJSON(newTestRouter(svc), "/portfolio/sell", `{"portfolio_id":"p1"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", w.Code)
	}
}

func TestMutualCorrelations_BadShapeIs500(t *testing.T) {
	svc := &mockTradingSvc{
		mutualCorrels: func(ctx context.Context, req dto.CorrelReq) ([]dto.MutualCorrel, error) {
			return nil, fmt.Errorf("%w: missing anchor", translate.ErrBadShape)
		},
	}
	w := postJSON(newTestRouter(svc), "/mutualCorrelations", `{"period":3}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d, want 500", w.Code)
	}
}
