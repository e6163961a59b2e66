package translate

import (
	"fmt"

	"github.com/herrhippopotamus/tradegate/internal/dataloader"
	"github.com/herrhippopotamus/tradegate/internal/domain/dto"
)

// TickerFromProto converts a backend ticker. The backend always carries a
// name, so it is surfaced even when empty.
func TickerFromProto(t *dataloader.Ticker) dto.Ticker {
	name := t.GetName()
	return dto.Ticker{
		Symbol:       t.GetTicker(),
		Name:         &name,
		SecurityType: t.GetSecurityType(),
		CustomFields: t.GetCustomFields(),
	}
}

func basicTickerFromProto(t *dataloader.BasicTicker) dto.Ticker {
	return dto.Ticker{
		Symbol:       t.GetTicker(),
		SecurityType: t.GetSecurityType(),
	}
}

// TimeSeriesDataFromProto converts one streamed time-series point.
func TimeSeriesDataFromProto(d *dataloader.TimeSeriesData) dto.TimeSeriesData {
	return dto.TimeSeriesData{
		Date:   d.GetDate(),
		Values: d.GetValues(),
	}
}

// MovementFromProto converts one movement entry. Movements carry their
// ticker inline rather than as a nested message.
func MovementFromProto(m *dataloader.Movement) dto.Movement {
	name := m.GetName()
	return dto.Movement{
		Ticker: dto.Ticker{
			Symbol:       m.GetTicker(),
			Name:         &name,
			SecurityType: m.GetSecurityType(),
		},
		Performance: m.GetPerformance(),
		Average:     m.GetAverage(),
		Volume:      m.GetVolume(),
		Variance:    m.GetVariance(),
		Stddev:      m.GetStddev(),
		Date:        m.GetDate(),
		Period:      dto.Period(m.GetPeriod()),
	}
}

// CorrelFromProto converts one streamed correlation pair. Both ticker
// identities are required by the contract.
func CorrelFromProto(c *dataloader.Correl) (dto.CorrelatingTickers, error) {
	if c.GetTicker0() == nil || c.GetTicker1() == nil {
		return dto.CorrelatingTickers{}, fmt.Errorf("%w: correlation entry missing a ticker identity", ErrBadShape)
	}
	return dto.CorrelatingTickers{
		Tickers: []dto.Ticker{
			basicTickerFromProto(c.GetTicker0()),
			basicTickerFromProto(c.GetTicker1()),
		},
		Correlation: c.GetCorrel(),
		Date:        c.GetDate(),
		Period:      dto.Period(c.GetPeriod()),
		Volume0:     c.GetVolume0(),
		Volume1:     c.GetVolume1(),
	}, nil
}

// DetailedCorrelFromProto enforces that both ticker identities are
// present; absence of either is a contract violation, not a nullable
// field.
func DetailedCorrelFromProto(c *dataloader.DetailedCorrel) (dto.DetailedCorrel, error) {
	if c.GetTicker0() == nil || c.GetTicker1() == nil {
		return dto.DetailedCorrel{}, fmt.Errorf("%w: detailed correlation missing a ticker identity", ErrBadShape)
	}
	return dto.DetailedCorrel{
		Ticker0:     TickerFromProto(c.GetTicker0()),
		Ticker1:     TickerFromProto(c.GetTicker1()),
		Date:        c.GetDate(),
		Period:      dto.Period(c.GetPeriod()),
		Correlation: c.GetCorrel(),
	}, nil
}

// MutualCorrelFromProto converts one correlation bundle. Any invalid
// nested entry fails the whole bundle.
func MutualCorrelFromProto(c *dataloader.MutualCorrel) (dto.MutualCorrel, error) {
	if c.GetTicker() == nil {
		return dto.MutualCorrel{}, fmt.Errorf("%w: mutual correlation missing anchor ticker", ErrBadShape)
	}
	out := dto.MutualCorrel{
		Ticker:       TickerFromProto(c.GetTicker()),
		Correlations: make([]dto.DetailedCorrel, 0, len(c.GetCorrelations())),
		Volatility:   c.GetVolatility(),
		Stddev:       c.GetStddev(),
		Performance:  c.GetPerformance(),
		Volume:       c.GetVolume(),
	}
	for _, d := range c.GetCorrelations() {
		conv, err := DetailedCorrelFromProto(d)
		if err != nil {
			return dto.MutualCorrel{}, err
		}
		out.Correlations = append(out.Correlations, conv)
	}
	return out, nil
}

// MutualCorrelsFromProto converts the full response; translation of the
// entire list fails on the first invalid bundle so that callers never see
// a partial result.
func MutualCorrelsFromProto(c *dataloader.MutualCorrels) ([]dto.MutualCorrel, error) {
	out := make([]dto.MutualCorrel, 0, len(c.GetCorrels()))
	for _, m := range c.GetCorrels() {
		conv, err := MutualCorrelFromProto(m)
		if err != nil {
			return nil, err
		}
		out = append(out, conv)
	}
	return out, nil
}

// PortfolioFromProto converts portfolio metadata.
func PortfolioFromProto(p *dataloader.PortfolioMeta) dto.Portfolio {
	return dto.Portfolio{
		ID:          p.GetId(),
		Name:        p.GetName(),
		Description: p.GetDescription(),
	}
}

// PortfoliosFromProto converts a portfolio listing.
func PortfoliosFromProto(p *dataloader.PortfolioMetas) []dto.Portfolio {
	out := make([]dto.Portfolio, 0, len(p.GetPortfolios()))
	for _, meta := range p.GetPortfolios() {
		out = append(out, PortfolioFromProto(meta))
	}
	return out
}

// PortfolioSecurityFromProto converts one security lot.
func PortfolioSecurityFromProto(s *dataloader.PortfolioSecurity) dto.PortfolioSecurity {
	return dto.PortfolioSecurity{
		PortfolioID:  s.GetPortfolioId(),
		SecurityType: s.GetSecurityType(),
		Ticker:       s.GetTicker(),
		Volume:       s.GetVolume(),
		PurchaseDate: s.GetPurchaseDate(),
		SellDate:     s.GetSellDate(),
	}
}

// PortfolioSecuritiesFromProto converts a holdings listing.
func PortfolioSecuritiesFromProto(s *dataloader.PortfolioSecurities) []dto.PortfolioSecurity {
	out := make([]dto.PortfolioSecurity, 0, len(s.GetSecurities()))
	for _, sec := range s.GetSecurities() {
		out = append(out, PortfolioSecurityFromProto(sec))
	}
	return out
}

// OpResultFromProto converts a buy/sell acknowledgement.
func OpResultFromProto(s *dataloader.OpStatus) dto.OpResult {
	return dto.OpResult{
		Success: s.GetSuccess(),
		Error:   s.GetError(),
	}
}

// SecurityProfitFromProto converts one profit record.
func SecurityProfitFromProto(p *dataloader.SecurityProfit) dto.SecurityProfit {
	return dto.SecurityProfit{
		Ticker:         p.GetTicker(),
		SecurityType:   p.GetSecurityType(),
		PurchaseDate:   p.GetPurchaseDate(),
		Until:          p.GetUntil(),
		PurchasePrice:  p.GetPurchasePrice(),
		ProfitPerShare: p.GetProfitPerShare(),
		Volume:         p.GetVolume(),
		TotalProfit:    p.GetTotalProfit(),
	}
}

// SecurityProfitsFromProto converts a profit listing.
func SecurityProfitsFromProto(p *dataloader.SecurityProfits) []dto.SecurityProfit {
	out := make([]dto.SecurityProfit, 0, len(p.GetProfits()))
	for _, profit := range p.GetProfits() {
		out = append(out, SecurityProfitFromProto(profit))
	}
	return out
}
