package dto

// Portfolio is portfolio identity plus metadata; the backend owns the
// durable record, this layer only passes it through.
type Portfolio struct {
	ID          string `json:"id" example:"3f6c2a"`
	Name        string `json:"name" example:"retirement"`
	Description string `json:"description"`
}

// CreatePortfolioReq is the request body of POST /portfolio/create.
type CreatePortfolioReq struct {
	Name        string `json:"name" binding:"required" example:"retirement"`
	Description string `json:"description"`
}

// PortfolioSecurity is one security lot held in a portfolio.
type PortfolioSecurity struct {
	PortfolioID  string  `json:"portfolio_id" binding:"required"`
	SecurityType int32   `json:"security_type"`
	Ticker       string  `json:"ticker" binding:"required"`
	Volume       float64 `json:"volume"`
	PurchaseDate string  `json:"purchase_date"`
	SellDate     string  `json:"sell_date"`
}

// OpResult acknowledges a buy or sell operation.
type OpResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
