package dto

// Security is one lot inside a SecurityProfitReq. Purchase and sell dates
// are optional; a missing purchase date is sent to the backend as an
// empty string.
type Security struct {
	SecurityType int32   `json:"security_type"`
	Ticker       string  `json:"ticker" binding:"required"`
	Volume       float64 `json:"volume"`
	PurchaseDate *string `json:"purchase_date,omitempty"`
	SellDate     *string `json:"sell_date,omitempty"`
}

// SecurityProfitReq is the request body of POST /portfolio/profits.
// Partition is a period code selecting the backend's profit partition.
type SecurityProfitReq struct {
	Until      string     `json:"until" binding:"required" example:"2024-01-31"`
	Partition  Period     `json:"partition"`
	Securities []Security `json:"securities" binding:"required"`
}

// SecurityProfit is one computed profit record, passed through from the
// backend unmodified.
type SecurityProfit struct {
	Ticker         string  `json:"ticker"`
	SecurityType   int32   `json:"security_type"`
	PurchaseDate   string  `json:"purchase_date"`
	Until          string  `json:"until"`
	PurchasePrice  float64 `json:"purchase_price"`
	ProfitPerShare float64 `json:"profit_per_share"`
	Volume         float64 `json:"volume"`
	TotalProfit    float64 `json:"total_profit"`
}
