package dto

// TimeSeriesReq is the request body of POST /securityData.
type TimeSeriesReq struct {
	Ticker BasicTicker `json:"ticker" binding:"required"`
	From   string      `json:"from" binding:"required" example:"2024-01-01"`
	Until  string      `json:"until" binding:"required" example:"2024-01-31"`
}

// TimeSeriesData is one point of a streamed security time series.
type TimeSeriesData struct {
	Date   string             `json:"date" example:"2024-01-15T09:30:00"`
	Values map[string]float64 `json:"values"`
}
