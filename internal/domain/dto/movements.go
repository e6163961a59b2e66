package dto

// MovementsReq is the request body of POST /movements.
//
// Until is the inclusive upper bound of the statistics window; the period
// code selects the window length (see Period). WithoutStockSplits asks
// the gateway to drop movements of tickers that had a stock split inside
// the lookback window [until - duration(period), until]; the extra
// backend query is only issued for the aggregate equity class.
type MovementsReq struct {
	SecurityType       int32   `json:"security_type"`
	SortBy             int32   `json:"sort_by"`
	Until              string  `json:"until" binding:"required" example:"2024-01-31"`
	Period             Period  `json:"period"`
	Limit              uint32  `json:"limit" example:"25"`
	MinVolume          uint64  `json:"min_volume"`
	MinVariance        float64 `json:"min_variance"`
	MaxVariance        float64 `json:"max_variance"`
	WithoutStockSplits bool    `json:"without_stock_splits"`
}

// Movement is one entry of the POST /movements response.
type Movement struct {
	Ticker      Ticker  `json:"ticker"`
	Performance float64 `json:"performance"`
	Average     float64 `json:"average"`
	Volume      float64 `json:"volume"`
	Variance    float64 `json:"variance"`
	Stddev      float64 `json:"stddev"`
	Date        string  `json:"date"`
	Period      Period  `json:"period"`
}
