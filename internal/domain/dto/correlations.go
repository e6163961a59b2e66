package dto

// CorrelatingTickersReq is the request body of POST /correlatingTickers.
// MinVolume and Sign are optional filters; Sign restricts results to
// positive (+1) or negative (-1) correlations, 0 means both.
type CorrelatingTickersReq struct {
	Until     string `json:"until" binding:"required" example:"2024-01-31"`
	Period    Period `json:"period"`
	Limit     uint32 `json:"limit" example:"50"`
	MinVolume uint64 `json:"min_volume"`
	Sign      int32  `json:"sign" example:"1"`
}

// CorrelatingTickers is one entry of the streamed correlation response:
// a pair of tickers and the correlation computed between them.
type CorrelatingTickers struct {
	Tickers     []Ticker `json:"tickers"`
	Correlation float64  `json:"correlation"`
	Date        string   `json:"date"`
	Period      Period   `json:"period"`
	Volume0     float64  `json:"volume0"`
	Volume1     float64  `json:"volume1"`
}

// CorrelReq is the request body of POST /mutualCorrelations.
type CorrelReq struct {
	Tickers   []BasicTicker `json:"tickers,omitempty"`
	Until     string        `json:"until,omitempty" example:"2024-01-31"`
	Period    Period        `json:"period"`
	MinVolume uint64        `json:"min_volume"`
	Sign      int32         `json:"sign"`
}

// DetailedCorrel names both ticker identities of one correlation entry.
// Both identities are mandatory; the translator refuses backend responses
// that omit either one.
type DetailedCorrel struct {
	Ticker0     Ticker  `json:"ticker0"`
	Ticker1     Ticker  `json:"ticker1"`
	Date        string  `json:"date"`
	Period      Period  `json:"period"`
	Correlation float64 `json:"correlation"`
}

// MutualCorrel bundles all correlations of one anchor ticker together
// with its aggregate statistics.
type MutualCorrel struct {
	Ticker       Ticker           `json:"ticker"`
	Correlations []DetailedCorrel `json:"correlations"`
	Volatility   float64          `json:"volatility"`
	Stddev       float64          `json:"stddev"`
	Performance  float64          `json:"performance"`
	Volume       float64          `json:"volume"`
}
