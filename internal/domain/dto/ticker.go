package dto

import "encoding/json"

// Security-type codes understood by the backend. Code 0 is the aggregate
// equity class; the stock-split movement filter only applies to it.
const (
	SecurityTypeEquity int32 = iota
	SecurityTypeETF
	SecurityTypeIndex
	SecurityTypeCrypto
)

// Ticker is one listed security as returned to REST callers.
//
// CustomFields is flattened into the top-level JSON object: a ticker with
// custom fields {"sector": "tech"} serializes as
// {"ticker":"AAPL","security_type":0,"sector":"tech"}, not with a nested
// "custom_fields" key. Named fields win on key collisions.
type Ticker struct {
	Symbol       string            `json:"ticker" example:"AAPL"` // Ticker symbol
	Name         *string           `json:"name,omitempty"`        // Optional display name
	SecurityType int32             `json:"security_type"`         // Backend security-type code
	CustomFields map[string]string `json:"-"`                     // Flattened extra attributes
}

// BasicTicker is the minimal ticker identity used in request payloads.
type BasicTicker struct {
	Symbol       string `json:"ticker" binding:"required" example:"AAPL"`
	SecurityType int32  `json:"security_type"`
}

// TickerFilter is the request body of POST /tickers.
//
// Optional fields are pointers so that "absent" can be told apart from a
// zero value; the translator fills the documented defaults (limit 100,
// traded_within_past_n_days 10).
type TickerFilter struct {
	SecurityType          int32   `json:"security_type"`
	Filter                *string `json:"filter,omitempty" example:"aapl"`
	Limit                 *uint32 `json:"limit,omitempty" example:"10"`
	TradedWithinPastNDays *uint32 `json:"traded_within_past_n_days,omitempty" example:"10"`
}

// tickerAlias avoids MarshalJSON recursion on the named fields.
type tickerAlias Ticker

// MarshalJSON flattens CustomFields into the top-level object.
func (t Ticker) MarshalJSON() ([]byte, error) {
	base, err := json.Marshal(tickerAlias(t))
	if err != nil {
		return nil, err
	}
	if len(t.CustomFields) == 0 {
		return base, nil
	}

	var flat map[string]any
	if err := json.Unmarshal(base, &flat); err != nil {
		return nil, err
	}
	for k, v := range t.CustomFields {
		if _, taken := flat[k]; !taken {
			flat[k] = v
		}
	}
	return json.Marshal(flat)
}

// UnmarshalJSON is the inverse of MarshalJSON: unknown string keys are
// collected into CustomFields.
func (t *Ticker) UnmarshalJSON(data []byte) error {
	var alias tickerAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	delete(raw, "ticker")
	delete(raw, "name")
	delete(raw, "security_type")
	for k, v := range raw {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			// non-string extras are not custom fields
			continue
		}
		if alias.CustomFields == nil {
			alias.CustomFields = make(map[string]string)
		}
		alias.CustomFields[k] = s
	}

	*t = Ticker(alias)
	return nil
}
