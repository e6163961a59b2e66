package dto

import "time"

// ErrorResponse is the JSON structure returned for any failed request.
//
// It doubles as an error value so middleware can both log it and hand it
// to the client unchanged.
type ErrorResponse struct {
	Message      string    `json:"message" example:"invalid request"` // Human-readable summary
	ErrorDetails string    `json:"error,omitempty"`                   // Underlying error text, if any
	Timestamp    time.Time `json:"timestamp"`                         // Time the error was produced
}

// Error implements the error interface.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}

// NewErrorResponse builds an ErrorResponse from a message and an optional
// underlying error.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
