// Package apierror provides the response envelope shared by every endpoint.
// All errors returned to clients go through this package so that store and
// driver details never reach the response body.
package apierror

// Envelope is the body of every response:
//
//	{"success": true,  "data": ...}
//	{"success": false, "error": "...", "details": ...}
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// APIError is the failure form of Envelope, used in swagger annotations.
type APIError = Envelope

// InvalidData is the message of every request that fails validation.
const InvalidData = "Invalid data"

func OK(data interface{}) *Envelope {
	return &Envelope{Success: true, Data: data}
}

func New(msg string) *Envelope {
	return &Envelope{Success: false, Error: msg}
}

// WithDetails attaches extra context, e.g. per-row upsert results.
func WithDetails(msg string, details interface{}) *Envelope {
	return &Envelope{Success: false, Error: msg, Details: details}
}

// NewValidation reports field -> failed rule.
func NewValidation(fields map[string]string) *Envelope {
	return &Envelope{Success: false, Error: InvalidData, Details: fields}
}
