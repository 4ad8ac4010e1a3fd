package daraja

import (
	"encoding/json"
	"fmt"
)

// APIError is the structured error body the gateway returns on a non-2xx
// response.
type APIError struct {
	StatusCode   int    `json:"-"`
	RequestID    string `json:"requestId,omitempty"`
	ErrorCode    string `json:"errorCode,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

func (e *APIError) Error() string {
	if e.ErrorCode == "" && e.ErrorMessage == "" {
		return fmt.Sprintf("gateway returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("gateway error %s: %s", e.ErrorCode, e.ErrorMessage)
}

// Detail exposes the gateway body so handlers can surface it verbatim.
func (e *APIError) Detail() any {
	return e
}

// newAPIError reports a non-2xx gateway reply. When the body is not the
// gateway's structured error shape, a plain error carrying the status is
// returned instead so Detail falls back to the message string.
func newAPIError(status int, raw []byte) error {
	apiErr := APIError{StatusCode: status}
	if err := json.Unmarshal(raw, &apiErr); err != nil || (apiErr.ErrorCode == "" && apiErr.ErrorMessage == "") {
		return fmt.Errorf("gateway returned status %d", status)
	}
	return &apiErr
}
