package api

import (
	"encoding/json"
	"fmt"
	"strings"
)

// APIError represents a non-2xx response from the archive service.
type APIError struct {
	StatusCode int
	Message    string // best-effort parsed remote message
	Body       string // full raw response body
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("archive API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("archive API error %d", e.StatusCode)
}

// NetworkError represents a transport-level failure: name resolution,
// connection, TLS, timeout, or cancellation. No HTTP status is available.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying transport error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DecodeError represents a 2xx response whose body could not be decoded as
// the declared result type. The contract was violated by the remote, so this
// is treated like a transport-adjacent failure.
type DecodeError struct {
	Err  error
	Body string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response: %v", e.Err)
}

// Unwrap returns the underlying decoding error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// parseErrorResponse builds an APIError from a non-2xx response body. The
// remote usually reports {"message": "..."} but some deployments use
// {"error": "..."}; fall back to the raw body text.
func parseErrorResponse(status int, raw []byte) error {
	var remote struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}

	msg := ""
	if err := json.Unmarshal(raw, &remote); err == nil {
		switch {
		case remote.Message != "":
			msg = remote.Message
		case remote.Error != "":
			msg = remote.Error
		}
	}
	if msg == "" {
		msg = strings.TrimSpace(string(raw))
	}

	return &APIError{
		StatusCode: status,
		Message:    msg,
		Body:       string(raw),
	}
}
