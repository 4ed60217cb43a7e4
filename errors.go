package docarchive

import (
	"errors"
	"fmt"

	"github.com/docarchive/client-go/internal/api"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingBaseURL is returned when no base URL is provided.
	ErrMissingBaseURL = errors.New("base URL is required")

	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrUnauthorized is returned when the API key or credentials are rejected.
	ErrUnauthorized = errors.New("invalid or expired credentials")

	// ErrNotFound is returned when the requested folder, document or inbox
	// does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// ArchiveError is implemented by all SDK errors.
type ArchiveError interface {
	error
	ArchiveError() // marker method
}

// APIError represents an HTTP rejection from the archive service. StatusCode
// is always present; callers use it to distinguish remote rejections from
// transport failures.
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

// ArchiveError implements the ArchiveError interface.
func (e *APIError) ArchiveError() {}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 401, 403:
		return target == ErrUnauthorized
	case 404:
		return target == ErrNotFound
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// NetworkError represents a transport-level failure. No HTTP status is
// available because the remote never answered.
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

// ArchiveError implements the ArchiveError interface.
func (e *NetworkError) ArchiveError() {}

// DecodeError represents a success response whose body did not decode as the
// declared result type.
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

// ArchiveError implements the ArchiveError interface.
func (e *DecodeError) ArchiveError() {}

// wrapError converts internal API errors to public errors. This ensures that
// errors.Is() checks work with the public sentinel errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Message,
			Body:       apiErr.Body,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Err: netErr.Err,
			URL: netErr.URL,
		}
	}

	var decErr *api.DecodeError
	if errors.As(err, &decErr) {
		return &DecodeError{
			Err:  decErr.Err,
			Body: decErr.Body,
		}
	}

	return err
}
