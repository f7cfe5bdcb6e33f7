package riot

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound matches upstream 404s (player or match does not exist)
	ErrNotFound = errors.New("not found")
	// ErrRateLimited matches upstream 429s
	ErrRateLimited = errors.New("rate limited")
	// ErrForbidden matches 401/403, usually an expired development key
	ErrForbidden = errors.New("forbidden")
)

// UpstreamError is a failed call to the Riot API: a non-2xx status, a body
// that could not be decoded, or a transport failure (StatusCode 0).
type UpstreamError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("upstream request failed: %s", e.Message)
	}
	return fmt.Sprintf("API returned status %d: %s", e.StatusCode, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Is lets callers test the status class with errors.Is(err, riot.ErrNotFound)
func (e *UpstreamError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrRateLimited:
		return e.StatusCode == http.StatusTooManyRequests
	case ErrForbidden:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	}
	return false
}

// ErrorBody is Riot's error document shape
type ErrorBody struct {
	Status ErrorStatus `json:"status"`
}

type ErrorStatus struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

// Body converts the error into Riot's error document shape so it can stand in
// for a missing document in a relay response.
func (e *UpstreamError) Body() ErrorBody {
	return ErrorBody{Status: ErrorStatus{Message: e.Message, StatusCode: e.StatusCode}}
}

// AsUpstreamError returns err as an *UpstreamError, wrapping anything else
// (context cancellation, limiter failures) as a transport-level failure.
func AsUpstreamError(err error) *UpstreamError {
	if err == nil {
		return nil
	}
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue
	}
	return &UpstreamError{Message: err.Error(), Err: err}
}
