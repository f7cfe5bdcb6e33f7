package relay

import (
	"errors"
	"log/slog"
	"net/http"

	json "github.com/goccy/go-json"

	"lolstats/internal/riot"
	"lolstats/internal/summoner"
)

// ErrorResponse is the body of every non-2xx relay response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

// writeJSON writes a JSON response with the given status code. The status
// is already sent when encoding fails, so the failure is only logged.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("failed to encode response", "status", status, "error", err)
		}
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorBody(status, err))
}

func errorBody(status int, err error) *ErrorResponse {
	return &ErrorResponse{
		Error:   http.StatusText(status),
		Message: err.Error(),
		Code:    status,
	}
}

// badRequestError marks caller mistakes (missing or malformed parameters)
type badRequestError struct{ msg string }

func (e *badRequestError) Error() string { return e.msg }

// StatusFor maps an error to the relay's status code: 400 for bad
// parameters, 404 when the player does not exist, 429 when upstream is
// rate limiting, 502 for any other upstream failure.
func StatusFor(err error) int {
	var bad *badRequestError
	switch {
	case errors.As(err, &bad):
		return http.StatusBadRequest
	case errors.Is(err, summoner.ErrNotFound), errors.Is(err, riot.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, riot.ErrRateLimited):
		return http.StatusTooManyRequests
	}
	return http.StatusBadGateway
}
