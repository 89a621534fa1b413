package server

import (
	"encoding/json"
	"errors"
	"net/http"
)

var (
	ErrInvalidJSON  = errors.New("server: invalid JSON body")
	ErrBodyTooLarge = errors.New("server: request body too large")
)

// HTTPError carries a status code and a user-facing message. Err is logged,
// never sent.
type HTTPError struct {
	Err     error
	Message string
	Code    int
}

func (e *HTTPError) Error() string { return e.Message }

func (e *HTTPError) Unwrap() error { return e.Err }

// NewHTTPError creates an HTTPError.
func NewHTTPError(code int, message string, err error) *HTTPError {
	return &HTTPError{Code: code, Message: message, Err: err}
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// writeError renders err as JSON. Errors that are not an HTTPError become
// a 500 without their message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		httpErr = NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), err)
	}

	writeJSON(w, httpErr.Code, errorResponse{
		Error:     httpErr.Message,
		RequestID: RequestIDFromContext(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
