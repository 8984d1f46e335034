package clubsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/clubhouse/pkg/httpx"
)

// Response messages shared by the server and the client.
const (
	MessageRegistered = "Registration successful"
	MessageJoined     = "Successfully joined the Gentlemen Club!"

	MessageMissingCredentials = "Missing email or password"
	MessageEmailRequired      = "Email is required"
	MessageEmailRegistered    = "Email already registered"
	MessageInvalidJSON        = "Invalid JSON body"
	MessageInvalidEmail       = "Invalid email"
	MessageInternal           = "Internal server error"
)

// APIError is a non-2xx response from the service. It is written by the
// server and returned by the client.
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("clubhouse: %d %s", e.StatusCode, e.Message)
}

// Is matches on status and message so callers can use errors.Is against the
// predefined errors below.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.StatusCode == t.StatusCode && e.Message == t.Message
}

// WriteError writes e as a JSON error response.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, ErrorResponse{Error: e.Message})
}

var (
	ErrMissingCredentials = &APIError{StatusCode: http.StatusBadRequest, Message: MessageMissingCredentials}
	ErrEmailRequired      = &APIError{StatusCode: http.StatusBadRequest, Message: MessageEmailRequired}
	ErrEmailRegistered    = &APIError{StatusCode: http.StatusBadRequest, Message: MessageEmailRegistered}
	ErrInvalidJSON        = &APIError{StatusCode: http.StatusBadRequest, Message: MessageInvalidJSON}
	ErrInvalidEmail       = &APIError{StatusCode: http.StatusBadRequest, Message: MessageInvalidEmail}
	ErrInternal           = &APIError{StatusCode: http.StatusInternalServerError, Message: MessageInternal}
)

// parseErrorResponse turns an unexpected response into an *APIError. Bodies
// without an error field fall back to the status text.
func parseErrorResponse(resp *http.Response, body []byte) *APIError {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: errResp.Error}
	}

	return &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
}
