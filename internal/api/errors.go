package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrSessionExpired is returned for any 401 on an authenticated call, after
// the client has already cleared the local session.
var ErrSessionExpired = errors.New("session expired")

// APIError is a non-401 error response, carrying the server's own message
// when it sent one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// AuthError is a failed login or signup. It never touches the existing
// session.
type AuthError struct {
	Status  int
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// The server answers errors as {"message": ...} or {"error": ...}.
type errorBody struct {
	Message string `json:"message"`
	Err     string `json:"error"`
}

func serverMessage(resp *http.Response) string {
	var body errorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Err != "" {
			return body.Err
		}
	}
	return ""
}

func decodeAPIError(resp *http.Response) error {
	msg := serverMessage(resp)
	if msg == "" {
		msg = fmt.Sprintf("unexpected status code: %d", resp.StatusCode)
	}
	return &APIError{Status: resp.StatusCode, Message: msg}
}
