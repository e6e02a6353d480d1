package api

import (
	"errors"
	"fmt"
)

// ErrSessionExpired is returned when any authenticated call comes back 401.
// By the time a caller sees it the session has already been logged out.
var ErrSessionExpired = errors.New("session expired")

// AuthError is a login failure: bad credentials or an unreachable auth
// endpoint. It never touches an existing session.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// RequestError is any non-2xx response other than 401. Detail prefers the
// server-supplied "detail" field, falling back to the status text. Body keeps
// the raw response for callers that classify further (validation errors).
type RequestError struct {
	Status int
	Detail string
	Body   []byte
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed (%d): %s", e.Status, e.Detail)
}
