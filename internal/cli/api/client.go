// Package api wraps outbound calls to the inventory API with the session
// credential and a uniform failure classification.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"StockYard/internal/cli/session"
)

// Client is the authenticated fetch gateway. Every call attaches the current
// token; a single 401 from any call logs the session out.
type Client struct {
	baseURL string
	http    *http.Client
	session *session.Session
}

// New builds a gateway against baseURL (scheme + host, no trailing slash
// required). Requests go through http.DefaultClient: no timeout, matching the
// upstream behavior where a hung request hangs its loading indicator.
func New(baseURL string, sess *session.Session) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
		session: sess,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a token at /api/token-auth/ and stores it
// in the session. Failures surface as *AuthError with a printable message;
// a prior session, if any, is left untouched.
func (c *Client) Login(ctx context.Context, username, password string) error {
	b, err := json.Marshal(loginRequest{Username: username, Password: password})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/token-auth/", bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &AuthError{Message: fmt.Sprintf("auth endpoint unreachable: %v", err)}
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return &AuthError{Message: authFailureMessage(body)}
	}
	var lr loginResponse
	if err := json.Unmarshal(body, &lr); err != nil || lr.Token == "" {
		return &AuthError{Message: "auth endpoint returned no token"}
	}
	if err := c.session.SetToken(lr.Token); err != nil {
		return fmt.Errorf("saving auth token: %w", err)
	}
	return nil
}

// authFailureMessage extracts a human-readable reason from a 4xx auth body.
func authFailureMessage(body []byte) string {
	var parsed struct {
		NonFieldErrors []string `json:"non_field_errors"`
		Detail         string   `json:"detail"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if len(parsed.NonFieldErrors) > 0 {
			return strings.Join(parsed.NonFieldErrors, ", ")
		}
		if parsed.Detail != "" {
			return parsed.Detail
		}
	}
	return "invalid username or password"
}

// Do issues an authenticated request and returns the raw response body.
// Classification:
//   - 401: the session is logged out as a side effect, then ErrSessionExpired.
//   - other non-2xx: *RequestError with the parsed "detail" or status text.
//   - 2xx: the body as-is (nil for 204). No schema validation happens here;
//     malformed bodies fail at the caller's decode step.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, payload any) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.session.Token(); tok != "" {
		req.Header.Set("Authorization", "Token "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	respBody, _ := io.ReadAll(resp.Body)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		// Deliberate side effect: one expired call invalidates the whole
		// session, regardless of which operation triggered it.
		c.session.Logout()
		return nil, ErrSessionExpired
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if len(respBody) == 0 {
			return nil, nil
		}
		return respBody, nil
	default:
		return nil, &RequestError{
			Status: resp.StatusCode,
			Detail: errorDetail(respBody, resp.StatusCode),
			Body:   respBody,
		}
	}
}

func errorDetail(body []byte, status int) string {
	var parsed struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Detail != "" {
		return parsed.Detail
	}
	if txt := http.StatusText(status); txt != "" {
		return txt
	}
	return fmt.Sprintf("HTTP %d", status)
}
