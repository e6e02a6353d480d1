// Package session owns the bearer credential: it is loaded from the store at
// startup, replaced on login and dropped on logout or on any 401. Every data
// loader is gated on it.
package session

// Session holds the auth token for the current process.
type Session struct {
	store TokenStore
	token string
}

// New creates a session backed by the given store and loads any persisted
// token. A missing or unreadable token just leaves the session anonymous.
func New(store TokenStore) *Session {
	s := &Session{store: store}
	if tok, err := store.Load(); err == nil {
		s.token = tok
	}
	return s
}

// Token returns the current auth token, or "" when not logged in.
func (s *Session) Token() string { return s.token }

// Authenticated reports whether a token is present.
func (s *Session) Authenticated() bool { return s.token != "" }

// SetToken stores the token in memory and persists it. The in-memory token is
// set even if persistence fails, so the current process can proceed.
func (s *Session) SetToken(token string) error {
	s.token = token
	return s.store.Save(token)
}

// Logout drops the token from memory and from the store. It cannot fail:
// a store error still leaves the session anonymous.
func (s *Session) Logout() {
	s.token = ""
	_ = s.store.Clear()
}
