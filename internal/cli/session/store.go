package session

import (
	"errors"
	"os"
)

// TokenStore is the persistence contract for the auth token on the client.
type TokenStore interface {
	Save(token string) error
	Load() (string, error)
	Clear() error
}

// FileStore keeps the token in a single file, which is the only client-side
// state that survives a restart.
type FileStore struct {
	Path string
}

func (s FileStore) Save(token string) error {
	return os.WriteFile(s.Path, []byte(token), 0o600)
}

func (s FileStore) Load() (string, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return "", err
	}
	// trim trailing newlines/spaces
	for len(b) > 0 {
		c := b[len(b)-1]
		if c == '\n' || c == '\r' || c == ' ' || c == '\t' {
			b = b[:len(b)-1]
			continue
		}
		break
	}
	if len(b) == 0 {
		return "", errors.New("empty token file")
	}
	return string(b), nil
}

func (s FileStore) Clear() error {
	err := os.Remove(s.Path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// MemStore is an in-memory TokenStore for tests.
type MemStore struct {
	Token string
}

func (s *MemStore) Save(token string) error { s.Token = token; return nil }

func (s *MemStore) Load() (string, error) {
	if s.Token == "" {
		return "", errors.New("no stored token")
	}
	return s.Token, nil
}

func (s *MemStore) Clear() error { s.Token = ""; return nil }
