// Package session persists the auth credential and username between runs.
// The token is treated as opaque: no parsing, no refresh, no expiry
// prediction. An unauthorized API response clears it (forced logout).
package session

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/blackwell-systems/bookshopctl/internal/store"
)

// StoreKey is the key the session blob lives under.
const StoreKey = "session"

type state struct {
	AccessToken string `yaml:"access_token"`
	Username    string `yaml:"username,omitempty"`
}

// Session wraps the store with typed accessors. It satisfies api.TokenSource.
type Session struct {
	store store.Store
	cur   state
}

// Load reads any persisted session. A missing or unreadable blob just means
// logged out.
func Load(s store.Store) *Session {
	sess := &Session{store: s}
	data, ok := s.Get(StoreKey)
	if !ok {
		return sess
	}
	if err := yaml.Unmarshal(data, &sess.cur); err != nil {
		sess.cur = state{}
	}
	return sess
}

// Token returns the stored bearer credential, or "" when logged out.
func (s *Session) Token() string { return s.cur.AccessToken }

// Username returns the stored username, or "".
func (s *Session) Username() string { return s.cur.Username }

// LoggedIn reports whether a credential is present.
func (s *Session) LoggedIn() bool { return s.cur.AccessToken != "" }

// SetCredentials stores the token and username durably.
func (s *Session) SetCredentials(token, username string) error {
	s.cur = state{AccessToken: token, Username: username}
	data, err := yaml.Marshal(s.cur)
	if err != nil {
		return fmt.Errorf("serializing session: %w", err)
	}
	if err := s.store.Put(StoreKey, data); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

// Clear removes the credential, both in memory and durably.
func (s *Session) Clear() error {
	s.cur = state{}
	return s.store.Delete(StoreKey)
}
