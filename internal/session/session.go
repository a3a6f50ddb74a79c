// Package session holds the authenticated identity of the terminal client.
//
// A [Session] replaces a process-wide token: it is created once by the client
// runtime and passed explicitly into every call of the API access layer.
// Begin and Clear mirror login and logout. When a [Persister] is attached the
// session survives restarts of the client.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/client-keeper/models"
)

//go:generate mockgen -source=session.go -destination=../mock/session_persister_mock.go -package=mock

// ErrNoSession is returned by Restore when nothing was persisted.
var ErrNoSession = errors.New("no saved session")

// Persister stores the session between client runs.
type Persister interface {
	// Save replaces the stored session with user. user.Token is the bearer token.
	Save(ctx context.Context, user models.User) error
	// Load returns the stored session. It returns an error wrapping
	// [ErrNoSession] when nothing is stored.
	Load(ctx context.Context) (models.User, error)
	// Clear removes the stored session. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}

// Session is the authenticated user identity plus its bearer token.
// It is safe for concurrent use.
type Session struct {
	mu        sync.RWMutex
	user      models.User
	token     string
	persister Persister
}

// New returns an empty session. persister may be nil, in which case the
// session lives only in memory.
func New(persister Persister) *Session {
	return &Session{persister: persister}
}

// Begin starts a session for user with the token carried in user.Token.
//
// The in-memory state is always updated. The returned error only reports a
// failure to persist it.
func (s *Session) Begin(ctx context.Context, user models.User) error {
	user.Token = strings.TrimSpace(user.Token)

	s.mu.Lock()
	s.user = user
	s.token = user.Token
	s.mu.Unlock()

	if s.persister == nil {
		return nil
	}
	if err := s.persister.Save(ctx, user); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

// Clear forgets the user and the token. The in-memory state is always
// cleared; the returned error only reports a failure to remove the persisted
// copy.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.user = models.User{}
	s.token = ""
	s.mu.Unlock()

	if s.persister == nil {
		return nil
	}
	if err := s.persister.Clear(ctx); err != nil {
		return fmt.Errorf("clear persisted session: %w", err)
	}
	return nil
}

// Restore loads a previously persisted session into memory.
func (s *Session) Restore(ctx context.Context) (models.User, error) {
	if s.persister == nil {
		return models.User{}, ErrNoSession
	}

	user, err := s.persister.Load(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("restore session: %w", err)
	}
	if strings.TrimSpace(user.Token) == "" {
		return models.User{}, ErrNoSession
	}

	s.mu.Lock()
	s.user = user
	s.token = user.Token
	s.mu.Unlock()

	return user, nil
}

// SetUser refreshes the identity part of the session (for example after a
// profile call) and keeps the current token.
func (s *Session) SetUser(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.Token = s.token
	s.user = user
}

// Token returns the bearer token or an empty string.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the current user. The zero value means no session.
func (s *Session) User() models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Authenticated reports whether a token is held.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}
