// Package session holds the process-wide authenticated-session state:
// current user, bearer token, and the authenticated flag, persisted so a
// restart restores the session without re-authentication.
package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/golang-jwt/jwt/v5"

	"hrmclient/internal/domain/auth"
)

// Authenticator is the slice of the auth service the store needs.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (auth.AuthResponse, error)
	Logout(ctx context.Context) error
}

type Store struct {
	auth    Authenticator
	storage Storage

	mu    sync.RWMutex
	user  *auth.User
	token string
}

// New hydrates the store from storage once. A persisted session with both
// user and token present is restored as authenticated; anything partial is
// discarded.
func New(authenticator Authenticator, storage Storage) *Store {
	s := &Store{auth: authenticator, storage: storage}
	state, err := storage.Load()
	if err != nil {
		slog.Warn("session hydrate failed", "err", err)
		return s
	}
	if state.User != nil && state.Token != "" {
		s.user = state.User
		s.token = state.Token
	}
	return s
}

// IsAuthenticated is true iff both user and token are set. A partially-set
// session is never reported as authenticated.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.token != ""
}

func (s *Store) User() *auth.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	copied := *s.user
	return &copied
}

// Token returns the current bearer token; "" when unauthenticated. Wire
// this as the transport client's TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Login exchanges credentials for a session. On failure the state is left
// unchanged and nothing is persisted.
func (s *Store) Login(ctx context.Context, email, password string) error {
	resp, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}
	s.mu.Lock()
	user := resp.User
	s.user = &user
	s.token = resp.Token
	s.mu.Unlock()
	s.persist()
	return nil
}

// Logout tells the server best-effort, then clears state and every durable
// copy. The local session is gone even if the server call fails.
func (s *Store) Logout(ctx context.Context) {
	if err := s.auth.Logout(ctx); err != nil {
		slog.Warn("server logout failed", "err", err)
	}
	s.Clear()
}

// Clear wipes the in-memory session and its persisted mirror. Also wired
// as the transport's global 401 hook.
func (s *Store) Clear() {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()
	if err := s.storage.Clear(); err != nil {
		slog.Warn("session clear failed", "err", err)
	}
}

// SetUser replaces the user independently of the token (e.g. after a
// profile refresh via /auth/me).
func (s *Store) SetUser(user auth.User) {
	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	s.persist()
}

// SetToken replaces the token independently of the user (token refresh).
func (s *Store) SetToken(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	s.persist()
}

func (s *Store) persist() {
	s.mu.RLock()
	state := State{User: s.user, Token: s.token}
	s.mu.RUnlock()
	if err := s.storage.Save(state); err != nil {
		slog.Warn("session persist failed", "err", err)
	}
}

// Claims decodes the bearer token's claims without verifying the signature;
// the server remains the authority, this only feeds local role/expiry
// checks such as the CLI route guard.
func (s *Store) Claims() (jwt.MapClaims, error) {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// HasRole checks the current user's role.
func (s *Store) HasRole(role string) bool {
	user := s.User()
	return user != nil && user.Role == role
}
