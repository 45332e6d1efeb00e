package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/mallcloud/mallctl/internal/domain"
	"github.com/mallcloud/mallctl/internal/ports"
)

// Durable storage keys for the session.
const (
	StorageKeyToken    = "token"
	StorageKeyUserInfo = "user_info"
)

// SessionStore is the single source of truth for the credential token and
// the cached profile. Both are written through to storage on every mutation
// and restored at construction.
type SessionStore struct {
	mu      sync.Mutex
	session domain.Session
	storage ports.KVStore
}

// NewSessionStore restores the session from storage. Missing keys yield a
// logged-out session. A profile found without a token is dropped so the
// restored state honors the token-before-profile invariant.
func NewSessionStore(ctx context.Context, storage ports.KVStore) (*SessionStore, error) {
	store := &SessionStore{storage: storage}

	if data, err := storage.Get(ctx, StorageKeyToken); err != nil {
		if !errors.Is(err, ports.ErrKeyNotFound) {
			return nil, fmt.Errorf("restore session token: %w", err)
		}
	} else if err := json.Unmarshal(data, &store.session.Token); err != nil {
		return nil, fmt.Errorf("decode session token: %w", err)
	}

	if data, err := storage.Get(ctx, StorageKeyUserInfo); err != nil {
		if !errors.Is(err, ports.ErrKeyNotFound) {
			return nil, fmt.Errorf("restore cached profile: %w", err)
		}
	} else if store.session.LoggedIn() {
		var profile domain.User
		if err := json.Unmarshal(data, &profile); err != nil {
			return nil, fmt.Errorf("decode cached profile: %w", err)
		}
		store.session.Profile = &profile
	}

	return store, nil
}

// SetToken replaces the credential token.
func (s *SessionStore) SetToken(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.Token = token

	return s.persistTokenLocked(ctx)
}

// SetProfile replaces the cached profile.
func (s *SessionStore) SetProfile(ctx context.Context, profile domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := profile
	s.session.Profile = &copied

	return s.persistProfileLocked(ctx)
}

// Login stores the token and profile of a fresh authentication.
func (s *SessionStore) Login(ctx context.Context, token string, profile domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.Token = token
	copied := profile
	s.session.Profile = &copied

	if err := s.persistTokenLocked(ctx); err != nil {
		return err
	}

	return s.persistProfileLocked(ctx)
}

// Logout clears the token and profile and removes both persisted entries.
// Calling it while already logged out is a no-op.
func (s *SessionStore) Logout(ctx context.Context) error {
	_, err := s.Invalidate(ctx)
	return err
}

// Invalidate clears the session like Logout and reports whether a live
// session was actually cleared. The request pipeline redirects to login
// only on that transition, so concurrent authentication failures trigger a
// single redirect.
func (s *SessionStore) Invalidate(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.session.LoggedIn() && s.session.Profile == nil {
		return false, nil
	}

	s.session = domain.Session{}

	if err := s.storage.Delete(ctx, StorageKeyToken); err != nil {
		return true, fmt.Errorf("remove persisted token: %w", err)
	}
	if err := s.storage.Delete(ctx, StorageKeyUserInfo); err != nil {
		return true, fmt.Errorf("remove cached profile: %w", err)
	}

	return true, nil
}

// UpdateProfile merges the patch into the cached profile. Without a cached
// profile there is nothing to merge and the call is a no-op.
func (s *SessionStore) UpdateProfile(ctx context.Context, patch domain.ProfilePatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.Profile == nil {
		return nil
	}

	s.session.Profile.Apply(patch)

	return s.persistProfileLocked(ctx)
}

// IsLoggedIn reports whether a non-empty token is present.
func (s *SessionStore) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.session.LoggedIn()
}

// Token returns the current credential token, or "" when logged out.
func (s *SessionStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.session.Token
}

// Profile returns a copy of the cached profile, or nil when none is cached.
func (s *SessionStore) Profile() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.Profile == nil {
		return nil
	}

	copied := *s.session.Profile
	return &copied
}

func (s *SessionStore) persistTokenLocked(ctx context.Context) error {
	data, err := json.Marshal(s.session.Token)
	if err != nil {
		return fmt.Errorf("encode session token: %w", err)
	}

	if err := s.storage.Put(ctx, StorageKeyToken, data); err != nil {
		return fmt.Errorf("persist session token: %w", err)
	}

	return nil
}

func (s *SessionStore) persistProfileLocked(ctx context.Context) error {
	data, err := json.Marshal(s.session.Profile)
	if err != nil {
		return fmt.Errorf("encode cached profile: %w", err)
	}

	if err := s.storage.Put(ctx, StorageKeyUserInfo, data); err != nil {
		return fmt.Errorf("persist cached profile: %w", err)
	}

	return nil
}
