package user

import (
	"context"
	"errors"
	"sync"
	"time"

	"marketplace-client/internal/auth"
	"marketplace-client/internal/logger"
	"marketplace-client/internal/metrics"
	"marketplace-client/internal/storage"
	"marketplace-client/internal/store"

	"go.uber.org/zap"
)

// Device storage keys.
const (
	keyToken  = "auth.token"
	keyUserID = "auth.user_id"
	keyRole   = "auth.role"
	keyName   = "auth.name"
	keyEmail  = "auth.email"
)

var sessionKeys = []string{keyToken, keyUserID, keyRole, keyName, keyEmail}

// Session is the logged-in user. Token, id, role, name and email are
// persisted in device storage so a restart keeps the user signed in.
// Listeners receive nil when the session ends (logout, 401, expiry).
type Session struct {
	storage storage.Storage
	now     func() time.Time

	mu      sync.RWMutex
	loaded  bool
	token   string
	user    *User
	version uint64

	listeners store.Listeners[*User]
}

func NewSession(s storage.Storage) *Session {
	return &Session{storage: s, now: time.Now}
}

// Load restores the session from device storage. It is called lazily by
// Token and User, so callers rarely need it.
func (s *Session) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx)
}

func (s *Session) loadLocked(ctx context.Context) error {
	if s.loaded {
		return nil
	}

	values := make(map[string]string, len(sessionKeys))
	for _, k := range sessionKeys {
		v, err := s.storage.Get(ctx, k)
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		values[k] = v
	}

	s.loaded = true
	if values[keyToken] == "" {
		return nil
	}

	s.token = values[keyToken]
	s.user = &User{
		ID:    values[keyUserID],
		Role:  Role(values[keyRole]),
		Name:  values[keyName],
		Email: values[keyEmail],
	}
	return nil
}

// Save starts a session. Missing id/role are filled from the token's claims.
func (s *Session) Save(ctx context.Context, token string, u User) error {
	if token == "" {
		return ErrMissingToken
	}

	if claims, err := auth.ParseClaims(token); err == nil {
		if u.ID == "" {
			u.ID = claims.UserID
		}
		if u.Role == "" {
			u.Role = Role(claims.Role)
		}
		if u.Email == "" {
			u.Email = claims.Email
		}
	}

	s.mu.Lock()
	if err := s.persistLocked(ctx, token, u); err != nil {
		s.mu.Unlock()
		return err
	}
	s.loaded = true
	s.token = token
	s.user = &u
	s.version++
	version := s.version
	s.mu.Unlock()

	s.listeners.Publish(version, &u)
	return nil
}

// SetUser refreshes the stored profile without touching the token.
func (s *Session) SetUser(ctx context.Context, u User) error {
	s.mu.Lock()
	if err := s.loadLocked(ctx); err != nil {
		s.mu.Unlock()
		return err
	}
	if s.token == "" {
		s.mu.Unlock()
		return ErrNotLoggedIn
	}
	if u.ID == "" && s.user != nil {
		u.ID = s.user.ID
	}
	if u.Role == "" && s.user != nil {
		u.Role = s.user.Role
	}
	if err := s.persistLocked(ctx, s.token, u); err != nil {
		s.mu.Unlock()
		return err
	}
	s.user = &u
	s.version++
	version := s.version
	s.mu.Unlock()

	s.listeners.Publish(version, &u)
	return nil
}

func (s *Session) persistLocked(ctx context.Context, token string, u User) error {
	values := map[string]string{
		keyToken:  token,
		keyUserID: u.ID,
		keyRole:   string(u.Role),
		keyName:   u.Name,
		keyEmail:  u.Email,
	}
	for _, k := range sessionKeys {
		if err := s.storage.Set(ctx, k, values[k]); err != nil {
			// A half-written session must not be restored later.
			if derr := s.deleteKeys(ctx); derr != nil {
				logger.FromCtx(ctx).Warn("session rollback failed", zap.Error(derr))
			}
			return err
		}
	}
	return nil
}

// deleteKeys removes every session key and returns the first failure.
func (s *Session) deleteKeys(ctx context.Context) error {
	var firstErr error
	for _, k := range sessionKeys {
		if err := s.storage.Delete(ctx, k); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// User returns a copy of the current user.
func (s *Session) User(ctx context.Context) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(ctx); err != nil {
		logger.FromCtx(ctx).Warn("session restore failed", zap.Error(err))
		return User{}, false
	}
	if s.user == nil || s.token == "" {
		return User{}, false
	}
	return *s.user, true
}

func (s *Session) Role(ctx context.Context) Role {
	u, _ := s.User(ctx)
	return u.Role
}

// Token implements api.TokenSource. A JWT whose exp has passed is evicted
// and reported as no token.
func (s *Session) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	if err := s.loadLocked(ctx); err != nil {
		s.mu.Unlock()
		return "", err
	}
	token := s.token
	s.mu.Unlock()

	if token == "" {
		return "", nil
	}

	if claims, err := auth.ParseClaims(token); err == nil && claims.Expired(s.now()) {
		logger.FromCtx(ctx).Info("stored token expired, evicting")
		metrics.TokenEvicted()
		return "", s.Clear(ctx)
	}
	return token, nil
}

// ClearToken implements api.TokenSource; a rejected token ends the session.
func (s *Session) ClearToken(ctx context.Context) error {
	logger.FromCtx(ctx).Info("token rejected by server, clearing session")
	return s.Clear(ctx)
}

// Clear ends the session and wipes it from device storage.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	hadSession := s.token != "" || s.user != nil
	s.loaded = true
	s.token = ""
	s.user = nil

	s.version++
	version := s.version

	err := s.deleteKeys(ctx)
	s.mu.Unlock()

	if hadSession {
		s.listeners.Publish(version, nil)
	}
	return err
}

func (s *Session) Subscribe(fn func(*User)) func() {
	return s.listeners.Subscribe(fn)
}
