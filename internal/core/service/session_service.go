package service

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/homefix/marketplace-client/internal/core/domain"
	"github.com/homefix/marketplace-client/internal/core/ports"
)

// Persisted key names. Three independent entries, not one record; the
// restore path tolerates any of them being missing or malformed.
const (
	keyToken    = "token"
	keyUsername = "username"
	keyRoles    = "roles"
)

// SessionService owns the process-wide session and mediates every
// state transition. Construct with NewSessionService and inject where
// needed; consumers read state through Snapshot only.
type SessionService struct {
	api   ports.AuthAPI
	store ports.KeyValueStore
	log   zerolog.Logger

	mu    sync.Mutex
	state domain.Session
}

var _ ports.SessionService = (*SessionService)(nil)

func NewSessionService(api ports.AuthAPI, store ports.KeyValueStore, log zerolog.Logger) *SessionService {
	return &SessionService{
		api:   api,
		store: store,
		log:   log,
		state: domain.Session{Initializing: true, Roles: []string{}},
	}
}

// Snapshot returns a copy of the current session. The roles slice and
// user map are copied so callers cannot mutate owned state.
func (s *SessionService) Snapshot() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSession(s.state)
}

// Restore re-establishes a persisted session. The three key reads run
// concurrently; everything after them is strictly ordered. A profile
// re-validation failure purges local state and falls back to an
// anonymous session without surfacing an error. If ctx is cancelled
// mid-flight the result is discarded and no state is touched.
func (s *SessionService) Restore(ctx context.Context) {
	var (
		wg     sync.WaitGroup
		stored [3]string
		found  [3]bool
	)
	for i, key := range []string{keyToken, keyUsername, keyRoles} {
		i, key := i, key
		wg.Add(1)
		go func() {
			defer wg.Done()
			val, ok, err := s.store.Get(ctx, key)
			if err != nil {
				s.log.Warn().Err(err).Str("key", key).Msg("session restore: read failed")
				return
			}
			stored[i], found[i] = val, ok
		}()
	}
	wg.Wait()

	if ctx.Err() != nil {
		return
	}

	token, username := stored[0], stored[1]
	if !found[0] || !found[1] || token == "" || username == "" {
		s.commit(domain.Session{Initializing: false, Roles: []string{}})
		return
	}

	profile, err := s.api.Profile(ctx, token)
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		// Stale or invalid credential. Purge so the UI never renders
		// an authenticated state it cannot back up.
		s.log.Info().Err(err).Str("username", username).Msg("session restore: token rejected, purging")
		s.purge(ctx)
		s.commit(domain.Session{Initializing: false, Roles: []string{}})
		return
	}

	s.commit(domain.Session{
		Token:    token,
		Username: username,
		Roles:    parseRoles(stored[2]),
		User:     profile,
	})
}

// Login authenticates with credentials, persists the session and
// fetches the profile. Any failure leaves the previous session state
// untouched and is returned to the caller.
func (s *SessionService) Login(ctx context.Context, creds domain.Credentials) error {
	return s.authenticate(ctx, func() (*domain.AuthResult, error) {
		return s.api.Login(ctx, creds)
	})
}

// Register creates an account; on success the response is treated
// exactly like a login response.
func (s *SessionService) Register(ctx context.Context, reg domain.Registration) error {
	return s.authenticate(ctx, func() (*domain.AuthResult, error) {
		return s.api.Register(ctx, reg)
	})
}

func (s *SessionService) authenticate(ctx context.Context, call func() (*domain.AuthResult, error)) error {
	s.mu.Lock()
	if s.state.Loading {
		s.mu.Unlock()
		return domain.ErrAuthInFlight
	}
	s.state.Loading = true
	s.mu.Unlock()

	err := s.authenticateLocked(ctx, call)

	s.mu.Lock()
	s.state.Loading = false
	s.mu.Unlock()
	return err
}

// authenticateLocked runs the strictly ordered auth sequence:
// credential call, response validation, persist writes, profile fetch,
// state commit. A failure at any step aborts the remainder.
func (s *SessionService) authenticateLocked(ctx context.Context, call func() (*domain.AuthResult, error)) error {
	res, err := call()
	if err != nil {
		return err
	}
	if res == nil || res.Token == "" || res.Username == "" {
		return domain.ErrMalformedAuthResponse
	}

	roles := res.Roles
	if roles == nil {
		roles = []string{}
	}
	encodedRoles, err := json.Marshal(roles)
	if err != nil {
		return err
	}

	if err := s.store.Set(ctx, keyToken, res.Token); err != nil {
		return err
	}
	if err := s.store.Set(ctx, keyUsername, res.Username); err != nil {
		return err
	}
	if err := s.store.Set(ctx, keyRoles, string(encodedRoles)); err != nil {
		return err
	}

	profile, err := s.api.Profile(ctx, res.Token)
	if err != nil {
		return err
	}

	s.commit(domain.Session{
		Token:    res.Token,
		Username: res.Username,
		Roles:    roles,
		User:     profile,
	})
	return nil
}

// RefreshProfile re-fetches the profile with the current token. On any
// failure it logs, leaves the session untouched and returns nil; a
// transient error must never tear down an authenticated session.
func (s *SessionService) RefreshProfile(ctx context.Context) map[string]any {
	s.mu.Lock()
	token := s.state.Token
	s.mu.Unlock()
	if token == "" {
		return nil
	}

	profile, err := s.api.Profile(ctx, token)
	if err != nil {
		s.log.Warn().Err(err).Msg("profile refresh failed")
		return nil
	}

	s.mu.Lock()
	s.state.User = profile
	s.mu.Unlock()
	return profile
}

// Logout purges persisted keys best-effort and resets to an anonymous
// session regardless of whether the purge succeeded.
func (s *SessionService) Logout(ctx context.Context) {
	s.purge(ctx)
	s.commit(domain.Session{Initializing: false, Roles: []string{}})
}

func (s *SessionService) purge(ctx context.Context) {
	for _, key := range []string{keyToken, keyUsername, keyRoles} {
		if err := s.store.Delete(ctx, key); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("session purge: delete failed")
		}
	}
}

func (s *SessionService) commit(next domain.Session) {
	s.mu.Lock()
	// Loading survives a commit that races an in-flight auth call.
	next.Loading = s.state.Loading
	s.state = next
	s.mu.Unlock()
}

// parseRoles decodes the persisted roles entry, degrading to an empty
// list on malformed JSON or a non-list value.
func parseRoles(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var roles []string
	if err := json.Unmarshal([]byte(raw), &roles); err != nil || roles == nil {
		return []string{}
	}
	return roles
}

func cloneSession(s domain.Session) domain.Session {
	out := s
	out.Roles = append([]string(nil), s.Roles...)
	if out.Roles == nil {
		out.Roles = []string{}
	}
	if s.User != nil {
		user := make(map[string]any, len(s.User))
		for k, v := range s.User {
			user[k] = v
		}
		out.User = user
	}
	return out
}
