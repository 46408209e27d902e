package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/adarsh5347/impacthub-client/storage"
)

// Store is the single writer of session state. Mutations are committed under
// a generation counter: asynchronous completions (the profile fetches inside
// Restore and ApplyLoginResponse) carry the generation they observed when
// they started and are discarded if a newer login or logout has committed in
// the meantime. Completion order decides, not start order.
type Store struct {
	backend Backend
	repo    storage.Repo

	mu          sync.Mutex
	gen         uint64
	current     Session
	subscribers []func(Session)
	restored    bool
}

// NewStore creates a Store in the Initializing state. Call Restore once at
// process start to resolve it.
func NewStore(backend Backend, repo storage.Repo) *Store {
	return &Store{
		backend: backend,
		repo:    repo,
		current: Session{Initializing: true},
	}
}

// Snapshot returns the current session state.
func (s *Store) Snapshot() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSession(s.current)
}

// Token returns the current bearer credential, or "" when anonymous.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Token
}

// Subscribe registers an observer invoked synchronously after every committed
// mutation. The navigation guard's re-evaluation hook is wired here.
func (s *Store) Subscribe(fn func(Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Restore attempts a silent session restore from durable storage. Absent a
// stored token it commits an empty, resolved session. With one, it
// optimistically commits the token and re-validates it against the backend;
// any failure logs the session out. Restore is idempotent and safe to race
// with a concurrent login: a restore completing after a newer login or
// logout is discarded by the generation guard.
func (s *Store) Restore(ctx context.Context) {
	s.mu.Lock()
	if s.restored {
		s.mu.Unlock()
		return
	}
	s.restored = true
	s.mu.Unlock()

	tok := s.storedToken()
	if tok == "" {
		log.Debug().Msg("session: no stored token")
		s.commit(Session{})
		return
	}

	gen := s.commit(Session{Token: tok, Initializing: true})

	profile, err := s.backend.CurrentUser(ctx, tok)
	if err != nil {
		log.Warn().Err(err).Msg("session: restore re-validation failed")
		s.logoutIfCurrent(gen)
		return
	}

	role := ParseRole(profile.Role)
	if role == RoleNone {
		log.Warn().Str("role", profile.Role).Msg("session: restored profile has unknown role")
		s.logoutIfCurrent(gen)
		return
	}

	next := Session{
		Token: tok,
		Role:  role,
		User: &UserSummary{
			ID:       profile.ID,
			FullName: profile.FullName,
			Email:    profile.Email,
		},
	}
	if s.commitIfCurrent(gen, next) {
		s.persist(next)
		log.Info().Str("role", string(role)).Msg("session: restored")
	}
}

// ApplyLoginResponse normalizes a login or registration response into the
// session. The token falls back to any previously stored token, the user
// type falls back to the role field; if either is still missing, or the role
// is not recognized, the response is treated as a failed login and the
// session is cleared. Responses without profile detail trigger a follow-up
// profile fetch.
func (s *Store) ApplyLoginResponse(ctx context.Context, resp LoginResponse) {
	tok := resp.Token
	if tok == "" {
		tok = s.storedToken()
	}

	roleStr := resp.UserType
	if roleStr == "" {
		roleStr = resp.Role
	}
	role := ParseRole(roleStr)

	if tok == "" || role == RoleNone {
		log.Warn().Str("userType", roleStr).Msg("session: login response unusable, clearing session")
		s.Logout()
		return
	}

	if resp.Email != "" || resp.FullName != "" {
		next := Session{
			Token: tok,
			Role:  role,
			User: &UserSummary{
				ID:       resp.ID,
				FullName: resp.FullName,
				Email:    resp.Email,
			},
		}
		s.commit(next)
		s.persist(next)
		log.Info().Str("role", string(role)).Msg("session: login applied")
		return
	}

	// Post-registration responses carry no profile detail; commit the
	// credential now and fill the profile in from the backend.
	next := Session{Token: tok, Role: role}
	gen := s.commit(next)
	s.persist(next)

	profile, err := s.backend.CurrentUser(ctx, tok)
	if err != nil {
		// The profile snapshot is best-effort; the credential stands.
		log.Warn().Err(err).Msg("session: follow-up profile fetch failed")
		return
	}
	withUser := Session{
		Token: tok,
		Role:  role,
		User: &UserSummary{
			ID:       profile.ID,
			FullName: profile.FullName,
			Email:    profile.Email,
		},
	}
	if s.commitIfCurrent(gen, withUser) {
		s.persist(withUser)
	}
}

// RefreshProfile re-fetches the profile snapshot behind the current
// credential. Anonymous sessions are left alone; a refresh completing after
// a newer mutation is discarded. The snapshot stays best-effort: a failed
// refresh keeps the previous state.
func (s *Store) RefreshProfile(ctx context.Context) {
	s.mu.Lock()
	tok := s.current.Token
	role := s.current.Role
	gen := s.gen
	s.mu.Unlock()

	if tok == "" {
		return
	}

	profile, err := s.backend.CurrentUser(ctx, tok)
	if err != nil {
		log.Warn().Err(err).Msg("session: profile refresh failed")
		return
	}
	if parsed := ParseRole(profile.Role); parsed != RoleNone {
		role = parsed
	}

	next := Session{
		Token: tok,
		Role:  role,
		User: &UserSummary{
			ID:       profile.ID,
			FullName: profile.FullName,
			Email:    profile.Email,
		},
	}
	if s.commitIfCurrent(gen, next) {
		s.persist(next)
	}
}

// Logout clears token, role and user atomically and drops every
// session-related key from durable storage. Safe to call repeatedly and from
// any component.
func (s *Store) Logout() {
	s.commit(Session{})
	if err := s.repo.Delete(storage.SessionKeys()...); err != nil {
		log.Error().Err(err).Msg("session: failed to clear stored session")
	}
}

// commit installs next as the current session, bumps the generation and
// notifies subscribers outside the lock. Returns the committed generation.
func (s *Store) commit(next Session) uint64 {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.current = next
	subs := append(([]func(Session))(nil), s.subscribers...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(cloneSession(next))
	}
	return gen
}

// commitIfCurrent installs next only when no newer mutation has committed
// since the given generation was observed.
func (s *Store) commitIfCurrent(expected uint64, next Session) bool {
	s.mu.Lock()
	if s.gen != expected {
		s.mu.Unlock()
		return false
	}
	s.gen++
	s.current = next
	subs := append(([]func(Session))(nil), s.subscribers...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(cloneSession(next))
	}
	return true
}

func (s *Store) logoutIfCurrent(expected uint64) {
	if s.commitIfCurrent(expected, Session{}) {
		if err := s.repo.Delete(storage.SessionKeys()...); err != nil {
			log.Error().Err(err).Msg("session: failed to clear stored session")
		}
	}
}

// persist mirrors an authenticated session into durable storage: the token
// under the canonical and legacy keys, and exactly one role snapshot blob.
// Writing one snapshot removes the other two.
func (s *Store) persist(sess Session) {
	if sess.Token == "" {
		if err := s.repo.Delete(storage.SessionKeys()...); err != nil {
			log.Error().Err(err).Msg("session: failed to clear stored session")
		}
		return
	}

	if err := s.repo.Set(storage.KeyToken, sess.Token); err != nil {
		log.Error().Err(err).Msg("session: failed to persist token")
		return
	}
	if err := s.repo.Set(storage.KeyLegacyToken, sess.Token); err != nil {
		log.Error().Err(err).Msg("session: failed to persist legacy token")
	}

	snapshotKey := ""
	switch sess.Role {
	case RoleVolunteer:
		snapshotKey = storage.KeyVolunteer
	case RoleNgo:
		snapshotKey = storage.KeyNGO
	case RoleAdmin:
		snapshotKey = storage.KeyAdmin
	}
	if snapshotKey == "" {
		return
	}

	user := sess.User
	if user == nil {
		user = &UserSummary{}
	}
	blob, err := json.Marshal(user)
	if err != nil {
		log.Error().Err(err).Msg("session: failed to encode profile snapshot")
		return
	}

	stale := make([]string, 0, 2)
	for _, key := range storage.RoleSnapshotKeys() {
		if key != snapshotKey {
			stale = append(stale, key)
		}
	}
	if err := s.repo.Delete(stale...); err != nil {
		log.Error().Err(err).Msg("session: failed to clear stale snapshots")
	}
	if err := s.repo.Set(snapshotKey, string(blob)); err != nil {
		log.Error().Err(err).Msg("session: failed to persist profile snapshot")
	}
}

func (s *Store) storedToken() string {
	tok, ok := s.repo.Get(storage.KeyToken)
	if !ok || tok == "" {
		tok, _ = s.repo.Get(storage.KeyLegacyToken)
	}
	return tok
}

func cloneSession(sess Session) Session {
	if sess.User != nil {
		user := *sess.User
		sess.User = &user
	}
	return sess
}
