package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Manager owns the session lifecycle: Hydrate on login, Resolve per request,
// Clear on logout. It is constructor-injected wherever sessions are needed;
// nothing reads ambient storage.
type Manager struct {
	store Store
	ttl   time.Duration
}

func NewManager(store Store, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Manager{store: store, ttl: ttl}
}

// Hydrate stores a fresh session after a successful upstream login.
func (m *Manager) Hydrate(ctx context.Context, s Session) error {
	if strings.TrimSpace(s.Token) == "" {
		return fmt.Errorf("session token is required")
	}
	if !ValidRole(s.Role) {
		return fmt.Errorf("unknown role: %s", s.Role)
	}
	s.CreatedAt = time.Now()
	if err := m.store.Put(ctx, s, m.ttl); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	log.Info().Int64("user_id", s.UserID).Str("role", string(s.Role)).Msg("session hydrated")
	return nil
}

// Resolve looks a bearer token up. A store error is treated as an unknown
// token: auth failures stay a single generic kind.
func (m *Manager) Resolve(ctx context.Context, token string) (Session, bool) {
	s, ok, err := m.store.Get(ctx, token)
	if err != nil {
		log.Error().Err(err).Msg("session lookup failed")
		return Session{}, false
	}
	return s, ok
}

// Clear tears the session down on logout.
func (m *Manager) Clear(ctx context.Context, token string) {
	if err := m.store.Delete(ctx, token); err != nil {
		log.Error().Err(err).Msg("session delete failed")
	}
}
