package ports

import (
	"context"

	"github.com/homefix/marketplace-client/internal/core/domain"
)

// SessionService owns the process-wide session. Consumers read
// snapshots and drive state through these operations only.
type SessionService interface {
	// Restore re-establishes a persisted session at startup. Storage
	// and profile re-validation failures still complete the
	// initializing phase; only a cancelled context leaves it pending.
	Restore(ctx context.Context)
	Login(ctx context.Context, creds domain.Credentials) error
	Register(ctx context.Context, reg domain.Registration) error
	// RefreshProfile returns the refreshed profile, or nil when the
	// fetch fails. It never tears down the session.
	RefreshProfile(ctx context.Context) map[string]any
	Logout(ctx context.Context)
	Snapshot() domain.Session
}
