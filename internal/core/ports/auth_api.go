package ports

import (
	"context"

	"github.com/homefix/marketplace-client/internal/core/domain"
)

// AuthAPI is the slice of the backend the session layer needs. The
// full API client satisfies it; tests substitute stubs.
type AuthAPI interface {
	Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResult, error)
	Register(ctx context.Context, reg domain.Registration) (*domain.AuthResult, error)
	// Profile fetches /auth/me with an explicit token, bypassing any
	// default credential the client carries.
	Profile(ctx context.Context, token string) (map[string]any, error)
}
