// Package identity wraps the authentication backend behind a session-scoped
// store: the current authenticated identity plus change notifications that
// downstream components subscribe to. "No identity" is a hard precondition
// failure for any write against the trip repository.
package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"wanderwise/internal/models"
)

// Identity is an authenticated user reference with a stable unique id.
type Identity struct {
	UserID uuid.UUID
	Email  string
}

// Errors surfaced by the authentication backend.
var (
	ErrInvalidCredential = errors.New("identity: invalid credential")
	ErrInvalidEmail      = errors.New("identity: invalid email format")
	ErrAccountNotFound   = errors.New("identity: account not found")
	ErrEmailTaken        = errors.New("identity: email already registered")
	ErrRateLimited       = errors.New("identity: too many attempts, try again later")
)

// Provider is the external authentication service the store delegates to.
type Provider interface {
	// Authenticate checks an (email, password) credential pair.
	Authenticate(ctx context.Context, email, password string) (*models.User, error)

	// Register creates a new account. Fails with ErrEmailTaken or ErrInvalidEmail.
	Register(ctx context.Context, email, password string, displayName *string) (*models.User, error)

	// FindByEmail looks up an existing account. Fails with ErrAccountNotFound.
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// FindOrCreateFederated resolves a federated (OAuth) sign-in to a local
	// account, creating one on first sight.
	FindOrCreateFederated(ctx context.Context, email string, displayName *string) (*models.User, error)

	// UpdatePassword replaces the stored credential for a user.
	UpdatePassword(ctx context.Context, userID uuid.UUID, newPassword string) error
}
