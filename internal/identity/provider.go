package identity

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"wanderwise/internal/config"
	"wanderwise/internal/models"
)

// PGProvider authenticates against the users table. Failed sign-in attempts
// are counted per email in a TTL cache; once the limit is hit further
// attempts fail with ErrRateLimited until the window expires.
type PGProvider struct {
	db       *pgxpool.Pool
	throttle *config.AuthThrottleConfig
	attempts *gocache.Cache
	logger   *zap.Logger
}

// NewPGProvider creates a Postgres-backed authentication provider
func NewPGProvider(db *pgxpool.Pool, throttle *config.AuthThrottleConfig, logger *zap.Logger) *PGProvider {
	return &PGProvider{
		db:       db,
		throttle: throttle,
		attempts: gocache.New(throttle.Window, throttle.Window),
		logger:   logger,
	}
}

// Authenticate checks an (email, password) credential pair
func (p *PGProvider) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	email = normalizeEmail(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidEmail
	}

	if p.isThrottled(email) {
		return nil, ErrRateLimited
	}

	user, err := p.FindByEmail(ctx, email)
	if err != nil {
		p.recordFailure(email)
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		p.recordFailure(email)
		p.logger.Info("sign-in rejected", zap.String("email", email))
		return nil, ErrInvalidCredential
	}

	p.attempts.Delete(email)
	return user, nil
}

// Register creates a new account
func (p *PGProvider) Register(ctx context.Context, email, password string, displayName *string) (*models.User, error) {
	email = normalizeEmail(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidEmail
	}

	var existingID uuid.UUID
	err := p.db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&existingID)
	if err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  displayName,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	_, err = p.db.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, display_name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.PasswordHash, user.DisplayName, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	p.logger.Info("user registered", zap.String("user_id", user.ID.String()))
	return user, nil
}

// FindByEmail looks up an existing account
func (p *PGProvider) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	email = normalizeEmail(email)

	var user models.User
	err := p.db.QueryRow(ctx,
		`SELECT id, email, password_hash, display_name, created_at, updated_at
		 FROM users WHERE email = $1`,
		email).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.DisplayName,
		&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	return &user, nil
}

// FindOrCreateFederated resolves a federated sign-in to a local account
func (p *PGProvider) FindOrCreateFederated(ctx context.Context, email string, displayName *string) (*models.User, error) {
	user, err := p.FindByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if err != ErrAccountNotFound {
		return nil, err
	}

	// Federated accounts get an unusable local credential; password sign-in
	// stays closed until the user performs a reset.
	placeholder := uuid.New().String()
	return p.Register(ctx, email, placeholder, displayName)
}

// UpdatePassword replaces the stored credential for a user
func (p *PGProvider) UpdatePassword(ctx context.Context, userID uuid.UUID, newPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	tag, err := p.db.Exec(ctx,
		"UPDATE users SET password_hash = $1, updated_at = $2 WHERE id = $3",
		string(hash), time.Now(), userID)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrAccountNotFound
	}

	return nil
}

func (p *PGProvider) isThrottled(email string) bool {
	if count, found := p.attempts.Get(email); found {
		return count.(int) >= p.throttle.MaxAttempts
	}
	return false
}

func (p *PGProvider) recordFailure(email string) {
	if _, err := p.attempts.IncrementInt(email, 1); err != nil {
		p.attempts.Set(email, 1, gocache.DefaultExpiration)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
