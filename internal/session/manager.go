// Package session binds one identity store and one reconciliation engine per
// signed-in user, mirroring the per-user state the mobile client kept in its
// shared providers. Saved trips are loaded once at sign-in and held for the
// life of the session.
package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wanderwise/internal/identity"
	"wanderwise/internal/models"
	"wanderwise/internal/trips"
)

// Session is one user's in-memory trip state. The engine itself stays
// lock-free; the session guards it with a read-write mutex so reads run
// concurrently with each other but never with an in-flight mutation. All
// engine access goes through these accessors.
type Session struct {
	Identity *identity.Store
	Engine   *trips.Engine

	mu sync.RWMutex
}

// AddTrip promotes a candidate into the saved set, serialized per session.
func (s *Session) AddTrip(ctx context.Context, candidate models.TripRecord) (models.TripRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Engine.AddTrip(ctx, candidate)
}

// RemoveTrip removes a saved trip, serialized per session.
func (s *Session) RemoveTrip(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Engine.RemoveTrip(ctx, id)
}

// StoreRecommendations replaces the session's recommendation set.
func (s *Session) StoreRecommendations(list []models.TripRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Engine.StoreRecommendations(list)
}

// SavedTrips returns the session's saved trips.
func (s *Session) SavedTrips() []models.TripRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Engine.SavedTrips()
}

// Recommendations returns the session's current recommendation set.
func (s *Session) Recommendations() []models.TripRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Engine.Recommendations()
}

// FindTripByID looks an id up in saved trips, then recommendations.
func (s *Session) FindTripByID(id string) (models.TripRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Engine.FindTripByID(id)
}

// FindTripWithFallback resolves an id through saved trips, recommendations
// and the fallback catalog, reporting which table answered.
func (s *Session) FindTripWithFallback(id string) (models.TripRecord, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Engine.FindTripWithFallback(id)
}

// Manager tracks the live sessions keyed by user id.
type Manager struct {
	repo     trips.Repository
	provider identity.Provider
	fallback []models.TripRecord
	logger   *zap.Logger

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewManager creates a session manager
func NewManager(repo trips.Repository, provider identity.Provider, fallback []models.TripRecord, logger *zap.Logger) *Manager {
	return &Manager{
		repo:     repo,
		provider: provider,
		fallback: fallback,
		logger:   logger,
		sessions: map[uuid.UUID]*Session{},
	}
}

// SignIn authenticates the credential pair and establishes a session.
func (m *Manager) SignIn(ctx context.Context, email, password string) (*models.User, error) {
	user, err := m.provider.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	m.establish(ctx, user)
	return user, nil
}

// Establish opens a session for an identity authenticated elsewhere
// (registration, federated sign-in).
func (m *Manager) Establish(ctx context.Context, user *models.User) {
	m.establish(ctx, user)
}

// SignOut completes the sign-out transition for a user and evicts the
// session. The engine observer clears the in-memory trip state before
// SignOut returns; a later sign-in builds a fresh session.
func (m *Manager) SignOut(userID uuid.UUID) {
	m.mu.Lock()
	sess, ok := m.sessions[userID]
	delete(m.sessions, userID)
	m.mu.Unlock()
	if !ok {
		return
	}

	// Serialize the observer's engine.Clear against in-flight mutations.
	// Lock order everywhere is session mutex, then identity store mutex.
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.Identity.SignOut()
}

// Session returns the live session for a user, or ErrNotAuthenticated when
// the user has no session or has signed out.
func (m *Manager) Session(userID uuid.UUID) (*Session, error) {
	m.mu.RLock()
	sess, ok := m.sessions[userID]
	m.mu.RUnlock()
	if !ok || sess.Identity.Current() == nil {
		return nil, trips.ErrNotAuthenticated
	}
	return sess, nil
}

func (m *Manager) establish(ctx context.Context, user *models.User) {
	m.mu.Lock()
	sess, ok := m.sessions[user.ID]
	if !ok {
		store := identity.NewStore(m.provider)
		engine := trips.NewEngine(m.repo, store, m.fallback, m.logger)
		sess = &Session{Identity: store, Engine: engine}
		// Sign-out wipes the session's trip state before SignOut returns.
		store.OnChange(func(ident *identity.Identity) {
			if ident == nil {
				engine.Clear()
			}
		})
		m.sessions[user.ID] = sess
	}
	m.mu.Unlock()

	sess.Identity.SignInAs(user)

	// Re-issue the saved-trips load on every sign-in. A load failure leaves
	// the session usable with an empty saved set, as the app did.
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if err := sess.Engine.Load(ctx); err != nil {
		m.logger.Error("loading saved trips failed",
			zap.String("user_id", user.ID.String()), zap.Error(err))
	}
}
