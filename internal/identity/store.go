package identity

import (
	"context"
	"sync"

	"wanderwise/internal/models"
)

// Store holds the current authenticated identity for one user session and
// notifies observers on every sign-in and sign-out transition. Observers are
// called synchronously under the store's lock: after SignOut returns, no
// observer will ever see the signed-out identity again.
type Store struct {
	provider Provider

	mu        sync.Mutex
	current   *Identity
	observers map[int]func(*Identity)
	nextID    int
}

// NewStore creates an identity store backed by the given provider
func NewStore(provider Provider) *Store {
	return &Store{
		provider:  provider,
		observers: map[int]func(*Identity){},
	}
}

// Current returns the current authenticated identity, or nil when signed out.
func (s *Store) Current() *Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// OnChange registers an observer. The observer fires once immediately with
// the current state, then on every completed transition. The returned
// function unsubscribes it.
func (s *Store) OnChange(fn func(*Identity)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers[id] = fn
	fn(s.current)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

// SignIn authenticates the credential pair and, on success, publishes the new
// identity to all observers.
func (s *Store) SignIn(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.provider.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	s.publish(&Identity{UserID: user.ID, Email: user.Email})
	return user, nil
}

// SignInAs publishes an identity established elsewhere (registration,
// federated sign-in) without re-checking credentials.
func (s *Store) SignInAs(user *models.User) {
	s.publish(&Identity{UserID: user.ID, Email: user.Email})
}

// SignOut clears the current identity and notifies observers with nil.
func (s *Store) SignOut() {
	s.publish(nil)
}

func (s *Store) publish(ident *Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = ident
	for _, fn := range s.observers {
		fn(ident)
	}
}
