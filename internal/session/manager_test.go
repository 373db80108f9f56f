package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wanderwise/internal/identity"
	"wanderwise/internal/models"
	"wanderwise/internal/trips"
)

type fakeProvider struct {
	user *models.User
	err  error
}

func (p *fakeProvider) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.user, nil
}

func (p *fakeProvider) Register(ctx context.Context, email, password string, displayName *string) (*models.User, error) {
	return p.user, p.err
}

func (p *fakeProvider) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return p.user, p.err
}

func (p *fakeProvider) FindOrCreateFederated(ctx context.Context, email string, displayName *string) (*models.User, error) {
	return p.user, p.err
}

func (p *fakeProvider) UpdatePassword(ctx context.Context, userID uuid.UUID, newPassword string) error {
	return p.err
}

type fakeRepo struct {
	trips   map[uuid.UUID][]models.TripRecord
	listErr error
	nextRef int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{trips: map[uuid.UUID][]models.TripRecord{}}
}

func (f *fakeRepo) ListTrips(ctx context.Context, ident *identity.Identity) ([]models.TripRecord, error) {
	if ident == nil {
		return nil, trips.ErrNotAuthenticated
	}
	if f.listErr != nil {
		return nil, f.listErr
	}
	stored := f.trips[ident.UserID]
	if stored == nil {
		stored = []models.TripRecord{}
	}
	return stored, nil
}

func (f *fakeRepo) InsertTrip(ctx context.Context, ident *identity.Identity, rec models.TripRecord) (models.TripRecord, error) {
	if ident == nil {
		return models.TripRecord{}, trips.ErrNotAuthenticated
	}
	f.nextRef++
	rec.StorageRef = fmt.Sprintf("ref-%d", f.nextRef)
	f.trips[ident.UserID] = append(f.trips[ident.UserID], rec)
	return rec, nil
}

func (f *fakeRepo) DeleteTrip(ctx context.Context, ident *identity.Identity, storageRef string) error {
	if ident == nil {
		return trips.ErrNotAuthenticated
	}
	kept := f.trips[ident.UserID][:0]
	for _, rec := range f.trips[ident.UserID] {
		if rec.StorageRef != storageRef {
			kept = append(kept, rec)
		}
	}
	f.trips[ident.UserID] = kept
	return nil
}

func newTestManager(repo trips.Repository, provider identity.Provider) *Manager {
	return NewManager(repo, provider, nil, zap.NewNop())
}

func TestSignInEstablishesSessionAndLoadsTrips(t *testing.T) {
	user := &models.User{ID: uuid.New(), Email: "traveler@example.com"}
	repo := newFakeRepo()
	repo.trips[user.ID] = []models.TripRecord{
		{ID: "rome_1", Destination: "Rome", Country: "Italy", StorageRef: "ref-0"},
	}
	m := newTestManager(repo, &fakeProvider{user: user})

	got, err := m.SignIn(context.Background(), user.Email, "secret")
	require.NoError(t, err)
	assert.Equal(t, user, got)

	sess, err := m.Session(user.ID)
	require.NoError(t, err)
	require.Len(t, sess.SavedTrips(), 1)
	assert.Equal(t, "Rome", sess.SavedTrips()[0].Destination)
}

func TestSignInFailurePropagates(t *testing.T) {
	m := newTestManager(newFakeRepo(), &fakeProvider{err: identity.ErrInvalidCredential})

	_, err := m.SignIn(context.Background(), "traveler@example.com", "wrong")
	require.ErrorIs(t, err, identity.ErrInvalidCredential)
}

func TestSessionUnknownUser(t *testing.T) {
	m := newTestManager(newFakeRepo(), &fakeProvider{})

	_, err := m.Session(uuid.New())
	require.ErrorIs(t, err, trips.ErrNotAuthenticated)
}

func TestSignOutClearsStateAndClosesSession(t *testing.T) {
	user := &models.User{ID: uuid.New(), Email: "traveler@example.com"}
	repo := newFakeRepo()
	m := newTestManager(repo, &fakeProvider{user: user})

	_, err := m.SignIn(context.Background(), user.Email, "secret")
	require.NoError(t, err)

	sess, err := m.Session(user.ID)
	require.NoError(t, err)

	_, err = sess.AddTrip(context.Background(), models.TripRecord{Destination: "Rome", Country: "Italy"})
	require.NoError(t, err)
	sess.StoreRecommendations([]models.TripRecord{{ID: "rec-1", Destination: "Kyoto", Country: "Japan"}})

	m.SignOut(user.ID)

	// The session is gone from the caller's point of view.
	_, err = m.Session(user.ID)
	require.ErrorIs(t, err, trips.ErrNotAuthenticated)

	// And its in-memory state was wiped before SignOut returned.
	assert.Empty(t, sess.SavedTrips())
	assert.Empty(t, sess.Recommendations())

	// Mutations against the stale handle fail, nothing phantom-succeeds.
	_, err = sess.AddTrip(context.Background(), models.TripRecord{Destination: "Oslo", Country: "Norway"})
	require.ErrorIs(t, err, trips.ErrNotAuthenticated)
}

func TestSignBackInReloadsSavedTrips(t *testing.T) {
	user := &models.User{ID: uuid.New(), Email: "traveler@example.com"}
	repo := newFakeRepo()
	m := newTestManager(repo, &fakeProvider{user: user})

	_, err := m.SignIn(context.Background(), user.Email, "secret")
	require.NoError(t, err)
	sess, err := m.Session(user.ID)
	require.NoError(t, err)

	saved, err := sess.AddTrip(context.Background(), models.TripRecord{Destination: "Rome", Country: "Italy"})
	require.NoError(t, err)

	m.SignOut(user.ID)
	_, err = m.SignIn(context.Background(), user.Email, "secret")
	require.NoError(t, err)

	sess, err = m.Session(user.ID)
	require.NoError(t, err)
	require.Len(t, sess.SavedTrips(), 1)
	assert.Equal(t, saved.ID, sess.SavedTrips()[0].ID, "trips persisted across sessions")
}

func TestSignInSurvivesLoadFailure(t *testing.T) {
	user := &models.User{ID: uuid.New(), Email: "traveler@example.com"}
	repo := newFakeRepo()
	repo.listErr = errors.New("backend down")
	m := newTestManager(repo, &fakeProvider{user: user})

	_, err := m.SignIn(context.Background(), user.Email, "secret")
	require.NoError(t, err)

	sess, err := m.Session(user.ID)
	require.NoError(t, err)
	assert.Empty(t, sess.SavedTrips(), "session usable with an empty saved set")
}

func TestSignOutEvictsSession(t *testing.T) {
	user := &models.User{ID: uuid.New(), Email: "traveler@example.com"}
	m := newTestManager(newFakeRepo(), &fakeProvider{user: user})

	_, err := m.SignIn(context.Background(), user.Email, "secret")
	require.NoError(t, err)
	before, err := m.Session(user.ID)
	require.NoError(t, err)

	m.SignOut(user.ID)
	m.SignOut(user.ID) // repeated sign-out is harmless

	_, err = m.SignIn(context.Background(), user.Email, "secret")
	require.NoError(t, err)
	after, err := m.Session(user.ID)
	require.NoError(t, err)

	assert.NotSame(t, before, after, "sign-out must drop the old session, not recycle it")
}

func TestConcurrentReadsAndMutations(t *testing.T) {
	user := &models.User{ID: uuid.New(), Email: "traveler@example.com"}
	m := newTestManager(newFakeRepo(), &fakeProvider{user: user})

	_, err := m.SignIn(context.Background(), user.Email, "secret")
	require.NoError(t, err)
	sess, err := m.Session(user.ID)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_, err := sess.AddTrip(context.Background(), models.TripRecord{
				Destination: fmt.Sprintf("City %d", n),
				Country:     "Country",
			})
			assert.NoError(t, err)
		}(i)
		go func() {
			defer wg.Done()
			for _, rec := range sess.SavedTrips() {
				sess.FindTripWithFallback(rec.ID)
			}
		}()
	}
	wg.Wait()

	assert.Len(t, sess.SavedTrips(), 8)
}

func TestEstablishWithoutCredentialCheck(t *testing.T) {
	user := &models.User{ID: uuid.New(), Email: "new@example.com"}
	m := newTestManager(newFakeRepo(), &fakeProvider{user: user})

	m.Establish(context.Background(), user)

	sess, err := m.Session(user.ID)
	require.NoError(t, err)
	assert.NotNil(t, sess.Engine)
}
