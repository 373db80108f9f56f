package trips

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wanderwise/internal/identity"
	"wanderwise/internal/models"
)

type fakeRepo struct {
	listResult  []models.TripRecord
	listErr     error
	insertErr   error
	deleteErr   error
	insertCalls int
	deleteRefs  []string
	nextRef     int
}

func (f *fakeRepo) ListTrips(ctx context.Context, ident *identity.Identity) ([]models.TripRecord, error) {
	if ident == nil {
		return nil, ErrNotAuthenticated
	}
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listResult, nil
}

func (f *fakeRepo) InsertTrip(ctx context.Context, ident *identity.Identity, rec models.TripRecord) (models.TripRecord, error) {
	if ident == nil {
		return models.TripRecord{}, ErrNotAuthenticated
	}
	f.insertCalls++
	if f.insertErr != nil {
		return models.TripRecord{}, f.insertErr
	}
	f.nextRef++
	rec.StorageRef = fmt.Sprintf("ref-%d", f.nextRef)
	return rec, nil
}

func (f *fakeRepo) DeleteTrip(ctx context.Context, ident *identity.Identity, storageRef string) error {
	if ident == nil {
		return ErrNotAuthenticated
	}
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleteRefs = append(f.deleteRefs, storageRef)
	return nil
}

func signedInStore(t *testing.T) *identity.Store {
	t.Helper()
	store := identity.NewStore(nil)
	store.SignInAs(&models.User{ID: uuid.New(), Email: "traveler@example.com"})
	return store
}

func newTestEngine(t *testing.T, repo Repository) *Engine {
	t.Helper()
	fallback := []models.TripRecord{
		{ID: "fallback-paris", Destination: "Paris", Country: "France"},
	}
	return NewEngine(repo, signedInStore(t), fallback, zap.NewNop())
}

func rome() models.TripRecord {
	return models.TripRecord{
		ID:          "rec-rome-1",
		Destination: "Rome",
		Country:     "Italy",
		Description: "The Eternal City.",
	}
}

func TestAddTripMintsIdentityAndPersists(t *testing.T) {
	repo := &fakeRepo{}
	e := newTestEngine(t, repo)

	stored, err := e.AddTrip(context.Background(), rome())
	require.NoError(t, err)

	assert.Equal(t, 1, repo.insertCalls)
	assert.NotEmpty(t, stored.StorageRef)
	assert.True(t, strings.HasPrefix(stored.ID, "rome_"), "id %q should carry the destination slug", stored.ID)
	assert.NotEqual(t, "rec-rome-1", stored.ID, "saved id comes from a different namespace than the recommendation id")
	require.NotNil(t, stored.AddedAt)

	// Omitted sequences are defaulted at the boundary, never left nil.
	assert.NotNil(t, stored.TripPlan)
	assert.NotNil(t, stored.MustSeeAttractions)
	assert.NotNil(t, stored.LocalTips)
}

func TestAddTripIdempotentByNaturalKey(t *testing.T) {
	repo := &fakeRepo{}
	e := newTestEngine(t, repo)

	first, err := e.AddTrip(context.Background(), rome())
	require.NoError(t, err)

	// Same (destination, country) under a different candidate id.
	again := rome()
	again.ID = "rec-rome-2"
	again.Description = "Totally different text that must not overwrite"

	second, err := e.AddTrip(context.Background(), again)
	require.NoError(t, err)

	assert.Equal(t, first, second, "re-add returns the stored record unchanged, first write wins")
	assert.Equal(t, 1, repo.insertCalls, "one repository write total")
	assert.Len(t, e.SavedTrips(), 1)
}

func TestAddTripNoDuplicateNaturalKeys(t *testing.T) {
	repo := &fakeRepo{}
	e := newTestEngine(t, repo)

	destinations := []models.TripRecord{
		{Destination: "Rome", Country: "Italy"},
		{Destination: "Kyoto", Country: "Japan"},
		{Destination: "Rome", Country: "Italy"},
		{Destination: "Rome", Country: "USA"}, // same city name, different country
	}
	for _, d := range destinations {
		_, err := e.AddTrip(context.Background(), d)
		require.NoError(t, err)
	}

	saved := e.SavedTrips()
	require.Len(t, saved, 3)

	seenKeys := map[string]bool{}
	seenIDs := map[string]bool{}
	for _, rec := range saved {
		key := rec.Destination + "|" + rec.Country
		assert.False(t, seenKeys[key], "duplicate natural key %s", key)
		assert.False(t, seenIDs[rec.ID], "duplicate id %s", rec.ID)
		seenKeys[key] = true
		seenIDs[rec.ID] = true
	}
}

func TestAddTripDisambiguatesSlugCollisions(t *testing.T) {
	repo := &fakeRepo{}
	e := newTestEngine(t, repo)

	// Same city name in two countries, added within the same millisecond.
	first, err := e.AddTrip(context.Background(), models.TripRecord{Destination: "Rome", Country: "Italy"})
	require.NoError(t, err)
	second, err := e.AddTrip(context.Background(), models.TripRecord{Destination: "Rome", Country: "USA"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(first.ID, "rome_"))
	assert.True(t, strings.HasPrefix(second.ID, "rome_"))
	assert.NotEqual(t, first.ID, second.ID, "equal ids would make two distinct records indistinguishable")
}

func TestAddTripFailureLeavesStateUnchanged(t *testing.T) {
	repo := &fakeRepo{insertErr: persistenceErr("insert trip", errors.New("backend down"))}
	e := newTestEngine(t, repo)

	_, err := e.AddTrip(context.Background(), rome())

	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Empty(t, e.SavedTrips(), "no optimistic insert on failure")
}

func TestAddTripWithoutIdentityFails(t *testing.T) {
	repo := &fakeRepo{}
	store := identity.NewStore(nil)
	e := NewEngine(repo, store, nil, zap.NewNop())

	_, err := e.AddTrip(context.Background(), rome())
	require.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestRemoveTripByDirectID(t *testing.T) {
	repo := &fakeRepo{}
	e := newTestEngine(t, repo)

	stored, err := e.AddTrip(context.Background(), rome())
	require.NoError(t, err)

	require.NoError(t, e.RemoveTrip(context.Background(), stored.ID))
	assert.Equal(t, []string{stored.StorageRef}, repo.deleteRefs)
	assert.Empty(t, e.SavedTrips())

	_, found := e.FindTripByID(stored.ID)
	assert.False(t, found)
}

func TestRemoveTripResolvesRecommendationEraID(t *testing.T) {
	repo := &fakeRepo{}
	e := newTestEngine(t, repo)

	stored, err := e.AddTrip(context.Background(), rome())
	require.NoError(t, err)

	// The caller still holds the recommendation-era id for the same destination.
	e.StoreRecommendations([]models.TripRecord{rome()})

	require.NoError(t, e.RemoveTrip(context.Background(), "rec-rome-1"))
	assert.Equal(t, []string{stored.StorageRef}, repo.deleteRefs, "delete runs against the real storage ref")
	assert.Empty(t, e.SavedTrips())
}

func TestRemoveTripUnknownIDIsNoOp(t *testing.T) {
	repo := &fakeRepo{}
	e := newTestEngine(t, repo)

	_, err := e.AddTrip(context.Background(), rome())
	require.NoError(t, err)

	require.NoError(t, e.RemoveTrip(context.Background(), "never-heard-of-it"))
	assert.Empty(t, repo.deleteRefs)
	assert.Len(t, e.SavedTrips(), 1)
}

func TestRemoveTripFailureLeavesStateUnchanged(t *testing.T) {
	repo := &fakeRepo{}
	e := newTestEngine(t, repo)

	stored, err := e.AddTrip(context.Background(), rome())
	require.NoError(t, err)

	repo.deleteErr = persistenceErr("delete trip", errors.New("backend down"))
	err = e.RemoveTrip(context.Background(), stored.ID)

	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Len(t, e.SavedTrips(), 1)
}

func TestFindTripByIDPrefersSavedThenRecommendations(t *testing.T) {
	repo := &fakeRepo{}
	e := newTestEngine(t, repo)

	stored, err := e.AddTrip(context.Background(), rome())
	require.NoError(t, err)
	e.StoreRecommendations([]models.TripRecord{{ID: "rec-kyoto", Destination: "Kyoto", Country: "Japan"}})

	got, found := e.FindTripByID(stored.ID)
	require.True(t, found)
	assert.Equal(t, stored, got)

	got, found = e.FindTripByID("rec-kyoto")
	require.True(t, found)
	assert.Equal(t, "Kyoto", got.Destination)

	// The fallback catalog is never consulted by id lookup.
	_, found = e.FindTripByID("fallback-paris")
	assert.False(t, found)
}

func TestFindTripWithFallback(t *testing.T) {
	repo := &fakeRepo{}
	e := newTestEngine(t, repo)

	rec, source := e.FindTripWithFallback("fallback-paris")
	assert.Equal(t, "fallback", source)
	assert.Equal(t, "Paris", rec.Destination)

	// Unknown ids fall through to the first catalog entry.
	rec, source = e.FindTripWithFallback("unknown")
	assert.Equal(t, "fallback", source)
	assert.Equal(t, "Paris", rec.Destination)
}

func TestStoreRecommendationsReplacesWholesale(t *testing.T) {
	repo := &fakeRepo{}
	e := newTestEngine(t, repo)

	e.StoreRecommendations([]models.TripRecord{{ID: "a"}, {ID: "b"}})
	e.StoreRecommendations([]models.TripRecord{{ID: "c"}})

	require.Len(t, e.Recommendations(), 1)
	assert.Equal(t, "c", e.Recommendations()[0].ID)

	e.StoreRecommendations(nil)
	assert.NotNil(t, e.Recommendations())
	assert.Empty(t, e.Recommendations())
}

func TestLoadAndClear(t *testing.T) {
	repo := &fakeRepo{listResult: []models.TripRecord{
		{ID: "rome_1", Destination: "Rome", Country: "Italy", StorageRef: "ref-1"},
	}}
	e := newTestEngine(t, repo)

	require.NoError(t, e.Load(context.Background()))
	require.Len(t, e.SavedTrips(), 1)

	e.StoreRecommendations([]models.TripRecord{{ID: "rec-1"}})
	e.Clear()

	assert.Empty(t, e.SavedTrips())
	assert.Empty(t, e.Recommendations())
}

func TestMintTripID(t *testing.T) {
	now := time.UnixMilli(1712345678901)

	assert.Equal(t, "new-york_1712345678901", MintTripID("New York", now))
	assert.Equal(t, "rome_1712345678901", MintTripID("  Rome ", now))
}
