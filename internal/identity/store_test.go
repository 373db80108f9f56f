package identity

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderwise/internal/models"
)

type stubProvider struct {
	user *models.User
	err  error
}

func (p *stubProvider) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.user, nil
}

func (p *stubProvider) Register(ctx context.Context, email, password string, displayName *string) (*models.User, error) {
	return p.user, p.err
}

func (p *stubProvider) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return p.user, p.err
}

func (p *stubProvider) FindOrCreateFederated(ctx context.Context, email string, displayName *string) (*models.User, error) {
	return p.user, p.err
}

func (p *stubProvider) UpdatePassword(ctx context.Context, userID uuid.UUID, newPassword string) error {
	return p.err
}

func TestOnChangeFiresImmediately(t *testing.T) {
	store := NewStore(&stubProvider{})

	var seen []*Identity
	store.OnChange(func(ident *Identity) { seen = append(seen, ident) })

	require.Len(t, seen, 1)
	assert.Nil(t, seen[0], "new subscription sees the signed-out state at once")
}

func TestSignInPublishesIdentity(t *testing.T) {
	user := &models.User{ID: uuid.New(), Email: "traveler@example.com"}
	store := NewStore(&stubProvider{user: user})

	var seen []*Identity
	store.OnChange(func(ident *Identity) { seen = append(seen, ident) })

	got, err := store.SignIn(context.Background(), "traveler@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, user, got)

	require.Len(t, seen, 2)
	require.NotNil(t, seen[1])
	assert.Equal(t, user.ID, seen[1].UserID)
	assert.Equal(t, user.Email, seen[1].Email)

	cur := store.Current()
	require.NotNil(t, cur)
	assert.Equal(t, user.ID, cur.UserID)
}

func TestSignInFailureLeavesStateUntouched(t *testing.T) {
	store := NewStore(&stubProvider{err: ErrInvalidCredential})

	fired := 0
	store.OnChange(func(*Identity) { fired++ })

	_, err := store.SignIn(context.Background(), "traveler@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredential)

	assert.Equal(t, 1, fired, "only the subscription-time fire, no transition")
	assert.Nil(t, store.Current())
}

func TestSignOutDeliversNilAndNothingStale(t *testing.T) {
	user := &models.User{ID: uuid.New(), Email: "traveler@example.com"}
	store := NewStore(&stubProvider{user: user})
	store.SignInAs(user)

	var last *Identity
	store.OnChange(func(ident *Identity) { last = ident })
	require.NotNil(t, last)

	store.SignOut()

	assert.Nil(t, last, "observer saw the sign-out")
	assert.Nil(t, store.Current())

	// A subscriber arriving after sign-out must never see the old identity.
	store.OnChange(func(ident *Identity) {
		assert.Nil(t, ident)
	})
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	user := &models.User{ID: uuid.New(), Email: "traveler@example.com"}
	store := NewStore(&stubProvider{user: user})

	fired := 0
	unsubscribe := store.OnChange(func(*Identity) { fired++ })
	require.Equal(t, 1, fired)

	unsubscribe()
	store.SignInAs(user)
	store.SignOut()

	assert.Equal(t, 1, fired)
}
