package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shelterops/campledger/pkg/clients/authclient"
	"github.com/shelterops/campledger/pkg/db"
)

func TestAuthenticate_Success(t *testing.T) {
	users := &mockUserStore{
		getFn: func(ctx context.Context, id string) (*db.User, error) {
			require.Equal(t, "user-1", id)
			return volunteer("user-1"), nil
		},
	}
	verifier := &mockVerifier{identity: &authclient.Identity{UserID: "user-1"}}

	user, err := Authenticate(context.Background(), users, verifier, zap.NewNop(), "some-token")
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, db.RoleVolunteer, user.Role)
}

func TestAuthenticate_BadToken(t *testing.T) {
	users := &mockUserStore{}
	verifier := &mockVerifier{err: authclient.ErrUnauthenticated}

	_, err := Authenticate(context.Background(), users, verifier, zap.NewNop(), "garbage")
	assert.ErrorIs(t, err, authclient.ErrUnauthenticated)
}

func TestAuthenticate_UserNotFound(t *testing.T) {
	users := &mockUserStore{
		getFn: func(ctx context.Context, id string) (*db.User, error) {
			return nil, fmt.Errorf("user %s: %w", id, db.ErrUserNotFound)
		},
	}
	verifier := &mockVerifier{identity: &authclient.Identity{UserID: "gone"}}

	_, err := Authenticate(context.Background(), users, verifier, zap.NewNop(), "stale-token")
	assert.ErrorIs(t, err, db.ErrUserNotFound)
}

// The role gate reads the stored record, so a caller whose stored role
// is refugee stays a refugee no matter what their token claims.
func TestAuthenticate_RoleComesFromStore(t *testing.T) {
	users := &mockUserStore{
		getFn: func(ctx context.Context, id string) (*db.User, error) {
			return refugee("user-1"), nil
		},
	}
	verifier := &mockVerifier{identity: &authclient.Identity{UserID: "user-1"}}

	user, err := Authenticate(context.Background(), users, verifier, zap.NewNop(), "some-token")
	require.NoError(t, err)

	assert.ErrorIs(t, requireVolunteer(user), ErrNotAuthorized)
}
