package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/shelterops/campledger/pkg/clients/authclient"
	"github.com/shelterops/campledger/pkg/db"
)

// TokenVerifier verifies a presented token and returns the caller's identity
type TokenVerifier interface {
	Verify(token string) (*authclient.Identity, error)
}

// Authenticate resolves a presented token to the stored user record.
// The role used by the authorization gate always comes from the store,
// never from anything the caller claims about themselves.
func Authenticate(ctx context.Context, users db.UserStore, verifier TokenVerifier, logger *zap.Logger, token string) (*db.User, error) {
	identity, err := verifier.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := users.GetUser(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve authenticated user: %w", err)
	}

	logger.Debug("Authenticated caller",
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)))

	return user, nil
}

// requireVolunteer gates mutating camp operations on the volunteer role
func requireVolunteer(caller *db.User) error {
	if caller.Role != db.RoleVolunteer {
		return fmt.Errorf("role %s: %w", caller.Role, ErrNotAuthorized)
	}
	return nil
}
