package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shelterops/campledger/pkg/db"
)

// TokenIssuer creates signed identity tokens for registered users
type TokenIssuer interface {
	IssueToken(userID string) (string, error)
}

// RegistrationResult represents a newly registered user and their token
type RegistrationResult struct {
	User  *db.User
	Token string
}

// RegisterUser creates a user with the given role and issues their
// identity token. The role is fixed here for the lifetime of the user;
// no role-change operation exists.
func RegisterUser(ctx context.Context, users db.UserStore, tokens TokenIssuer, logger *zap.Logger, name string, role db.Role, contact string) (*RegistrationResult, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if !role.Valid() {
		return nil, fmt.Errorf("role must be %s or %s, got %q", db.RoleRefugee, db.RoleVolunteer, role)
	}

	user := &db.User{
		ID:      uuid.New().String(),
		Name:    name,
		Role:    role,
		Contact: contact,
	}

	if err := users.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := tokens.IssueToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	logger.Info("User registered",
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)))

	return &RegistrationResult{
		User:  user,
		Token: token,
	}, nil
}
