package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/shelterops/campledger/pkg/db"
)

// CreateUser inserts a new user record
func (d *DB) CreateUser(ctx context.Context, user *db.User) error {
	row := d.pool.QueryRow(ctx, `
		INSERT INTO users (id, name, role, contact)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, user.ID, user.Name, user.Role, user.Contact)

	if err := row.Scan(&user.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert user: %w", mapError(err))
	}
	return nil
}

// GetUser retrieves a user by ID
func (d *DB) GetUser(ctx context.Context, id string) (*db.User, error) {
	var user db.User
	row := d.pool.QueryRow(ctx, `
		SELECT id, name, role, contact, created_at
		FROM users
		WHERE id = $1
	`, id)

	err := row.Scan(&user.ID, &user.Name, &user.Role, &user.Contact, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("user %s: %w", id, db.ErrUserNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", mapError(err))
	}
	return &user, nil
}
