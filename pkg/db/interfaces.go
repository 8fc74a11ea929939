package db

import (
	"context"
	"time"
)

// UserStore defines the interface for user database operations
type UserStore interface {
	CreateUser(ctx context.Context, user *User) error
	GetUser(ctx context.Context, id string) (*User, error)
}

// CampStore defines the interface for camp database operations
type CampStore interface {
	CreateCamp(ctx context.Context, camp *Camp) error
	GetCamp(ctx context.Context, id string) (*Camp, error)
	ListCamps(ctx context.Context) ([]Camp, error)
	UpdateCampDetails(ctx context.Context, id string, details CampDetails) (*Camp, error)

	// UpdateCampBeds conditionally sets the available bed count. The write
	// applies only if the current value equals expectedBeds; otherwise
	// ErrConflict is returned and the caller re-reads and retries.
	UpdateCampBeds(ctx context.Context, id string, newBeds, expectedBeds int) (*Camp, error)

	// SetCampCapacity changes the total capacity, adjusting available beds
	// by the same delta in the same transaction. Fails with
	// ErrConstraintViolation if newOriginal is below the occupied bed count.
	SetCampCapacity(ctx context.Context, id string, newOriginal int) (*Camp, error)

	// DeleteCamp removes a camp together with its cancelled selection
	// history and assignment log. It fails with ErrConstraintViolation
	// while any active selection points at the camp.
	DeleteCamp(ctx context.Context, id string) error
}

// SelectionStore defines the interface for camp selection operations
type SelectionStore interface {
	// GetActiveSelection returns the user's active selection, or nil if
	// the user holds none
	GetActiveSelection(ctx context.Context, userID string) (*CampSelection, error)
	InsertSelection(ctx context.Context, sel *CampSelection) error
	UpdateSelectionStatus(ctx context.Context, id string, status SelectionStatus, at time.Time) (*CampSelection, error)

	// SelectCamp atomically inserts an active selection for the user and
	// decrements the camp's available beds by one. Errors:
	// ErrAlreadySelected, ErrCampNotFound, ErrCampFull, ErrConflict.
	SelectCamp(ctx context.Context, userID, campID string) (*CampSelection, *Camp, error)

	// CancelSelection atomically flips the user's active selection to
	// cancelled and returns the bed, capped so beds never exceeds
	// original_beds. Errors: ErrNoActiveSelection, ErrConflict.
	CancelSelection(ctx context.Context, userID string) (*CampSelection, *Camp, error)
}

// AssignmentStore defines the interface for the volunteer assignment log
type AssignmentStore interface {
	InsertAssignment(ctx context.Context, a *VolunteerAssignment) error
	GetAssignments(ctx context.Context, campID string) ([]VolunteerAssignment, error)
}

// Notifier delivers change events for committed writes
type Notifier interface {
	// Subscribe registers a handler for insert/update/delete events on the
	// named table. Delivery is at-least-once; order across rows is not
	// guaranteed.
	Subscribe(table string, handler ChangeHandler)
}

// Database defines the interface for all database operations.
// Both the in-memory memstore.Store and postgres.DB implement this interface.
type Database interface {
	UserStore
	CampStore
	SelectionStore
	AssignmentStore
	Notifier
}
