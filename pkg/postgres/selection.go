package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/shelterops/campledger/pkg/db"
)

const selectionColumns = `id, user_id, camp_id, status, selected_at, cancelled_at`

func scanSelection(row pgx.Row) (*db.CampSelection, error) {
	var sel db.CampSelection
	err := row.Scan(&sel.ID, &sel.UserID, &sel.CampID, &sel.Status, &sel.SelectedAt, &sel.CancelledAt)
	if err != nil {
		return nil, err
	}
	return &sel, nil
}

// GetActiveSelection returns the user's active selection, or nil if none exists
func (d *DB) GetActiveSelection(ctx context.Context, userID string) (*db.CampSelection, error) {
	sel, err := scanSelection(d.pool.QueryRow(ctx, `
		SELECT `+selectionColumns+`
		FROM camp_selections
		WHERE user_id = $1 AND status = 'active'
	`, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query active selection: %w", mapError(err))
	}
	return sel, nil
}

// InsertSelection inserts a selection row. The one_active_selection_per_user
// index rejects a second active row for the same user; that surfaces as
// ErrConstraintViolation.
func (d *DB) InsertSelection(ctx context.Context, sel *db.CampSelection) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO camp_selections (id, user_id, camp_id, status, selected_at, cancelled_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, sel.ID, sel.UserID, sel.CampID, sel.Status, sel.SelectedAt, sel.CancelledAt)
	if err != nil {
		return fmt.Errorf("failed to insert selection: %w", mapError(err))
	}
	return nil
}

// UpdateSelectionStatus transitions an active selection to the given
// status, stamping cancelled_at for cancellations. Cancelled is terminal:
// a row that is no longer active reports ErrNoActiveSelection.
func (d *DB) UpdateSelectionStatus(ctx context.Context, id string, status db.SelectionStatus, at time.Time) (*db.CampSelection, error) {
	var cancelledAt *time.Time
	if status == db.SelectionCancelled {
		cancelledAt = &at
	}

	sel, err := scanSelection(d.pool.QueryRow(ctx, `
		UPDATE camp_selections
		SET status = $2, cancelled_at = $3
		WHERE id = $1 AND status = 'active'
		RETURNING `+selectionColumns+`
	`, id, status, cancelledAt))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("selection %s: %w", id, db.ErrNoActiveSelection)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update selection status: %w", mapError(err))
	}
	return sel, nil
}

// SelectCamp atomically creates an active selection for the user and
// decrements the camp's available beds. The camp row is locked for the
// duration of the transaction, so two selections racing for the last bed
// serialize and the loser sees ErrCampFull.
func (d *DB) SelectCamp(ctx context.Context, userID, campID string) (*db.CampSelection, *db.Camp, error) {
	var sel *db.CampSelection
	var camp *db.Camp

	err := d.inTx(ctx, func(tx pgx.Tx) error {
		locked, err := scanCamp(tx.QueryRow(ctx, `
			SELECT `+campColumns+`
			FROM camps
			WHERE id = $1
			FOR UPDATE
		`, campID))
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("camp %s: %w", campID, db.ErrCampNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to lock camp: %w", mapError(err))
		}
		if locked.Beds <= 0 {
			return fmt.Errorf("camp %s: %w", campID, db.ErrCampFull)
		}

		var hasActive bool
		err = tx.QueryRow(ctx, `
			SELECT EXISTS (
				SELECT 1 FROM camp_selections
				WHERE user_id = $1 AND status = 'active'
			)
		`, userID).Scan(&hasActive)
		if err != nil {
			return fmt.Errorf("failed to check active selection: %w", mapError(err))
		}
		if hasActive {
			return fmt.Errorf("user %s: %w", userID, db.ErrAlreadySelected)
		}

		sel, err = scanSelection(tx.QueryRow(ctx, `
			INSERT INTO camp_selections (id, user_id, camp_id, status)
			VALUES ($1, $2, $3, 'active')
			RETURNING `+selectionColumns+`
		`, uuid.New().String(), userID, campID))
		if err != nil {
			// The partial unique index catches a same-user race the
			// existence check above could not see yet
			if errors.Is(mapError(err), db.ErrConstraintViolation) {
				return fmt.Errorf("user %s: %w", userID, db.ErrAlreadySelected)
			}
			return fmt.Errorf("failed to insert selection: %w", mapError(err))
		}

		camp, err = scanCamp(tx.QueryRow(ctx, `
			UPDATE camps
			SET beds = beds - 1
			WHERE id = $1
			RETURNING `+campColumns+`
		`, campID))
		if err != nil {
			return fmt.Errorf("failed to decrement camp beds: %w", mapError(err))
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return sel, camp, nil
}

// CancelSelection atomically cancels the user's active selection and
// returns the bed to the camp, capped at the original capacity.
func (d *DB) CancelSelection(ctx context.Context, userID string) (*db.CampSelection, *db.Camp, error) {
	var sel *db.CampSelection
	var camp *db.Camp

	err := d.inTx(ctx, func(tx pgx.Tx) error {
		active, err := scanSelection(tx.QueryRow(ctx, `
			SELECT `+selectionColumns+`
			FROM camp_selections
			WHERE user_id = $1 AND status = 'active'
			FOR UPDATE
		`, userID))
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("user %s: %w", userID, db.ErrNoActiveSelection)
		}
		if err != nil {
			return fmt.Errorf("failed to lock active selection: %w", mapError(err))
		}

		// Lock the camp before touching either row so concurrent
		// select/cancel on the same camp serialize
		if _, err := tx.Exec(ctx, `
			SELECT id FROM camps WHERE id = $1 FOR UPDATE
		`, active.CampID); err != nil {
			return fmt.Errorf("failed to lock camp: %w", mapError(err))
		}

		sel, err = scanSelection(tx.QueryRow(ctx, `
			UPDATE camp_selections
			SET status = 'cancelled', cancelled_at = NOW()
			WHERE id = $1
			RETURNING `+selectionColumns+`
		`, active.ID))
		if err != nil {
			return fmt.Errorf("failed to cancel selection: %w", mapError(err))
		}

		camp, err = scanCamp(tx.QueryRow(ctx, `
			UPDATE camps
			SET beds = LEAST(beds + 1, original_beds)
			WHERE id = $1
			RETURNING `+campColumns+`
		`, active.CampID))
		if err != nil {
			return fmt.Errorf("failed to return camp bed: %w", mapError(err))
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return sel, camp, nil
}
