package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/shelterops/campledger/pkg/db"
)

const campColumns = `id, name, beds, original_beds, resources, contact, ambulance, type, added_by, created_at`

func scanCamp(row pgx.Row) (*db.Camp, error) {
	var camp db.Camp
	var addedBy *string
	err := row.Scan(&camp.ID, &camp.Name, &camp.Beds, &camp.OriginalBeds, &camp.Resources,
		&camp.Contact, &camp.Ambulance, &camp.Type, &addedBy, &camp.CreatedAt)
	if err != nil {
		return nil, err
	}
	if addedBy != nil {
		camp.AddedBy = *addedBy
	}
	return &camp, nil
}

// CreateCamp inserts a new camp record
func (d *DB) CreateCamp(ctx context.Context, camp *db.Camp) error {
	var addedBy *string
	if camp.AddedBy != "" {
		addedBy = &camp.AddedBy
	}

	row := d.pool.QueryRow(ctx, `
		INSERT INTO camps (id, name, beds, original_beds, resources, contact, ambulance, type, added_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`, camp.ID, camp.Name, camp.Beds, camp.OriginalBeds, camp.Resources,
		camp.Contact, camp.Ambulance, camp.Type, addedBy)

	if err := row.Scan(&camp.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert camp: %w", mapError(err))
	}
	return nil
}

// GetCamp retrieves a camp by ID
func (d *DB) GetCamp(ctx context.Context, id string) (*db.Camp, error) {
	camp, err := scanCamp(d.pool.QueryRow(ctx, `
		SELECT `+campColumns+`
		FROM camps
		WHERE id = $1
	`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("camp %s: %w", id, db.ErrCampNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query camp: %w", mapError(err))
	}
	return camp, nil
}

// ListCamps retrieves all camps, newest first
func (d *DB) ListCamps(ctx context.Context) ([]db.Camp, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT `+campColumns+`
		FROM camps
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query camps: %w", mapError(err))
	}
	defer rows.Close()

	var camps []db.Camp
	for rows.Next() {
		camp, err := scanCamp(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan camp: %w", err)
		}
		camps = append(camps, *camp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating camps: %w", mapError(err))
	}

	return camps, nil
}

// UpdateCampDetails updates the volunteer-editable camp metadata.
// Bed counts are untouched; those change only through selection,
// cancellation and SetCampCapacity.
func (d *DB) UpdateCampDetails(ctx context.Context, id string, details db.CampDetails) (*db.Camp, error) {
	camp, err := scanCamp(d.pool.QueryRow(ctx, `
		UPDATE camps
		SET name = $2, resources = $3, contact = $4, ambulance = $5
		WHERE id = $1
		RETURNING `+campColumns+`
	`, id, details.Name, details.Resources, details.Contact, details.Ambulance))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("camp %s: %w", id, db.ErrCampNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update camp details: %w", mapError(err))
	}
	return camp, nil
}

// UpdateCampBeds conditionally sets the available bed count. The update
// applies only when the current value matches expectedBeds; a miss means
// a concurrent writer got there first and is reported as ErrConflict.
func (d *DB) UpdateCampBeds(ctx context.Context, id string, newBeds, expectedBeds int) (*db.Camp, error) {
	camp, err := scanCamp(d.pool.QueryRow(ctx, `
		UPDATE camps
		SET beds = $2
		WHERE id = $1 AND beds = $3
		RETURNING `+campColumns+`
	`, id, newBeds, expectedBeds))
	if errors.Is(err, pgx.ErrNoRows) {
		// Distinguish a missing camp from a lost race
		if _, getErr := d.GetCamp(ctx, id); getErr != nil {
			return nil, getErr
		}
		return nil, fmt.Errorf("camp %s beds changed concurrently: %w", id, db.ErrConflict)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update camp beds: %w", mapError(err))
	}
	return camp, nil
}

// SetCampCapacity changes the total capacity in one transaction, shifting
// available beds by the same delta so the occupied count is preserved.
func (d *DB) SetCampCapacity(ctx context.Context, id string, newOriginal int) (*db.Camp, error) {
	var camp *db.Camp
	err := d.inTx(ctx, func(tx pgx.Tx) error {
		locked, err := scanCamp(tx.QueryRow(ctx, `
			SELECT `+campColumns+`
			FROM camps
			WHERE id = $1
			FOR UPDATE
		`, id))
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("camp %s: %w", id, db.ErrCampNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to lock camp: %w", mapError(err))
		}

		occupied := locked.Occupied()
		if newOriginal < occupied {
			return fmt.Errorf("camp %s has %d occupied beds, capacity %d too small: %w",
				id, occupied, newOriginal, db.ErrConstraintViolation)
		}

		camp, err = scanCamp(tx.QueryRow(ctx, `
			UPDATE camps
			SET original_beds = $2, beds = $2 - $3
			WHERE id = $1
			RETURNING `+campColumns+`
		`, id, newOriginal, occupied))
		if err != nil {
			return fmt.Errorf("failed to update camp capacity: %w", mapError(err))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return camp, nil
}

// DeleteCamp removes a camp and cascades its cancelled selection history
// and assignment log. Deletion is blocked while any active selection
// still points at the camp.
func (d *DB) DeleteCamp(ctx context.Context, id string) error {
	return d.inTx(ctx, func(tx pgx.Tx) error {
		var lockedID string
		err := tx.QueryRow(ctx, `
			SELECT id FROM camps WHERE id = $1 FOR UPDATE
		`, id).Scan(&lockedID)
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("camp %s: %w", id, db.ErrCampNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to lock camp: %w", mapError(err))
		}

		var activeCount int
		err = tx.QueryRow(ctx, `
			SELECT COUNT(*) FROM camp_selections
			WHERE camp_id = $1 AND status = 'active'
		`, id).Scan(&activeCount)
		if err != nil {
			return fmt.Errorf("failed to count active selections: %w", mapError(err))
		}
		if activeCount > 0 {
			return fmt.Errorf("camp %s has %d active selections: %w", id, activeCount, db.ErrConstraintViolation)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM camps WHERE id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete camp: %w", mapError(err))
		}
		return nil
	})
}
